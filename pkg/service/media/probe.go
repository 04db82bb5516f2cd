/*
 * @Description: 使用 ffprobe 命令行工具探测音视频的技术信息。
 * @Author: 安知鱼
 * @Date: 2025-08-03 10:02:19
 * @LastEditTime: 2025-08-03 10:02:19
 * @LastEditors: 安知鱼
 */
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// ProbeResult 是 ffprobe 输出中业务关心的子集。
type ProbeResult struct {
	Width     int
	Height    int
	Duration  float64 // 秒
	Codec     string
	BitRate   string
	FrameRate float64
}

// FFProbeService 封装对 ffprobe 的调用。工具不存在时所有探测
// 返回 constant.ErrToolUnavailable，调用方据此降级而非失败。
type FFProbeService struct {
	settingSvc setting.SettingService

	probePath   string
	isAvailable bool
	warnOnce    sync.Once
}

// NewFFProbeService 构造函数，按配置路径或 PATH 自动发现 ffprobe。
func NewFFProbeService(settingSvc setting.SettingService) *FFProbeService {
	var foundPath string

	if configured := settingSvc.Get(constant.KeyFfprobePath.String()); configured != "" && configured != "ffprobe" {
		if _, err := os.Stat(configured); err == nil {
			foundPath = configured
		} else {
			log.Printf("[FFProbeService] 警告: 配置的 ffprobe 路径 '%s' 无效，将尝试自动搜索。", configured)
		}
	}

	if foundPath == "" {
		if p, err := exec.LookPath("ffprobe"); err == nil {
			foundPath = p
		}
	}

	if foundPath != "" {
		log.Printf("[FFProbeService] 成功找到 ffprobe 命令位于 '%s'，探测服务已启用。", foundPath)
	}

	return &FFProbeService{
		settingSvc:  settingSvc,
		probePath:   foundPath,
		isAvailable: foundPath != "",
	}
}

// Available 返回 ffprobe 是否可用。
func (s *FFProbeService) Available() bool {
	return s.isAvailable
}

// Probe 探测指定文件，返回尺寸、时长与编码信息。
func (s *FFProbeService) Probe(ctx context.Context, sourcePath string) (*ProbeResult, error) {
	if !s.isAvailable {
		s.warnOnce.Do(func() {
			log.Println("[FFProbeService] 未在系统中找到 'ffprobe' 命令，音视频探测将被跳过。")
		})
		return nil, constant.ErrToolUnavailable
	}

	timeout := setting.GetIntOrDefault(s.settingSvc, constant.KeyMediaToolTimeout, 30)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.probePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		sourcePath,
	)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("调用 ffprobe 命令失败: %w, 错误输出: %s", err, errBuf.String())
	}

	var raw struct {
		Format struct {
			Duration string `json:"duration"`
			BitRate  string `json:"bit_rate"`
		} `json:"format"`
		Streams []struct {
			CodecType    string `json:"codec_type"`
			CodecName    string `json:"codec_name"`
			Width        int    `json:"width"`
			Height       int    `json:"height"`
			AvgFrameRate string `json:"avg_frame_rate"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(outBuf.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("解析 ffprobe 输出失败: %w", err)
	}

	result := &ProbeResult{BitRate: raw.Format.BitRate}
	if raw.Format.Duration != "" {
		result.Duration, _ = strconv.ParseFloat(raw.Format.Duration, 64)
	}

	// 取第一条视频流的尺寸和编码，纯音频文件没有视频流
	for _, st := range raw.Streams {
		if st.CodecType == "video" {
			result.Width = st.Width
			result.Height = st.Height
			result.Codec = st.CodecName
			result.FrameRate = parseFrameRate(st.AvgFrameRate)
			break
		}
		if st.CodecType == "audio" && result.Codec == "" {
			result.Codec = st.CodecName
		}
	}

	return result, nil
}

// parseFrameRate 解析 "30000/1001" 形式的帧率分数。
func parseFrameRate(s string) float64 {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}
