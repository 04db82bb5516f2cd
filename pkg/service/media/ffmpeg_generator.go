/*
 * @Description: 使用 ffmpeg 命令行工具从视频文件中截取帧作为派生图的生成器。
 * @Author: 安知鱼
 * @Date: 2025-08-03 11:20:10
 * @LastEditTime: 2025-08-03 11:20:10
 * @LastEditors: 安知鱼
 */
package media

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// FfmpegGenerator 通过调用 ffmpeg 命令行工具从视频中截帧。
type FfmpegGenerator struct {
	store      storage.IStorageDriver
	settingSvc setting.SettingService
	probeSvc   *FFProbeService

	ffmpegPath  string
	isAvailable bool
}

// NewFfmpegGenerator 构造函数，自动发现 ffmpeg 命令。
func NewFfmpegGenerator(
	store storage.IStorageDriver,
	settingSvc setting.SettingService,
	probeSvc *FFProbeService,
) Generator {
	var foundPath string

	if configured := settingSvc.Get(constant.KeyFfmpegPath.String()); configured != "" && configured != "ffmpeg" {
		if _, err := os.Stat(configured); err == nil {
			foundPath = configured
		} else {
			log.Printf("[FfmpegGenerator] 警告: 配置的 FFmpeg 路径 '%s' 无效，将尝试自动搜索。", configured)
		}
	}

	if foundPath == "" {
		if p, err := exec.LookPath("ffmpeg"); err == nil {
			foundPath = p
		} else {
			log.Println("[FfmpegGenerator] 未在系统中找到 'ffmpeg' 命令，视频派生图生成器将被禁用。")
		}
	}

	if foundPath != "" {
		log.Printf("[FfmpegGenerator] 成功找到 FFmpeg 命令位于 '%s'，生成器已启用。", foundPath)
	}

	return &FfmpegGenerator{
		store:       store,
		settingSvc:  settingSvc,
		probeSvc:    probeSvc,
		ffmpegPath:  foundPath,
		isAvailable: foundPath != "",
	}
}

// CanHandle 检查 ffmpeg 是否可用且资产为视频。
func (g *FfmpegGenerator) CanHandle(ctx context.Context, asset *model.Asset) bool {
	return g.isAvailable && asset.MediaKind == constant.MediaKindVideo
}

// Generate 从视频中截取一帧缩放到边界框内并写入存储。
// 截帧时间点取 1 秒与视频时长一半中的较小者，避免超出短视频的末尾。
func (g *FfmpegGenerator) Generate(
	ctx context.Context,
	asset *model.Asset,
	sourcePath string,
	destKey string,
	boxSize int,
	quality int,
) (*Result, error) {
	captureTime := 1.0
	if res, err := g.probeSvc.Probe(ctx, sourcePath); err == nil && res.Duration > 0 {
		if half := res.Duration / 2; half < captureTime {
			captureTime = half
		}
	}

	timeout := setting.GetIntOrDefault(g.settingSvc, constant.KeyMediaToolTimeout, 30)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	// -ss: 跳转到截帧时间点
	// -vframes 1: 只输出一帧
	// -vf scale: 高度缩放到边界框，宽度按比例自适应，不放大
	// -f mjpeg -: 单个 jpeg 帧输出到 stdout
	cmd := exec.CommandContext(ctx, g.ffmpegPath,
		"-ss", fmt.Sprintf("%.3f", captureTime),
		"-i", sourcePath,
		"-vframes", "1",
		"-vf", fmt.Sprintf("scale=-2:'min(%d,ih)'", boxSize),
		"-q:v", "3",
		"-f", "mjpeg",
		"-",
	)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		log.Printf("[FfmpegGenerator] ffmpeg 命令执行失败。错误: %v, Stderr: %s", err, errBuf.String())
		return nil, fmt.Errorf("调用 ffmpeg 命令失败: %w, 错误输出: %s", err, errBuf.String())
	}
	if outBuf.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg 未生成图像数据, 错误输出: %s", errBuf.String())
	}

	if err := g.store.Put(ctx, destKey, &outBuf); err != nil {
		return nil, fmt.Errorf("写入派生图 '%s' 失败: %w", destKey, err)
	}

	return &Result{
		GeneratorName: "ffmpeg",
		Format:        "jpeg",
	}, nil
}
