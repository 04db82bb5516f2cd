/*
 * @Description: 远端内容获取器，流式下载并同步计算内容哈希。
 * @Author: 安知鱼
 * @Date: 2025-08-03 14:10:27
 * @LastEditTime: 2025-08-03 14:10:27
 * @LastEditors: 安知鱼
 */
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// FetchResult 是一次成功下载的结果。哈希在下载流上同步计算，
// 不需要二次读盘。
type FetchResult struct {
	LocalPath string
	Hash      string // SHA-256 十六进制
	Size      int64
	MimeType  string
}

// Fetcher 定义了远端内容获取的接口。
// 超出大小上限返回 constant.ErrSizeExceeded（不清理重试），
// 远端 404 返回 constant.ErrRemoteNotFound，
// 网络类失败包装 constant.ErrTransport。
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// httpFetcher 是基于标准 HTTP 客户端的 Fetcher 实现，
// 进程级限速由 x/time/rate 令牌桶保证。
type httpFetcher struct {
	settingSvc setting.SettingService
	client     *http.Client
	limiter    *rate.Limiter
	tmpDir     string
}

// NewHTTPFetcher 构造函数。tmpDir 为下载临时目录，为空时使用系统默认。
func NewHTTPFetcher(settingSvc setting.SettingService, tmpDir string) Fetcher {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	rps := setting.GetIntOrDefault(settingSvc, constant.KeyIngestFetchRateLimit, 8)
	return &httpFetcher{
		settingSvc: settingSvc,
		client:     &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		tmpDir:     tmpDir,
	}
}

// Fetch 下载远端内容到临时文件，返回本地路径与流式计算出的哈希。
func (f *httpFetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("等待下载令牌失败: %w", err)
	}

	timeout := setting.GetIntOrDefault(f.settingSvc, constant.KeyIngestFetchTimeout, 120)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("构建下载请求失败: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 '%s' 失败: %w: %v", url, constant.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("远端返回 404 (%s): %w", url, constant.ErrRemoteNotFound)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("远端返回状态码 %d (%s): %w", resp.StatusCode, url, constant.ErrTransport)
	}

	maxBytes := f.settingSvc.GetInt64(constant.KeyIngestMaxBytes.String())
	if maxBytes <= 0 {
		maxBytes = 500 * 1024 * 1024
	}
	// Content-Length 可信时提前拒绝，避免白下载
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("声明大小 %d 超出上限 %d: %w", resp.ContentLength, maxBytes, constant.ErrSizeExceeded)
	}

	tmpFile, err := os.CreateTemp(f.tmpDir, "ingest-*")
	if err != nil {
		return nil, fmt.Errorf("创建下载临时文件失败: %w", err)
	}

	hasher := sha256.New()
	// 多读一个字节用于判断是否超限
	written, err := io.Copy(io.MultiWriter(tmpFile, hasher), io.LimitReader(resp.Body, maxBytes+1))
	closeErr := tmpFile.Close()

	cleanup := func() {
		if rmErr := os.Remove(tmpFile.Name()); rmErr != nil {
			log.Printf("[Fetcher] 警告: 清理临时文件 '%s' 失败: %v", tmpFile.Name(), rmErr)
		}
	}

	if err != nil {
		cleanup()
		return nil, fmt.Errorf("下载 '%s' 中断: %w: %v", url, constant.ErrTransport, err)
	}
	if closeErr != nil {
		cleanup()
		return nil, fmt.Errorf("关闭下载临时文件失败: %w", closeErr)
	}
	if written > maxBytes {
		cleanup()
		return nil, fmt.Errorf("下载大小超出上限 %d: %w", maxBytes, constant.ErrSizeExceeded)
	}
	if written == 0 {
		cleanup()
		return nil, fmt.Errorf("下载到零字节内容 (%s): %w", url, constant.ErrCorrupted)
	}

	return &FetchResult{
		LocalPath: tmpFile.Name(),
		Hash:      hex.EncodeToString(hasher.Sum(nil)),
		Size:      written,
		MimeType:  parseMimeType(resp.Header.Get("Content-Type")),
	}, nil
}

// parseMimeType 去掉 Content-Type 中的参数部分，解析失败返回空串。
func parseMimeType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}
