/*
 * @Description: 摄取管道的各个阶段实现。
 * @Author: 安知鱼
 * @Date: 2025-08-03 15:30:46
 * @LastEditTime: 2025-08-03 15:30:46
 * @LastEditors: 安知鱼
 */
package ingest

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
)

// stageEnsureLocal 确保资产有可读的本地副本，返回本地路径。
// 优先级: 已有本地缓存 > 从内容寻址存储回填 > 远端下载。
// 下载成功时顺带写入内容哈希、大小与 MIME 类型。
func (p *Pipeline) stageEnsureLocal(ctx context.Context, asset *model.Asset, opts Options) (string, StageResult) {
	// 1. 本地缓存路径可能已失效，使用前必须检查
	if asset.LocalPath.Valid {
		if _, err := os.Stat(asset.LocalPath.String); err == nil {
			return asset.LocalPath.String, StageResult{Stage: StageEnsureLocal, Outcome: OutcomeSkipped, Reason: "本地副本已存在"}
		}
		log.Printf("[IngestPipeline] 资产 %d 记录的本地路径 '%s' 已失效，将重新获取。", asset.ID, asset.LocalPath.String)
	}

	// 2. 内容已在存储中时直接回填，不产生远端下载
	if asset.StorageKey.Valid {
		if exists, err := p.store.Exists(ctx, asset.StorageKey.String); err == nil && exists {
			localPath, err := p.materializeFromStore(ctx, asset.StorageKey.String)
			if err != nil {
				return "", StageResult{Stage: StageEnsureLocal, Outcome: OutcomeFailed, Err: err, Fatal: true}
			}
			asset.LocalPath = sql.NullString{String: localPath, Valid: true}
			return localPath, StageResult{Stage: StageEnsureLocal, Outcome: OutcomeCompleted}
		}
	}

	// 3. 远端下载
	if !asset.SourceURL.Valid {
		return "", StageResult{
			Stage: StageEnsureLocal, Outcome: OutcomeFailed, Fatal: true,
			Err: fmt.Errorf("资产 %d 没有可用的内容来源", asset.ID),
		}
	}

	result, err := p.retryFetch(ctx, asset.SourceURL.String)
	if err != nil {
		return "", StageResult{Stage: StageEnsureLocal, Outcome: OutcomeFailed, Err: err, Fatal: true}
	}

	// 哈希一经写入不得被静默覆盖，不一致属于冲突，记录后以实际字节为准
	if asset.ContentHash.Valid && asset.ContentHash.String != result.Hash {
		log.Printf("[IngestPipeline] 冲突: 资产 %d 记录的内容哈希 %s 与下载内容 %s 不一致，以下载内容为准。",
			asset.ID, asset.ContentHash.String, result.Hash)
	}
	asset.ContentHash = sql.NullString{String: result.Hash, Valid: true}
	asset.LocalPath = sql.NullString{String: result.LocalPath, Valid: true}
	asset.Size = result.Size
	if !asset.MimeType.Valid && result.MimeType != "" {
		asset.MimeType = sql.NullString{String: result.MimeType, Valid: true}
	}
	asset.DownloadedAt = sql.NullTime{Time: time.Now(), Valid: true}

	return result.LocalPath, StageResult{Stage: StageEnsureLocal, Outcome: OutcomeCompleted}
}

// stageStore 将本地内容写入内容寻址存储，并确保全局 ContentBlob 行存在。
// 存储写入与 blob 登记在同一个事务性进度提交中完成。
func (p *Pipeline) stageStore(ctx context.Context, asset *model.Asset, localPath string, opts Options) StageResult {
	// 只有键确实寻址当前哈希时才可跳过，哈希冲突被覆盖后必须重新入库
	if asset.StorageKey.Valid && !opts.Force && asset.ContentHash.Valid &&
		asset.StorageKey.String == storage.ContentKey(asset.OwnerID, asset.ContentHash.String, asset.Ext()) {
		return StageResult{Stage: StageStore, Outcome: OutcomeSkipped, Reason: "内容已入库"}
	}

	if !asset.ContentHash.Valid {
		hash, err := hashFile(localPath)
		if err != nil {
			return StageResult{Stage: StageStore, Outcome: OutcomeFailed, Err: err, Fatal: true}
		}
		asset.ContentHash = sql.NullString{String: hash, Valid: true}
	}

	f, err := os.Open(localPath)
	if err != nil {
		return StageResult{
			Stage: StageStore, Outcome: OutcomeFailed, Fatal: true,
			Err: fmt.Errorf("打开资产 %d 的本地副本失败: %w", asset.ID, err),
		}
	}
	defer f.Close()

	// Store 是幂等的，同哈希内容已存在时不产生写入
	key, err := p.store.Store(ctx, asset.OwnerID, asset.ContentHash.String, f, asset.Ext())
	if err != nil {
		return StageResult{
			Stage: StageStore, Outcome: OutcomeFailed, Fatal: true,
			Err: fmt.Errorf("资产 %d 写入内容寻址存储失败: %w", asset.ID, err),
		}
	}
	asset.StorageKey = sql.NullString{String: key, Valid: true}

	err = p.txManager.Do(ctx, func(repos repository.Repositories) error {
		mime := ""
		if asset.MimeType.Valid {
			mime = asset.MimeType.String
		}
		if _, err := repos.ContentBlob.Ensure(ctx, asset.ContentHash.String, asset.Size, mime); err != nil {
			return fmt.Errorf("登记内容 blob 失败: %w", err)
		}
		return repos.Asset.Update(ctx, asset)
	})
	if err != nil {
		return StageResult{Stage: StageStore, Outcome: OutcomeFailed, Err: err, Fatal: true}
	}

	return StageResult{Stage: StageStore, Outcome: OutcomeCompleted}
}

// stageMetadata 提取媒体元数据。失败不影响整体完成，时间戳保持未设置。
func (p *Pipeline) stageMetadata(ctx context.Context, asset *model.Asset, localPath string, opts Options) StageResult {
	if !stepSelected(opts, StageMetadata) {
		return StageResult{Stage: StageMetadata, Outcome: OutcomeSkipped, Reason: "未选中"}
	}
	if asset.MetadataExtractedAt.Valid && !opts.Force {
		return StageResult{Stage: StageMetadata, Outcome: OutcomeSkipped, Reason: "已提取"}
	}

	if err := p.extractor.ExtractAndSave(ctx, asset, localPath); err != nil {
		return StageResult{Stage: StageMetadata, Outcome: OutcomeFailed, Err: err}
	}
	asset.MetadataExtractedAt = sql.NullTime{Time: time.Now(), Valid: true}
	return StageResult{Stage: StageMetadata, Outcome: OutcomeCompleted}
}

// stageThumbnail 生成缩略图。外部工具不可用按降级跳过。
func (p *Pipeline) stageThumbnail(ctx context.Context, asset *model.Asset, localPath string, opts Options) StageResult {
	if !stepSelected(opts, StageThumbnail) {
		return StageResult{Stage: StageThumbnail, Outcome: OutcomeSkipped, Reason: "未选中"}
	}
	if asset.ThumbnailGeneratedAt.Valid && !opts.Force {
		return StageResult{Stage: StageThumbnail, Outcome: OutcomeSkipped, Reason: "已生成"}
	}

	key, err := p.thumbSvc.Generate(ctx, asset, localPath)
	if err != nil {
		if errors.Is(err, constant.ErrToolUnavailable) {
			return StageResult{Stage: StageThumbnail, Outcome: OutcomeSkipped, Reason: "没有可用的生成器"}
		}
		return StageResult{Stage: StageThumbnail, Outcome: OutcomeFailed, Err: err}
	}
	asset.ThumbnailKey = sql.NullString{String: key, Valid: true}
	asset.ThumbnailGeneratedAt = sql.NullTime{Time: time.Now(), Valid: true}
	return StageResult{Stage: StageThumbnail, Outcome: OutcomeCompleted}
}

// stagePreview 生成预览图。外部工具不可用按降级跳过。
func (p *Pipeline) stagePreview(ctx context.Context, asset *model.Asset, localPath string, opts Options) StageResult {
	if !stepSelected(opts, StagePreview) {
		return StageResult{Stage: StagePreview, Outcome: OutcomeSkipped, Reason: "未选中"}
	}
	if asset.PreviewGeneratedAt.Valid && !opts.Force {
		return StageResult{Stage: StagePreview, Outcome: OutcomeSkipped, Reason: "已生成"}
	}

	key, err := p.previewSvc.Generate(ctx, asset, localPath)
	if err != nil {
		if errors.Is(err, constant.ErrToolUnavailable) {
			return StageResult{Stage: StagePreview, Outcome: OutcomeSkipped, Reason: "没有可用的生成器"}
		}
		return StageResult{Stage: StagePreview, Outcome: OutcomeFailed, Err: err}
	}
	asset.PreviewKey = sql.NullString{String: key, Valid: true}
	asset.PreviewGeneratedAt = sql.NullTime{Time: time.Now(), Valid: true}
	return StageResult{Stage: StagePreview, Outcome: OutcomeCompleted}
}

// materializeFromStore 把存储中的内容拉到本地临时文件。
func (p *Pipeline) materializeFromStore(ctx context.Context, key string) (string, error) {
	rc, err := p.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("读取存储键 '%s' 失败: %w", key, err)
	}
	defer rc.Close()

	tmpFile, err := os.CreateTemp(p.tmpDir, "materialize-*")
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}
	if _, err := io.Copy(tmpFile, rc); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("回填本地副本失败: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}
	return tmpFile.Name(), nil
}

// hashFile 计算本地文件的 SHA-256。
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
