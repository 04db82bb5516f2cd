/*
 * @Description: 预览图生成服务。
 * @Author: 安知鱼
 * @Date: 2025-08-03 11:47:25
 * @LastEditTime: 2025-08-03 11:47:25
 * @LastEditors: 安知鱼
 */
package media

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// PreviewService 负责生成资产的大尺寸预览图。
// 预览图键按资产公共ID组织，与缩略图不同，它是资产级而非内容级的产物。
type PreviewService struct {
	generators []Generator
	settingSvc setting.SettingService
}

// NewPreviewService 构造函数，生成器按优先级顺序传入。
func NewPreviewService(settingSvc setting.SettingService, generators ...Generator) *PreviewService {
	return &PreviewService{
		generators: generators,
		settingSvc: settingSvc,
	}
}

// Generate 为资产生成预览图并返回存储键。
// 没有生成器能处理时返回 constant.ErrToolUnavailable。
func (s *PreviewService) Generate(ctx context.Context, asset *model.Asset, sourcePath string) (string, error) {
	publicID, err := idgen.GeneratePublicID(asset.ID, idgen.EntityTypeAsset)
	if err != nil {
		return "", fmt.Errorf("生成资产 %d 的公共ID失败: %w", asset.ID, err)
	}

	boxSize := setting.GetIntOrDefault(s.settingSvc, constant.KeyPreviewBoxSize, 1200)
	quality := setting.GetIntOrDefault(s.settingSvc, constant.KeyPreviewQuality, 85)
	destKey := storage.PreviewKey(asset.OwnerID, publicID)

	for _, g := range s.generators {
		if !g.CanHandle(ctx, asset) {
			continue
		}
		result, err := g.Generate(ctx, asset, sourcePath, destKey, boxSize, quality)
		if err != nil {
			return "", err
		}
		log.Printf("[PreviewService] 资产 %d 的预览图由 %s 生成完毕。", asset.ID, result.GeneratorName)
		return destKey, nil
	}

	return "", constant.ErrToolUnavailable
}
