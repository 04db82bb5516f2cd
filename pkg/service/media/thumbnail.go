/*
 * @Description: 缩略图生成服务，按注册顺序选择第一个能处理的生成器。
 * @Author: 安知鱼
 * @Date: 2025-08-03 11:38:52
 * @LastEditTime: 2025-08-03 11:38:52
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
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// ThumbnailService 负责生成资产的缩略图。
// 缩略图键由内容哈希推导，同一内容的缩略图天然共享。
type ThumbnailService struct {
	generators []Generator
	settingSvc setting.SettingService
}

// NewThumbnailService 构造函数，生成器按优先级顺序传入。
func NewThumbnailService(settingSvc setting.SettingService, generators ...Generator) *ThumbnailService {
	return &ThumbnailService{
		generators: generators,
		settingSvc: settingSvc,
	}
}

// Generate 为资产生成缩略图并返回存储键。
// 没有生成器能处理时返回 constant.ErrToolUnavailable，调用方按降级处理。
func (s *ThumbnailService) Generate(ctx context.Context, asset *model.Asset, sourcePath string) (string, error) {
	if !asset.ContentHash.Valid {
		return "", fmt.Errorf("资产 %d 缺少内容哈希，无法推导缩略图键", asset.ID)
	}

	boxSize := setting.GetIntOrDefault(s.settingSvc, constant.KeyThumbnailBoxSize, 400)
	destKey := storage.ThumbnailKey(asset.OwnerID, asset.ContentHash.String)

	for _, g := range s.generators {
		if !g.CanHandle(ctx, asset) {
			continue
		}
		result, err := g.Generate(ctx, asset, sourcePath, destKey, boxSize, 80)
		if err != nil {
			return "", err
		}
		log.Printf("[ThumbnailService] 资产 %d 的缩略图由 %s 生成完毕。", asset.ID, result.GeneratorName)
		return destKey, nil
	}

	return "", constant.ErrToolUnavailable
}
