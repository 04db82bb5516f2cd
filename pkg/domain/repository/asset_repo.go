/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 14:02:18
 * @LastEditTime: 2026-01-08 15:40:55
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// AssetRepository 定义了资产记录的持久化接口。
// 未找到时返回 constant.ErrNotFound，由调用方用 errors.Is 判断。
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	Update(ctx context.Context, asset *model.Asset) error
	FindByID(ctx context.Context, id uint) (*model.Asset, error)

	// FindByProviderTuple 按 (owner, provider, 任一候选原生id) 精确查找。
	FindByProviderTuple(ctx context.Context, ownerID uint, providerID string, candidateIDs []string) (*model.Asset, error)

	// FindByContentHash 按 (owner, hash) 精确查找。
	FindByContentHash(ctx context.Context, ownerID uint, hash string) (*model.Asset, error)

	// FindFingerprinted 返回指定用户所有携带感知指纹的图片资产，
	// 供近似去重做线性扫描。
	FindFingerprinted(ctx context.Context, ownerID uint) ([]*model.Asset, error)

	// FindBySourceURL 按规范化后的来源 URL 精确查找。
	FindBySourceURL(ctx context.Context, ownerID uint, url string) (*model.Asset, error)

	// FindBySourceURLFragment 在同 owner 同 provider 范围内，
	// 按来源 URL 的尾段子串做兜底匹配。
	FindBySourceURLFragment(ctx context.Context, ownerID uint, providerID string, fragment string) (*model.Asset, error)

	// FindPendingBatch 按创建时间从旧到新返回至多 limit 条 pending 记录。
	FindPendingBatch(ctx context.Context, limit int) ([]*model.Asset, error)

	// FindByGenerationIDs 返回生成记录集合所产出的全部资产。
	FindByGenerationIDs(ctx context.Context, generationIDs []uint) ([]*model.Asset, error)

	// FindBatchByIDs 批量查找，结果不保证顺序，缺失的 id 被跳过。
	FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.Asset, error)

	// Delete 删除资产记录。谱系边的级联清理由服务层先行完成。
	Delete(ctx context.Context, id uint) error
}
