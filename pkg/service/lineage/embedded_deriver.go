/*
 * @Description: 从元数据中持久化的内嵌父引用推导谱系边。
 * @Author: 安知鱼
 * @Date: 2025-08-07 09:41:20
 * @LastEditTime: 2025-08-07 09:41:20
 * @LastEditors: 安知鱼
 */
package lineage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
)

// EmbeddedMetadataDeriver 读取子资产元数据中持久化的内嵌父引用
// （MetaKeyEmbeddedParents），是谱系重建时生成记录输入列表之外的
// 第二个推导来源。内嵌子资产没有生成记录，全靠它恢复谱系边。
type EmbeddedMetadataDeriver struct {
	metaRepo repository.MetadataRepository
}

// NewEmbeddedMetadataDeriver 是 EmbeddedMetadataDeriver 的构造函数。
func NewEmbeddedMetadataDeriver(metaRepo repository.MetadataRepository) *EmbeddedMetadataDeriver {
	return &EmbeddedMetadataDeriver{metaRepo: metaRepo}
}

// Derive 实现 EdgeDeriver 接口。没有记录不算错误，返回空引用。
func (d *EmbeddedMetadataDeriver) Derive(ctx context.Context, asset *model.Asset) ([]model.ParentRef, error) {
	raw, err := d.metaRepo.Get(ctx, asset.ID, model.MetaKeyEmbeddedParents)
	if errors.Is(err, constant.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("加载资产 %d 的内嵌父引用失败: %w", asset.ID, err)
	}

	var records []model.EmbeddedParentRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("资产 %d 的内嵌父引用记录损坏: %w", asset.ID, err)
	}

	refs := make([]model.ParentRef, 0, len(records))
	for _, rec := range records {
		refs = append(refs, model.ParentRef{
			ParentID:      rec.ParentID,
			RelationType:  rec.RelationType,
			OperationType: rec.OperationType,
			SequenceOrder: rec.SequenceOrder,
		})
	}
	return refs, nil
}
