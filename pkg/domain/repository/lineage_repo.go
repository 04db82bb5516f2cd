/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 14:13:02
 * @LastEditTime: 2025-12-28 20:30:11
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// LineageEdgeRepository 定义了派生谱系边的持久化接口。
// 边是只追加的：除"填充此前为 NULL 的可选字段"外不允许修改。
type LineageEdgeRepository interface {
	Create(ctx context.Context, edge *model.LineageEdge) error

	// ListByChild 返回指向 child 的全部边，按 sequence_order 升序。
	ListByChild(ctx context.Context, childID uint) ([]*model.LineageEdge, error)

	// ListByParent 返回以 parent 为输入的全部边。
	ListByParent(ctx context.Context, parentID uint) ([]*model.LineageEdge, error)

	// DeleteByChild 删除 child 的全部入边，用于谱系重建。
	DeleteByChild(ctx context.Context, childID uint) error

	// DeleteByAsset 删除与资产相关的全部边（入边与出边），
	// 用于资产删除时的级联清理。
	DeleteByAsset(ctx context.Context, assetID uint) error

	// FillOptional 只填充指定边上此前为 NULL 的可选字段，
	// 已有值的字段保持不变。
	FillOptional(ctx context.Context, edgeID uint, patch *model.LineageEdge) error
}
