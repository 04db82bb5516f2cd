package ent

import (
	"context"
	"database/sql"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
)

// entLineageEdgeRepository 是 LineageEdgeRepository 接口的 Ent 实现。
type entLineageEdgeRepository struct {
	client *ent.Client
}

// NewEntLineageEdgeRepository 是 entLineageEdgeRepository 的构造函数。
func NewEntLineageEdgeRepository(client *ent.Client) repository.LineageEdgeRepository {
	return &entLineageEdgeRepository{client: client}
}

// Create 创建一条谱系边。
// 重复写入会命中 (child, parent, relation, sequence) 唯一约束，
// 映射为 ErrConflict 由调用方按幂等处理。
func (r *entLineageEdgeRepository) Create(ctx context.Context, edge *model.LineageEdge) error {
	createBuilder := r.client.LineageEdge.
		Create().
		SetChildID(edge.ChildID).
		SetParentID(edge.ParentID).
		SetRelationType(string(edge.RelationType)).
		SetOperationType(edge.OperationType).
		SetSequenceOrder(edge.SequenceOrder)

	if edge.ParentTimeStart.Valid {
		createBuilder.SetParentTimeStart(edge.ParentTimeStart.Float64)
	}
	if edge.ParentTimeEnd.Valid {
		createBuilder.SetParentTimeEnd(edge.ParentTimeEnd.Float64)
	}
	if edge.ParentFrame.Valid {
		createBuilder.SetParentFrame(edge.ParentFrame.Int64)
	}
	if edge.InfluenceType.Valid {
		createBuilder.SetInfluenceType(edge.InfluenceType.String)
	}
	if edge.InfluenceWeight.Valid {
		createBuilder.SetInfluenceWeight(edge.InfluenceWeight.Float64)
	}
	if edge.InfluenceRegion.Valid {
		createBuilder.SetInfluenceRegion(edge.InfluenceRegion.String)
	}

	created, err := createBuilder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return constant.ErrConflict
		}
		return err
	}
	edge.ID = created.ID
	edge.CreatedAt = created.CreatedAt
	return nil
}

// ListByChild 返回指向 child 的全部边，按 sequence_order 升序。
func (r *entLineageEdgeRepository) ListByChild(ctx context.Context, childID uint) ([]*model.LineageEdge, error) {
	entEdges, err := r.client.LineageEdge.Query().
		Where(lineageedge.ChildID(childID)).
		Order(ent.Asc(lineageedge.FieldSequenceOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainLineageEdges(entEdges), nil
}

// ListByParent 返回以 parent 为输入的全部边。
func (r *entLineageEdgeRepository) ListByParent(ctx context.Context, parentID uint) ([]*model.LineageEdge, error) {
	entEdges, err := r.client.LineageEdge.Query().
		Where(lineageedge.ParentID(parentID)).
		Order(ent.Asc(lineageedge.FieldSequenceOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainLineageEdges(entEdges), nil
}

// DeleteByChild 删除 child 的全部入边。
func (r *entLineageEdgeRepository) DeleteByChild(ctx context.Context, childID uint) error {
	_, err := r.client.LineageEdge.Delete().
		Where(lineageedge.ChildID(childID)).
		Exec(ctx)
	return err
}

// DeleteByAsset 删除与资产相关的全部边（入边与出边）。
func (r *entLineageEdgeRepository) DeleteByAsset(ctx context.Context, assetID uint) error {
	_, err := r.client.LineageEdge.Delete().
		Where(
			lineageedge.Or(
				lineageedge.ChildID(assetID),
				lineageedge.ParentID(assetID),
			),
		).
		Exec(ctx)
	return err
}

// FillOptional 只填充指定边上此前为 NULL 的可选字段。
func (r *entLineageEdgeRepository) FillOptional(ctx context.Context, edgeID uint, patch *model.LineageEdge) error {
	entEdge, err := r.client.LineageEdge.Get(ctx, edgeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return err
	}

	updateBuilder := r.client.LineageEdge.UpdateOneID(edgeID)
	dirty := false

	if entEdge.ParentTimeStart == nil && patch.ParentTimeStart.Valid {
		updateBuilder.SetParentTimeStart(patch.ParentTimeStart.Float64)
		dirty = true
	}
	if entEdge.ParentTimeEnd == nil && patch.ParentTimeEnd.Valid {
		updateBuilder.SetParentTimeEnd(patch.ParentTimeEnd.Float64)
		dirty = true
	}
	if entEdge.ParentFrame == nil && patch.ParentFrame.Valid {
		updateBuilder.SetParentFrame(patch.ParentFrame.Int64)
		dirty = true
	}
	if entEdge.InfluenceType == "" && patch.InfluenceType.Valid {
		updateBuilder.SetInfluenceType(patch.InfluenceType.String)
		dirty = true
	}
	if entEdge.InfluenceWeight == nil && patch.InfluenceWeight.Valid {
		updateBuilder.SetInfluenceWeight(patch.InfluenceWeight.Float64)
		dirty = true
	}
	if entEdge.InfluenceRegion == "" && patch.InfluenceRegion.Valid {
		updateBuilder.SetInfluenceRegion(patch.InfluenceRegion.String)
		dirty = true
	}

	if !dirty {
		return nil
	}
	_, err = updateBuilder.Save(ctx)
	return err
}

// --- 数据转换辅助函数 ---

func toDomainLineageEdges(entEdges []*ent.LineageEdge) []*model.LineageEdge {
	domainEdges := make([]*model.LineageEdge, len(entEdges))
	for i, e := range entEdges {
		domainEdges[i] = toDomainLineageEdge(e)
	}
	return domainEdges
}

// toDomainLineageEdge 将 ent 生成的谱系边对象转换为领域模型对象。
func toDomainLineageEdge(e *ent.LineageEdge) *model.LineageEdge {
	if e == nil {
		return nil
	}
	domain := &model.LineageEdge{
		ID:            e.ID,
		CreatedAt:     e.CreatedAt,
		ChildID:       e.ChildID,
		ParentID:      e.ParentID,
		RelationType:  model.RelationType(e.RelationType),
		OperationType: e.OperationType,
		SequenceOrder: e.SequenceOrder,
	}

	if e.ParentTimeStart != nil {
		domain.ParentTimeStart = sql.NullFloat64{Float64: *e.ParentTimeStart, Valid: true}
	}
	if e.ParentTimeEnd != nil {
		domain.ParentTimeEnd = sql.NullFloat64{Float64: *e.ParentTimeEnd, Valid: true}
	}
	if e.ParentFrame != nil {
		domain.ParentFrame = sql.NullInt64{Int64: *e.ParentFrame, Valid: true}
	}
	if e.InfluenceType != "" {
		domain.InfluenceType = sql.NullString{String: e.InfluenceType, Valid: true}
	}
	if e.InfluenceWeight != nil {
		domain.InfluenceWeight = sql.NullFloat64{Float64: *e.InfluenceWeight, Valid: true}
	}
	if e.InfluenceRegion != "" {
		domain.InfluenceRegion = sql.NullString{String: e.InfluenceRegion, Valid: true}
	}

	return domain
}
