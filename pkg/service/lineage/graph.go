/*
 * @Description: 派生谱系图服务：建边、双向有界遍历与谱系重建。
 * @Author: 安知鱼
 * @Date: 2025-08-03 17:05:33
 * @LastEditTime: 2025-08-03 17:05:33
 * @LastEditors: 安知鱼
 */
package lineage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
)

const (
	// DefaultTraversalDepth 是未指定深度时的遍历深度。
	DefaultTraversalDepth = 3
	// MaxTraversalDepth 是遍历深度的硬上限，防止病态深图拖垮查询。
	MaxTraversalDepth = 10
)

// EdgeDeriver 允许外部协作方（如 provider 同步层）为资产补充派生边来源，
// 谱系重建时与生成记录的输入列表合并使用。
type EdgeDeriver interface {
	Derive(ctx context.Context, asset *model.Asset) ([]model.ParentRef, error)
}

// Service 维护资产间的派生谱系图。
type Service struct {
	assetRepo repository.AssetRepository
	edgeRepo  repository.LineageEdgeRepository
	genRepo   repository.GenerationRepository
	derivers  []EdgeDeriver
}

// NewService 构造函数。derivers 按注册顺序参与谱系重建。
func NewService(
	assetRepo repository.AssetRepository,
	edgeRepo repository.LineageEdgeRepository,
	genRepo repository.GenerationRepository,
	derivers ...EdgeDeriver,
) *Service {
	return &Service{
		assetRepo: assetRepo,
		edgeRepo:  edgeRepo,
		genRepo:   genRepo,
		derivers:  derivers,
	}
}

// AddEdges 为 child 批量建边。自环与父资产缺失只跳过那条边，
// 重复建边（唯一键冲突）按幂等处理，返回实际写入的边数。
func (s *Service) AddEdges(ctx context.Context, childID uint, parents []model.ParentRef) (int, error) {
	if _, err := s.assetRepo.FindByID(ctx, childID); err != nil {
		return 0, fmt.Errorf("子资产 %d 不存在: %w", childID, err)
	}

	added := 0
	for _, ref := range parents {
		if ref.ParentID == childID {
			log.Printf("[LineageGraph] 资产 %d 不能作为自身的父资产，跳过该边。", childID)
			continue
		}
		if _, err := s.assetRepo.FindByID(ctx, ref.ParentID); err != nil {
			log.Printf("[LineageGraph] 父资产 %d 不存在，跳过该边 (child=%d)。", ref.ParentID, childID)
			continue
		}

		edge := &model.LineageEdge{
			ChildID:         childID,
			ParentID:        ref.ParentID,
			RelationType:    ref.RelationType,
			OperationType:   ref.OperationType,
			SequenceOrder:   ref.SequenceOrder,
			ParentTimeStart: ref.ParentTimeStart,
			ParentTimeEnd:   ref.ParentTimeEnd,
			ParentFrame:     ref.ParentFrame,
			InfluenceType:   ref.InfluenceType,
			InfluenceWeight: ref.InfluenceWeight,
			InfluenceRegion: ref.InfluenceRegion,
		}
		err := s.edgeRepo.Create(ctx, edge)
		if errors.Is(err, constant.ErrConflict) {
			// 边已存在，幂等跳过
			continue
		}
		if err != nil {
			return added, fmt.Errorf("写入谱系边 (child=%d, parent=%d) 失败: %w", childID, ref.ParentID, err)
		}
		added++
	}
	return added, nil
}

// Parents 返回指向 child 的全部入边，按 sequence_order 升序。
func (s *Service) Parents(ctx context.Context, childID uint) ([]*model.LineageEdge, error) {
	return s.edgeRepo.ListByChild(ctx, childID)
}

// Children 返回以 parent 为输入的全部出边。
func (s *Service) Children(ctx context.Context, parentID uint) ([]*model.LineageEdge, error) {
	return s.edgeRepo.ListByParent(ctx, parentID)
}

// Traverse 从 root 出发做上行、下行两次有界 BFS，
// 返回按 (source, target, relation, sequence) 去重后的节点与边。
func (s *Service) Traverse(ctx context.Context, rootID uint, depth int) (*model.TraversalResult, error) {
	if depth <= 0 {
		depth = DefaultTraversalDepth
	}
	if depth > MaxTraversalDepth {
		depth = MaxTraversalDepth
	}

	if _, err := s.assetRepo.FindByID(ctx, rootID); err != nil {
		return nil, fmt.Errorf("遍历起点 %d 不存在: %w", rootID, err)
	}

	seenEdges := make(map[model.EdgeKey]*model.LineageEdge)
	seenNodes := map[uint]struct{}{rootID: {}}

	// 上行：沿入边找祖先
	if err := s.walk(ctx, rootID, depth, seenEdges, seenNodes, true); err != nil {
		return nil, err
	}
	// 下行：沿出边找后代
	if err := s.walk(ctx, rootID, depth, seenEdges, seenNodes, false); err != nil {
		return nil, err
	}

	nodeIDs := make([]uint, 0, len(seenNodes))
	for id := range seenNodes {
		nodeIDs = append(nodeIDs, id)
	}
	nodes, err := s.assetRepo.FindBatchByIDs(ctx, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("批量加载遍历节点失败: %w", err)
	}

	edges := make([]*model.LineageEdge, 0, len(seenEdges))
	for _, e := range seenEdges {
		edges = append(edges, e)
	}
	return &model.TraversalResult{Nodes: nodes, Edges: edges}, nil
}

// walk 是单方向的 BFS。upward 为 true 时沿入边向祖先扩展。
func (s *Service) walk(
	ctx context.Context,
	rootID uint,
	depth int,
	seenEdges map[model.EdgeKey]*model.LineageEdge,
	seenNodes map[uint]struct{},
	upward bool,
) error {
	frontier := []uint{rootID}
	visited := map[uint]struct{}{rootID: {}}

	for level := 0; level < depth && len(frontier) > 0; level++ {
		var next []uint
		for _, id := range frontier {
			var (
				edges []*model.LineageEdge
				err   error
			)
			if upward {
				edges, err = s.edgeRepo.ListByChild(ctx, id)
			} else {
				edges, err = s.edgeRepo.ListByParent(ctx, id)
			}
			if err != nil {
				return fmt.Errorf("展开节点 %d 的谱系边失败: %w", id, err)
			}

			for _, e := range edges {
				if _, ok := seenEdges[e.EdgeKey()]; !ok {
					seenEdges[e.EdgeKey()] = e
				}
				other := e.ParentID
				if !upward {
					other = e.ChildID
				}
				seenNodes[other] = struct{}{}
				if _, ok := visited[other]; !ok {
					visited[other] = struct{}{}
					next = append(next, other)
				}
			}
		}
		frontier = next
	}
	return nil
}

// RefreshLineage 重建资产的入边：删除现有入边，再从生成记录的
// 输入列表与注册的派生来源重新推导。
// 没有任何可推导来源的资产保留现有边不动，重建对它只会丢失谱系。
func (s *Service) RefreshLineage(ctx context.Context, childID uint) error {
	asset, err := s.assetRepo.FindByID(ctx, childID)
	if err != nil {
		return fmt.Errorf("资产 %d 不存在: %w", childID, err)
	}

	refs, err := s.deriveParentRefs(ctx, asset)
	if err != nil {
		return err
	}

	if len(refs) == 0 && !asset.GenerationID.Valid {
		log.Printf("[LineageGraph] 资产 %d 没有可推导的谱系来源，保留现有边。", childID)
		return nil
	}

	if err := s.edgeRepo.DeleteByChild(ctx, childID); err != nil {
		return fmt.Errorf("清除资产 %d 的旧谱系边失败: %w", childID, err)
	}

	added, err := s.AddEdges(ctx, childID, refs)
	if err != nil {
		return err
	}
	log.Printf("[LineageGraph] 资产 %d 的谱系已重建，共 %d 条边。", childID, added)
	return nil
}

// deriveParentRefs 汇总资产的全部可推导父引用。
func (s *Service) deriveParentRefs(ctx context.Context, asset *model.Asset) ([]model.ParentRef, error) {
	var refs []model.ParentRef

	// 1. 生成记录的输入列表，顺序即 sequence_order
	if asset.GenerationID.Valid {
		gen, err := s.genRepo.FindByID(ctx, uint(asset.GenerationID.Uint64))
		if err != nil && !errors.Is(err, constant.ErrNotFound) {
			return nil, fmt.Errorf("加载生成记录 %d 失败: %w", asset.GenerationID.Uint64, err)
		}
		if gen != nil {
			for i, publicID := range gen.Inputs {
				parentID, _, decErr := idgen.DecodePublicID(publicID)
				if decErr != nil {
					log.Printf("[LineageGraph] 生成记录 %d 的输入 '%s' 无法解码，跳过。", gen.ID, publicID)
					continue
				}
				refs = append(refs, model.ParentRef{
					ParentID:      parentID,
					RelationType:  relationForOperation(gen.OperationType),
					OperationType: gen.OperationType,
					SequenceOrder: i,
				})
			}
		}
	}

	// 2. 注册的外部派生来源（如 provider 内嵌元数据）
	for _, d := range s.derivers {
		derived, err := d.Derive(ctx, asset)
		if err != nil {
			log.Printf("[LineageGraph] 派生来源为资产 %d 推导失败，跳过: %v", asset.ID, err)
			continue
		}
		refs = append(refs, derived...)
	}

	return refs, nil
}

// relationForOperation 按生成操作类型推断父资产的角色。
func relationForOperation(op string) model.RelationType {
	switch op {
	case "transition":
		return model.RelationTransitionInput
	case "pause_derive":
		return model.RelationPausedFrame
	case "keyframe_generation":
		return model.RelationKeyframe
	default:
		return model.RelationSourceImage
	}
}
