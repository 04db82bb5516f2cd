/*
 * @Description: 生成操作的可复现哈希与同批次兄弟产物查询。
 * @Author: 安知鱼
 * @Date: 2025-08-03 17:28:19
 * @LastEditTime: 2025-08-03 17:28:19
 * @LastEditors: 安知鱼
 */
package lineage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// ComputeReproHash 对 (规范化参数, 输入列表) 二元组计算 SHA-256。
// encoding/json 对 map 键按字典序编码，嵌套层级同样成立，
// 因此相同语义的参数无论构造顺序如何都会得到同一哈希。
// 输入列表的顺序有业务含义，保持原样参与哈希。
func ComputeReproHash(params model.JSONMap, inputs []string) (string, error) {
	if inputs == nil {
		inputs = []string{}
	}
	canonical, err := json.Marshal([2]interface{}{params, inputs})
	if err != nil {
		return "", fmt.Errorf("规范化生成参数失败: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Siblings 返回与指定资产同批次的兄弟产物：持有相同可复现哈希的
// 所有生成记录（限同一用户）产出的资产，排除自身。
// 资产没有关联生成记录时返回空集，不视为错误。
func (s *Service) Siblings(ctx context.Context, assetID uint, ownerID uint) ([]*model.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("资产 %d 不存在: %w", assetID, err)
	}
	if !asset.GenerationID.Valid {
		return nil, nil
	}

	gen, err := s.genRepo.FindByID(ctx, uint(asset.GenerationID.Uint64))
	if err != nil {
		return nil, fmt.Errorf("加载生成记录失败: %w", err)
	}

	generations, err := s.genRepo.FindByReproHash(ctx, ownerID, gen.ReproHash)
	if err != nil {
		return nil, fmt.Errorf("按可复现哈希查询生成记录失败: %w", err)
	}
	if len(generations) == 0 {
		return nil, nil
	}

	genIDs := make([]uint, 0, len(generations))
	for _, g := range generations {
		genIDs = append(genIDs, g.ID)
	}

	assets, err := s.assetRepo.FindByGenerationIDs(ctx, genIDs)
	if err != nil {
		return nil, fmt.Errorf("加载兄弟产物失败: %w", err)
	}

	siblings := make([]*model.Asset, 0, len(assets))
	for _, a := range assets {
		if a.ID != assetID {
			siblings = append(siblings, a)
		}
	}
	return siblings, nil
}
