/*
 * @Description: 多策略资产去重解析器。
 * @Author: 安知鱼
 * @Date: 2025-08-07 14:10:40
 * @LastEditTime: 2026-01-12 09:55:31
 * @LastEditors: 安知鱼
 */
package dedup

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/urlnorm"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/service/phash"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
	"github.com/anzhiyu-c/mediaflow/pkg/service/utility"
)

// Strategy 标识命中去重的策略。
type Strategy string

const (
	StrategyProviderTuple Strategy = "provider_tuple"
	StrategyContentHash   Strategy = "content_hash"
	StrategyNearDuplicate Strategy = "near_duplicate"
	StrategySourceURL     Strategy = "source_url"
)

// 策略优先级，数值越小越可信。
var strategyPriority = map[Strategy]int{
	StrategyProviderTuple: 0,
	StrategyContentHash:   1,
	StrategyNearDuplicate: 2,
	StrategySourceURL:     3,
}

// Signals 是一次解析可用的全部身份信号。各字段均可缺省，
// 解析器只运行信号齐备的策略。
type Signals struct {
	ProviderID   string
	CandidateIDs []string

	ContentHash string

	PerceptualHash        types.NullUint64
	PerceptualHashVersion int

	SourceURL string
}

// Match 是解析结果：命中的资产、命中的策略，以及近似命中时的距离。
type Match struct {
	Asset    *model.Asset
	Strategy Strategy
	Distance int // 仅 StrategyNearDuplicate 时有意义
}

// IResolver 定义了去重解析服务的接口。
type IResolver interface {
	// Resolve 运行所有可用策略并返回优先级最高的命中；未命中返回 nil, nil。
	Resolve(ctx context.Context, ownerID uint, sig Signals) (*Match, error)

	// Absorb 将信号非破坏性地合并到已命中的资产上，
	// 只补空缺字段，冲突（哈希不一致、provider 映射不一致）记录日志并保留原值。
	// 返回值表示资产是否被修改。
	Absorb(asset *model.Asset, sig Signals) bool
}

type resolver struct {
	assetRepo  repository.AssetRepository
	settingSvc setting.SettingService
	cacheSvc   utility.CacheService
}

// NewResolver 是去重解析器的构造函数。
func NewResolver(assetRepo repository.AssetRepository, settingSvc setting.SettingService, cacheSvc utility.CacheService) IResolver {
	return &resolver{
		assetRepo:  assetRepo,
		settingSvc: settingSvc,
		cacheSvc:   cacheSvc,
	}
}

// Resolve 独立运行每个策略后按优先级裁决。
// 不同策略命中不同资产时记录冲突日志，最终采用优先级最高的结果。
func (r *resolver) Resolve(ctx context.Context, ownerID uint, sig Signals) (*Match, error) {
	var matches []*Match

	if m, err := r.byProviderTuple(ctx, ownerID, sig); err != nil {
		return nil, err
	} else if m != nil {
		matches = append(matches, m)
	}

	if m, err := r.byContentHash(ctx, ownerID, sig); err != nil {
		return nil, err
	} else if m != nil {
		matches = append(matches, m)
	}

	if m, err := r.byNearDuplicate(ctx, ownerID, sig); err != nil {
		return nil, err
	} else if m != nil {
		matches = append(matches, m)
	}

	if m, err := r.bySourceURL(ctx, ownerID, sig); err != nil {
		return nil, err
	} else if m != nil {
		matches = append(matches, m)
	}

	if len(matches) == 0 {
		return nil, nil
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Asset.ID != best.Asset.ID {
			log.Printf("[DedupResolver] 策略冲突: %s 命中资产 %d，%s 命中资产 %d，采用优先级更高的 %s",
				best.Strategy, best.Asset.ID, m.Strategy, m.Asset.ID, best.Strategy)
		}
		if strategyPriority[m.Strategy] < strategyPriority[best.Strategy] {
			best = m
		}
	}
	return best, nil
}

// byProviderTuple 按 (owner, provider, 任一候选原生id) 精确匹配。
func (r *resolver) byProviderTuple(ctx context.Context, ownerID uint, sig Signals) (*Match, error) {
	if sig.ProviderID == "" || len(sig.CandidateIDs) == 0 {
		return nil, nil
	}
	asset, err := r.assetRepo.FindByProviderTuple(ctx, ownerID, sig.ProviderID, sig.CandidateIDs)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Match{Asset: asset, Strategy: StrategyProviderTuple}, nil
}

// byContentHash 按 (owner, 内容哈希) 精确匹配。
func (r *resolver) byContentHash(ctx context.Context, ownerID uint, sig Signals) (*Match, error) {
	if sig.ContentHash == "" {
		return nil, nil
	}
	asset, err := r.assetRepo.FindByContentHash(ctx, ownerID, sig.ContentHash)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Match{Asset: asset, Strategy: StrategyContentHash}, nil
}

// byNearDuplicate 对用户已有指纹的图片资产做线性汉明距离扫描，
// 取距离最小且不超过阈值的一条。算法版本不同的指纹跳过比较。
func (r *resolver) byNearDuplicate(ctx context.Context, ownerID uint, sig Signals) (*Match, error) {
	if !sig.PerceptualHash.Valid || sig.PerceptualHashVersion != phash.Version {
		return nil, nil
	}

	threshold := r.settingSvc.GetInt(constant.KeyDedupPhashThreshold.String())
	if threshold <= 0 {
		threshold = phash.DefaultThreshold
	}

	candidates, err := r.assetRepo.FindFingerprinted(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var best *model.Asset
	bestDist := threshold + 1
	for _, a := range candidates {
		if a.PerceptualHashVersion != sig.PerceptualHashVersion {
			continue
		}
		d := phash.Distance(sig.PerceptualHash.Uint64, a.PerceptualHash.Uint64)
		if d < bestDist {
			best = a
			bestDist = d
		}
	}
	if best == nil {
		return nil, nil
	}
	return &Match{Asset: best, Strategy: StrategyNearDuplicate, Distance: bestDist}, nil
}

// bySourceURL 先按规范化 URL 精确匹配，失败后在配置允许时
// 按尾段子串兜底匹配。兜底命中会递增审计计数器，便于评估误判率。
func (r *resolver) bySourceURL(ctx context.Context, ownerID uint, sig Signals) (*Match, error) {
	if sig.SourceURL == "" {
		return nil, nil
	}

	normalized := urlnorm.Normalize(sig.SourceURL)
	asset, err := r.assetRepo.FindBySourceURL(ctx, ownerID, normalized)
	if err == nil {
		return &Match{Asset: asset, Strategy: StrategySourceURL}, nil
	}
	if !errors.Is(err, constant.ErrNotFound) {
		return nil, err
	}

	if !r.settingSvc.GetBool(constant.KeyDedupEnableURLFallbk.String()) {
		return nil, nil
	}
	fragment := urlnorm.LastSegment(normalized)
	if fragment == "" {
		return nil, nil
	}

	asset, err = r.assetRepo.FindBySourceURLFragment(ctx, ownerID, sig.ProviderID, fragment)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	r.auditURLFallback(ctx, fragment)
	log.Printf("[DedupResolver] URL 尾段兜底命中: fragment=%q asset=%d", fragment, asset.ID)
	return &Match{Asset: asset, Strategy: StrategySourceURL}, nil
}

// auditURLFallback 记录一次兜底命中，计数器保留 30 天。
func (r *resolver) auditURLFallback(ctx context.Context, fragment string) {
	prefix := r.settingSvc.Get(constant.KeyDedupURLAuditPrefix.String())
	if prefix == "" {
		prefix = "dedup:url_fallback:"
	}
	key := prefix + time.Now().Format("2006-01-02")
	if _, err := r.cacheSvc.Increment(ctx, key); err != nil {
		log.Printf("[DedupResolver] 审计计数失败: %v", err)
		return
	}
	_ = r.cacheSvc.Expire(ctx, key, 30*24*time.Hour)
}

// Absorb 将信号合并到命中的资产上，只补空缺，绝不覆盖。
func (r *resolver) Absorb(asset *model.Asset, sig Signals) bool {
	changed := false

	// 内容哈希冲突意味着同一身份对应了不同字节，保留原值并记录
	if sig.ContentHash != "" {
		if !asset.ContentHash.Valid {
			asset.ContentHash.String = sig.ContentHash
			asset.ContentHash.Valid = true
			changed = true
		} else if asset.ContentHash.String != sig.ContentHash {
			log.Printf("[DedupResolver] 内容哈希冲突: 资产 %d 已有 %s，新信号 %s，保留原值",
				asset.ID, asset.ContentHash.String, sig.ContentHash)
		}
	}

	if sig.PerceptualHash.Valid && !asset.PerceptualHash.Valid {
		asset.PerceptualHash = sig.PerceptualHash
		asset.PerceptualHashVersion = sig.PerceptualHashVersion
		changed = true
	}

	if sig.SourceURL != "" && !asset.SourceURL.Valid {
		asset.SourceURL.String = urlnorm.Normalize(sig.SourceURL)
		asset.SourceURL.Valid = true
		changed = true
	}

	// 跨提供方身份记入映射表；原始身份 (ProviderID/ProviderAssetID) 不动
	if sig.ProviderID != "" && len(sig.CandidateIDs) > 0 {
		nativeID := sig.CandidateIDs[0]
		if asset.ProviderMap == nil {
			asset.ProviderMap = make(model.StringMap)
		}
		if existing, ok := asset.ProviderMap[sig.ProviderID]; !ok {
			asset.ProviderMap[sig.ProviderID] = nativeID
			changed = true
		} else if existing != nativeID {
			log.Printf("[DedupResolver] provider 映射冲突: 资产 %d 在 %s 下已有 %s，新信号 %s，保留原值",
				asset.ID, sig.ProviderID, existing, nativeID)
		}
	}

	return changed
}
