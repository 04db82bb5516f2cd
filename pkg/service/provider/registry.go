/*
 * @Description: 提供商能力注册表。内嵌资产提取是按提供商注册的可选能力。
 * @Author: 安知鱼
 * @Date: 2025-08-04 09:12:40
 * @LastEditTime: 2025-08-04 09:12:40
 * @LastEditors: 安知鱼
 */
package provider

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// Extractor 是单个提供商的内嵌资产提取能力：从该提供商的
// 原始记录负载中找出内嵌的子资产引用（如视频记录里的关键帧图）。
type Extractor interface {
	// ProviderID 返回此能力所属的提供商标识。
	ProviderID() string

	// ExtractEmbedded 从原始负载中提取内嵌子资产引用。
	// 负载中没有内嵌资产时返回空切片，不是错误。
	ExtractEmbedded(ctx context.Context, payload []byte) ([]model.EmbeddedAssetRef, error)
}

// Registry 在注册期解析提供商到其能力的映射。
// 未注册提供商的提取请求按"无能力"处理而非错误，同步流程照常继续。
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Extractor
}

// NewRegistry 构造函数。
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]Extractor)}
}

// Register 登记一个提供商的提取能力。同一提供商重复注册视为装配错误。
func (r *Registry) Register(e Extractor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := e.ProviderID()
	if _, ok := r.extractors[id]; ok {
		return fmt.Errorf("提供商 '%s' 的提取能力已注册", id)
	}
	r.extractors[id] = e
	log.Printf("[ProviderRegistry] 提供商 '%s' 的内嵌资产提取能力已注册。", id)
	return nil
}

// ExtractorFor 返回提供商的提取能力，未注册时返回 (nil, false)。
func (r *Registry) ExtractorFor(providerID string) (Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[providerID]
	return e, ok
}

// ExtractEmbedded 是带缺省行为的便捷入口：提供商未注册能力时
// 返回空结果，同步流程无需区分。
func (r *Registry) ExtractEmbedded(ctx context.Context, providerID string, payload []byte) ([]model.EmbeddedAssetRef, error) {
	e, ok := r.ExtractorFor(providerID)
	if !ok {
		return nil, nil
	}
	return e.ExtractEmbedded(ctx, payload)
}
