/*
 * @Description: 从提供方负载与 URL 中恢复候选的原生资产标识。
 * @Author: 安知鱼
 * @Date: 2025-08-07 14:02:55
 * @LastEditTime: 2025-12-02 10:18:26
 * @LastEditors: 安知鱼
 */
package dedup

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// CollectCandidateIDs 汇总一次解析可用的全部候选原生ID：
// 显式给出的 providerAssetID 优先，其后是从各 URL 路径段中
// 恢复出的 UUID（部分提供方只在下载地址里暴露资产标识）。
// 返回结果去重且保持发现顺序。
func CollectCandidateIDs(providerAssetID string, urls ...string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	add(providerAssetID)

	for _, raw := range urls {
		for _, id := range uuidsFromURL(raw) {
			add(id)
		}
	}
	return out
}

// uuidsFromURL 提取 URL 路径段中所有合法的 UUID。
// 段内可能带扩展名（/v1/{uuid}.png），先剥掉再解析。
func uuidsFromURL(raw string) []string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	var ids []string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" {
			continue
		}
		if dot := strings.IndexByte(seg, '.'); dot > 0 {
			seg = seg[:dot]
		}
		if parsed, err := uuid.Parse(seg); err == nil {
			ids = append(ids, parsed.String())
		}
	}
	return ids
}
