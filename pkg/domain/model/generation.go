/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 11:38:44
 * @LastEditTime: 2025-11-02 14:22:36
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Generation 记录一次生成操作的可复现描述：规范化参数与输入集合。
// ReproHash 是对 JSON 规范化（键排序）后的 (canonicalParams, inputs)
// 二元组计算的 SHA-256，用于在不重算参数的情况下查找同批次的兄弟产物。
type Generation struct {
	ID            uint
	CreatedAt     time.Time
	OwnerID       uint
	OperationType string
	CanonicalParams JSONMap
	Inputs        []string // 输入资产的公共ID列表，顺序有意义
	ReproHash     string
}
