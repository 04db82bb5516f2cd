/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 11:26:55
 * @LastEditTime: 2025-08-02 11:27:01
 * @LastEditors: 安知鱼
 */
package model

import "time"

// ContentBlob 代表一份唯一的字节内容，按内容哈希全局去重，
// 与引用它的 Asset 数量无关（跨用户共享）。
// 通过 insert-if-absent 创建，并发首见会收敛到同一行。
type ContentBlob struct {
	ID          uint
	CreatedAt   time.Time
	ContentHash string // SHA-256 十六进制，全局唯一
	Size        int64
	MimeType    string
}
