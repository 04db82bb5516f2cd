/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 14:08:31
 * @LastEditTime: 2025-08-02 14:08:36
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// ContentBlobRepository 定义了全局唯一字节内容行的持久化接口。
type ContentBlobRepository interface {
	// Ensure 以 insert-if-absent 语义确保哈希对应的行存在，
	// 并发首见的竞争会收敛到同一行。返回最终存在的那一行。
	Ensure(ctx context.Context, hash string, size int64, mimeType string) (*model.ContentBlob, error)

	FindByHash(ctx context.Context, hash string) (*model.ContentBlob, error)
}
