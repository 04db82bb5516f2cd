/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 14:21:57
 * @LastEditTime: 2025-10-28 20:04:41
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
)

// MetadataRepository 定义了资产元数据键值对的持久化接口。
type MetadataRepository interface {
	// Set 写入或更新一条元数据，同一 (assetID, name) 组合唯一。
	Set(ctx context.Context, assetID uint, name, value string) error
	Get(ctx context.Context, assetID uint, name string) (string, error)
	GetAll(ctx context.Context, assetID uint) (map[string]string, error)
	Delete(ctx context.Context, assetID uint, name string) error
	DeleteAll(ctx context.Context, assetID uint) error
}
