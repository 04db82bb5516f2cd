/*
 * @Description: 定义了所有内容寻址存储驱动需要遵守的接口和键格式
 * @Author: 安知鱼
 * @Date: 2025-08-02 00:21:55
 * @LastEditTime: 2025-12-23 11:26:38
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// 定义一个错误，用于表示某个功能不被当前驱动支持
var ErrFeatureNotSupported = errors.New("feature not supported by this driver")

// IStorageDriver 定义了所有内容寻址存储驱动必须实现的接口。
// 原始内容的键由内容哈希推导，Store 是幂等的：键已存在时直接返回该键。
type IStorageDriver interface {
	// Store 将内容字节流写入由 (ownerID, hash, ext) 推导出的内容键。
	// 键已存在时不做任何写入，直接返回已有键。
	Store(ctx context.Context, ownerID uint, hash string, r io.Reader, ext string) (string, error)

	// Put 将派生产物（缩略图、预览图）写入指定键，允许覆盖。
	Put(ctx context.Context, key string, r io.Reader) error

	// Get 返回指定键的可读流，供服务内部的文件处理使用。
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists 检查指定键是否存在。
	Exists(ctx context.Context, key string) (bool, error)

	// Delete 删除一个或多个键，不存在的键静默跳过。
	Delete(ctx context.Context, keys ...string) error
}

// ContentKey 构建原始内容的存储键。
// 键格式是对外的稳定契约: u/{ownerID}/content/{hash前两位}/{hash}{ext}
func ContentKey(ownerID uint, hash, ext string) string {
	return fmt.Sprintf("u/%d/content/%s/%s%s", ownerID, hash[:2], hash, ext)
}

// ThumbnailKey 构建缩略图的存储键。缩略图统一输出为 JPEG。
func ThumbnailKey(ownerID uint, hash string) string {
	return fmt.Sprintf("u/%d/thumbnails/%s/%s.jpg", ownerID, hash[:2], hash)
}

// PreviewKey 构建预览图的存储键，按资产公共ID组织。
func PreviewKey(ownerID uint, assetPublicID string) string {
	return fmt.Sprintf("u/%d/previews/%s.jpg", ownerID, assetPublicID)
}
