/*
 * @Description: 使用 Go 原生库处理标准图片的派生图生成器。
 * @Author: 安知鱼
 * @Date: 2025-08-03 11:05:33
 * @LastEditTime: 2025-08-03 11:05:33
 * @LastEditors: 安知鱼
 */
package media

import (
	"bytes"
	"context"
	"fmt"
	"log"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// BuiltinImageGenerator 使用纯Go库处理图片。
type BuiltinImageGenerator struct {
	store storage.IStorageDriver

	processableMimes map[string]bool
}

// NewBuiltinImageGenerator 是 BuiltinImageGenerator 的构造函数。
func NewBuiltinImageGenerator(store storage.IStorageDriver) Generator {
	return &BuiltinImageGenerator{
		store: store,
		// 此生成器实际可以解码和处理的类型；avif 等现代格式不在其中
		processableMimes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
			"image/bmp":  true,
		},
	}
}

// CanHandle 检查资产是否为可解码的图片格式。
func (g *BuiltinImageGenerator) CanHandle(ctx context.Context, asset *model.Asset) bool {
	if !asset.IsImage() || !asset.MimeType.Valid {
		return false
	}
	return g.processableMimes[asset.MimeType.String]
}

// Generate 解码源图并生成限制在边界框内的 JPEG 派生图。
func (g *BuiltinImageGenerator) Generate(
	ctx context.Context,
	asset *model.Asset,
	sourcePath string,
	destKey string,
	boxSize int,
	quality int,
) (*Result, error) {
	// 打开并解码源图片，自动处理方向（例如手机拍摄的照片）
	srcImage, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("使用imaging库打开或解码资产 %d 的图片失败: %w", asset.ID, err)
	}

	// 只缩不放：源图已在边界框内时原样转码
	bounds := srcImage.Bounds()
	resized := srcImage
	if bounds.Dx() > boxSize || bounds.Dy() > boxSize {
		resized = imaging.Fit(srcImage, boxSize, boxSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("使用imaging库编码JPEG派生图失败: %w", err)
	}

	if err := g.store.Put(ctx, destKey, &buf); err != nil {
		return nil, fmt.Errorf("写入派生图 '%s' 失败: %w", destKey, err)
	}

	log.Printf("[BuiltinGenerator] 资产 %d 的派生图已写入 %s。", asset.ID, destKey)
	return &Result{
		GeneratorName: "builtin",
		Format:        "jpeg",
	}, nil
}
