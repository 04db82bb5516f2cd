package media

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// Result 是派生图生成器成功处理后返回的结果。
type Result struct {
	// GeneratorName 是生成器的名称 (例如 "builtin", "ffmpeg")。
	GeneratorName string
	Format        string
}

// Generator 定义了所有派生图（缩略图、预览图）生成器的通用接口。
type Generator interface {
	// CanHandle 判断此生成器是否能处理给定的资产。
	CanHandle(ctx context.Context, asset *model.Asset) bool

	// Generate 读取本地源文件，生成一张不超过 boxSize 边界框的 JPEG
	// 派生图并写入存储的 destKey。源图小于边界框时不得放大。
	Generate(
		ctx context.Context,
		asset *model.Asset,
		sourcePath string,
		destKey string,
		boxSize int,
		quality int,
	) (*Result, error)
}
