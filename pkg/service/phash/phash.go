/*
 * @Description: 图像感知哈希 (aHash) 的计算与比较。
 * @Author: 安知鱼
 * @Date: 2025-08-05 10:12:33
 * @LastEditTime: 2025-12-20 17:45:02
 * @LastEditors: 安知鱼
 */
package phash

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math/bits"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Version 标记当前指纹算法的版本。
// 网格尺寸或滤波器一旦变化必须递增版本，不同版本的指纹不可比较。
const Version = 1

// 算法参数随 Version 固定，修改任何一项都意味着新版本。
const gridSize = 8

var filter = imaging.Lanczos

// DefaultThreshold 是近似判定的默认汉明距离阈值。
const DefaultThreshold = 5

// Fingerprint 计算图像的 64 位平均哈希：
// 灰度化，Lanczos 缩放到 8x8，按像素与均值的大小关系逐位置位。
func Fingerprint(img image.Image) uint64 {
	gray := imaging.Grayscale(img)
	small := imaging.Resize(gray, gridSize, gridSize, filter)

	// NRGBA 灰度图三通道相等，取 R 通道即可
	var sum uint64
	var pixels [gridSize * gridSize]uint8
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			p := small.NRGBAAt(x, y).R
			pixels[y*gridSize+x] = p
			sum += uint64(p)
		}
	}
	mean := uint8(sum / (gridSize * gridSize))

	var hash uint64
	for i, p := range pixels {
		if p >= mean {
			hash |= 1 << uint(63-i)
		}
	}
	return hash
}

// FingerprintReader 从字节流解码图像并计算指纹。
func FingerprintReader(r io.Reader) (uint64, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("解码图像失败: %w", err)
	}
	return Fingerprint(img), nil
}

// Distance 返回两个指纹的汉明距离。
// 调用方必须保证两个指纹出自同一算法版本。
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Near 判断两个指纹在给定阈值下是否近似。
func Near(a, b uint64, threshold int) bool {
	return Distance(a, b) <= threshold
}
