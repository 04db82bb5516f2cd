/*
 * @Description: 图片主色调提取。
 * @Author: 安知鱼
 * @Date: 2025-08-03 10:18:40
 * @LastEditTime: 2025-08-03 10:18:40
 * @LastEditors: 安知鱼
 */
package media

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// PrimaryColor 用 K-Means 聚类找出图片的主色调，返回 #rrggbb 形式。
func PrimaryColor(reader io.Reader) (string, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return "", fmt.Errorf("解码图片失败: %w", err)
	}

	colors, err := prominentcolor.KmeansWithArgs(1, img)
	if err != nil {
		return "", fmt.Errorf("使用 prominentcolor (K-Means) 提取主色调失败: %w", err)
	}
	if len(colors) == 0 {
		return "", fmt.Errorf("prominentcolor (K-Means) 未能找到任何主色调")
	}

	c := colors[0].Color
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}
