package phash

import (
	"image"
	"image/color"
	"testing"
)

// horizontalGradient 生成一张从黑到白的水平渐变图。
func horizontalGradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// solid 生成一张纯色图。
func solid(w, h int, v uint8) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestFingerprintDeterministic(t *testing.T) {
	img := horizontalGradient(64, 64)
	h1 := Fingerprint(img)
	h2 := Fingerprint(img)
	if h1 != h2 {
		t.Fatalf("同一图像两次计算结果不同: %x vs %x", h1, h2)
	}
}

func TestFingerprintScaleInvariant(t *testing.T) {
	small := Fingerprint(horizontalGradient(64, 64))
	large := Fingerprint(horizontalGradient(128, 128))
	if d := Distance(small, large); d > DefaultThreshold {
		t.Errorf("同一图像不同尺寸的指纹距离过大: %d", d)
	}
}

func TestFingerprintDistinguishes(t *testing.T) {
	gradient := Fingerprint(horizontalGradient(64, 64))
	white := Fingerprint(solid(64, 64, 255))
	if d := Distance(gradient, white); d <= DefaultThreshold {
		t.Errorf("渐变图与纯色图不应近似: 距离 %d", d)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want int
	}{
		{"相同指纹距离为零", 0xdeadbeef, 0xdeadbeef, 0},
		{"单比特差异", 0, 1, 1},
		{"五比特差异", 0, 0b11111, 5},
		{"六比特差异", 0, 0b111111, 6},
		{"全部比特差异", 0, ^uint64(0), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%x, %x) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNearThresholdBoundary(t *testing.T) {
	// 恰好等于阈值视为近似，超出一位则不是
	if !Near(0, 0b11111, DefaultThreshold) {
		t.Error("距离等于阈值应当判定为近似")
	}
	if Near(0, 0b111111, DefaultThreshold) {
		t.Error("距离超过阈值不应判定为近似")
	}
}
