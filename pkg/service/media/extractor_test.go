package media

import (
	"testing"
	"time"
)

func TestParseRational(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"28/10", 2.8, false},
		{"50/1", 50, false},
		{"1/0", 0, true},
		{"notanumber", 0, true},
		{"1/2/3", 0, true},
	}
	for _, c := range cases {
		got, err := parseRational(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseRational(%q) 应当报错", c.in)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("parseRational(%q) = %v, %v; 期望 %v", c.in, got, err, c.want)
		}
	}
}

func TestParseFrameRate(t *testing.T) {
	if got := parseFrameRate("30000/1001"); got < 29.9 || got > 30.0 {
		t.Errorf("NTSC 帧率解析错误: %v", got)
	}
	if got := parseFrameRate("0/0"); got != 0 {
		t.Errorf("非法分数应返回 0: %v", got)
	}
	if got := parseFrameRate(""); got != 0 {
		t.Errorf("空串应返回 0: %v", got)
	}
}

func TestMapExifData(t *testing.T) {
	raw := map[string]string{
		"Make":             "Canon",
		"Model":            "EOS R5",
		"FNumber":          "28/10",
		"FocalLength":      "50/1",
		"DateTimeOriginal": "2025:06:15 08:30:00",
		"Unrelated":        "ignored",
	}
	mapped := mapExifData(raw)

	if mapped["exif:make"] != "Canon" || mapped["exif:model"] != "EOS R5" {
		t.Errorf("机型信息映射错误: %v", mapped)
	}
	if mapped["exif:f_number"] != "2.8" {
		t.Errorf("光圈应解析为小数: %v", mapped["exif:f_number"])
	}
	if mapped["exif:focal_length"] != "50" {
		t.Errorf("焦距应解析为整数: %v", mapped["exif:focal_length"])
	}
	parsed, err := time.Parse(time.RFC3339, mapped["exif:date_time"])
	if err != nil || parsed.Year() != 2025 {
		t.Errorf("拍摄时间应转为 RFC3339: %v", mapped["exif:date_time"])
	}
	if _, ok := mapped["Unrelated"]; ok {
		t.Error("未映射的字段不应出现")
	}
}
