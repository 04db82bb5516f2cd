package urlnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"主机名小写", "https://CDN.Example.COM/a/b.png", "https://cdn.example.com/a/b.png"},
		{"去掉末尾斜杠", "https://example.com/a/b/", "https://example.com/a/b"},
		{"去掉片段", "https://example.com/a#section", "https://example.com/a"},
		{"解码百分号转义", "https://example.com/a%20b.png", "https://example.com/a b.png"},
		{"协议相对地址补全", "//cdn.example.com/img.png", "https://cdn.example.com/img.png"},
		{"空串", "", ""},
		{"首尾空白", "  https://example.com/x  ", "https://example.com/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "https://CDN.Example.com/path/to/File%20Name.png/"
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("规范化应当幂等: %q vs %q", once, twice)
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"去扩展名", "https://cdn.example.com/v1/0b5dd94c-7d36-4e72.png", "0b5dd94c-7d36-4e72"},
		{"太短返回空", "https://example.com/a/img.png", ""},
		{"无路径返回空", "https://example.com/", ""},
		{"无扩展名", "https://example.com/files/generation-42", "generation-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastSegment(tt.in); got != tt.want {
				t.Errorf("LastSegment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
