package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
)

func newFetcherSettings(maxBytes string) *fakeSettings {
	return &fakeSettings{values: map[string]string{
		constant.KeyIngestMaxBytes.String():     maxBytes,
		constant.KeyIngestFetchTimeout.String(): "10",
		constant.KeyIngestFetchRateLimit.String(): "100",
	}}
}

func TestHTTPFetcherSuccess(t *testing.T) {
	content := []byte("some image bytes for hashing")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png; charset=binary")
		w.Write(content)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(newFetcherSettings("1048576"), t.TempDir())
	res, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("下载失败: %v", err)
	}
	defer os.Remove(res.LocalPath)

	sum := sha256.Sum256(content)
	if res.Hash != hex.EncodeToString(sum[:]) {
		t.Errorf("流式哈希与内容不符: %s", res.Hash)
	}
	if res.Size != int64(len(content)) {
		t.Errorf("大小不符: %d", res.Size)
	}
	if res.MimeType != "image/png" {
		t.Errorf("MIME 应去掉参数部分: %s", res.MimeType)
	}

	// 落盘内容与远端一致
	onDisk, err := os.ReadFile(res.LocalPath)
	if err != nil || string(onDisk) != string(content) {
		t.Errorf("本地副本内容不符: %v", err)
	}
}

func TestHTTPFetcherRemoteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(newFetcherSettings("1048576"), t.TempDir())
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, constant.ErrRemoteNotFound) {
		t.Fatalf("404 应返回 ErrRemoteNotFound: %v", err)
	}
}

func TestHTTPFetcherServerErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(newFetcherSettings("1048576"), t.TempDir())
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, constant.ErrTransport) {
		t.Fatalf("5xx 应返回传输类错误: %v", err)
	}
}

func TestHTTPFetcherSizeExceeded(t *testing.T) {
	big := make([]byte, 2048)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(big)
	}))
	defer srv.Close()

	tmpDir := t.TempDir()
	f := NewHTTPFetcher(newFetcherSettings("1024"), tmpDir)
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, constant.ErrSizeExceeded) {
		t.Fatalf("超限应返回 ErrSizeExceeded: %v", err)
	}

	// 超限下载的临时文件必须被清理
	entries, _ := os.ReadDir(tmpDir)
	if len(entries) != 0 {
		t.Errorf("临时目录应为空，残留 %d 个文件", len(entries))
	}
}

func TestHTTPFetcherZeroBytesIsCorrupted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(newFetcherSettings("1048576"), t.TempDir())
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, constant.ErrCorrupted) {
		t.Fatalf("零字节内容应返回 ErrCorrupted: %v", err)
	}
}

func TestParseMimeType(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":                "image/jpeg",
		"image/png; charset=binary": "image/png",
		"":                          "",
		"not a mime":                "",
	}
	for in, want := range cases {
		if got := parseMimeType(in); got != want {
			t.Errorf("parseMimeType(%q) = %q, 期望 %q", in, got, want)
		}
	}
}
