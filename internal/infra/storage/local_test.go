package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
)

func TestContentKeyShape(t *testing.T) {
	sum := sha256.Sum256([]byte("hello"))
	hash := hex.EncodeToString(sum[:])

	got := ContentKey(7, hash, ".png")
	want := "u/7/content/" + hash[:2] + "/" + hash + ".png"
	if got != want {
		t.Errorf("内容键格式不符: got %q, want %q", got, want)
	}

	thumb := ThumbnailKey(7, hash)
	if !strings.HasPrefix(thumb, "u/7/thumbnails/"+hash[:2]+"/") || !strings.HasSuffix(thumb, ".jpg") {
		t.Errorf("缩略图键格式不符: %q", thumb)
	}

	preview := PreviewKey(7, "aB3d")
	if preview != "u/7/previews/aB3d.jpg" {
		t.Errorf("预览键格式不符: %q", preview)
	}
}

func TestLocalDriverStoreIdempotent(t *testing.T) {
	ctx := context.Background()
	driver := NewLocalDriver(t.TempDir())

	content := []byte("一段测试内容")
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	key1, err := driver.Store(ctx, 1, hash, bytes.NewReader(content), ".bin")
	if err != nil {
		t.Fatalf("首次写入失败: %v", err)
	}

	// 第二次写入同一哈希，传入不同内容验证不会被覆盖
	key2, err := driver.Store(ctx, 1, hash, bytes.NewReader([]byte("其他内容")), ".bin")
	if err != nil {
		t.Fatalf("重复写入失败: %v", err)
	}
	if key1 != key2 {
		t.Fatalf("重复写入返回了不同的键: %q vs %q", key1, key2)
	}

	rc, err := driver.Get(ctx, key1)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("读取内容失败: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("幂等写入未保留原始内容: got %q", data)
	}
}

func TestLocalDriverExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	driver := NewLocalDriver(t.TempDir())

	content := []byte("payload")
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	key, err := driver.Store(ctx, 2, hash, bytes.NewReader(content), "")
	if err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	exists, err := driver.Exists(ctx, key)
	if err != nil || !exists {
		t.Fatalf("期望键存在: exists=%v, err=%v", exists, err)
	}

	if err := driver.Delete(ctx, key); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	exists, err = driver.Exists(ctx, key)
	if err != nil || exists {
		t.Fatalf("期望键已删除: exists=%v, err=%v", exists, err)
	}

	// 删除不存在的键应当静默成功
	if err := driver.Delete(ctx, "u/2/content/ab/missing"); err != nil {
		t.Errorf("删除不存在的键应当成功: %v", err)
	}
}

func TestLocalDriverGetMissingKey(t *testing.T) {
	ctx := context.Background()
	driver := NewLocalDriver(t.TempDir())

	// 键不存在时错误必须能被 errors.Is 匹配到 ErrNotFound
	_, err := driver.Get(ctx, "u/1/content/ab/missing.png")
	if err == nil {
		t.Fatal("读取不存在的键应当报错")
	}
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestLocalDriverPutOverwrites(t *testing.T) {
	ctx := context.Background()
	driver := NewLocalDriver(t.TempDir())

	key := ThumbnailKey(3, strings.Repeat("ab", 32))
	if err := driver.Put(ctx, key, bytes.NewReader([]byte("v1"))); err != nil {
		t.Fatalf("首次写入失败: %v", err)
	}
	if err := driver.Put(ctx, key, bytes.NewReader([]byte("v2"))); err != nil {
		t.Fatalf("覆盖写入失败: %v", err)
	}

	rc, err := driver.Get(ctx, key)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "v2" {
		t.Errorf("派生产物应当被覆盖: got %q", data)
	}
}
