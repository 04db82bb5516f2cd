// internal/infra/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
)

// LocalDriver 实现了 IStorageDriver 接口，用于处理与本机磁盘文件系统的所有交互。
// 所有键都被映射到 basePath 下的相对路径。
type LocalDriver struct {
	basePath string
}

// NewLocalDriver 是 LocalDriver 的构造函数，接收存储根目录。
func NewLocalDriver(basePath string) IStorageDriver {
	return &LocalDriver{
		basePath: basePath,
	}
}

func (d *LocalDriver) physicalPath(key string) string {
	return filepath.Join(d.basePath, filepath.FromSlash(key))
}

// Store 将内容写入由哈希推导出的键。键已存在时不重复写入。
// 写入先落到同目录的临时文件，再原子地 rename 到目标路径，
// 避免中断产生半写的内容文件。
func (d *LocalDriver) Store(ctx context.Context, ownerID uint, hash string, r io.Reader, ext string) (string, error) {
	key := ContentKey(ownerID, hash, ext)
	target := d.physicalPath(key)

	if _, err := os.Stat(target); err == nil {
		log.Printf("[LocalDriver] 内容键已存在，跳过写入: %s", key)
		return key, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("检查目标路径 '%s' 失败: %w", target, err)
	}

	if err := d.writeAtomic(target, r); err != nil {
		return "", err
	}
	return key, nil
}

// Put 将派生产物写入指定键，允许覆盖。
func (d *LocalDriver) Put(ctx context.Context, key string, r io.Reader) error {
	return d.writeAtomic(d.physicalPath(key), r)
}

func (d *LocalDriver) writeAtomic(target string, r io.Reader) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录 '%s' 失败: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, r); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("同步文件到磁盘失败: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("重命名到目标路径 '%s' 失败: %w", target, err)
	}
	return nil
}

// Get 返回指定键的可读流。键不存在时返回可被 errors.Is 匹配的 ErrNotFound。
func (d *LocalDriver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(d.physicalPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("物理文件不存在 '%s': %w", key, constant.ErrNotFound)
		}
		return nil, fmt.Errorf("无法打开物理文件 '%s': %w", key, err)
	}
	return file, nil
}

// Exists 检查指定键是否存在。
func (d *LocalDriver) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(d.physicalPath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Delete 删除一个或多个键，不存在的键静默跳过。
func (d *LocalDriver) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(d.physicalPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("删除 '%s' 失败: %w", key, err)
		}
	}
	return nil
}
