/*
 * @Description: 清理落盘超过保留期仍未被摄取消费的临时文件。
 * @Author: 安知鱼
 * @Date: 2025-08-06 16:36:27
 * @LastEditTime: 2025-08-06 16:36:27
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// 上传与下载的临时文件保留 24 小时，正常流程应在此之前消费掉它们。
const spoolRetention = 24 * time.Hour

// SpoolCleanupJob 清理临时目录中被遗弃的 upload-* 与 ingest-* 文件。
type SpoolCleanupJob struct {
	spoolDir string
	logger   *slog.Logger
}

func NewSpoolCleanupJob(spoolDir string, logger *slog.Logger) *SpoolCleanupJob {
	return &SpoolCleanupJob{spoolDir: spoolDir, logger: logger}
}

func (j *SpoolCleanupJob) Run() {
	entries, err := os.ReadDir(j.spoolDir)
	if err != nil {
		j.logger.Error("Failed to read spool directory", slog.String("dir", j.spoolDir), slog.Any("error", err))
		return
	}

	cutoff := time.Now().Add(-spoolRetention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "upload-") && !strings.HasPrefix(name, "ingest-") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.spoolDir, name)); err != nil {
			j.logger.Error("Failed to remove abandoned spool file", slog.String("file", name), slog.Any("error", err))
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.Info("Cleaned up abandoned spool files", slog.Int("removed", removed))
	}
}

func (j *SpoolCleanupJob) Name() string {
	return "SpoolCleanupJob"
}
