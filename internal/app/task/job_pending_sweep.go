/*
 * @Description: 周期性扫描 pending 资产并补投摄取任务，兜底事件丢失与进程重启。
 * @Author: 安知鱼
 * @Date: 2025-08-06 16:25:48
 * @LastEditTime: 2025-08-06 16:25:48
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// PendingSweepJob 按创建时间从旧到新取一批 pending 资产，
// 逐条派发到任务队列。事件总线丢弃的事件由它补齐。
type PendingSweepJob struct {
	assetRepo  repository.AssetRepository
	settingSvc setting.SettingService
	dispatch   func(assetID uint, opts ingest.Options)
	logger     *slog.Logger
}

func NewPendingSweepJob(
	assetRepo repository.AssetRepository,
	settingSvc setting.SettingService,
	dispatch func(assetID uint, opts ingest.Options),
	logger *slog.Logger,
) *PendingSweepJob {
	return &PendingSweepJob{
		assetRepo:  assetRepo,
		settingSvc: settingSvc,
		dispatch:   dispatch,
		logger:     logger,
	}
}

func (j *PendingSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	batchSize := setting.GetIntOrDefault(j.settingSvc, constant.KeyIngestSweepBatchSize, 50)
	assets, err := j.assetRepo.FindPendingBatch(ctx, batchSize)
	if err != nil {
		j.logger.Error("Failed to load pending assets", slog.Any("error", err))
		return
	}
	if len(assets) == 0 {
		return
	}

	j.logger.Info("Dispatching pending assets for ingestion", slog.Int("count", len(assets)))
	for _, asset := range assets {
		j.dispatch(asset.ID, ingest.Options{})
	}
}

func (j *PendingSweepJob) Name() string {
	return "PendingSweepJob"
}
