/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-06 16:42:19
 * @LastEditTime: 2025-08-06 16:42:19
 * @LastEditors: 安知鱼
 */
// internal/app/task/broker.go
package task

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
	"github.com/anzhiyu-c/mediaflow/pkg/service/lineage"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"

	"github.com/robfig/cron/v3"
)

// Broker 是整个后台任务模块的核心协调者。
type Broker struct {
	cron       *cron.Cron
	logger     *slog.Logger
	pipeline   *ingest.Pipeline
	lineageSvc *lineage.Service
	assetRepo  repository.AssetRepository
	settingSvc setting.SettingService
	jobQueue   chan Job
	spoolDir   string
}

// NewBroker 是 Broker 的构造函数。
func NewBroker(
	pipeline *ingest.Pipeline,
	lineageSvc *lineage.Service,
	assetRepo repository.AssetRepository,
	settingSvc setting.SettingService,
	spoolDir string,
) *Broker {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "task_broker")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	broker := &Broker{
		cron:       c,
		logger:     logger,
		pipeline:   pipeline,
		lineageSvc: lineageSvc,
		assetRepo:  assetRepo,
		settingSvc: settingSvc,
		jobQueue:   make(chan Job, 1000),
		spoolDir:   spoolDir,
	}

	broker.startWorkerPool()

	return broker
}

// startWorkerPool 启动固定数量的 worker goroutine 来处理任务。
func (b *Broker) startWorkerPool() {
	workerCount := runtime.NumCPU()
	if workerCount <= 0 {
		workerCount = 4
	}
	b.logger.Info("Starting task worker pool", "concurrency", workerCount)

	for i := 0; i < workerCount; i++ {
		workerID := i + 1
		go func() {
			b.logger.Info("Worker started", "worker_id", workerID)
			for job := range b.jobQueue {
				jobWithWrappers := cron.NewChain(
					NewPanicRecoveryWrapper(b.logger),
					NewLoggingWrapper(b.logger),
				).Then(job)

				b.logger.Info("Worker picked up a job", "worker_id", workerID, "job_name", job.Name())
				jobWithWrappers.Run()
				b.logger.Info("Worker finished a job", "worker_id", workerID, "job_name", job.Name())
			}
			b.logger.Info("Worker stopped", "worker_id", workerID)
		}()
	}
}

// Dispatch 将任务发送到队列中。
func (b *Broker) Dispatch(job Job) {
	b.jobQueue <- job
}

// DispatchIngest 创建一个摄取任务并将其派发到后台执行。
func (b *Broker) DispatchIngest(assetID uint, opts ingest.Options) {
	job := NewIngestJob(b.pipeline, assetID, opts)
	b.Dispatch(job)
	b.logger.Info("Successfully queued ingest job", slog.Uint64("asset_id", uint64(assetID)))
}

// DispatchLineageRefresh 创建一个谱系重建任务并派发到后台。
func (b *Broker) DispatchLineageRefresh(assetID uint) {
	job := NewLineageRefreshJob(b.lineageSvc, assetID)
	b.Dispatch(job)
	b.logger.Info("Successfully queued lineage refresh job", slog.Uint64("asset_id", uint64(assetID)))
}

// RegisterCronJobs 注册所有周期性任务。
func (b *Broker) RegisterCronJobs() {
	b.logger.Info("Registering all periodic jobs...")

	// 兜底扫描 pending 资产，每分钟一次
	sweepJob := NewPendingSweepJob(b.assetRepo, b.settingSvc, b.DispatchIngest, b.logger)
	_, err := b.cron.AddJob("0 * * * * *", sweepJob)
	if err != nil {
		b.logger.Error("Failed to add 'PendingSweepJob'", slog.Any("error", err))
		os.Exit(1)
	}
	b.logger.Info("-> Successfully registered 'PendingSweepJob'", "schedule", "every minute")

	// 清理被遗弃的临时文件，每天凌晨3点
	cleanupJob := NewSpoolCleanupJob(b.spoolDir, b.logger)
	_, err = b.cron.AddJob("0 0 3 * * *", cleanupJob)
	if err != nil {
		b.logger.Error("Failed to add 'SpoolCleanupJob'", slog.Any("error", err))
		os.Exit(1)
	}
	b.logger.Info("-> Successfully registered 'SpoolCleanupJob'", "schedule", "every day at 3:00:00 AM")

	b.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (b *Broker) Start() {
	b.logger.Info("Task broker started.")
	b.cron.Start()
}

// Stop 优雅地停止 cron 调度器和所有 worker。
func (b *Broker) Stop() {
	b.logger.Info("Stopping task broker...")
	ctx := b.cron.Stop()
	<-ctx.Done()
	close(b.jobQueue)
	b.logger.Info("Task broker gracefully stopped.")
}
