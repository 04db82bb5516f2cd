/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-06 16:20:15
 * @LastEditTime: 2025-08-06 16:20:15
 * @LastEditors: 安知鱼
 */
// internal/app/task/job_ingest.go
package task

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
)

// IngestJob 负责执行单个资产的摄取管道
type IngestJob struct {
	pipeline *ingest.Pipeline
	assetID  uint
	opts     ingest.Options
}

// NewIngestJob 是任务的构造函数
func NewIngestJob(pipeline *ingest.Pipeline, assetID uint, opts ingest.Options) *IngestJob {
	return &IngestJob{
		pipeline: pipeline,
		assetID:  assetID,
		opts:     opts,
	}
}

// Run 是 Job 接口要求实现的方法
func (j *IngestJob) Run() {
	// 单次摄取含下载与转码，给足 10 分钟
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	outcome, err := j.pipeline.Process(ctx, j.assetID, j.opts)
	if err != nil {
		log.Printf("[IngestJob] 资产 %d 摄取失败: %v", j.assetID, err)
		return
	}
	if fatal := outcome.FirstFatal(); fatal != nil {
		log.Printf("[IngestJob] 资产 %d 摄取在阶段 '%s' 失败: %v", j.assetID, fatal.Stage, fatal.Err)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *IngestJob) Name() string {
	return fmt.Sprintf("IngestJob(AssetID: %d)", j.assetID)
}
