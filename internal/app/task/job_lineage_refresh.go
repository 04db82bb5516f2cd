/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-06 16:31:02
 * @LastEditTime: 2025-08-06 16:31:02
 * @LastEditors: 安知鱼
 */
// internal/app/task/job_lineage_refresh.go
package task

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/service/lineage"
)

// LineageRefreshJob 在后台重建单个资产的派生谱系。
type LineageRefreshJob struct {
	lineageSvc *lineage.Service
	assetID    uint
}

func NewLineageRefreshJob(lineageSvc *lineage.Service, assetID uint) *LineageRefreshJob {
	return &LineageRefreshJob{
		lineageSvc: lineageSvc,
		assetID:    assetID,
	}
}

func (j *LineageRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := j.lineageSvc.RefreshLineage(ctx, j.assetID); err != nil {
		log.Printf("[LineageRefreshJob] 资产 %d 谱系重建失败: %v", j.assetID, err)
	}
}

func (j *LineageRefreshJob) Name() string {
	return fmt.Sprintf("LineageRefreshJob(AssetID: %d)", j.assetID)
}
