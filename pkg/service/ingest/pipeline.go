/*
 * @Description: 幂等的资产摄取管道，每个阶段独立提交、独立补做。
 * @Author: 安知鱼
 * @Date: 2025-08-03 15:02:14
 * @LastEditTime: 2025-08-03 15:02:14
 * @LastEditors: 安知鱼
 */
package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
)

// Options 控制单次管道运行的行为。
type Options struct {
	// Force 为 true 时忽略已有的阶段完成时间戳，强制重做所有选中阶段。
	Force bool

	// Steps 指定只重跑哪些可选阶段（metadata/thumbnail/preview），
	// 为空表示全部。ensure_local 与 store 作为前置阶段始终参与判定。
	Steps []string
}

// AssetCompletedEvent 是 asset:completed 事件的负载。
type AssetCompletedEvent struct {
	AssetID uint
	OwnerID uint
	Status  constant.IngestStatus
}

// MetadataExtractor 抽象元数据提取阶段的协作方，由 media.ExtractionService 实现。
type MetadataExtractor interface {
	ExtractAndSave(ctx context.Context, asset *model.Asset, sourcePath string) error
}

// DerivativeGenerator 抽象派生图生成阶段的协作方，
// 由 media.ThumbnailService 与 media.PreviewService 实现。
type DerivativeGenerator interface {
	Generate(ctx context.Context, asset *model.Asset, sourcePath string) (string, error)
}

// Pipeline 驱动单个资产走完 pending → processing → {completed|failed}。
// 每个阶段在自己的事务中提交进度，进程崩溃后重跑只补缺失的阶段。
type Pipeline struct {
	txManager  repository.TransactionManager
	assetRepo  repository.AssetRepository
	store      storage.IStorageDriver
	fetcher    Fetcher
	extractor  MetadataExtractor
	thumbSvc   DerivativeGenerator
	previewSvc DerivativeGenerator
	settingSvc setting.SettingService
	bus        *event.EventBus

	// sem 是进程级的摄取并发上限
	sem    chan struct{}
	tmpDir string

	// 重试间隔基数，测试中会缩短
	retryBaseDelay     time.Duration
	notFoundRetryDelay time.Duration
}

// NewPipeline 构造函数。
func NewPipeline(
	txManager repository.TransactionManager,
	assetRepo repository.AssetRepository,
	store storage.IStorageDriver,
	fetcher Fetcher,
	extractor MetadataExtractor,
	thumbSvc DerivativeGenerator,
	previewSvc DerivativeGenerator,
	settingSvc setting.SettingService,
	bus *event.EventBus,
	tmpDir string,
) *Pipeline {
	concurrency := setting.GetIntOrDefault(settingSvc, constant.KeyIngestConcurrency, 4)
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		txManager:          txManager,
		assetRepo:          assetRepo,
		store:              store,
		fetcher:            fetcher,
		extractor:          extractor,
		thumbSvc:           thumbSvc,
		previewSvc:         previewSvc,
		settingSvc:         settingSvc,
		bus:                bus,
		sem:                make(chan struct{}, concurrency),
		tmpDir:             tmpDir,
		retryBaseDelay:     2 * time.Second,
		notFoundRetryDelay: 10 * time.Second,
	}
}

// Process 对单个资产执行摄取。重复调用是安全的：已完成的阶段被跳过，
// 已完成的资产在非强制模式下整体短路，不产生任何下载或写入。
func (p *Pipeline) Process(ctx context.Context, assetID uint, opts Options) (*Outcome, error) {
	select {
	case p.sem <- struct{}{}:
		defer func() { <-p.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	asset, err := p.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("加载资产 %d 失败: %w", assetID, err)
	}

	outcome := &Outcome{}

	// 已完成且非强制：全部跳过，保证重复触发的零成本幂等
	if asset.IngestStatus == constant.IngestStatusCompleted && !opts.Force {
		log.Printf("[IngestPipeline] 资产 %d 已完成，非强制模式下跳过。", assetID)
		for _, name := range []string{StageEnsureLocal, StageStore, StageMetadata, StageThumbnail, StagePreview} {
			outcome.record(StageResult{Stage: name, Outcome: OutcomeSkipped, Reason: "资产已完成"})
		}
		return outcome, nil
	}

	if !asset.IngestStatus.CanEnterProcessing(opts.Force) {
		return nil, fmt.Errorf("资产 %d 处于 %s 状态，需要 force 才能重新摄取: %w",
			assetID, asset.IngestStatus, constant.ErrConflict)
	}

	asset.IngestStatus = constant.IngestStatusProcessing
	if err := p.saveAsset(ctx, asset); err != nil {
		return nil, err
	}
	log.Printf("[IngestPipeline] 资产 %d 进入 processing (force=%v, steps=%v)。", assetID, opts.Force, opts.Steps)

	p.runStages(ctx, asset, opts, outcome)

	// 折叠阶段结果为最终状态
	asset.IngestStatus = outcome.Fold()
	if fatal := outcome.FirstFatal(); fatal != nil {
		asset.LastError = sql.NullString{
			String: constant.TruncateError(fmt.Sprintf("[%s] %v", fatal.Stage, fatal.Err)),
			Valid:  true,
		}
		log.Printf("[IngestPipeline] 资产 %d 摄取失败于 %s 阶段: %v", assetID, fatal.Stage, fatal.Err)
	} else {
		asset.LastError = sql.NullString{}
	}
	if err := p.saveAsset(ctx, asset); err != nil {
		return outcome, err
	}

	p.bus.Publish(event.AssetCompleted, AssetCompletedEvent{
		AssetID: asset.ID,
		OwnerID: asset.OwnerID,
		Status:  asset.IngestStatus,
	})
	log.Printf("[IngestPipeline] 资产 %d 摄取结束，最终状态 %s。", assetID, asset.IngestStatus)
	return outcome, nil
}

// runStages 顺序执行各阶段。前置阶段（本地副本、内容寻址存储）失败
// 即终止，后续可选阶段失败只记录，留待下次补做。
func (p *Pipeline) runStages(ctx context.Context, asset *model.Asset, opts Options, outcome *Outcome) {
	localPath, r := p.stageEnsureLocal(ctx, asset, opts)
	outcome.record(r)
	if r.Outcome == OutcomeFailed {
		return
	}
	if r.Outcome == OutcomeCompleted {
		if err := p.saveAsset(ctx, asset); err != nil {
			outcome.record(StageResult{Stage: StageEnsureLocal, Outcome: OutcomeFailed, Err: err, Fatal: true})
			return
		}
	}

	r = p.stageStore(ctx, asset, localPath, opts)
	outcome.record(r)
	if r.Outcome == OutcomeFailed {
		return
	}

	for _, st := range []struct {
		name string
		fn   func(context.Context, *model.Asset, string, Options) StageResult
	}{
		{StageMetadata, p.stageMetadata},
		{StageThumbnail, p.stageThumbnail},
		{StagePreview, p.stagePreview},
	} {
		res := st.fn(ctx, asset, localPath, opts)
		outcome.record(res)
		if res.Outcome == OutcomeCompleted {
			if err := p.saveAsset(ctx, asset); err != nil {
				outcome.record(StageResult{Stage: st.name, Outcome: OutcomeFailed, Err: err, Fatal: true})
				return
			}
		}
		if res.Outcome == OutcomeFailed {
			log.Printf("[IngestPipeline] 资产 %d 的可选阶段 %s 失败，留待下次补做: %v", asset.ID, st.name, res.Err)
		}
	}
}

// saveAsset 在独立事务中持久化资产的当前进度。
func (p *Pipeline) saveAsset(ctx context.Context, asset *model.Asset) error {
	return p.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.Asset.Update(ctx, asset)
	})
}

// retryFetch 带重试地执行远端下载。策略类错误（超限、损坏）不重试；
// 远端 404 视为 CDN 同步延迟，用更长的递增间隔；其余网络错误指数退避。
func (p *Pipeline) retryFetch(ctx context.Context, url string) (*FetchResult, error) {
	const maxAttempts = 3
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := p.fetcher.Fetch(ctx, url)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if errors.Is(err, constant.ErrSizeExceeded) || errors.Is(err, constant.ErrCorrupted) {
			return nil, err
		}
		if attempt == maxAttempts {
			break
		}

		var delay time.Duration
		if errors.Is(err, constant.ErrRemoteNotFound) {
			delay = time.Duration(attempt) * p.notFoundRetryDelay
		} else {
			delay = p.retryBaseDelay << (attempt - 1)
		}
		log.Printf("[IngestPipeline] 下载 '%s' 第 %d 次失败: %v。%s 后重试。", url, attempt, err, delay)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}

// stepSelected 判断可选阶段是否在本次运行的选择范围内。
func stepSelected(opts Options, name string) bool {
	if len(opts.Steps) == 0 {
		return true
	}
	for _, s := range opts.Steps {
		if s == name {
			return true
		}
	}
	return false
}
