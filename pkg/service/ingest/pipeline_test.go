package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
)

// --- 内存桩实现 ---

type fakeAssetRepo struct {
	assets map[uint]*model.Asset
}

func newFakeAssetRepo(assets ...*model.Asset) *fakeAssetRepo {
	m := make(map[uint]*model.Asset)
	for _, a := range assets {
		m[a.ID] = a
	}
	return &fakeAssetRepo{assets: m}
}

func (f *fakeAssetRepo) Create(ctx context.Context, a *model.Asset) error {
	f.assets[a.ID] = a
	return nil
}
func (f *fakeAssetRepo) Update(ctx context.Context, a *model.Asset) error {
	if _, ok := f.assets[a.ID]; !ok {
		return constant.ErrNotFound
	}
	copied := *a
	f.assets[a.ID] = &copied
	return nil
}
func (f *fakeAssetRepo) FindByID(ctx context.Context, id uint) (*model.Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	copied := *a
	return &copied, nil
}
func (f *fakeAssetRepo) FindByProviderTuple(ctx context.Context, ownerID uint, providerID string, candidateIDs []string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindByContentHash(ctx context.Context, ownerID uint, hash string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindFingerprinted(ctx context.Context, ownerID uint) ([]*model.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) FindBySourceURL(ctx context.Context, ownerID uint, url string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindBySourceURLFragment(ctx context.Context, ownerID uint, providerID string, fragment string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindPendingBatch(ctx context.Context, limit int) ([]*model.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) FindByGenerationIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) Delete(ctx context.Context, id uint) error {
	delete(f.assets, id)
	return nil
}

type fakeBlobRepo struct {
	blobs       map[string]*model.ContentBlob
	ensureCalls int
}

func (f *fakeBlobRepo) Ensure(ctx context.Context, hash string, size int64, mimeType string) (*model.ContentBlob, error) {
	f.ensureCalls++
	if f.blobs == nil {
		f.blobs = make(map[string]*model.ContentBlob)
	}
	if b, ok := f.blobs[hash]; ok {
		return b, nil
	}
	b := &model.ContentBlob{ID: uint(len(f.blobs) + 1), ContentHash: hash, Size: size, MimeType: mimeType}
	f.blobs[hash] = b
	return b, nil
}
func (f *fakeBlobRepo) FindByHash(ctx context.Context, hash string) (*model.ContentBlob, error) {
	if b, ok := f.blobs[hash]; ok {
		return b, nil
	}
	return nil, constant.ErrNotFound
}

type fakeTxManager struct {
	repos repository.Repositories
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(f.repos)
}

// fakeStore 是内存版内容寻址存储，统计实际写入次数。
type fakeStore struct {
	data   map[string][]byte
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) Store(ctx context.Context, ownerID uint, hash string, r io.Reader, ext string) (string, error) {
	key := storage.ContentKey(ownerID, hash, ext)
	if _, ok := f.data[key]; ok {
		return key, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.data[key] = b
	f.writes++
	return key, nil
}
func (f *fakeStore) Put(ctx context.Context, key string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.data[key] = b
	f.writes++
	return nil
}
func (f *fakeStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	b, ok := f.data[key]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	return ok, nil
}
func (f *fakeStore) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// fakeFetcher 把固定内容写入临时文件，统计下载次数。
type fakeFetcher struct {
	t       *testing.T
	content []byte
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	path := filepath.Join(f.t.TempDir(), "fetched")
	if err := os.WriteFile(path, f.content, 0644); err != nil {
		return nil, err
	}
	sum := sha256.Sum256(f.content)
	return &FetchResult{
		LocalPath: path,
		Hash:      hex.EncodeToString(sum[:]),
		Size:      int64(len(f.content)),
		MimeType:  "image/png",
	}, nil
}

type fakeExtractor struct {
	err   error
	calls int
}

func (f *fakeExtractor) ExtractAndSave(ctx context.Context, asset *model.Asset, sourcePath string) error {
	f.calls++
	return f.err
}

type fakeGenerator struct {
	key   string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, asset *model.Asset, sourcePath string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

type fakeSettings struct {
	values map[string]string
}

func (f *fakeSettings) EnsureDefaults(ctx context.Context) error  { return nil }
func (f *fakeSettings) LoadAllSettings(ctx context.Context) error { return nil }
func (f *fakeSettings) Get(key string) string                     { return f.values[key] }
func (f *fakeSettings) GetBool(key string) bool                   { return f.values[key] == "true" }
func (f *fakeSettings) GetInt(key string) int {
	v, _ := strconv.Atoi(f.values[key])
	return v
}
func (f *fakeSettings) GetInt64(key string) int64 {
	v, _ := strconv.ParseInt(f.values[key], 10, 64)
	return v
}
func (f *fakeSettings) UpdateSettings(ctx context.Context, m map[string]string) error { return nil }
func (f *fakeSettings) IsPublicSetting(key string) bool                               { return false }

// --- 测试装配 ---

type pipelineFixture struct {
	pipeline  *Pipeline
	assetRepo *fakeAssetRepo
	blobRepo  *fakeBlobRepo
	store     *fakeStore
	fetcher   *fakeFetcher
	extractor *fakeExtractor
	thumbGen  *fakeGenerator
	prevGen   *fakeGenerator
}

func newPipelineFixture(t *testing.T, assets ...*model.Asset) *pipelineFixture {
	assetRepo := newFakeAssetRepo(assets...)
	blobRepo := &fakeBlobRepo{}
	store := newFakeStore()
	fetcher := &fakeFetcher{t: t, content: []byte("fake png bytes")}
	extractor := &fakeExtractor{}
	thumbGen := &fakeGenerator{key: "thumb-key"}
	prevGen := &fakeGenerator{key: "preview-key"}

	tx := &fakeTxManager{repos: repository.Repositories{
		Asset:       assetRepo,
		ContentBlob: blobRepo,
	}}
	settings := &fakeSettings{values: map[string]string{
		constant.KeyIngestConcurrency.String(): "2",
	}}

	p := NewPipeline(tx, assetRepo, store, fetcher, extractor, thumbGen, prevGen,
		settings, event.NewEventBus(), t.TempDir())
	p.retryBaseDelay = time.Millisecond
	p.notFoundRetryDelay = time.Millisecond

	return &pipelineFixture{
		pipeline:  p,
		assetRepo: assetRepo,
		blobRepo:  blobRepo,
		store:     store,
		fetcher:   fetcher,
		extractor: extractor,
		thumbGen:  thumbGen,
		prevGen:   prevGen,
	}
}

func pendingAsset(id uint) *model.Asset {
	return &model.Asset{
		ID:           id,
		OwnerID:      10,
		MediaKind:    constant.MediaKindImage,
		SourceURL:    sql.NullString{String: "https://cdn.example.com/a.png", Valid: true},
		IngestStatus: constant.IngestStatusPending,
	}
}

// --- 测试用例 ---

func TestProcessFullRun(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))

	outcome, err := fx.pipeline.Process(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("摄取失败: %v", err)
	}
	if got := outcome.Fold(); got != constant.IngestStatusCompleted {
		t.Fatalf("期望 completed，得到 %s", got)
	}

	asset, _ := fx.assetRepo.FindByID(context.Background(), 1)
	if asset.IngestStatus != constant.IngestStatusCompleted {
		t.Errorf("持久化状态应为 completed: %s", asset.IngestStatus)
	}
	if !asset.ContentHash.Valid || !asset.StorageKey.Valid {
		t.Error("内容哈希与存储键应已写入")
	}
	if !asset.DownloadedAt.Valid || !asset.MetadataExtractedAt.Valid ||
		!asset.ThumbnailGeneratedAt.Valid || !asset.PreviewGeneratedAt.Valid {
		t.Error("所有阶段时间戳应已设置")
	}
	if asset.ThumbnailKey.String != "thumb-key" || asset.PreviewKey.String != "preview-key" {
		t.Error("派生图键应已写入")
	}
	if fx.fetcher.calls != 1 {
		t.Errorf("期望下载1次，实际 %d 次", fx.fetcher.calls)
	}
	if fx.blobRepo.ensureCalls != 1 {
		t.Errorf("期望登记 blob 1次，实际 %d 次", fx.blobRepo.ensureCalls)
	}
	if asset.LastError.Valid {
		t.Errorf("成功时不应有 last_error: %s", asset.LastError.String)
	}
}

func TestProcessIdempotentRerun(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))
	ctx := context.Background()

	if _, err := fx.pipeline.Process(ctx, 1, Options{}); err != nil {
		t.Fatalf("首次摄取失败: %v", err)
	}
	fetchesAfterFirst := fx.fetcher.calls
	writesAfterFirst := fx.store.writes

	// 非强制重跑：零下载、零存储写入
	outcome, err := fx.pipeline.Process(ctx, 1, Options{})
	if err != nil {
		t.Fatalf("重跑失败: %v", err)
	}
	for _, r := range outcome.Results {
		if r.Outcome != OutcomeSkipped {
			t.Errorf("阶段 %s 应被跳过，实际 %v", r.Stage, r.Outcome)
		}
	}
	if fx.fetcher.calls != fetchesAfterFirst {
		t.Errorf("重跑不应产生下载: %d → %d", fetchesAfterFirst, fx.fetcher.calls)
	}
	if fx.store.writes != writesAfterFirst {
		t.Errorf("重跑不应产生存储写入: %d → %d", writesAfterFirst, fx.store.writes)
	}
}

func TestProcessReStoresAfterHashConflict(t *testing.T) {
	// 记录里残留着指向旧字节的存储键：下载内容的哈希与记录不一致时，
	// 哈希以实际字节为准，存储阶段必须重新按新哈希入库，不能沿用旧键
	staleHash := "00000000000000000000000000000000000000000000000000000000deadbeef"
	asset := pendingAsset(1)
	asset.MimeType = sql.NullString{String: "image/png", Valid: true}
	asset.ContentHash = sql.NullString{String: staleHash, Valid: true}
	asset.StorageKey = sql.NullString{String: storage.ContentKey(10, staleHash, ".png"), Valid: true}
	fx := newPipelineFixture(t, asset)
	ctx := context.Background()

	outcome, err := fx.pipeline.Process(ctx, 1, Options{})
	if err != nil {
		t.Fatalf("摄取失败: %v", err)
	}
	if got := outcome.Fold(); got != constant.IngestStatusCompleted {
		t.Fatalf("期望 completed，得到 %s", got)
	}

	sum := sha256.Sum256(fx.fetcher.content)
	wantHash := hex.EncodeToString(sum[:])
	wantKey := storage.ContentKey(10, wantHash, ".png")

	got, _ := fx.assetRepo.FindByID(ctx, 1)
	if got.ContentHash.String != wantHash {
		t.Errorf("内容哈希应以实际字节为准: %s", got.ContentHash.String)
	}
	if got.StorageKey.String != wantKey {
		t.Errorf("存储键应重新寻址到新哈希: %s", got.StorageKey.String)
	}
	if fx.store.writes != 1 {
		t.Errorf("新内容应入库1次，实际 %d 次", fx.store.writes)
	}
}

func TestProcessPartialFailureStillCompletes(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))
	fx.extractor.err = fmt.Errorf("模拟提取失败")

	outcome, err := fx.pipeline.Process(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("摄取失败: %v", err)
	}
	if got := outcome.Fold(); got != constant.IngestStatusCompleted {
		t.Fatalf("可选阶段失败不应使整体失败: %s", got)
	}

	asset, _ := fx.assetRepo.FindByID(context.Background(), 1)
	if asset.MetadataExtractedAt.Valid {
		t.Error("失败阶段的时间戳应保持未设置")
	}
	if !asset.ThumbnailGeneratedAt.Valid {
		t.Error("后续阶段应继续执行")
	}
}

func TestProcessFetchFailureMarksFailed(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))
	fx.fetcher.err = fmt.Errorf("连接被重置: %w", constant.ErrTransport)

	outcome, err := fx.pipeline.Process(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("管道本身不应报错: %v", err)
	}
	if got := outcome.Fold(); got != constant.IngestStatusFailed {
		t.Fatalf("期望 failed，得到 %s", got)
	}
	if fx.fetcher.calls != 3 {
		t.Errorf("网络错误应重试3次，实际 %d 次", fx.fetcher.calls)
	}

	asset, _ := fx.assetRepo.FindByID(context.Background(), 1)
	if asset.IngestStatus != constant.IngestStatusFailed {
		t.Errorf("持久化状态应为 failed: %s", asset.IngestStatus)
	}
	if !asset.LastError.Valid || asset.LastError.String == "" {
		t.Error("失败时应记录 last_error")
	}
}

func TestProcessPolicyErrorNoRetry(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))
	fx.fetcher.err = fmt.Errorf("太大了: %w", constant.ErrSizeExceeded)

	outcome, err := fx.pipeline.Process(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("管道本身不应报错: %v", err)
	}
	if outcome.Fold() != constant.IngestStatusFailed {
		t.Fatal("策略类错误应使整体失败")
	}
	if fx.fetcher.calls != 1 {
		t.Errorf("策略类错误不应重试: %d 次", fx.fetcher.calls)
	}
}

func TestProcessFailedNeedsForce(t *testing.T) {
	a := pendingAsset(1)
	a.IngestStatus = constant.IngestStatusFailed
	fx := newPipelineFixture(t, a)

	if _, err := fx.pipeline.Process(context.Background(), 1, Options{}); !errors.Is(err, constant.ErrConflict) {
		t.Fatalf("failed 状态非强制重跑应返回冲突: %v", err)
	}

	// 强制重跑恢复正常
	outcome, err := fx.pipeline.Process(context.Background(), 1, Options{Force: true})
	if err != nil {
		t.Fatalf("强制重跑失败: %v", err)
	}
	if outcome.Fold() != constant.IngestStatusCompleted {
		t.Fatal("强制重跑应完成")
	}
}

func TestProcessSelectiveSteps(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))
	ctx := context.Background()

	if _, err := fx.pipeline.Process(ctx, 1, Options{}); err != nil {
		t.Fatalf("首次摄取失败: %v", err)
	}
	extractorCalls := fx.extractor.calls
	thumbCalls := fx.thumbGen.calls
	prevCalls := fx.prevGen.calls

	// 只强制重做缩略图
	if _, err := fx.pipeline.Process(ctx, 1, Options{Force: true, Steps: []string{StageThumbnail}}); err != nil {
		t.Fatalf("选择性重跑失败: %v", err)
	}
	if fx.thumbGen.calls != thumbCalls+1 {
		t.Errorf("缩略图应被重做: %d → %d", thumbCalls, fx.thumbGen.calls)
	}
	if fx.extractor.calls != extractorCalls {
		t.Errorf("未选中的元数据阶段不应执行: %d → %d", extractorCalls, fx.extractor.calls)
	}
	if fx.prevGen.calls != prevCalls {
		t.Errorf("未选中的预览阶段不应执行: %d → %d", prevCalls, fx.prevGen.calls)
	}
}

func TestProcessToolUnavailableDegrades(t *testing.T) {
	fx := newPipelineFixture(t, pendingAsset(1))
	fx.thumbGen.err = constant.ErrToolUnavailable

	outcome, err := fx.pipeline.Process(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("摄取失败: %v", err)
	}
	if outcome.Fold() != constant.IngestStatusCompleted {
		t.Fatal("工具缺失应降级而非失败")
	}

	asset, _ := fx.assetRepo.FindByID(context.Background(), 1)
	if asset.ThumbnailGeneratedAt.Valid {
		t.Error("降级跳过的阶段不应设置时间戳")
	}
}
