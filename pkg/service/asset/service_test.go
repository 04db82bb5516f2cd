package asset

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/service/dedup"
)

// --- 测试桩 ---

type fakeAssetRepo struct {
	mu     sync.Mutex
	nextID uint
	assets map[uint]*model.Asset

	createCalls int
	updateCalls int
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{nextID: 1, assets: make(map[uint]*model.Asset)}
}

func (r *fakeAssetRepo) Create(ctx context.Context, asset *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset.ID = r.nextID
	r.nextID++
	cp := *asset
	r.assets[asset.ID] = &cp
	r.createCalls++
	return nil
}

func (r *fakeAssetRepo) Update(ctx context.Context, asset *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[asset.ID]; !ok {
		return constant.ErrNotFound
	}
	cp := *asset
	r.assets[asset.ID] = &cp
	r.updateCalls++
	return nil
}

func (r *fakeAssetRepo) FindByID(ctx context.Context, id uint) (*model.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssetRepo) FindByProviderTuple(ctx context.Context, ownerID uint, providerID string, candidateIDs []string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeAssetRepo) FindByContentHash(ctx context.Context, ownerID uint, hash string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeAssetRepo) FindFingerprinted(ctx context.Context, ownerID uint) ([]*model.Asset, error) {
	return nil, nil
}

func (r *fakeAssetRepo) FindBySourceURL(ctx context.Context, ownerID uint, url string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeAssetRepo) FindBySourceURLFragment(ctx context.Context, ownerID uint, providerID string, fragment string) (*model.Asset, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeAssetRepo) FindPendingBatch(ctx context.Context, limit int) ([]*model.Asset, error) {
	return nil, nil
}

func (r *fakeAssetRepo) FindByGenerationIDs(ctx context.Context, generationIDs []uint) ([]*model.Asset, error) {
	return nil, nil
}

func (r *fakeAssetRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	return nil, nil
}

func (r *fakeAssetRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return constant.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

type fakeGenRepo struct {
	mu      sync.Mutex
	nextID  uint
	created []*model.Generation
}

func (r *fakeGenRepo) Create(ctx context.Context, gen *model.Generation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	gen.ID = r.nextID
	r.created = append(r.created, gen)
	return nil
}

func (r *fakeGenRepo) FindByID(ctx context.Context, id uint) (*model.Generation, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeGenRepo) FindByReproHash(ctx context.Context, ownerID uint, reproHash string) ([]*model.Generation, error) {
	return nil, nil
}

type fakeMetaRepo struct {
	mu   sync.Mutex
	data map[uint]map[string]string
}

func newFakeMetaRepo() *fakeMetaRepo {
	return &fakeMetaRepo{data: make(map[uint]map[string]string)}
}

func (r *fakeMetaRepo) Set(ctx context.Context, assetID uint, name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[assetID] == nil {
		r.data[assetID] = make(map[string]string)
	}
	r.data[assetID][name] = value
	return nil
}

func (r *fakeMetaRepo) Get(ctx context.Context, assetID uint, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[assetID][name]
	if !ok {
		return "", constant.ErrNotFound
	}
	return v, nil
}

func (r *fakeMetaRepo) GetAll(ctx context.Context, assetID uint) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.data[assetID]))
	for k, v := range r.data[assetID] {
		out[k] = v
	}
	return out, nil
}

func (r *fakeMetaRepo) Delete(ctx context.Context, assetID uint, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data[assetID], name)
	return nil
}

func (r *fakeMetaRepo) DeleteAll(ctx context.Context, assetID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, assetID)
	return nil
}

type fakeEdgeRepo struct{ deleteByAssetCalls int }

func (r *fakeEdgeRepo) Create(ctx context.Context, edge *model.LineageEdge) error { return nil }
func (r *fakeEdgeRepo) ListByChild(ctx context.Context, childID uint) ([]*model.LineageEdge, error) {
	return nil, nil
}
func (r *fakeEdgeRepo) ListByParent(ctx context.Context, parentID uint) ([]*model.LineageEdge, error) {
	return nil, nil
}
func (r *fakeEdgeRepo) DeleteByChild(ctx context.Context, childID uint) error { return nil }
func (r *fakeEdgeRepo) DeleteByAsset(ctx context.Context, assetID uint) error {
	r.deleteByAssetCalls++
	return nil
}
func (r *fakeEdgeRepo) FillOptional(ctx context.Context, edgeID uint, patch *model.LineageEdge) error {
	return nil
}

type fakeTxManager struct {
	assets *fakeAssetRepo
	gens   *fakeGenRepo
	metas  *fakeMetaRepo
	edges  *fakeEdgeRepo
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(repository.Repositories{
		Asset:       m.assets,
		Generation:  m.gens,
		Metadata:    m.metas,
		LineageEdge: m.edges,
	})
}

// fakeResolver 返回预置的命中结果，并记录 Absorb 调用。
type fakeResolver struct {
	match       *model.Asset
	strategy    dedup.Strategy
	absorbCalls int
}

func (r *fakeResolver) Resolve(ctx context.Context, ownerID uint, sig dedup.Signals) (*dedup.Match, error) {
	if r.match == nil {
		return nil, nil
	}
	return &dedup.Match{Asset: r.match, Strategy: r.strategy}, nil
}

func (r *fakeResolver) Absorb(asset *model.Asset, sig dedup.Signals) bool {
	r.absorbCalls++
	if sig.SourceURL != "" && !asset.SourceURL.Valid {
		asset.SourceURL.String = sig.SourceURL
		asset.SourceURL.Valid = true
		return true
	}
	return false
}

type fakeLineage struct {
	mu           sync.Mutex
	addedEdges   map[uint][]model.ParentRef
	refreshCalls []uint
}

func newFakeLineage() *fakeLineage {
	return &fakeLineage{addedEdges: make(map[uint][]model.ParentRef)}
}

func (l *fakeLineage) AddEdges(ctx context.Context, childID uint, parents []model.ParentRef) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.addedEdges[childID] = append(l.addedEdges[childID], parents...)
	return len(parents), nil
}

func (l *fakeLineage) RefreshLineage(ctx context.Context, childID uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refreshCalls = append(l.refreshCalls, childID)
	return nil
}

type fakeExtractor struct {
	refs []model.EmbeddedAssetRef
	err  error
}

func (e *fakeExtractor) ExtractEmbedded(ctx context.Context, providerID string, payload []byte) ([]model.EmbeddedAssetRef, error) {
	return e.refs, e.err
}

type serviceFixture struct {
	svc       *Service
	assets    *fakeAssetRepo
	gens      *fakeGenRepo
	metas     *fakeMetaRepo
	edges     *fakeEdgeRepo
	resolver  *fakeResolver
	lineage   *fakeLineage
	extractor *fakeExtractor
	bus       *event.EventBus
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		assets:    newFakeAssetRepo(),
		gens:      &fakeGenRepo{},
		metas:     newFakeMetaRepo(),
		edges:     &fakeEdgeRepo{},
		resolver:  &fakeResolver{},
		lineage:   newFakeLineage(),
		extractor: &fakeExtractor{},
		bus:       event.NewEventBus(),
	}
	tx := &fakeTxManager{assets: f.assets, gens: f.gens, metas: f.metas, edges: f.edges}
	f.svc = NewService(tx, f.assets, f.gens, f.metas, f.edges,
		f.resolver, f.lineage, f.extractor, f.bus, t.TempDir())
	return f
}

// collectCreatedEvents 订阅 asset:created 并把收到的事件写入缓冲通道。
func collectCreatedEvents(bus *event.EventBus) <-chan model.AssetCreatedEvent {
	ch := make(chan model.AssetCreatedEvent, 16)
	bus.Subscribe(event.AssetCreated, func(payload interface{}) {
		if evt, ok := payload.(model.AssetCreatedEvent); ok {
			ch <- evt
		}
	})
	return ch
}

func waitEvent(t *testing.T, ch <-chan model.AssetCreatedEvent) model.AssetCreatedEvent {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("超时未收到 asset:created 事件")
		return model.AssetCreatedEvent{}
	}
}

// --- 测试 ---

func TestUploadCreatesPendingAsset(t *testing.T) {
	f := newServiceFixture(t)
	events := collectCreatedEvents(f.bus)

	content := []byte("not-a-real-image-but-bytes-are-bytes")
	wantHash := sha256.Sum256(content)

	asset, reused, err := f.svc.Upload(context.Background(), UploadInput{
		OwnerID:  10,
		Filename: "cat.jpg",
		MimeType: "image/jpeg",
		Reader:   bytes.NewReader(content),
	})
	if err != nil {
		t.Fatalf("Upload 返回错误: %v", err)
	}
	if reused {
		t.Fatal("首次上传不应命中复用")
	}
	if asset.ID == 0 {
		t.Fatal("上传后资产应已落库")
	}
	if asset.IngestStatus != constant.IngestStatusPending {
		t.Fatalf("新资产状态应为 pending，实际 %s", asset.IngestStatus)
	}
	if got := asset.ContentHash.String; got != hex.EncodeToString(wantHash[:]) {
		t.Fatalf("内容哈希不匹配: %s", got)
	}
	if !asset.LocalPath.Valid {
		t.Fatal("上传内容应已落盘并记录本地路径")
	}
	if asset.Size != int64(len(content)) {
		t.Fatalf("大小应为 %d，实际 %d", len(content), asset.Size)
	}

	evt := waitEvent(t, events)
	if evt.AssetID != asset.ID || evt.Source != "upload" {
		t.Fatalf("事件内容不符: %+v", evt)
	}
}

func TestUploadReusesExactDuplicate(t *testing.T) {
	f := newServiceFixture(t)

	existing := &model.Asset{ID: 7, OwnerID: 10, MediaKind: constant.MediaKindImage,
		IngestStatus: constant.IngestStatusCompleted}
	f.assets.assets[7] = existing
	f.resolver.match = existing
	f.resolver.strategy = dedup.StrategyContentHash

	asset, reused, err := f.svc.Upload(context.Background(), UploadInput{
		OwnerID:  10,
		MimeType: "image/jpeg",
		Reader:   bytes.NewReader([]byte("same bytes again")),
	})
	if err != nil {
		t.Fatalf("Upload 返回错误: %v", err)
	}
	if !reused {
		t.Fatal("命中内容哈希时应复用已有资产")
	}
	if asset.ID != 7 {
		t.Fatalf("应返回已有资产 7，实际 %d", asset.ID)
	}
	if f.assets.createCalls != 0 {
		t.Fatalf("复用时不应新建记录，实际创建了 %d 次", f.assets.createCalls)
	}
	if f.resolver.absorbCalls != 1 {
		t.Fatalf("复用时应执行一次非破坏性合并，实际 %d 次", f.resolver.absorbCalls)
	}
}

func TestUploadRejectsEmptyBody(t *testing.T) {
	f := newServiceFixture(t)

	_, _, err := f.svc.Upload(context.Background(), UploadInput{
		OwnerID:  10,
		MimeType: "image/png",
		Reader:   bytes.NewReader(nil),
	})
	if !errors.Is(err, constant.ErrCorrupted) {
		t.Fatalf("空内容上传应返回损坏错误，实际 %v", err)
	}
	if f.assets.createCalls != 0 {
		t.Fatal("空内容上传不应落库")
	}
}

func TestSyncCreatesGenerationAndRefreshesLineage(t *testing.T) {
	f := newServiceFixture(t)

	asset, reused, err := f.svc.SyncFromProvider(context.Background(), 10, SyncItem{
		ProviderID: "imagehub",
		NativeID:   "img-001",
		MediaKind:  constant.MediaKindImage,
		RemoteURL:  "https://cdn.example.com/img-001.png",
		Operation:  "transition",
		Params:     model.JSONMap{"strength": 0.8},
		Inputs:     []string{"pub-a", "pub-b"},
	})
	if err != nil {
		t.Fatalf("SyncFromProvider 返回错误: %v", err)
	}
	if reused {
		t.Fatal("首次同步不应命中复用")
	}
	if len(f.gens.created) != 1 {
		t.Fatalf("应创建一条生成记录，实际 %d", len(f.gens.created))
	}
	gen := f.gens.created[0]
	if gen.ReproHash == "" {
		t.Fatal("生成记录应携带可复现哈希")
	}
	if gen.OperationType != "transition" {
		t.Fatalf("操作类型不符: %s", gen.OperationType)
	}
	if !asset.GenerationID.Valid || asset.GenerationID.Uint64 != uint64(gen.ID) {
		t.Fatal("资产应关联到新建的生成记录")
	}
	if len(f.lineage.refreshCalls) != 1 || f.lineage.refreshCalls[0] != asset.ID {
		t.Fatalf("携带生成信息的同步应触发谱系重建，实际 %v", f.lineage.refreshCalls)
	}
}

func TestSyncReuseSkipsCreate(t *testing.T) {
	f := newServiceFixture(t)

	existing := &model.Asset{ID: 3, OwnerID: 10, MediaKind: constant.MediaKindImage,
		IngestStatus: constant.IngestStatusCompleted}
	f.assets.assets[3] = existing
	f.resolver.match = existing
	f.resolver.strategy = dedup.StrategyProviderTuple

	asset, reused, err := f.svc.SyncFromProvider(context.Background(), 10, SyncItem{
		ProviderID: "otherhub",
		NativeID:   "native-9",
		MediaKind:  constant.MediaKindImage,
		RemoteURL:  "https://other.example.com/native-9.png",
	})
	if err != nil {
		t.Fatalf("SyncFromProvider 返回错误: %v", err)
	}
	if !reused || asset.ID != 3 {
		t.Fatalf("应复用资产 3，实际 reused=%v id=%d", reused, asset.ID)
	}
	if f.assets.createCalls != 0 {
		t.Fatal("复用时不应新建记录")
	}
	// 合并补上了来源 URL，应持久化
	if f.assets.updateCalls == 0 {
		t.Fatal("合并产生变更时应写回资产")
	}
}

func TestSyncRejectsMissingIdentity(t *testing.T) {
	f := newServiceFixture(t)

	_, _, err := f.svc.SyncFromProvider(context.Background(), 10, SyncItem{
		ProviderID: "imagehub",
	})
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("缺少原生ID应返回参数错误，实际 %v", err)
	}
}

func TestSyncExtractsEmbeddedChildren(t *testing.T) {
	f := newServiceFixture(t)
	f.extractor.refs = []model.EmbeddedAssetRef{
		{MediaKind: constant.MediaKindImage, RemoteURL: "https://cdn.example.com/frame-0.png",
			CandidateIDs: []string{"frame-0"}},
		{MediaKind: constant.MediaKindImage, RemoteURL: "https://cdn.example.com/frame-1.png",
			CandidateIDs: []string{"frame-1"}, RelationType: model.RelationKeyframe},
	}

	parent, _, err := f.svc.SyncFromProvider(context.Background(), 10, SyncItem{
		ProviderID:  "videohub",
		NativeID:    "vid-7",
		MediaKind:   constant.MediaKindVideo,
		RawMetadata: []byte(`{"video":{"prompt":"sunset","model":"gen-3"}}`),
	})
	if err != nil {
		t.Fatalf("SyncFromProvider 返回错误: %v", err)
	}

	// 父资产 1 条加内嵌子资产 2 条
	if f.assets.createCalls != 3 {
		t.Fatalf("应创建 3 条资产记录，实际 %d", f.assets.createCalls)
	}

	var childEdges []model.ParentRef
	for childID, refs := range f.lineage.addedEdges {
		if childID == parent.ID {
			t.Fatal("父资产不应获得内嵌入边")
		}
		childEdges = append(childEdges, refs...)
	}
	if len(childEdges) != 2 {
		t.Fatalf("每个子资产应有一条指向父资产的边，实际 %d 条", len(childEdges))
	}
	for _, ref := range childEdges {
		if ref.ParentID != parent.ID {
			t.Fatalf("边应指向父资产 %d，实际 %d", parent.ID, ref.ParentID)
		}
	}

	// 父引用同时落盘到子资产元数据，谱系重建依赖它恢复内嵌边
	for childID := range f.lineage.addedEdges {
		raw, err := f.metas.Get(context.Background(), childID, model.MetaKeyEmbeddedParents)
		if err != nil {
			t.Fatalf("子资产 %d 应持有内嵌父引用记录: %v", childID, err)
		}
		var persisted []model.EmbeddedParentRecord
		if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
			t.Fatalf("子资产 %d 的父引用记录无法解码: %v", childID, err)
		}
		if len(persisted) != 1 || persisted[0].ParentID != parent.ID {
			t.Fatalf("子资产 %d 的父引用记录不符: %+v", childID, persisted)
		}
	}

	// 透传元数据落为键值对
	meta, _ := f.metas.GetAll(context.Background(), parent.ID)
	if meta[model.MetaKeyProviderPrompt] != "sunset" || meta[model.MetaKeyProviderModel] != "gen-3" {
		t.Fatalf("提供商元数据透传不符: %v", meta)
	}
}

func TestDeleteCascades(t *testing.T) {
	f := newServiceFixture(t)
	f.assets.assets[5] = &model.Asset{ID: 5, OwnerID: 10}
	f.metas.data[5] = map[string]string{"media:width": "800"}

	if err := f.svc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete 返回错误: %v", err)
	}
	if f.edges.deleteByAssetCalls != 1 {
		t.Fatal("删除资产前应先清理谱系边")
	}
	if _, ok := f.metas.data[5]; ok {
		t.Fatal("删除资产应连带清理元数据")
	}
	if _, ok := f.assets.assets[5]; ok {
		t.Fatal("资产记录应已删除")
	}
}

func TestKindFromMime(t *testing.T) {
	cases := map[string]constant.MediaKind{
		"image/png":  constant.MediaKindImage,
		"video/mp4":  constant.MediaKindVideo,
		"audio/mpeg": constant.MediaKindAudio,
		"model/gltf": constant.MediaKindModel3D,
		"":           constant.MediaKindImage,
	}
	for mime, want := range cases {
		if got := kindFromMime(mime); got != want {
			t.Errorf("kindFromMime(%q) = %s，期望 %s", mime, got, want)
		}
	}
}
