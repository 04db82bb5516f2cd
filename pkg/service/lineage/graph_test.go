package lineage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
)

// --- 内存桩实现 ---

type fakeAssetRepo struct {
	assets map[uint]*model.Asset
}

func newFakeAssetRepo(ids ...uint) *fakeAssetRepo {
	m := make(map[uint]*model.Asset)
	for _, id := range ids {
		m[id] = &model.Asset{ID: id, OwnerID: 10, MediaKind: constant.MediaKindImage}
	}
	return &fakeAssetRepo{assets: m}
}

func (f *fakeAssetRepo) Create(ctx context.Context, a *model.Asset) error {
	f.assets[a.ID] = a
	return nil
}
func (f *fakeAssetRepo) Update(ctx context.Context, a *model.Asset) error { return nil }
func (f *fakeAssetRepo) FindByID(ctx context.Context, id uint) (*model.Asset, error) {
	if a, ok := f.assets[id]; ok {
		return a, nil
	}
	return nil, constant.ErrNotFound
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
	var out []*model.Asset
	for _, a := range f.assets {
		if !a.GenerationID.Valid {
			continue
		}
		for _, id := range ids {
			if uint(a.GenerationID.Uint64) == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}
func (f *fakeAssetRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	var out []*model.Asset
	for _, id := range ids {
		if a, ok := f.assets[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAssetRepo) Delete(ctx context.Context, id uint) error {
	delete(f.assets, id)
	return nil
}

type fakeEdgeRepo struct {
	edges  []*model.LineageEdge
	nextID uint
}

func (f *fakeEdgeRepo) Create(ctx context.Context, e *model.LineageEdge) error {
	for _, ex := range f.edges {
		if ex.ChildID == e.ChildID && ex.ParentID == e.ParentID &&
			ex.RelationType == e.RelationType && ex.SequenceOrder == e.SequenceOrder {
			return constant.ErrConflict
		}
	}
	f.nextID++
	e.ID = f.nextID
	copied := *e
	f.edges = append(f.edges, &copied)
	return nil
}
func (f *fakeEdgeRepo) ListByChild(ctx context.Context, childID uint) ([]*model.LineageEdge, error) {
	var out []*model.LineageEdge
	for _, e := range f.edges {
		if e.ChildID == childID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEdgeRepo) ListByParent(ctx context.Context, parentID uint) ([]*model.LineageEdge, error) {
	var out []*model.LineageEdge
	for _, e := range f.edges {
		if e.ParentID == parentID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEdgeRepo) DeleteByChild(ctx context.Context, childID uint) error {
	var kept []*model.LineageEdge
	for _, e := range f.edges {
		if e.ChildID != childID {
			kept = append(kept, e)
		}
	}
	f.edges = kept
	return nil
}
func (f *fakeEdgeRepo) DeleteByAsset(ctx context.Context, assetID uint) error {
	var kept []*model.LineageEdge
	for _, e := range f.edges {
		if e.ChildID != assetID && e.ParentID != assetID {
			kept = append(kept, e)
		}
	}
	f.edges = kept
	return nil
}
func (f *fakeEdgeRepo) FillOptional(ctx context.Context, edgeID uint, patch *model.LineageEdge) error {
	return nil
}

type fakeGenRepo struct {
	gens map[uint]*model.Generation
}

func (f *fakeGenRepo) Create(ctx context.Context, g *model.Generation) error {
	if f.gens == nil {
		f.gens = make(map[uint]*model.Generation)
	}
	f.gens[g.ID] = g
	return nil
}
func (f *fakeGenRepo) FindByID(ctx context.Context, id uint) (*model.Generation, error) {
	if g, ok := f.gens[id]; ok {
		return g, nil
	}
	return nil, constant.ErrNotFound
}
func (f *fakeGenRepo) FindByReproHash(ctx context.Context, ownerID uint, reproHash string) ([]*model.Generation, error) {
	var out []*model.Generation
	for _, g := range f.gens {
		if g.OwnerID == ownerID && g.ReproHash == reproHash {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeMetaRepo struct {
	data map[uint]map[string]string
}

func (f *fakeMetaRepo) Set(ctx context.Context, assetID uint, name, value string) error {
	if f.data == nil {
		f.data = make(map[uint]map[string]string)
	}
	if f.data[assetID] == nil {
		f.data[assetID] = make(map[string]string)
	}
	f.data[assetID][name] = value
	return nil
}
func (f *fakeMetaRepo) Get(ctx context.Context, assetID uint, name string) (string, error) {
	if v, ok := f.data[assetID][name]; ok {
		return v, nil
	}
	return "", constant.ErrNotFound
}
func (f *fakeMetaRepo) GetAll(ctx context.Context, assetID uint) (map[string]string, error) {
	return f.data[assetID], nil
}
func (f *fakeMetaRepo) Delete(ctx context.Context, assetID uint, name string) error {
	delete(f.data[assetID], name)
	return nil
}
func (f *fakeMetaRepo) DeleteAll(ctx context.Context, assetID uint) error {
	delete(f.data, assetID)
	return nil
}

func sourceRef(parentID uint, seq int) model.ParentRef {
	return model.ParentRef{
		ParentID:      parentID,
		RelationType:  model.RelationSourceImage,
		OperationType: "img2img",
		SequenceOrder: seq,
	}
}

// --- 测试用例 ---

func TestAddEdgesSkipsMissingParent(t *testing.T) {
	assetRepo := newFakeAssetRepo(1, 2)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})

	// 父资产 99 不存在，只应写入 2→1 这一条
	added, err := svc.AddEdges(context.Background(), 1, []model.ParentRef{
		sourceRef(2, 0),
		sourceRef(99, 1),
	})
	if err != nil {
		t.Fatalf("建边失败: %v", err)
	}
	if added != 1 || len(edgeRepo.edges) != 1 {
		t.Fatalf("期望写入1条边，实际 added=%d, 总数=%d", added, len(edgeRepo.edges))
	}
}

func TestAddEdgesIdempotent(t *testing.T) {
	assetRepo := newFakeAssetRepo(1, 2)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})
	ctx := context.Background()

	refs := []model.ParentRef{sourceRef(2, 0)}
	if _, err := svc.AddEdges(ctx, 1, refs); err != nil {
		t.Fatalf("首次建边失败: %v", err)
	}
	added, err := svc.AddEdges(ctx, 1, refs)
	if err != nil {
		t.Fatalf("重复建边不应报错: %v", err)
	}
	if added != 0 || len(edgeRepo.edges) != 1 {
		t.Fatalf("重复建边应幂等: added=%d, 总数=%d", added, len(edgeRepo.edges))
	}
}

func TestAddEdgesRejectsSelfLoop(t *testing.T) {
	assetRepo := newFakeAssetRepo(1)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})

	// 资产不能作为自身的父资产
	added, err := svc.AddEdges(context.Background(), 1, []model.ParentRef{sourceRef(1, 0)})
	if err != nil {
		t.Fatalf("自环应被跳过而非报错: %v", err)
	}
	if added != 0 || len(edgeRepo.edges) != 0 {
		t.Fatalf("自环边不得写入: added=%d, 总数=%d", added, len(edgeRepo.edges))
	}
}

func TestTraverseSymmetry(t *testing.T) {
	assetRepo := newFakeAssetRepo(1, 2)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})
	ctx := context.Background()

	if _, err := svc.AddEdges(ctx, 2, []model.ParentRef{sourceRef(1, 0)}); err != nil {
		t.Fatalf("建边失败: %v", err)
	}

	// 从父、从子出发遍历，看到的图应完全一致
	fromParent, err := svc.Traverse(ctx, 1, 3)
	if err != nil {
		t.Fatalf("从父遍历失败: %v", err)
	}
	fromChild, err := svc.Traverse(ctx, 2, 3)
	if err != nil {
		t.Fatalf("从子遍历失败: %v", err)
	}

	if len(fromParent.Edges) != 1 || len(fromChild.Edges) != 1 {
		t.Fatalf("两个方向都应看到同一条边: %d vs %d", len(fromParent.Edges), len(fromChild.Edges))
	}
	if len(fromParent.Nodes) != 2 || len(fromChild.Nodes) != 2 {
		t.Fatalf("两个方向都应看到两个节点: %d vs %d", len(fromParent.Nodes), len(fromChild.Nodes))
	}
}

func TestTraverseDepthLimited(t *testing.T) {
	// 链 1→2→3→4（1 是最老的祖先）
	assetRepo := newFakeAssetRepo(1, 2, 3, 4)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})
	ctx := context.Background()

	for child := uint(2); child <= 4; child++ {
		if _, err := svc.AddEdges(ctx, child, []model.ParentRef{sourceRef(child-1, 0)}); err != nil {
			t.Fatalf("建边失败: %v", err)
		}
	}

	// 从 4 上行 2 层：应看到 {4,3,2}，看不到 1
	result, err := svc.Traverse(ctx, 4, 2)
	if err != nil {
		t.Fatalf("遍历失败: %v", err)
	}
	ids := make(map[uint]bool)
	for _, n := range result.Nodes {
		ids[n.ID] = true
	}
	if !ids[4] || !ids[3] || !ids[2] {
		t.Errorf("深度2应覆盖 {4,3,2}: %v", ids)
	}
	if ids[1] {
		t.Errorf("深度2不应到达节点1: %v", ids)
	}
	if len(result.Edges) != 2 {
		t.Errorf("深度2应看到2条边: %d", len(result.Edges))
	}
}

func TestTraverseDedupAcrossDirections(t *testing.T) {
	// 菱形: 1→2, 1→3, 2→4, 3→4。从 2 遍历时 1→2 与 2→4
	// 会被两个方向分别发现，结果中不得重复。
	assetRepo := newFakeAssetRepo(1, 2, 3, 4)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})
	ctx := context.Background()

	edges := []struct{ child, parent uint }{{2, 1}, {3, 1}, {4, 2}, {4, 3}}
	for _, e := range edges {
		if _, err := svc.AddEdges(ctx, e.child, []model.ParentRef{sourceRef(e.parent, 0)}); err != nil {
			t.Fatalf("建边失败: %v", err)
		}
	}

	result, err := svc.Traverse(ctx, 2, 5)
	if err != nil {
		t.Fatalf("遍历失败: %v", err)
	}
	seen := make(map[model.EdgeKey]bool)
	for _, e := range result.Edges {
		if seen[e.EdgeKey()] {
			t.Fatalf("边重复出现: %+v", e.EdgeKey())
		}
		seen[e.EdgeKey()] = true
	}
}

func TestRefreshLineageReplacesStaleEdges(t *testing.T) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化编码器失败: %v", err)
	}

	assetRepo := newFakeAssetRepo(1, 2, 3)
	edgeRepo := &fakeEdgeRepo{}
	genRepo := &fakeGenRepo{}
	svc := NewService(assetRepo, edgeRepo, genRepo)
	ctx := context.Background()

	// 资产3的真实输入是资产2，但图里残留着指向资产1的过期边
	if _, err := svc.AddEdges(ctx, 3, []model.ParentRef{sourceRef(1, 0)}); err != nil {
		t.Fatalf("建过期边失败: %v", err)
	}

	parentPublicID, err := idgen.GeneratePublicID(2, idgen.EntityTypeAsset)
	if err != nil {
		t.Fatalf("编码公共ID失败: %v", err)
	}
	genRepo.Create(ctx, &model.Generation{
		ID:            7,
		OwnerID:       10,
		OperationType: "img2img",
		Inputs:        []string{parentPublicID},
		ReproHash:     "h7",
	})
	assetRepo.assets[3].GenerationID = types.NullUint64{Uint64: 7, Valid: true}

	if err := svc.RefreshLineage(ctx, 3); err != nil {
		t.Fatalf("谱系重建失败: %v", err)
	}

	parents, _ := svc.Parents(ctx, 3)
	if len(parents) != 1 {
		t.Fatalf("重建后应只有1条入边: %d", len(parents))
	}
	if parents[0].ParentID != 2 {
		t.Errorf("重建后的父应是资产2: %d", parents[0].ParentID)
	}
}

func TestRefreshLineagePreservesEdgesWithoutSources(t *testing.T) {
	assetRepo := newFakeAssetRepo(1, 2)
	edgeRepo := &fakeEdgeRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{})
	ctx := context.Background()

	// 内嵌子资产没有生成记录，2→1 是它唯一的谱系边
	if _, err := svc.AddEdges(ctx, 2, []model.ParentRef{{
		ParentID:      1,
		RelationType:  model.RelationEmbedded,
		OperationType: "embedded_extraction",
	}}); err != nil {
		t.Fatalf("建边失败: %v", err)
	}

	if err := svc.RefreshLineage(ctx, 2); err != nil {
		t.Fatalf("谱系重建失败: %v", err)
	}

	// 没有可推导来源时重建不得清空已有边
	parents, _ := svc.Parents(ctx, 2)
	if len(parents) != 1 {
		t.Fatalf("重建后 2→1 应仍然存在: %d 条边", len(parents))
	}
	if parents[0].ParentID != 1 || parents[0].RelationType != model.RelationEmbedded {
		t.Errorf("保留下来的边应是内嵌关系 2→1: %+v", parents[0])
	}
}

func TestRefreshLineageDerivesFromEmbeddedRecords(t *testing.T) {
	assetRepo := newFakeAssetRepo(1, 2, 3)
	edgeRepo := &fakeEdgeRepo{}
	metaRepo := &fakeMetaRepo{}
	svc := NewService(assetRepo, edgeRepo, &fakeGenRepo{}, NewEmbeddedMetadataDeriver(metaRepo))
	ctx := context.Background()

	// 元数据里持久化的父引用指向资产1，图里残留着指向资产3的过期边
	records, err := json.Marshal([]model.EmbeddedParentRecord{{
		ParentID:      1,
		RelationType:  model.RelationEmbedded,
		OperationType: "embedded_extraction",
		SequenceOrder: 0,
	}})
	if err != nil {
		t.Fatalf("编码父引用记录失败: %v", err)
	}
	if err := metaRepo.Set(ctx, 2, model.MetaKeyEmbeddedParents, string(records)); err != nil {
		t.Fatalf("写入元数据失败: %v", err)
	}
	if _, err := svc.AddEdges(ctx, 2, []model.ParentRef{sourceRef(3, 0)}); err != nil {
		t.Fatalf("建过期边失败: %v", err)
	}

	if err := svc.RefreshLineage(ctx, 2); err != nil {
		t.Fatalf("谱系重建失败: %v", err)
	}

	parents, _ := svc.Parents(ctx, 2)
	if len(parents) != 1 {
		t.Fatalf("重建后应只有1条入边: %d", len(parents))
	}
	if parents[0].ParentID != 1 || parents[0].RelationType != model.RelationEmbedded {
		t.Errorf("重建后的边应来自元数据记录 2→1: %+v", parents[0])
	}
}
