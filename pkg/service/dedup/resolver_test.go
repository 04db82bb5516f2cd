package dedup

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"testing"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/urlnorm"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/service/phash"
	"github.com/anzhiyu-c/mediaflow/pkg/service/utility"
)

// fakeAssetRepo 是 AssetRepository 的内存实现，仅支持解析器用到的查询。
type fakeAssetRepo struct {
	assets []*model.Asset
}

func (f *fakeAssetRepo) Create(ctx context.Context, a *model.Asset) error {
	a.ID = uint(len(f.assets) + 1)
	f.assets = append(f.assets, a)
	return nil
}
func (f *fakeAssetRepo) Update(ctx context.Context, a *model.Asset) error { return nil }
func (f *fakeAssetRepo) FindByID(ctx context.Context, id uint) (*model.Asset, error) {
	for _, a := range f.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindByProviderTuple(ctx context.Context, ownerID uint, providerID string, candidateIDs []string) (*model.Asset, error) {
	for _, a := range f.assets {
		if a.OwnerID != ownerID || !a.ProviderID.Valid || a.ProviderID.String != providerID || !a.ProviderAssetID.Valid {
			continue
		}
		for _, cid := range candidateIDs {
			if a.ProviderAssetID.String == cid {
				return a, nil
			}
		}
	}
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindByContentHash(ctx context.Context, ownerID uint, hash string) (*model.Asset, error) {
	for _, a := range f.assets {
		if a.OwnerID == ownerID && a.ContentHash.Valid && a.ContentHash.String == hash {
			return a, nil
		}
	}
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindFingerprinted(ctx context.Context, ownerID uint) ([]*model.Asset, error) {
	var out []*model.Asset
	for _, a := range f.assets {
		if a.OwnerID == ownerID && a.MediaKind == constant.MediaKindImage && a.PerceptualHash.Valid {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAssetRepo) FindBySourceURL(ctx context.Context, ownerID uint, url string) (*model.Asset, error) {
	for _, a := range f.assets {
		if a.OwnerID == ownerID && a.SourceURL.Valid && a.SourceURL.String == url {
			return a, nil
		}
	}
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindBySourceURLFragment(ctx context.Context, ownerID uint, providerID string, fragment string) (*model.Asset, error) {
	for _, a := range f.assets {
		if a.OwnerID != ownerID || !a.SourceURL.Valid {
			continue
		}
		if providerID != "" && (!a.ProviderID.Valid || a.ProviderID.String != providerID) {
			continue
		}
		if strings.Contains(a.SourceURL.String, fragment) {
			return a, nil
		}
	}
	return nil, constant.ErrNotFound
}
func (f *fakeAssetRepo) FindPendingBatch(ctx context.Context, limit int) ([]*model.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) FindByGenerationIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	return nil, nil
}
func (f *fakeAssetRepo) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	var out []*model.Asset
	for _, id := range ids {
		if a, err := f.FindByID(ctx, id); err == nil {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAssetRepo) Delete(ctx context.Context, id uint) error { return nil }

// fakeSettingService 是 SettingService 的内存实现。
type fakeSettingService struct {
	values map[string]string
}

func (f *fakeSettingService) EnsureDefaults(ctx context.Context) error   { return nil }
func (f *fakeSettingService) LoadAllSettings(ctx context.Context) error  { return nil }
func (f *fakeSettingService) Get(key string) string                      { return f.values[key] }
func (f *fakeSettingService) GetBool(key string) bool                    { return f.values[key] == "true" }
func (f *fakeSettingService) GetInt(key string) int {
	v, _ := strconv.Atoi(f.values[key])
	return v
}
func (f *fakeSettingService) GetInt64(key string) int64 { return int64(f.GetInt(key)) }
func (f *fakeSettingService) UpdateSettings(ctx context.Context, m map[string]string) error {
	for k, v := range m {
		f.values[k] = v
	}
	return nil
}
func (f *fakeSettingService) IsPublicSetting(key string) bool { return false }

func newTestResolver(repo *fakeAssetRepo, settings map[string]string) IResolver {
	if settings == nil {
		settings = map[string]string{
			constant.KeyDedupPhashThreshold.String():  "5",
			constant.KeyDedupEnableURLFallbk.String(): "true",
		}
	}
	return NewResolver(repo, &fakeSettingService{values: settings}, utility.NewMemoryCacheService())
}

func imageAsset(id, owner uint, provider, nativeID, hash string, pHash types.NullUint64, sourceURL string) *model.Asset {
	a := &model.Asset{
		ID:                    id,
		OwnerID:               owner,
		MediaKind:             constant.MediaKindImage,
		PerceptualHash:        pHash,
		PerceptualHashVersion: phash.Version,
	}
	if provider != "" {
		a.ProviderID = sql.NullString{String: provider, Valid: true}
		a.ProviderAssetID = sql.NullString{String: nativeID, Valid: true}
	}
	if hash != "" {
		a.ContentHash = sql.NullString{String: hash, Valid: true}
	}
	if sourceURL != "" {
		a.SourceURL = sql.NullString{String: urlnorm.Normalize(sourceURL), Valid: true}
	}
	return a
}

func TestResolvePriorityProviderTupleWins(t *testing.T) {
	repo := &fakeAssetRepo{assets: []*model.Asset{
		imageAsset(1, 10, "genhub", "aaaa-1111", "", types.NullUint64{}, ""),
		imageAsset(2, 10, "", "", "deadbeef01", types.NullUint64{}, ""),
	}}
	r := newTestResolver(repo, nil)

	// 提供方三元组命中资产1，内容哈希命中资产2，应采用前者
	m, err := r.Resolve(context.Background(), 10, Signals{
		ProviderID:   "genhub",
		CandidateIDs: []string{"aaaa-1111"},
		ContentHash:  "deadbeef01",
	})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if m == nil || m.Asset.ID != 1 || m.Strategy != StrategyProviderTuple {
		t.Fatalf("期望提供方策略命中资产1: %+v", m)
	}
}

func TestResolveExactDuplicateByHash(t *testing.T) {
	repo := &fakeAssetRepo{assets: []*model.Asset{
		imageAsset(1, 10, "genhub", "x1", "cafebabe99", types.NullUint64{}, ""),
	}}
	r := newTestResolver(repo, nil)

	m, err := r.Resolve(context.Background(), 10, Signals{ContentHash: "cafebabe99"})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if m == nil || m.Asset.ID != 1 || m.Strategy != StrategyContentHash {
		t.Fatalf("期望内容哈希命中: %+v", m)
	}

	// 其他用户看不到该资产
	m, err = r.Resolve(context.Background(), 11, Signals{ContentHash: "cafebabe99"})
	if err != nil || m != nil {
		t.Fatalf("不同用户不应命中: m=%+v err=%v", m, err)
	}
}

func TestResolveNearDuplicate(t *testing.T) {
	base := uint64(0xF0F0F0F0F0F0F0F0)
	repo := &fakeAssetRepo{assets: []*model.Asset{
		imageAsset(1, 10, "", "", "", types.NullUint64{Uint64: base, Valid: true}, ""),
	}}
	r := newTestResolver(repo, nil)

	// 距离 3，低于阈值 5
	probe := base ^ 0b111
	m, err := r.Resolve(context.Background(), 10, Signals{
		PerceptualHash:        types.NullUint64{Uint64: probe, Valid: true},
		PerceptualHashVersion: phash.Version,
	})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if m == nil || m.Strategy != StrategyNearDuplicate || m.Distance != 3 {
		t.Fatalf("期望近似命中且距离为3: %+v", m)
	}

	// 距离恰好 5，等于阈值仍算近似命中
	probe = base ^ 0b11111
	m, err = r.Resolve(context.Background(), 10, Signals{
		PerceptualHash:        types.NullUint64{Uint64: probe, Valid: true},
		PerceptualHashVersion: phash.Version,
	})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if m == nil || m.Strategy != StrategyNearDuplicate || m.Distance != 5 {
		t.Fatalf("期望距离5仍命中: %+v", m)
	}

	// 距离 6，超过阈值
	probe = base ^ 0b111111
	m, err = r.Resolve(context.Background(), 10, Signals{
		PerceptualHash:        types.NullUint64{Uint64: probe, Valid: true},
		PerceptualHashVersion: phash.Version,
	})
	if err != nil || m != nil {
		t.Fatalf("超过阈值不应命中: m=%+v err=%v", m, err)
	}

	// 算法版本不符时不参与比较
	m, err = r.Resolve(context.Background(), 10, Signals{
		PerceptualHash:        types.NullUint64{Uint64: base, Valid: true},
		PerceptualHashVersion: phash.Version + 1,
	})
	if err != nil || m != nil {
		t.Fatalf("版本不符不应命中: m=%+v err=%v", m, err)
	}
}

func TestResolveBySourceURL(t *testing.T) {
	repo := &fakeAssetRepo{assets: []*model.Asset{
		imageAsset(1, 10, "genhub", "x1", "", types.NullUint64{},
			"https://CDN.GenHub.com/v1/render-0b5dd94c.png"),
	}}
	r := newTestResolver(repo, nil)

	// 规范化后精确命中（主机大小写与末尾斜杠不影响）
	m, err := r.Resolve(context.Background(), 10, Signals{
		SourceURL: "https://cdn.genhub.com/v1/render-0b5dd94c.png/",
	})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if m == nil || m.Strategy != StrategySourceURL {
		t.Fatalf("期望 URL 精确命中: %+v", m)
	}

	// 尾段兜底：不同主机但尾段一致
	m, err = r.Resolve(context.Background(), 10, Signals{
		ProviderID: "genhub",
		SourceURL:  "https://mirror.example.com/files/render-0b5dd94c.png",
	})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if m == nil || m.Strategy != StrategySourceURL {
		t.Fatalf("期望 URL 尾段兜底命中: %+v", m)
	}
}

func TestResolveURLFallbackDisabled(t *testing.T) {
	repo := &fakeAssetRepo{assets: []*model.Asset{
		imageAsset(1, 10, "genhub", "x1", "", types.NullUint64{},
			"https://cdn.genhub.com/v1/render-0b5dd94c.png"),
	}}
	r := newTestResolver(repo, map[string]string{
		constant.KeyDedupPhashThreshold.String():  "5",
		constant.KeyDedupEnableURLFallbk.String(): "false",
	})

	m, err := r.Resolve(context.Background(), 10, Signals{
		SourceURL: "https://mirror.example.com/files/render-0b5dd94c.png",
	})
	if err != nil || m != nil {
		t.Fatalf("兜底关闭时不应命中: m=%+v err=%v", m, err)
	}
}

func TestCollectCandidateIDs(t *testing.T) {
	ids := CollectCandidateIDs(
		"explicit-id",
		"https://cdn.genhub.com/v1/0b5dd94c-7d36-4e72-9f64-10a72bc1900d.png",
		"https://cdn.genhub.com/other/not-a-uuid.png",
	)
	if len(ids) != 2 {
		t.Fatalf("期望收集到2个候选ID: %v", ids)
	}
	if ids[0] != "explicit-id" {
		t.Errorf("显式ID应排在最前: %v", ids)
	}
	if ids[1] != "0b5dd94c-7d36-4e72-9f64-10a72bc1900d" {
		t.Errorf("应从URL恢复出UUID: %v", ids)
	}

	// 去重
	ids = CollectCandidateIDs("dup", "https://x.com/dup")
	if len(ids) != 1 {
		t.Errorf("重复ID应被去重: %v", ids)
	}
}

func TestAbsorbNonDestructive(t *testing.T) {
	r := newTestResolver(&fakeAssetRepo{}, nil)

	asset := imageAsset(1, 10, "genhub", "native-1", "oldhash", types.NullUint64{}, "")
	asset.ProviderMap = model.StringMap{"genhub": "native-1"}

	changed := r.Absorb(asset, Signals{
		ProviderID:   "otherhub",
		CandidateIDs: []string{"other-9"},
		ContentHash:  "newhash",
		SourceURL:    "https://cdn.example.com/a.png",
	})
	if !changed {
		t.Fatal("合并应当产生变更")
	}

	// 冲突的哈希保留原值
	if asset.ContentHash.String != "oldhash" {
		t.Errorf("内容哈希不应被覆盖: %s", asset.ContentHash.String)
	}
	// 空缺的来源 URL 被补上
	if !asset.SourceURL.Valid {
		t.Error("来源 URL 应被补充")
	}
	// 跨提供方身份进入映射表
	if asset.ProviderMap["otherhub"] != "other-9" {
		t.Errorf("provider 映射应记录新身份: %v", asset.ProviderMap)
	}
	// 原始身份不动
	if asset.ProviderID.String != "genhub" || asset.ProviderAssetID.String != "native-1" {
		t.Error("原始提供方身份不应被修改")
	}

	// 映射冲突保留原值
	r.Absorb(asset, Signals{ProviderID: "otherhub", CandidateIDs: []string{"different"}})
	if asset.ProviderMap["otherhub"] != "other-9" {
		t.Errorf("映射冲突应保留原值: %v", asset.ProviderMap)
	}
}
