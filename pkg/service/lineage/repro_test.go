package lineage

import (
	"context"
	"errors"
	"testing"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

func TestComputeReproHashKeyOrderInvariance(t *testing.T) {
	a := model.JSONMap{
		"prompt": "a cat",
		"seed":   float64(42),
		"nested": map[string]interface{}{"cfg": 7.5, "steps": float64(30)},
	}
	b := model.JSONMap{
		"nested": map[string]interface{}{"steps": float64(30), "cfg": 7.5},
		"seed":   float64(42),
		"prompt": "a cat",
	}

	ha, err := ComputeReproHash(a, []string{"x1", "x2"})
	if err != nil {
		t.Fatalf("计算哈希失败: %v", err)
	}
	hb, err := ComputeReproHash(b, []string{"x1", "x2"})
	if err != nil {
		t.Fatalf("计算哈希失败: %v", err)
	}
	if ha != hb {
		t.Errorf("键构造顺序不应影响哈希: %s vs %s", ha, hb)
	}
}

func TestComputeReproHashSensitivity(t *testing.T) {
	params := model.JSONMap{"prompt": "a cat", "seed": float64(42)}

	base, _ := ComputeReproHash(params, []string{"x1", "x2"})

	// 参数变化
	changed, _ := ComputeReproHash(model.JSONMap{"prompt": "a dog", "seed": float64(42)}, []string{"x1", "x2"})
	if base == changed {
		t.Error("参数不同应得到不同哈希")
	}

	// 输入顺序有业务含义，交换顺序应改变哈希
	reordered, _ := ComputeReproHash(params, []string{"x2", "x1"})
	if base == reordered {
		t.Error("输入顺序不同应得到不同哈希")
	}

	// nil 与空列表视为等价
	withNil, _ := ComputeReproHash(params, nil)
	withEmpty, _ := ComputeReproHash(params, []string{})
	if withNil != withEmpty {
		t.Error("nil 与空输入列表应得到相同哈希")
	}
}

func TestSiblings(t *testing.T) {
	assetRepo := newFakeAssetRepo(1, 2, 3, 4)
	genRepo := &fakeGenRepo{}
	svc := NewService(assetRepo, &fakeEdgeRepo{}, genRepo)
	ctx := context.Background()

	// 生成记录 7 和 8 持有相同的可复现哈希（同参数重跑的两个批次）
	genRepo.Create(ctx, &model.Generation{ID: 7, OwnerID: 10, ReproHash: "same"})
	genRepo.Create(ctx, &model.Generation{ID: 8, OwnerID: 10, ReproHash: "same"})
	genRepo.Create(ctx, &model.Generation{ID: 9, OwnerID: 10, ReproHash: "other"})

	assetRepo.assets[1].GenerationID = types.NullUint64{Uint64: 7, Valid: true}
	assetRepo.assets[2].GenerationID = types.NullUint64{Uint64: 7, Valid: true}
	assetRepo.assets[3].GenerationID = types.NullUint64{Uint64: 8, Valid: true}
	assetRepo.assets[4].GenerationID = types.NullUint64{Uint64: 9, Valid: true}

	siblings, err := svc.Siblings(ctx, 1, 10)
	if err != nil {
		t.Fatalf("查询兄弟产物失败: %v", err)
	}

	ids := make(map[uint]bool)
	for _, a := range siblings {
		ids[a.ID] = true
	}
	if ids[1] {
		t.Error("兄弟产物不应包含自身")
	}
	if !ids[2] || !ids[3] {
		t.Errorf("同批次与同参数批次的产物都应在内: %v", ids)
	}
	if ids[4] {
		t.Errorf("不同参数的产物不应在内: %v", ids)
	}
}

func TestSiblingsWithoutGeneration(t *testing.T) {
	assetRepo := newFakeAssetRepo(1)
	svc := NewService(assetRepo, &fakeEdgeRepo{}, &fakeGenRepo{})

	siblings, err := svc.Siblings(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("无生成记录不应报错: %v", err)
	}
	if len(siblings) != 0 {
		t.Errorf("无生成记录应返回空集: %d", len(siblings))
	}
}

func TestSiblingsMissingAsset(t *testing.T) {
	svc := NewService(newFakeAssetRepo(), &fakeEdgeRepo{}, &fakeGenRepo{})
	if _, err := svc.Siblings(context.Background(), 99, 10); err == nil {
		t.Fatal("资产不存在应报错")
	} else if !errors.Is(err, constant.ErrNotFound) {
		t.Fatalf("应包装 ErrNotFound: %v", err)
	}
}
