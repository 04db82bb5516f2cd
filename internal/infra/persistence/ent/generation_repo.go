package ent

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
)

// entGenerationRepository 是 GenerationRepository 接口的 Ent 实现。
type entGenerationRepository struct {
	client *ent.Client
}

// NewEntGenerationRepository 是 entGenerationRepository 的构造函数。
func NewEntGenerationRepository(client *ent.Client) repository.GenerationRepository {
	return &entGenerationRepository{client: client}
}

// Create 创建一条生成记录。
func (r *entGenerationRepository) Create(ctx context.Context, gen *model.Generation) error {
	createBuilder := r.client.Generation.
		Create().
		SetOwnerID(gen.OwnerID).
		SetOperationType(gen.OperationType).
		SetReproHash(gen.ReproHash)

	if gen.CanonicalParams != nil {
		createBuilder.SetCanonicalParams(gen.CanonicalParams)
	}
	if len(gen.Inputs) > 0 {
		createBuilder.SetInputs(gen.Inputs)
	}

	created, err := createBuilder.Save(ctx)
	if err != nil {
		return err
	}
	gen.ID = created.ID
	gen.CreatedAt = created.CreatedAt
	return nil
}

// FindByID 根据ID查找生成记录。
func (r *entGenerationRepository) FindByID(ctx context.Context, id uint) (*model.Generation, error) {
	entGen, err := r.client.Generation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainGeneration(entGen), nil
}

// FindByReproHash 返回指定用户下所有持有该可复现哈希的生成记录。
func (r *entGenerationRepository) FindByReproHash(ctx context.Context, ownerID uint, reproHash string) ([]*model.Generation, error) {
	entGens, err := r.client.Generation.Query().
		Where(
			generation.OwnerID(ownerID),
			generation.ReproHashEQ(reproHash),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	domainGens := make([]*model.Generation, len(entGens))
	for i, g := range entGens {
		domainGens[i] = toDomainGeneration(g)
	}
	return domainGens, nil
}

// toDomainGeneration 将 ent 生成的对象转换为领域模型对象。
func toDomainGeneration(g *ent.Generation) *model.Generation {
	if g == nil {
		return nil
	}
	domain := &model.Generation{
		ID:            g.ID,
		CreatedAt:     g.CreatedAt,
		OwnerID:       g.OwnerID,
		OperationType: g.OperationType,
		Inputs:        g.Inputs,
		ReproHash:     g.ReproHash,
	}
	if g.CanonicalParams != nil {
		domain.CanonicalParams = g.CanonicalParams
	} else {
		domain.CanonicalParams = make(model.JSONMap)
	}
	return domain
}
