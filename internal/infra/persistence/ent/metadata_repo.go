package ent

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/metadata"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"entgo.io/ent/dialect/sql"
)

type entMetadataRepo struct {
	client *ent.Client
}

// NewEntMetadataRepository 是 entMetadataRepo 的构造函数
func NewEntMetadataRepository(client *ent.Client) repository.MetadataRepository {
	return &entMetadataRepo{client: client}
}

// Set 实现了接口，同一 (assetID, name) 组合做 upsert。
func (r *entMetadataRepo) Set(ctx context.Context, assetID uint, name, value string) error {
	return r.client.Metadata.
		Create().
		SetAssetID(assetID).
		SetName(name).
		SetValue(value).
		OnConflict(
			sql.ConflictColumns(metadata.FieldAssetID, metadata.FieldName),
		).
		UpdateValue().
		Exec(ctx)
}

// Get 实现了接口
func (r *entMetadataRepo) Get(ctx context.Context, assetID uint, name string) (string, error) {
	metaPO, err := r.client.Metadata.Query().
		Where(
			metadata.AssetID(assetID),
			metadata.Name(name),
		).Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return "", constant.ErrNotFound
		}
		return "", err
	}
	return metaPO.Value, nil
}

// GetAll 实现了接口
func (r *entMetadataRepo) GetAll(ctx context.Context, assetID uint) (map[string]string, error) {
	pos, err := r.client.Metadata.Query().
		Where(metadata.AssetID(assetID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(pos))
	for _, po := range pos {
		result[po.Name] = po.Value
	}
	return result, nil
}

// Delete 实现了接口
func (r *entMetadataRepo) Delete(ctx context.Context, assetID uint, name string) error {
	_, err := r.client.Metadata.Delete().
		Where(
			metadata.AssetID(assetID),
			metadata.Name(name),
		).
		Exec(ctx)
	return err
}

// DeleteAll 实现了接口
func (r *entMetadataRepo) DeleteAll(ctx context.Context, assetID uint) error {
	_, err := r.client.Metadata.Delete().
		Where(metadata.AssetID(assetID)).
		Exec(ctx)
	return err
}
