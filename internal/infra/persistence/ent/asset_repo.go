package ent

import (
	"context"
	"database/sql"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/asset"
)

// entAssetRepository 是 AssetRepository 接口的 Ent 实现。
type entAssetRepository struct {
	client *ent.Client
}

// NewEntAssetRepository 是 entAssetRepository 的构造函数。
func NewEntAssetRepository(client *ent.Client) repository.AssetRepository {
	return &entAssetRepository{client: client}
}

// Create 在数据库中创建一条资产记录。
func (r *entAssetRepository) Create(ctx context.Context, domainAsset *model.Asset) error {
	createBuilder := r.client.Asset.
		Create().
		SetOwnerID(domainAsset.OwnerID).
		SetMediaKind(string(domainAsset.MediaKind)).
		SetPerceptualHashVersion(domainAsset.PerceptualHashVersion).
		SetSize(domainAsset.Size).
		SetIngestStatus(string(domainAsset.IngestStatus))

	if domainAsset.ProviderID.Valid {
		createBuilder.SetProviderID(domainAsset.ProviderID.String)
	}
	if domainAsset.ProviderAssetID.Valid {
		createBuilder.SetProviderAssetID(domainAsset.ProviderAssetID.String)
	}
	if domainAsset.ContentHash.Valid {
		createBuilder.SetContentHash(domainAsset.ContentHash.String)
	}
	if domainAsset.PerceptualHash.Valid {
		createBuilder.SetPerceptualHash(domainAsset.PerceptualHash.Uint64)
	}
	if domainAsset.SourceURL.Valid {
		createBuilder.SetSourceURL(domainAsset.SourceURL.String)
	}
	if domainAsset.StorageKey.Valid {
		createBuilder.SetStorageKey(domainAsset.StorageKey.String)
	}
	if domainAsset.ThumbnailKey.Valid {
		createBuilder.SetThumbnailKey(domainAsset.ThumbnailKey.String)
	}
	if domainAsset.PreviewKey.Valid {
		createBuilder.SetPreviewKey(domainAsset.PreviewKey.String)
	}
	if domainAsset.LocalPath.Valid {
		createBuilder.SetLocalPath(domainAsset.LocalPath.String)
	}
	if domainAsset.MimeType.Valid {
		createBuilder.SetMimeType(domainAsset.MimeType.String)
	}
	if domainAsset.ProviderMap != nil {
		createBuilder.SetProviderMap(domainAsset.ProviderMap)
	}
	if domainAsset.GenerationID.Valid {
		createBuilder.SetGenerationID(uint(domainAsset.GenerationID.Uint64))
	}
	if domainAsset.DownloadedAt.Valid {
		createBuilder.SetDownloadedAt(domainAsset.DownloadedAt.Time)
	}
	if domainAsset.MetadataExtractedAt.Valid {
		createBuilder.SetMetadataExtractedAt(domainAsset.MetadataExtractedAt.Time)
	}
	if domainAsset.ThumbnailGeneratedAt.Valid {
		createBuilder.SetThumbnailGeneratedAt(domainAsset.ThumbnailGeneratedAt.Time)
	}
	if domainAsset.PreviewGeneratedAt.Valid {
		createBuilder.SetPreviewGeneratedAt(domainAsset.PreviewGeneratedAt.Time)
	}
	if domainAsset.LastError.Valid {
		createBuilder.SetLastError(domainAsset.LastError.String)
	}

	created, err := createBuilder.Save(ctx)
	if err != nil {
		return err
	}
	domainAsset.ID = created.ID
	domainAsset.CreatedAt = created.CreatedAt
	domainAsset.UpdatedAt = created.UpdatedAt
	return nil
}

// Update 更新一条已存在的资产记录。
// 以领域模型为准做全量写回，空值字段会被清除。
func (r *entAssetRepository) Update(ctx context.Context, domainAsset *model.Asset) error {
	updateBuilder := r.client.Asset.
		UpdateOneID(domainAsset.ID).
		SetMediaKind(string(domainAsset.MediaKind)).
		SetPerceptualHashVersion(domainAsset.PerceptualHashVersion).
		SetSize(domainAsset.Size).
		SetIngestStatus(string(domainAsset.IngestStatus))

	if domainAsset.ProviderID.Valid {
		updateBuilder.SetProviderID(domainAsset.ProviderID.String)
	}
	if domainAsset.ProviderAssetID.Valid {
		updateBuilder.SetProviderAssetID(domainAsset.ProviderAssetID.String)
	}
	if domainAsset.ContentHash.Valid {
		updateBuilder.SetContentHash(domainAsset.ContentHash.String)
	}
	if domainAsset.PerceptualHash.Valid {
		updateBuilder.SetPerceptualHash(domainAsset.PerceptualHash.Uint64)
	}
	if domainAsset.SourceURL.Valid {
		updateBuilder.SetSourceURL(domainAsset.SourceURL.String)
	}
	if domainAsset.StorageKey.Valid {
		updateBuilder.SetStorageKey(domainAsset.StorageKey.String)
	}
	if domainAsset.ThumbnailKey.Valid {
		updateBuilder.SetThumbnailKey(domainAsset.ThumbnailKey.String)
	}
	if domainAsset.PreviewKey.Valid {
		updateBuilder.SetPreviewKey(domainAsset.PreviewKey.String)
	}
	if domainAsset.LocalPath.Valid {
		updateBuilder.SetLocalPath(domainAsset.LocalPath.String)
	} else {
		updateBuilder.ClearLocalPath()
	}
	if domainAsset.MimeType.Valid {
		updateBuilder.SetMimeType(domainAsset.MimeType.String)
	}
	if domainAsset.ProviderMap != nil {
		updateBuilder.SetProviderMap(domainAsset.ProviderMap)
	}
	if domainAsset.GenerationID.Valid {
		updateBuilder.SetGenerationID(uint(domainAsset.GenerationID.Uint64))
	}
	if domainAsset.DownloadedAt.Valid {
		updateBuilder.SetDownloadedAt(domainAsset.DownloadedAt.Time)
	}
	if domainAsset.MetadataExtractedAt.Valid {
		updateBuilder.SetMetadataExtractedAt(domainAsset.MetadataExtractedAt.Time)
	}
	if domainAsset.ThumbnailGeneratedAt.Valid {
		updateBuilder.SetThumbnailGeneratedAt(domainAsset.ThumbnailGeneratedAt.Time)
	}
	if domainAsset.PreviewGeneratedAt.Valid {
		updateBuilder.SetPreviewGeneratedAt(domainAsset.PreviewGeneratedAt.Time)
	}
	if domainAsset.LastError.Valid {
		updateBuilder.SetLastError(domainAsset.LastError.String)
	} else {
		updateBuilder.ClearLastError()
	}

	updated, err := updateBuilder.Save(ctx)
	if err != nil {
		return err
	}
	domainAsset.UpdatedAt = updated.UpdatedAt
	return nil
}

// FindByID 根据ID查找资产。
func (r *entAssetRepository) FindByID(ctx context.Context, id uint) (*model.Asset, error) {
	entAsset, err := r.client.Asset.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainAsset(entAsset), nil
}

// FindByProviderTuple 按 (owner, provider, 任一候选原生id) 精确查找。
func (r *entAssetRepository) FindByProviderTuple(ctx context.Context, ownerID uint, providerID string, candidateIDs []string) (*model.Asset, error) {
	if providerID == "" || len(candidateIDs) == 0 {
		return nil, constant.ErrNotFound
	}
	entAsset, err := r.client.Asset.Query().
		Where(
			asset.OwnerID(ownerID),
			asset.ProviderIDEQ(providerID),
			asset.ProviderAssetIDIn(candidateIDs...),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainAsset(entAsset), nil
}

// FindByContentHash 按 (owner, hash) 精确查找。
func (r *entAssetRepository) FindByContentHash(ctx context.Context, ownerID uint, hash string) (*model.Asset, error) {
	if hash == "" {
		return nil, constant.ErrNotFound
	}
	entAsset, err := r.client.Asset.Query().
		Where(
			asset.OwnerID(ownerID),
			asset.ContentHashEQ(hash),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainAsset(entAsset), nil
}

// FindFingerprinted 返回指定用户所有携带感知指纹的图片资产。
func (r *entAssetRepository) FindFingerprinted(ctx context.Context, ownerID uint) ([]*model.Asset, error) {
	entAssets, err := r.client.Asset.Query().
		Where(
			asset.OwnerID(ownerID),
			asset.MediaKindEQ(string(constant.MediaKindImage)),
			asset.PerceptualHashNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainAssets(entAssets), nil
}

// FindBySourceURL 按规范化后的来源 URL 精确查找。
func (r *entAssetRepository) FindBySourceURL(ctx context.Context, ownerID uint, url string) (*model.Asset, error) {
	if url == "" {
		return nil, constant.ErrNotFound
	}
	entAsset, err := r.client.Asset.Query().
		Where(
			asset.OwnerID(ownerID),
			asset.SourceURLEQ(url),
		).
		Order(ent.Asc(asset.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainAsset(entAsset), nil
}

// FindBySourceURLFragment 在同 owner 同 provider 范围内按 URL 尾段子串兜底匹配。
func (r *entAssetRepository) FindBySourceURLFragment(ctx context.Context, ownerID uint, providerID string, fragment string) (*model.Asset, error) {
	if fragment == "" {
		return nil, constant.ErrNotFound
	}
	query := r.client.Asset.Query().
		Where(
			asset.OwnerID(ownerID),
			asset.SourceURLContains(fragment),
		)
	if providerID != "" {
		query.Where(asset.ProviderIDEQ(providerID))
	}
	entAsset, err := query.
		Order(ent.Asc(asset.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainAsset(entAsset), nil
}

// FindPendingBatch 按创建时间从旧到新返回至多 limit 条 pending 记录。
func (r *entAssetRepository) FindPendingBatch(ctx context.Context, limit int) ([]*model.Asset, error) {
	if limit <= 0 {
		return []*model.Asset{}, nil
	}
	entAssets, err := r.client.Asset.Query().
		Where(asset.IngestStatusEQ(string(constant.IngestStatusPending))).
		Order(ent.Asc(asset.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainAssets(entAssets), nil
}

// FindByGenerationIDs 返回生成记录集合所产出的全部资产。
func (r *entAssetRepository) FindByGenerationIDs(ctx context.Context, generationIDs []uint) ([]*model.Asset, error) {
	if len(generationIDs) == 0 {
		return []*model.Asset{}, nil
	}
	entAssets, err := r.client.Asset.Query().
		Where(asset.GenerationIDIn(generationIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainAssets(entAssets), nil
}

// FindBatchByIDs 根据一组ID批量查找资产。
func (r *entAssetRepository) FindBatchByIDs(ctx context.Context, ids []uint) ([]*model.Asset, error) {
	if len(ids) == 0 {
		return []*model.Asset{}, nil
	}
	entAssets, err := r.client.Asset.Query().
		Where(asset.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainAssets(entAssets), nil
}

// Delete 删除资产记录。
func (r *entAssetRepository) Delete(ctx context.Context, id uint) error {
	return r.client.Asset.DeleteOneID(id).Exec(ctx)
}

// --- 数据转换辅助函数 ---

func toDomainAssets(entAssets []*ent.Asset) []*model.Asset {
	domainAssets := make([]*model.Asset, len(entAssets))
	for i, a := range entAssets {
		domainAssets[i] = toDomainAsset(a)
	}
	return domainAssets
}

// toDomainAsset 将 ent 生成的资产对象转换为领域模型对象。
func toDomainAsset(a *ent.Asset) *model.Asset {
	if a == nil {
		return nil
	}
	domain := &model.Asset{
		ID:                    a.ID,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
		OwnerID:               a.OwnerID,
		MediaKind:             constant.MediaKind(a.MediaKind),
		PerceptualHashVersion: a.PerceptualHashVersion,
		Size:                  a.Size,
		IngestStatus:          constant.IngestStatus(a.IngestStatus),
	}

	if a.ProviderID != nil {
		domain.ProviderID = sql.NullString{String: *a.ProviderID, Valid: true}
	}
	if a.ProviderAssetID != nil {
		domain.ProviderAssetID = sql.NullString{String: *a.ProviderAssetID, Valid: true}
	}
	if a.ContentHash != nil {
		domain.ContentHash = sql.NullString{String: *a.ContentHash, Valid: true}
	}
	if a.PerceptualHash != nil {
		domain.PerceptualHash = types.NullUint64{Uint64: *a.PerceptualHash, Valid: true}
	}
	if a.SourceURL != nil {
		domain.SourceURL = sql.NullString{String: *a.SourceURL, Valid: true}
	}
	if a.StorageKey != nil {
		domain.StorageKey = sql.NullString{String: *a.StorageKey, Valid: true}
	}
	if a.ThumbnailKey != nil {
		domain.ThumbnailKey = sql.NullString{String: *a.ThumbnailKey, Valid: true}
	}
	if a.PreviewKey != nil {
		domain.PreviewKey = sql.NullString{String: *a.PreviewKey, Valid: true}
	}
	if a.LocalPath != nil {
		domain.LocalPath = sql.NullString{String: *a.LocalPath, Valid: true}
	}
	if a.MimeType != nil {
		domain.MimeType = sql.NullString{String: *a.MimeType, Valid: true}
	}
	if a.ProviderMap != nil {
		domain.ProviderMap = a.ProviderMap
	} else {
		domain.ProviderMap = make(model.StringMap)
	}
	if a.GenerationID != nil {
		domain.GenerationID = types.NullUint64{Uint64: uint64(*a.GenerationID), Valid: true}
	}
	if a.DownloadedAt != nil {
		domain.DownloadedAt = sql.NullTime{Time: *a.DownloadedAt, Valid: true}
	}
	if a.MetadataExtractedAt != nil {
		domain.MetadataExtractedAt = sql.NullTime{Time: *a.MetadataExtractedAt, Valid: true}
	}
	if a.ThumbnailGeneratedAt != nil {
		domain.ThumbnailGeneratedAt = sql.NullTime{Time: *a.ThumbnailGeneratedAt, Valid: true}
	}
	if a.PreviewGeneratedAt != nil {
		domain.PreviewGeneratedAt = sql.NullTime{Time: *a.PreviewGeneratedAt, Valid: true}
	}
	if a.LastError != "" {
		domain.LastError = sql.NullString{String: a.LastError, Valid: true}
	}

	return domain
}
