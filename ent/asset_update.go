// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/asset"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/ent/metadata"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// AssetUpdate is the builder for updating Asset entities.
type AssetUpdate struct {
	config
	hooks    []Hook
	mutation *AssetMutation
}

// Where appends a list predicates to the AssetUpdate builder.
func (au *AssetUpdate) Where(ps ...predicate.Asset) *AssetUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AssetUpdate) SetUpdatedAt(t time.Time) *AssetUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetOwnerID sets the "owner_id" field.
func (au *AssetUpdate) SetOwnerID(u uint) *AssetUpdate {
	au.mutation.ResetOwnerID()
	au.mutation.SetOwnerID(u)
	return au
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (au *AssetUpdate) SetNillableOwnerID(u *uint) *AssetUpdate {
	if u != nil {
		au.SetOwnerID(*u)
	}
	return au
}

// AddOwnerID adds u to the "owner_id" field.
func (au *AssetUpdate) AddOwnerID(u int) *AssetUpdate {
	au.mutation.AddOwnerID(u)
	return au
}

// SetMediaKind sets the "media_kind" field.
func (au *AssetUpdate) SetMediaKind(s string) *AssetUpdate {
	au.mutation.SetMediaKind(s)
	return au
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (au *AssetUpdate) SetNillableMediaKind(s *string) *AssetUpdate {
	if s != nil {
		au.SetMediaKind(*s)
	}
	return au
}

// SetProviderID sets the "provider_id" field.
func (au *AssetUpdate) SetProviderID(s string) *AssetUpdate {
	au.mutation.SetProviderID(s)
	return au
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (au *AssetUpdate) SetNillableProviderID(s *string) *AssetUpdate {
	if s != nil {
		au.SetProviderID(*s)
	}
	return au
}

// ClearProviderID clears the value of the "provider_id" field.
func (au *AssetUpdate) ClearProviderID() *AssetUpdate {
	au.mutation.ClearProviderID()
	return au
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (au *AssetUpdate) SetProviderAssetID(s string) *AssetUpdate {
	au.mutation.SetProviderAssetID(s)
	return au
}

// SetNillableProviderAssetID sets the "provider_asset_id" field if the given value is not nil.
func (au *AssetUpdate) SetNillableProviderAssetID(s *string) *AssetUpdate {
	if s != nil {
		au.SetProviderAssetID(*s)
	}
	return au
}

// ClearProviderAssetID clears the value of the "provider_asset_id" field.
func (au *AssetUpdate) ClearProviderAssetID() *AssetUpdate {
	au.mutation.ClearProviderAssetID()
	return au
}

// SetContentHash sets the "content_hash" field.
func (au *AssetUpdate) SetContentHash(s string) *AssetUpdate {
	au.mutation.SetContentHash(s)
	return au
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (au *AssetUpdate) SetNillableContentHash(s *string) *AssetUpdate {
	if s != nil {
		au.SetContentHash(*s)
	}
	return au
}

// ClearContentHash clears the value of the "content_hash" field.
func (au *AssetUpdate) ClearContentHash() *AssetUpdate {
	au.mutation.ClearContentHash()
	return au
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (au *AssetUpdate) SetPerceptualHash(u uint64) *AssetUpdate {
	au.mutation.ResetPerceptualHash()
	au.mutation.SetPerceptualHash(u)
	return au
}

// SetNillablePerceptualHash sets the "perceptual_hash" field if the given value is not nil.
func (au *AssetUpdate) SetNillablePerceptualHash(u *uint64) *AssetUpdate {
	if u != nil {
		au.SetPerceptualHash(*u)
	}
	return au
}

// AddPerceptualHash adds u to the "perceptual_hash" field.
func (au *AssetUpdate) AddPerceptualHash(u int64) *AssetUpdate {
	au.mutation.AddPerceptualHash(u)
	return au
}

// ClearPerceptualHash clears the value of the "perceptual_hash" field.
func (au *AssetUpdate) ClearPerceptualHash() *AssetUpdate {
	au.mutation.ClearPerceptualHash()
	return au
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (au *AssetUpdate) SetPerceptualHashVersion(i int) *AssetUpdate {
	au.mutation.ResetPerceptualHashVersion()
	au.mutation.SetPerceptualHashVersion(i)
	return au
}

// SetNillablePerceptualHashVersion sets the "perceptual_hash_version" field if the given value is not nil.
func (au *AssetUpdate) SetNillablePerceptualHashVersion(i *int) *AssetUpdate {
	if i != nil {
		au.SetPerceptualHashVersion(*i)
	}
	return au
}

// AddPerceptualHashVersion adds i to the "perceptual_hash_version" field.
func (au *AssetUpdate) AddPerceptualHashVersion(i int) *AssetUpdate {
	au.mutation.AddPerceptualHashVersion(i)
	return au
}

// SetSourceURL sets the "source_url" field.
func (au *AssetUpdate) SetSourceURL(s string) *AssetUpdate {
	au.mutation.SetSourceURL(s)
	return au
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (au *AssetUpdate) SetNillableSourceURL(s *string) *AssetUpdate {
	if s != nil {
		au.SetSourceURL(*s)
	}
	return au
}

// ClearSourceURL clears the value of the "source_url" field.
func (au *AssetUpdate) ClearSourceURL() *AssetUpdate {
	au.mutation.ClearSourceURL()
	return au
}

// SetStorageKey sets the "storage_key" field.
func (au *AssetUpdate) SetStorageKey(s string) *AssetUpdate {
	au.mutation.SetStorageKey(s)
	return au
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (au *AssetUpdate) SetNillableStorageKey(s *string) *AssetUpdate {
	if s != nil {
		au.SetStorageKey(*s)
	}
	return au
}

// ClearStorageKey clears the value of the "storage_key" field.
func (au *AssetUpdate) ClearStorageKey() *AssetUpdate {
	au.mutation.ClearStorageKey()
	return au
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (au *AssetUpdate) SetThumbnailKey(s string) *AssetUpdate {
	au.mutation.SetThumbnailKey(s)
	return au
}

// SetNillableThumbnailKey sets the "thumbnail_key" field if the given value is not nil.
func (au *AssetUpdate) SetNillableThumbnailKey(s *string) *AssetUpdate {
	if s != nil {
		au.SetThumbnailKey(*s)
	}
	return au
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (au *AssetUpdate) ClearThumbnailKey() *AssetUpdate {
	au.mutation.ClearThumbnailKey()
	return au
}

// SetPreviewKey sets the "preview_key" field.
func (au *AssetUpdate) SetPreviewKey(s string) *AssetUpdate {
	au.mutation.SetPreviewKey(s)
	return au
}

// SetNillablePreviewKey sets the "preview_key" field if the given value is not nil.
func (au *AssetUpdate) SetNillablePreviewKey(s *string) *AssetUpdate {
	if s != nil {
		au.SetPreviewKey(*s)
	}
	return au
}

// ClearPreviewKey clears the value of the "preview_key" field.
func (au *AssetUpdate) ClearPreviewKey() *AssetUpdate {
	au.mutation.ClearPreviewKey()
	return au
}

// SetLocalPath sets the "local_path" field.
func (au *AssetUpdate) SetLocalPath(s string) *AssetUpdate {
	au.mutation.SetLocalPath(s)
	return au
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (au *AssetUpdate) SetNillableLocalPath(s *string) *AssetUpdate {
	if s != nil {
		au.SetLocalPath(*s)
	}
	return au
}

// ClearLocalPath clears the value of the "local_path" field.
func (au *AssetUpdate) ClearLocalPath() *AssetUpdate {
	au.mutation.ClearLocalPath()
	return au
}

// SetSize sets the "size" field.
func (au *AssetUpdate) SetSize(i int64) *AssetUpdate {
	au.mutation.ResetSize()
	au.mutation.SetSize(i)
	return au
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (au *AssetUpdate) SetNillableSize(i *int64) *AssetUpdate {
	if i != nil {
		au.SetSize(*i)
	}
	return au
}

// AddSize adds i to the "size" field.
func (au *AssetUpdate) AddSize(i int64) *AssetUpdate {
	au.mutation.AddSize(i)
	return au
}

// SetMimeType sets the "mime_type" field.
func (au *AssetUpdate) SetMimeType(s string) *AssetUpdate {
	au.mutation.SetMimeType(s)
	return au
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (au *AssetUpdate) SetNillableMimeType(s *string) *AssetUpdate {
	if s != nil {
		au.SetMimeType(*s)
	}
	return au
}

// ClearMimeType clears the value of the "mime_type" field.
func (au *AssetUpdate) ClearMimeType() *AssetUpdate {
	au.mutation.ClearMimeType()
	return au
}

// SetProviderMap sets the "provider_map" field.
func (au *AssetUpdate) SetProviderMap(mm model.StringMap) *AssetUpdate {
	au.mutation.SetProviderMap(mm)
	return au
}

// ClearProviderMap clears the value of the "provider_map" field.
func (au *AssetUpdate) ClearProviderMap() *AssetUpdate {
	au.mutation.ClearProviderMap()
	return au
}

// SetGenerationID sets the "generation_id" field.
func (au *AssetUpdate) SetGenerationID(u uint) *AssetUpdate {
	au.mutation.SetGenerationID(u)
	return au
}

// SetNillableGenerationID sets the "generation_id" field if the given value is not nil.
func (au *AssetUpdate) SetNillableGenerationID(u *uint) *AssetUpdate {
	if u != nil {
		au.SetGenerationID(*u)
	}
	return au
}

// ClearGenerationID clears the value of the "generation_id" field.
func (au *AssetUpdate) ClearGenerationID() *AssetUpdate {
	au.mutation.ClearGenerationID()
	return au
}

// SetIngestStatus sets the "ingest_status" field.
func (au *AssetUpdate) SetIngestStatus(s string) *AssetUpdate {
	au.mutation.SetIngestStatus(s)
	return au
}

// SetNillableIngestStatus sets the "ingest_status" field if the given value is not nil.
func (au *AssetUpdate) SetNillableIngestStatus(s *string) *AssetUpdate {
	if s != nil {
		au.SetIngestStatus(*s)
	}
	return au
}

// SetDownloadedAt sets the "downloaded_at" field.
func (au *AssetUpdate) SetDownloadedAt(t time.Time) *AssetUpdate {
	au.mutation.SetDownloadedAt(t)
	return au
}

// SetNillableDownloadedAt sets the "downloaded_at" field if the given value is not nil.
func (au *AssetUpdate) SetNillableDownloadedAt(t *time.Time) *AssetUpdate {
	if t != nil {
		au.SetDownloadedAt(*t)
	}
	return au
}

// ClearDownloadedAt clears the value of the "downloaded_at" field.
func (au *AssetUpdate) ClearDownloadedAt() *AssetUpdate {
	au.mutation.ClearDownloadedAt()
	return au
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (au *AssetUpdate) SetMetadataExtractedAt(t time.Time) *AssetUpdate {
	au.mutation.SetMetadataExtractedAt(t)
	return au
}

// SetNillableMetadataExtractedAt sets the "metadata_extracted_at" field if the given value is not nil.
func (au *AssetUpdate) SetNillableMetadataExtractedAt(t *time.Time) *AssetUpdate {
	if t != nil {
		au.SetMetadataExtractedAt(*t)
	}
	return au
}

// ClearMetadataExtractedAt clears the value of the "metadata_extracted_at" field.
func (au *AssetUpdate) ClearMetadataExtractedAt() *AssetUpdate {
	au.mutation.ClearMetadataExtractedAt()
	return au
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (au *AssetUpdate) SetThumbnailGeneratedAt(t time.Time) *AssetUpdate {
	au.mutation.SetThumbnailGeneratedAt(t)
	return au
}

// SetNillableThumbnailGeneratedAt sets the "thumbnail_generated_at" field if the given value is not nil.
func (au *AssetUpdate) SetNillableThumbnailGeneratedAt(t *time.Time) *AssetUpdate {
	if t != nil {
		au.SetThumbnailGeneratedAt(*t)
	}
	return au
}

// ClearThumbnailGeneratedAt clears the value of the "thumbnail_generated_at" field.
func (au *AssetUpdate) ClearThumbnailGeneratedAt() *AssetUpdate {
	au.mutation.ClearThumbnailGeneratedAt()
	return au
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (au *AssetUpdate) SetPreviewGeneratedAt(t time.Time) *AssetUpdate {
	au.mutation.SetPreviewGeneratedAt(t)
	return au
}

// SetNillablePreviewGeneratedAt sets the "preview_generated_at" field if the given value is not nil.
func (au *AssetUpdate) SetNillablePreviewGeneratedAt(t *time.Time) *AssetUpdate {
	if t != nil {
		au.SetPreviewGeneratedAt(*t)
	}
	return au
}

// ClearPreviewGeneratedAt clears the value of the "preview_generated_at" field.
func (au *AssetUpdate) ClearPreviewGeneratedAt() *AssetUpdate {
	au.mutation.ClearPreviewGeneratedAt()
	return au
}

// SetLastError sets the "last_error" field.
func (au *AssetUpdate) SetLastError(s string) *AssetUpdate {
	au.mutation.SetLastError(s)
	return au
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (au *AssetUpdate) SetNillableLastError(s *string) *AssetUpdate {
	if s != nil {
		au.SetLastError(*s)
	}
	return au
}

// ClearLastError clears the value of the "last_error" field.
func (au *AssetUpdate) ClearLastError() *AssetUpdate {
	au.mutation.ClearLastError()
	return au
}

// AddMetadatumIDs adds the "metadata" edge to the Metadata entity by IDs.
func (au *AssetUpdate) AddMetadatumIDs(ids ...uint) *AssetUpdate {
	au.mutation.AddMetadatumIDs(ids...)
	return au
}

// AddMetadata adds the "metadata" edges to the Metadata entity.
func (au *AssetUpdate) AddMetadata(m ...*Metadata) *AssetUpdate {
	ids := make([]uint, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return au.AddMetadatumIDs(ids...)
}

// SetGeneration sets the "generation" edge to the Generation entity.
func (au *AssetUpdate) SetGeneration(g *Generation) *AssetUpdate {
	return au.SetGenerationID(g.ID)
}

// Mutation returns the AssetMutation object of the builder.
func (au *AssetUpdate) Mutation() *AssetMutation {
	return au.mutation
}

// ClearMetadata clears all "metadata" edges to the Metadata entity.
func (au *AssetUpdate) ClearMetadata() *AssetUpdate {
	au.mutation.ClearMetadata()
	return au
}

// RemoveMetadatumIDs removes the "metadata" edge to Metadata entities by IDs.
func (au *AssetUpdate) RemoveMetadatumIDs(ids ...uint) *AssetUpdate {
	au.mutation.RemoveMetadatumIDs(ids...)
	return au
}

// RemoveMetadata removes "metadata" edges to Metadata entities.
func (au *AssetUpdate) RemoveMetadata(m ...*Metadata) *AssetUpdate {
	ids := make([]uint, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return au.RemoveMetadatumIDs(ids...)
}

// ClearGeneration clears the "generation" edge to the Generation entity.
func (au *AssetUpdate) ClearGeneration() *AssetUpdate {
	au.mutation.ClearGeneration()
	return au
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AssetUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AssetUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AssetUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AssetUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AssetUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := asset.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AssetUpdate) check() error {
	if v, ok := au.mutation.MediaKind(); ok {
		if err := asset.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`ent: validator failed for field "Asset.media_kind": %w`, err)}
		}
	}
	if v, ok := au.mutation.ProviderID(); ok {
		if err := asset.ProviderIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_id", err: fmt.Errorf(`ent: validator failed for field "Asset.provider_id": %w`, err)}
		}
	}
	if v, ok := au.mutation.ProviderAssetID(); ok {
		if err := asset.ProviderAssetIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_asset_id", err: fmt.Errorf(`ent: validator failed for field "Asset.provider_asset_id": %w`, err)}
		}
	}
	if v, ok := au.mutation.ContentHash(); ok {
		if err := asset.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Asset.content_hash": %w`, err)}
		}
	}
	if v, ok := au.mutation.MimeType(); ok {
		if err := asset.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Asset.mime_type": %w`, err)}
		}
	}
	if v, ok := au.mutation.IngestStatus(); ok {
		if err := asset.IngestStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingest_status", err: fmt.Errorf(`ent: validator failed for field "Asset.ingest_status": %w`, err)}
		}
	}
	if v, ok := au.mutation.LastError(); ok {
		if err := asset.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "Asset.last_error": %w`, err)}
		}
	}
	return nil
}

func (au *AssetUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(asset.Table, asset.Columns, sqlgraph.NewFieldSpec(asset.FieldID, field.TypeUint))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(asset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := au.mutation.OwnerID(); ok {
		_spec.SetField(asset.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := au.mutation.AddedOwnerID(); ok {
		_spec.AddField(asset.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := au.mutation.MediaKind(); ok {
		_spec.SetField(asset.FieldMediaKind, field.TypeString, value)
	}
	if value, ok := au.mutation.ProviderID(); ok {
		_spec.SetField(asset.FieldProviderID, field.TypeString, value)
	}
	if au.mutation.ProviderIDCleared() {
		_spec.ClearField(asset.FieldProviderID, field.TypeString)
	}
	if value, ok := au.mutation.ProviderAssetID(); ok {
		_spec.SetField(asset.FieldProviderAssetID, field.TypeString, value)
	}
	if au.mutation.ProviderAssetIDCleared() {
		_spec.ClearField(asset.FieldProviderAssetID, field.TypeString)
	}
	if value, ok := au.mutation.ContentHash(); ok {
		_spec.SetField(asset.FieldContentHash, field.TypeString, value)
	}
	if au.mutation.ContentHashCleared() {
		_spec.ClearField(asset.FieldContentHash, field.TypeString)
	}
	if value, ok := au.mutation.PerceptualHash(); ok {
		_spec.SetField(asset.FieldPerceptualHash, field.TypeUint64, value)
	}
	if value, ok := au.mutation.AddedPerceptualHash(); ok {
		_spec.AddField(asset.FieldPerceptualHash, field.TypeUint64, value)
	}
	if au.mutation.PerceptualHashCleared() {
		_spec.ClearField(asset.FieldPerceptualHash, field.TypeUint64)
	}
	if value, ok := au.mutation.PerceptualHashVersion(); ok {
		_spec.SetField(asset.FieldPerceptualHashVersion, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedPerceptualHashVersion(); ok {
		_spec.AddField(asset.FieldPerceptualHashVersion, field.TypeInt, value)
	}
	if value, ok := au.mutation.SourceURL(); ok {
		_spec.SetField(asset.FieldSourceURL, field.TypeString, value)
	}
	if au.mutation.SourceURLCleared() {
		_spec.ClearField(asset.FieldSourceURL, field.TypeString)
	}
	if value, ok := au.mutation.StorageKey(); ok {
		_spec.SetField(asset.FieldStorageKey, field.TypeString, value)
	}
	if au.mutation.StorageKeyCleared() {
		_spec.ClearField(asset.FieldStorageKey, field.TypeString)
	}
	if value, ok := au.mutation.ThumbnailKey(); ok {
		_spec.SetField(asset.FieldThumbnailKey, field.TypeString, value)
	}
	if au.mutation.ThumbnailKeyCleared() {
		_spec.ClearField(asset.FieldThumbnailKey, field.TypeString)
	}
	if value, ok := au.mutation.PreviewKey(); ok {
		_spec.SetField(asset.FieldPreviewKey, field.TypeString, value)
	}
	if au.mutation.PreviewKeyCleared() {
		_spec.ClearField(asset.FieldPreviewKey, field.TypeString)
	}
	if value, ok := au.mutation.LocalPath(); ok {
		_spec.SetField(asset.FieldLocalPath, field.TypeString, value)
	}
	if au.mutation.LocalPathCleared() {
		_spec.ClearField(asset.FieldLocalPath, field.TypeString)
	}
	if value, ok := au.mutation.Size(); ok {
		_spec.SetField(asset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := au.mutation.AddedSize(); ok {
		_spec.AddField(asset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := au.mutation.MimeType(); ok {
		_spec.SetField(asset.FieldMimeType, field.TypeString, value)
	}
	if au.mutation.MimeTypeCleared() {
		_spec.ClearField(asset.FieldMimeType, field.TypeString)
	}
	if value, ok := au.mutation.ProviderMap(); ok {
		_spec.SetField(asset.FieldProviderMap, field.TypeOther, value)
	}
	if au.mutation.ProviderMapCleared() {
		_spec.ClearField(asset.FieldProviderMap, field.TypeOther)
	}
	if value, ok := au.mutation.IngestStatus(); ok {
		_spec.SetField(asset.FieldIngestStatus, field.TypeString, value)
	}
	if value, ok := au.mutation.DownloadedAt(); ok {
		_spec.SetField(asset.FieldDownloadedAt, field.TypeTime, value)
	}
	if au.mutation.DownloadedAtCleared() {
		_spec.ClearField(asset.FieldDownloadedAt, field.TypeTime)
	}
	if value, ok := au.mutation.MetadataExtractedAt(); ok {
		_spec.SetField(asset.FieldMetadataExtractedAt, field.TypeTime, value)
	}
	if au.mutation.MetadataExtractedAtCleared() {
		_spec.ClearField(asset.FieldMetadataExtractedAt, field.TypeTime)
	}
	if value, ok := au.mutation.ThumbnailGeneratedAt(); ok {
		_spec.SetField(asset.FieldThumbnailGeneratedAt, field.TypeTime, value)
	}
	if au.mutation.ThumbnailGeneratedAtCleared() {
		_spec.ClearField(asset.FieldThumbnailGeneratedAt, field.TypeTime)
	}
	if value, ok := au.mutation.PreviewGeneratedAt(); ok {
		_spec.SetField(asset.FieldPreviewGeneratedAt, field.TypeTime, value)
	}
	if au.mutation.PreviewGeneratedAtCleared() {
		_spec.ClearField(asset.FieldPreviewGeneratedAt, field.TypeTime)
	}
	if value, ok := au.mutation.LastError(); ok {
		_spec.SetField(asset.FieldLastError, field.TypeString, value)
	}
	if au.mutation.LastErrorCleared() {
		_spec.ClearField(asset.FieldLastError, field.TypeString)
	}
	if au.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   asset.MetadataTable,
			Columns: []string{asset.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metadata.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedMetadataIDs(); len(nodes) > 0 && !au.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   asset.MetadataTable,
			Columns: []string{asset.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metadata.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.MetadataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   asset.MetadataTable,
			Columns: []string{asset.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metadata.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.GenerationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   asset.GenerationTable,
			Columns: []string{asset.GenerationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.GenerationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   asset.GenerationTable,
			Columns: []string{asset.GenerationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{asset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AssetUpdateOne is the builder for updating a single Asset entity.
type AssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AssetUpdateOne) SetUpdatedAt(t time.Time) *AssetUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetOwnerID sets the "owner_id" field.
func (auo *AssetUpdateOne) SetOwnerID(u uint) *AssetUpdateOne {
	auo.mutation.ResetOwnerID()
	auo.mutation.SetOwnerID(u)
	return auo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableOwnerID(u *uint) *AssetUpdateOne {
	if u != nil {
		auo.SetOwnerID(*u)
	}
	return auo
}

// AddOwnerID adds u to the "owner_id" field.
func (auo *AssetUpdateOne) AddOwnerID(u int) *AssetUpdateOne {
	auo.mutation.AddOwnerID(u)
	return auo
}

// SetMediaKind sets the "media_kind" field.
func (auo *AssetUpdateOne) SetMediaKind(s string) *AssetUpdateOne {
	auo.mutation.SetMediaKind(s)
	return auo
}

// SetNillableMediaKind sets the "media_kind" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableMediaKind(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetMediaKind(*s)
	}
	return auo
}

// SetProviderID sets the "provider_id" field.
func (auo *AssetUpdateOne) SetProviderID(s string) *AssetUpdateOne {
	auo.mutation.SetProviderID(s)
	return auo
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableProviderID(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetProviderID(*s)
	}
	return auo
}

// ClearProviderID clears the value of the "provider_id" field.
func (auo *AssetUpdateOne) ClearProviderID() *AssetUpdateOne {
	auo.mutation.ClearProviderID()
	return auo
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (auo *AssetUpdateOne) SetProviderAssetID(s string) *AssetUpdateOne {
	auo.mutation.SetProviderAssetID(s)
	return auo
}

// SetNillableProviderAssetID sets the "provider_asset_id" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableProviderAssetID(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetProviderAssetID(*s)
	}
	return auo
}

// ClearProviderAssetID clears the value of the "provider_asset_id" field.
func (auo *AssetUpdateOne) ClearProviderAssetID() *AssetUpdateOne {
	auo.mutation.ClearProviderAssetID()
	return auo
}

// SetContentHash sets the "content_hash" field.
func (auo *AssetUpdateOne) SetContentHash(s string) *AssetUpdateOne {
	auo.mutation.SetContentHash(s)
	return auo
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableContentHash(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetContentHash(*s)
	}
	return auo
}

// ClearContentHash clears the value of the "content_hash" field.
func (auo *AssetUpdateOne) ClearContentHash() *AssetUpdateOne {
	auo.mutation.ClearContentHash()
	return auo
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (auo *AssetUpdateOne) SetPerceptualHash(u uint64) *AssetUpdateOne {
	auo.mutation.ResetPerceptualHash()
	auo.mutation.SetPerceptualHash(u)
	return auo
}

// SetNillablePerceptualHash sets the "perceptual_hash" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillablePerceptualHash(u *uint64) *AssetUpdateOne {
	if u != nil {
		auo.SetPerceptualHash(*u)
	}
	return auo
}

// AddPerceptualHash adds u to the "perceptual_hash" field.
func (auo *AssetUpdateOne) AddPerceptualHash(u int64) *AssetUpdateOne {
	auo.mutation.AddPerceptualHash(u)
	return auo
}

// ClearPerceptualHash clears the value of the "perceptual_hash" field.
func (auo *AssetUpdateOne) ClearPerceptualHash() *AssetUpdateOne {
	auo.mutation.ClearPerceptualHash()
	return auo
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (auo *AssetUpdateOne) SetPerceptualHashVersion(i int) *AssetUpdateOne {
	auo.mutation.ResetPerceptualHashVersion()
	auo.mutation.SetPerceptualHashVersion(i)
	return auo
}

// SetNillablePerceptualHashVersion sets the "perceptual_hash_version" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillablePerceptualHashVersion(i *int) *AssetUpdateOne {
	if i != nil {
		auo.SetPerceptualHashVersion(*i)
	}
	return auo
}

// AddPerceptualHashVersion adds i to the "perceptual_hash_version" field.
func (auo *AssetUpdateOne) AddPerceptualHashVersion(i int) *AssetUpdateOne {
	auo.mutation.AddPerceptualHashVersion(i)
	return auo
}

// SetSourceURL sets the "source_url" field.
func (auo *AssetUpdateOne) SetSourceURL(s string) *AssetUpdateOne {
	auo.mutation.SetSourceURL(s)
	return auo
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableSourceURL(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetSourceURL(*s)
	}
	return auo
}

// ClearSourceURL clears the value of the "source_url" field.
func (auo *AssetUpdateOne) ClearSourceURL() *AssetUpdateOne {
	auo.mutation.ClearSourceURL()
	return auo
}

// SetStorageKey sets the "storage_key" field.
func (auo *AssetUpdateOne) SetStorageKey(s string) *AssetUpdateOne {
	auo.mutation.SetStorageKey(s)
	return auo
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableStorageKey(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetStorageKey(*s)
	}
	return auo
}

// ClearStorageKey clears the value of the "storage_key" field.
func (auo *AssetUpdateOne) ClearStorageKey() *AssetUpdateOne {
	auo.mutation.ClearStorageKey()
	return auo
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (auo *AssetUpdateOne) SetThumbnailKey(s string) *AssetUpdateOne {
	auo.mutation.SetThumbnailKey(s)
	return auo
}

// SetNillableThumbnailKey sets the "thumbnail_key" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableThumbnailKey(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetThumbnailKey(*s)
	}
	return auo
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (auo *AssetUpdateOne) ClearThumbnailKey() *AssetUpdateOne {
	auo.mutation.ClearThumbnailKey()
	return auo
}

// SetPreviewKey sets the "preview_key" field.
func (auo *AssetUpdateOne) SetPreviewKey(s string) *AssetUpdateOne {
	auo.mutation.SetPreviewKey(s)
	return auo
}

// SetNillablePreviewKey sets the "preview_key" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillablePreviewKey(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetPreviewKey(*s)
	}
	return auo
}

// ClearPreviewKey clears the value of the "preview_key" field.
func (auo *AssetUpdateOne) ClearPreviewKey() *AssetUpdateOne {
	auo.mutation.ClearPreviewKey()
	return auo
}

// SetLocalPath sets the "local_path" field.
func (auo *AssetUpdateOne) SetLocalPath(s string) *AssetUpdateOne {
	auo.mutation.SetLocalPath(s)
	return auo
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableLocalPath(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetLocalPath(*s)
	}
	return auo
}

// ClearLocalPath clears the value of the "local_path" field.
func (auo *AssetUpdateOne) ClearLocalPath() *AssetUpdateOne {
	auo.mutation.ClearLocalPath()
	return auo
}

// SetSize sets the "size" field.
func (auo *AssetUpdateOne) SetSize(i int64) *AssetUpdateOne {
	auo.mutation.ResetSize()
	auo.mutation.SetSize(i)
	return auo
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableSize(i *int64) *AssetUpdateOne {
	if i != nil {
		auo.SetSize(*i)
	}
	return auo
}

// AddSize adds i to the "size" field.
func (auo *AssetUpdateOne) AddSize(i int64) *AssetUpdateOne {
	auo.mutation.AddSize(i)
	return auo
}

// SetMimeType sets the "mime_type" field.
func (auo *AssetUpdateOne) SetMimeType(s string) *AssetUpdateOne {
	auo.mutation.SetMimeType(s)
	return auo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableMimeType(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetMimeType(*s)
	}
	return auo
}

// ClearMimeType clears the value of the "mime_type" field.
func (auo *AssetUpdateOne) ClearMimeType() *AssetUpdateOne {
	auo.mutation.ClearMimeType()
	return auo
}

// SetProviderMap sets the "provider_map" field.
func (auo *AssetUpdateOne) SetProviderMap(mm model.StringMap) *AssetUpdateOne {
	auo.mutation.SetProviderMap(mm)
	return auo
}

// ClearProviderMap clears the value of the "provider_map" field.
func (auo *AssetUpdateOne) ClearProviderMap() *AssetUpdateOne {
	auo.mutation.ClearProviderMap()
	return auo
}

// SetGenerationID sets the "generation_id" field.
func (auo *AssetUpdateOne) SetGenerationID(u uint) *AssetUpdateOne {
	auo.mutation.SetGenerationID(u)
	return auo
}

// SetNillableGenerationID sets the "generation_id" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableGenerationID(u *uint) *AssetUpdateOne {
	if u != nil {
		auo.SetGenerationID(*u)
	}
	return auo
}

// ClearGenerationID clears the value of the "generation_id" field.
func (auo *AssetUpdateOne) ClearGenerationID() *AssetUpdateOne {
	auo.mutation.ClearGenerationID()
	return auo
}

// SetIngestStatus sets the "ingest_status" field.
func (auo *AssetUpdateOne) SetIngestStatus(s string) *AssetUpdateOne {
	auo.mutation.SetIngestStatus(s)
	return auo
}

// SetNillableIngestStatus sets the "ingest_status" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableIngestStatus(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetIngestStatus(*s)
	}
	return auo
}

// SetDownloadedAt sets the "downloaded_at" field.
func (auo *AssetUpdateOne) SetDownloadedAt(t time.Time) *AssetUpdateOne {
	auo.mutation.SetDownloadedAt(t)
	return auo
}

// SetNillableDownloadedAt sets the "downloaded_at" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableDownloadedAt(t *time.Time) *AssetUpdateOne {
	if t != nil {
		auo.SetDownloadedAt(*t)
	}
	return auo
}

// ClearDownloadedAt clears the value of the "downloaded_at" field.
func (auo *AssetUpdateOne) ClearDownloadedAt() *AssetUpdateOne {
	auo.mutation.ClearDownloadedAt()
	return auo
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (auo *AssetUpdateOne) SetMetadataExtractedAt(t time.Time) *AssetUpdateOne {
	auo.mutation.SetMetadataExtractedAt(t)
	return auo
}

// SetNillableMetadataExtractedAt sets the "metadata_extracted_at" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableMetadataExtractedAt(t *time.Time) *AssetUpdateOne {
	if t != nil {
		auo.SetMetadataExtractedAt(*t)
	}
	return auo
}

// ClearMetadataExtractedAt clears the value of the "metadata_extracted_at" field.
func (auo *AssetUpdateOne) ClearMetadataExtractedAt() *AssetUpdateOne {
	auo.mutation.ClearMetadataExtractedAt()
	return auo
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (auo *AssetUpdateOne) SetThumbnailGeneratedAt(t time.Time) *AssetUpdateOne {
	auo.mutation.SetThumbnailGeneratedAt(t)
	return auo
}

// SetNillableThumbnailGeneratedAt sets the "thumbnail_generated_at" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableThumbnailGeneratedAt(t *time.Time) *AssetUpdateOne {
	if t != nil {
		auo.SetThumbnailGeneratedAt(*t)
	}
	return auo
}

// ClearThumbnailGeneratedAt clears the value of the "thumbnail_generated_at" field.
func (auo *AssetUpdateOne) ClearThumbnailGeneratedAt() *AssetUpdateOne {
	auo.mutation.ClearThumbnailGeneratedAt()
	return auo
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (auo *AssetUpdateOne) SetPreviewGeneratedAt(t time.Time) *AssetUpdateOne {
	auo.mutation.SetPreviewGeneratedAt(t)
	return auo
}

// SetNillablePreviewGeneratedAt sets the "preview_generated_at" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillablePreviewGeneratedAt(t *time.Time) *AssetUpdateOne {
	if t != nil {
		auo.SetPreviewGeneratedAt(*t)
	}
	return auo
}

// ClearPreviewGeneratedAt clears the value of the "preview_generated_at" field.
func (auo *AssetUpdateOne) ClearPreviewGeneratedAt() *AssetUpdateOne {
	auo.mutation.ClearPreviewGeneratedAt()
	return auo
}

// SetLastError sets the "last_error" field.
func (auo *AssetUpdateOne) SetLastError(s string) *AssetUpdateOne {
	auo.mutation.SetLastError(s)
	return auo
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (auo *AssetUpdateOne) SetNillableLastError(s *string) *AssetUpdateOne {
	if s != nil {
		auo.SetLastError(*s)
	}
	return auo
}

// ClearLastError clears the value of the "last_error" field.
func (auo *AssetUpdateOne) ClearLastError() *AssetUpdateOne {
	auo.mutation.ClearLastError()
	return auo
}

// AddMetadatumIDs adds the "metadata" edge to the Metadata entity by IDs.
func (auo *AssetUpdateOne) AddMetadatumIDs(ids ...uint) *AssetUpdateOne {
	auo.mutation.AddMetadatumIDs(ids...)
	return auo
}

// AddMetadata adds the "metadata" edges to the Metadata entity.
func (auo *AssetUpdateOne) AddMetadata(m ...*Metadata) *AssetUpdateOne {
	ids := make([]uint, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return auo.AddMetadatumIDs(ids...)
}

// SetGeneration sets the "generation" edge to the Generation entity.
func (auo *AssetUpdateOne) SetGeneration(g *Generation) *AssetUpdateOne {
	return auo.SetGenerationID(g.ID)
}

// Mutation returns the AssetMutation object of the builder.
func (auo *AssetUpdateOne) Mutation() *AssetMutation {
	return auo.mutation
}

// ClearMetadata clears all "metadata" edges to the Metadata entity.
func (auo *AssetUpdateOne) ClearMetadata() *AssetUpdateOne {
	auo.mutation.ClearMetadata()
	return auo
}

// RemoveMetadatumIDs removes the "metadata" edge to Metadata entities by IDs.
func (auo *AssetUpdateOne) RemoveMetadatumIDs(ids ...uint) *AssetUpdateOne {
	auo.mutation.RemoveMetadatumIDs(ids...)
	return auo
}

// RemoveMetadata removes "metadata" edges to Metadata entities.
func (auo *AssetUpdateOne) RemoveMetadata(m ...*Metadata) *AssetUpdateOne {
	ids := make([]uint, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return auo.RemoveMetadatumIDs(ids...)
}

// ClearGeneration clears the "generation" edge to the Generation entity.
func (auo *AssetUpdateOne) ClearGeneration() *AssetUpdateOne {
	auo.mutation.ClearGeneration()
	return auo
}

// Where appends a list predicates to the AssetUpdate builder.
func (auo *AssetUpdateOne) Where(ps ...predicate.Asset) *AssetUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AssetUpdateOne) Select(field string, fields ...string) *AssetUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Asset entity.
func (auo *AssetUpdateOne) Save(ctx context.Context) (*Asset, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AssetUpdateOne) SaveX(ctx context.Context) *Asset {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AssetUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AssetUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AssetUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := asset.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AssetUpdateOne) check() error {
	if v, ok := auo.mutation.MediaKind(); ok {
		if err := asset.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`ent: validator failed for field "Asset.media_kind": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ProviderID(); ok {
		if err := asset.ProviderIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_id", err: fmt.Errorf(`ent: validator failed for field "Asset.provider_id": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ProviderAssetID(); ok {
		if err := asset.ProviderAssetIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_asset_id", err: fmt.Errorf(`ent: validator failed for field "Asset.provider_asset_id": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ContentHash(); ok {
		if err := asset.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Asset.content_hash": %w`, err)}
		}
	}
	if v, ok := auo.mutation.MimeType(); ok {
		if err := asset.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Asset.mime_type": %w`, err)}
		}
	}
	if v, ok := auo.mutation.IngestStatus(); ok {
		if err := asset.IngestStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingest_status", err: fmt.Errorf(`ent: validator failed for field "Asset.ingest_status": %w`, err)}
		}
	}
	if v, ok := auo.mutation.LastError(); ok {
		if err := asset.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "Asset.last_error": %w`, err)}
		}
	}
	return nil
}

func (auo *AssetUpdateOne) sqlSave(ctx context.Context) (_node *Asset, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(asset.Table, asset.Columns, sqlgraph.NewFieldSpec(asset.FieldID, field.TypeUint))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Asset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, asset.FieldID)
		for _, f := range fields {
			if !asset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != asset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(asset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := auo.mutation.OwnerID(); ok {
		_spec.SetField(asset.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := auo.mutation.AddedOwnerID(); ok {
		_spec.AddField(asset.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := auo.mutation.MediaKind(); ok {
		_spec.SetField(asset.FieldMediaKind, field.TypeString, value)
	}
	if value, ok := auo.mutation.ProviderID(); ok {
		_spec.SetField(asset.FieldProviderID, field.TypeString, value)
	}
	if auo.mutation.ProviderIDCleared() {
		_spec.ClearField(asset.FieldProviderID, field.TypeString)
	}
	if value, ok := auo.mutation.ProviderAssetID(); ok {
		_spec.SetField(asset.FieldProviderAssetID, field.TypeString, value)
	}
	if auo.mutation.ProviderAssetIDCleared() {
		_spec.ClearField(asset.FieldProviderAssetID, field.TypeString)
	}
	if value, ok := auo.mutation.ContentHash(); ok {
		_spec.SetField(asset.FieldContentHash, field.TypeString, value)
	}
	if auo.mutation.ContentHashCleared() {
		_spec.ClearField(asset.FieldContentHash, field.TypeString)
	}
	if value, ok := auo.mutation.PerceptualHash(); ok {
		_spec.SetField(asset.FieldPerceptualHash, field.TypeUint64, value)
	}
	if value, ok := auo.mutation.AddedPerceptualHash(); ok {
		_spec.AddField(asset.FieldPerceptualHash, field.TypeUint64, value)
	}
	if auo.mutation.PerceptualHashCleared() {
		_spec.ClearField(asset.FieldPerceptualHash, field.TypeUint64)
	}
	if value, ok := auo.mutation.PerceptualHashVersion(); ok {
		_spec.SetField(asset.FieldPerceptualHashVersion, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedPerceptualHashVersion(); ok {
		_spec.AddField(asset.FieldPerceptualHashVersion, field.TypeInt, value)
	}
	if value, ok := auo.mutation.SourceURL(); ok {
		_spec.SetField(asset.FieldSourceURL, field.TypeString, value)
	}
	if auo.mutation.SourceURLCleared() {
		_spec.ClearField(asset.FieldSourceURL, field.TypeString)
	}
	if value, ok := auo.mutation.StorageKey(); ok {
		_spec.SetField(asset.FieldStorageKey, field.TypeString, value)
	}
	if auo.mutation.StorageKeyCleared() {
		_spec.ClearField(asset.FieldStorageKey, field.TypeString)
	}
	if value, ok := auo.mutation.ThumbnailKey(); ok {
		_spec.SetField(asset.FieldThumbnailKey, field.TypeString, value)
	}
	if auo.mutation.ThumbnailKeyCleared() {
		_spec.ClearField(asset.FieldThumbnailKey, field.TypeString)
	}
	if value, ok := auo.mutation.PreviewKey(); ok {
		_spec.SetField(asset.FieldPreviewKey, field.TypeString, value)
	}
	if auo.mutation.PreviewKeyCleared() {
		_spec.ClearField(asset.FieldPreviewKey, field.TypeString)
	}
	if value, ok := auo.mutation.LocalPath(); ok {
		_spec.SetField(asset.FieldLocalPath, field.TypeString, value)
	}
	if auo.mutation.LocalPathCleared() {
		_spec.ClearField(asset.FieldLocalPath, field.TypeString)
	}
	if value, ok := auo.mutation.Size(); ok {
		_spec.SetField(asset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := auo.mutation.AddedSize(); ok {
		_spec.AddField(asset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := auo.mutation.MimeType(); ok {
		_spec.SetField(asset.FieldMimeType, field.TypeString, value)
	}
	if auo.mutation.MimeTypeCleared() {
		_spec.ClearField(asset.FieldMimeType, field.TypeString)
	}
	if value, ok := auo.mutation.ProviderMap(); ok {
		_spec.SetField(asset.FieldProviderMap, field.TypeOther, value)
	}
	if auo.mutation.ProviderMapCleared() {
		_spec.ClearField(asset.FieldProviderMap, field.TypeOther)
	}
	if value, ok := auo.mutation.IngestStatus(); ok {
		_spec.SetField(asset.FieldIngestStatus, field.TypeString, value)
	}
	if value, ok := auo.mutation.DownloadedAt(); ok {
		_spec.SetField(asset.FieldDownloadedAt, field.TypeTime, value)
	}
	if auo.mutation.DownloadedAtCleared() {
		_spec.ClearField(asset.FieldDownloadedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.MetadataExtractedAt(); ok {
		_spec.SetField(asset.FieldMetadataExtractedAt, field.TypeTime, value)
	}
	if auo.mutation.MetadataExtractedAtCleared() {
		_spec.ClearField(asset.FieldMetadataExtractedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.ThumbnailGeneratedAt(); ok {
		_spec.SetField(asset.FieldThumbnailGeneratedAt, field.TypeTime, value)
	}
	if auo.mutation.ThumbnailGeneratedAtCleared() {
		_spec.ClearField(asset.FieldThumbnailGeneratedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.PreviewGeneratedAt(); ok {
		_spec.SetField(asset.FieldPreviewGeneratedAt, field.TypeTime, value)
	}
	if auo.mutation.PreviewGeneratedAtCleared() {
		_spec.ClearField(asset.FieldPreviewGeneratedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.LastError(); ok {
		_spec.SetField(asset.FieldLastError, field.TypeString, value)
	}
	if auo.mutation.LastErrorCleared() {
		_spec.ClearField(asset.FieldLastError, field.TypeString)
	}
	if auo.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   asset.MetadataTable,
			Columns: []string{asset.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metadata.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedMetadataIDs(); len(nodes) > 0 && !auo.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   asset.MetadataTable,
			Columns: []string{asset.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metadata.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.MetadataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   asset.MetadataTable,
			Columns: []string{asset.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metadata.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.GenerationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   asset.GenerationTable,
			Columns: []string{asset.GenerationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.GenerationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   asset.GenerationTable,
			Columns: []string{asset.GenerationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Asset{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{asset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
