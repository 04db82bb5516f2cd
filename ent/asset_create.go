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
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// AssetCreate is the builder for creating a Asset entity.
type AssetCreate struct {
	config
	mutation *AssetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (ac *AssetCreate) SetCreatedAt(t time.Time) *AssetCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AssetCreate) SetNillableCreatedAt(t *time.Time) *AssetCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AssetCreate) SetUpdatedAt(t time.Time) *AssetCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AssetCreate) SetNillableUpdatedAt(t *time.Time) *AssetCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetOwnerID sets the "owner_id" field.
func (ac *AssetCreate) SetOwnerID(u uint) *AssetCreate {
	ac.mutation.SetOwnerID(u)
	return ac
}

// SetMediaKind sets the "media_kind" field.
func (ac *AssetCreate) SetMediaKind(s string) *AssetCreate {
	ac.mutation.SetMediaKind(s)
	return ac
}

// SetProviderID sets the "provider_id" field.
func (ac *AssetCreate) SetProviderID(s string) *AssetCreate {
	ac.mutation.SetProviderID(s)
	return ac
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (ac *AssetCreate) SetNillableProviderID(s *string) *AssetCreate {
	if s != nil {
		ac.SetProviderID(*s)
	}
	return ac
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (ac *AssetCreate) SetProviderAssetID(s string) *AssetCreate {
	ac.mutation.SetProviderAssetID(s)
	return ac
}

// SetNillableProviderAssetID sets the "provider_asset_id" field if the given value is not nil.
func (ac *AssetCreate) SetNillableProviderAssetID(s *string) *AssetCreate {
	if s != nil {
		ac.SetProviderAssetID(*s)
	}
	return ac
}

// SetContentHash sets the "content_hash" field.
func (ac *AssetCreate) SetContentHash(s string) *AssetCreate {
	ac.mutation.SetContentHash(s)
	return ac
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (ac *AssetCreate) SetNillableContentHash(s *string) *AssetCreate {
	if s != nil {
		ac.SetContentHash(*s)
	}
	return ac
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (ac *AssetCreate) SetPerceptualHash(u uint64) *AssetCreate {
	ac.mutation.SetPerceptualHash(u)
	return ac
}

// SetNillablePerceptualHash sets the "perceptual_hash" field if the given value is not nil.
func (ac *AssetCreate) SetNillablePerceptualHash(u *uint64) *AssetCreate {
	if u != nil {
		ac.SetPerceptualHash(*u)
	}
	return ac
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (ac *AssetCreate) SetPerceptualHashVersion(i int) *AssetCreate {
	ac.mutation.SetPerceptualHashVersion(i)
	return ac
}

// SetNillablePerceptualHashVersion sets the "perceptual_hash_version" field if the given value is not nil.
func (ac *AssetCreate) SetNillablePerceptualHashVersion(i *int) *AssetCreate {
	if i != nil {
		ac.SetPerceptualHashVersion(*i)
	}
	return ac
}

// SetSourceURL sets the "source_url" field.
func (ac *AssetCreate) SetSourceURL(s string) *AssetCreate {
	ac.mutation.SetSourceURL(s)
	return ac
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (ac *AssetCreate) SetNillableSourceURL(s *string) *AssetCreate {
	if s != nil {
		ac.SetSourceURL(*s)
	}
	return ac
}

// SetStorageKey sets the "storage_key" field.
func (ac *AssetCreate) SetStorageKey(s string) *AssetCreate {
	ac.mutation.SetStorageKey(s)
	return ac
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (ac *AssetCreate) SetNillableStorageKey(s *string) *AssetCreate {
	if s != nil {
		ac.SetStorageKey(*s)
	}
	return ac
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (ac *AssetCreate) SetThumbnailKey(s string) *AssetCreate {
	ac.mutation.SetThumbnailKey(s)
	return ac
}

// SetNillableThumbnailKey sets the "thumbnail_key" field if the given value is not nil.
func (ac *AssetCreate) SetNillableThumbnailKey(s *string) *AssetCreate {
	if s != nil {
		ac.SetThumbnailKey(*s)
	}
	return ac
}

// SetPreviewKey sets the "preview_key" field.
func (ac *AssetCreate) SetPreviewKey(s string) *AssetCreate {
	ac.mutation.SetPreviewKey(s)
	return ac
}

// SetNillablePreviewKey sets the "preview_key" field if the given value is not nil.
func (ac *AssetCreate) SetNillablePreviewKey(s *string) *AssetCreate {
	if s != nil {
		ac.SetPreviewKey(*s)
	}
	return ac
}

// SetLocalPath sets the "local_path" field.
func (ac *AssetCreate) SetLocalPath(s string) *AssetCreate {
	ac.mutation.SetLocalPath(s)
	return ac
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (ac *AssetCreate) SetNillableLocalPath(s *string) *AssetCreate {
	if s != nil {
		ac.SetLocalPath(*s)
	}
	return ac
}

// SetSize sets the "size" field.
func (ac *AssetCreate) SetSize(i int64) *AssetCreate {
	ac.mutation.SetSize(i)
	return ac
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (ac *AssetCreate) SetNillableSize(i *int64) *AssetCreate {
	if i != nil {
		ac.SetSize(*i)
	}
	return ac
}

// SetMimeType sets the "mime_type" field.
func (ac *AssetCreate) SetMimeType(s string) *AssetCreate {
	ac.mutation.SetMimeType(s)
	return ac
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (ac *AssetCreate) SetNillableMimeType(s *string) *AssetCreate {
	if s != nil {
		ac.SetMimeType(*s)
	}
	return ac
}

// SetProviderMap sets the "provider_map" field.
func (ac *AssetCreate) SetProviderMap(mm model.StringMap) *AssetCreate {
	ac.mutation.SetProviderMap(mm)
	return ac
}

// SetGenerationID sets the "generation_id" field.
func (ac *AssetCreate) SetGenerationID(u uint) *AssetCreate {
	ac.mutation.SetGenerationID(u)
	return ac
}

// SetNillableGenerationID sets the "generation_id" field if the given value is not nil.
func (ac *AssetCreate) SetNillableGenerationID(u *uint) *AssetCreate {
	if u != nil {
		ac.SetGenerationID(*u)
	}
	return ac
}

// SetIngestStatus sets the "ingest_status" field.
func (ac *AssetCreate) SetIngestStatus(s string) *AssetCreate {
	ac.mutation.SetIngestStatus(s)
	return ac
}

// SetNillableIngestStatus sets the "ingest_status" field if the given value is not nil.
func (ac *AssetCreate) SetNillableIngestStatus(s *string) *AssetCreate {
	if s != nil {
		ac.SetIngestStatus(*s)
	}
	return ac
}

// SetDownloadedAt sets the "downloaded_at" field.
func (ac *AssetCreate) SetDownloadedAt(t time.Time) *AssetCreate {
	ac.mutation.SetDownloadedAt(t)
	return ac
}

// SetNillableDownloadedAt sets the "downloaded_at" field if the given value is not nil.
func (ac *AssetCreate) SetNillableDownloadedAt(t *time.Time) *AssetCreate {
	if t != nil {
		ac.SetDownloadedAt(*t)
	}
	return ac
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (ac *AssetCreate) SetMetadataExtractedAt(t time.Time) *AssetCreate {
	ac.mutation.SetMetadataExtractedAt(t)
	return ac
}

// SetNillableMetadataExtractedAt sets the "metadata_extracted_at" field if the given value is not nil.
func (ac *AssetCreate) SetNillableMetadataExtractedAt(t *time.Time) *AssetCreate {
	if t != nil {
		ac.SetMetadataExtractedAt(*t)
	}
	return ac
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (ac *AssetCreate) SetThumbnailGeneratedAt(t time.Time) *AssetCreate {
	ac.mutation.SetThumbnailGeneratedAt(t)
	return ac
}

// SetNillableThumbnailGeneratedAt sets the "thumbnail_generated_at" field if the given value is not nil.
func (ac *AssetCreate) SetNillableThumbnailGeneratedAt(t *time.Time) *AssetCreate {
	if t != nil {
		ac.SetThumbnailGeneratedAt(*t)
	}
	return ac
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (ac *AssetCreate) SetPreviewGeneratedAt(t time.Time) *AssetCreate {
	ac.mutation.SetPreviewGeneratedAt(t)
	return ac
}

// SetNillablePreviewGeneratedAt sets the "preview_generated_at" field if the given value is not nil.
func (ac *AssetCreate) SetNillablePreviewGeneratedAt(t *time.Time) *AssetCreate {
	if t != nil {
		ac.SetPreviewGeneratedAt(*t)
	}
	return ac
}

// SetLastError sets the "last_error" field.
func (ac *AssetCreate) SetLastError(s string) *AssetCreate {
	ac.mutation.SetLastError(s)
	return ac
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (ac *AssetCreate) SetNillableLastError(s *string) *AssetCreate {
	if s != nil {
		ac.SetLastError(*s)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AssetCreate) SetID(u uint) *AssetCreate {
	ac.mutation.SetID(u)
	return ac
}

// AddMetadatumIDs adds the "metadata" edge to the Metadata entity by IDs.
func (ac *AssetCreate) AddMetadatumIDs(ids ...uint) *AssetCreate {
	ac.mutation.AddMetadatumIDs(ids...)
	return ac
}

// AddMetadata adds the "metadata" edges to the Metadata entity.
func (ac *AssetCreate) AddMetadata(m ...*Metadata) *AssetCreate {
	ids := make([]uint, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return ac.AddMetadatumIDs(ids...)
}

// SetGeneration sets the "generation" edge to the Generation entity.
func (ac *AssetCreate) SetGeneration(g *Generation) *AssetCreate {
	return ac.SetGenerationID(g.ID)
}

// Mutation returns the AssetMutation object of the builder.
func (ac *AssetCreate) Mutation() *AssetMutation {
	return ac.mutation
}

// Save creates the Asset in the database.
func (ac *AssetCreate) Save(ctx context.Context) (*Asset, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AssetCreate) SaveX(ctx context.Context) *Asset {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AssetCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AssetCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AssetCreate) defaults() {
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := asset.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := asset.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ac.mutation.PerceptualHashVersion(); !ok {
		v := asset.DefaultPerceptualHashVersion
		ac.mutation.SetPerceptualHashVersion(v)
	}
	if _, ok := ac.mutation.Size(); !ok {
		v := asset.DefaultSize
		ac.mutation.SetSize(v)
	}
	if _, ok := ac.mutation.IngestStatus(); !ok {
		v := asset.DefaultIngestStatus
		ac.mutation.SetIngestStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AssetCreate) check() error {
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Asset.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Asset.updated_at"`)}
	}
	if _, ok := ac.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Asset.owner_id"`)}
	}
	if _, ok := ac.mutation.MediaKind(); !ok {
		return &ValidationError{Name: "media_kind", err: errors.New(`ent: missing required field "Asset.media_kind"`)}
	}
	if v, ok := ac.mutation.MediaKind(); ok {
		if err := asset.MediaKindValidator(v); err != nil {
			return &ValidationError{Name: "media_kind", err: fmt.Errorf(`ent: validator failed for field "Asset.media_kind": %w`, err)}
		}
	}
	if v, ok := ac.mutation.ProviderID(); ok {
		if err := asset.ProviderIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_id", err: fmt.Errorf(`ent: validator failed for field "Asset.provider_id": %w`, err)}
		}
	}
	if v, ok := ac.mutation.ProviderAssetID(); ok {
		if err := asset.ProviderAssetIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_asset_id", err: fmt.Errorf(`ent: validator failed for field "Asset.provider_asset_id": %w`, err)}
		}
	}
	if v, ok := ac.mutation.ContentHash(); ok {
		if err := asset.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Asset.content_hash": %w`, err)}
		}
	}
	if _, ok := ac.mutation.PerceptualHashVersion(); !ok {
		return &ValidationError{Name: "perceptual_hash_version", err: errors.New(`ent: missing required field "Asset.perceptual_hash_version"`)}
	}
	if _, ok := ac.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Asset.size"`)}
	}
	if v, ok := ac.mutation.MimeType(); ok {
		if err := asset.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Asset.mime_type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.IngestStatus(); !ok {
		return &ValidationError{Name: "ingest_status", err: errors.New(`ent: missing required field "Asset.ingest_status"`)}
	}
	if v, ok := ac.mutation.IngestStatus(); ok {
		if err := asset.IngestStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingest_status", err: fmt.Errorf(`ent: validator failed for field "Asset.ingest_status": %w`, err)}
		}
	}
	if v, ok := ac.mutation.LastError(); ok {
		if err := asset.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "Asset.last_error": %w`, err)}
		}
	}
	return nil
}

func (ac *AssetCreate) sqlSave(ctx context.Context) (*Asset, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AssetCreate) createSpec() (*Asset, *sqlgraph.CreateSpec) {
	var (
		_node = &Asset{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(asset.Table, sqlgraph.NewFieldSpec(asset.FieldID, field.TypeUint))
	)
	_spec.OnConflict = ac.conflict
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(asset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(asset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ac.mutation.OwnerID(); ok {
		_spec.SetField(asset.FieldOwnerID, field.TypeUint, value)
		_node.OwnerID = value
	}
	if value, ok := ac.mutation.MediaKind(); ok {
		_spec.SetField(asset.FieldMediaKind, field.TypeString, value)
		_node.MediaKind = value
	}
	if value, ok := ac.mutation.ProviderID(); ok {
		_spec.SetField(asset.FieldProviderID, field.TypeString, value)
		_node.ProviderID = &value
	}
	if value, ok := ac.mutation.ProviderAssetID(); ok {
		_spec.SetField(asset.FieldProviderAssetID, field.TypeString, value)
		_node.ProviderAssetID = &value
	}
	if value, ok := ac.mutation.ContentHash(); ok {
		_spec.SetField(asset.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := ac.mutation.PerceptualHash(); ok {
		_spec.SetField(asset.FieldPerceptualHash, field.TypeUint64, value)
		_node.PerceptualHash = &value
	}
	if value, ok := ac.mutation.PerceptualHashVersion(); ok {
		_spec.SetField(asset.FieldPerceptualHashVersion, field.TypeInt, value)
		_node.PerceptualHashVersion = value
	}
	if value, ok := ac.mutation.SourceURL(); ok {
		_spec.SetField(asset.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := ac.mutation.StorageKey(); ok {
		_spec.SetField(asset.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = &value
	}
	if value, ok := ac.mutation.ThumbnailKey(); ok {
		_spec.SetField(asset.FieldThumbnailKey, field.TypeString, value)
		_node.ThumbnailKey = &value
	}
	if value, ok := ac.mutation.PreviewKey(); ok {
		_spec.SetField(asset.FieldPreviewKey, field.TypeString, value)
		_node.PreviewKey = &value
	}
	if value, ok := ac.mutation.LocalPath(); ok {
		_spec.SetField(asset.FieldLocalPath, field.TypeString, value)
		_node.LocalPath = &value
	}
	if value, ok := ac.mutation.Size(); ok {
		_spec.SetField(asset.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := ac.mutation.MimeType(); ok {
		_spec.SetField(asset.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := ac.mutation.ProviderMap(); ok {
		_spec.SetField(asset.FieldProviderMap, field.TypeOther, value)
		_node.ProviderMap = value
	}
	if value, ok := ac.mutation.IngestStatus(); ok {
		_spec.SetField(asset.FieldIngestStatus, field.TypeString, value)
		_node.IngestStatus = value
	}
	if value, ok := ac.mutation.DownloadedAt(); ok {
		_spec.SetField(asset.FieldDownloadedAt, field.TypeTime, value)
		_node.DownloadedAt = &value
	}
	if value, ok := ac.mutation.MetadataExtractedAt(); ok {
		_spec.SetField(asset.FieldMetadataExtractedAt, field.TypeTime, value)
		_node.MetadataExtractedAt = &value
	}
	if value, ok := ac.mutation.ThumbnailGeneratedAt(); ok {
		_spec.SetField(asset.FieldThumbnailGeneratedAt, field.TypeTime, value)
		_node.ThumbnailGeneratedAt = &value
	}
	if value, ok := ac.mutation.PreviewGeneratedAt(); ok {
		_spec.SetField(asset.FieldPreviewGeneratedAt, field.TypeTime, value)
		_node.PreviewGeneratedAt = &value
	}
	if value, ok := ac.mutation.LastError(); ok {
		_spec.SetField(asset.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if nodes := ac.mutation.MetadataIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.GenerationIDs(); len(nodes) > 0 {
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
		_node.GenerationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Asset.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (ac *AssetCreate) OnConflict(opts ...sql.ConflictOption) *AssetUpsertOne {
	ac.conflict = opts
	return &AssetUpsertOne{
		create: ac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ac *AssetCreate) OnConflictColumns(columns ...string) *AssetUpsertOne {
	ac.conflict = append(ac.conflict, sql.ConflictColumns(columns...))
	return &AssetUpsertOne{
		create: ac,
	}
}

type (
	// AssetUpsertOne is the builder for "upsert"-ing
	//  one Asset node.
	AssetUpsertOne struct {
		create *AssetCreate
	}

	// AssetUpsert is the "OnConflict" setter.
	AssetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AssetUpsert) SetUpdatedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdateUpdatedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *AssetUpsert) SetOwnerID(v uint) *AssetUpsert {
	u.Set(asset.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AssetUpsert) UpdateOwnerID() *AssetUpsert {
	u.SetExcluded(asset.FieldOwnerID)
	return u
}

// AddOwnerID adds v to the "owner_id" field.
func (u *AssetUpsert) AddOwnerID(v uint) *AssetUpsert {
	u.Add(asset.FieldOwnerID, v)
	return u
}

// SetMediaKind sets the "media_kind" field.
func (u *AssetUpsert) SetMediaKind(v string) *AssetUpsert {
	u.Set(asset.FieldMediaKind, v)
	return u
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *AssetUpsert) UpdateMediaKind() *AssetUpsert {
	u.SetExcluded(asset.FieldMediaKind)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *AssetUpsert) SetProviderID(v string) *AssetUpsert {
	u.Set(asset.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *AssetUpsert) UpdateProviderID() *AssetUpsert {
	u.SetExcluded(asset.FieldProviderID)
	return u
}

// ClearProviderID clears the value of the "provider_id" field.
func (u *AssetUpsert) ClearProviderID() *AssetUpsert {
	u.SetNull(asset.FieldProviderID)
	return u
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (u *AssetUpsert) SetProviderAssetID(v string) *AssetUpsert {
	u.Set(asset.FieldProviderAssetID, v)
	return u
}

// UpdateProviderAssetID sets the "provider_asset_id" field to the value that was provided on create.
func (u *AssetUpsert) UpdateProviderAssetID() *AssetUpsert {
	u.SetExcluded(asset.FieldProviderAssetID)
	return u
}

// ClearProviderAssetID clears the value of the "provider_asset_id" field.
func (u *AssetUpsert) ClearProviderAssetID() *AssetUpsert {
	u.SetNull(asset.FieldProviderAssetID)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *AssetUpsert) SetContentHash(v string) *AssetUpsert {
	u.Set(asset.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AssetUpsert) UpdateContentHash() *AssetUpsert {
	u.SetExcluded(asset.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *AssetUpsert) ClearContentHash() *AssetUpsert {
	u.SetNull(asset.FieldContentHash)
	return u
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (u *AssetUpsert) SetPerceptualHash(v uint64) *AssetUpsert {
	u.Set(asset.FieldPerceptualHash, v)
	return u
}

// UpdatePerceptualHash sets the "perceptual_hash" field to the value that was provided on create.
func (u *AssetUpsert) UpdatePerceptualHash() *AssetUpsert {
	u.SetExcluded(asset.FieldPerceptualHash)
	return u
}

// AddPerceptualHash adds v to the "perceptual_hash" field.
func (u *AssetUpsert) AddPerceptualHash(v uint64) *AssetUpsert {
	u.Add(asset.FieldPerceptualHash, v)
	return u
}

// ClearPerceptualHash clears the value of the "perceptual_hash" field.
func (u *AssetUpsert) ClearPerceptualHash() *AssetUpsert {
	u.SetNull(asset.FieldPerceptualHash)
	return u
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (u *AssetUpsert) SetPerceptualHashVersion(v int) *AssetUpsert {
	u.Set(asset.FieldPerceptualHashVersion, v)
	return u
}

// UpdatePerceptualHashVersion sets the "perceptual_hash_version" field to the value that was provided on create.
func (u *AssetUpsert) UpdatePerceptualHashVersion() *AssetUpsert {
	u.SetExcluded(asset.FieldPerceptualHashVersion)
	return u
}

// AddPerceptualHashVersion adds v to the "perceptual_hash_version" field.
func (u *AssetUpsert) AddPerceptualHashVersion(v int) *AssetUpsert {
	u.Add(asset.FieldPerceptualHashVersion, v)
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *AssetUpsert) SetSourceURL(v string) *AssetUpsert {
	u.Set(asset.FieldSourceURL, v)
	return u
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *AssetUpsert) UpdateSourceURL() *AssetUpsert {
	u.SetExcluded(asset.FieldSourceURL)
	return u
}

// ClearSourceURL clears the value of the "source_url" field.
func (u *AssetUpsert) ClearSourceURL() *AssetUpsert {
	u.SetNull(asset.FieldSourceURL)
	return u
}

// SetStorageKey sets the "storage_key" field.
func (u *AssetUpsert) SetStorageKey(v string) *AssetUpsert {
	u.Set(asset.FieldStorageKey, v)
	return u
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *AssetUpsert) UpdateStorageKey() *AssetUpsert {
	u.SetExcluded(asset.FieldStorageKey)
	return u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (u *AssetUpsert) ClearStorageKey() *AssetUpsert {
	u.SetNull(asset.FieldStorageKey)
	return u
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (u *AssetUpsert) SetThumbnailKey(v string) *AssetUpsert {
	u.Set(asset.FieldThumbnailKey, v)
	return u
}

// UpdateThumbnailKey sets the "thumbnail_key" field to the value that was provided on create.
func (u *AssetUpsert) UpdateThumbnailKey() *AssetUpsert {
	u.SetExcluded(asset.FieldThumbnailKey)
	return u
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (u *AssetUpsert) ClearThumbnailKey() *AssetUpsert {
	u.SetNull(asset.FieldThumbnailKey)
	return u
}

// SetPreviewKey sets the "preview_key" field.
func (u *AssetUpsert) SetPreviewKey(v string) *AssetUpsert {
	u.Set(asset.FieldPreviewKey, v)
	return u
}

// UpdatePreviewKey sets the "preview_key" field to the value that was provided on create.
func (u *AssetUpsert) UpdatePreviewKey() *AssetUpsert {
	u.SetExcluded(asset.FieldPreviewKey)
	return u
}

// ClearPreviewKey clears the value of the "preview_key" field.
func (u *AssetUpsert) ClearPreviewKey() *AssetUpsert {
	u.SetNull(asset.FieldPreviewKey)
	return u
}

// SetLocalPath sets the "local_path" field.
func (u *AssetUpsert) SetLocalPath(v string) *AssetUpsert {
	u.Set(asset.FieldLocalPath, v)
	return u
}

// UpdateLocalPath sets the "local_path" field to the value that was provided on create.
func (u *AssetUpsert) UpdateLocalPath() *AssetUpsert {
	u.SetExcluded(asset.FieldLocalPath)
	return u
}

// ClearLocalPath clears the value of the "local_path" field.
func (u *AssetUpsert) ClearLocalPath() *AssetUpsert {
	u.SetNull(asset.FieldLocalPath)
	return u
}

// SetSize sets the "size" field.
func (u *AssetUpsert) SetSize(v int64) *AssetUpsert {
	u.Set(asset.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *AssetUpsert) UpdateSize() *AssetUpsert {
	u.SetExcluded(asset.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *AssetUpsert) AddSize(v int64) *AssetUpsert {
	u.Add(asset.FieldSize, v)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *AssetUpsert) SetMimeType(v string) *AssetUpsert {
	u.Set(asset.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AssetUpsert) UpdateMimeType() *AssetUpsert {
	u.SetExcluded(asset.FieldMimeType)
	return u
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AssetUpsert) ClearMimeType() *AssetUpsert {
	u.SetNull(asset.FieldMimeType)
	return u
}

// SetProviderMap sets the "provider_map" field.
func (u *AssetUpsert) SetProviderMap(v model.StringMap) *AssetUpsert {
	u.Set(asset.FieldProviderMap, v)
	return u
}

// UpdateProviderMap sets the "provider_map" field to the value that was provided on create.
func (u *AssetUpsert) UpdateProviderMap() *AssetUpsert {
	u.SetExcluded(asset.FieldProviderMap)
	return u
}

// ClearProviderMap clears the value of the "provider_map" field.
func (u *AssetUpsert) ClearProviderMap() *AssetUpsert {
	u.SetNull(asset.FieldProviderMap)
	return u
}

// SetGenerationID sets the "generation_id" field.
func (u *AssetUpsert) SetGenerationID(v uint) *AssetUpsert {
	u.Set(asset.FieldGenerationID, v)
	return u
}

// UpdateGenerationID sets the "generation_id" field to the value that was provided on create.
func (u *AssetUpsert) UpdateGenerationID() *AssetUpsert {
	u.SetExcluded(asset.FieldGenerationID)
	return u
}

// ClearGenerationID clears the value of the "generation_id" field.
func (u *AssetUpsert) ClearGenerationID() *AssetUpsert {
	u.SetNull(asset.FieldGenerationID)
	return u
}

// SetIngestStatus sets the "ingest_status" field.
func (u *AssetUpsert) SetIngestStatus(v string) *AssetUpsert {
	u.Set(asset.FieldIngestStatus, v)
	return u
}

// UpdateIngestStatus sets the "ingest_status" field to the value that was provided on create.
func (u *AssetUpsert) UpdateIngestStatus() *AssetUpsert {
	u.SetExcluded(asset.FieldIngestStatus)
	return u
}

// SetDownloadedAt sets the "downloaded_at" field.
func (u *AssetUpsert) SetDownloadedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldDownloadedAt, v)
	return u
}

// UpdateDownloadedAt sets the "downloaded_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdateDownloadedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldDownloadedAt)
	return u
}

// ClearDownloadedAt clears the value of the "downloaded_at" field.
func (u *AssetUpsert) ClearDownloadedAt() *AssetUpsert {
	u.SetNull(asset.FieldDownloadedAt)
	return u
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (u *AssetUpsert) SetMetadataExtractedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldMetadataExtractedAt, v)
	return u
}

// UpdateMetadataExtractedAt sets the "metadata_extracted_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdateMetadataExtractedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldMetadataExtractedAt)
	return u
}

// ClearMetadataExtractedAt clears the value of the "metadata_extracted_at" field.
func (u *AssetUpsert) ClearMetadataExtractedAt() *AssetUpsert {
	u.SetNull(asset.FieldMetadataExtractedAt)
	return u
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (u *AssetUpsert) SetThumbnailGeneratedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldThumbnailGeneratedAt, v)
	return u
}

// UpdateThumbnailGeneratedAt sets the "thumbnail_generated_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdateThumbnailGeneratedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldThumbnailGeneratedAt)
	return u
}

// ClearThumbnailGeneratedAt clears the value of the "thumbnail_generated_at" field.
func (u *AssetUpsert) ClearThumbnailGeneratedAt() *AssetUpsert {
	u.SetNull(asset.FieldThumbnailGeneratedAt)
	return u
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (u *AssetUpsert) SetPreviewGeneratedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldPreviewGeneratedAt, v)
	return u
}

// UpdatePreviewGeneratedAt sets the "preview_generated_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdatePreviewGeneratedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldPreviewGeneratedAt)
	return u
}

// ClearPreviewGeneratedAt clears the value of the "preview_generated_at" field.
func (u *AssetUpsert) ClearPreviewGeneratedAt() *AssetUpsert {
	u.SetNull(asset.FieldPreviewGeneratedAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *AssetUpsert) SetLastError(v string) *AssetUpsert {
	u.Set(asset.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *AssetUpsert) UpdateLastError() *AssetUpsert {
	u.SetExcluded(asset.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *AssetUpsert) ClearLastError() *AssetUpsert {
	u.SetNull(asset.FieldLastError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(asset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssetUpsertOne) UpdateNewValues() *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(asset.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(asset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Asset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssetUpsertOne) Ignore() *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssetUpsertOne) DoNothing() *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssetCreate.OnConflict
// documentation for more info.
func (u *AssetUpsertOne) Update(set func(*AssetUpsert)) *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssetUpsertOne) SetUpdatedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateUpdatedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AssetUpsertOne) SetOwnerID(v uint) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetOwnerID(v)
	})
}

// AddOwnerID adds v to the "owner_id" field.
func (u *AssetUpsertOne) AddOwnerID(v uint) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateOwnerID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateOwnerID()
	})
}

// SetMediaKind sets the "media_kind" field.
func (u *AssetUpsertOne) SetMediaKind(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetMediaKind(v)
	})
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateMediaKind() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMediaKind()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *AssetUpsertOne) SetProviderID(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateProviderID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderID()
	})
}

// ClearProviderID clears the value of the "provider_id" field.
func (u *AssetUpsertOne) ClearProviderID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderID()
	})
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (u *AssetUpsertOne) SetProviderAssetID(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderAssetID(v)
	})
}

// UpdateProviderAssetID sets the "provider_asset_id" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateProviderAssetID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderAssetID()
	})
}

// ClearProviderAssetID clears the value of the "provider_asset_id" field.
func (u *AssetUpsertOne) ClearProviderAssetID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderAssetID()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *AssetUpsertOne) SetContentHash(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateContentHash() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *AssetUpsertOne) ClearContentHash() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearContentHash()
	})
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (u *AssetUpsertOne) SetPerceptualHash(v uint64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetPerceptualHash(v)
	})
}

// AddPerceptualHash adds v to the "perceptual_hash" field.
func (u *AssetUpsertOne) AddPerceptualHash(v uint64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddPerceptualHash(v)
	})
}

// UpdatePerceptualHash sets the "perceptual_hash" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdatePerceptualHash() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePerceptualHash()
	})
}

// ClearPerceptualHash clears the value of the "perceptual_hash" field.
func (u *AssetUpsertOne) ClearPerceptualHash() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearPerceptualHash()
	})
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (u *AssetUpsertOne) SetPerceptualHashVersion(v int) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetPerceptualHashVersion(v)
	})
}

// AddPerceptualHashVersion adds v to the "perceptual_hash_version" field.
func (u *AssetUpsertOne) AddPerceptualHashVersion(v int) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddPerceptualHashVersion(v)
	})
}

// UpdatePerceptualHashVersion sets the "perceptual_hash_version" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdatePerceptualHashVersion() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePerceptualHashVersion()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *AssetUpsertOne) SetSourceURL(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateSourceURL() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateSourceURL()
	})
}

// ClearSourceURL clears the value of the "source_url" field.
func (u *AssetUpsertOne) ClearSourceURL() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearSourceURL()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *AssetUpsertOne) SetStorageKey(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateStorageKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateStorageKey()
	})
}

// ClearStorageKey clears the value of the "storage_key" field.
func (u *AssetUpsertOne) ClearStorageKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearStorageKey()
	})
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (u *AssetUpsertOne) SetThumbnailKey(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetThumbnailKey(v)
	})
}

// UpdateThumbnailKey sets the "thumbnail_key" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateThumbnailKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateThumbnailKey()
	})
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (u *AssetUpsertOne) ClearThumbnailKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearThumbnailKey()
	})
}

// SetPreviewKey sets the "preview_key" field.
func (u *AssetUpsertOne) SetPreviewKey(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetPreviewKey(v)
	})
}

// UpdatePreviewKey sets the "preview_key" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdatePreviewKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePreviewKey()
	})
}

// ClearPreviewKey clears the value of the "preview_key" field.
func (u *AssetUpsertOne) ClearPreviewKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearPreviewKey()
	})
}

// SetLocalPath sets the "local_path" field.
func (u *AssetUpsertOne) SetLocalPath(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetLocalPath(v)
	})
}

// UpdateLocalPath sets the "local_path" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateLocalPath() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateLocalPath()
	})
}

// ClearLocalPath clears the value of the "local_path" field.
func (u *AssetUpsertOne) ClearLocalPath() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearLocalPath()
	})
}

// SetSize sets the "size" field.
func (u *AssetUpsertOne) SetSize(v int64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *AssetUpsertOne) AddSize(v int64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateSize() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateSize()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *AssetUpsertOne) SetMimeType(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateMimeType() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AssetUpsertOne) ClearMimeType() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMimeType()
	})
}

// SetProviderMap sets the "provider_map" field.
func (u *AssetUpsertOne) SetProviderMap(v model.StringMap) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderMap(v)
	})
}

// UpdateProviderMap sets the "provider_map" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateProviderMap() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderMap()
	})
}

// ClearProviderMap clears the value of the "provider_map" field.
func (u *AssetUpsertOne) ClearProviderMap() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderMap()
	})
}

// SetGenerationID sets the "generation_id" field.
func (u *AssetUpsertOne) SetGenerationID(v uint) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetGenerationID(v)
	})
}

// UpdateGenerationID sets the "generation_id" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateGenerationID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateGenerationID()
	})
}

// ClearGenerationID clears the value of the "generation_id" field.
func (u *AssetUpsertOne) ClearGenerationID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearGenerationID()
	})
}

// SetIngestStatus sets the "ingest_status" field.
func (u *AssetUpsertOne) SetIngestStatus(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetIngestStatus(v)
	})
}

// UpdateIngestStatus sets the "ingest_status" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateIngestStatus() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateIngestStatus()
	})
}

// SetDownloadedAt sets the "downloaded_at" field.
func (u *AssetUpsertOne) SetDownloadedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetDownloadedAt(v)
	})
}

// UpdateDownloadedAt sets the "downloaded_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateDownloadedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateDownloadedAt()
	})
}

// ClearDownloadedAt clears the value of the "downloaded_at" field.
func (u *AssetUpsertOne) ClearDownloadedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearDownloadedAt()
	})
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (u *AssetUpsertOne) SetMetadataExtractedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetMetadataExtractedAt(v)
	})
}

// UpdateMetadataExtractedAt sets the "metadata_extracted_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateMetadataExtractedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMetadataExtractedAt()
	})
}

// ClearMetadataExtractedAt clears the value of the "metadata_extracted_at" field.
func (u *AssetUpsertOne) ClearMetadataExtractedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMetadataExtractedAt()
	})
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (u *AssetUpsertOne) SetThumbnailGeneratedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetThumbnailGeneratedAt(v)
	})
}

// UpdateThumbnailGeneratedAt sets the "thumbnail_generated_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateThumbnailGeneratedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateThumbnailGeneratedAt()
	})
}

// ClearThumbnailGeneratedAt clears the value of the "thumbnail_generated_at" field.
func (u *AssetUpsertOne) ClearThumbnailGeneratedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearThumbnailGeneratedAt()
	})
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (u *AssetUpsertOne) SetPreviewGeneratedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetPreviewGeneratedAt(v)
	})
}

// UpdatePreviewGeneratedAt sets the "preview_generated_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdatePreviewGeneratedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePreviewGeneratedAt()
	})
}

// ClearPreviewGeneratedAt clears the value of the "preview_generated_at" field.
func (u *AssetUpsertOne) ClearPreviewGeneratedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearPreviewGeneratedAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *AssetUpsertOne) SetLastError(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateLastError() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *AssetUpsertOne) ClearLastError() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *AssetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssetUpsertOne) ID(ctx context.Context) (id uint, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssetUpsertOne) IDX(ctx context.Context) uint {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssetCreateBulk is the builder for creating many Asset entities in bulk.
type AssetCreateBulk struct {
	config
	err      error
	builders []*AssetCreate
	conflict []sql.ConflictOption
}

// Save creates the Asset entities in the database.
func (acb *AssetCreateBulk) Save(ctx context.Context) ([]*Asset, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Asset, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = acb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AssetCreateBulk) SaveX(ctx context.Context) []*Asset {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AssetCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AssetCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Asset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (acb *AssetCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssetUpsertBulk {
	acb.conflict = opts
	return &AssetUpsertBulk{
		create: acb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (acb *AssetCreateBulk) OnConflictColumns(columns ...string) *AssetUpsertBulk {
	acb.conflict = append(acb.conflict, sql.ConflictColumns(columns...))
	return &AssetUpsertBulk{
		create: acb,
	}
}

// AssetUpsertBulk is the builder for "upsert"-ing
// a bulk of Asset nodes.
type AssetUpsertBulk struct {
	create *AssetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(asset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssetUpsertBulk) UpdateNewValues() *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(asset.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(asset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssetUpsertBulk) Ignore() *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssetUpsertBulk) DoNothing() *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssetCreateBulk.OnConflict
// documentation for more info.
func (u *AssetUpsertBulk) Update(set func(*AssetUpsert)) *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssetUpsertBulk) SetUpdatedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateUpdatedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *AssetUpsertBulk) SetOwnerID(v uint) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetOwnerID(v)
	})
}

// AddOwnerID adds v to the "owner_id" field.
func (u *AssetUpsertBulk) AddOwnerID(v uint) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateOwnerID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateOwnerID()
	})
}

// SetMediaKind sets the "media_kind" field.
func (u *AssetUpsertBulk) SetMediaKind(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetMediaKind(v)
	})
}

// UpdateMediaKind sets the "media_kind" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateMediaKind() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMediaKind()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *AssetUpsertBulk) SetProviderID(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateProviderID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderID()
	})
}

// ClearProviderID clears the value of the "provider_id" field.
func (u *AssetUpsertBulk) ClearProviderID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderID()
	})
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (u *AssetUpsertBulk) SetProviderAssetID(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderAssetID(v)
	})
}

// UpdateProviderAssetID sets the "provider_asset_id" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateProviderAssetID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderAssetID()
	})
}

// ClearProviderAssetID clears the value of the "provider_asset_id" field.
func (u *AssetUpsertBulk) ClearProviderAssetID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderAssetID()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *AssetUpsertBulk) SetContentHash(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateContentHash() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *AssetUpsertBulk) ClearContentHash() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearContentHash()
	})
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (u *AssetUpsertBulk) SetPerceptualHash(v uint64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetPerceptualHash(v)
	})
}

// AddPerceptualHash adds v to the "perceptual_hash" field.
func (u *AssetUpsertBulk) AddPerceptualHash(v uint64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddPerceptualHash(v)
	})
}

// UpdatePerceptualHash sets the "perceptual_hash" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdatePerceptualHash() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePerceptualHash()
	})
}

// ClearPerceptualHash clears the value of the "perceptual_hash" field.
func (u *AssetUpsertBulk) ClearPerceptualHash() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearPerceptualHash()
	})
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (u *AssetUpsertBulk) SetPerceptualHashVersion(v int) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetPerceptualHashVersion(v)
	})
}

// AddPerceptualHashVersion adds v to the "perceptual_hash_version" field.
func (u *AssetUpsertBulk) AddPerceptualHashVersion(v int) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddPerceptualHashVersion(v)
	})
}

// UpdatePerceptualHashVersion sets the "perceptual_hash_version" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdatePerceptualHashVersion() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePerceptualHashVersion()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *AssetUpsertBulk) SetSourceURL(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateSourceURL() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateSourceURL()
	})
}

// ClearSourceURL clears the value of the "source_url" field.
func (u *AssetUpsertBulk) ClearSourceURL() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearSourceURL()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *AssetUpsertBulk) SetStorageKey(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateStorageKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateStorageKey()
	})
}

// ClearStorageKey clears the value of the "storage_key" field.
func (u *AssetUpsertBulk) ClearStorageKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearStorageKey()
	})
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (u *AssetUpsertBulk) SetThumbnailKey(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetThumbnailKey(v)
	})
}

// UpdateThumbnailKey sets the "thumbnail_key" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateThumbnailKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateThumbnailKey()
	})
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (u *AssetUpsertBulk) ClearThumbnailKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearThumbnailKey()
	})
}

// SetPreviewKey sets the "preview_key" field.
func (u *AssetUpsertBulk) SetPreviewKey(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetPreviewKey(v)
	})
}

// UpdatePreviewKey sets the "preview_key" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdatePreviewKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePreviewKey()
	})
}

// ClearPreviewKey clears the value of the "preview_key" field.
func (u *AssetUpsertBulk) ClearPreviewKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearPreviewKey()
	})
}

// SetLocalPath sets the "local_path" field.
func (u *AssetUpsertBulk) SetLocalPath(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetLocalPath(v)
	})
}

// UpdateLocalPath sets the "local_path" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateLocalPath() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateLocalPath()
	})
}

// ClearLocalPath clears the value of the "local_path" field.
func (u *AssetUpsertBulk) ClearLocalPath() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearLocalPath()
	})
}

// SetSize sets the "size" field.
func (u *AssetUpsertBulk) SetSize(v int64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *AssetUpsertBulk) AddSize(v int64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateSize() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateSize()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *AssetUpsertBulk) SetMimeType(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateMimeType() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AssetUpsertBulk) ClearMimeType() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMimeType()
	})
}

// SetProviderMap sets the "provider_map" field.
func (u *AssetUpsertBulk) SetProviderMap(v model.StringMap) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderMap(v)
	})
}

// UpdateProviderMap sets the "provider_map" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateProviderMap() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderMap()
	})
}

// ClearProviderMap clears the value of the "provider_map" field.
func (u *AssetUpsertBulk) ClearProviderMap() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderMap()
	})
}

// SetGenerationID sets the "generation_id" field.
func (u *AssetUpsertBulk) SetGenerationID(v uint) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetGenerationID(v)
	})
}

// UpdateGenerationID sets the "generation_id" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateGenerationID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateGenerationID()
	})
}

// ClearGenerationID clears the value of the "generation_id" field.
func (u *AssetUpsertBulk) ClearGenerationID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearGenerationID()
	})
}

// SetIngestStatus sets the "ingest_status" field.
func (u *AssetUpsertBulk) SetIngestStatus(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetIngestStatus(v)
	})
}

// UpdateIngestStatus sets the "ingest_status" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateIngestStatus() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateIngestStatus()
	})
}

// SetDownloadedAt sets the "downloaded_at" field.
func (u *AssetUpsertBulk) SetDownloadedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetDownloadedAt(v)
	})
}

// UpdateDownloadedAt sets the "downloaded_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateDownloadedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateDownloadedAt()
	})
}

// ClearDownloadedAt clears the value of the "downloaded_at" field.
func (u *AssetUpsertBulk) ClearDownloadedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearDownloadedAt()
	})
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (u *AssetUpsertBulk) SetMetadataExtractedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetMetadataExtractedAt(v)
	})
}

// UpdateMetadataExtractedAt sets the "metadata_extracted_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateMetadataExtractedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMetadataExtractedAt()
	})
}

// ClearMetadataExtractedAt clears the value of the "metadata_extracted_at" field.
func (u *AssetUpsertBulk) ClearMetadataExtractedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMetadataExtractedAt()
	})
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (u *AssetUpsertBulk) SetThumbnailGeneratedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetThumbnailGeneratedAt(v)
	})
}

// UpdateThumbnailGeneratedAt sets the "thumbnail_generated_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateThumbnailGeneratedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateThumbnailGeneratedAt()
	})
}

// ClearThumbnailGeneratedAt clears the value of the "thumbnail_generated_at" field.
func (u *AssetUpsertBulk) ClearThumbnailGeneratedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearThumbnailGeneratedAt()
	})
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (u *AssetUpsertBulk) SetPreviewGeneratedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetPreviewGeneratedAt(v)
	})
}

// UpdatePreviewGeneratedAt sets the "preview_generated_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdatePreviewGeneratedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdatePreviewGeneratedAt()
	})
}

// ClearPreviewGeneratedAt clears the value of the "preview_generated_at" field.
func (u *AssetUpsertBulk) ClearPreviewGeneratedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearPreviewGeneratedAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *AssetUpsertBulk) SetLastError(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateLastError() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *AssetUpsertBulk) ClearLastError() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *AssetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AssetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
