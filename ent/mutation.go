// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediaflow/ent/asset"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
	"github.com/anzhiyu-c/mediaflow/ent/metadata"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
	"github.com/anzhiyu-c/mediaflow/ent/setting"
	"github.com/anzhiyu-c/mediaflow/ent/user"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAsset       = "Asset"
	TypeContentBlob = "ContentBlob"
	TypeGeneration  = "Generation"
	TypeLineageEdge = "LineageEdge"
	TypeMetadata    = "Metadata"
	TypeSetting     = "Setting"
	TypeUser        = "User"
)

// AssetMutation represents an operation that mutates the Asset nodes in the graph.
type AssetMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uint
	created_at                 *time.Time
	updated_at                 *time.Time
	owner_id                   *uint
	addowner_id                *int
	media_kind                 *string
	provider_id                *string
	provider_asset_id          *string
	content_hash               *string
	perceptual_hash            *uint64
	addperceptual_hash         *int64
	perceptual_hash_version    *int
	addperceptual_hash_version *int
	source_url                 *string
	storage_key                *string
	thumbnail_key              *string
	preview_key                *string
	local_path                 *string
	size                       *int64
	addsize                    *int64
	mime_type                  *string
	provider_map               *model.StringMap
	ingest_status              *string
	downloaded_at              *time.Time
	metadata_extracted_at      *time.Time
	thumbnail_generated_at     *time.Time
	preview_generated_at       *time.Time
	last_error                 *string
	clearedFields              map[string]struct{}
	metadata                   map[uint]struct{}
	removedmetadata            map[uint]struct{}
	clearedmetadata            bool
	generation                 *uint
	clearedgeneration          bool
	done                       bool
	oldValue                   func(context.Context) (*Asset, error)
	predicates                 []predicate.Asset
}

var _ ent.Mutation = (*AssetMutation)(nil)

// assetOption allows management of the mutation configuration using functional options.
type assetOption func(*AssetMutation)

// newAssetMutation creates new mutation for the Asset entity.
func newAssetMutation(c config, op Op, opts ...assetOption) *AssetMutation {
	m := &AssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssetID sets the ID field of the mutation.
func withAssetID(id uint) assetOption {
	return func(m *AssetMutation) {
		var (
			err   error
			once  sync.Once
			value *Asset
		)
		m.oldValue = func(ctx context.Context) (*Asset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Asset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAsset sets the old Asset of the mutation.
func withAsset(node *Asset) assetOption {
	return func(m *AssetMutation) {
		m.oldValue = func(context.Context) (*Asset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Asset entities.
func (m *AssetMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssetMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssetMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Asset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *AssetMutation) SetOwnerID(u uint) {
	m.owner_id = &u
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AssetMutation) OwnerID() (r uint, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldOwnerID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds u to the "owner_id" field.
func (m *AssetMutation) AddOwnerID(u int) {
	if m.addowner_id != nil {
		*m.addowner_id += u
	} else {
		m.addowner_id = &u
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *AssetMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AssetMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetMediaKind sets the "media_kind" field.
func (m *AssetMutation) SetMediaKind(s string) {
	m.media_kind = &s
}

// MediaKind returns the value of the "media_kind" field in the mutation.
func (m *AssetMutation) MediaKind() (r string, exists bool) {
	v := m.media_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaKind returns the old "media_kind" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldMediaKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaKind: %w", err)
	}
	return oldValue.MediaKind, nil
}

// ResetMediaKind resets all changes to the "media_kind" field.
func (m *AssetMutation) ResetMediaKind() {
	m.media_kind = nil
}

// SetProviderID sets the "provider_id" field.
func (m *AssetMutation) SetProviderID(s string) {
	m.provider_id = &s
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *AssetMutation) ProviderID() (r string, exists bool) {
	v := m.provider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldProviderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ClearProviderID clears the value of the "provider_id" field.
func (m *AssetMutation) ClearProviderID() {
	m.provider_id = nil
	m.clearedFields[asset.FieldProviderID] = struct{}{}
}

// ProviderIDCleared returns if the "provider_id" field was cleared in this mutation.
func (m *AssetMutation) ProviderIDCleared() bool {
	_, ok := m.clearedFields[asset.FieldProviderID]
	return ok
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *AssetMutation) ResetProviderID() {
	m.provider_id = nil
	delete(m.clearedFields, asset.FieldProviderID)
}

// SetProviderAssetID sets the "provider_asset_id" field.
func (m *AssetMutation) SetProviderAssetID(s string) {
	m.provider_asset_id = &s
}

// ProviderAssetID returns the value of the "provider_asset_id" field in the mutation.
func (m *AssetMutation) ProviderAssetID() (r string, exists bool) {
	v := m.provider_asset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAssetID returns the old "provider_asset_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldProviderAssetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAssetID: %w", err)
	}
	return oldValue.ProviderAssetID, nil
}

// ClearProviderAssetID clears the value of the "provider_asset_id" field.
func (m *AssetMutation) ClearProviderAssetID() {
	m.provider_asset_id = nil
	m.clearedFields[asset.FieldProviderAssetID] = struct{}{}
}

// ProviderAssetIDCleared returns if the "provider_asset_id" field was cleared in this mutation.
func (m *AssetMutation) ProviderAssetIDCleared() bool {
	_, ok := m.clearedFields[asset.FieldProviderAssetID]
	return ok
}

// ResetProviderAssetID resets all changes to the "provider_asset_id" field.
func (m *AssetMutation) ResetProviderAssetID() {
	m.provider_asset_id = nil
	delete(m.clearedFields, asset.FieldProviderAssetID)
}

// SetContentHash sets the "content_hash" field.
func (m *AssetMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *AssetMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *AssetMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[asset.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *AssetMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[asset.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *AssetMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, asset.FieldContentHash)
}

// SetPerceptualHash sets the "perceptual_hash" field.
func (m *AssetMutation) SetPerceptualHash(u uint64) {
	m.perceptual_hash = &u
	m.addperceptual_hash = nil
}

// PerceptualHash returns the value of the "perceptual_hash" field in the mutation.
func (m *AssetMutation) PerceptualHash() (r uint64, exists bool) {
	v := m.perceptual_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPerceptualHash returns the old "perceptual_hash" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldPerceptualHash(ctx context.Context) (v *uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerceptualHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerceptualHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerceptualHash: %w", err)
	}
	return oldValue.PerceptualHash, nil
}

// AddPerceptualHash adds u to the "perceptual_hash" field.
func (m *AssetMutation) AddPerceptualHash(u int64) {
	if m.addperceptual_hash != nil {
		*m.addperceptual_hash += u
	} else {
		m.addperceptual_hash = &u
	}
}

// AddedPerceptualHash returns the value that was added to the "perceptual_hash" field in this mutation.
func (m *AssetMutation) AddedPerceptualHash() (r int64, exists bool) {
	v := m.addperceptual_hash
	if v == nil {
		return
	}
	return *v, true
}

// ClearPerceptualHash clears the value of the "perceptual_hash" field.
func (m *AssetMutation) ClearPerceptualHash() {
	m.perceptual_hash = nil
	m.addperceptual_hash = nil
	m.clearedFields[asset.FieldPerceptualHash] = struct{}{}
}

// PerceptualHashCleared returns if the "perceptual_hash" field was cleared in this mutation.
func (m *AssetMutation) PerceptualHashCleared() bool {
	_, ok := m.clearedFields[asset.FieldPerceptualHash]
	return ok
}

// ResetPerceptualHash resets all changes to the "perceptual_hash" field.
func (m *AssetMutation) ResetPerceptualHash() {
	m.perceptual_hash = nil
	m.addperceptual_hash = nil
	delete(m.clearedFields, asset.FieldPerceptualHash)
}

// SetPerceptualHashVersion sets the "perceptual_hash_version" field.
func (m *AssetMutation) SetPerceptualHashVersion(i int) {
	m.perceptual_hash_version = &i
	m.addperceptual_hash_version = nil
}

// PerceptualHashVersion returns the value of the "perceptual_hash_version" field in the mutation.
func (m *AssetMutation) PerceptualHashVersion() (r int, exists bool) {
	v := m.perceptual_hash_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPerceptualHashVersion returns the old "perceptual_hash_version" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldPerceptualHashVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerceptualHashVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerceptualHashVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerceptualHashVersion: %w", err)
	}
	return oldValue.PerceptualHashVersion, nil
}

// AddPerceptualHashVersion adds i to the "perceptual_hash_version" field.
func (m *AssetMutation) AddPerceptualHashVersion(i int) {
	if m.addperceptual_hash_version != nil {
		*m.addperceptual_hash_version += i
	} else {
		m.addperceptual_hash_version = &i
	}
}

// AddedPerceptualHashVersion returns the value that was added to the "perceptual_hash_version" field in this mutation.
func (m *AssetMutation) AddedPerceptualHashVersion() (r int, exists bool) {
	v := m.addperceptual_hash_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetPerceptualHashVersion resets all changes to the "perceptual_hash_version" field.
func (m *AssetMutation) ResetPerceptualHashVersion() {
	m.perceptual_hash_version = nil
	m.addperceptual_hash_version = nil
}

// SetSourceURL sets the "source_url" field.
func (m *AssetMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *AssetMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *AssetMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[asset.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *AssetMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[asset.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *AssetMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, asset.FieldSourceURL)
}

// SetStorageKey sets the "storage_key" field.
func (m *AssetMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *AssetMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldStorageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ClearStorageKey clears the value of the "storage_key" field.
func (m *AssetMutation) ClearStorageKey() {
	m.storage_key = nil
	m.clearedFields[asset.FieldStorageKey] = struct{}{}
}

// StorageKeyCleared returns if the "storage_key" field was cleared in this mutation.
func (m *AssetMutation) StorageKeyCleared() bool {
	_, ok := m.clearedFields[asset.FieldStorageKey]
	return ok
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *AssetMutation) ResetStorageKey() {
	m.storage_key = nil
	delete(m.clearedFields, asset.FieldStorageKey)
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (m *AssetMutation) SetThumbnailKey(s string) {
	m.thumbnail_key = &s
}

// ThumbnailKey returns the value of the "thumbnail_key" field in the mutation.
func (m *AssetMutation) ThumbnailKey() (r string, exists bool) {
	v := m.thumbnail_key
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailKey returns the old "thumbnail_key" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldThumbnailKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailKey: %w", err)
	}
	return oldValue.ThumbnailKey, nil
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (m *AssetMutation) ClearThumbnailKey() {
	m.thumbnail_key = nil
	m.clearedFields[asset.FieldThumbnailKey] = struct{}{}
}

// ThumbnailKeyCleared returns if the "thumbnail_key" field was cleared in this mutation.
func (m *AssetMutation) ThumbnailKeyCleared() bool {
	_, ok := m.clearedFields[asset.FieldThumbnailKey]
	return ok
}

// ResetThumbnailKey resets all changes to the "thumbnail_key" field.
func (m *AssetMutation) ResetThumbnailKey() {
	m.thumbnail_key = nil
	delete(m.clearedFields, asset.FieldThumbnailKey)
}

// SetPreviewKey sets the "preview_key" field.
func (m *AssetMutation) SetPreviewKey(s string) {
	m.preview_key = &s
}

// PreviewKey returns the value of the "preview_key" field in the mutation.
func (m *AssetMutation) PreviewKey() (r string, exists bool) {
	v := m.preview_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewKey returns the old "preview_key" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldPreviewKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewKey: %w", err)
	}
	return oldValue.PreviewKey, nil
}

// ClearPreviewKey clears the value of the "preview_key" field.
func (m *AssetMutation) ClearPreviewKey() {
	m.preview_key = nil
	m.clearedFields[asset.FieldPreviewKey] = struct{}{}
}

// PreviewKeyCleared returns if the "preview_key" field was cleared in this mutation.
func (m *AssetMutation) PreviewKeyCleared() bool {
	_, ok := m.clearedFields[asset.FieldPreviewKey]
	return ok
}

// ResetPreviewKey resets all changes to the "preview_key" field.
func (m *AssetMutation) ResetPreviewKey() {
	m.preview_key = nil
	delete(m.clearedFields, asset.FieldPreviewKey)
}

// SetLocalPath sets the "local_path" field.
func (m *AssetMutation) SetLocalPath(s string) {
	m.local_path = &s
}

// LocalPath returns the value of the "local_path" field in the mutation.
func (m *AssetMutation) LocalPath() (r string, exists bool) {
	v := m.local_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPath returns the old "local_path" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldLocalPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPath: %w", err)
	}
	return oldValue.LocalPath, nil
}

// ClearLocalPath clears the value of the "local_path" field.
func (m *AssetMutation) ClearLocalPath() {
	m.local_path = nil
	m.clearedFields[asset.FieldLocalPath] = struct{}{}
}

// LocalPathCleared returns if the "local_path" field was cleared in this mutation.
func (m *AssetMutation) LocalPathCleared() bool {
	_, ok := m.clearedFields[asset.FieldLocalPath]
	return ok
}

// ResetLocalPath resets all changes to the "local_path" field.
func (m *AssetMutation) ResetLocalPath() {
	m.local_path = nil
	delete(m.clearedFields, asset.FieldLocalPath)
}

// SetSize sets the "size" field.
func (m *AssetMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *AssetMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *AssetMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *AssetMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *AssetMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetMimeType sets the "mime_type" field.
func (m *AssetMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *AssetMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *AssetMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[asset.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *AssetMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[asset.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *AssetMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, asset.FieldMimeType)
}

// SetProviderMap sets the "provider_map" field.
func (m *AssetMutation) SetProviderMap(mm model.StringMap) {
	m.provider_map = &mm
}

// ProviderMap returns the value of the "provider_map" field in the mutation.
func (m *AssetMutation) ProviderMap() (r model.StringMap, exists bool) {
	v := m.provider_map
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMap returns the old "provider_map" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldProviderMap(ctx context.Context) (v model.StringMap, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMap: %w", err)
	}
	return oldValue.ProviderMap, nil
}

// ClearProviderMap clears the value of the "provider_map" field.
func (m *AssetMutation) ClearProviderMap() {
	m.provider_map = nil
	m.clearedFields[asset.FieldProviderMap] = struct{}{}
}

// ProviderMapCleared returns if the "provider_map" field was cleared in this mutation.
func (m *AssetMutation) ProviderMapCleared() bool {
	_, ok := m.clearedFields[asset.FieldProviderMap]
	return ok
}

// ResetProviderMap resets all changes to the "provider_map" field.
func (m *AssetMutation) ResetProviderMap() {
	m.provider_map = nil
	delete(m.clearedFields, asset.FieldProviderMap)
}

// SetGenerationID sets the "generation_id" field.
func (m *AssetMutation) SetGenerationID(u uint) {
	m.generation = &u
}

// GenerationID returns the value of the "generation_id" field in the mutation.
func (m *AssetMutation) GenerationID() (r uint, exists bool) {
	v := m.generation
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationID returns the old "generation_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldGenerationID(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationID: %w", err)
	}
	return oldValue.GenerationID, nil
}

// ClearGenerationID clears the value of the "generation_id" field.
func (m *AssetMutation) ClearGenerationID() {
	m.generation = nil
	m.clearedFields[asset.FieldGenerationID] = struct{}{}
}

// GenerationIDCleared returns if the "generation_id" field was cleared in this mutation.
func (m *AssetMutation) GenerationIDCleared() bool {
	_, ok := m.clearedFields[asset.FieldGenerationID]
	return ok
}

// ResetGenerationID resets all changes to the "generation_id" field.
func (m *AssetMutation) ResetGenerationID() {
	m.generation = nil
	delete(m.clearedFields, asset.FieldGenerationID)
}

// SetIngestStatus sets the "ingest_status" field.
func (m *AssetMutation) SetIngestStatus(s string) {
	m.ingest_status = &s
}

// IngestStatus returns the value of the "ingest_status" field in the mutation.
func (m *AssetMutation) IngestStatus() (r string, exists bool) {
	v := m.ingest_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestStatus returns the old "ingest_status" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldIngestStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestStatus: %w", err)
	}
	return oldValue.IngestStatus, nil
}

// ResetIngestStatus resets all changes to the "ingest_status" field.
func (m *AssetMutation) ResetIngestStatus() {
	m.ingest_status = nil
}

// SetDownloadedAt sets the "downloaded_at" field.
func (m *AssetMutation) SetDownloadedAt(t time.Time) {
	m.downloaded_at = &t
}

// DownloadedAt returns the value of the "downloaded_at" field in the mutation.
func (m *AssetMutation) DownloadedAt() (r time.Time, exists bool) {
	v := m.downloaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloadedAt returns the old "downloaded_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldDownloadedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloadedAt: %w", err)
	}
	return oldValue.DownloadedAt, nil
}

// ClearDownloadedAt clears the value of the "downloaded_at" field.
func (m *AssetMutation) ClearDownloadedAt() {
	m.downloaded_at = nil
	m.clearedFields[asset.FieldDownloadedAt] = struct{}{}
}

// DownloadedAtCleared returns if the "downloaded_at" field was cleared in this mutation.
func (m *AssetMutation) DownloadedAtCleared() bool {
	_, ok := m.clearedFields[asset.FieldDownloadedAt]
	return ok
}

// ResetDownloadedAt resets all changes to the "downloaded_at" field.
func (m *AssetMutation) ResetDownloadedAt() {
	m.downloaded_at = nil
	delete(m.clearedFields, asset.FieldDownloadedAt)
}

// SetMetadataExtractedAt sets the "metadata_extracted_at" field.
func (m *AssetMutation) SetMetadataExtractedAt(t time.Time) {
	m.metadata_extracted_at = &t
}

// MetadataExtractedAt returns the value of the "metadata_extracted_at" field in the mutation.
func (m *AssetMutation) MetadataExtractedAt() (r time.Time, exists bool) {
	v := m.metadata_extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataExtractedAt returns the old "metadata_extracted_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldMetadataExtractedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataExtractedAt: %w", err)
	}
	return oldValue.MetadataExtractedAt, nil
}

// ClearMetadataExtractedAt clears the value of the "metadata_extracted_at" field.
func (m *AssetMutation) ClearMetadataExtractedAt() {
	m.metadata_extracted_at = nil
	m.clearedFields[asset.FieldMetadataExtractedAt] = struct{}{}
}

// MetadataExtractedAtCleared returns if the "metadata_extracted_at" field was cleared in this mutation.
func (m *AssetMutation) MetadataExtractedAtCleared() bool {
	_, ok := m.clearedFields[asset.FieldMetadataExtractedAt]
	return ok
}

// ResetMetadataExtractedAt resets all changes to the "metadata_extracted_at" field.
func (m *AssetMutation) ResetMetadataExtractedAt() {
	m.metadata_extracted_at = nil
	delete(m.clearedFields, asset.FieldMetadataExtractedAt)
}

// SetThumbnailGeneratedAt sets the "thumbnail_generated_at" field.
func (m *AssetMutation) SetThumbnailGeneratedAt(t time.Time) {
	m.thumbnail_generated_at = &t
}

// ThumbnailGeneratedAt returns the value of the "thumbnail_generated_at" field in the mutation.
func (m *AssetMutation) ThumbnailGeneratedAt() (r time.Time, exists bool) {
	v := m.thumbnail_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailGeneratedAt returns the old "thumbnail_generated_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldThumbnailGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailGeneratedAt: %w", err)
	}
	return oldValue.ThumbnailGeneratedAt, nil
}

// ClearThumbnailGeneratedAt clears the value of the "thumbnail_generated_at" field.
func (m *AssetMutation) ClearThumbnailGeneratedAt() {
	m.thumbnail_generated_at = nil
	m.clearedFields[asset.FieldThumbnailGeneratedAt] = struct{}{}
}

// ThumbnailGeneratedAtCleared returns if the "thumbnail_generated_at" field was cleared in this mutation.
func (m *AssetMutation) ThumbnailGeneratedAtCleared() bool {
	_, ok := m.clearedFields[asset.FieldThumbnailGeneratedAt]
	return ok
}

// ResetThumbnailGeneratedAt resets all changes to the "thumbnail_generated_at" field.
func (m *AssetMutation) ResetThumbnailGeneratedAt() {
	m.thumbnail_generated_at = nil
	delete(m.clearedFields, asset.FieldThumbnailGeneratedAt)
}

// SetPreviewGeneratedAt sets the "preview_generated_at" field.
func (m *AssetMutation) SetPreviewGeneratedAt(t time.Time) {
	m.preview_generated_at = &t
}

// PreviewGeneratedAt returns the value of the "preview_generated_at" field in the mutation.
func (m *AssetMutation) PreviewGeneratedAt() (r time.Time, exists bool) {
	v := m.preview_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewGeneratedAt returns the old "preview_generated_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldPreviewGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewGeneratedAt: %w", err)
	}
	return oldValue.PreviewGeneratedAt, nil
}

// ClearPreviewGeneratedAt clears the value of the "preview_generated_at" field.
func (m *AssetMutation) ClearPreviewGeneratedAt() {
	m.preview_generated_at = nil
	m.clearedFields[asset.FieldPreviewGeneratedAt] = struct{}{}
}

// PreviewGeneratedAtCleared returns if the "preview_generated_at" field was cleared in this mutation.
func (m *AssetMutation) PreviewGeneratedAtCleared() bool {
	_, ok := m.clearedFields[asset.FieldPreviewGeneratedAt]
	return ok
}

// ResetPreviewGeneratedAt resets all changes to the "preview_generated_at" field.
func (m *AssetMutation) ResetPreviewGeneratedAt() {
	m.preview_generated_at = nil
	delete(m.clearedFields, asset.FieldPreviewGeneratedAt)
}

// SetLastError sets the "last_error" field.
func (m *AssetMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *AssetMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *AssetMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[asset.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *AssetMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[asset.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *AssetMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, asset.FieldLastError)
}

// AddMetadatumIDs adds the "metadata" edge to the Metadata entity by ids.
func (m *AssetMutation) AddMetadatumIDs(ids ...uint) {
	if m.metadata == nil {
		m.metadata = make(map[uint]struct{})
	}
	for i := range ids {
		m.metadata[ids[i]] = struct{}{}
	}
}

// ClearMetadata clears the "metadata" edge to the Metadata entity.
func (m *AssetMutation) ClearMetadata() {
	m.clearedmetadata = true
}

// MetadataCleared reports if the "metadata" edge to the Metadata entity was cleared.
func (m *AssetMutation) MetadataCleared() bool {
	return m.clearedmetadata
}

// RemoveMetadatumIDs removes the "metadata" edge to the Metadata entity by IDs.
func (m *AssetMutation) RemoveMetadatumIDs(ids ...uint) {
	if m.removedmetadata == nil {
		m.removedmetadata = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.metadata, ids[i])
		m.removedmetadata[ids[i]] = struct{}{}
	}
}

// RemovedMetadata returns the removed IDs of the "metadata" edge to the Metadata entity.
func (m *AssetMutation) RemovedMetadataIDs() (ids []uint) {
	for id := range m.removedmetadata {
		ids = append(ids, id)
	}
	return
}

// MetadataIDs returns the "metadata" edge IDs in the mutation.
func (m *AssetMutation) MetadataIDs() (ids []uint) {
	for id := range m.metadata {
		ids = append(ids, id)
	}
	return
}

// ResetMetadata resets all changes to the "metadata" edge.
func (m *AssetMutation) ResetMetadata() {
	m.metadata = nil
	m.clearedmetadata = false
	m.removedmetadata = nil
}

// ClearGeneration clears the "generation" edge to the Generation entity.
func (m *AssetMutation) ClearGeneration() {
	m.clearedgeneration = true
	m.clearedFields[asset.FieldGenerationID] = struct{}{}
}

// GenerationCleared reports if the "generation" edge to the Generation entity was cleared.
func (m *AssetMutation) GenerationCleared() bool {
	return m.GenerationIDCleared() || m.clearedgeneration
}

// GenerationIDs returns the "generation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GenerationID instead. It exists only for internal usage by the builders.
func (m *AssetMutation) GenerationIDs() (ids []uint) {
	if id := m.generation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGeneration resets all changes to the "generation" edge.
func (m *AssetMutation) ResetGeneration() {
	m.generation = nil
	m.clearedgeneration = false
}

// Where appends a list predicates to the AssetMutation builder.
func (m *AssetMutation) Where(ps ...predicate.Asset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Asset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Asset).
func (m *AssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssetMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.created_at != nil {
		fields = append(fields, asset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, asset.FieldUpdatedAt)
	}
	if m.owner_id != nil {
		fields = append(fields, asset.FieldOwnerID)
	}
	if m.media_kind != nil {
		fields = append(fields, asset.FieldMediaKind)
	}
	if m.provider_id != nil {
		fields = append(fields, asset.FieldProviderID)
	}
	if m.provider_asset_id != nil {
		fields = append(fields, asset.FieldProviderAssetID)
	}
	if m.content_hash != nil {
		fields = append(fields, asset.FieldContentHash)
	}
	if m.perceptual_hash != nil {
		fields = append(fields, asset.FieldPerceptualHash)
	}
	if m.perceptual_hash_version != nil {
		fields = append(fields, asset.FieldPerceptualHashVersion)
	}
	if m.source_url != nil {
		fields = append(fields, asset.FieldSourceURL)
	}
	if m.storage_key != nil {
		fields = append(fields, asset.FieldStorageKey)
	}
	if m.thumbnail_key != nil {
		fields = append(fields, asset.FieldThumbnailKey)
	}
	if m.preview_key != nil {
		fields = append(fields, asset.FieldPreviewKey)
	}
	if m.local_path != nil {
		fields = append(fields, asset.FieldLocalPath)
	}
	if m.size != nil {
		fields = append(fields, asset.FieldSize)
	}
	if m.mime_type != nil {
		fields = append(fields, asset.FieldMimeType)
	}
	if m.provider_map != nil {
		fields = append(fields, asset.FieldProviderMap)
	}
	if m.generation != nil {
		fields = append(fields, asset.FieldGenerationID)
	}
	if m.ingest_status != nil {
		fields = append(fields, asset.FieldIngestStatus)
	}
	if m.downloaded_at != nil {
		fields = append(fields, asset.FieldDownloadedAt)
	}
	if m.metadata_extracted_at != nil {
		fields = append(fields, asset.FieldMetadataExtractedAt)
	}
	if m.thumbnail_generated_at != nil {
		fields = append(fields, asset.FieldThumbnailGeneratedAt)
	}
	if m.preview_generated_at != nil {
		fields = append(fields, asset.FieldPreviewGeneratedAt)
	}
	if m.last_error != nil {
		fields = append(fields, asset.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldCreatedAt:
		return m.CreatedAt()
	case asset.FieldUpdatedAt:
		return m.UpdatedAt()
	case asset.FieldOwnerID:
		return m.OwnerID()
	case asset.FieldMediaKind:
		return m.MediaKind()
	case asset.FieldProviderID:
		return m.ProviderID()
	case asset.FieldProviderAssetID:
		return m.ProviderAssetID()
	case asset.FieldContentHash:
		return m.ContentHash()
	case asset.FieldPerceptualHash:
		return m.PerceptualHash()
	case asset.FieldPerceptualHashVersion:
		return m.PerceptualHashVersion()
	case asset.FieldSourceURL:
		return m.SourceURL()
	case asset.FieldStorageKey:
		return m.StorageKey()
	case asset.FieldThumbnailKey:
		return m.ThumbnailKey()
	case asset.FieldPreviewKey:
		return m.PreviewKey()
	case asset.FieldLocalPath:
		return m.LocalPath()
	case asset.FieldSize:
		return m.Size()
	case asset.FieldMimeType:
		return m.MimeType()
	case asset.FieldProviderMap:
		return m.ProviderMap()
	case asset.FieldGenerationID:
		return m.GenerationID()
	case asset.FieldIngestStatus:
		return m.IngestStatus()
	case asset.FieldDownloadedAt:
		return m.DownloadedAt()
	case asset.FieldMetadataExtractedAt:
		return m.MetadataExtractedAt()
	case asset.FieldThumbnailGeneratedAt:
		return m.ThumbnailGeneratedAt()
	case asset.FieldPreviewGeneratedAt:
		return m.PreviewGeneratedAt()
	case asset.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case asset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case asset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case asset.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case asset.FieldMediaKind:
		return m.OldMediaKind(ctx)
	case asset.FieldProviderID:
		return m.OldProviderID(ctx)
	case asset.FieldProviderAssetID:
		return m.OldProviderAssetID(ctx)
	case asset.FieldContentHash:
		return m.OldContentHash(ctx)
	case asset.FieldPerceptualHash:
		return m.OldPerceptualHash(ctx)
	case asset.FieldPerceptualHashVersion:
		return m.OldPerceptualHashVersion(ctx)
	case asset.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case asset.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case asset.FieldThumbnailKey:
		return m.OldThumbnailKey(ctx)
	case asset.FieldPreviewKey:
		return m.OldPreviewKey(ctx)
	case asset.FieldLocalPath:
		return m.OldLocalPath(ctx)
	case asset.FieldSize:
		return m.OldSize(ctx)
	case asset.FieldMimeType:
		return m.OldMimeType(ctx)
	case asset.FieldProviderMap:
		return m.OldProviderMap(ctx)
	case asset.FieldGenerationID:
		return m.OldGenerationID(ctx)
	case asset.FieldIngestStatus:
		return m.OldIngestStatus(ctx)
	case asset.FieldDownloadedAt:
		return m.OldDownloadedAt(ctx)
	case asset.FieldMetadataExtractedAt:
		return m.OldMetadataExtractedAt(ctx)
	case asset.FieldThumbnailGeneratedAt:
		return m.OldThumbnailGeneratedAt(ctx)
	case asset.FieldPreviewGeneratedAt:
		return m.OldPreviewGeneratedAt(ctx)
	case asset.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown Asset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case asset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case asset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case asset.FieldOwnerID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case asset.FieldMediaKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaKind(v)
		return nil
	case asset.FieldProviderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case asset.FieldProviderAssetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAssetID(v)
		return nil
	case asset.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case asset.FieldPerceptualHash:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerceptualHash(v)
		return nil
	case asset.FieldPerceptualHashVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerceptualHashVersion(v)
		return nil
	case asset.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case asset.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case asset.FieldThumbnailKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailKey(v)
		return nil
	case asset.FieldPreviewKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewKey(v)
		return nil
	case asset.FieldLocalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPath(v)
		return nil
	case asset.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case asset.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case asset.FieldProviderMap:
		v, ok := value.(model.StringMap)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMap(v)
		return nil
	case asset.FieldGenerationID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationID(v)
		return nil
	case asset.FieldIngestStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestStatus(v)
		return nil
	case asset.FieldDownloadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloadedAt(v)
		return nil
	case asset.FieldMetadataExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataExtractedAt(v)
		return nil
	case asset.FieldThumbnailGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailGeneratedAt(v)
		return nil
	case asset.FieldPreviewGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewGeneratedAt(v)
		return nil
	case asset.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssetMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, asset.FieldOwnerID)
	}
	if m.addperceptual_hash != nil {
		fields = append(fields, asset.FieldPerceptualHash)
	}
	if m.addperceptual_hash_version != nil {
		fields = append(fields, asset.FieldPerceptualHashVersion)
	}
	if m.addsize != nil {
		fields = append(fields, asset.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldOwnerID:
		return m.AddedOwnerID()
	case asset.FieldPerceptualHash:
		return m.AddedPerceptualHash()
	case asset.FieldPerceptualHashVersion:
		return m.AddedPerceptualHashVersion()
	case asset.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case asset.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	case asset.FieldPerceptualHash:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerceptualHash(v)
		return nil
	case asset.FieldPerceptualHashVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerceptualHashVersion(v)
		return nil
	case asset.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown Asset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(asset.FieldProviderID) {
		fields = append(fields, asset.FieldProviderID)
	}
	if m.FieldCleared(asset.FieldProviderAssetID) {
		fields = append(fields, asset.FieldProviderAssetID)
	}
	if m.FieldCleared(asset.FieldContentHash) {
		fields = append(fields, asset.FieldContentHash)
	}
	if m.FieldCleared(asset.FieldPerceptualHash) {
		fields = append(fields, asset.FieldPerceptualHash)
	}
	if m.FieldCleared(asset.FieldSourceURL) {
		fields = append(fields, asset.FieldSourceURL)
	}
	if m.FieldCleared(asset.FieldStorageKey) {
		fields = append(fields, asset.FieldStorageKey)
	}
	if m.FieldCleared(asset.FieldThumbnailKey) {
		fields = append(fields, asset.FieldThumbnailKey)
	}
	if m.FieldCleared(asset.FieldPreviewKey) {
		fields = append(fields, asset.FieldPreviewKey)
	}
	if m.FieldCleared(asset.FieldLocalPath) {
		fields = append(fields, asset.FieldLocalPath)
	}
	if m.FieldCleared(asset.FieldMimeType) {
		fields = append(fields, asset.FieldMimeType)
	}
	if m.FieldCleared(asset.FieldProviderMap) {
		fields = append(fields, asset.FieldProviderMap)
	}
	if m.FieldCleared(asset.FieldGenerationID) {
		fields = append(fields, asset.FieldGenerationID)
	}
	if m.FieldCleared(asset.FieldDownloadedAt) {
		fields = append(fields, asset.FieldDownloadedAt)
	}
	if m.FieldCleared(asset.FieldMetadataExtractedAt) {
		fields = append(fields, asset.FieldMetadataExtractedAt)
	}
	if m.FieldCleared(asset.FieldThumbnailGeneratedAt) {
		fields = append(fields, asset.FieldThumbnailGeneratedAt)
	}
	if m.FieldCleared(asset.FieldPreviewGeneratedAt) {
		fields = append(fields, asset.FieldPreviewGeneratedAt)
	}
	if m.FieldCleared(asset.FieldLastError) {
		fields = append(fields, asset.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssetMutation) ClearField(name string) error {
	switch name {
	case asset.FieldProviderID:
		m.ClearProviderID()
		return nil
	case asset.FieldProviderAssetID:
		m.ClearProviderAssetID()
		return nil
	case asset.FieldContentHash:
		m.ClearContentHash()
		return nil
	case asset.FieldPerceptualHash:
		m.ClearPerceptualHash()
		return nil
	case asset.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case asset.FieldStorageKey:
		m.ClearStorageKey()
		return nil
	case asset.FieldThumbnailKey:
		m.ClearThumbnailKey()
		return nil
	case asset.FieldPreviewKey:
		m.ClearPreviewKey()
		return nil
	case asset.FieldLocalPath:
		m.ClearLocalPath()
		return nil
	case asset.FieldMimeType:
		m.ClearMimeType()
		return nil
	case asset.FieldProviderMap:
		m.ClearProviderMap()
		return nil
	case asset.FieldGenerationID:
		m.ClearGenerationID()
		return nil
	case asset.FieldDownloadedAt:
		m.ClearDownloadedAt()
		return nil
	case asset.FieldMetadataExtractedAt:
		m.ClearMetadataExtractedAt()
		return nil
	case asset.FieldThumbnailGeneratedAt:
		m.ClearThumbnailGeneratedAt()
		return nil
	case asset.FieldPreviewGeneratedAt:
		m.ClearPreviewGeneratedAt()
		return nil
	case asset.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Asset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssetMutation) ResetField(name string) error {
	switch name {
	case asset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case asset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case asset.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case asset.FieldMediaKind:
		m.ResetMediaKind()
		return nil
	case asset.FieldProviderID:
		m.ResetProviderID()
		return nil
	case asset.FieldProviderAssetID:
		m.ResetProviderAssetID()
		return nil
	case asset.FieldContentHash:
		m.ResetContentHash()
		return nil
	case asset.FieldPerceptualHash:
		m.ResetPerceptualHash()
		return nil
	case asset.FieldPerceptualHashVersion:
		m.ResetPerceptualHashVersion()
		return nil
	case asset.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case asset.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case asset.FieldThumbnailKey:
		m.ResetThumbnailKey()
		return nil
	case asset.FieldPreviewKey:
		m.ResetPreviewKey()
		return nil
	case asset.FieldLocalPath:
		m.ResetLocalPath()
		return nil
	case asset.FieldSize:
		m.ResetSize()
		return nil
	case asset.FieldMimeType:
		m.ResetMimeType()
		return nil
	case asset.FieldProviderMap:
		m.ResetProviderMap()
		return nil
	case asset.FieldGenerationID:
		m.ResetGenerationID()
		return nil
	case asset.FieldIngestStatus:
		m.ResetIngestStatus()
		return nil
	case asset.FieldDownloadedAt:
		m.ResetDownloadedAt()
		return nil
	case asset.FieldMetadataExtractedAt:
		m.ResetMetadataExtractedAt()
		return nil
	case asset.FieldThumbnailGeneratedAt:
		m.ResetThumbnailGeneratedAt()
		return nil
	case asset.FieldPreviewGeneratedAt:
		m.ResetPreviewGeneratedAt()
		return nil
	case asset.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.metadata != nil {
		edges = append(edges, asset.EdgeMetadata)
	}
	if m.generation != nil {
		edges = append(edges, asset.EdgeGeneration)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case asset.EdgeMetadata:
		ids := make([]ent.Value, 0, len(m.metadata))
		for id := range m.metadata {
			ids = append(ids, id)
		}
		return ids
	case asset.EdgeGeneration:
		if id := m.generation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmetadata != nil {
		edges = append(edges, asset.EdgeMetadata)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case asset.EdgeMetadata:
		ids := make([]ent.Value, 0, len(m.removedmetadata))
		for id := range m.removedmetadata {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmetadata {
		edges = append(edges, asset.EdgeMetadata)
	}
	if m.clearedgeneration {
		edges = append(edges, asset.EdgeGeneration)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssetMutation) EdgeCleared(name string) bool {
	switch name {
	case asset.EdgeMetadata:
		return m.clearedmetadata
	case asset.EdgeGeneration:
		return m.clearedgeneration
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssetMutation) ClearEdge(name string) error {
	switch name {
	case asset.EdgeGeneration:
		m.ClearGeneration()
		return nil
	}
	return fmt.Errorf("unknown Asset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssetMutation) ResetEdge(name string) error {
	switch name {
	case asset.EdgeMetadata:
		m.ResetMetadata()
		return nil
	case asset.EdgeGeneration:
		m.ResetGeneration()
		return nil
	}
	return fmt.Errorf("unknown Asset edge %s", name)
}

// ContentBlobMutation represents an operation that mutates the ContentBlob nodes in the graph.
type ContentBlobMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	content_hash  *string
	size          *int64
	addsize       *int64
	mime_type     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ContentBlob, error)
	predicates    []predicate.ContentBlob
}

var _ ent.Mutation = (*ContentBlobMutation)(nil)

// contentblobOption allows management of the mutation configuration using functional options.
type contentblobOption func(*ContentBlobMutation)

// newContentBlobMutation creates new mutation for the ContentBlob entity.
func newContentBlobMutation(c config, op Op, opts ...contentblobOption) *ContentBlobMutation {
	m := &ContentBlobMutation{
		config:        c,
		op:            op,
		typ:           TypeContentBlob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentBlobID sets the ID field of the mutation.
func withContentBlobID(id uint) contentblobOption {
	return func(m *ContentBlobMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentBlob
		)
		m.oldValue = func(ctx context.Context) (*ContentBlob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentBlob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentBlob sets the old ContentBlob of the mutation.
func withContentBlob(node *ContentBlob) contentblobOption {
	return func(m *ContentBlobMutation) {
		m.oldValue = func(context.Context) (*ContentBlob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentBlobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentBlobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentBlob entities.
func (m *ContentBlobMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentBlobMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentBlobMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentBlob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ContentBlobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContentBlobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContentBlobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ContentBlobMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ContentBlobMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ContentBlobMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSize sets the "size" field.
func (m *ContentBlobMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *ContentBlobMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *ContentBlobMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *ContentBlobMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *ContentBlobMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ContentBlobMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ContentBlobMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *ContentBlobMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[contentblob.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *ContentBlobMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[contentblob.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ContentBlobMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, contentblob.FieldMimeType)
}

// Where appends a list predicates to the ContentBlobMutation builder.
func (m *ContentBlobMutation) Where(ps ...predicate.ContentBlob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentBlobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentBlobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentBlob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentBlobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentBlobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentBlob).
func (m *ContentBlobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentBlobMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, contentblob.FieldCreatedAt)
	}
	if m.content_hash != nil {
		fields = append(fields, contentblob.FieldContentHash)
	}
	if m.size != nil {
		fields = append(fields, contentblob.FieldSize)
	}
	if m.mime_type != nil {
		fields = append(fields, contentblob.FieldMimeType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentBlobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentblob.FieldCreatedAt:
		return m.CreatedAt()
	case contentblob.FieldContentHash:
		return m.ContentHash()
	case contentblob.FieldSize:
		return m.Size()
	case contentblob.FieldMimeType:
		return m.MimeType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentBlobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentblob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contentblob.FieldContentHash:
		return m.OldContentHash(ctx)
	case contentblob.FieldSize:
		return m.OldSize(ctx)
	case contentblob.FieldMimeType:
		return m.OldMimeType(ctx)
	}
	return nil, fmt.Errorf("unknown ContentBlob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentBlobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentblob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contentblob.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case contentblob.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case contentblob.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	}
	return fmt.Errorf("unknown ContentBlob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentBlobMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, contentblob.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentBlobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contentblob.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentBlobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contentblob.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown ContentBlob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentBlobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentblob.FieldMimeType) {
		fields = append(fields, contentblob.FieldMimeType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentBlobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentBlobMutation) ClearField(name string) error {
	switch name {
	case contentblob.FieldMimeType:
		m.ClearMimeType()
		return nil
	}
	return fmt.Errorf("unknown ContentBlob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentBlobMutation) ResetField(name string) error {
	switch name {
	case contentblob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contentblob.FieldContentHash:
		m.ResetContentHash()
		return nil
	case contentblob.FieldSize:
		m.ResetSize()
		return nil
	case contentblob.FieldMimeType:
		m.ResetMimeType()
		return nil
	}
	return fmt.Errorf("unknown ContentBlob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentBlobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentBlobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentBlobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentBlobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentBlobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentBlobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentBlobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContentBlob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentBlobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContentBlob edge %s", name)
}

// GenerationMutation represents an operation that mutates the Generation nodes in the graph.
type GenerationMutation struct {
	config
	op               Op
	typ              string
	id               *uint
	created_at       *time.Time
	owner_id         *uint
	addowner_id      *int
	operation_type   *string
	canonical_params *model.JSONMap
	inputs           *[]string
	appendinputs     []string
	repro_hash       *string
	clearedFields    map[string]struct{}
	assets           map[uint]struct{}
	removedassets    map[uint]struct{}
	clearedassets    bool
	done             bool
	oldValue         func(context.Context) (*Generation, error)
	predicates       []predicate.Generation
}

var _ ent.Mutation = (*GenerationMutation)(nil)

// generationOption allows management of the mutation configuration using functional options.
type generationOption func(*GenerationMutation)

// newGenerationMutation creates new mutation for the Generation entity.
func newGenerationMutation(c config, op Op, opts ...generationOption) *GenerationMutation {
	m := &GenerationMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationID sets the ID field of the mutation.
func withGenerationID(id uint) generationOption {
	return func(m *GenerationMutation) {
		var (
			err   error
			once  sync.Once
			value *Generation
		)
		m.oldValue = func(ctx context.Context) (*Generation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Generation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneration sets the old Generation of the mutation.
func withGeneration(node *Generation) generationOption {
	return func(m *GenerationMutation) {
		m.oldValue = func(context.Context) (*Generation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Generation entities.
func (m *GenerationMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Generation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *GenerationMutation) SetOwnerID(u uint) {
	m.owner_id = &u
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *GenerationMutation) OwnerID() (r uint, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldOwnerID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds u to the "owner_id" field.
func (m *GenerationMutation) AddOwnerID(u int) {
	if m.addowner_id != nil {
		*m.addowner_id += u
	} else {
		m.addowner_id = &u
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *GenerationMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *GenerationMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetOperationType sets the "operation_type" field.
func (m *GenerationMutation) SetOperationType(s string) {
	m.operation_type = &s
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *GenerationMutation) OperationType() (r string, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldOperationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *GenerationMutation) ResetOperationType() {
	m.operation_type = nil
}

// SetCanonicalParams sets the "canonical_params" field.
func (m *GenerationMutation) SetCanonicalParams(mm model.JSONMap) {
	m.canonical_params = &mm
}

// CanonicalParams returns the value of the "canonical_params" field in the mutation.
func (m *GenerationMutation) CanonicalParams() (r model.JSONMap, exists bool) {
	v := m.canonical_params
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalParams returns the old "canonical_params" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldCanonicalParams(ctx context.Context) (v model.JSONMap, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalParams: %w", err)
	}
	return oldValue.CanonicalParams, nil
}

// ClearCanonicalParams clears the value of the "canonical_params" field.
func (m *GenerationMutation) ClearCanonicalParams() {
	m.canonical_params = nil
	m.clearedFields[generation.FieldCanonicalParams] = struct{}{}
}

// CanonicalParamsCleared returns if the "canonical_params" field was cleared in this mutation.
func (m *GenerationMutation) CanonicalParamsCleared() bool {
	_, ok := m.clearedFields[generation.FieldCanonicalParams]
	return ok
}

// ResetCanonicalParams resets all changes to the "canonical_params" field.
func (m *GenerationMutation) ResetCanonicalParams() {
	m.canonical_params = nil
	delete(m.clearedFields, generation.FieldCanonicalParams)
}

// SetInputs sets the "inputs" field.
func (m *GenerationMutation) SetInputs(s []string) {
	m.inputs = &s
	m.appendinputs = nil
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *GenerationMutation) Inputs() (r []string, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldInputs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// AppendInputs adds s to the "inputs" field.
func (m *GenerationMutation) AppendInputs(s []string) {
	m.appendinputs = append(m.appendinputs, s...)
}

// AppendedInputs returns the list of values that were appended to the "inputs" field in this mutation.
func (m *GenerationMutation) AppendedInputs() ([]string, bool) {
	if len(m.appendinputs) == 0 {
		return nil, false
	}
	return m.appendinputs, true
}

// ClearInputs clears the value of the "inputs" field.
func (m *GenerationMutation) ClearInputs() {
	m.inputs = nil
	m.appendinputs = nil
	m.clearedFields[generation.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *GenerationMutation) InputsCleared() bool {
	_, ok := m.clearedFields[generation.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *GenerationMutation) ResetInputs() {
	m.inputs = nil
	m.appendinputs = nil
	delete(m.clearedFields, generation.FieldInputs)
}

// SetReproHash sets the "repro_hash" field.
func (m *GenerationMutation) SetReproHash(s string) {
	m.repro_hash = &s
}

// ReproHash returns the value of the "repro_hash" field in the mutation.
func (m *GenerationMutation) ReproHash() (r string, exists bool) {
	v := m.repro_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldReproHash returns the old "repro_hash" field's value of the Generation entity.
// If the Generation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMutation) OldReproHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReproHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReproHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReproHash: %w", err)
	}
	return oldValue.ReproHash, nil
}

// ResetReproHash resets all changes to the "repro_hash" field.
func (m *GenerationMutation) ResetReproHash() {
	m.repro_hash = nil
}

// AddAssetIDs adds the "assets" edge to the Asset entity by ids.
func (m *GenerationMutation) AddAssetIDs(ids ...uint) {
	if m.assets == nil {
		m.assets = make(map[uint]struct{})
	}
	for i := range ids {
		m.assets[ids[i]] = struct{}{}
	}
}

// ClearAssets clears the "assets" edge to the Asset entity.
func (m *GenerationMutation) ClearAssets() {
	m.clearedassets = true
}

// AssetsCleared reports if the "assets" edge to the Asset entity was cleared.
func (m *GenerationMutation) AssetsCleared() bool {
	return m.clearedassets
}

// RemoveAssetIDs removes the "assets" edge to the Asset entity by IDs.
func (m *GenerationMutation) RemoveAssetIDs(ids ...uint) {
	if m.removedassets == nil {
		m.removedassets = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.assets, ids[i])
		m.removedassets[ids[i]] = struct{}{}
	}
}

// RemovedAssets returns the removed IDs of the "assets" edge to the Asset entity.
func (m *GenerationMutation) RemovedAssetsIDs() (ids []uint) {
	for id := range m.removedassets {
		ids = append(ids, id)
	}
	return
}

// AssetsIDs returns the "assets" edge IDs in the mutation.
func (m *GenerationMutation) AssetsIDs() (ids []uint) {
	for id := range m.assets {
		ids = append(ids, id)
	}
	return
}

// ResetAssets resets all changes to the "assets" edge.
func (m *GenerationMutation) ResetAssets() {
	m.assets = nil
	m.clearedassets = false
	m.removedassets = nil
}

// Where appends a list predicates to the GenerationMutation builder.
func (m *GenerationMutation) Where(ps ...predicate.Generation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Generation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Generation).
func (m *GenerationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, generation.FieldCreatedAt)
	}
	if m.owner_id != nil {
		fields = append(fields, generation.FieldOwnerID)
	}
	if m.operation_type != nil {
		fields = append(fields, generation.FieldOperationType)
	}
	if m.canonical_params != nil {
		fields = append(fields, generation.FieldCanonicalParams)
	}
	if m.inputs != nil {
		fields = append(fields, generation.FieldInputs)
	}
	if m.repro_hash != nil {
		fields = append(fields, generation.FieldReproHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generation.FieldCreatedAt:
		return m.CreatedAt()
	case generation.FieldOwnerID:
		return m.OwnerID()
	case generation.FieldOperationType:
		return m.OperationType()
	case generation.FieldCanonicalParams:
		return m.CanonicalParams()
	case generation.FieldInputs:
		return m.Inputs()
	case generation.FieldReproHash:
		return m.ReproHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generation.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case generation.FieldOperationType:
		return m.OldOperationType(ctx)
	case generation.FieldCanonicalParams:
		return m.OldCanonicalParams(ctx)
	case generation.FieldInputs:
		return m.OldInputs(ctx)
	case generation.FieldReproHash:
		return m.OldReproHash(ctx)
	}
	return nil, fmt.Errorf("unknown Generation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generation.FieldOwnerID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case generation.FieldOperationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case generation.FieldCanonicalParams:
		v, ok := value.(model.JSONMap)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalParams(v)
		return nil
	case generation.FieldInputs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case generation.FieldReproHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReproHash(v)
		return nil
	}
	return fmt.Errorf("unknown Generation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, generation.FieldOwnerID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generation.FieldOwnerID:
		return m.AddedOwnerID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generation.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	}
	return fmt.Errorf("unknown Generation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generation.FieldCanonicalParams) {
		fields = append(fields, generation.FieldCanonicalParams)
	}
	if m.FieldCleared(generation.FieldInputs) {
		fields = append(fields, generation.FieldInputs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationMutation) ClearField(name string) error {
	switch name {
	case generation.FieldCanonicalParams:
		m.ClearCanonicalParams()
		return nil
	case generation.FieldInputs:
		m.ClearInputs()
		return nil
	}
	return fmt.Errorf("unknown Generation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationMutation) ResetField(name string) error {
	switch name {
	case generation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generation.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case generation.FieldOperationType:
		m.ResetOperationType()
		return nil
	case generation.FieldCanonicalParams:
		m.ResetCanonicalParams()
		return nil
	case generation.FieldInputs:
		m.ResetInputs()
		return nil
	case generation.FieldReproHash:
		m.ResetReproHash()
		return nil
	}
	return fmt.Errorf("unknown Generation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assets != nil {
		edges = append(edges, generation.EdgeAssets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generation.EdgeAssets:
		ids := make([]ent.Value, 0, len(m.assets))
		for id := range m.assets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedassets != nil {
		edges = append(edges, generation.EdgeAssets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case generation.EdgeAssets:
		ids := make([]ent.Value, 0, len(m.removedassets))
		for id := range m.removedassets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassets {
		edges = append(edges, generation.EdgeAssets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationMutation) EdgeCleared(name string) bool {
	switch name {
	case generation.EdgeAssets:
		return m.clearedassets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Generation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationMutation) ResetEdge(name string) error {
	switch name {
	case generation.EdgeAssets:
		m.ResetAssets()
		return nil
	}
	return fmt.Errorf("unknown Generation edge %s", name)
}

// LineageEdgeMutation represents an operation that mutates the LineageEdge nodes in the graph.
type LineageEdgeMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uint
	created_at           *time.Time
	child_id             *uint
	addchild_id          *int
	parent_id            *uint
	addparent_id         *int
	relation_type        *string
	operation_type       *string
	sequence_order       *int
	addsequence_order    *int
	parent_time_start    *float64
	addparent_time_start *float64
	parent_time_end      *float64
	addparent_time_end   *float64
	parent_frame         *int64
	addparent_frame      *int64
	influence_type       *string
	influence_weight     *float64
	addinfluence_weight  *float64
	influence_region     *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LineageEdge, error)
	predicates           []predicate.LineageEdge
}

var _ ent.Mutation = (*LineageEdgeMutation)(nil)

// lineageedgeOption allows management of the mutation configuration using functional options.
type lineageedgeOption func(*LineageEdgeMutation)

// newLineageEdgeMutation creates new mutation for the LineageEdge entity.
func newLineageEdgeMutation(c config, op Op, opts ...lineageedgeOption) *LineageEdgeMutation {
	m := &LineageEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeLineageEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLineageEdgeID sets the ID field of the mutation.
func withLineageEdgeID(id uint) lineageedgeOption {
	return func(m *LineageEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *LineageEdge
		)
		m.oldValue = func(ctx context.Context) (*LineageEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LineageEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLineageEdge sets the old LineageEdge of the mutation.
func withLineageEdge(node *LineageEdge) lineageedgeOption {
	return func(m *LineageEdgeMutation) {
		m.oldValue = func(context.Context) (*LineageEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LineageEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LineageEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LineageEdge entities.
func (m *LineageEdgeMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LineageEdgeMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LineageEdgeMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LineageEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LineageEdgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LineageEdgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LineageEdgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetChildID sets the "child_id" field.
func (m *LineageEdgeMutation) SetChildID(u uint) {
	m.child_id = &u
	m.addchild_id = nil
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *LineageEdgeMutation) ChildID() (r uint, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldChildID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// AddChildID adds u to the "child_id" field.
func (m *LineageEdgeMutation) AddChildID(u int) {
	if m.addchild_id != nil {
		*m.addchild_id += u
	} else {
		m.addchild_id = &u
	}
}

// AddedChildID returns the value that was added to the "child_id" field in this mutation.
func (m *LineageEdgeMutation) AddedChildID() (r int, exists bool) {
	v := m.addchild_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChildID resets all changes to the "child_id" field.
func (m *LineageEdgeMutation) ResetChildID() {
	m.child_id = nil
	m.addchild_id = nil
}

// SetParentID sets the "parent_id" field.
func (m *LineageEdgeMutation) SetParentID(u uint) {
	m.parent_id = &u
	m.addparent_id = nil
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *LineageEdgeMutation) ParentID() (r uint, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldParentID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// AddParentID adds u to the "parent_id" field.
func (m *LineageEdgeMutation) AddParentID(u int) {
	if m.addparent_id != nil {
		*m.addparent_id += u
	} else {
		m.addparent_id = &u
	}
}

// AddedParentID returns the value that was added to the "parent_id" field in this mutation.
func (m *LineageEdgeMutation) AddedParentID() (r int, exists bool) {
	v := m.addparent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *LineageEdgeMutation) ResetParentID() {
	m.parent_id = nil
	m.addparent_id = nil
}

// SetRelationType sets the "relation_type" field.
func (m *LineageEdgeMutation) SetRelationType(s string) {
	m.relation_type = &s
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *LineageEdgeMutation) RelationType() (r string, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldRelationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *LineageEdgeMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetOperationType sets the "operation_type" field.
func (m *LineageEdgeMutation) SetOperationType(s string) {
	m.operation_type = &s
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *LineageEdgeMutation) OperationType() (r string, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldOperationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ClearOperationType clears the value of the "operation_type" field.
func (m *LineageEdgeMutation) ClearOperationType() {
	m.operation_type = nil
	m.clearedFields[lineageedge.FieldOperationType] = struct{}{}
}

// OperationTypeCleared returns if the "operation_type" field was cleared in this mutation.
func (m *LineageEdgeMutation) OperationTypeCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldOperationType]
	return ok
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *LineageEdgeMutation) ResetOperationType() {
	m.operation_type = nil
	delete(m.clearedFields, lineageedge.FieldOperationType)
}

// SetSequenceOrder sets the "sequence_order" field.
func (m *LineageEdgeMutation) SetSequenceOrder(i int) {
	m.sequence_order = &i
	m.addsequence_order = nil
}

// SequenceOrder returns the value of the "sequence_order" field in the mutation.
func (m *LineageEdgeMutation) SequenceOrder() (r int, exists bool) {
	v := m.sequence_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceOrder returns the old "sequence_order" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldSequenceOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceOrder: %w", err)
	}
	return oldValue.SequenceOrder, nil
}

// AddSequenceOrder adds i to the "sequence_order" field.
func (m *LineageEdgeMutation) AddSequenceOrder(i int) {
	if m.addsequence_order != nil {
		*m.addsequence_order += i
	} else {
		m.addsequence_order = &i
	}
}

// AddedSequenceOrder returns the value that was added to the "sequence_order" field in this mutation.
func (m *LineageEdgeMutation) AddedSequenceOrder() (r int, exists bool) {
	v := m.addsequence_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceOrder resets all changes to the "sequence_order" field.
func (m *LineageEdgeMutation) ResetSequenceOrder() {
	m.sequence_order = nil
	m.addsequence_order = nil
}

// SetParentTimeStart sets the "parent_time_start" field.
func (m *LineageEdgeMutation) SetParentTimeStart(f float64) {
	m.parent_time_start = &f
	m.addparent_time_start = nil
}

// ParentTimeStart returns the value of the "parent_time_start" field in the mutation.
func (m *LineageEdgeMutation) ParentTimeStart() (r float64, exists bool) {
	v := m.parent_time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTimeStart returns the old "parent_time_start" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldParentTimeStart(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTimeStart: %w", err)
	}
	return oldValue.ParentTimeStart, nil
}

// AddParentTimeStart adds f to the "parent_time_start" field.
func (m *LineageEdgeMutation) AddParentTimeStart(f float64) {
	if m.addparent_time_start != nil {
		*m.addparent_time_start += f
	} else {
		m.addparent_time_start = &f
	}
}

// AddedParentTimeStart returns the value that was added to the "parent_time_start" field in this mutation.
func (m *LineageEdgeMutation) AddedParentTimeStart() (r float64, exists bool) {
	v := m.addparent_time_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentTimeStart clears the value of the "parent_time_start" field.
func (m *LineageEdgeMutation) ClearParentTimeStart() {
	m.parent_time_start = nil
	m.addparent_time_start = nil
	m.clearedFields[lineageedge.FieldParentTimeStart] = struct{}{}
}

// ParentTimeStartCleared returns if the "parent_time_start" field was cleared in this mutation.
func (m *LineageEdgeMutation) ParentTimeStartCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldParentTimeStart]
	return ok
}

// ResetParentTimeStart resets all changes to the "parent_time_start" field.
func (m *LineageEdgeMutation) ResetParentTimeStart() {
	m.parent_time_start = nil
	m.addparent_time_start = nil
	delete(m.clearedFields, lineageedge.FieldParentTimeStart)
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (m *LineageEdgeMutation) SetParentTimeEnd(f float64) {
	m.parent_time_end = &f
	m.addparent_time_end = nil
}

// ParentTimeEnd returns the value of the "parent_time_end" field in the mutation.
func (m *LineageEdgeMutation) ParentTimeEnd() (r float64, exists bool) {
	v := m.parent_time_end
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTimeEnd returns the old "parent_time_end" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldParentTimeEnd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTimeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTimeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTimeEnd: %w", err)
	}
	return oldValue.ParentTimeEnd, nil
}

// AddParentTimeEnd adds f to the "parent_time_end" field.
func (m *LineageEdgeMutation) AddParentTimeEnd(f float64) {
	if m.addparent_time_end != nil {
		*m.addparent_time_end += f
	} else {
		m.addparent_time_end = &f
	}
}

// AddedParentTimeEnd returns the value that was added to the "parent_time_end" field in this mutation.
func (m *LineageEdgeMutation) AddedParentTimeEnd() (r float64, exists bool) {
	v := m.addparent_time_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentTimeEnd clears the value of the "parent_time_end" field.
func (m *LineageEdgeMutation) ClearParentTimeEnd() {
	m.parent_time_end = nil
	m.addparent_time_end = nil
	m.clearedFields[lineageedge.FieldParentTimeEnd] = struct{}{}
}

// ParentTimeEndCleared returns if the "parent_time_end" field was cleared in this mutation.
func (m *LineageEdgeMutation) ParentTimeEndCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldParentTimeEnd]
	return ok
}

// ResetParentTimeEnd resets all changes to the "parent_time_end" field.
func (m *LineageEdgeMutation) ResetParentTimeEnd() {
	m.parent_time_end = nil
	m.addparent_time_end = nil
	delete(m.clearedFields, lineageedge.FieldParentTimeEnd)
}

// SetParentFrame sets the "parent_frame" field.
func (m *LineageEdgeMutation) SetParentFrame(i int64) {
	m.parent_frame = &i
	m.addparent_frame = nil
}

// ParentFrame returns the value of the "parent_frame" field in the mutation.
func (m *LineageEdgeMutation) ParentFrame() (r int64, exists bool) {
	v := m.parent_frame
	if v == nil {
		return
	}
	return *v, true
}

// OldParentFrame returns the old "parent_frame" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldParentFrame(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentFrame is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentFrame requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentFrame: %w", err)
	}
	return oldValue.ParentFrame, nil
}

// AddParentFrame adds i to the "parent_frame" field.
func (m *LineageEdgeMutation) AddParentFrame(i int64) {
	if m.addparent_frame != nil {
		*m.addparent_frame += i
	} else {
		m.addparent_frame = &i
	}
}

// AddedParentFrame returns the value that was added to the "parent_frame" field in this mutation.
func (m *LineageEdgeMutation) AddedParentFrame() (r int64, exists bool) {
	v := m.addparent_frame
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentFrame clears the value of the "parent_frame" field.
func (m *LineageEdgeMutation) ClearParentFrame() {
	m.parent_frame = nil
	m.addparent_frame = nil
	m.clearedFields[lineageedge.FieldParentFrame] = struct{}{}
}

// ParentFrameCleared returns if the "parent_frame" field was cleared in this mutation.
func (m *LineageEdgeMutation) ParentFrameCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldParentFrame]
	return ok
}

// ResetParentFrame resets all changes to the "parent_frame" field.
func (m *LineageEdgeMutation) ResetParentFrame() {
	m.parent_frame = nil
	m.addparent_frame = nil
	delete(m.clearedFields, lineageedge.FieldParentFrame)
}

// SetInfluenceType sets the "influence_type" field.
func (m *LineageEdgeMutation) SetInfluenceType(s string) {
	m.influence_type = &s
}

// InfluenceType returns the value of the "influence_type" field in the mutation.
func (m *LineageEdgeMutation) InfluenceType() (r string, exists bool) {
	v := m.influence_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInfluenceType returns the old "influence_type" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldInfluenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInfluenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInfluenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInfluenceType: %w", err)
	}
	return oldValue.InfluenceType, nil
}

// ClearInfluenceType clears the value of the "influence_type" field.
func (m *LineageEdgeMutation) ClearInfluenceType() {
	m.influence_type = nil
	m.clearedFields[lineageedge.FieldInfluenceType] = struct{}{}
}

// InfluenceTypeCleared returns if the "influence_type" field was cleared in this mutation.
func (m *LineageEdgeMutation) InfluenceTypeCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldInfluenceType]
	return ok
}

// ResetInfluenceType resets all changes to the "influence_type" field.
func (m *LineageEdgeMutation) ResetInfluenceType() {
	m.influence_type = nil
	delete(m.clearedFields, lineageedge.FieldInfluenceType)
}

// SetInfluenceWeight sets the "influence_weight" field.
func (m *LineageEdgeMutation) SetInfluenceWeight(f float64) {
	m.influence_weight = &f
	m.addinfluence_weight = nil
}

// InfluenceWeight returns the value of the "influence_weight" field in the mutation.
func (m *LineageEdgeMutation) InfluenceWeight() (r float64, exists bool) {
	v := m.influence_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldInfluenceWeight returns the old "influence_weight" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldInfluenceWeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInfluenceWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInfluenceWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInfluenceWeight: %w", err)
	}
	return oldValue.InfluenceWeight, nil
}

// AddInfluenceWeight adds f to the "influence_weight" field.
func (m *LineageEdgeMutation) AddInfluenceWeight(f float64) {
	if m.addinfluence_weight != nil {
		*m.addinfluence_weight += f
	} else {
		m.addinfluence_weight = &f
	}
}

// AddedInfluenceWeight returns the value that was added to the "influence_weight" field in this mutation.
func (m *LineageEdgeMutation) AddedInfluenceWeight() (r float64, exists bool) {
	v := m.addinfluence_weight
	if v == nil {
		return
	}
	return *v, true
}

// ClearInfluenceWeight clears the value of the "influence_weight" field.
func (m *LineageEdgeMutation) ClearInfluenceWeight() {
	m.influence_weight = nil
	m.addinfluence_weight = nil
	m.clearedFields[lineageedge.FieldInfluenceWeight] = struct{}{}
}

// InfluenceWeightCleared returns if the "influence_weight" field was cleared in this mutation.
func (m *LineageEdgeMutation) InfluenceWeightCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldInfluenceWeight]
	return ok
}

// ResetInfluenceWeight resets all changes to the "influence_weight" field.
func (m *LineageEdgeMutation) ResetInfluenceWeight() {
	m.influence_weight = nil
	m.addinfluence_weight = nil
	delete(m.clearedFields, lineageedge.FieldInfluenceWeight)
}

// SetInfluenceRegion sets the "influence_region" field.
func (m *LineageEdgeMutation) SetInfluenceRegion(s string) {
	m.influence_region = &s
}

// InfluenceRegion returns the value of the "influence_region" field in the mutation.
func (m *LineageEdgeMutation) InfluenceRegion() (r string, exists bool) {
	v := m.influence_region
	if v == nil {
		return
	}
	return *v, true
}

// OldInfluenceRegion returns the old "influence_region" field's value of the LineageEdge entity.
// If the LineageEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEdgeMutation) OldInfluenceRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInfluenceRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInfluenceRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInfluenceRegion: %w", err)
	}
	return oldValue.InfluenceRegion, nil
}

// ClearInfluenceRegion clears the value of the "influence_region" field.
func (m *LineageEdgeMutation) ClearInfluenceRegion() {
	m.influence_region = nil
	m.clearedFields[lineageedge.FieldInfluenceRegion] = struct{}{}
}

// InfluenceRegionCleared returns if the "influence_region" field was cleared in this mutation.
func (m *LineageEdgeMutation) InfluenceRegionCleared() bool {
	_, ok := m.clearedFields[lineageedge.FieldInfluenceRegion]
	return ok
}

// ResetInfluenceRegion resets all changes to the "influence_region" field.
func (m *LineageEdgeMutation) ResetInfluenceRegion() {
	m.influence_region = nil
	delete(m.clearedFields, lineageedge.FieldInfluenceRegion)
}

// Where appends a list predicates to the LineageEdgeMutation builder.
func (m *LineageEdgeMutation) Where(ps ...predicate.LineageEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LineageEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LineageEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LineageEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LineageEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LineageEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LineageEdge).
func (m *LineageEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LineageEdgeMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, lineageedge.FieldCreatedAt)
	}
	if m.child_id != nil {
		fields = append(fields, lineageedge.FieldChildID)
	}
	if m.parent_id != nil {
		fields = append(fields, lineageedge.FieldParentID)
	}
	if m.relation_type != nil {
		fields = append(fields, lineageedge.FieldRelationType)
	}
	if m.operation_type != nil {
		fields = append(fields, lineageedge.FieldOperationType)
	}
	if m.sequence_order != nil {
		fields = append(fields, lineageedge.FieldSequenceOrder)
	}
	if m.parent_time_start != nil {
		fields = append(fields, lineageedge.FieldParentTimeStart)
	}
	if m.parent_time_end != nil {
		fields = append(fields, lineageedge.FieldParentTimeEnd)
	}
	if m.parent_frame != nil {
		fields = append(fields, lineageedge.FieldParentFrame)
	}
	if m.influence_type != nil {
		fields = append(fields, lineageedge.FieldInfluenceType)
	}
	if m.influence_weight != nil {
		fields = append(fields, lineageedge.FieldInfluenceWeight)
	}
	if m.influence_region != nil {
		fields = append(fields, lineageedge.FieldInfluenceRegion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LineageEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lineageedge.FieldCreatedAt:
		return m.CreatedAt()
	case lineageedge.FieldChildID:
		return m.ChildID()
	case lineageedge.FieldParentID:
		return m.ParentID()
	case lineageedge.FieldRelationType:
		return m.RelationType()
	case lineageedge.FieldOperationType:
		return m.OperationType()
	case lineageedge.FieldSequenceOrder:
		return m.SequenceOrder()
	case lineageedge.FieldParentTimeStart:
		return m.ParentTimeStart()
	case lineageedge.FieldParentTimeEnd:
		return m.ParentTimeEnd()
	case lineageedge.FieldParentFrame:
		return m.ParentFrame()
	case lineageedge.FieldInfluenceType:
		return m.InfluenceType()
	case lineageedge.FieldInfluenceWeight:
		return m.InfluenceWeight()
	case lineageedge.FieldInfluenceRegion:
		return m.InfluenceRegion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LineageEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lineageedge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lineageedge.FieldChildID:
		return m.OldChildID(ctx)
	case lineageedge.FieldParentID:
		return m.OldParentID(ctx)
	case lineageedge.FieldRelationType:
		return m.OldRelationType(ctx)
	case lineageedge.FieldOperationType:
		return m.OldOperationType(ctx)
	case lineageedge.FieldSequenceOrder:
		return m.OldSequenceOrder(ctx)
	case lineageedge.FieldParentTimeStart:
		return m.OldParentTimeStart(ctx)
	case lineageedge.FieldParentTimeEnd:
		return m.OldParentTimeEnd(ctx)
	case lineageedge.FieldParentFrame:
		return m.OldParentFrame(ctx)
	case lineageedge.FieldInfluenceType:
		return m.OldInfluenceType(ctx)
	case lineageedge.FieldInfluenceWeight:
		return m.OldInfluenceWeight(ctx)
	case lineageedge.FieldInfluenceRegion:
		return m.OldInfluenceRegion(ctx)
	}
	return nil, fmt.Errorf("unknown LineageEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineageEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lineageedge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lineageedge.FieldChildID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case lineageedge.FieldParentID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case lineageedge.FieldRelationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case lineageedge.FieldOperationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case lineageedge.FieldSequenceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceOrder(v)
		return nil
	case lineageedge.FieldParentTimeStart:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTimeStart(v)
		return nil
	case lineageedge.FieldParentTimeEnd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTimeEnd(v)
		return nil
	case lineageedge.FieldParentFrame:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentFrame(v)
		return nil
	case lineageedge.FieldInfluenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInfluenceType(v)
		return nil
	case lineageedge.FieldInfluenceWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInfluenceWeight(v)
		return nil
	case lineageedge.FieldInfluenceRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInfluenceRegion(v)
		return nil
	}
	return fmt.Errorf("unknown LineageEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LineageEdgeMutation) AddedFields() []string {
	var fields []string
	if m.addchild_id != nil {
		fields = append(fields, lineageedge.FieldChildID)
	}
	if m.addparent_id != nil {
		fields = append(fields, lineageedge.FieldParentID)
	}
	if m.addsequence_order != nil {
		fields = append(fields, lineageedge.FieldSequenceOrder)
	}
	if m.addparent_time_start != nil {
		fields = append(fields, lineageedge.FieldParentTimeStart)
	}
	if m.addparent_time_end != nil {
		fields = append(fields, lineageedge.FieldParentTimeEnd)
	}
	if m.addparent_frame != nil {
		fields = append(fields, lineageedge.FieldParentFrame)
	}
	if m.addinfluence_weight != nil {
		fields = append(fields, lineageedge.FieldInfluenceWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LineageEdgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lineageedge.FieldChildID:
		return m.AddedChildID()
	case lineageedge.FieldParentID:
		return m.AddedParentID()
	case lineageedge.FieldSequenceOrder:
		return m.AddedSequenceOrder()
	case lineageedge.FieldParentTimeStart:
		return m.AddedParentTimeStart()
	case lineageedge.FieldParentTimeEnd:
		return m.AddedParentTimeEnd()
	case lineageedge.FieldParentFrame:
		return m.AddedParentFrame()
	case lineageedge.FieldInfluenceWeight:
		return m.AddedInfluenceWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineageEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lineageedge.FieldChildID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChildID(v)
		return nil
	case lineageedge.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentID(v)
		return nil
	case lineageedge.FieldSequenceOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceOrder(v)
		return nil
	case lineageedge.FieldParentTimeStart:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentTimeStart(v)
		return nil
	case lineageedge.FieldParentTimeEnd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentTimeEnd(v)
		return nil
	case lineageedge.FieldParentFrame:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentFrame(v)
		return nil
	case lineageedge.FieldInfluenceWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInfluenceWeight(v)
		return nil
	}
	return fmt.Errorf("unknown LineageEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LineageEdgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lineageedge.FieldOperationType) {
		fields = append(fields, lineageedge.FieldOperationType)
	}
	if m.FieldCleared(lineageedge.FieldParentTimeStart) {
		fields = append(fields, lineageedge.FieldParentTimeStart)
	}
	if m.FieldCleared(lineageedge.FieldParentTimeEnd) {
		fields = append(fields, lineageedge.FieldParentTimeEnd)
	}
	if m.FieldCleared(lineageedge.FieldParentFrame) {
		fields = append(fields, lineageedge.FieldParentFrame)
	}
	if m.FieldCleared(lineageedge.FieldInfluenceType) {
		fields = append(fields, lineageedge.FieldInfluenceType)
	}
	if m.FieldCleared(lineageedge.FieldInfluenceWeight) {
		fields = append(fields, lineageedge.FieldInfluenceWeight)
	}
	if m.FieldCleared(lineageedge.FieldInfluenceRegion) {
		fields = append(fields, lineageedge.FieldInfluenceRegion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LineageEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LineageEdgeMutation) ClearField(name string) error {
	switch name {
	case lineageedge.FieldOperationType:
		m.ClearOperationType()
		return nil
	case lineageedge.FieldParentTimeStart:
		m.ClearParentTimeStart()
		return nil
	case lineageedge.FieldParentTimeEnd:
		m.ClearParentTimeEnd()
		return nil
	case lineageedge.FieldParentFrame:
		m.ClearParentFrame()
		return nil
	case lineageedge.FieldInfluenceType:
		m.ClearInfluenceType()
		return nil
	case lineageedge.FieldInfluenceWeight:
		m.ClearInfluenceWeight()
		return nil
	case lineageedge.FieldInfluenceRegion:
		m.ClearInfluenceRegion()
		return nil
	}
	return fmt.Errorf("unknown LineageEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LineageEdgeMutation) ResetField(name string) error {
	switch name {
	case lineageedge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lineageedge.FieldChildID:
		m.ResetChildID()
		return nil
	case lineageedge.FieldParentID:
		m.ResetParentID()
		return nil
	case lineageedge.FieldRelationType:
		m.ResetRelationType()
		return nil
	case lineageedge.FieldOperationType:
		m.ResetOperationType()
		return nil
	case lineageedge.FieldSequenceOrder:
		m.ResetSequenceOrder()
		return nil
	case lineageedge.FieldParentTimeStart:
		m.ResetParentTimeStart()
		return nil
	case lineageedge.FieldParentTimeEnd:
		m.ResetParentTimeEnd()
		return nil
	case lineageedge.FieldParentFrame:
		m.ResetParentFrame()
		return nil
	case lineageedge.FieldInfluenceType:
		m.ResetInfluenceType()
		return nil
	case lineageedge.FieldInfluenceWeight:
		m.ResetInfluenceWeight()
		return nil
	case lineageedge.FieldInfluenceRegion:
		m.ResetInfluenceRegion()
		return nil
	}
	return fmt.Errorf("unknown LineageEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LineageEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LineageEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LineageEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LineageEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LineageEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LineageEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LineageEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LineageEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LineageEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LineageEdge edge %s", name)
}

// MetadataMutation represents an operation that mutates the Metadata nodes in the graph.
type MetadataMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	value         *string
	clearedFields map[string]struct{}
	asset         *uint
	clearedasset  bool
	done          bool
	oldValue      func(context.Context) (*Metadata, error)
	predicates    []predicate.Metadata
}

var _ ent.Mutation = (*MetadataMutation)(nil)

// metadataOption allows management of the mutation configuration using functional options.
type metadataOption func(*MetadataMutation)

// newMetadataMutation creates new mutation for the Metadata entity.
func newMetadataMutation(c config, op Op, opts ...metadataOption) *MetadataMutation {
	m := &MetadataMutation{
		config:        c,
		op:            op,
		typ:           TypeMetadata,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetadataID sets the ID field of the mutation.
func withMetadataID(id uint) metadataOption {
	return func(m *MetadataMutation) {
		var (
			err   error
			once  sync.Once
			value *Metadata
		)
		m.oldValue = func(ctx context.Context) (*Metadata, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Metadata.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetadata sets the old Metadata of the mutation.
func withMetadata(node *Metadata) metadataOption {
	return func(m *MetadataMutation) {
		m.oldValue = func(context.Context) (*Metadata, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetadataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetadataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Metadata entities.
func (m *MetadataMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetadataMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetadataMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Metadata.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MetadataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MetadataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Metadata entity.
// If the Metadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MetadataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MetadataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MetadataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Metadata entity.
// If the Metadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MetadataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *MetadataMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MetadataMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Metadata entity.
// If the Metadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MetadataMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *MetadataMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *MetadataMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Metadata entity.
// If the Metadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *MetadataMutation) ClearValue() {
	m.value = nil
	m.clearedFields[metadata.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *MetadataMutation) ValueCleared() bool {
	_, ok := m.clearedFields[metadata.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *MetadataMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, metadata.FieldValue)
}

// SetAssetID sets the "asset_id" field.
func (m *MetadataMutation) SetAssetID(u uint) {
	m.asset = &u
}

// AssetID returns the value of the "asset_id" field in the mutation.
func (m *MetadataMutation) AssetID() (r uint, exists bool) {
	v := m.asset
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetID returns the old "asset_id" field's value of the Metadata entity.
// If the Metadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataMutation) OldAssetID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetID: %w", err)
	}
	return oldValue.AssetID, nil
}

// ResetAssetID resets all changes to the "asset_id" field.
func (m *MetadataMutation) ResetAssetID() {
	m.asset = nil
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (m *MetadataMutation) ClearAsset() {
	m.clearedasset = true
	m.clearedFields[metadata.FieldAssetID] = struct{}{}
}

// AssetCleared reports if the "asset" edge to the Asset entity was cleared.
func (m *MetadataMutation) AssetCleared() bool {
	return m.clearedasset
}

// AssetIDs returns the "asset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssetID instead. It exists only for internal usage by the builders.
func (m *MetadataMutation) AssetIDs() (ids []uint) {
	if id := m.asset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAsset resets all changes to the "asset" edge.
func (m *MetadataMutation) ResetAsset() {
	m.asset = nil
	m.clearedasset = false
}

// Where appends a list predicates to the MetadataMutation builder.
func (m *MetadataMutation) Where(ps ...predicate.Metadata) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetadataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetadataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Metadata, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetadataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetadataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Metadata).
func (m *MetadataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetadataMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, metadata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, metadata.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, metadata.FieldName)
	}
	if m.value != nil {
		fields = append(fields, metadata.FieldValue)
	}
	if m.asset != nil {
		fields = append(fields, metadata.FieldAssetID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetadataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metadata.FieldCreatedAt:
		return m.CreatedAt()
	case metadata.FieldUpdatedAt:
		return m.UpdatedAt()
	case metadata.FieldName:
		return m.Name()
	case metadata.FieldValue:
		return m.Value()
	case metadata.FieldAssetID:
		return m.AssetID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetadataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metadata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case metadata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case metadata.FieldName:
		return m.OldName(ctx)
	case metadata.FieldValue:
		return m.OldValue(ctx)
	case metadata.FieldAssetID:
		return m.OldAssetID(ctx)
	}
	return nil, fmt.Errorf("unknown Metadata field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetadataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metadata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case metadata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case metadata.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case metadata.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case metadata.FieldAssetID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetID(v)
		return nil
	}
	return fmt.Errorf("unknown Metadata field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetadataMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetadataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetadataMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Metadata numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetadataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(metadata.FieldValue) {
		fields = append(fields, metadata.FieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetadataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetadataMutation) ClearField(name string) error {
	switch name {
	case metadata.FieldValue:
		m.ClearValue()
		return nil
	}
	return fmt.Errorf("unknown Metadata nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetadataMutation) ResetField(name string) error {
	switch name {
	case metadata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case metadata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case metadata.FieldName:
		m.ResetName()
		return nil
	case metadata.FieldValue:
		m.ResetValue()
		return nil
	case metadata.FieldAssetID:
		m.ResetAssetID()
		return nil
	}
	return fmt.Errorf("unknown Metadata field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetadataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.asset != nil {
		edges = append(edges, metadata.EdgeAsset)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetadataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case metadata.EdgeAsset:
		if id := m.asset; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetadataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetadataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetadataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedasset {
		edges = append(edges, metadata.EdgeAsset)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetadataMutation) EdgeCleared(name string) bool {
	switch name {
	case metadata.EdgeAsset:
		return m.clearedasset
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetadataMutation) ClearEdge(name string) error {
	switch name {
	case metadata.EdgeAsset:
		m.ClearAsset()
		return nil
	}
	return fmt.Errorf("unknown Metadata unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetadataMutation) ResetEdge(name string) error {
	switch name {
	case metadata.EdgeAsset:
		m.ResetAsset()
		return nil
	}
	return fmt.Errorf("unknown Metadata edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	deleted_at    *time.Time
	config_key    *string
	value         *string
	comment       *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SettingMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SettingMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SettingMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[setting.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SettingMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[setting.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SettingMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, setting.FieldDeletedAt)
}

// SetConfigKey sets the "config_key" field.
func (m *SettingMutation) SetConfigKey(s string) {
	m.config_key = &s
}

// ConfigKey returns the value of the "config_key" field in the mutation.
func (m *SettingMutation) ConfigKey() (r string, exists bool) {
	v := m.config_key
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigKey returns the old "config_key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldConfigKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigKey: %w", err)
	}
	return oldValue.ConfigKey, nil
}

// ResetConfigKey resets all changes to the "config_key" field.
func (m *SettingMutation) ResetConfigKey() {
	m.config_key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetComment sets the "comment" field.
func (m *SettingMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *SettingMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *SettingMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[setting.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *SettingMutation) CommentCleared() bool {
	_, ok := m.clearedFields[setting.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *SettingMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, setting.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *SettingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SettingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SettingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.deleted_at != nil {
		fields = append(fields, setting.FieldDeletedAt)
	}
	if m.config_key != nil {
		fields = append(fields, setting.FieldConfigKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.comment != nil {
		fields = append(fields, setting.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, setting.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldDeletedAt:
		return m.DeletedAt()
	case setting.FieldConfigKey:
		return m.ConfigKey()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldComment:
		return m.Comment()
	case setting.FieldCreatedAt:
		return m.CreatedAt()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case setting.FieldConfigKey:
		return m.OldConfigKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldComment:
		return m.OldComment(ctx)
	case setting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case setting.FieldConfigKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case setting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(setting.FieldDeletedAt) {
		fields = append(fields, setting.FieldDeletedAt)
	}
	if m.FieldCleared(setting.FieldComment) {
		fields = append(fields, setting.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	switch name {
	case setting.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case setting.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case setting.FieldConfigKey:
		m.ResetConfigKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldComment:
		m.ResetComment()
		return nil
	case setting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	email         *string
	external_id   *string
	last_login_at *time.Time
	status        *int
	addstatus     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uint) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetExternalID sets the "external_id" field.
func (m *UserMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *UserMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *UserMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[user.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *UserMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[user.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *UserMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, user.FieldExternalID)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *UserMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *UserMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.external_id != nil {
		fields = append(fields, user.FieldExternalID)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldExternalID:
		return m.ExternalID()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldExternalID:
		return m.OldExternalID(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addstatus != nil {
		fields = append(fields, user.FieldStatus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldStatus:
		return m.AddedStatus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldExternalID) {
		fields = append(fields, user.FieldExternalID)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldExternalID:
		m.ClearExternalID()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldExternalID:
		m.ResetExternalID()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
