// Code generated by ent, DO NOT EDIT.

package asset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldOwnerID, v))
}

// MediaKind applies equality check predicate on the "media_kind" field. It's identical to MediaKindEQ.
func MediaKind(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldMediaKind, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldProviderID, v))
}

// ProviderAssetID applies equality check predicate on the "provider_asset_id" field. It's identical to ProviderAssetIDEQ.
func ProviderAssetID(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldProviderAssetID, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldContentHash, v))
}

// PerceptualHash applies equality check predicate on the "perceptual_hash" field. It's identical to PerceptualHashEQ.
func PerceptualHash(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPerceptualHash, v))
}

// PerceptualHashVersion applies equality check predicate on the "perceptual_hash_version" field. It's identical to PerceptualHashVersionEQ.
func PerceptualHashVersion(v int) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPerceptualHashVersion, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldSourceURL, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldStorageKey, v))
}

// ThumbnailKey applies equality check predicate on the "thumbnail_key" field. It's identical to ThumbnailKeyEQ.
func ThumbnailKey(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldThumbnailKey, v))
}

// PreviewKey applies equality check predicate on the "preview_key" field. It's identical to PreviewKeyEQ.
func PreviewKey(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPreviewKey, v))
}

// LocalPath applies equality check predicate on the "local_path" field. It's identical to LocalPathEQ.
func LocalPath(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldLocalPath, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldSize, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldMimeType, v))
}

// ProviderMap applies equality check predicate on the "provider_map" field. It's identical to ProviderMapEQ.
func ProviderMap(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldProviderMap, v))
}

// GenerationID applies equality check predicate on the "generation_id" field. It's identical to GenerationIDEQ.
func GenerationID(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldGenerationID, v))
}

// IngestStatus applies equality check predicate on the "ingest_status" field. It's identical to IngestStatusEQ.
func IngestStatus(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldIngestStatus, v))
}

// DownloadedAt applies equality check predicate on the "downloaded_at" field. It's identical to DownloadedAtEQ.
func DownloadedAt(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldDownloadedAt, v))
}

// MetadataExtractedAt applies equality check predicate on the "metadata_extracted_at" field. It's identical to MetadataExtractedAtEQ.
func MetadataExtractedAt(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldMetadataExtractedAt, v))
}

// ThumbnailGeneratedAt applies equality check predicate on the "thumbnail_generated_at" field. It's identical to ThumbnailGeneratedAtEQ.
func ThumbnailGeneratedAt(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldThumbnailGeneratedAt, v))
}

// PreviewGeneratedAt applies equality check predicate on the "preview_generated_at" field. It's identical to PreviewGeneratedAtEQ.
func PreviewGeneratedAt(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPreviewGeneratedAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uint) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uint) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldOwnerID, v))
}

// MediaKindEQ applies the EQ predicate on the "media_kind" field.
func MediaKindEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldMediaKind, v))
}

// MediaKindNEQ applies the NEQ predicate on the "media_kind" field.
func MediaKindNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldMediaKind, v))
}

// MediaKindIn applies the In predicate on the "media_kind" field.
func MediaKindIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldMediaKind, vs...))
}

// MediaKindNotIn applies the NotIn predicate on the "media_kind" field.
func MediaKindNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldMediaKind, vs...))
}

// MediaKindGT applies the GT predicate on the "media_kind" field.
func MediaKindGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldMediaKind, v))
}

// MediaKindGTE applies the GTE predicate on the "media_kind" field.
func MediaKindGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldMediaKind, v))
}

// MediaKindLT applies the LT predicate on the "media_kind" field.
func MediaKindLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldMediaKind, v))
}

// MediaKindLTE applies the LTE predicate on the "media_kind" field.
func MediaKindLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldMediaKind, v))
}

// MediaKindContains applies the Contains predicate on the "media_kind" field.
func MediaKindContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldMediaKind, v))
}

// MediaKindHasPrefix applies the HasPrefix predicate on the "media_kind" field.
func MediaKindHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldMediaKind, v))
}

// MediaKindHasSuffix applies the HasSuffix predicate on the "media_kind" field.
func MediaKindHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldMediaKind, v))
}

// MediaKindEqualFold applies the EqualFold predicate on the "media_kind" field.
func MediaKindEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldMediaKind, v))
}

// MediaKindContainsFold applies the ContainsFold predicate on the "media_kind" field.
func MediaKindContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldMediaKind, v))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldProviderID, v))
}

// ProviderIDContains applies the Contains predicate on the "provider_id" field.
func ProviderIDContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldProviderID, v))
}

// ProviderIDHasPrefix applies the HasPrefix predicate on the "provider_id" field.
func ProviderIDHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldProviderID, v))
}

// ProviderIDHasSuffix applies the HasSuffix predicate on the "provider_id" field.
func ProviderIDHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldProviderID, v))
}

// ProviderIDIsNil applies the IsNil predicate on the "provider_id" field.
func ProviderIDIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldProviderID))
}

// ProviderIDNotNil applies the NotNil predicate on the "provider_id" field.
func ProviderIDNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldProviderID))
}

// ProviderIDEqualFold applies the EqualFold predicate on the "provider_id" field.
func ProviderIDEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldProviderID, v))
}

// ProviderIDContainsFold applies the ContainsFold predicate on the "provider_id" field.
func ProviderIDContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldProviderID, v))
}

// ProviderAssetIDEQ applies the EQ predicate on the "provider_asset_id" field.
func ProviderAssetIDEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldProviderAssetID, v))
}

// ProviderAssetIDNEQ applies the NEQ predicate on the "provider_asset_id" field.
func ProviderAssetIDNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldProviderAssetID, v))
}

// ProviderAssetIDIn applies the In predicate on the "provider_asset_id" field.
func ProviderAssetIDIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldProviderAssetID, vs...))
}

// ProviderAssetIDNotIn applies the NotIn predicate on the "provider_asset_id" field.
func ProviderAssetIDNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldProviderAssetID, vs...))
}

// ProviderAssetIDGT applies the GT predicate on the "provider_asset_id" field.
func ProviderAssetIDGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldProviderAssetID, v))
}

// ProviderAssetIDGTE applies the GTE predicate on the "provider_asset_id" field.
func ProviderAssetIDGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldProviderAssetID, v))
}

// ProviderAssetIDLT applies the LT predicate on the "provider_asset_id" field.
func ProviderAssetIDLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldProviderAssetID, v))
}

// ProviderAssetIDLTE applies the LTE predicate on the "provider_asset_id" field.
func ProviderAssetIDLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldProviderAssetID, v))
}

// ProviderAssetIDContains applies the Contains predicate on the "provider_asset_id" field.
func ProviderAssetIDContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldProviderAssetID, v))
}

// ProviderAssetIDHasPrefix applies the HasPrefix predicate on the "provider_asset_id" field.
func ProviderAssetIDHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldProviderAssetID, v))
}

// ProviderAssetIDHasSuffix applies the HasSuffix predicate on the "provider_asset_id" field.
func ProviderAssetIDHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldProviderAssetID, v))
}

// ProviderAssetIDIsNil applies the IsNil predicate on the "provider_asset_id" field.
func ProviderAssetIDIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldProviderAssetID))
}

// ProviderAssetIDNotNil applies the NotNil predicate on the "provider_asset_id" field.
func ProviderAssetIDNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldProviderAssetID))
}

// ProviderAssetIDEqualFold applies the EqualFold predicate on the "provider_asset_id" field.
func ProviderAssetIDEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldProviderAssetID, v))
}

// ProviderAssetIDContainsFold applies the ContainsFold predicate on the "provider_asset_id" field.
func ProviderAssetIDContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldProviderAssetID, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldContentHash, v))
}

// PerceptualHashEQ applies the EQ predicate on the "perceptual_hash" field.
func PerceptualHashEQ(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPerceptualHash, v))
}

// PerceptualHashNEQ applies the NEQ predicate on the "perceptual_hash" field.
func PerceptualHashNEQ(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldPerceptualHash, v))
}

// PerceptualHashIn applies the In predicate on the "perceptual_hash" field.
func PerceptualHashIn(vs ...uint64) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldPerceptualHash, vs...))
}

// PerceptualHashNotIn applies the NotIn predicate on the "perceptual_hash" field.
func PerceptualHashNotIn(vs ...uint64) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldPerceptualHash, vs...))
}

// PerceptualHashGT applies the GT predicate on the "perceptual_hash" field.
func PerceptualHashGT(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldPerceptualHash, v))
}

// PerceptualHashGTE applies the GTE predicate on the "perceptual_hash" field.
func PerceptualHashGTE(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldPerceptualHash, v))
}

// PerceptualHashLT applies the LT predicate on the "perceptual_hash" field.
func PerceptualHashLT(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldPerceptualHash, v))
}

// PerceptualHashLTE applies the LTE predicate on the "perceptual_hash" field.
func PerceptualHashLTE(v uint64) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldPerceptualHash, v))
}

// PerceptualHashIsNil applies the IsNil predicate on the "perceptual_hash" field.
func PerceptualHashIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldPerceptualHash))
}

// PerceptualHashNotNil applies the NotNil predicate on the "perceptual_hash" field.
func PerceptualHashNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldPerceptualHash))
}

// PerceptualHashVersionEQ applies the EQ predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionEQ(v int) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPerceptualHashVersion, v))
}

// PerceptualHashVersionNEQ applies the NEQ predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionNEQ(v int) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldPerceptualHashVersion, v))
}

// PerceptualHashVersionIn applies the In predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionIn(vs ...int) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldPerceptualHashVersion, vs...))
}

// PerceptualHashVersionNotIn applies the NotIn predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionNotIn(vs ...int) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldPerceptualHashVersion, vs...))
}

// PerceptualHashVersionGT applies the GT predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionGT(v int) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldPerceptualHashVersion, v))
}

// PerceptualHashVersionGTE applies the GTE predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionGTE(v int) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldPerceptualHashVersion, v))
}

// PerceptualHashVersionLT applies the LT predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionLT(v int) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldPerceptualHashVersion, v))
}

// PerceptualHashVersionLTE applies the LTE predicate on the "perceptual_hash_version" field.
func PerceptualHashVersionLTE(v int) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldPerceptualHashVersion, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldSourceURL, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyIsNil applies the IsNil predicate on the "storage_key" field.
func StorageKeyIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldStorageKey))
}

// StorageKeyNotNil applies the NotNil predicate on the "storage_key" field.
func StorageKeyNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldStorageKey))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldStorageKey, v))
}

// ThumbnailKeyEQ applies the EQ predicate on the "thumbnail_key" field.
func ThumbnailKeyEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldThumbnailKey, v))
}

// ThumbnailKeyNEQ applies the NEQ predicate on the "thumbnail_key" field.
func ThumbnailKeyNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldThumbnailKey, v))
}

// ThumbnailKeyIn applies the In predicate on the "thumbnail_key" field.
func ThumbnailKeyIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldThumbnailKey, vs...))
}

// ThumbnailKeyNotIn applies the NotIn predicate on the "thumbnail_key" field.
func ThumbnailKeyNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldThumbnailKey, vs...))
}

// ThumbnailKeyGT applies the GT predicate on the "thumbnail_key" field.
func ThumbnailKeyGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldThumbnailKey, v))
}

// ThumbnailKeyGTE applies the GTE predicate on the "thumbnail_key" field.
func ThumbnailKeyGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldThumbnailKey, v))
}

// ThumbnailKeyLT applies the LT predicate on the "thumbnail_key" field.
func ThumbnailKeyLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldThumbnailKey, v))
}

// ThumbnailKeyLTE applies the LTE predicate on the "thumbnail_key" field.
func ThumbnailKeyLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldThumbnailKey, v))
}

// ThumbnailKeyContains applies the Contains predicate on the "thumbnail_key" field.
func ThumbnailKeyContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldThumbnailKey, v))
}

// ThumbnailKeyHasPrefix applies the HasPrefix predicate on the "thumbnail_key" field.
func ThumbnailKeyHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldThumbnailKey, v))
}

// ThumbnailKeyHasSuffix applies the HasSuffix predicate on the "thumbnail_key" field.
func ThumbnailKeyHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldThumbnailKey, v))
}

// ThumbnailKeyIsNil applies the IsNil predicate on the "thumbnail_key" field.
func ThumbnailKeyIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldThumbnailKey))
}

// ThumbnailKeyNotNil applies the NotNil predicate on the "thumbnail_key" field.
func ThumbnailKeyNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldThumbnailKey))
}

// ThumbnailKeyEqualFold applies the EqualFold predicate on the "thumbnail_key" field.
func ThumbnailKeyEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldThumbnailKey, v))
}

// ThumbnailKeyContainsFold applies the ContainsFold predicate on the "thumbnail_key" field.
func ThumbnailKeyContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldThumbnailKey, v))
}

// PreviewKeyEQ applies the EQ predicate on the "preview_key" field.
func PreviewKeyEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPreviewKey, v))
}

// PreviewKeyNEQ applies the NEQ predicate on the "preview_key" field.
func PreviewKeyNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldPreviewKey, v))
}

// PreviewKeyIn applies the In predicate on the "preview_key" field.
func PreviewKeyIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldPreviewKey, vs...))
}

// PreviewKeyNotIn applies the NotIn predicate on the "preview_key" field.
func PreviewKeyNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldPreviewKey, vs...))
}

// PreviewKeyGT applies the GT predicate on the "preview_key" field.
func PreviewKeyGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldPreviewKey, v))
}

// PreviewKeyGTE applies the GTE predicate on the "preview_key" field.
func PreviewKeyGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldPreviewKey, v))
}

// PreviewKeyLT applies the LT predicate on the "preview_key" field.
func PreviewKeyLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldPreviewKey, v))
}

// PreviewKeyLTE applies the LTE predicate on the "preview_key" field.
func PreviewKeyLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldPreviewKey, v))
}

// PreviewKeyContains applies the Contains predicate on the "preview_key" field.
func PreviewKeyContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldPreviewKey, v))
}

// PreviewKeyHasPrefix applies the HasPrefix predicate on the "preview_key" field.
func PreviewKeyHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldPreviewKey, v))
}

// PreviewKeyHasSuffix applies the HasSuffix predicate on the "preview_key" field.
func PreviewKeyHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldPreviewKey, v))
}

// PreviewKeyIsNil applies the IsNil predicate on the "preview_key" field.
func PreviewKeyIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldPreviewKey))
}

// PreviewKeyNotNil applies the NotNil predicate on the "preview_key" field.
func PreviewKeyNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldPreviewKey))
}

// PreviewKeyEqualFold applies the EqualFold predicate on the "preview_key" field.
func PreviewKeyEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldPreviewKey, v))
}

// PreviewKeyContainsFold applies the ContainsFold predicate on the "preview_key" field.
func PreviewKeyContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldPreviewKey, v))
}

// LocalPathEQ applies the EQ predicate on the "local_path" field.
func LocalPathEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldLocalPath, v))
}

// LocalPathNEQ applies the NEQ predicate on the "local_path" field.
func LocalPathNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldLocalPath, v))
}

// LocalPathIn applies the In predicate on the "local_path" field.
func LocalPathIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldLocalPath, vs...))
}

// LocalPathNotIn applies the NotIn predicate on the "local_path" field.
func LocalPathNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldLocalPath, vs...))
}

// LocalPathGT applies the GT predicate on the "local_path" field.
func LocalPathGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldLocalPath, v))
}

// LocalPathGTE applies the GTE predicate on the "local_path" field.
func LocalPathGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldLocalPath, v))
}

// LocalPathLT applies the LT predicate on the "local_path" field.
func LocalPathLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldLocalPath, v))
}

// LocalPathLTE applies the LTE predicate on the "local_path" field.
func LocalPathLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldLocalPath, v))
}

// LocalPathContains applies the Contains predicate on the "local_path" field.
func LocalPathContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldLocalPath, v))
}

// LocalPathHasPrefix applies the HasPrefix predicate on the "local_path" field.
func LocalPathHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldLocalPath, v))
}

// LocalPathHasSuffix applies the HasSuffix predicate on the "local_path" field.
func LocalPathHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldLocalPath, v))
}

// LocalPathIsNil applies the IsNil predicate on the "local_path" field.
func LocalPathIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldLocalPath))
}

// LocalPathNotNil applies the NotNil predicate on the "local_path" field.
func LocalPathNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldLocalPath))
}

// LocalPathEqualFold applies the EqualFold predicate on the "local_path" field.
func LocalPathEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldLocalPath, v))
}

// LocalPathContainsFold applies the ContainsFold predicate on the "local_path" field.
func LocalPathContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldLocalPath, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldSize, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldMimeType, v))
}

// ProviderMapEQ applies the EQ predicate on the "provider_map" field.
func ProviderMapEQ(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldProviderMap, v))
}

// ProviderMapNEQ applies the NEQ predicate on the "provider_map" field.
func ProviderMapNEQ(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldProviderMap, v))
}

// ProviderMapIn applies the In predicate on the "provider_map" field.
func ProviderMapIn(vs ...model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldProviderMap, vs...))
}

// ProviderMapNotIn applies the NotIn predicate on the "provider_map" field.
func ProviderMapNotIn(vs ...model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldProviderMap, vs...))
}

// ProviderMapGT applies the GT predicate on the "provider_map" field.
func ProviderMapGT(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldProviderMap, v))
}

// ProviderMapGTE applies the GTE predicate on the "provider_map" field.
func ProviderMapGTE(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldProviderMap, v))
}

// ProviderMapLT applies the LT predicate on the "provider_map" field.
func ProviderMapLT(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldProviderMap, v))
}

// ProviderMapLTE applies the LTE predicate on the "provider_map" field.
func ProviderMapLTE(v model.StringMap) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldProviderMap, v))
}

// ProviderMapIsNil applies the IsNil predicate on the "provider_map" field.
func ProviderMapIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldProviderMap))
}

// ProviderMapNotNil applies the NotNil predicate on the "provider_map" field.
func ProviderMapNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldProviderMap))
}

// GenerationIDEQ applies the EQ predicate on the "generation_id" field.
func GenerationIDEQ(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldGenerationID, v))
}

// GenerationIDNEQ applies the NEQ predicate on the "generation_id" field.
func GenerationIDNEQ(v uint) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldGenerationID, v))
}

// GenerationIDIn applies the In predicate on the "generation_id" field.
func GenerationIDIn(vs ...uint) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldGenerationID, vs...))
}

// GenerationIDNotIn applies the NotIn predicate on the "generation_id" field.
func GenerationIDNotIn(vs ...uint) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldGenerationID, vs...))
}

// GenerationIDIsNil applies the IsNil predicate on the "generation_id" field.
func GenerationIDIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldGenerationID))
}

// GenerationIDNotNil applies the NotNil predicate on the "generation_id" field.
func GenerationIDNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldGenerationID))
}

// IngestStatusEQ applies the EQ predicate on the "ingest_status" field.
func IngestStatusEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldIngestStatus, v))
}

// IngestStatusNEQ applies the NEQ predicate on the "ingest_status" field.
func IngestStatusNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldIngestStatus, v))
}

// IngestStatusIn applies the In predicate on the "ingest_status" field.
func IngestStatusIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldIngestStatus, vs...))
}

// IngestStatusNotIn applies the NotIn predicate on the "ingest_status" field.
func IngestStatusNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldIngestStatus, vs...))
}

// IngestStatusGT applies the GT predicate on the "ingest_status" field.
func IngestStatusGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldIngestStatus, v))
}

// IngestStatusGTE applies the GTE predicate on the "ingest_status" field.
func IngestStatusGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldIngestStatus, v))
}

// IngestStatusLT applies the LT predicate on the "ingest_status" field.
func IngestStatusLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldIngestStatus, v))
}

// IngestStatusLTE applies the LTE predicate on the "ingest_status" field.
func IngestStatusLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldIngestStatus, v))
}

// IngestStatusContains applies the Contains predicate on the "ingest_status" field.
func IngestStatusContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldIngestStatus, v))
}

// IngestStatusHasPrefix applies the HasPrefix predicate on the "ingest_status" field.
func IngestStatusHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldIngestStatus, v))
}

// IngestStatusHasSuffix applies the HasSuffix predicate on the "ingest_status" field.
func IngestStatusHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldIngestStatus, v))
}

// IngestStatusEqualFold applies the EqualFold predicate on the "ingest_status" field.
func IngestStatusEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldIngestStatus, v))
}

// IngestStatusContainsFold applies the ContainsFold predicate on the "ingest_status" field.
func IngestStatusContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldIngestStatus, v))
}

// DownloadedAtEQ applies the EQ predicate on the "downloaded_at" field.
func DownloadedAtEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldDownloadedAt, v))
}

// DownloadedAtNEQ applies the NEQ predicate on the "downloaded_at" field.
func DownloadedAtNEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldDownloadedAt, v))
}

// DownloadedAtIn applies the In predicate on the "downloaded_at" field.
func DownloadedAtIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldDownloadedAt, vs...))
}

// DownloadedAtNotIn applies the NotIn predicate on the "downloaded_at" field.
func DownloadedAtNotIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldDownloadedAt, vs...))
}

// DownloadedAtGT applies the GT predicate on the "downloaded_at" field.
func DownloadedAtGT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldDownloadedAt, v))
}

// DownloadedAtGTE applies the GTE predicate on the "downloaded_at" field.
func DownloadedAtGTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldDownloadedAt, v))
}

// DownloadedAtLT applies the LT predicate on the "downloaded_at" field.
func DownloadedAtLT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldDownloadedAt, v))
}

// DownloadedAtLTE applies the LTE predicate on the "downloaded_at" field.
func DownloadedAtLTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldDownloadedAt, v))
}

// DownloadedAtIsNil applies the IsNil predicate on the "downloaded_at" field.
func DownloadedAtIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldDownloadedAt))
}

// DownloadedAtNotNil applies the NotNil predicate on the "downloaded_at" field.
func DownloadedAtNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldDownloadedAt))
}

// MetadataExtractedAtEQ applies the EQ predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldMetadataExtractedAt, v))
}

// MetadataExtractedAtNEQ applies the NEQ predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtNEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldMetadataExtractedAt, v))
}

// MetadataExtractedAtIn applies the In predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldMetadataExtractedAt, vs...))
}

// MetadataExtractedAtNotIn applies the NotIn predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtNotIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldMetadataExtractedAt, vs...))
}

// MetadataExtractedAtGT applies the GT predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtGT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldMetadataExtractedAt, v))
}

// MetadataExtractedAtGTE applies the GTE predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtGTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldMetadataExtractedAt, v))
}

// MetadataExtractedAtLT applies the LT predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtLT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldMetadataExtractedAt, v))
}

// MetadataExtractedAtLTE applies the LTE predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtLTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldMetadataExtractedAt, v))
}

// MetadataExtractedAtIsNil applies the IsNil predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldMetadataExtractedAt))
}

// MetadataExtractedAtNotNil applies the NotNil predicate on the "metadata_extracted_at" field.
func MetadataExtractedAtNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldMetadataExtractedAt))
}

// ThumbnailGeneratedAtEQ applies the EQ predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldThumbnailGeneratedAt, v))
}

// ThumbnailGeneratedAtNEQ applies the NEQ predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtNEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldThumbnailGeneratedAt, v))
}

// ThumbnailGeneratedAtIn applies the In predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldThumbnailGeneratedAt, vs...))
}

// ThumbnailGeneratedAtNotIn applies the NotIn predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtNotIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldThumbnailGeneratedAt, vs...))
}

// ThumbnailGeneratedAtGT applies the GT predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtGT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldThumbnailGeneratedAt, v))
}

// ThumbnailGeneratedAtGTE applies the GTE predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtGTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldThumbnailGeneratedAt, v))
}

// ThumbnailGeneratedAtLT applies the LT predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtLT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldThumbnailGeneratedAt, v))
}

// ThumbnailGeneratedAtLTE applies the LTE predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtLTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldThumbnailGeneratedAt, v))
}

// ThumbnailGeneratedAtIsNil applies the IsNil predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldThumbnailGeneratedAt))
}

// ThumbnailGeneratedAtNotNil applies the NotNil predicate on the "thumbnail_generated_at" field.
func ThumbnailGeneratedAtNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldThumbnailGeneratedAt))
}

// PreviewGeneratedAtEQ applies the EQ predicate on the "preview_generated_at" field.
func PreviewGeneratedAtEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldPreviewGeneratedAt, v))
}

// PreviewGeneratedAtNEQ applies the NEQ predicate on the "preview_generated_at" field.
func PreviewGeneratedAtNEQ(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldPreviewGeneratedAt, v))
}

// PreviewGeneratedAtIn applies the In predicate on the "preview_generated_at" field.
func PreviewGeneratedAtIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldPreviewGeneratedAt, vs...))
}

// PreviewGeneratedAtNotIn applies the NotIn predicate on the "preview_generated_at" field.
func PreviewGeneratedAtNotIn(vs ...time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldPreviewGeneratedAt, vs...))
}

// PreviewGeneratedAtGT applies the GT predicate on the "preview_generated_at" field.
func PreviewGeneratedAtGT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldPreviewGeneratedAt, v))
}

// PreviewGeneratedAtGTE applies the GTE predicate on the "preview_generated_at" field.
func PreviewGeneratedAtGTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldPreviewGeneratedAt, v))
}

// PreviewGeneratedAtLT applies the LT predicate on the "preview_generated_at" field.
func PreviewGeneratedAtLT(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldPreviewGeneratedAt, v))
}

// PreviewGeneratedAtLTE applies the LTE predicate on the "preview_generated_at" field.
func PreviewGeneratedAtLTE(v time.Time) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldPreviewGeneratedAt, v))
}

// PreviewGeneratedAtIsNil applies the IsNil predicate on the "preview_generated_at" field.
func PreviewGeneratedAtIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldPreviewGeneratedAt))
}

// PreviewGeneratedAtNotNil applies the NotNil predicate on the "preview_generated_at" field.
func PreviewGeneratedAtNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldPreviewGeneratedAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Asset {
	return predicate.Asset(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Asset {
	return predicate.Asset(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Asset {
	return predicate.Asset(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Asset {
	return predicate.Asset(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Asset {
	return predicate.Asset(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Asset {
	return predicate.Asset(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Asset {
	return predicate.Asset(sql.FieldContainsFold(FieldLastError, v))
}

// HasMetadata applies the HasEdge predicate on the "metadata" edge.
func HasMetadata() predicate.Asset {
	return predicate.Asset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MetadataTable, MetadataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMetadataWith applies the HasEdge predicate on the "metadata" edge with a given conditions (other predicates).
func HasMetadataWith(preds ...predicate.Metadata) predicate.Asset {
	return predicate.Asset(func(s *sql.Selector) {
		step := newMetadataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGeneration applies the HasEdge predicate on the "generation" edge.
func HasGeneration() predicate.Asset {
	return predicate.Asset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GenerationTable, GenerationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGenerationWith applies the HasEdge predicate on the "generation" edge with a given conditions (other predicates).
func HasGenerationWith(preds ...predicate.Generation) predicate.Asset {
	return predicate.Asset(func(s *sql.Selector) {
		step := newGenerationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Asset) predicate.Asset {
	return predicate.Asset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Asset) predicate.Asset {
	return predicate.Asset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Asset) predicate.Asset {
	return predicate.Asset(sql.NotPredicates(p))
}
