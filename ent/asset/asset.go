// Code generated by ent, DO NOT EDIT.

package asset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the asset type in the database.
	Label = "asset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldMediaKind holds the string denoting the media_kind field in the database.
	FieldMediaKind = "media_kind"
	// FieldProviderID holds the string denoting the provider_id field in the database.
	FieldProviderID = "provider_id"
	// FieldProviderAssetID holds the string denoting the provider_asset_id field in the database.
	FieldProviderAssetID = "provider_asset_id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldPerceptualHash holds the string denoting the perceptual_hash field in the database.
	FieldPerceptualHash = "perceptual_hash"
	// FieldPerceptualHashVersion holds the string denoting the perceptual_hash_version field in the database.
	FieldPerceptualHashVersion = "perceptual_hash_version"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldThumbnailKey holds the string denoting the thumbnail_key field in the database.
	FieldThumbnailKey = "thumbnail_key"
	// FieldPreviewKey holds the string denoting the preview_key field in the database.
	FieldPreviewKey = "preview_key"
	// FieldLocalPath holds the string denoting the local_path field in the database.
	FieldLocalPath = "local_path"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldProviderMap holds the string denoting the provider_map field in the database.
	FieldProviderMap = "provider_map"
	// FieldGenerationID holds the string denoting the generation_id field in the database.
	FieldGenerationID = "generation_id"
	// FieldIngestStatus holds the string denoting the ingest_status field in the database.
	FieldIngestStatus = "ingest_status"
	// FieldDownloadedAt holds the string denoting the downloaded_at field in the database.
	FieldDownloadedAt = "downloaded_at"
	// FieldMetadataExtractedAt holds the string denoting the metadata_extracted_at field in the database.
	FieldMetadataExtractedAt = "metadata_extracted_at"
	// FieldThumbnailGeneratedAt holds the string denoting the thumbnail_generated_at field in the database.
	FieldThumbnailGeneratedAt = "thumbnail_generated_at"
	// FieldPreviewGeneratedAt holds the string denoting the preview_generated_at field in the database.
	FieldPreviewGeneratedAt = "preview_generated_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// EdgeMetadata holds the string denoting the metadata edge name in mutations.
	EdgeMetadata = "metadata"
	// EdgeGeneration holds the string denoting the generation edge name in mutations.
	EdgeGeneration = "generation"
	// Table holds the table name of the asset in the database.
	Table = "assets"
	// MetadataTable is the table that holds the metadata relation/edge.
	MetadataTable = "metadata"
	// MetadataInverseTable is the table name for the Metadata entity.
	// It exists in this package in order to avoid circular dependency with the "metadata" package.
	MetadataInverseTable = "metadata"
	// MetadataColumn is the table column denoting the metadata relation/edge.
	MetadataColumn = "asset_id"
	// GenerationTable is the table that holds the generation relation/edge.
	GenerationTable = "assets"
	// GenerationInverseTable is the table name for the Generation entity.
	// It exists in this package in order to avoid circular dependency with the "generation" package.
	GenerationInverseTable = "generations"
	// GenerationColumn is the table column denoting the generation relation/edge.
	GenerationColumn = "generation_id"
)

// Columns holds all SQL columns for asset fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOwnerID,
	FieldMediaKind,
	FieldProviderID,
	FieldProviderAssetID,
	FieldContentHash,
	FieldPerceptualHash,
	FieldPerceptualHashVersion,
	FieldSourceURL,
	FieldStorageKey,
	FieldThumbnailKey,
	FieldPreviewKey,
	FieldLocalPath,
	FieldSize,
	FieldMimeType,
	FieldProviderMap,
	FieldGenerationID,
	FieldIngestStatus,
	FieldDownloadedAt,
	FieldMetadataExtractedAt,
	FieldThumbnailGeneratedAt,
	FieldPreviewGeneratedAt,
	FieldLastError,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// MediaKindValidator is a validator for the "media_kind" field. It is called by the builders before save.
	MediaKindValidator func(string) error
	// ProviderIDValidator is a validator for the "provider_id" field. It is called by the builders before save.
	ProviderIDValidator func(string) error
	// ProviderAssetIDValidator is a validator for the "provider_asset_id" field. It is called by the builders before save.
	ProviderAssetIDValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func(string) error
	// DefaultPerceptualHashVersion holds the default value on creation for the "perceptual_hash_version" field.
	DefaultPerceptualHashVersion int
	// DefaultSize holds the default value on creation for the "size" field.
	DefaultSize int64
	// MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	MimeTypeValidator func(string) error
	// DefaultIngestStatus holds the default value on creation for the "ingest_status" field.
	DefaultIngestStatus string
	// IngestStatusValidator is a validator for the "ingest_status" field. It is called by the builders before save.
	IngestStatusValidator func(string) error
	// LastErrorValidator is a validator for the "last_error" field. It is called by the builders before save.
	LastErrorValidator func(string) error
)

// OrderOption defines the ordering options for the Asset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByMediaKind orders the results by the media_kind field.
func ByMediaKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaKind, opts...).ToFunc()
}

// ByProviderID orders the results by the provider_id field.
func ByProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderID, opts...).ToFunc()
}

// ByProviderAssetID orders the results by the provider_asset_id field.
func ByProviderAssetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderAssetID, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByPerceptualHash orders the results by the perceptual_hash field.
func ByPerceptualHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerceptualHash, opts...).ToFunc()
}

// ByPerceptualHashVersion orders the results by the perceptual_hash_version field.
func ByPerceptualHashVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerceptualHashVersion, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByThumbnailKey orders the results by the thumbnail_key field.
func ByThumbnailKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnailKey, opts...).ToFunc()
}

// ByPreviewKey orders the results by the preview_key field.
func ByPreviewKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewKey, opts...).ToFunc()
}

// ByLocalPath orders the results by the local_path field.
func ByLocalPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalPath, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByProviderMap orders the results by the provider_map field.
func ByProviderMap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderMap, opts...).ToFunc()
}

// ByGenerationID orders the results by the generation_id field.
func ByGenerationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationID, opts...).ToFunc()
}

// ByIngestStatus orders the results by the ingest_status field.
func ByIngestStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestStatus, opts...).ToFunc()
}

// ByDownloadedAt orders the results by the downloaded_at field.
func ByDownloadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloadedAt, opts...).ToFunc()
}

// ByMetadataExtractedAt orders the results by the metadata_extracted_at field.
func ByMetadataExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetadataExtractedAt, opts...).ToFunc()
}

// ByThumbnailGeneratedAt orders the results by the thumbnail_generated_at field.
func ByThumbnailGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnailGeneratedAt, opts...).ToFunc()
}

// ByPreviewGeneratedAt orders the results by the preview_generated_at field.
func ByPreviewGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewGeneratedAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByMetadataCount orders the results by metadata count.
func ByMetadataCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMetadataStep(), opts...)
	}
}

// ByMetadata orders the results by metadata terms.
func ByMetadata(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMetadataStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGenerationField orders the results by generation field.
func ByGenerationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGenerationStep(), sql.OrderByField(field, opts...))
	}
}
func newMetadataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MetadataInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MetadataTable, MetadataColumn),
	)
}
func newGenerationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GenerationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GenerationTable, GenerationColumn),
	)
}
