// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/anzhiyu-c/mediaflow/ent/asset"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
	"github.com/anzhiyu-c/mediaflow/ent/metadata"
	"github.com/anzhiyu-c/mediaflow/ent/schema"
	"github.com/anzhiyu-c/mediaflow/ent/setting"
	"github.com/anzhiyu-c/mediaflow/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assetFields := schema.Asset{}.Fields()
	_ = assetFields
	// assetDescCreatedAt is the schema descriptor for created_at field.
	assetDescCreatedAt := assetFields[1].Descriptor()
	// asset.DefaultCreatedAt holds the default value on creation for the created_at field.
	asset.DefaultCreatedAt = assetDescCreatedAt.Default.(func() time.Time)
	// assetDescUpdatedAt is the schema descriptor for updated_at field.
	assetDescUpdatedAt := assetFields[2].Descriptor()
	// asset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	asset.DefaultUpdatedAt = assetDescUpdatedAt.Default.(func() time.Time)
	// asset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	asset.UpdateDefaultUpdatedAt = assetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assetDescMediaKind is the schema descriptor for media_kind field.
	assetDescMediaKind := assetFields[4].Descriptor()
	// asset.MediaKindValidator is a validator for the "media_kind" field. It is called by the builders before save.
	asset.MediaKindValidator = assetDescMediaKind.Validators[0].(func(string) error)
	// assetDescProviderID is the schema descriptor for provider_id field.
	assetDescProviderID := assetFields[5].Descriptor()
	// asset.ProviderIDValidator is a validator for the "provider_id" field. It is called by the builders before save.
	asset.ProviderIDValidator = assetDescProviderID.Validators[0].(func(string) error)
	// assetDescProviderAssetID is the schema descriptor for provider_asset_id field.
	assetDescProviderAssetID := assetFields[6].Descriptor()
	// asset.ProviderAssetIDValidator is a validator for the "provider_asset_id" field. It is called by the builders before save.
	asset.ProviderAssetIDValidator = assetDescProviderAssetID.Validators[0].(func(string) error)
	// assetDescContentHash is the schema descriptor for content_hash field.
	assetDescContentHash := assetFields[7].Descriptor()
	// asset.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	asset.ContentHashValidator = assetDescContentHash.Validators[0].(func(string) error)
	// assetDescPerceptualHashVersion is the schema descriptor for perceptual_hash_version field.
	assetDescPerceptualHashVersion := assetFields[9].Descriptor()
	// asset.DefaultPerceptualHashVersion holds the default value on creation for the perceptual_hash_version field.
	asset.DefaultPerceptualHashVersion = assetDescPerceptualHashVersion.Default.(int)
	// assetDescSize is the schema descriptor for size field.
	assetDescSize := assetFields[15].Descriptor()
	// asset.DefaultSize holds the default value on creation for the size field.
	asset.DefaultSize = assetDescSize.Default.(int64)
	// assetDescMimeType is the schema descriptor for mime_type field.
	assetDescMimeType := assetFields[16].Descriptor()
	// asset.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	asset.MimeTypeValidator = assetDescMimeType.Validators[0].(func(string) error)
	// assetDescIngestStatus is the schema descriptor for ingest_status field.
	assetDescIngestStatus := assetFields[19].Descriptor()
	// asset.DefaultIngestStatus holds the default value on creation for the ingest_status field.
	asset.DefaultIngestStatus = assetDescIngestStatus.Default.(string)
	// asset.IngestStatusValidator is a validator for the "ingest_status" field. It is called by the builders before save.
	asset.IngestStatusValidator = assetDescIngestStatus.Validators[0].(func(string) error)
	// assetDescLastError is the schema descriptor for last_error field.
	assetDescLastError := assetFields[24].Descriptor()
	// asset.LastErrorValidator is a validator for the "last_error" field. It is called by the builders before save.
	asset.LastErrorValidator = assetDescLastError.Validators[0].(func(string) error)
	contentblobFields := schema.ContentBlob{}.Fields()
	_ = contentblobFields
	// contentblobDescCreatedAt is the schema descriptor for created_at field.
	contentblobDescCreatedAt := contentblobFields[1].Descriptor()
	// contentblob.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentblob.DefaultCreatedAt = contentblobDescCreatedAt.Default.(func() time.Time)
	// contentblobDescContentHash is the schema descriptor for content_hash field.
	contentblobDescContentHash := contentblobFields[2].Descriptor()
	// contentblob.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	contentblob.ContentHashValidator = func() func(string) error {
		validators := contentblobDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentblobDescMimeType is the schema descriptor for mime_type field.
	contentblobDescMimeType := contentblobFields[4].Descriptor()
	// contentblob.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	contentblob.MimeTypeValidator = contentblobDescMimeType.Validators[0].(func(string) error)
	generationFields := schema.Generation{}.Fields()
	_ = generationFields
	// generationDescCreatedAt is the schema descriptor for created_at field.
	generationDescCreatedAt := generationFields[1].Descriptor()
	// generation.DefaultCreatedAt holds the default value on creation for the created_at field.
	generation.DefaultCreatedAt = generationDescCreatedAt.Default.(func() time.Time)
	// generationDescOperationType is the schema descriptor for operation_type field.
	generationDescOperationType := generationFields[3].Descriptor()
	// generation.OperationTypeValidator is a validator for the "operation_type" field. It is called by the builders before save.
	generation.OperationTypeValidator = generationDescOperationType.Validators[0].(func(string) error)
	// generationDescReproHash is the schema descriptor for repro_hash field.
	generationDescReproHash := generationFields[6].Descriptor()
	// generation.ReproHashValidator is a validator for the "repro_hash" field. It is called by the builders before save.
	generation.ReproHashValidator = generationDescReproHash.Validators[0].(func(string) error)
	lineageedgeFields := schema.LineageEdge{}.Fields()
	_ = lineageedgeFields
	// lineageedgeDescCreatedAt is the schema descriptor for created_at field.
	lineageedgeDescCreatedAt := lineageedgeFields[1].Descriptor()
	// lineageedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	lineageedge.DefaultCreatedAt = lineageedgeDescCreatedAt.Default.(func() time.Time)
	// lineageedgeDescRelationType is the schema descriptor for relation_type field.
	lineageedgeDescRelationType := lineageedgeFields[4].Descriptor()
	// lineageedge.RelationTypeValidator is a validator for the "relation_type" field. It is called by the builders before save.
	lineageedge.RelationTypeValidator = lineageedgeDescRelationType.Validators[0].(func(string) error)
	// lineageedgeDescOperationType is the schema descriptor for operation_type field.
	lineageedgeDescOperationType := lineageedgeFields[5].Descriptor()
	// lineageedge.OperationTypeValidator is a validator for the "operation_type" field. It is called by the builders before save.
	lineageedge.OperationTypeValidator = lineageedgeDescOperationType.Validators[0].(func(string) error)
	// lineageedgeDescSequenceOrder is the schema descriptor for sequence_order field.
	lineageedgeDescSequenceOrder := lineageedgeFields[6].Descriptor()
	// lineageedge.DefaultSequenceOrder holds the default value on creation for the sequence_order field.
	lineageedge.DefaultSequenceOrder = lineageedgeDescSequenceOrder.Default.(int)
	// lineageedgeDescInfluenceType is the schema descriptor for influence_type field.
	lineageedgeDescInfluenceType := lineageedgeFields[10].Descriptor()
	// lineageedge.InfluenceTypeValidator is a validator for the "influence_type" field. It is called by the builders before save.
	lineageedge.InfluenceTypeValidator = lineageedgeDescInfluenceType.Validators[0].(func(string) error)
	// lineageedgeDescInfluenceRegion is the schema descriptor for influence_region field.
	lineageedgeDescInfluenceRegion := lineageedgeFields[12].Descriptor()
	// lineageedge.InfluenceRegionValidator is a validator for the "influence_region" field. It is called by the builders before save.
	lineageedge.InfluenceRegionValidator = lineageedgeDescInfluenceRegion.Validators[0].(func(string) error)
	metadataFields := schema.Metadata{}.Fields()
	_ = metadataFields
	// metadataDescCreatedAt is the schema descriptor for created_at field.
	metadataDescCreatedAt := metadataFields[1].Descriptor()
	// metadata.DefaultCreatedAt holds the default value on creation for the created_at field.
	metadata.DefaultCreatedAt = metadataDescCreatedAt.Default.(func() time.Time)
	// metadataDescUpdatedAt is the schema descriptor for updated_at field.
	metadataDescUpdatedAt := metadataFields[2].Descriptor()
	// metadata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	metadata.DefaultUpdatedAt = metadataDescUpdatedAt.Default.(func() time.Time)
	// metadata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	metadata.UpdateDefaultUpdatedAt = metadataDescUpdatedAt.UpdateDefault.(func() time.Time)
	// metadataDescName is the schema descriptor for name field.
	metadataDescName := metadataFields[3].Descriptor()
	// metadata.NameValidator is a validator for the "name" field. It is called by the builders before save.
	metadata.NameValidator = func() func(string) error {
		validators := metadataDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	settingMixin := schema.Setting{}.Mixin()
	settingMixinHooks0 := settingMixin[0].Hooks()
	setting.Hooks[0] = settingMixinHooks0[0]
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescConfigKey is the schema descriptor for config_key field.
	settingDescConfigKey := settingFields[0].Descriptor()
	// setting.ConfigKeyValidator is a validator for the "config_key" field. It is called by the builders before save.
	setting.ConfigKeyValidator = func() func(string) error {
		validators := settingDescConfigKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(config_key string) error {
			for _, fn := range fns {
				if err := fn(config_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// settingDescComment is the schema descriptor for comment field.
	settingDescComment := settingFields[2].Descriptor()
	// setting.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	setting.CommentValidator = settingDescComment.Validators[0].(func(string) error)
	// settingDescCreatedAt is the schema descriptor for created_at field.
	settingDescCreatedAt := settingFields[3].Descriptor()
	// setting.DefaultCreatedAt holds the default value on creation for the created_at field.
	setting.DefaultCreatedAt = settingDescCreatedAt.Default.(func() time.Time)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[4].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[4].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescExternalID is the schema descriptor for external_id field.
	userDescExternalID := userFields[5].Descriptor()
	// user.ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	user.ExternalIDValidator = userDescExternalID.Validators[0].(func(string) error)
	// userDescStatus is the schema descriptor for status field.
	userDescStatus := userFields[7].Descriptor()
	// user.DefaultStatus holds the default value on creation for the status field.
	user.DefaultStatus = userDescStatus.Default.(int)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)
