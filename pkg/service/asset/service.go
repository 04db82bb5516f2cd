/*
 * @Description: 资产应用服务：上传、提供商同步与内嵌资产提取的编排入口。
 * @Author: 安知鱼
 * @Date: 2025-08-04 10:05:18
 * @LastEditTime: 2025-08-04 10:05:18
 * @LastEditors: 安知鱼
 */
package asset

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/urlnorm"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
	"github.com/anzhiyu-c/mediaflow/pkg/service/dedup"
	"github.com/anzhiyu-c/mediaflow/pkg/service/lineage"
	"github.com/anzhiyu-c/mediaflow/pkg/service/phash"
)

// LineageWriter 抽象谱系协作方，由 lineage.Service 实现。
type LineageWriter interface {
	AddEdges(ctx context.Context, childID uint, parents []model.ParentRef) (int, error)
	RefreshLineage(ctx context.Context, childID uint) error
}

// EmbeddedExtractor 抽象提供商内嵌资产提取，由 provider.Registry 实现。
type EmbeddedExtractor interface {
	ExtractEmbedded(ctx context.Context, providerID string, payload []byte) ([]model.EmbeddedAssetRef, error)
}

// UploadInput 是直接上传的输入。
type UploadInput struct {
	OwnerID  uint
	Filename string
	MimeType string
	Reader   io.Reader
}

// SyncItem 是提供商同步的单条记录。
type SyncItem struct {
	ProviderID  string
	NativeID    string
	MediaKind   constant.MediaKind
	RemoteURL   string
	MimeType    string
	RawMetadata []byte // 提供商原始负载，供内嵌提取与透传元数据使用

	// 生成信息，没有时三者均为零值
	Operation string
	Params    model.JSONMap
	Inputs    []string // 输入资产公共ID，顺序有意义
}

// Service 是资产域的应用服务。
type Service struct {
	txManager  repository.TransactionManager
	assetRepo  repository.AssetRepository
	genRepo    repository.GenerationRepository
	metaRepo   repository.MetadataRepository
	edgeRepo   repository.LineageEdgeRepository
	resolver   dedup.IResolver
	lineageSvc LineageWriter
	extractor  EmbeddedExtractor
	bus        *event.EventBus
	spoolDir   string
}

// NewService 构造函数。spoolDir 是上传内容落盘的临时目录。
func NewService(
	txManager repository.TransactionManager,
	assetRepo repository.AssetRepository,
	genRepo repository.GenerationRepository,
	metaRepo repository.MetadataRepository,
	edgeRepo repository.LineageEdgeRepository,
	resolver dedup.IResolver,
	lineageSvc LineageWriter,
	extractor EmbeddedExtractor,
	bus *event.EventBus,
	spoolDir string,
) *Service {
	if spoolDir == "" {
		spoolDir = os.TempDir()
	}
	return &Service{
		txManager:  txManager,
		assetRepo:  assetRepo,
		genRepo:    genRepo,
		metaRepo:   metaRepo,
		edgeRepo:   edgeRepo,
		resolver:   resolver,
		lineageSvc: lineageSvc,
		extractor:  extractor,
		bus:        bus,
		spoolDir:   spoolDir,
	}
}

// Upload 接收直接上传的字节流。内容命中已有资产时复用并返回 reused=true，
// 否则创建 pending 记录并发布 asset:created 事件触发异步摄取。
func (s *Service) Upload(ctx context.Context, in UploadInput) (*model.Asset, bool, error) {
	localPath, hash, size, err := s.spool(in.Reader)
	if err != nil {
		return nil, false, err
	}

	kind := kindFromMime(in.MimeType)

	sig := dedup.Signals{ContentHash: hash}
	if kind == constant.MediaKindImage {
		if fp, fpErr := fingerprintFile(localPath); fpErr == nil {
			sig.PerceptualHash = types.SomeUint64(fp)
			sig.PerceptualHashVersion = phash.Version
		} else {
			log.Printf("[AssetService] 上传内容无法计算感知指纹，跳过近似信号: %v", fpErr)
		}
	}

	match, err := s.resolver.Resolve(ctx, in.OwnerID, sig)
	if err != nil {
		return nil, false, fmt.Errorf("去重解析失败: %w", err)
	}
	if match != nil {
		existing := match.Asset
		if s.resolver.Absorb(existing, sig) {
			if err := s.saveAsset(ctx, existing); err != nil {
				return nil, false, err
			}
		}
		// 复用时上传的字节不再需要
		os.Remove(localPath)
		log.Printf("[AssetService] 上传内容命中已有资产 %d (策略: %s)。", existing.ID, match.Strategy)
		return existing, true, nil
	}

	asset := &model.Asset{
		OwnerID:      in.OwnerID,
		MediaKind:    kind,
		ContentHash:  sql.NullString{String: hash, Valid: true},
		LocalPath:    sql.NullString{String: localPath, Valid: true},
		Size:         size,
		IngestStatus: constant.IngestStatusPending,
	}
	if in.MimeType != "" {
		asset.MimeType = sql.NullString{String: in.MimeType, Valid: true}
	}
	if sig.PerceptualHash.Valid {
		asset.PerceptualHash = sig.PerceptualHash
		asset.PerceptualHashVersion = sig.PerceptualHashVersion
	}

	if err := s.createAsset(ctx, asset, "upload"); err != nil {
		return nil, false, err
	}
	return asset, false, nil
}

// SyncFromProvider 同步提供商的一条记录。身份信号命中已有资产时
// 非破坏性合并（跨提供商复用），否则创建 pending 记录。
// 生成信息存在时写入 Generation 并重建谱系；注册了提取能力的
// 提供商会把内嵌子资产一并落为带谱系边的资产记录。
func (s *Service) SyncFromProvider(ctx context.Context, ownerID uint, item SyncItem) (*model.Asset, bool, error) {
	if item.ProviderID == "" || item.NativeID == "" {
		return nil, false, fmt.Errorf("提供商同步缺少身份字段: %w", constant.ErrBadRequest)
	}

	sig := dedup.Signals{
		ProviderID:   item.ProviderID,
		CandidateIDs: dedup.CollectCandidateIDs(item.NativeID, item.RemoteURL),
		SourceURL:    item.RemoteURL,
	}

	match, err := s.resolver.Resolve(ctx, ownerID, sig)
	if err != nil {
		return nil, false, fmt.Errorf("去重解析失败: %w", err)
	}

	var (
		asset  *model.Asset
		reused bool
	)
	if match != nil {
		asset = match.Asset
		reused = true
		if s.resolver.Absorb(asset, sig) {
			if err := s.saveAsset(ctx, asset); err != nil {
				return nil, false, err
			}
		}
		log.Printf("[AssetService] 提供商记录 %s/%s 命中已有资产 %d (策略: %s)。",
			item.ProviderID, item.NativeID, asset.ID, match.Strategy)
	} else {
		asset = &model.Asset{
			OwnerID:         ownerID,
			MediaKind:       item.MediaKind,
			ProviderID:      sql.NullString{String: item.ProviderID, Valid: true},
			ProviderAssetID: sql.NullString{String: item.NativeID, Valid: true},
			IngestStatus:    constant.IngestStatusPending,
		}
		if item.RemoteURL != "" {
			asset.SourceURL = sql.NullString{String: urlnorm.Normalize(item.RemoteURL), Valid: true}
		}
		if item.MimeType != "" {
			asset.MimeType = sql.NullString{String: item.MimeType, Valid: true}
		}
	}

	if err := s.attachGeneration(ctx, asset, ownerID, item); err != nil {
		return nil, false, err
	}

	if !reused {
		if err := s.createAsset(ctx, asset, "sync"); err != nil {
			return nil, false, err
		}
	}

	if asset.GenerationID.Valid {
		if err := s.lineageSvc.RefreshLineage(ctx, asset.ID); err != nil {
			log.Printf("[AssetService] 资产 %d 的谱系重建失败，不影响同步: %v", asset.ID, err)
		}
	}

	s.saveProviderMetadata(ctx, asset.ID, item.RawMetadata)
	s.extractEmbeddedAssets(ctx, ownerID, asset, item)

	return asset, reused, nil
}

// Info 按公共ID返回资产及其全部元数据。
func (s *Service) Info(ctx context.Context, publicID string) (*model.Asset, map[string]string, error) {
	id, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeAsset {
		return nil, nil, constant.ErrInvalidPublicID
	}
	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	meta, err := s.metaRepo.GetAll(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("加载资产 %d 的元数据失败: %w", id, err)
	}
	return asset, meta, nil
}

// Delete 删除资产：先级联清理谱系边与元数据，再删除记录本身。
func (s *Service) Delete(ctx context.Context, assetID uint) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.LineageEdge.DeleteByAsset(ctx, assetID); err != nil {
			return fmt.Errorf("清理资产 %d 的谱系边失败: %w", assetID, err)
		}
		if err := repos.Metadata.DeleteAll(ctx, assetID); err != nil {
			return fmt.Errorf("清理资产 %d 的元数据失败: %w", assetID, err)
		}
		return repos.Asset.Delete(ctx, assetID)
	})
}

// --- 内部方法 ---

// spool 把上传流落盘到临时文件，同步计算哈希。
func (s *Service) spool(r io.Reader) (path, hash string, size int64, err error) {
	tmpFile, err := os.CreateTemp(s.spoolDir, "upload-*")
	if err != nil {
		return "", "", 0, fmt.Errorf("创建上传临时文件失败: %w", err)
	}

	hasher := sha256.New()
	size, err = io.Copy(io.MultiWriter(tmpFile, hasher), r)
	closeErr := tmpFile.Close()
	if err != nil || closeErr != nil {
		os.Remove(tmpFile.Name())
		if err == nil {
			err = closeErr
		}
		return "", "", 0, fmt.Errorf("写入上传内容失败: %w", err)
	}
	if size == 0 {
		os.Remove(tmpFile.Name())
		return "", "", 0, fmt.Errorf("上传内容为空: %w", constant.ErrCorrupted)
	}
	return tmpFile.Name(), hex.EncodeToString(hasher.Sum(nil)), size, nil
}

// createAsset 落库并发布 asset:created。事件是尽力而为的，
// 不与记录创建共事务。
func (s *Service) createAsset(ctx context.Context, asset *model.Asset, source string) error {
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.Asset.Create(ctx, asset)
	})
	if err != nil {
		return fmt.Errorf("创建资产记录失败: %w", err)
	}

	providerID := ""
	if asset.ProviderID.Valid {
		providerID = asset.ProviderID.String
	}
	s.bus.Publish(event.AssetCreated, model.AssetCreatedEvent{
		AssetID:    asset.ID,
		OwnerID:    asset.OwnerID,
		MediaKind:  asset.MediaKind,
		ProviderID: providerID,
		Source:     source,
	})
	return nil
}

func (s *Service) saveAsset(ctx context.Context, asset *model.Asset) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.Asset.Update(ctx, asset)
	})
}

// attachGeneration 为携带生成信息的同步记录写入 Generation 并关联资产。
func (s *Service) attachGeneration(ctx context.Context, asset *model.Asset, ownerID uint, item SyncItem) error {
	if item.Operation == "" && item.Params == nil && len(item.Inputs) == 0 {
		return nil
	}
	if asset.GenerationID.Valid {
		return nil
	}

	reproHash, err := lineage.ComputeReproHash(item.Params, item.Inputs)
	if err != nil {
		return err
	}
	gen := &model.Generation{
		OwnerID:         ownerID,
		OperationType:   item.Operation,
		CanonicalParams: item.Params,
		Inputs:          item.Inputs,
		ReproHash:       reproHash,
	}
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.Generation.Create(ctx, gen)
	})
	if err != nil {
		return fmt.Errorf("创建生成记录失败: %w", err)
	}
	asset.GenerationID = types.SomeUint64(uint64(gen.ID))
	return nil
}

// saveProviderMetadata 把提供商负载中的已知字段透传为元数据行。
func (s *Service) saveProviderMetadata(ctx context.Context, assetID uint, raw []byte) {
	if len(raw) == 0 {
		return
	}
	meta, err := model.ParseProviderMetadata(raw)
	if err != nil {
		log.Printf("[AssetService] 资产 %d 的提供商负载无法解析，跳过透传: %v", assetID, err)
		return
	}

	fields := map[string]string{}
	if meta.Image != nil {
		fields[model.MetaKeyProviderPrompt] = meta.Image.Prompt
		fields[model.MetaKeyProviderModel] = meta.Image.Model
		if meta.Image.Seed != 0 {
			fields[model.MetaKeyProviderSeed] = fmt.Sprintf("%d", meta.Image.Seed)
		}
	}
	if meta.Video != nil {
		fields[model.MetaKeyProviderPrompt] = meta.Video.Prompt
		fields[model.MetaKeyProviderModel] = meta.Video.Model
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := s.metaRepo.Set(ctx, assetID, k, v); err != nil {
			log.Printf("[AssetService] 保存资产 %d 的透传元数据失败 (%s): %v", assetID, k, err)
		}
	}
}

// extractEmbeddedAssets 对注册了提取能力的提供商，把负载中内嵌的
// 子资产落为记录并连入谱系。单个子资产失败只记录，不中断同步。
func (s *Service) extractEmbeddedAssets(ctx context.Context, ownerID uint, parent *model.Asset, item SyncItem) {
	if s.extractor == nil || len(item.RawMetadata) == 0 {
		return
	}
	refs, err := s.extractor.ExtractEmbedded(ctx, item.ProviderID, item.RawMetadata)
	if err != nil {
		log.Printf("[AssetService] 提供商 '%s' 的内嵌提取失败: %v", item.ProviderID, err)
		return
	}

	for i, ref := range refs {
		child, childReused, err := s.ensureEmbeddedChild(ctx, ownerID, item.ProviderID, ref)
		if err != nil {
			log.Printf("[AssetService] 内嵌子资产落库失败 (parent=%d, url=%s): %v", parent.ID, ref.RemoteURL, err)
			continue
		}

		relation := ref.RelationType
		if relation == "" {
			relation = model.RelationEmbedded
		}
		record := model.EmbeddedParentRecord{
			ParentID:      parent.ID,
			RelationType:  relation,
			OperationType: "embedded_extraction",
			SequenceOrder: i,
		}
		// 先持久化父引用再建边，谱系重建时以该记录为推导来源
		s.recordEmbeddedParent(ctx, child.ID, record)
		if _, err := s.lineageSvc.AddEdges(ctx, child.ID, []model.ParentRef{{
			ParentID:      record.ParentID,
			RelationType:  record.RelationType,
			OperationType: record.OperationType,
			SequenceOrder: record.SequenceOrder,
		}}); err != nil {
			log.Printf("[AssetService] 内嵌子资产 %d 的谱系边写入失败: %v", child.ID, err)
		}
		_ = childReused
	}
	if len(refs) > 0 {
		log.Printf("[AssetService] 资产 %d 的同步提取到 %d 个内嵌子资产。", parent.ID, len(refs))
	}
}

// recordEmbeddedParent 把内嵌来源的父引用合并写入子资产元数据。
// 同一 (parent, relation, sequence) 只记录一次。
func (s *Service) recordEmbeddedParent(ctx context.Context, childID uint, rec model.EmbeddedParentRecord) {
	var records []model.EmbeddedParentRecord
	if raw, err := s.metaRepo.Get(ctx, childID, model.MetaKeyEmbeddedParents); err == nil && raw != "" {
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			log.Printf("[AssetService] 子资产 %d 的内嵌父引用记录损坏，将重写: %v", childID, err)
			records = nil
		}
	}
	for _, existing := range records {
		if existing.ParentID == rec.ParentID && existing.RelationType == rec.RelationType &&
			existing.SequenceOrder == rec.SequenceOrder {
			return
		}
	}
	records = append(records, rec)

	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("[AssetService] 子资产 %d 的内嵌父引用序列化失败: %v", childID, err)
		return
	}
	if err := s.metaRepo.Set(ctx, childID, model.MetaKeyEmbeddedParents, string(data)); err != nil {
		log.Printf("[AssetService] 子资产 %d 的内嵌父引用写入失败: %v", childID, err)
	}
}

// ensureEmbeddedChild 通过解析器为内嵌引用找到或创建子资产。
func (s *Service) ensureEmbeddedChild(ctx context.Context, ownerID uint, providerID string, ref model.EmbeddedAssetRef) (*model.Asset, bool, error) {
	candidates := append([]string{}, ref.CandidateIDs...)
	candidates = append(candidates, dedup.CollectCandidateIDs("", ref.RemoteURL)...)

	sig := dedup.Signals{
		ProviderID:   providerID,
		CandidateIDs: candidates,
		SourceURL:    ref.RemoteURL,
	}
	match, err := s.resolver.Resolve(ctx, ownerID, sig)
	if err != nil {
		return nil, false, err
	}
	if match != nil {
		if s.resolver.Absorb(match.Asset, sig) {
			if err := s.saveAsset(ctx, match.Asset); err != nil {
				return nil, false, err
			}
		}
		return match.Asset, true, nil
	}

	child := &model.Asset{
		OwnerID:      ownerID,
		MediaKind:    ref.MediaKind,
		ProviderID:   sql.NullString{String: providerID, Valid: true},
		IngestStatus: constant.IngestStatusPending,
	}
	if len(candidates) > 0 {
		child.ProviderAssetID = sql.NullString{String: candidates[0], Valid: true}
	}
	if ref.RemoteURL != "" {
		child.SourceURL = sql.NullString{String: urlnorm.Normalize(ref.RemoteURL), Valid: true}
	}
	if err := s.createAsset(ctx, child, "extraction"); err != nil {
		return nil, false, err
	}
	return child, false, nil
}

// kindFromMime 按 MIME 大类推断媒体类型，未知时按图片处理。
func kindFromMime(mimeType string) constant.MediaKind {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return constant.MediaKindVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return constant.MediaKindAudio
	case strings.HasPrefix(mimeType, "model/"):
		return constant.MediaKindModel3D
	default:
		return constant.MediaKindImage
	}
}

// fingerprintFile 对本地图片计算感知指纹。
func fingerprintFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return phash.FingerprintReader(f)
}
