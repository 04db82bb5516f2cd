/*
 * @Description: 媒体元数据提取服务，按媒体类型分发到具体的提取器。
 * @Author: 安知鱼
 * @Date: 2025-08-03 10:31:07
 * @LastEditTime: 2025-08-03 10:31:07
 * @LastEditors: 安知鱼
 */
package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"

	"github.com/dhowden/tag"
	"github.com/dsoprea/go-exif/v3"

	heicexif "github.com/dsoprea/go-heic-exif-extractor"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	pngstructure "github.com/dsoprea/go-png-image-structure"
	tiffstructure "github.com/dsoprea/go-tiff-image-structure"
	riimage "github.com/dsoprea/go-utility/image"
)

type exifParser interface {
	Parse(rs io.ReadSeeker, size int) (ec riimage.MediaContext, err error)
}

func getExifParser(ext string) exifParser {
	switch ext {
	case ".jpg", ".jpeg":
		return jpegstructure.NewJpegMediaParser()
	case ".png":
		return pngstructure.NewPngMediaParser()
	case ".tiff":
		return tiffstructure.NewTiffMediaParser()
	case ".heic", ".heif", ".avif":
		return heicexif.NewHeicExifMediaParser()
	default:
		// 其他 RAW 格式依赖蛮力搜索
		return nil
	}
}

// ExtractionService 负责从本地媒体文件中提取元数据并写入 metadata 表。
// 单个提取器失败只记录日志不中断，外部工具缺失按降级处理。
type ExtractionService struct {
	metaRepo   repository.MetadataRepository
	settingSvc setting.SettingService
	probeSvc   *FFProbeService
}

// NewExtractionService 构造函数。
func NewExtractionService(
	metaRepo repository.MetadataRepository,
	settingSvc setting.SettingService,
	probeSvc *FFProbeService,
) *ExtractionService {
	return &ExtractionService{
		metaRepo:   metaRepo,
		settingSvc: settingSvc,
		probeSvc:   probeSvc,
	}
}

// ExtractAndSave 是此服务的主要入口点，按资产的媒体类型分发。
func (s *ExtractionService) ExtractAndSave(ctx context.Context, asset *model.Asset, sourcePath string) error {
	log.Printf("[Extractor] 开始为资产 %d (%s) 提取元数据...", asset.ID, asset.MediaKind)

	switch asset.MediaKind {
	case constant.MediaKindImage:
		s.extractImageBasics(ctx, asset, sourcePath)
		s.extractExif(ctx, asset, sourcePath)
		s.extractPrimaryColor(ctx, asset, sourcePath)
	case constant.MediaKindVideo:
		if err := s.extractProbeInfo(ctx, asset, sourcePath); err != nil {
			return err
		}
	case constant.MediaKindAudio:
		if err := s.extractProbeInfo(ctx, asset, sourcePath); err != nil {
			return err
		}
		s.extractMusicTags(ctx, asset, sourcePath)
	}

	log.Printf("[Extractor] 资产 %d 的元数据提取流程完成。", asset.ID)
	return nil
}

// extractImageBasics 解码图片头获取尺寸，无需读取完整像素。
func (s *ExtractionService) extractImageBasics(ctx context.Context, asset *model.Asset, sourcePath string) {
	f, err := os.Open(sourcePath)
	if err != nil {
		log.Printf("[Extractor] 错误: 打开资产 %d 的本地文件失败: %v", asset.ID, err)
		return
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		log.Printf("[Extractor] 信息: 解码资产 %d 的图片头失败: %v", asset.ID, err)
		return
	}
	s.saveMetadataFromMap(ctx, asset.ID, map[string]string{
		model.MetaKeyMediaWidth:  strconv.Itoa(cfg.Width),
		model.MetaKeyMediaHeight: strconv.Itoa(cfg.Height),
	})
}

func (s *ExtractionService) extractExif(ctx context.Context, asset *model.Asset, sourcePath string) {
	if !s.settingSvc.GetBool(constant.KeyEnableExifExtractor.String()) {
		return
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		log.Printf("[Extractor-Exif] 错误: 打开资产 %d 的本地文件失败: %v", asset.ID, err)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return
	}

	ext := strings.ToLower(asset.Ext())
	parser := getExifParser(ext)
	var exifData []byte

	// 1. 尝试结构化解析
	if parser != nil {
		if res, pErr := parser.Parse(f, int(stat.Size())); pErr == nil {
			_, exifData, _ = res.Exif()
		} else {
			log.Printf("[Extractor-Exif] 信息: 结构化解析资产 %d 失败: %v。将尝试蛮力搜索。", asset.ID, pErr)
		}
	}

	// 2. 失败且配置允许时蛮力搜索
	if s.settingSvc.GetBool(constant.KeyExifUseBruteForce.String()) && len(exifData) == 0 {
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return
		}
		exifData, err = exif.SearchAndExtractExifWithReader(f)
		if err != nil && !errors.Is(err, exif.ErrNoExif) {
			log.Printf("[Extractor-Exif] 警告: 为资产 %d 进行蛮力搜索时出错: %v", asset.ID, err)
		}
	}

	if len(exifData) == 0 {
		return
	}

	// 3. 解析提取到的 EXIF 数据块
	entries, _, err := exif.GetFlatExifData(exifData, nil)
	if err != nil {
		log.Printf("[Extractor-Exif] 错误: 解析资产 %d 的EXIF条目失败: %v", asset.ID, err)
		return
	}

	rawExifMap := make(map[string]string)
	for _, entry := range entries {
		if entry.TagName == "" {
			continue
		}
		cleaned := strings.ReplaceAll(entry.FormattedFirst, "\x00", "")
		if cleaned != "" {
			rawExifMap[entry.TagName] = cleaned
		}
	}

	if len(rawExifMap) > 0 {
		mapped := mapExifData(rawExifMap)
		s.saveMetadataFromMap(ctx, asset.ID, mapped)
		log.Printf("[Extractor-Exif] 成功为资产 %d 提取并保存 %d 条EXIF信息。", asset.ID, len(mapped))
	}
}

func mapExifData(exifMap map[string]string) map[string]string {
	metasToSave := make(map[string]string)
	if v, ok := exifMap["Make"]; ok {
		metasToSave[model.MetaKeyExifMake] = v
	}
	if v, ok := exifMap["Model"]; ok {
		metasToSave[model.MetaKeyExifModel] = v
	}
	if v, ok := exifMap["Software"]; ok {
		metasToSave[model.MetaKeyExifSoftware] = v
	}
	if v, ok := exifMap["ExposureTime"]; ok {
		metasToSave[model.MetaKeyExifExposureTime] = v
	}
	if v, ok := exifMap["ISOSpeedRatings"]; ok {
		metasToSave[model.MetaKeyExifISOSpeed] = v
	}
	for _, tagName := range []string{"DateTimeOriginal", "CreateDate", "DateTime"} {
		if value, ok := exifMap[tagName]; ok {
			if t, err := time.Parse("2006:01:02 15:04:05", value); err == nil {
				metasToSave[model.MetaKeyExifDateTime] = t.Format(time.RFC3339)
				break
			}
		}
	}
	if v, ok := exifMap["FNumber"]; ok {
		if f, err := parseRational(v); err == nil {
			metasToSave[model.MetaKeyExifFNumber] = fmt.Sprintf("%.1f", f)
		}
	}
	if v, ok := exifMap["FocalLength"]; ok {
		if f, err := parseRational(v); err == nil {
			metasToSave[model.MetaKeyExifFocalLength] = fmt.Sprintf("%d", int(f))
		}
	}
	return metasToSave
}

func parseRational(s string) (float64, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, errors.New("invalid rational format")
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, errors.New("invalid rational components")
	}
	return num / den, nil
}

func (s *ExtractionService) extractPrimaryColor(ctx context.Context, asset *model.Asset, sourcePath string) {
	if !s.settingSvc.GetBool(constant.KeyEnableColorExtractor.String()) {
		return
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return
	}
	defer f.Close()

	color, err := PrimaryColor(f)
	if err != nil {
		log.Printf("[Extractor-Color] 信息: 提取资产 %d 的主色调失败: %v", asset.ID, err)
		return
	}
	s.saveMetadataFromMap(ctx, asset.ID, map[string]string{model.MetaKeyPrimaryColor: color})
}

// extractProbeInfo 用 ffprobe 提取音视频的技术信息。
// 工具不可用时降级为跳过，零时长视频视为内容损坏。
func (s *ExtractionService) extractProbeInfo(ctx context.Context, asset *model.Asset, sourcePath string) error {
	res, err := s.probeSvc.Probe(ctx, sourcePath)
	if err != nil {
		if errors.Is(err, constant.ErrToolUnavailable) {
			return nil
		}
		return fmt.Errorf("探测资产 %d 失败: %w", asset.ID, err)
	}

	if asset.MediaKind == constant.MediaKindVideo && res.Duration <= 0 {
		return fmt.Errorf("资产 %d 的视频时长为零: %w", asset.ID, constant.ErrCorrupted)
	}

	meta := map[string]string{
		model.MetaKeyMediaDuration: strconv.FormatFloat(res.Duration, 'f', 3, 64),
		model.MetaKeyMediaCodec:    res.Codec,
		model.MetaKeyMediaBitRate:  res.BitRate,
	}
	if res.Width > 0 {
		meta[model.MetaKeyMediaWidth] = strconv.Itoa(res.Width)
		meta[model.MetaKeyMediaHeight] = strconv.Itoa(res.Height)
	}
	if res.FrameRate > 0 {
		meta[model.MetaKeyMediaFrameRate] = strconv.FormatFloat(res.FrameRate, 'f', 2, 64)
	}
	s.saveMetadataFromMap(ctx, asset.ID, meta)
	return nil
}

func (s *ExtractionService) extractMusicTags(ctx context.Context, asset *model.Asset, sourcePath string) {
	if !s.settingSvc.GetBool(constant.KeyEnableMusicExtractor.String()) {
		return
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return
	}
	musicData := map[string]string{
		model.MetaKeyMusicFormat:      string(m.FileType()),
		model.MetaKeyMusicTitle:       m.Title(),
		model.MetaKeyMusicAlbum:       m.Album(),
		model.MetaKeyMusicArtist:      m.Artist(),
		model.MetaKeyMusicAlbumArtist: m.AlbumArtist(),
		model.MetaKeyMusicComposer:    m.Composer(),
		model.MetaKeyMusicGenre:       m.Genre(),
		model.MetaKeyMusicYear:        strconv.Itoa(m.Year()),
	}
	s.saveMetadataFromMap(ctx, asset.ID, musicData)
	log.Printf("[Extractor-Music] 成功为资产 %d 提取音乐标签。", asset.ID)
}

func (s *ExtractionService) saveMetadataFromMap(ctx context.Context, assetID uint, data map[string]string) {
	for key, value := range data {
		if value == "" || value == "0" {
			continue
		}
		if err := s.metaRepo.Set(ctx, assetID, key, value); err != nil {
			log.Printf("[Extractor] 错误: 保存元数据 (AssetID: %d, Key: %s) 失败: %v", assetID, key, err)
		}
	}
}
