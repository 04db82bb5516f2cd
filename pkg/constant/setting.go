/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 10:21:09
 * @LastEditTime: 2025-12-05 09:47:12
 * @LastEditors: 安知鱼
 */
package constant

// SettingKey 为所有在应用中使用的配置键定义了类型安全的常量。
type SettingKey string

// String 方便地将 SettingKey 转换为 string 类型。
func (k SettingKey) String() string {
	return string(k)
}

const (
	// --- 站点基础配置 ---
	KeyAppName    SettingKey = "APP_NAME"
	KeySiteURL    SettingKey = "SITE_URL"
	KeyAppVersion SettingKey = "APP_VERSION"

	// --- 去重配置 ---
	KeyDedupPhashThreshold  SettingKey = "DEDUP_PHASH_THRESHOLD"   // 感知哈希近似判定阈值 (汉明距离)
	KeyDedupEnableURLFallbk SettingKey = "DEDUP_ENABLE_URL_FALLBACK" // 是否启用 URL 尾段子串兜底匹配
	KeyDedupURLAuditPrefix  SettingKey = "DEDUP_URL_AUDIT_PREFIX"  // URL 兜底命中审计计数器的缓存键前缀

	// --- 摄取管道配置 ---
	KeyIngestMaxBytes       SettingKey = "INGEST_MAX_BYTES"       // 单次下载的最大字节数
	KeyIngestConcurrency    SettingKey = "INGEST_CONCURRENCY"     // 进程级并发摄取上限
	KeyIngestSweepBatchSize SettingKey = "INGEST_SWEEP_BATCH_SIZE" // 后台扫描单批处理的 pending 记录数
	KeyIngestFetchTimeout   SettingKey = "INGEST_FETCH_TIMEOUT"   // 单次网络获取的总超时 (秒)
	KeyIngestFetchRateLimit SettingKey = "INGEST_FETCH_RATE"      // Fetcher 每秒请求数上限

	// --- 衍生图配置 ---
	KeyThumbnailBoxSize SettingKey = "THUMBNAIL_BOX_SIZE" // 缩略图边界框 (像素)
	KeyPreviewBoxSize   SettingKey = "PREVIEW_BOX_SIZE"   // 预览图边界框 (像素)
	KeyPreviewQuality   SettingKey = "PREVIEW_QUALITY"    // 预览图 JPEG 质量
	KeyFfmpegPath       SettingKey = "FFMPEG_PATH"        // ffmpeg 可执行文件路径
	KeyFfprobePath      SettingKey = "FFPROBE_PATH"       // ffprobe 可执行文件路径
	KeyMediaToolTimeout SettingKey = "MEDIA_TOOL_TIMEOUT" // 外部媒体工具的单次调用超时 (秒)

	// --- 元数据提取配置 ---
	KeyEnableExifExtractor  SettingKey = "ENABLE_EXIF_EXTRACTOR"  // 是否启用 EXIF 提取
	KeyExifUseBruteForce    SettingKey = "EXIF_USE_BRUTE_FORCE"   // 结构化解析失败时是否蛮力搜索
	KeyEnableMusicExtractor SettingKey = "ENABLE_MUSIC_EXTRACTOR" // 是否启用音频标签提取
	KeyEnableColorExtractor SettingKey = "ENABLE_COLOR_EXTRACTOR" // 是否启用图片主色提取

	// --- 存储配置 ---
	KeyStorageDriver    SettingKey = "STORAGE_DRIVER"     // 内容寻址存储驱动 (local / s3)
	KeyStorageBasePath  SettingKey = "STORAGE_BASE_PATH"  // 本地驱动的根目录
	KeyStorageS3Bucket  SettingKey = "STORAGE_S3_BUCKET"  // S3 驱动的桶名
	KeyStorageS3Region  SettingKey = "STORAGE_S3_REGION"  // S3 驱动的区域
	KeyStorageS3Endpoint SettingKey = "STORAGE_S3_ENDPOINT" // S3 兼容服务的自定义端点，留空使用官方
	KeyStorageS3AccessKey SettingKey = "STORAGE_S3_ACCESS_KEY"
	KeyStorageS3SecretKey SettingKey = "STORAGE_S3_SECRET_KEY"
)
