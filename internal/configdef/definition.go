package configdef

import (
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
)

// Definition 定义了单个配置项的所有属性。
type Definition struct {
	Key      constant.SettingKey
	Value    string
	Comment  string
	IsPublic bool
}

// AllSettings 是系统中所有配置项的"单一事实来源"。
// 启动时写入数据库（若不存在），运行时由 SettingService 缓存并可在线更新。
var AllSettings = []Definition{
	// --- 站点基础配置 ---
	{Key: constant.KeyAppName, Value: "MediaFlow", Comment: "应用名称", IsPublic: true},
	{Key: constant.KeySiteURL, Value: "/", Comment: "应用URL", IsPublic: true},
	{Key: constant.KeyAppVersion, Value: "1.0.0", Comment: "应用版本", IsPublic: true},

	// --- 去重配置 ---
	{Key: constant.KeyDedupPhashThreshold, Value: "5", Comment: "感知哈希近似判定的最大汉明距离", IsPublic: false},
	{Key: constant.KeyDedupEnableURLFallbk, Value: "true", Comment: "是否启用来源URL尾段的兜底匹配 (true/false)", IsPublic: false},
	{Key: constant.KeyDedupURLAuditPrefix, Value: "dedup:url_fallback:", Comment: "URL兜底命中审计计数器的缓存键前缀", IsPublic: false},

	// --- 摄取管道配置 ---
	{Key: constant.KeyIngestMaxBytes, Value: "524288000", Comment: "单次下载的最大字节数 (默认500MB)，0为不限制", IsPublic: false},
	{Key: constant.KeyIngestConcurrency, Value: "4", Comment: "进程级并发摄取上限", IsPublic: false},
	{Key: constant.KeyIngestSweepBatchSize, Value: "50", Comment: "后台扫描单批处理的待摄取记录数", IsPublic: false},
	{Key: constant.KeyIngestFetchTimeout, Value: "120", Comment: "单次网络获取的总超时 (秒)", IsPublic: false},
	{Key: constant.KeyIngestFetchRateLimit, Value: "8", Comment: "远端获取的每秒请求数上限", IsPublic: false},

	// --- 衍生图配置 ---
	{Key: constant.KeyThumbnailBoxSize, Value: "400", Comment: "缩略图边界框 (像素)", IsPublic: true},
	{Key: constant.KeyPreviewBoxSize, Value: "1200", Comment: "预览图边界框 (像素)，只缩不放", IsPublic: true},
	{Key: constant.KeyPreviewQuality, Value: "85", Comment: "预览图 JPEG 质量 (1-100)", IsPublic: true},
	{Key: constant.KeyFfmpegPath, Value: "ffmpeg", Comment: "FFmpeg 命令的路径或名称 (默认 'ffmpeg'，让系统自动搜索)", IsPublic: false},
	{Key: constant.KeyFfprobePath, Value: "ffprobe", Comment: "FFprobe 命令的路径或名称 (默认 'ffprobe'，让系统自动搜索)", IsPublic: false},
	{Key: constant.KeyMediaToolTimeout, Value: "30", Comment: "外部媒体工具的单次调用超时 (秒)", IsPublic: false},

	// --- 元数据提取配置 ---
	{Key: constant.KeyEnableExifExtractor, Value: "true", Comment: "是否启用图片 EXIF 提取 (true/false)", IsPublic: false},
	{Key: constant.KeyExifUseBruteForce, Value: "false", Comment: "结构化解析失败时是否蛮力搜索 EXIF 块 (true/false)", IsPublic: false},
	{Key: constant.KeyEnableMusicExtractor, Value: "true", Comment: "是否启用音频标签提取 (true/false)", IsPublic: false},
	{Key: constant.KeyEnableColorExtractor, Value: "true", Comment: "是否启用图片主色提取 (true/false)", IsPublic: false},

	// --- 存储配置 ---
	{Key: constant.KeyStorageDriver, Value: "local", Comment: "内容寻址存储驱动 (local / s3)", IsPublic: false},
	{Key: constant.KeyStorageBasePath, Value: "data/storage", Comment: "本地驱动的根目录", IsPublic: false},
	{Key: constant.KeyStorageS3Bucket, Value: "", Comment: "S3 驱动的桶名", IsPublic: false},
	{Key: constant.KeyStorageS3Region, Value: "", Comment: "S3 驱动的区域", IsPublic: false},
	{Key: constant.KeyStorageS3Endpoint, Value: "", Comment: "S3 兼容服务的自定义端点，留空使用官方", IsPublic: false},
	{Key: constant.KeyStorageS3AccessKey, Value: "", Comment: "S3 访问密钥ID", IsPublic: false},
	{Key: constant.KeyStorageS3SecretKey, Value: "", Comment: "S3 访问密钥", IsPublic: false},
}
