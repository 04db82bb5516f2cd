/*
 * @Description: 资产元数据的键常量定义。
 * @Author: 安知鱼
 * @Date: 2025-08-03 09:15:22
 * @LastEditTime: 2025-08-03 09:15:22
 * @LastEditors: 安知鱼
 */
package model

// 元数据键统一使用 "分类:字段" 的命名，写入 metadata 表时
// 同一资产同一键后写覆盖先写。

// --- 通用媒体信息 ---
const (
	MetaKeyMediaWidth     = "media:width"
	MetaKeyMediaHeight    = "media:height"
	MetaKeyMediaDuration  = "media:duration"   // 秒，带小数
	MetaKeyMediaFrameRate = "media:frame_rate" // 平均帧率
	MetaKeyMediaCodec     = "media:codec"
	MetaKeyMediaBitRate   = "media:bit_rate"
	MetaKeyPrimaryColor   = "media:primary_color" // #rrggbb
)

// --- EXIF ---
const (
	MetaKeyExifMake         = "exif:make"
	MetaKeyExifModel        = "exif:model"
	MetaKeyExifSoftware     = "exif:software"
	MetaKeyExifDateTime     = "exif:date_time"
	MetaKeyExifExposureTime = "exif:exposure_time"
	MetaKeyExifFNumber      = "exif:f_number"
	MetaKeyExifISOSpeed     = "exif:iso_speed"
	MetaKeyExifFocalLength  = "exif:focal_length"
)

// --- 音频标签 ---
const (
	MetaKeyMusicFormat      = "music:format"
	MetaKeyMusicTitle       = "music:title"
	MetaKeyMusicAlbum       = "music:album"
	MetaKeyMusicArtist      = "music:artist"
	MetaKeyMusicAlbumArtist = "music:album_artist"
	MetaKeyMusicComposer    = "music:composer"
	MetaKeyMusicGenre       = "music:genre"
	MetaKeyMusicYear        = "music:year"
)

// --- 提供商透传 ---
const (
	MetaKeyProviderPrompt = "provider:prompt"
	MetaKeyProviderModel  = "provider:model"
	MetaKeyProviderSeed   = "provider:seed"
)

// --- 谱系来源 ---
const (
	// MetaKeyEmbeddedParents 以 JSON 数组保存内嵌子资产的父引用，
	// 谱系重建时作为生成记录之外的第二个推导来源。
	MetaKeyEmbeddedParents = "lineage:embedded_parents"
)
