/*
 * @Description: 媒体类型与摄取状态的常量定义
 * @Author: 安知鱼
 * @Date: 2025-08-02 11:04:33
 * @LastEditTime: 2025-10-19 21:30:08
 * @LastEditors: 安知鱼
 */
package constant

// MediaKind 定义资产的媒体大类。
type MediaKind string

const (
	MediaKindImage   MediaKind = "image"
	MediaKindVideo   MediaKind = "video"
	MediaKindAudio   MediaKind = "audio"
	MediaKindModel3D MediaKind = "3d"
)

// IngestStatus 定义资产摄取管道的状态机。
// 合法迁移: pending → processing → {completed | failed}；
// completed/failed 可在强制重跑时重新进入 processing。
type IngestStatus string

const (
	IngestStatusPending    IngestStatus = "pending"
	IngestStatusProcessing IngestStatus = "processing"
	IngestStatusCompleted  IngestStatus = "completed"
	IngestStatusFailed     IngestStatus = "failed"
)

// CanEnterProcessing 判断从当前状态进入 processing 是否合法。
// force 为 true 时允许从 completed/failed 重新进入。
func (s IngestStatus) CanEnterProcessing(force bool) bool {
	switch s {
	case IngestStatusPending, IngestStatusProcessing:
		return true
	case IngestStatusCompleted, IngestStatusFailed:
		return force
	default:
		return false
	}
}

// LastErrorMaxLen 是持久化 last_error 字段前的截断长度。
const LastErrorMaxLen = 500

// TruncateError 将错误信息截断到可持久化的长度。
func TruncateError(msg string) string {
	if len(msg) <= LastErrorMaxLen {
		return msg
	}
	return msg[:LastErrorMaxLen]
}
