/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 10:21:09
 * @LastEditTime: 2025-11-20 18:03:41
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrSizeExceeded 表示下载内容超出大小上限，属于策略类错误，不重试
	ErrSizeExceeded = errors.New("内容大小超出上限")

	// ErrRemoteNotFound 表示远端返回 404。生成类资源存在 CDN 同步延迟，
	// 该错误按可重试处理，但使用更长的递增间隔。
	ErrRemoteNotFound = errors.New("远端资源不存在")

	// ErrTransport 表示可重试的网络/超时类错误
	ErrTransport = errors.New("网络传输错误")

	// ErrToolUnavailable 表示可选的外部媒体工具（ffmpeg/ffprobe）不可用
	ErrToolUnavailable = errors.New("外部媒体工具不可用")

	// ErrCorrupted 表示内容损坏（零字节下载、零时长视频、非法尺寸等）
	ErrCorrupted = errors.New("内容已损坏")
)
