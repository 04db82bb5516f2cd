/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-06 16:10:22
 * @LastEditTime: 2025-08-06 16:10:22
 * @LastEditors: 安知鱼
 */
// internal/app/task/jobs.go
package task

// 它与 cron.Job 接口兼容。
type Job interface {
	Run()
	Name() string
}
