/*
 * @Description: 摄取阶段结果与整体状态的折叠规则。
 * @Author: 安知鱼
 * @Date: 2025-08-03 14:25:48
 * @LastEditTime: 2025-08-03 14:25:48
 * @LastEditors: 安知鱼
 */
package ingest

import "github.com/anzhiyu-c/mediaflow/pkg/constant"

// StageOutcome 描述单个阶段的三种结局。
type StageOutcome int

const (
	OutcomeCompleted StageOutcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// 阶段名常量，用于选择性重跑与日志。
const (
	StageEnsureLocal = "ensure_local"
	StageStore       = "store"
	StageMetadata    = "metadata"
	StageThumbnail   = "thumbnail"
	StagePreview     = "preview"
)

// StageResult 是阶段循环中单个阶段的执行记录。
type StageResult struct {
	Stage   string
	Outcome StageOutcome
	Reason  string // 跳过原因，仅 OutcomeSkipped 时有值
	Err     error  // 仅 OutcomeFailed 时有值
	Fatal   bool   // 失败是否终止管道并使整体进入 failed
}

// Outcome 聚合一次管道运行中所有阶段的结果。
type Outcome struct {
	Results []StageResult
}

func (o *Outcome) record(r StageResult) {
	o.Results = append(o.Results, r)
}

// FirstFatal 返回第一个致命失败，没有则返回 nil。
func (o *Outcome) FirstFatal() *StageResult {
	for i := range o.Results {
		if o.Results[i].Outcome == OutcomeFailed && o.Results[i].Fatal {
			return &o.Results[i]
		}
	}
	return nil
}

// Fold 将阶段结果折叠为资产的最终状态。
// 只有致命失败使整体进入 failed，可选阶段的失败不影响整体完成，
// 其对应的阶段时间戳保持未设置以便下次补做。
func (o *Outcome) Fold() constant.IngestStatus {
	if o.FirstFatal() != nil {
		return constant.IngestStatusFailed
	}
	return constant.IngestStatusCompleted
}
