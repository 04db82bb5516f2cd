/*
 * @Description: 派生谱系图的领域模型（父子边及遍历结果）。
 * @Author: 安知鱼
 * @Date: 2025-08-02 11:31:27
 * @LastEditTime: 2025-12-28 20:14:02
 * @LastEditors: 安知鱼
 */
package model

import (
	"database/sql"
	"time"
)

// RelationType 枚举父资产在一次生成操作中扮演的角色。
type RelationType string

const (
	RelationSourceImage    RelationType = "source_image"    // 图生图/图生视频的源图
	RelationTransitionInput RelationType = "transition_input" // 转场生成的输入端
	RelationPausedFrame    RelationType = "paused_frame"    // 从视频暂停帧派生
	RelationKeyframe       RelationType = "keyframe"        // 关键帧输入
	RelationEmbedded       RelationType = "embedded"        // 从另一资产中内嵌提取
)

// LineageEdge 是派生图中一条 child ← parent 的有向边。
// 同一对资产之间允许多条边，但 (relation type, sequence order) 必须不同。
// 边一经写入不可变，仅允许填充此前为 NULL 的可选字段。
type LineageEdge struct {
	ID        uint
	CreatedAt time.Time

	ChildID  uint
	ParentID uint

	RelationType  RelationType
	OperationType string // 产生 child 的生成操作类型
	SequenceOrder int    // 同一操作多个父输入时的位次

	// 当父资产是视频且只使用了其中一段/一帧时填充。
	ParentTimeStart sql.NullFloat64 // 秒
	ParentTimeEnd   sql.NullFloat64 // 秒
	ParentFrame     sql.NullInt64

	// 多输入合成时的影响描述。权重取值 0–1。
	InfluenceType   sql.NullString
	InfluenceWeight sql.NullFloat64
	InfluenceRegion sql.NullString
}

// EdgeKey 返回边在遍历去重时使用的标识。
// 同一条边可能被上行、下行两个方向分别发现。
func (e *LineageEdge) EdgeKey() EdgeKey {
	return EdgeKey{
		Source:        e.ParentID,
		Target:        e.ChildID,
		RelationType:  e.RelationType,
		SequenceOrder: e.SequenceOrder,
	}
}

// EdgeKey 是 (source, target, relation type, sequence order) 四元组。
type EdgeKey struct {
	Source        uint
	Target        uint
	RelationType  RelationType
	SequenceOrder int
}

// ParentRef 是 AddEdges 的单个父输入声明。
type ParentRef struct {
	ParentID      uint
	RelationType  RelationType
	OperationType string
	SequenceOrder int

	ParentTimeStart sql.NullFloat64
	ParentTimeEnd   sql.NullFloat64
	ParentFrame     sql.NullInt64

	InfluenceType   sql.NullString
	InfluenceWeight sql.NullFloat64
	InfluenceRegion sql.NullString
}

// EmbeddedParentRecord 是内嵌子资产父引用的持久化形式，
// 以 JSON 数组存放在子资产的 MetaKeyEmbeddedParents 元数据中。
type EmbeddedParentRecord struct {
	ParentID      uint         `json:"parent_id"`
	RelationType  RelationType `json:"relation_type"`
	OperationType string       `json:"operation_type"`
	SequenceOrder int          `json:"sequence_order"`
}

// TraversalResult 是有界深度双向遍历的结果：去重后的节点与边集合。
type TraversalResult struct {
	Nodes []*Asset
	Edges []*LineageEdge
}
