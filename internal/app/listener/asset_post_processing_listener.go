/*
 * @Description: 统一监听资产事件，并派发后续的摄取与谱系重建任务。
 * @Author: 安知鱼
 * @Date: 2025-08-06 17:02:33
 * @LastEditTime: 2025-08-06 17:02:33
 * @LastEditors: 安知鱼
 */
package listener

import (
	"log"

	"github.com/anzhiyu-c/mediaflow/internal/app/task"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
)

// AssetPostProcessingListener 监听 AssetCreated 事件，
// 把新建资产的摄取工作派发到后台任务队列。
type AssetPostProcessingListener struct {
	broker *task.Broker
}

// NewAssetPostProcessingListener 是 AssetPostProcessingListener 的构造函数。
// 它订阅 AssetCreated 事件，并成为新资产后台处理的唯一入口。
func NewAssetPostProcessingListener(
	eventBus *event.EventBus,
	broker *task.Broker,
) *AssetPostProcessingListener {
	listener := &AssetPostProcessingListener{
		broker: broker,
	}
	// 成为 AssetCreated 事件的唯一订阅者
	eventBus.Subscribe(event.AssetCreated, listener.handleAssetCreated)
	eventBus.Subscribe(event.AssetCompleted, listener.handleAssetCompleted)
	return listener
}

// handleAssetCreated 是事件处理器。
func (l *AssetPostProcessingListener) handleAssetCreated(payload interface{}) {
	evt, ok := payload.(model.AssetCreatedEvent)
	if !ok {
		log.Printf("[AssetPostProcessingListener] 错误：收到的AssetCreated事件负载类型不正确")
		return
	}

	log.Printf("[AssetPostProcessingListener] 收到 AssetCreated 事件 for AssetID %d (来源: %s)，派发摄取任务...",
		evt.AssetID, evt.Source)
	l.broker.DispatchIngest(evt.AssetID, ingest.Options{})
}

// handleAssetCompleted 在摄取成功后异步重建该资产的谱系边，
// 让同步时尚未入库的父资产有机会被补齐。
func (l *AssetPostProcessingListener) handleAssetCompleted(payload interface{}) {
	evt, ok := payload.(ingest.AssetCompletedEvent)
	if !ok {
		log.Printf("[AssetPostProcessingListener] 错误：收到的AssetCompleted事件负载类型不正确")
		return
	}
	if evt.Status != constant.IngestStatusCompleted {
		return
	}

	l.broker.DispatchLineageRefresh(evt.AssetID)
}
