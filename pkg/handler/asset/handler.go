/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-07 09:15:10
 * @LastEditTime: 2025-08-07 09:15:10
 * @LastEditors: 安知鱼
 */
// pkg/handler/asset/handler.go
package asset

import (
	asset_service "github.com/anzhiyu-c/mediaflow/pkg/service/asset"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
)

// AssetHandler 负责处理所有与资产相关的HTTP请求
type AssetHandler struct {
	assetSvc *asset_service.Service
	pipeline *ingest.Pipeline
}

// NewHandler 是 AssetHandler 的构造函数
func NewHandler(
	assetSvc *asset_service.Service,
	pipeline *ingest.Pipeline,
) *AssetHandler {
	return &AssetHandler{
		assetSvc: assetSvc,
		pipeline: pipeline,
	}
}
