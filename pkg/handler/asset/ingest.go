package asset

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
	"github.com/anzhiyu-c/mediaflow/pkg/response"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"

	"github.com/gin-gonic/gin"
)

// IngestRequest 是手动触发摄取的入参。
// Steps 为空时执行全部阶段；Force 允许重跑 failed/completed 的资产。
type IngestRequest struct {
	Force bool     `json:"force"`
	Steps []string `json:"steps"`
}

// Ingest 处理手动触发摄取的请求 (POST /api/asset/:publicID/ingest)
// @Summary      触发摄取
// @Description  同步执行摄取管道并返回每个阶段的结果
// @Tags         资产管理
// @Accept       json
// @Produce      json
// @Router       /asset/{publicID}/ingest [post]
func (h *AssetHandler) Ingest(c *gin.Context) {
	assetID, ok := decodeAssetID(c)
	if !ok {
		return
	}

	var req IngestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
			return
		}
	}

	outcome, err := h.pipeline.Process(c.Request.Context(), assetID, ingest.Options{
		Force: req.Force,
		Steps: req.Steps,
	})
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "资产不存在")
		} else if errors.Is(err, constant.ErrConflict) {
			response.Fail(c, http.StatusConflict, "摄取失败: "+err.Error())
		} else {
			response.Fail(c, http.StatusInternalServerError, "摄取失败: "+err.Error())
		}
		return
	}

	response.Success(c, toStageResultDTOs(outcome), "摄取执行完毕")
}

// decodeAssetID 解析路径中的资产公共ID，失败时直接写响应。
func decodeAssetID(c *gin.Context) (uint, bool) {
	publicID := c.Param("publicID")
	id, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeAsset {
		response.Fail(c, http.StatusBadRequest, "无效的资产ID")
		return 0, false
	}
	return id, true
}
