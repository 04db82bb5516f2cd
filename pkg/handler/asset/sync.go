package asset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/response"
	asset_service "github.com/anzhiyu-c/mediaflow/pkg/service/asset"

	"github.com/gin-gonic/gin"
)

// SyncRequest 是提供商同步接口的入参。
type SyncRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	NativeID   string `json:"native_id" binding:"required"`
	MediaKind  string `json:"media_kind"`
	RemoteURL  string `json:"remote_url"`
	MimeType   string `json:"mime_type"`

	RawMetadata model.JSONMap `json:"raw_metadata"`

	Operation string        `json:"operation"`
	Params    model.JSONMap `json:"params"`
	Inputs    []string      `json:"inputs"`
}

// Sync 处理提供商记录同步的请求 (POST /api/asset/sync)
// @Summary      同步提供商记录
// @Description  按身份信号去重后落库，生成信息与内嵌资产一并处理
// @Tags         资产管理
// @Accept       json
// @Produce      json
// @Router       /asset/sync [post]
func (h *AssetHandler) Sync(c *gin.Context) {
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	kind := constant.MediaKind(req.MediaKind)
	if req.MediaKind == "" {
		kind = constant.MediaKindImage
	}

	item := asset_service.SyncItem{
		ProviderID: req.ProviderID,
		NativeID:   req.NativeID,
		MediaKind:  kind,
		RemoteURL:  req.RemoteURL,
		MimeType:   req.MimeType,
		Operation:  req.Operation,
		Params:     req.Params,
		Inputs:     req.Inputs,
	}
	if len(req.RawMetadata) > 0 {
		raw, err := json.Marshal(req.RawMetadata)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "提供商负载无法序列化: "+err.Error())
			return
		}
		item.RawMetadata = raw
	}

	synced, reused, err := h.assetSvc.SyncFromProvider(c.Request.Context(), ownerIDFromRequest(c), item)
	if err != nil {
		if errors.Is(err, constant.ErrBadRequest) {
			response.Fail(c, http.StatusBadRequest, "同步失败: "+err.Error())
		} else {
			response.Fail(c, http.StatusInternalServerError, "同步失败: "+err.Error())
		}
		return
	}

	result := &UploadResultDTO{Asset: toAssetDTO(synced), Reused: reused}
	if reused {
		result.Note = "身份信号命中已有资产，已复用"
		response.Success(c, result, "同步记录命中已有资产")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, result, "同步成功，摄取任务已排队")
}
