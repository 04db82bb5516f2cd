package asset

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetInfo 处理查询资产详情的请求 (GET /api/asset/:publicID)
// @Summary      查询资产
// @Description  返回资产记录及其全部元数据，含摄取状态与最近错误
// @Tags         资产管理
// @Produce      json
// @Router       /asset/{publicID} [get]
func (h *AssetHandler) GetInfo(c *gin.Context) {
	found, meta, err := h.assetSvc.Info(c.Request.Context(), c.Param("publicID"))
	if err != nil {
		if errors.Is(err, constant.ErrInvalidPublicID) {
			response.Fail(c, http.StatusBadRequest, "无效的资产ID")
		} else if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "资产不存在")
		} else {
			response.Fail(c, http.StatusInternalServerError, "查询失败: "+err.Error())
		}
		return
	}

	dto := toAssetDTO(found)
	dto.Metadata = meta
	response.Success(c, dto, "查询成功")
}

// Delete 处理删除资产的请求 (DELETE /api/asset/:publicID)
// @Summary      删除资产
// @Description  删除资产记录并级联清理谱系边与元数据
// @Tags         资产管理
// @Produce      json
// @Router       /asset/{publicID} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	assetID, ok := decodeAssetID(c)
	if !ok {
		return
	}

	if err := h.assetSvc.Delete(c.Request.Context(), assetID); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "资产不存在")
		} else {
			response.Fail(c, http.StatusInternalServerError, "删除失败: "+err.Error())
		}
		return
	}
	response.Success(c, nil, "删除成功")
}
