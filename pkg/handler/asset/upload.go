package asset

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/response"
	asset_service "github.com/anzhiyu-c/mediaflow/pkg/service/asset"

	"github.com/gin-gonic/gin"
)

// ownerIDFromRequest 从请求中解析 owner_id，缺省为 1。
// 多租户鉴权不在本服务范围内，调用方自带 owner 标识。
func ownerIDFromRequest(c *gin.Context) uint {
	raw := c.Query("owner_id")
	if raw == "" {
		raw = c.PostForm("owner_id")
	}
	if raw == "" {
		return 1
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 1
	}
	return uint(id)
}

// Upload 处理直接上传的请求 (POST /api/asset/upload)
// @Summary      上传资产
// @Description  接收文件字节流，按内容哈希与感知指纹去重，命中时复用已有资产
// @Tags         资产管理
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "文件内容"
// @Success      200  {object}  response.Response  "命中复用"
// @Success      201  {object}  response.Response  "创建成功"
// @Failure      400  {object}  response.Response  "请求参数无效"
// @Failure      500  {object}  response.Response  "上传失败"
// @Router       /asset/upload [post]
func (h *AssetHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少文件内容: "+err.Error())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无法读取上传内容: "+err.Error())
		return
	}
	defer src.Close()

	created, reused, err := h.assetSvc.Upload(c.Request.Context(), asset_service.UploadInput{
		OwnerID:  ownerIDFromRequest(c),
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Reader:   src,
	})
	if err != nil {
		if errors.Is(err, constant.ErrCorrupted) {
			response.Fail(c, http.StatusBadRequest, "上传失败: "+err.Error())
		} else {
			response.Fail(c, http.StatusInternalServerError, "上传失败: "+err.Error())
		}
		return
	}

	result := &UploadResultDTO{Asset: toAssetDTO(created), Reused: reused}
	if reused {
		result.Note = "内容与已有资产一致，已复用"
		response.Success(c, result, "上传内容命中已有资产")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, result, "上传成功，摄取任务已排队")
}
