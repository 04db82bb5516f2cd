/*
 * @Description: 派生谱系API：图遍历、谱系重建与同参兄弟查询。
 * @Author: 安知鱼
 * @Date: 2025-08-07 10:40:22
 * @LastEditTime: 2025-08-07 10:40:22
 * @LastEditors: 安知鱼
 */
package lineage

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
	"github.com/anzhiyu-c/mediaflow/pkg/response"
	lineage_service "github.com/anzhiyu-c/mediaflow/pkg/service/lineage"

	"github.com/gin-gonic/gin"
)

// LineageHandler 负责处理所有与派生谱系相关的HTTP请求
type LineageHandler struct {
	lineageSvc *lineage_service.Service
	assetRepo  repository.AssetRepository
}

// NewHandler 是 LineageHandler 的构造函数
func NewHandler(
	lineageSvc *lineage_service.Service,
	assetRepo repository.AssetRepository,
) *LineageHandler {
	return &LineageHandler{
		lineageSvc: lineageSvc,
		assetRepo:  assetRepo,
	}
}

// NodeDTO 是谱系图节点的精简表示。
type NodeDTO struct {
	ID           string `json:"id"`
	MediaKind    string `json:"media_kind"`
	IngestStatus string `json:"ingest_status"`
	ThumbnailKey string `json:"thumbnail_key,omitempty"`
}

// EdgeDTO 是谱系图的一条有向边，方向从 parent 指向 child。
type EdgeDTO struct {
	Parent        string `json:"parent"`
	Child         string `json:"child"`
	RelationType  string `json:"relation_type"`
	OperationType string `json:"operation_type,omitempty"`
	SequenceOrder int    `json:"sequence_order"`
}

// GraphDTO 是遍历结果。
type GraphDTO struct {
	Nodes []NodeDTO `json:"nodes"`
	Edges []EdgeDTO `json:"edges"`
}

// Traverse 处理谱系图遍历的请求 (GET /api/lineage/:publicID)
// @Summary      遍历派生谱系
// @Description  从指定资产出发双向遍历谱系图，depth 控制遍历深度
// @Tags         谱系
// @Produce      json
// @Router       /lineage/{publicID} [get]
func (h *LineageHandler) Traverse(c *gin.Context) {
	assetID, ok := h.decodeAssetID(c)
	if !ok {
		return
	}

	depth := lineage_service.DefaultTraversalDepth
	if raw := c.Query("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "无效的深度参数")
			return
		}
		depth = parsed
	}

	result, err := h.lineageSvc.Traverse(c.Request.Context(), assetID, depth)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "资产不存在")
		} else {
			response.Fail(c, http.StatusInternalServerError, "遍历失败: "+err.Error())
		}
		return
	}

	response.Success(c, toGraphDTO(result), "查询成功")
}

// Refresh 处理谱系重建的请求 (POST /api/lineage/:publicID/refresh)
// @Summary      重建谱系
// @Description  删除资产的旧入边并从生成记录重新推导
// @Tags         谱系
// @Produce      json
// @Router       /lineage/{publicID}/refresh [post]
func (h *LineageHandler) Refresh(c *gin.Context) {
	assetID, ok := h.decodeAssetID(c)
	if !ok {
		return
	}

	if err := h.lineageSvc.RefreshLineage(c.Request.Context(), assetID); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "资产不存在")
		} else {
			response.Fail(c, http.StatusInternalServerError, "谱系重建失败: "+err.Error())
		}
		return
	}
	response.Success(c, nil, "谱系重建完成")
}

// Siblings 处理同参兄弟查询的请求 (GET /api/lineage/:publicID/siblings)
// @Summary      查询同参兄弟
// @Description  返回与指定资产共享可复现哈希的其他生成产物
// @Tags         谱系
// @Produce      json
// @Router       /lineage/{publicID}/siblings [get]
func (h *LineageHandler) Siblings(c *gin.Context) {
	assetID, ok := h.decodeAssetID(c)
	if !ok {
		return
	}

	owned, err := h.assetRepo.FindByID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "资产不存在")
		} else {
			response.Fail(c, http.StatusInternalServerError, "查询失败: "+err.Error())
		}
		return
	}

	siblings, err := h.lineageSvc.Siblings(c.Request.Context(), assetID, owned.OwnerID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询失败: "+err.Error())
		return
	}

	nodes := make([]NodeDTO, 0, len(siblings))
	for _, s := range siblings {
		nodes = append(nodes, toNodeDTO(s))
	}
	response.Success(c, nodes, "查询成功")
}

func (h *LineageHandler) decodeAssetID(c *gin.Context) (uint, bool) {
	id, entityType, err := idgen.DecodePublicID(c.Param("publicID"))
	if err != nil || entityType != idgen.EntityTypeAsset {
		response.Fail(c, http.StatusBadRequest, "无效的资产ID")
		return 0, false
	}
	return id, true
}

func toNodeDTO(a *model.Asset) NodeDTO {
	publicID, err := idgen.GeneratePublicID(a.ID, idgen.EntityTypeAsset)
	if err != nil {
		publicID = strconv.FormatUint(uint64(a.ID), 10)
	}
	dto := NodeDTO{
		ID:           publicID,
		MediaKind:    string(a.MediaKind),
		IngestStatus: string(a.IngestStatus),
	}
	if a.ThumbnailKey.Valid {
		dto.ThumbnailKey = a.ThumbnailKey.String
	}
	return dto
}

func toGraphDTO(result *model.TraversalResult) *GraphDTO {
	graph := &GraphDTO{
		Nodes: make([]NodeDTO, 0, len(result.Nodes)),
		Edges: make([]EdgeDTO, 0, len(result.Edges)),
	}
	for _, node := range result.Nodes {
		graph.Nodes = append(graph.Nodes, toNodeDTO(node))
	}
	for _, edge := range result.Edges {
		parentID, err := idgen.GeneratePublicID(edge.ParentID, idgen.EntityTypeAsset)
		if err != nil {
			parentID = strconv.FormatUint(uint64(edge.ParentID), 10)
		}
		childID, err := idgen.GeneratePublicID(edge.ChildID, idgen.EntityTypeAsset)
		if err != nil {
			childID = strconv.FormatUint(uint64(edge.ChildID), 10)
		}
		graph.Edges = append(graph.Edges, EdgeDTO{
			Parent:        parentID,
			Child:         childID,
			RelationType:  string(edge.RelationType),
			OperationType: edge.OperationType,
			SequenceOrder: edge.SequenceOrder,
		})
	}
	return graph
}
