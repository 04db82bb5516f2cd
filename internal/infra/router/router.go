/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-07 11:05:33
 * @LastEditTime: 2025-08-07 11:05:33
 * @LastEditors: 安知鱼
 */
// mediaflow/internal/infra/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	asset_handler "github.com/anzhiyu-c/mediaflow/pkg/handler/asset"
	lineage_handler "github.com/anzhiyu-c/mediaflow/pkg/handler/lineage"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	assetHandler   *asset_handler.AssetHandler
	lineageHandler *lineage_handler.LineageHandler
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	assetHandler *asset_handler.AssetHandler,
	lineageHandler *lineage_handler.LineageHandler,
) *Router {
	return &Router{
		assetHandler:   assetHandler,
		lineageHandler: lineageHandler,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	r.registerAssetRoutes(apiGroup)
	r.registerLineageRoutes(apiGroup)
}

// registerAssetRoutes 注册资产模块的路由。
func (r *Router) registerAssetRoutes(api *gin.RouterGroup) {
	assetGroup := api.Group("/asset")
	{
		assetGroup.POST("/upload", r.assetHandler.Upload)
		assetGroup.POST("/sync", r.assetHandler.Sync)
		assetGroup.GET("/:publicID", r.assetHandler.GetInfo)
		assetGroup.DELETE("/:publicID", r.assetHandler.Delete)
		assetGroup.POST("/:publicID/ingest", r.assetHandler.Ingest)
	}
}

// registerLineageRoutes 注册谱系模块的路由。
func (r *Router) registerLineageRoutes(api *gin.RouterGroup) {
	lineageGroup := api.Group("/lineage")
	{
		lineageGroup.GET("/:publicID", r.lineageHandler.Traverse)
		lineageGroup.POST("/:publicID/refresh", r.lineageHandler.Refresh)
		lineageGroup.GET("/:publicID/siblings", r.lineageHandler.Siblings)
	}
}
