package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/chirine05/costbench-api/internal/config"
	"github.com/chirine05/costbench-api/internal/importer"
	"github.com/chirine05/costbench-api/internal/store"
)

// Handler API 处理器
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator
	cfg         *config.AppConfig
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, coordinator *importer.Coordinator, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:       store,
		coordinator: coordinator,
		cfg:         cfg,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// 健康检查
	router.GET("/health", h.Health)

	// 工作簿构建（需要 API Key）
	router.POST("/buildPerCompanyWorkbook", h.RequireAPIKey(), h.Build)
	router.POST("/buildPerCompanyWorkbook/stream", h.RequireAPIKey(), h.BuildStream)

	// 服务状态与构建历史
	api := router.Group("/api")
	{
		api.GET("/status", h.GetStatus)
		api.GET("/builds", h.ListBuilds)
		api.GET("/builds/:id", h.GetBuild)
	}
}
