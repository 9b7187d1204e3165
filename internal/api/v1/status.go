package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 服务状态响应
type StatusResponse struct {
	TotalBuilds     int    `json:"totalBuilds"`     // 构建总数
	SucceededBuilds int    `json:"succeededBuilds"` // 成功构建数
	LastBuildTime   string `json:"lastBuildTime"`   // 最近构建时间
}

// Health 健康检查
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetStatus 获取服务状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, succeeded, err := h.store.CountBuildLogs()
	if err != nil {
		total = 0
		succeeded = 0
	}

	lastBuild, err := h.store.LastBuildTime()
	if err != nil {
		lastBuild = ""
	}

	c.JSON(http.StatusOK, StatusResponse{
		TotalBuilds:     total,
		SucceededBuilds: succeeded,
		LastBuildTime:   lastBuild,
	})
}
