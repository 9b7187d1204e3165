package v1

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListBuilds 列出最近的构建记录
// GET /api/builds
func (h *Handler) ListBuilds(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 limit 参数"})
		return
	}

	builds, err := h.store.ListBuildLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  len(builds),
		"builds": builds,
	})
}

// GetBuild 按构建 ID 查询单条构建记录
// GET /api/builds/:id
func (h *Handler) GetBuild(c *gin.Context) {
	buildID := c.Param("id")

	build, err := h.store.GetBuildLog(buildID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "构建记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, build)
}
