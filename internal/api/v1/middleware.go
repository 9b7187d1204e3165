package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey 校验 x-api-key 请求头
// 未配置 API Key 时放行所有请求
func (h *Handler) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := h.cfg.Server.APIKey
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader("x-api-key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
