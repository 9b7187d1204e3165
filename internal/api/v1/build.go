package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chirine05/costbench-api/internal/fetcher"
	"github.com/chirine05/costbench-api/internal/importer"
	"github.com/chirine05/costbench-api/internal/model"
	"github.com/chirine05/costbench-api/internal/reporter"
)

// Build 构建各公司成本基准工作簿
// POST /buildPerCompanyWorkbook
func (h *Handler) Build(c *gin.Context) {
	var req model.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}
	if len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "files[] required"})
		return
	}

	report, err := h.coordinator.Run(importer.BuildOptions{
		Files:        req.Files,
		BaseCurrency: req.BaseCurrencyOverride(),
	})
	if err != nil {
		c.JSON(buildErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.BuildResult{
		FileURL:  h.cfg.Server.PublicBaseURL + "/out/" + report.OutputFile,
		FileName: reporter.DownloadName,
	})
}

// buildErrorStatus 构建失败的 HTTP 状态码
// 文件内容缺失或损坏归为 400，远端下载失败归为 502，其余归为 500
func buildErrorStatus(err error) int {
	var fe *fetcher.FetchError
	if errors.As(err, &fe) {
		if fe.Upstream {
			return http.StatusBadGateway
		}
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
