package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListVersions 导入版本历史
// GET /api/versions?limit=50
// 内存中的历史反映本进程生命周期，审计日志跨重启保留
func (h *Handler) ListVersions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp := gin.H{
		"current": h.store.Version(),
		"history": h.store.History(),
	}

	if h.audit != nil {
		logs, err := h.audit.ListImportLogs(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "读取导入历史失败"})
			return
		}
		resp["auditLog"] = logs
	}

	c.JSON(http.StatusOK, resp)
}
