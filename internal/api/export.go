package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitsight/internal/exporter"
)

// Export 导出 Excel 工作簿（基于基准场景，直接返回二进制）
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	exp := exporter.NewExporter(h.store)

	file, err := exp.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败"})
		return
	}
	defer file.Close()

	buf, err := file.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入导出文件失败"})
		return
	}

	filename := fmt.Sprintf("fitsight_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
