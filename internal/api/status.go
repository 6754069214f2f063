package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsight/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool                        `json:"initialized"`    // 是否已有导入数据
	Version        string                      `json:"version"`        // 当前版本标签
	TotalRows      int                         `json:"totalRows"`      // 全表合计行数
	Counts         map[model.TableCategory]int `json:"counts"`         // 各分类行数
	LastImportTime string                      `json:"lastImportTime"` // 最后成功导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Version:   h.store.Version(),
		TotalRows: h.store.TotalRows(),
		Counts:    h.store.Counts(),
	}
	resp.Initialized = resp.TotalRows > 0

	if h.audit != nil {
		if t, err := h.audit.LastImportTime(); err == nil {
			resp.LastImportTime = t.Format("2006-01-02 15:04:05")
		}
	}

	c.JSON(http.StatusOK, resp)
}
