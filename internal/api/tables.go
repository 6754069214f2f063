package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsight/internal/model"
)

// TablesResponse 全量表快照响应
type TablesResponse struct {
	Version string                              `json:"version"`
	Tables  map[model.TableCategory][]model.Row `json:"tables"`
}

// UpdateTableRequest 单表替换请求
type UpdateTableRequest struct {
	Rows []model.Row `json:"rows" binding:"required"`
}

// GetTables 获取全部表数据
// GET /api/tables
func (h *Handler) GetTables(c *gin.Context) {
	c.JSON(http.StatusOK, TablesResponse{
		Version: h.store.Version(),
		Tables:  h.store.Tables(),
	})
}

// GetTable 获取单张表数据
// GET /api/tables/:name
func (h *Handler) GetTable(c *gin.Context) {
	name := c.Param("name")
	rows, err := h.store.Table(model.TableCategory(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table":   name,
		"columns": model.RequiredColumns(model.TableCategory(name)),
		"rows":    rows,
	})
}

// UpdateTable 替换单张表数据（不生成新版本标签）
// PUT /api/tables/:name
func (h *Handler) UpdateTable(c *gin.Context) {
	name := c.Param("name")
	if !model.IsValidCategory(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的表分类: " + name})
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误", "details": []string{err.Error()}})
		return
	}

	cat := model.TableCategory(name)
	if err := h.store.SetTable(cat, req.Rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, _ := h.store.Table(cat)
	c.JSON(http.StatusOK, gin.H{
		"table": name,
		"rows":  rows,
	})
}
