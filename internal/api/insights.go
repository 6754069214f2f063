package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsight/internal/calculator"
)

// GetInsights 经营洞察摘要
// GET /api/insights
// 未配置摘要服务或调用失败时返回本地降级内容，不报错
func (h *Handler) GetInsights(c *gin.Context) {
	counts := h.store.Counts()
	result := calculator.Calculate(h.store.BaseInput())

	ai := h.summarizer.Summarize(c.Request.Context(), counts, result)

	c.JSON(http.StatusOK, gin.H{
		"ai":     ai,
		"tables": h.store.Tables(),
	})
}
