package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsight/internal/calculator"
	"fitsight/internal/model"
)

// ROIResponse ROI 测算响应
type ROIResponse struct {
	Input  model.ROIInput  `json:"input"`
	Result model.ROIResult `json:"result"`
}

// GetROI 基准场景测算
// GET /api/roi
func (h *Handler) GetROI(c *gin.Context) {
	input := h.store.BaseInput()
	c.JSON(http.StatusOK, ROIResponse{
		Input:  input,
		Result: calculator.Calculate(input),
	})
}

// CalculateROI 临时场景测算（不修改基准场景）
// POST /api/roi
func (h *Handler) CalculateROI(c *gin.Context) {
	var input model.ROIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误", "details": []string{err.Error()}})
		return
	}

	c.JSON(http.StatusOK, ROIResponse{
		Input:  input,
		Result: calculator.Calculate(input),
	})
}

// UpdateROIInput 替换基准场景
// PUT /api/roi/input
func (h *Handler) UpdateROIInput(c *gin.Context) {
	var input model.ROIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误", "details": []string{err.Error()}})
		return
	}

	h.store.SetBaseInput(input)
	c.JSON(http.StatusOK, ROIResponse{
		Input:  h.store.BaseInput(),
		Result: calculator.Calculate(input),
	})
}

// GetROIIndicators 基准场景测算结果（指标分组展示格式）
// GET /api/roi/indicators
func (h *Handler) GetROIIndicators(c *gin.Context) {
	result := calculator.Calculate(h.store.BaseInput())
	c.JSON(http.StatusOK, gin.H{
		"groups": calculator.BuildIndicatorGroups(result),
	})
}
