package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"fitsight/internal/importer"
	"fitsight/internal/model"
	"fitsight/internal/parser"
)

// 上传 CSV 最大 10MB
const maxImportFileSize = 10 * 1024 * 1024

// ImportResponse 导入成功响应
type ImportResponse struct {
	Success  bool                        `json:"success"`
	Version  string                      `json:"version"`
	Counts   map[model.TableCategory]int `json:"counts"`
	Warnings []string                    `json:"warnings"`
}

// Import 导入 CSV 数据
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	opts, ok := h.openUpload(c)
	if !ok {
		return
	}

	report, err := h.coordinator.Import(opts)
	if err != nil {
		h.writeImportError(c, report, err)
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Success:  true,
		Version:  report.Version,
		Counts:   report.Counts,
		Warnings: report.Warnings,
	})
}

// ImportStream 导入 CSV 数据 (SSE 流式响应)
// POST /api/import/stream
func (h *Handler) ImportStream(c *gin.Context) {
	opts, ok := h.openUpload(c)
	if !ok {
		return
	}

	flusher, flushable := c.Writer.(http.Flusher)
	if !flushable {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	for event := range h.coordinator.ImportStream(opts) {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// openUpload 校验并打开上传文件
func (h *Handler) openUpload(c *gin.Context) (importer.ImportOptions, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请上传文件"})
		return importer.ImportOptions{}, false
	}

	if header.Size > maxImportFileSize {
		file.Close()
		c.JSON(http.StatusBadRequest, gin.H{"error": "文件过大，最大支持10MB"})
		return importer.ImportOptions{}, false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".txt" {
		file.Close()
		c.JSON(http.StatusBadRequest, gin.H{"error": "仅支持 .csv 和 .txt 格式"})
		return importer.ImportOptions{}, false
	}

	// 导入在本次请求内同步完成，gin 在响应后关闭表单临时文件
	return importer.ImportOptions{
		Filename: header.Filename,
		FileSize: header.Size,
		Reader:   file,
	}, true
}

// writeImportError 按失败类型映射响应
// CSV 格式错误 -> 400；零有效行 -> 422（携带全部 warnings）
func (h *Handler) writeImportError(c *gin.Context, report *model.ImportReport, err error) {
	var malformed *parser.MalformedCSVError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "CSV 解析失败",
			"details": malformed.Details,
		})
		return
	}

	if errors.Is(err, importer.ErrNoValidRows) {
		details := []string{}
		if report != nil {
			details = report.Warnings
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "没有可导入的数据行",
			"details": details,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "导入失败"})
}
