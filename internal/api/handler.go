package api

import (
	"github.com/gin-gonic/gin"

	"fitsight/internal/importer"
	"fitsight/internal/insight"
	tablestore "fitsight/internal/service/store"
	sqlstore "fitsight/internal/store"
)

// Handler API 处理器
type Handler struct {
	store       *tablestore.TableStore
	audit       *sqlstore.Store
	coordinator *importer.Coordinator
	summarizer  *insight.Summarizer
}

// NewHandler 创建 API 处理器
func NewHandler(store *tablestore.TableStore, audit *sqlstore.Store, summarizer *insight.Summarizer) *Handler {
	return &Handler{
		store:       store,
		audit:       audit,
		coordinator: importer.NewCoordinator(store, audit),
		summarizer:  summarizer,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据导入
	router.POST("/import", h.Import)
	router.POST("/import/stream", h.ImportStream)
	router.GET("/versions", h.ListVersions)

	// 业务表读写
	router.GET("/tables", h.GetTables)
	router.GET("/tables/:name", h.GetTable)
	router.PUT("/tables/:name", h.UpdateTable)

	// ROI 测算
	router.GET("/roi", h.GetROI)
	router.POST("/roi", h.CalculateROI)
	router.PUT("/roi/input", h.UpdateROIInput)
	router.GET("/roi/indicators", h.GetROIIndicators)

	// 导出与洞察
	router.GET("/export", h.Export)
	router.GET("/insights", h.GetInsights)
}
