package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitsight/internal/model"
	"fitsight/internal/parser"
	sqlstore "fitsight/internal/store"
	tablestore "fitsight/internal/service/store"
)

// ErrNoValidRows 全部行都被丢弃，导入整体失败
// 具体原因在 ImportReport.Warnings 中
var ErrNoValidRows = errors.New("没有可导入的数据行")

// Coordinator 导入协调器
// 负责 CSV 解析、逐行归类校验、全量替换内存表存储、写入 SQLite 审计日志
type Coordinator struct {
	store      *tablestore.TableStore
	audit      *sqlstore.Store // 可为 nil（审计日志不可用时跳过）
	classifier *parser.RowClassifier
}

// NewCoordinator 创建导入协调器
func NewCoordinator(store *tablestore.TableStore, audit *sqlstore.Store) *Coordinator {
	return &Coordinator{
		store:      store,
		audit:      audit,
		classifier: parser.NewRowClassifier(),
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	Filename string
	FileSize int64
	Reader   io.Reader
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/warning/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import 执行导入
//
// 返回值约定：
//   - CSV 格式错误: report 为 nil，err 为 *parser.MalformedCSVError
//   - 零有效行: report 携带全部 warnings，err 为 ErrNoValidRows
//   - 部分/全部成功: report 携带计数与 warnings，err 为 nil
func (c *Coordinator) Import(opts ImportOptions) (*model.ImportReport, error) {
	return c.doImport(opts, nil)
}

// ImportStream 执行导入并通过通道发送进度事件（SSE 用）
func (c *Coordinator) ImportStream(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)

		c.sendProgress(progressChan, ProgressEvent{
			Type:      "start",
			Message:   "开始导入 CSV 文件",
			Data:      map[string]string{"filename": opts.Filename},
			Timestamp: time.Now(),
		})

		report, err := c.doImport(opts, progressChan)
		if err != nil {
			event := ProgressEvent{
				Type:      "error",
				Message:   err.Error(),
				Timestamp: time.Now(),
			}
			if report != nil {
				event.Data = report
			}
			c.sendProgress(progressChan, event)
			return
		}

		c.sendProgress(progressChan, ProgressEvent{
			Type:      "done",
			Message:   fmt.Sprintf("导入完成: %d 行，%d 条警告", report.AcceptedRows, len(report.Warnings)),
			Data:      report,
			Timestamp: time.Now(),
		})
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) (*model.ImportReport, error) {
	startTime := time.Now()

	records, err := parser.ParseRecords(opts.Reader)
	if err != nil {
		return nil, err
	}

	if progressChan != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "info",
			Message:   fmt.Sprintf("解析完成，共 %d 行", len(records)),
			Data:      map[string]int{"total_rows": len(records)},
			Timestamp: time.Now(),
		})
	}

	report := &model.ImportReport{
		Filename:  opts.Filename,
		Counts:    make(map[model.TableCategory]int, 8),
		Warnings:  []string{},
		TotalRows: len(records),
	}
	for _, cat := range model.AllCategories() {
		report.Counts[cat] = 0
	}

	tables := make(map[model.TableCategory][]model.Row, 8)
	for _, rec := range records {
		c.triageRecord(rec, tables, report, progressChan)
	}

	report.Duration = time.Since(startTime)

	if report.AcceptedRows == 0 {
		c.writeAudit(opts, report, "failed", ErrNoValidRows.Error())
		return report, ErrNoValidRows
	}

	version := newVersionLabel()
	report.Version = version
	c.store.RegisterImport(version, tables)
	c.writeAudit(opts, report, "success", "")

	return report, nil
}

// triageRecord 归类并校验单条记录
func (c *Coordinator) triageRecord(rec parser.Record, tables map[model.TableCategory][]model.Row, report *model.ImportReport, progressChan chan ProgressEvent) {
	// 空白行静默跳过，不计入 warnings
	if rec.IsBlank() {
		report.SkippedRows++
		return
	}

	cat, warning := c.resolveCategory(rec)
	if warning != "" {
		c.addWarning(report, warning, progressChan)
		return
	}

	if missing := parser.MissingColumns(cat, rec.Keys); len(missing) > 0 {
		c.addWarning(report, fmt.Sprintf("第 %d 行: 归类为 %s 但缺少必需列 [%s]，已丢弃",
			rec.Line, cat, strings.Join(missing, ", ")), progressChan)
		return
	}

	row := make(model.Row, len(rec.Fields))
	for key, raw := range rec.Fields {
		if key == "table" || raw == "" {
			continue
		}
		row[key] = model.CoerceValue(raw)
	}

	tables[cat] = append(tables[cat], row)
	report.Counts[cat]++
	report.AcceptedRows++
}

// resolveCategory 确定记录所属分类
// 优先使用显式 table 列（trim 后校验），否则按列名推断
func (c *Coordinator) resolveCategory(rec parser.Record) (model.TableCategory, string) {
	if explicit, ok := rec.Fields["table"]; ok && strings.TrimSpace(explicit) != "" {
		name := strings.TrimSpace(explicit)
		if !model.IsValidCategory(name) {
			return model.TableUnknown, fmt.Sprintf("第 %d 行: 未知的表分类 %q，已丢弃", rec.Line, name)
		}
		return model.TableCategory(name), ""
	}

	keys := nonEmptyKeys(rec)
	result := c.classifier.Classify(keys)
	if result.Category == model.TableUnknown {
		return model.TableUnknown, fmt.Sprintf("第 %d 行: 无法识别所属表（列名与任何分类都不匹配），已丢弃", rec.Line)
	}
	return result.Category, ""
}

// addWarning 收集警告（不是异常，导入继续）
func (c *Coordinator) addWarning(report *model.ImportReport, warning string, progressChan chan ProgressEvent) {
	report.Warnings = append(report.Warnings, warning)
	if progressChan != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   warning,
			Timestamp: time.Now(),
		})
	}
}

// writeAudit 写入 SQLite 审计日志（失败只影响审计，不影响导入结果）
func (c *Coordinator) writeAudit(opts ImportOptions, report *model.ImportReport, status, message string) {
	if c.audit == nil {
		return
	}

	id, err := c.audit.CreateImportLog(report.Version, opts.Filename, opts.FileSize)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("写入审计日志失败: %v", err))
		return
	}
	if err := c.audit.FinishImportLog(id, report.TotalRows, report.AcceptedRows, len(report.Warnings), status, message); err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("更新审计日志失败: %v", err))
	}
}

// nonEmptyKeys 记录中有非空值的列名（归类只看实际携带数据的列）
func nonEmptyKeys(rec parser.Record) []string {
	keys := make([]string, 0, len(rec.Fields))
	for key, val := range rec.Fields {
		if key == "table" || val == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// newVersionLabel 生成版本标签：导入时间戳 + 随机短后缀
func newVersionLabel() string {
	return fmt.Sprintf("v_%s_%s", time.Now().Format("20060102150405"), uuid.New().String()[:8])
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
