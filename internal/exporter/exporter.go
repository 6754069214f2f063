package exporter

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"fitsight/internal/calculator"
	"fitsight/internal/model"
	tablestore "fitsight/internal/service/store"
)

// ROI 相关 sheet 名称
const (
	sheetROISummary      = "ROI汇总"
	sheetRevenueForecast = "收入预测曲线"
	sheetOccupancyCurve  = "出勤率曲线"
)

// Exporter 工作簿导出器
// 输出八张业务表 + ROI 汇总 + 两条曲线，共十一个 sheet
type Exporter struct {
	store *tablestore.TableStore
}

// NewExporter 创建导出器
func NewExporter(store *tablestore.TableStore) *Exporter {
	return &Exporter{store: store}
}

// Export 基于基准场景导出 Excel 工作簿
func (e *Exporter) Export() (*excelize.File, error) {
	f := excelize.NewFile()

	tables := e.store.Tables()
	for _, cat := range model.AllCategories() {
		if err := e.fillTableSheet(f, cat, tables[cat]); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("写入 %s 失败: %w", cat.DisplayName(), err)
		}
	}

	result := calculator.Calculate(e.store.BaseInput())
	if err := e.fillROISummarySheet(f, result); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("写入 %s 失败: %w", sheetROISummary, err)
	}
	if err := e.fillRevenueForecastSheet(f, result); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("写入 %s 失败: %w", sheetRevenueForecast, err)
	}
	if err := e.fillOccupancyCurveSheet(f, result); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("写入 %s 失败: %w", sheetOccupancyCurve, err)
	}

	// 删除 excelize 默认创建的 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)

	return f, nil
}

// fillTableSheet 写入单张业务表
// 表头：必需列在前，其余出现过的列按字典序补在后面
func (e *Exporter) fillTableSheet(f *excelize.File, cat model.TableCategory, rows []model.Row) error {
	sheet := cat.DisplayName()
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	columns := collectColumns(cat, rows)
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, col := range columns {
			val, ok := row[col]
			if ok && val.IsEmpty() {
				ok = false
			}
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := setCellScalar(f, sheet, cell, val); err != nil {
				return err
			}
		}
	}

	return nil
}

// fillROISummarySheet 写入 ROI 汇总（按指标分组排列）
func (e *Exporter) fillROISummarySheet(f *excelize.File, result model.ROIResult) error {
	if _, err := f.NewSheet(sheetROISummary); err != nil {
		return err
	}

	rowNo := 1
	for _, group := range calculator.BuildIndicatorGroups(result) {
		if err := f.SetCellValue(sheetROISummary, fmt.Sprintf("A%d", rowNo), group.Name); err != nil {
			return err
		}
		rowNo++
		for _, ind := range group.Indicators {
			if err := f.SetCellValue(sheetROISummary, fmt.Sprintf("A%d", rowNo), ind.Name); err != nil {
				return err
			}
			// 回本周期的 -1 占位写为文字说明
			if ind.ID == "roi_payback" && ind.Value < 0 {
				if err := f.SetCellValue(sheetROISummary, fmt.Sprintf("B%d", rowNo), "不可回本"); err != nil {
					return err
				}
			} else {
				if err := f.SetCellValue(sheetROISummary, fmt.Sprintf("B%d", rowNo), ind.Value); err != nil {
					return err
				}
				if err := f.SetCellValue(sheetROISummary, fmt.Sprintf("C%d", rowNo), ind.Unit); err != nil {
					return err
				}
			}
			rowNo++
		}
		rowNo++ // 分组之间空一行
	}

	return nil
}

// fillRevenueForecastSheet 写入 12 个月收入预测曲线
func (e *Exporter) fillRevenueForecastSheet(f *excelize.File, result model.ROIResult) error {
	if _, err := f.NewSheet(sheetRevenueForecast); err != nil {
		return err
	}

	if err := f.SetCellValue(sheetRevenueForecast, "A1", "月份"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetRevenueForecast, "B1", "预测收入"); err != nil {
		return err
	}

	for i, p := range result.RevenueForecast {
		row := i + 2
		if err := f.SetCellValue(sheetRevenueForecast, fmt.Sprintf("A%d", row), p.Month); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetRevenueForecast, fmt.Sprintf("B%d", row), p.Revenue); err != nil {
			return err
		}
	}

	return nil
}

// fillOccupancyCurveSheet 写入 12 个月出勤率曲线
func (e *Exporter) fillOccupancyCurveSheet(f *excelize.File, result model.ROIResult) error {
	if _, err := f.NewSheet(sheetOccupancyCurve); err != nil {
		return err
	}

	if err := f.SetCellValue(sheetOccupancyCurve, "A1", "月份"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetOccupancyCurve, "B1", "出勤率(%)"); err != nil {
		return err
	}

	for i, p := range result.OccupancyCurve {
		row := i + 2
		if err := f.SetCellValue(sheetOccupancyCurve, fmt.Sprintf("A%d", row), p.Month); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetOccupancyCurve, fmt.Sprintf("B%d", row), p.Occupancy); err != nil {
			return err
		}
	}

	return nil
}

// collectColumns 确定一张表的导出列顺序
func collectColumns(cat model.TableCategory, rows []model.Row) []string {
	required := model.RequiredColumns(cat)
	seen := make(map[string]bool, len(required))
	for _, col := range required {
		seen[col] = true
	}

	var extra []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				extra = append(extra, col)
			}
		}
	}
	sort.Strings(extra)

	return append(required, extra...)
}

// setCellScalar 按标量类型写入单元格
func setCellScalar(f *excelize.File, sheet, cell string, v model.Value) error {
	if n, ok := v.Float(); ok {
		return f.SetCellValue(sheet, cell, n)
	}
	return f.SetCellValue(sheet, cell, v.String())
}
