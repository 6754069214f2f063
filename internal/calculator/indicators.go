package calculator

import (
	"math"

	"fitsight/internal/model"
)

// Indicator 指标定义
type Indicator struct {
	ID    string  `json:"id"`    // 指标ID
	Name  string  `json:"name"`  // 指标名称
	Value float64 `json:"value"` // 指标值
	Unit  string  `json:"unit"`  // 单位 (如 元、%、月)
}

// IndicatorGroup 指标分组
type IndicatorGroup struct {
	Name       string      `json:"name"`       // 分组名称
	Indicators []Indicator `json:"indicators"` // 指标列表
}

// BuildIndicatorGroups 将 ROI 测算结果整理为展示用的指标分组
// 回本周期无限时以 -1 占位（前端按"不可回本"展示）
func BuildIndicatorGroups(r model.ROIResult) []IndicatorGroup {
	payback := -1.0
	if r.PaybackMonths.IsFinite() {
		payback = float64(r.PaybackMonths)
	}

	return []IndicatorGroup{
		{
			Name: "月度收入",
			Indicators: []Indicator{
				{ID: "revenue_membership", Name: "会员收入", Value: math.Round(r.MembershipRevenue), Unit: "元"},
				{ID: "revenue_day_pass", Name: "次卡收入", Value: math.Round(r.DayPassRevenue), Unit: "元"},
				{ID: "revenue_class_pack", Name: "课程包收入", Value: math.Round(r.ClassPackRevenue), Unit: "元"},
				{ID: "revenue_booking", Name: "预订收入", Value: math.Round(r.BookingRevenue), Unit: "元"},
				{ID: "revenue_total", Name: "月总收入", Value: math.Round(r.MonthlyRevenue), Unit: "元"},
			},
		},
		{
			Name: "月度成本与利润",
			Indicators: []Indicator{
				{ID: "cost_total", Name: "月总成本", Value: math.Round(r.MonthlyCosts), Unit: "元"},
				{ID: "profit_monthly", Name: "月利润", Value: math.Round(r.MonthlyProfit), Unit: "元"},
				{ID: "profit_ebitda", Name: "EBITDA", Value: math.Round(r.EBITDA), Unit: "元"},
			},
		},
		{
			Name: "投资回报",
			Indicators: []Indicator{
				{ID: "roi_annual_rate", Name: "年化投资回报率", Value: r.AnnualROIPercent, Unit: "%"},
				{ID: "roi_payback", Name: "回本周期", Value: payback, Unit: "月"},
				{ID: "roi_breakeven_bookings", Name: "保本日预订量", Value: r.BreakevenBookingsPerDay, Unit: "次/日"},
			},
		},
	}
}
