package model

// TableCategory 业务表分类（固定八类）
type TableCategory string

const (
	TableUnknown TableCategory = "unknown"

	TableAssets             TableCategory = "assets"              // 资产
	TableStaffCosts         TableCategory = "staff_costs"         // 人力成本
	TableOperatingExpenses  TableCategory = "operating_expenses"  // 运营费用
	TableVariableCosts      TableCategory = "variable_costs"      // 变动成本
	TablePackages           TableCategory = "packages"            // 课程套餐
	TableHistoricalBookings TableCategory = "historical_bookings" // 历史预订
	TableCompetitorPricing  TableCategory = "competitor_pricing"  // 竞对价格
	TableRevenueProjection  TableCategory = "revenue_projection"  // 收入预测
)

// allCategories 固定枚举顺序（导出 sheet 顺序与展示顺序一致）
var allCategories = []TableCategory{
	TableAssets,
	TableStaffCosts,
	TableOperatingExpenses,
	TableVariableCosts,
	TablePackages,
	TableHistoricalBookings,
	TableCompetitorPricing,
	TableRevenueProjection,
}

// requiredColumns 各分类的必需列（同时用于校验和表归类推断）
var requiredColumns = map[TableCategory][]string{
	TableAssets:             {"name", "value"},
	TableStaffCosts:         {"role", "monthly_salary", "headcount"},
	TableOperatingExpenses:  {"item", "monthly_cost"},
	TableVariableCosts:      {"item", "unit_cost"},
	TablePackages:           {"package", "price", "sessions"},
	TableHistoricalBookings: {"month", "bookings", "revenue"},
	TableCompetitorPricing:  {"competitor", "offering", "price"},
	TableRevenueProjection:  {"month", "projected_revenue"},
}

// displayNames 导出 sheet 使用的中文名称
var displayNames = map[TableCategory]string{
	TableAssets:             "资产",
	TableStaffCosts:         "人力成本",
	TableOperatingExpenses:  "运营费用",
	TableVariableCosts:      "变动成本",
	TablePackages:           "课程套餐",
	TableHistoricalBookings: "历史预订",
	TableCompetitorPricing:  "竞对价格",
	TableRevenueProjection:  "收入预测",
}

// AllCategories 返回固定顺序的分类列表
func AllCategories() []TableCategory {
	out := make([]TableCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

// RequiredColumns 返回分类的必需列（常量定义，不反映实际行数据）
func RequiredColumns(cat TableCategory) []string {
	cols, ok := requiredColumns[cat]
	if !ok {
		return nil
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// IsValidCategory 判断是否为合法分类名
func IsValidCategory(name string) bool {
	_, ok := requiredColumns[TableCategory(name)]
	return ok
}

// DisplayName 分类的中文显示名
func (c TableCategory) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}
