package model

import (
	"encoding/json"
	"math"
)

// ROIInput ROI 测算输入参数（一个经营场景）
type ROIInput struct {
	ClassesPerDay   float64 `json:"classesPerDay" binding:"omitempty,min=0"`   // 每日课程数
	ClientsPerClass float64 `json:"clientsPerClass" binding:"omitempty,min=0"` // 单节课容量
	OccupancyPct    float64 `json:"occupancyPct"`                              // 出勤率（%），计算前截断到 [0,100]
	ClassPrice      float64 `json:"classPrice" binding:"omitempty,min=0"`      // 单节课价格
	DropInPerDay    float64 `json:"dropInPerDay" binding:"omitempty,min=0"`    // 每日散客数

	Members    float64 `json:"members" binding:"omitempty,min=0"`    // 会员数
	DayPasses  float64 `json:"dayPasses" binding:"omitempty,min=0"`  // 次卡销量（月）
	ClassPacks float64 `json:"classPacks" binding:"omitempty,min=0"` // 课程包销量（月）
	AvgSpend   float64 `json:"avgSpend" binding:"omitempty,min=0"`   // 客均消费

	// 价格覆盖项：nil 表示未显式指定，按 AvgSpend 的倍率取默认值
	MembershipPrice *float64 `json:"membershipPrice,omitempty"` // 会员价（默认 1.1×AvgSpend）
	DayPassPrice    *float64 `json:"dayPassPrice,omitempty"`    // 次卡价（默认 0.9×AvgSpend）
	ClassPackPrice  *float64 `json:"classPackPrice,omitempty"`  // 课程包价（默认 1.2×AvgSpend）

	FixedCosts      float64 `json:"fixedCosts" binding:"omitempty,min=0"`      // 固定成本（月）
	VariableCosts   float64 `json:"variableCosts" binding:"omitempty,min=0"`   // 变动成本（月）
	MonthlySalaries float64 `json:"monthlySalaries" binding:"omitempty,min=0"` // 工资总额（月）
	TotalInvestment float64 `json:"totalInvestment" binding:"omitempty,min=0"` // 总投资额
}

// Clone 深拷贝输入（价格覆盖项为指针，复制后互不影响）
func (in ROIInput) Clone() ROIInput {
	out := in
	out.MembershipPrice = clonePtr(in.MembershipPrice)
	out.DayPassPrice = clonePtr(in.DayPassPrice)
	out.ClassPackPrice = clonePtr(in.ClassPackPrice)
	return out
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Months 回本周期（月）
// 月利润非正时为 +Inf（这是正常结果不是错误），JSON 序列化为 null
type Months float64

// IsFinite 判断是否为有限回本周期
func (m Months) IsFinite() bool {
	return !math.IsInf(float64(m), 0) && !math.IsNaN(float64(m))
}

// MarshalJSON 无限周期序列化为 null
func (m Months) MarshalJSON() ([]byte, error) {
	if !m.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// UnmarshalJSON null 反序列化为 +Inf
func (m *Months) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Months(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Months(f)
	return nil
}

// ForecastPoint 收入预测曲线上的一个月
type ForecastPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// OccupancyPoint 出勤率曲线上的一个月
type OccupancyPoint struct {
	Month     string  `json:"month"`
	Occupancy float64 `json:"occupancy"`
}

// ROIResult ROI 测算结果（每次请求重新计算，不落库）
type ROIResult struct {
	MembershipRevenue float64 `json:"membershipRevenue"` // 会员收入（月）
	DayPassRevenue    float64 `json:"dayPassRevenue"`    // 次卡收入（月）
	ClassPackRevenue  float64 `json:"classPackRevenue"`  // 课程包收入（月）
	BookingRevenue    float64 `json:"bookingRevenue"`    // 预订收入（月）

	MonthlyRevenue float64 `json:"monthlyRevenue"` // 月总收入
	MonthlyCosts   float64 `json:"monthlyCosts"`   // 月总成本
	MonthlyProfit  float64 `json:"monthlyProfit"`  // 月利润
	EBITDA         float64 `json:"ebitda"`         // EBITDA（月利润+工资）

	AnnualROIPercent        float64 `json:"annualRoiPercent"`        // 年化投资回报率（%）
	PaybackMonths           Months  `json:"paybackMonths"`           // 回本周期（月）
	BreakevenBookingsPerDay float64 `json:"breakevenBookingsPerDay"` // 保本日预订量

	RevenueForecast []ForecastPoint  `json:"revenueForecast"` // 12 个月收入预测曲线
	OccupancyCurve  []OccupancyPoint `json:"occupancyCurve"`  // 12 个月出勤率曲线
}
