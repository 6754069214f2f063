package calculator

import (
	"math"

	"fitsight/internal/model"
)

// 计算口径常量
const (
	daysPerMonth = 30 // 固定按 30 天/月计算

	membershipPriceFactor = 1.1 // 会员价默认倍率（×客均消费）
	dayPassPriceFactor    = 0.9 // 次卡价默认倍率
	classPackPriceFactor  = 1.2 // 课程包价默认倍率

	revenueSeasonalAmplitude   = 0.12 // 收入曲线季节波动幅度
	occupancySeasonalBase      = 0.85 // 出勤率曲线基准系数
	occupancySeasonalAmplitude = 0.15 // 出勤率曲线季节波动幅度
)

// monthLabels 曲线固定按 Jan..Dec 排列
var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabels 返回曲线的月份标签（固定顺序）
func MonthLabels() []string {
	out := make([]string, len(monthLabels))
	copy(out, monthLabels)
	return out
}

// Calculate ROI 测算
// 纯函数：无 I/O、无副作用，相同输入产生相同输出
func Calculate(in model.ROIInput) model.ROIResult {
	occupancyFactor := clamp(in.OccupancyPct, 0, 100) / 100

	bookingsPerClass := in.ClientsPerClass * occupancyFactor
	totalBookingsPerMonth := math.Max(0, in.ClassesPerDay*bookingsPerClass*daysPerMonth)

	bookingRevenue := totalBookingsPerMonth*in.ClassPrice + in.DropInPerDay*in.ClassPrice*daysPerMonth

	membershipPrice := overrideOr(in.MembershipPrice, in.AvgSpend*membershipPriceFactor)
	dayPassPrice := overrideOr(in.DayPassPrice, in.AvgSpend*dayPassPriceFactor)
	classPackPrice := overrideOr(in.ClassPackPrice, in.AvgSpend*classPackPriceFactor)

	membershipRevenue := in.Members * membershipPrice
	dayPassRevenue := in.DayPasses * dayPassPrice
	classPackRevenue := in.ClassPacks * classPackPrice

	monthlyRevenue := membershipRevenue + dayPassRevenue + classPackRevenue + bookingRevenue
	monthlyCosts := in.FixedCosts + in.VariableCosts + in.MonthlySalaries
	monthlyProfit := monthlyRevenue - monthlyCosts
	ebitda := monthlyProfit + in.MonthlySalaries

	annualROI := 0.0
	if in.TotalInvestment > 0 {
		annualROI = monthlyProfit * 12 / in.TotalInvestment * 100
	}

	payback := model.Months(math.Inf(1))
	if monthlyProfit > 0 {
		payback = model.Months(in.TotalInvestment / monthlyProfit)
	}

	return model.ROIResult{
		MembershipRevenue: membershipRevenue,
		DayPassRevenue:    dayPassRevenue,
		ClassPackRevenue:  classPackRevenue,
		BookingRevenue:    bookingRevenue,

		MonthlyRevenue: monthlyRevenue,
		MonthlyCosts:   monthlyCosts,
		MonthlyProfit:  monthlyProfit,
		EBITDA:         ebitda,

		AnnualROIPercent:        annualROI,
		PaybackMonths:           payback,
		BreakevenBookingsPerDay: breakevenBookingsPerDay(in, bookingRevenue, totalBookingsPerMonth),

		RevenueForecast: revenueForecast(monthlyRevenue),
		OccupancyCurve:  occupancyCurve(occupancyFactor),
	}
}

// breakevenBookingsPerDay 保本日预订量：固定成本恰好被单次预订毛利覆盖的日预订数
// 毛利非正时退回输入的每日课程数（策略值，避免除零/负分母）
func breakevenBookingsPerDay(in model.ROIInput, bookingRevenue, totalBookingsPerMonth float64) float64 {
	avgRevenuePerBooking := in.AvgSpend
	if totalBookingsPerMonth > 0 {
		avgRevenuePerBooking = bookingRevenue / totalBookingsPerMonth
	}

	variablePerBooking := in.VariableCosts / math.Max(totalBookingsPerMonth, 1)

	margin := avgRevenuePerBooking - variablePerBooking
	if margin <= 0 {
		return in.ClassesPerDay
	}
	return in.FixedCosts / (daysPerMonth * margin)
}

// revenueForecast 12 个月收入预测曲线
// 正弦季节系数叠加在基准月收入上，是示意性曲线而非统计预测
func revenueForecast(monthlyRevenue float64) []model.ForecastPoint {
	points := make([]model.ForecastPoint, len(monthLabels))
	for i, label := range monthLabels {
		factor := 1 + math.Sin(float64(i)/12*2*math.Pi)*revenueSeasonalAmplitude
		points[i] = model.ForecastPoint{
			Month:   label,
			Revenue: math.Round(monthlyRevenue * factor),
		}
	}
	return points
}

// occupancyCurve 12 个月出勤率曲线（余弦季节系数，截断到 [0,100]）
func occupancyCurve(occupancyFactor float64) []model.OccupancyPoint {
	points := make([]model.OccupancyPoint, len(monthLabels))
	for i, label := range monthLabels {
		factor := occupancySeasonalBase + math.Cos(float64(i)/12*2*math.Pi)*occupancySeasonalAmplitude
		value := clamp(math.Round(occupancyFactor*100*factor), 0, 100)
		points[i] = model.OccupancyPoint{
			Month:     label,
			Occupancy: value,
		}
	}
	return points
}

func overrideOr(override *float64, fallback float64) float64 {
	if override != nil {
		return *override
	}
	return fallback
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
