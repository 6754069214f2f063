package parser

import (
	"testing"

	"fitsight/internal/model"
)

// TestNormalizeColumnName 测试列名规范化
func TestNormalizeColumnName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Monthly_Salary", "monthlysalary"},
		{"  monthly salary  ", "monthlysalary"},
		{"Unit-Cost", "unitcost"},
		{"name", "name"},
		{"表 名", "表名"},
		{"!!!", ""},
	}

	for _, c := range cases {
		if got := NormalizeColumnName(c.in); got != c.want {
			t.Errorf("NormalizeColumnName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestClassifyAssets 测试资产表归类
func TestClassifyAssets(t *testing.T) {
	c := NewRowClassifier()

	result := c.Classify([]string{"name", "value"})
	if result.Category != model.TableAssets {
		t.Errorf("Classify = %s, want %s", result.Category, model.TableAssets)
	}
	if result.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2", result.MatchCount)
	}
	if result.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", result.Score)
	}
}

// TestClassifyNormalizedHeaders 测试大小写和分隔符变体仍可归类
func TestClassifyNormalizedHeaders(t *testing.T) {
	c := NewRowClassifier()

	result := c.Classify([]string{"Role", "Monthly Salary", "HEADCOUNT"})
	if result.Category != model.TableStaffCosts {
		t.Errorf("Classify = %s, want %s", result.Category, model.TableStaffCosts)
	}
}

// TestClassifyUnknown 测试无法归类的行
func TestClassifyUnknown(t *testing.T) {
	c := NewRowClassifier()

	result := c.Classify([]string{"foo", "bar"})
	if result.Category != model.TableUnknown {
		t.Errorf("Classify = %s, want unknown", result.Category)
	}
	if result.MatchCount != 0 {
		t.Errorf("MatchCount = %d, want 0", result.MatchCount)
	}
}

// TestClassifyHighestCountWins 测试命中数严格最高者胜出
func TestClassifyHighestCountWins(t *testing.T) {
	c := NewRowClassifier()

	// operating_expenses 命中 2 列，variable_costs 仅命中 item 1 列
	result := c.Classify([]string{"item", "monthly_cost"})
	if result.Category != model.TableOperatingExpenses {
		t.Errorf("Classify = %s, want %s", result.Category, model.TableOperatingExpenses)
	}
}

// TestClassifyTieBreakByScore 测试命中数平局时先比命中占比
// "month" 命中 historical_bookings(1/3) 和 revenue_projection(1/2)，
// 占比高的 revenue_projection 胜出
func TestClassifyTieBreakByScore(t *testing.T) {
	c := NewRowClassifier()

	result := c.Classify([]string{"month"})
	if result.Category != model.TableRevenueProjection {
		t.Errorf("Classify = %s, want %s", result.Category, model.TableRevenueProjection)
	}
}

// TestClassifyTieBreakLexicographic 测试占比也相同时按分类名字典序
// 只有 "item" 一列时，operating_expenses 和 variable_costs 均命中 1/2，
// 字典序取 operating_expenses
func TestClassifyTieBreakLexicographic(t *testing.T) {
	c := NewRowClassifier()

	result := c.Classify([]string{"item"})
	if result.Category != model.TableOperatingExpenses {
		t.Errorf("Classify = %s, want %s (字典序平局裁决)", result.Category, model.TableOperatingExpenses)
	}
}

// TestClassifyDeterministic 测试归类结果与列顺序无关
func TestClassifyDeterministic(t *testing.T) {
	c := NewRowClassifier()

	first := c.Classify([]string{"month", "bookings", "revenue"})
	second := c.Classify([]string{"revenue", "month", "bookings"})

	if first.Category != second.Category {
		t.Errorf("归类结果依赖列顺序: %s vs %s", first.Category, second.Category)
	}
	if first.Category != model.TableHistoricalBookings {
		t.Errorf("Classify = %s, want %s", first.Category, model.TableHistoricalBookings)
	}
}

// TestMissingColumns 测试必需列检查
func TestMissingColumns(t *testing.T) {
	missing := MissingColumns(model.TablePackages, []string{"package", "price"})
	if len(missing) != 1 || missing[0] != "sessions" {
		t.Errorf("MissingColumns = %v, want [sessions]", missing)
	}

	if !HasRequiredColumns(model.TableAssets, []string{"name", "value", "notes"}) {
		t.Error("包含全部必需列时 HasRequiredColumns 应为 true")
	}
	if HasRequiredColumns(model.TableAssets, []string{"name"}) {
		t.Error("缺少必需列时 HasRequiredColumns 应为 false")
	}
}
