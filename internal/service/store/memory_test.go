package store

import (
	"fmt"
	"sync"
	"testing"

	"fitsight/internal/model"
)

func assetRows(names ...string) []model.Row {
	rows := make([]model.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, model.Row{
			"name":  model.CoerceValue(name),
			"value": model.CoerceValue("1000"),
		})
	}
	return rows
}

// TestRegisterImportReplaces 测试导入为全量替换：未出现的表被清空
func TestRegisterImportReplaces(t *testing.T) {
	s := NewTableStore(model.ROIInput{})

	s.RegisterImport("v1", map[model.TableCategory][]model.Row{
		model.TableAssets: assetRows("跑步机", "哑铃架"),
		model.TableStaffCosts: {
			{"role": model.CoerceValue("教练"), "monthly_salary": model.CoerceValue("8000"), "headcount": model.CoerceValue("3")},
		},
	})
	s.RegisterImport("v2", map[model.TableCategory][]model.Row{
		model.TableAssets: assetRows("划船机"),
	})

	if got := s.Version(); got != "v2" {
		t.Errorf("Version = %s, want v2", got)
	}

	counts := s.Counts()
	if counts[model.TableAssets] != 1 {
		t.Errorf("assets 行数 = %d, want 1", counts[model.TableAssets])
	}
	if counts[model.TableStaffCosts] != 0 {
		t.Errorf("staff_costs 应被第二次导入清空, 实际 %d 行", counts[model.TableStaffCosts])
	}
	if s.TotalRows() != 1 {
		t.Errorf("TotalRows = %d, want 1", s.TotalRows())
	}
}

// TestHistoryOrder 测试版本历史最近的排在最前
func TestHistoryOrder(t *testing.T) {
	s := NewTableStore(model.ROIInput{})
	s.RegisterImport("v1", nil)
	s.RegisterImport("v2", nil)
	s.RegisterImport("v3", nil)

	history := s.History()
	if len(history) != 3 {
		t.Fatalf("History = %d 条, want 3", len(history))
	}
	for i, want := range []string{"v3", "v2", "v1"} {
		if history[i].Version != want {
			t.Errorf("History[%d] = %s, want %s", i, history[i].Version, want)
		}
	}
}

// TestSnapshotIsolation 测试读取返回的是深拷贝快照
func TestSnapshotIsolation(t *testing.T) {
	s := NewTableStore(model.ROIInput{})
	s.RegisterImport("v1", map[model.TableCategory][]model.Row{
		model.TableAssets: assetRows("跑步机"),
	})

	rows, err := s.Table(model.TableAssets)
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	rows[0]["name"] = model.CoerceValue("改掉了")

	again, _ := s.Table(model.TableAssets)
	if again[0]["name"].String() != "跑步机" {
		t.Error("修改快照不应影响存储内容")
	}

	all := s.Tables()
	all[model.TableAssets][0]["value"] = model.CoerceValue("-1")
	again, _ = s.Table(model.TableAssets)
	if n, _ := again[0]["value"].Float(); n != 1000 {
		t.Error("修改 Tables 快照不应影响存储内容")
	}
}

// TestSetTableInputIsolation 测试写入后修改调用方切片不影响存储
func TestSetTableInputIsolation(t *testing.T) {
	s := NewTableStore(model.ROIInput{})

	rows := assetRows("跑步机")
	if err := s.SetTable(model.TableAssets, rows); err != nil {
		t.Fatalf("SetTable: %v", err)
	}
	rows[0]["name"] = model.CoerceValue("改掉了")

	got, _ := s.Table(model.TableAssets)
	if got[0]["name"].String() != "跑步机" {
		t.Error("修改调用方切片不应影响存储内容")
	}
}

// TestSetTableUnknownCategory 测试未知分类返回错误
func TestSetTableUnknownCategory(t *testing.T) {
	s := NewTableStore(model.ROIInput{})
	if err := s.SetTable("no_such_table", nil); err == nil {
		t.Error("未知分类应返回错误")
	}
	if _, err := s.Table("no_such_table"); err == nil {
		t.Error("未知分类应返回错误")
	}
}

// TestSetTableKeepsVersion 测试单表编辑不产生新版本
func TestSetTableKeepsVersion(t *testing.T) {
	s := NewTableStore(model.ROIInput{})
	s.RegisterImport("v1", nil)

	if err := s.SetTable(model.TableAssets, assetRows("跑步机")); err != nil {
		t.Fatalf("SetTable: %v", err)
	}
	if got := s.Version(); got != "v1" {
		t.Errorf("Version = %s, 单表编辑不应改变版本", got)
	}
	if len(s.History()) != 1 {
		t.Errorf("History = %d 条, want 1", len(s.History()))
	}
}

// TestBaseInputIsolation 测试基准场景的指针字段不与调用方共享
func TestBaseInputIsolation(t *testing.T) {
	price := 99.0
	in := model.ROIInput{AvgSpend: 50, MembershipPrice: &price}

	s := NewTableStore(in)
	price = 1 // 修改调用方持有的指针目标

	got := s.BaseInput()
	if got.MembershipPrice == nil || *got.MembershipPrice != 99 {
		t.Error("存储的基准场景不应与调用方共享指针")
	}

	*got.MembershipPrice = 2
	if again := s.BaseInput(); *again.MembershipPrice != 99 {
		t.Error("修改返回值不应影响存储内容")
	}
}

// TestConcurrentAccess 测试并发读写不竞态（配合 -race 使用）
func TestConcurrentAccess(t *testing.T) {
	s := NewTableStore(model.ROIInput{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.RegisterImport(fmt.Sprintf("v%d", n), map[model.TableCategory][]model.Row{
				model.TableAssets: assetRows("跑步机"),
			})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Tables()
			_ = s.TotalRows()
			_, _ = s.Table(model.TableAssets)
		}()
	}
	wg.Wait()

	if len(s.History()) != 8 {
		t.Errorf("History = %d 条, want 8", len(s.History()))
	}
}
