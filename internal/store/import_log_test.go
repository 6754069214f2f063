package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("打开数据库: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestImportLogLifecycle 测试导入日志创建与完成
func TestImportLogLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateImportLog("v_20260101000000_abcd1234", "data.csv", 2048)
	if err != nil {
		t.Fatalf("CreateImportLog: %v", err)
	}
	if err := s.FinishImportLog(id, 10, 8, 2, "success", ""); err != nil {
		t.Fatalf("FinishImportLog: %v", err)
	}

	logs, err := s.ListImportLogs(10)
	if err != nil {
		t.Fatalf("ListImportLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("日志 = %d 条, want 1", len(logs))
	}

	got := logs[0]
	if got.Version != "v_20260101000000_abcd1234" {
		t.Errorf("Version = %s", got.Version)
	}
	if got.Filename != "data.csv" || got.FileSize != 2048 {
		t.Errorf("文件信息不符: %+v", got)
	}
	if got.TotalRows != 10 || got.ImportedRows != 8 || got.WarningRows != 2 {
		t.Errorf("行数统计不符: %+v", got)
	}
	if got.Status != "success" {
		t.Errorf("Status = %s, want success", got.Status)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt 不应为零值")
	}
}

// TestListImportLogsOrder 测试列表按时间倒序且受 limit 约束
func TestListImportLogsOrder(t *testing.T) {
	s := newTestStore(t)

	for i, version := range []string{"v1", "v2", "v3"} {
		id, err := s.CreateImportLog(version, "data.csv", int64(i))
		if err != nil {
			t.Fatalf("CreateImportLog: %v", err)
		}
		if err := s.FinishImportLog(id, 1, 1, 0, "success", ""); err != nil {
			t.Fatalf("FinishImportLog: %v", err)
		}
	}

	logs, err := s.ListImportLogs(2)
	if err != nil {
		t.Fatalf("ListImportLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("日志 = %d 条, want 2", len(logs))
	}
	if logs[0].Version != "v3" || logs[1].Version != "v2" {
		t.Errorf("顺序不符: %s, %s", logs[0].Version, logs[1].Version)
	}
}

// TestLastImportTime 测试最后成功导入时间只统计 success 记录
func TestLastImportTime(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.LastImportTime(); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("无记录时 err = %v, want sql.ErrNoRows", err)
	}

	id, _ := s.CreateImportLog("v_failed", "bad.csv", 0)
	if err := s.FinishImportLog(id, 3, 0, 3, "failed", "没有可导入的数据行"); err != nil {
		t.Fatalf("FinishImportLog: %v", err)
	}
	if _, err := s.LastImportTime(); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("仅失败记录时 err = %v, want sql.ErrNoRows", err)
	}

	id, _ = s.CreateImportLog("v_ok", "good.csv", 100)
	if err := s.FinishImportLog(id, 3, 3, 0, "success", ""); err != nil {
		t.Fatalf("FinishImportLog: %v", err)
	}
	ts, err := s.LastImportTime()
	if err != nil {
		t.Fatalf("LastImportTime: %v", err)
	}
	if ts.IsZero() {
		t.Error("成功记录后时间不应为零值")
	}
}
