package parser

import (
	"strings"
	"testing"
)

// TestParseRecords 测试基本解析
func TestParseRecords(t *testing.T) {
	csvText := "table,name,value\nassets,Treadmill,3000\nassets,Rower,1200\n"

	records, err := ParseRecords(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Fields["name"] != "Treadmill" {
		t.Errorf("name = %q, want Treadmill", records[0].Fields["name"])
	}
	if records[0].Line != 2 {
		t.Errorf("Line = %d, want 2", records[0].Line)
	}
}

// TestParseRecordsBlankRow 测试空白行标记
func TestParseRecordsBlankRow(t *testing.T) {
	csvText := "name,value\nTreadmill,3000\n,\nRower,1200\n"

	records, err := ParseRecords(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if !records[1].IsBlank() {
		t.Error("全空值的行应标记为空白行")
	}
	if records[0].IsBlank() || records[2].IsBlank() {
		t.Error("有值的行不应标记为空白行")
	}
}

// TestParseRecordsShortRow 测试列数不足的行（缺失列按空值处理）
func TestParseRecordsShortRow(t *testing.T) {
	csvText := "name,value,notes\nTreadmill,3000\n"

	records, err := ParseRecords(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if records[0].Fields["notes"] != "" {
		t.Errorf("notes = %q, want empty", records[0].Fields["notes"])
	}
}

// TestParseRecordsMalformed 测试格式错误整体失败
func TestParseRecordsMalformed(t *testing.T) {
	csvText := "name,value\n\"unterminated,3000\n"

	_, err := ParseRecords(strings.NewReader(csvText))
	if err == nil {
		t.Fatal("格式错误的 CSV 应返回错误")
	}

	malformed, ok := err.(*MalformedCSVError)
	if !ok {
		t.Fatalf("错误类型 = %T, want *MalformedCSVError", err)
	}
	if len(malformed.Details) == 0 {
		t.Error("MalformedCSVError 应携带错误明细")
	}
}

// TestParseRecordsEmptyFile 测试空文件
func TestParseRecordsEmptyFile(t *testing.T) {
	_, err := ParseRecords(strings.NewReader(""))
	if err == nil {
		t.Fatal("空文件应返回错误")
	}
}
