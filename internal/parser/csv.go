package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record 一条按表头取值的原始记录
type Record struct {
	Line   int               // CSV 行号（表头为第 1 行）
	Fields map[string]string // 表头 -> 原始文本
	Keys   []string          // 表头顺序（保留列顺序）
}

// MalformedCSVError CSV 格式错误
// 解析失败导致整个导入失败，不做部分导入
type MalformedCSVError struct {
	Details []string
}

func (e *MalformedCSVError) Error() string {
	return fmt.Sprintf("CSV 解析失败: %s", strings.Join(e.Details, "; "))
}

// ParseRecords 解析带表头的 CSV 文本为记录序列
// 空白行跳过；列数不一致或引号错误返回 MalformedCSVError
func ParseRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &MalformedCSVError{Details: []string{"文件为空，缺少表头行"}}
		}
		return nil, &MalformedCSVError{Details: []string{err.Error()}}
	}

	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.TrimSpace(h)
	}

	var records []Record
	var parseErrors []string
	line := 1

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				parseErrors = append(parseErrors, fmt.Sprintf("第 %d 行: %v", pe.Line, pe.Err))
				continue
			}
			parseErrors = append(parseErrors, err.Error())
			continue
		}

		rec := Record{
			Line:   line,
			Fields: make(map[string]string, len(keys)),
			Keys:   keys,
		}
		empty := true
		for i, key := range keys {
			if key == "" {
				continue
			}
			var val string
			if i < len(fields) {
				val = strings.TrimSpace(fields[i])
			}
			rec.Fields[key] = val
			if val != "" {
				empty = false
			}
		}
		if empty {
			// 空白行：记录保留，由上层统计跳过数
			rec.Fields = nil
		}
		records = append(records, rec)
	}

	if len(parseErrors) > 0 {
		return nil, &MalformedCSVError{Details: parseErrors}
	}

	return records, nil
}

// IsBlank 判断记录是否为空白行
func (r Record) IsBlank() bool {
	return len(r.Fields) == 0
}
