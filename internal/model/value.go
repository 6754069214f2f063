package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind 标量值类型
type ValueKind int

const (
	ValueString ValueKind = iota // 字符串值
	ValueNumber                  // 数值
)

// Value 单元格标量值（数值或字符串的带标签联合）
// 类型在 CSV 解析边界确定，后续计算不再处理裸字符串
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// NumberValue 构造数值
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// StringValue 构造字符串值
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// CoerceValue 在解析边界做类型强制转换
// 规则：去除首尾空格后可解析为数值的按数值保存，其余按字符串保存
func CoerceValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return NumberValue(n)
		}
	}
	return StringValue(trimmed)
}

// IsEmpty 判断是否为空值（空字符串视为空）
func (v Value) IsEmpty() bool {
	return v.Kind == ValueString && strings.TrimSpace(v.Str) == ""
}

// Float 按数值读取，字符串值返回 false
func (v Value) Float() (float64, bool) {
	if v.Kind == ValueNumber {
		return v.Num, true
	}
	return 0, false
}

// String 显示用文本
func (v Value) String() string {
	if v.Kind == ValueNumber {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Str
}

// MarshalJSON 序列化为裸标量
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == ValueNumber {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Str)
}

// UnmarshalJSON 从裸标量反序列化，其他 JSON 类型视为非法
func (v *Value) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	return fmt.Errorf("单元格值必须是数值或字符串: %s", string(data))
}

// Row 一行记录：列名 -> 标量值
type Row map[string]Value

// Clone 深拷贝一行
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsBlank 判断整行是否没有任何非空值
func (r Row) IsBlank() bool {
	for _, v := range r {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// CloneRows 深拷贝行序列
func CloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
