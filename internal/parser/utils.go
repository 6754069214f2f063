package parser

import (
	"strings"
	"unicode"
)

// NormalizeColumnName 规范化列名：小写并去除所有非字母数字字符
// 归类推断和必需列校验都基于规范化后的列名比较
func NormalizeColumnName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeKeySet 将一组列名规范化为集合（空名丢弃）
func NormalizeKeySet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if normalized := NormalizeColumnName(n); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
