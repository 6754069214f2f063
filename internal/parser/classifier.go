package parser

import (
	"fitsight/internal/model"
)

// ClassifyResult 单行归类结果
type ClassifyResult struct {
	Category   model.TableCategory `json:"category"`
	MatchCount int                 `json:"matchCount"` // 命中的必需列数
	Score      float64             `json:"score"`      // 命中列数 / 该分类必需列总数
}

// RowClassifier 行归类器：根据列名推断记录所属的业务表分类
type RowClassifier struct{}

// NewRowClassifier 创建归类器
func NewRowClassifier() *RowClassifier {
	return &RowClassifier{}
}

// Classify 推断一组列名所属的分类
//
// 规则：规范化所有列名后，统计每个分类的必需列命中数，命中数严格最高者胜出。
// 平局按确定性规则裁决：先比命中占比（命中数/必需列总数），再按分类名字典序取最小。
// 所有分类命中数均为 0 时返回 TableUnknown。
func (c *RowClassifier) Classify(columnNames []string) ClassifyResult {
	keySet := NormalizeKeySet(columnNames)

	best := ClassifyResult{Category: model.TableUnknown}
	for _, cat := range model.AllCategories() {
		required := model.RequiredColumns(cat)
		matchCount := 0
		for _, col := range required {
			if keySet[NormalizeColumnName(col)] {
				matchCount++
			}
		}
		if matchCount == 0 {
			continue
		}
		score := float64(matchCount) / float64(len(required))

		switch {
		case matchCount > best.MatchCount:
			best = ClassifyResult{Category: cat, MatchCount: matchCount, Score: score}
		case matchCount == best.MatchCount && score > best.Score:
			best = ClassifyResult{Category: cat, MatchCount: matchCount, Score: score}
		case matchCount == best.MatchCount && score == best.Score && cat < best.Category:
			best = ClassifyResult{Category: cat, MatchCount: matchCount, Score: score}
		}
	}

	return best
}

// MissingColumns 返回记录缺少的必需列（按分类 schema 定义的顺序）
// 只检查列是否存在，不校验值的类型
func MissingColumns(cat model.TableCategory, columnNames []string) []string {
	keySet := NormalizeKeySet(columnNames)

	var missing []string
	for _, col := range model.RequiredColumns(cat) {
		if !keySet[NormalizeColumnName(col)] {
			missing = append(missing, col)
		}
	}
	return missing
}

// HasRequiredColumns 判断记录是否包含分类的全部必需列
func HasRequiredColumns(cat model.TableCategory, columnNames []string) bool {
	return len(MissingColumns(cat, columnNames)) == 0
}
