package store

import (
	"fmt"
	"sync"
	"time"

	"fitsight/internal/model"
)

// TableStore 内存表存储
//
// 持有八张业务表的当前数据、版本标签与导入历史，以及基准测算场景。
// 实例通过依赖注入传给各处理器，不使用包级单例；读取返回深拷贝快照，
// 调用方修改返回值不会影响存储内容。
type TableStore struct {
	mu        sync.RWMutex
	tables    map[model.TableCategory][]model.Row
	version   string
	history   []model.VersionEntry
	baseInput model.ROIInput
}

// NewTableStore 创建表存储（八张表均为空，使用给定的基准场景）
func NewTableStore(baseInput model.ROIInput) *TableStore {
	tables := make(map[model.TableCategory][]model.Row, 8)
	for _, cat := range model.AllCategories() {
		tables[cat] = nil
	}
	return &TableStore{
		tables:    tables,
		baseInput: baseInput.Clone(),
	}
}

// RegisterImport 整体替换全部八张表并记录新版本（最近的版本排在历史最前）
// 不支持合并导入：每次导入都是全量替换
func (s *TableStore) RegisterImport(version string, tables map[model.TableCategory][]model.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[model.TableCategory][]model.Row, 8)
	for _, cat := range model.AllCategories() {
		next[cat] = model.CloneRows(tables[cat])
	}
	s.tables = next
	s.version = version
	s.history = append([]model.VersionEntry{{
		Version:   version,
		CreatedAt: time.Now(),
	}}, s.history...)
}

// SetTable 替换单张表的数据，不生成新版本标签（用于导入后的增量编辑）
func (s *TableStore) SetTable(cat model.TableCategory, rows []model.Row) error {
	if !model.IsValidCategory(string(cat)) {
		return fmt.Errorf("未知的表分类: %s", cat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[cat] = model.CloneRows(rows)
	return nil
}

// Table 获取单张表的行快照
func (s *TableStore) Table(cat model.TableCategory) ([]model.Row, error) {
	if !model.IsValidCategory(string(cat)) {
		return nil, fmt.Errorf("未知的表分类: %s", cat)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneRows(s.tables[cat]), nil
}

// Tables 获取全部表的快照
func (s *TableStore) Tables() map[model.TableCategory][]model.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.TableCategory][]model.Row, len(s.tables))
	for cat, rows := range s.tables {
		out[cat] = model.CloneRows(rows)
	}
	return out
}

// Version 当前版本标签（尚未导入时为空字符串）
func (s *TableStore) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// History 导入版本历史（最近的在最前）
func (s *TableStore) History() []model.VersionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.VersionEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Counts 各分类当前行数
func (s *TableStore) Counts() map[model.TableCategory]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.TableCategory]int, len(s.tables))
	for cat, rows := range s.tables {
		out[cat] = len(rows)
	}
	return out
}

// TotalRows 全部表的合计行数
func (s *TableStore) TotalRows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, rows := range s.tables {
		total += len(rows)
	}
	return total
}

// BaseInput 基准测算场景
func (s *TableStore) BaseInput() model.ROIInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseInput.Clone()
}

// SetBaseInput 替换基准测算场景
func (s *TableStore) SetBaseInput(in model.ROIInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseInput = in.Clone()
}
