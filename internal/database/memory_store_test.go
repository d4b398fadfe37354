// Package database
package database

import (
	"context"
	"sort"
	"sync"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/log"
	"github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"github.com/mse-lab/labbook/internal/utils"
	"gorm.io/gorm"
)

// memoryStore 纯内存的TableStore实现, 语义对齐GormStore:
// 等值条件查询, 单字段排序, 行数上限, 按主键增删改
type memoryStore struct {
	mu      sync.Mutex
	tables  map[string][]store.Row
	nextID  map[string]int64
	failErr error

	lastLimit int
	lastOrder store.OrderBy
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		tables: make(map[string][]store.Row),
		nextID: make(map[string]int64),
	}
}

func copyRow(row store.Row) store.Row {
	clone := make(store.Row, len(row))
	for key, value := range row {
		clone[key] = value
	}
	return clone
}

func (s *memoryStore) Select(_ context.Context, table string, conditions map[string]interface{}, orderBy store.OrderBy, limit int) ([]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	s.lastLimit = limit
	s.lastOrder = orderBy

	matched := make([]store.Row, 0)
	for _, row := range s.tables[table] {
		match := true
		for field, expected := range conditions {
			if row[field] != expected {
				match = false
				break
			}
		}
		if match {
			matched = append(matched, copyRow(row))
		}
	}

	if orderBy.Field != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			left := utils.AnyToString(matched[i][orderBy.Field])
			right := utils.AnyToString(matched[j][orderBy.Field])
			if orderBy.Desc {
				return left > right
			}
			return left < right
		})
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *memoryStore) Insert(_ context.Context, table string, fields store.Row) (store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	s.nextID[table]++
	row := copyRow(fields)
	row["id"] = s.nextID[table]
	s.tables[table] = append(s.tables[table], row)
	return copyRow(row), nil
}

func (s *memoryStore) Update(_ context.Context, table string, fields store.Row, id int64) (store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	for _, row := range s.tables[table] {
		if utils.AnyToInt64(row["id"], 0) == id {
			for field, value := range fields {
				row[field] = value
			}
			return copyRow(row), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryStore) Delete(_ context.Context, table string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	rows := s.tables[table]
	for idx, row := range rows {
		if utils.AnyToInt64(row["id"], 0) == id {
			s.tables[table] = append(rows[:idx], rows[idx+1:]...)
			return nil
		}
	}
	// gorm的按主键删除对不存在的行不报错
	return nil
}

func (s *memoryStore) rowCount(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables[table])
}

// testLogger 测试用静默日志实现
type testLogger struct{}

func (l *testLogger) Init(_ bool)                       {}
func (l *testLogger) ShutdownCallback() global.Callable { return nil }
func (l *testLogger) Debug(_ string, _ ...interface{})  {}
func (l *testLogger) DebugF(_ string, _ ...interface{}) {}
func (l *testLogger) Info(_ string, _ ...interface{})   {}
func (l *testLogger) InfoF(_ string, _ ...interface{})  {}
func (l *testLogger) Warn(_ string, _ ...interface{})   {}
func (l *testLogger) WarnF(_ string, _ ...interface{})  {}
func (l *testLogger) Error(_ string, _ ...interface{})  {}
func (l *testLogger) ErrorF(_ string, _ ...interface{}) {}
func (l *testLogger) Fatal(_ string, _ ...interface{})  {}
func (l *testLogger) FatalF(_ string, _ ...interface{}) {}

var (
	_ store.TableStore    = (*memoryStore)(nil)
	_ log.LoggerInterface = (*testLogger)(nil)

	_ operation.RecordOperationInterface    = (*RecordOperation)(nil)
	_ operation.EquipmentOperationInterface = (*EquipmentOperation)(nil)
	_ operation.SettingOperationInterface   = (*SettingOperation)(nil)
)
