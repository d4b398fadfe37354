// Package database
package database

import (
	"context"
	"fmt"

	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 基于gorm的TableStore实现. 对上层只暴露等值条件查询,
// 单字段排序, 行数上限与按主键的增删改, 与远程表存储的能力边界一致.
// 插入与删除按表名走类型化模型, 保证主键回填在三种驱动上都可靠.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Select(ctx context.Context, table string, conditions map[string]interface{}, orderBy store.OrderBy, limit int) ([]store.Row, error) {
	query := s.db.WithContext(ctx).Table(table)
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}
	if orderBy.Field != "" {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy.Field}, Desc: orderBy.Desc})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var results []map[string]interface{}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	rows := make([]store.Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, result)
	}
	return rows, nil
}

func (s *GormStore) Insert(ctx context.Context, table string, fields store.Row) (store.Row, error) {
	switch table {
	case TableEntries:
		model := decodeRecord(fields)
		model.ID = 0
		if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
			return nil, err
		}
		return encodeRecord(model), nil
	case TableEquipments:
		model := decodeEquipment(fields)
		model.ID = 0
		if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
			return nil, err
		}
		return encodeEquipment(model), nil
	case TableSettings:
		model := decodeSetting(fields)
		model.ID = 0
		if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
			return nil, err
		}
		return encodeSetting(model), nil
	default:
		return nil, fmt.Errorf("unknown table %s", table)
	}
}

func (s *GormStore) Update(ctx context.Context, table string, fields store.Row, id int64) (store.Row, error) {
	if err := s.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}(fields)).Error; err != nil {
		return nil, err
	}
	rows, err := s.Select(ctx, table, map[string]interface{}{"id": id}, store.OrderBy{}, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (s *GormStore) Delete(ctx context.Context, table string, id int64) error {
	switch table {
	case TableEntries:
		return s.db.WithContext(ctx).Delete(&BookingRecord{}, id).Error
	case TableEquipments:
		return s.db.WithContext(ctx).Delete(&Equipment{}, id).Error
	case TableSettings:
		return s.db.WithContext(ctx).Delete(&Setting{}, id).Error
	default:
		return fmt.Errorf("unknown table %s", table)
	}
}

func encodeRecord(m *BookingRecord) store.Row {
	return store.Row{
		"id":                m.ID,
		"register_datetime": m.RegisterDatetime,
		"test_date":         m.TestDate,
		"test_time":         m.TestTime,
		"name":              m.Name,
		"contact":           nullable(m.Contact),
		"advisor":           nullable(m.Advisor),
		"equipment":         m.Equipment,
		"machine_hours":     m.MachineHours,
		"cost":              m.Cost,
		"remark":            nullable(m.Remark),
		"created_at":        m.CreatedDate,
		"last_modified":     m.LastModified,
	}
}

func encodeEquipment(m *Equipment) store.Row {
	return store.Row{
		"id":         m.ID,
		"name":       m.Name,
		"is_active":  m.IsActive,
		"created_at": m.CreatedAt,
	}
}

func encodeSetting(m *Setting) store.Row {
	return store.Row{
		"id":    m.ID,
		"key":   m.Key,
		"value": m.Value,
	}
}
