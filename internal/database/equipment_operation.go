// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/log"
	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"github.com/mse-lab/labbook/internal/utils"
	"gorm.io/gorm"
)

type EquipmentOperation struct {
	logger       log.LoggerInterface
	store        store.TableStore
	queryTimeout time.Duration
}

func NewEquipmentOperation(logger log.LoggerInterface, tableStore store.TableStore, queryTimeout time.Duration) *EquipmentOperation {
	return &EquipmentOperation{logger: logger, store: tableStore, queryTimeout: queryTimeout}
}

func (equipmentOperation *EquipmentOperation) AddEquipment(name string) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &MissingFieldsError{Fields: []string{"name"}}
	}
	existing, err := equipmentOperation.GetEquipmentByName(name)
	if err != nil && !errors.Is(err, ErrEquipmentNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEquipmentExists
	}

	ctx, cancel := context.WithTimeout(context.Background(), equipmentOperation.queryTimeout)
	defer cancel()
	row, err := equipmentOperation.store.Insert(ctx, TableEquipments, store.Row{
		"name":       name,
		"is_active":  true,
		"created_at": time.Now().Format(global.DateTimeLayout),
	})
	if err != nil {
		equipmentOperation.logger.ErrorF("Insert equipment %q failed: %v", name, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	equipmentOperation.logger.InfoF("Added equipment %q", name)
	return decodeEquipment(row), nil
}

func (equipmentOperation *EquipmentOperation) GetEquipmentByName(name string) (*Equipment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), equipmentOperation.queryTimeout)
	defer cancel()
	rows, err := equipmentOperation.store.Select(ctx, TableEquipments,
		map[string]interface{}{"name": name, "is_active": true}, store.OrderBy{}, 1)
	if err != nil {
		equipmentOperation.logger.ErrorF("Select equipment %q failed: %v", name, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if len(rows) == 0 {
		return nil, ErrEquipmentNotFound
	}
	return decodeEquipment(rows[0]), nil
}

func (equipmentOperation *EquipmentOperation) SearchEquipmentsByName(keyword string) ([]*Equipment, error) {
	equipments, err := equipmentOperation.GetActiveEquipments()
	if err != nil {
		return nil, err
	}
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return equipments, nil
	}
	return utils.Filter(equipments, func(equipment *Equipment) bool {
		return strings.Contains(strings.ToLower(equipment.Name), keyword)
	}), nil
}

func (equipmentOperation *EquipmentOperation) SoftDeleteEquipment(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), equipmentOperation.queryTimeout)
	defer cancel()
	_, err := equipmentOperation.store.Update(ctx, TableEquipments, store.Row{"is_active": false}, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEquipmentNotFound
	}
	if err != nil {
		equipmentOperation.logger.ErrorF("Soft delete equipment %d failed: %v", id, err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	equipmentOperation.logger.InfoF("Soft deleted equipment %d", id)
	return nil
}

func (equipmentOperation *EquipmentOperation) HardDeleteEquipmentByName(name string) error {
	equipment, err := equipmentOperation.GetEquipmentByName(name)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), equipmentOperation.queryTimeout)
	defer cancel()
	if err := equipmentOperation.store.Delete(ctx, TableEquipments, equipment.ID); err != nil {
		equipmentOperation.logger.ErrorF("Hard delete equipment %q failed: %v", name, err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	equipmentOperation.logger.InfoF("Hard deleted equipment %q", name)
	return nil
}

// SyncEquipments 将活跃名称集合对齐到desiredNames. 非事务性: 逐项尽力执行,
// 单项失败记录日志后继续, 中途失败会留下部分同步的目录
func (equipmentOperation *EquipmentOperation) SyncEquipments(desiredNames []string) (*SyncResult, error) {
	current, err := equipmentOperation.GetActiveEquipments()
	if err != nil {
		return nil, err
	}

	desired := make(map[string]bool, len(desiredNames))
	for _, name := range desiredNames {
		name = strings.TrimSpace(name)
		if name != "" {
			desired[name] = true
		}
	}
	active := make(map[string]bool, len(current))
	for _, equipment := range current {
		active[equipment.Name] = true
	}

	result := &SyncResult{}
	for _, equipment := range current {
		if desired[equipment.Name] {
			continue
		}
		if err := equipmentOperation.HardDeleteEquipmentByName(equipment.Name); err != nil {
			equipmentOperation.logger.WarnF("Sync: delete %q failed: %v", equipment.Name, err)
			result.Failed++
			continue
		}
		result.Deleted++
	}
	for name := range desired {
		if active[name] {
			continue
		}
		if _, err := equipmentOperation.AddEquipment(name); err != nil {
			equipmentOperation.logger.WarnF("Sync: add %q failed: %v", name, err)
			result.Failed++
			continue
		}
		result.Added++
	}

	equipmentOperation.logger.InfoF("Equipment sync: %d added, %d deleted, %d failed", result.Added, result.Deleted, result.Failed)
	return result, nil
}

func (equipmentOperation *EquipmentOperation) GetActiveEquipments() ([]*Equipment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), equipmentOperation.queryTimeout)
	defer cancel()
	rows, err := equipmentOperation.store.Select(ctx, TableEquipments,
		map[string]interface{}{"is_active": true}, store.OrderBy{Field: "name", Desc: false}, 0)
	if err != nil {
		equipmentOperation.logger.ErrorF("Select equipments failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	equipments := make([]*Equipment, 0, len(rows))
	for _, row := range rows {
		equipments = append(equipments, decodeEquipment(row))
	}
	return equipments, nil
}

func (equipmentOperation *EquipmentOperation) CountEquipments() (int, error) {
	equipments, err := equipmentOperation.GetActiveEquipments()
	if err != nil {
		return 0, err
	}
	return len(equipments), nil
}
