// Package database
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/log"
	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"github.com/mse-lab/labbook/internal/utils"
)

type SettingOperation struct {
	logger               log.LoggerInterface
	store                store.TableStore
	queryTimeout         time.Duration
	defaultAdminPassword string
}

func NewSettingOperation(logger log.LoggerInterface, tableStore store.TableStore, queryTimeout time.Duration, defaultAdminPassword string) *SettingOperation {
	return &SettingOperation{
		logger:               logger,
		store:                tableStore,
		queryTimeout:         queryTimeout,
		defaultAdminPassword: defaultAdminPassword,
	}
}

func (settingOperation *SettingOperation) GetSetting(key, defaultValue string) string {
	ctx, cancel := context.WithTimeout(context.Background(), settingOperation.queryTimeout)
	defer cancel()
	rows, err := settingOperation.store.Select(ctx, TableSettings,
		map[string]interface{}{"key": key}, store.OrderBy{}, 1)
	if err != nil {
		settingOperation.logger.WarnF("Select setting %q failed, falling back: %v", key, err)
	} else if len(rows) > 0 {
		if value := utils.AnyToString(rows[0]["value"]); value != "" {
			return value
		}
	}
	if key == global.SettingAdminPasswordHash {
		return utils.HashPassword(settingOperation.defaultAdminPassword)
	}
	return defaultValue
}

func (settingOperation *SettingOperation) SetSetting(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), settingOperation.queryTimeout)
	defer cancel()
	rows, err := settingOperation.store.Select(ctx, TableSettings,
		map[string]interface{}{"key": key}, store.OrderBy{}, 1)
	if err != nil {
		settingOperation.logger.ErrorF("Select setting %q failed: %v", key, err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if len(rows) > 0 {
		setting := decodeSetting(rows[0])
		if _, err := settingOperation.store.Update(ctx, TableSettings, store.Row{"value": value}, setting.ID); err != nil {
			settingOperation.logger.ErrorF("Update setting %q failed: %v", key, err)
			return fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
		return nil
	}
	if _, err := settingOperation.store.Insert(ctx, TableSettings, store.Row{"key": key, "value": value}); err != nil {
		settingOperation.logger.ErrorF("Insert setting %q failed: %v", key, err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

func (settingOperation *SettingOperation) InitDefaultSettings() error {
	ctx, cancel := context.WithTimeout(context.Background(), settingOperation.queryTimeout)
	defer cancel()
	rows, err := settingOperation.store.Select(ctx, TableSettings,
		map[string]interface{}{"key": global.SettingAdminPasswordHash}, store.OrderBy{}, 1)
	if err != nil {
		settingOperation.logger.ErrorF("Select settings failed: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if len(rows) > 0 {
		return nil
	}
	settingOperation.logger.Info("Initializing default admin password")
	return settingOperation.SetSetting(global.SettingAdminPasswordHash, utils.HashPassword(settingOperation.defaultAdminPassword))
}
