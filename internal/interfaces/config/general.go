// Package config
package config

import (
	"errors"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/log"
)

type GeneralConfig struct {
	// DefaultAdminPassword settings表中没有密码哈希时的回退密码
	DefaultAdminPassword string `json:"default_admin_password"`
	MaxRecordsPerPage    int    `json:"max_records_per_page"`
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		DefaultAdminPassword: "9999",
		MaxRecordsPerPage:    global.DefaultQueryLimit,
	}
}

func (config *GeneralConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.DefaultAdminPassword == "" {
		return ValidFail(errors.New("invalid json field general.default_admin_password, value must not be empty"))
	}
	if config.MaxRecordsPerPage <= 0 {
		logger.WarnF("Invalid max_records_per_page %d, using default %d", config.MaxRecordsPerPage, global.DefaultQueryLimit)
		config.MaxRecordsPerPage = global.DefaultQueryLimit
	}
	if config.MaxRecordsPerPage > global.MaxQueryLimit {
		logger.WarnF("max_records_per_page %d exceeds hard cap %d, clamping", config.MaxRecordsPerPage, global.MaxQueryLimit)
		config.MaxRecordsPerPage = global.MaxQueryLimit
	}
	return ValidPass()
}
