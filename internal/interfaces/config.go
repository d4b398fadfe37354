// Package interfaces
package interfaces

import (
	. "github.com/mse-lab/labbook/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
