// Package interfaces
package interfaces

import (
	"github.com/mse-lab/labbook/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
