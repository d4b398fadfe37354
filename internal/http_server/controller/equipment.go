// Package controller
package controller

import (
	"github.com/mse-lab/labbook/internal/interfaces/log"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type EquipmentControllerInterface interface {
	GetEquipments(ctx echo.Context) error
	AddEquipment(ctx echo.Context) error
	RemoveEquipment(ctx echo.Context) error
	SyncEquipments(ctx echo.Context) error
}

type EquipmentController struct {
	logger  log.LoggerInterface
	service EquipmentServiceInterface
}

func NewEquipmentHandler(logger log.LoggerInterface, service EquipmentServiceInterface) *EquipmentController {
	return &EquipmentController{
		logger:  logger,
		service: service,
	}
}

func (controller *EquipmentController) GetEquipments(ctx echo.Context) error {
	data := &RequestEquipmentList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EquipmentController.GetEquipments bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.GetEquipmentList(data).Response(ctx)
}

func (controller *EquipmentController) AddEquipment(ctx echo.Context) error {
	data := &RequestEquipmentAdd{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EquipmentController.AddEquipment bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.AddEquipment(data).Response(ctx)
}

func (controller *EquipmentController) RemoveEquipment(ctx echo.Context) error {
	data := &RequestEquipmentRemove{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EquipmentController.RemoveEquipment bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.RemoveEquipment(data).Response(ctx)
}

func (controller *EquipmentController) SyncEquipments(ctx echo.Context) error {
	data := &RequestEquipmentSync{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EquipmentController.SyncEquipments bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.SyncEquipments(data).Response(ctx)
}
