// Package controller
package controller

import (
	"fmt"
	"net/http"

	"github.com/mse-lab/labbook/internal/interfaces/log"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type RecordControllerInterface interface {
	GetRecords(ctx echo.Context) error
	SearchRecords(ctx echo.Context) error
	ExportRecords(ctx echo.Context) error
	GetRecord(ctx echo.Context) error
	SaveRecord(ctx echo.Context) error
	EditRecord(ctx echo.Context) error
	DeleteRecord(ctx echo.Context) error
	BatchDeleteRecords(ctx echo.Context) error
}

type RecordController struct {
	logger  log.LoggerInterface
	service RecordServiceInterface
}

func NewRecordHandler(logger log.LoggerInterface, service RecordServiceInterface) *RecordController {
	return &RecordController{
		logger:  logger,
		service: service,
	}
}

func (controller *RecordController) GetRecords(ctx echo.Context) error {
	data := &RequestRecordList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.GetRecords bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.GetRecordList(data).Response(ctx)
}

func (controller *RecordController) SearchRecords(ctx echo.Context) error {
	data := &RequestRecordSearch{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.SearchRecords bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.SearchRecordList(data).Response(ctx)
}

func (controller *RecordController) ExportRecords(ctx echo.Context) error {
	data := &RequestRecordExport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.ExportRecords bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	export, res := controller.service.ExportRecords(data)
	if res != nil {
		return res.Response(ctx)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.Filename))
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

func (controller *RecordController) GetRecord(ctx echo.Context) error {
	data := &RequestRecord{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.GetRecord bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.GetRecord(data).Response(ctx)
}

func (controller *RecordController) SaveRecord(ctx echo.Context) error {
	data := &RequestRecordSave{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.SaveRecord bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.SaveRecord(data).Response(ctx)
}

func (controller *RecordController) EditRecord(ctx echo.Context) error {
	data := &RequestRecordEdit{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.EditRecord bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.EditRecord(data).Response(ctx)
}

func (controller *RecordController) DeleteRecord(ctx echo.Context) error {
	data := &RequestRecordDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.DeleteRecord bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.DeleteRecord(data).Response(ctx)
}

func (controller *RecordController) BatchDeleteRecords(ctx echo.Context) error {
	data := &RequestRecordBatchDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RecordController.BatchDeleteRecords bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.BatchDeleteRecords(data).Response(ctx)
}
