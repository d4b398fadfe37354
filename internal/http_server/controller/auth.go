// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/mse-lab/labbook/internal/interfaces/log"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AuthControllerInterface interface {
	AdminLogin(ctx echo.Context) error
	RefreshToken(ctx echo.Context) error
	ChangePassword(ctx echo.Context) error
}

type AuthController struct {
	logger  log.LoggerInterface
	service AuthServiceInterface
}

func NewAuthHandler(logger log.LoggerInterface, service AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		service: service,
	}
}

func (controller *AuthController) AdminLogin(ctx echo.Context) error {
	data := &RequestAdminLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.AdminLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.AdminLogin(data).Response(ctx)
}

func (controller *AuthController) RefreshToken(ctx echo.Context) error {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data := &RequestTokenRefresh{FlushToken: claim.FlushToken}
	return controller.service.RefreshToken(data).Response(ctx)
}

func (controller *AuthController) ChangePassword(ctx echo.Context) error {
	data := &RequestChangePassword{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.ChangePassword bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.ChangePassword(data).Response(ctx)
}
