// Package service
package service

import (
	"crypto/subtle"

	c "github.com/mse-lab/labbook/internal/interfaces/config"
	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/operation"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
	"github.com/mse-lab/labbook/internal/utils"
)

type AuthService struct {
	config           *c.HttpServerConfig
	settingOperation operation.SettingOperationInterface
}

func NewAuthService(
	config *c.HttpServerConfig,
	settingOperation operation.SettingOperationInterface,
) *AuthService {
	return &AuthService{
		config:           config,
		settingOperation: settingOperation,
	}
}

var SuccessLogin = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "登陆成功", HttpCode: Ok}

func (authService *AuthService) verifyPassword(password string) bool {
	storedHash := authService.settingOperation.GetSetting(global.SettingAdminPasswordHash, "")
	if storedHash == "" {
		return false
	}
	givenHash := utils.HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(givenHash)) == 1
}

func (authService *AuthService) AdminLogin(req *RequestAdminLogin) *ApiResponse[ResponseAdminLogin] {
	if req.Password == "" {
		return NewApiResponse[ResponseAdminLogin](&ErrIllegalParam, Unsatisfied, nil)
	}
	if !authService.verifyPassword(req.Password) {
		return NewApiResponse[ResponseAdminLogin](&ErrWrongPassword, Unsatisfied, nil)
	}
	token := NewClaims(authService.config.JWT, false)
	flushToken := NewClaims(authService.config.JWT, true)
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseAdminLogin{
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	})
}

var SuccessGetToken = ApiStatus{StatusName: "GET_TOKEN", Description: "成功刷新秘钥", HttpCode: Ok}

func (authService *AuthService) RefreshToken(req *RequestTokenRefresh) *ApiResponse[ResponseAdminLogin] {
	if !req.FlushToken {
		return NewApiResponse[ResponseAdminLogin](&ErrIllegalParam, Unsatisfied, nil)
	}
	token := NewClaims(authService.config.JWT, false)
	flushToken := NewClaims(authService.config.JWT, true)
	return NewApiResponse(&SuccessGetToken, Unsatisfied, &ResponseAdminLogin{
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	})
}

var (
	ErrPasswordMismatch   = ApiStatus{StatusName: "PASSWORD_MISMATCH", Description: "两次输入的密码不一致", HttpCode: BadRequest}
	SuccessChangePassword = ApiStatus{StatusName: "CHANGE_PASSWORD_SUCCESS", Description: "修改密码成功", HttpCode: Ok}
)

func (authService *AuthService) ChangePassword(req *RequestChangePassword) *ApiResponse[ResponseChangePassword] {
	if req.NewPassword == "" || req.ConfirmPassword == "" {
		return NewApiResponse[ResponseChangePassword](&ErrLackParam, Unsatisfied, nil)
	}
	if req.NewPassword != req.ConfirmPassword {
		return NewApiResponse[ResponseChangePassword](&ErrPasswordMismatch, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.NewPassword); err != nil {
		return NewApiResponse[ResponseChangePassword](err, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseChangePassword](func() (*interface{}, error) {
		return nil, authService.settingOperation.SetSetting(global.SettingAdminPasswordHash, utils.HashPassword(req.NewPassword))
	}); res != nil {
		return res
	}
	data := ResponseChangePassword(true)
	return NewApiResponse(&SuccessChangePassword, Unsatisfied, &data)
}
