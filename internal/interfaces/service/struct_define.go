// Package service
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	c "github.com/mse-lab/labbook/internal/interfaces/config"
	"github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

// Claims 管理员会话的JWT载荷
type Claims struct {
	Admin      bool `json:"admin"`
	FlushToken bool `json:"flushToken"`
	config     *c.JWTConfig
	jwt.RegisteredClaims
}

func NewClaims(config *c.JWTConfig, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	return &Claims{
		Admin:      true,
		FlushToken: flushToken,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "LabbookHttpServer",
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "参数不正确", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "缺少参数", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "无权这么做", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "服务器内部错误", ServerInternalError}
	ErrWrongPassword         = ApiStatus{"WRONG_PASSWORD", "密码错误", Unauthorized}
	ErrRecordNotFound        = ApiStatus{"RECORD_NOT_FOUND", "指定记录不存在", NotFound}
	ErrEquipmentNotFound     = ApiStatus{"EQUIPMENT_NOT_FOUND", "指定设备不存在", NotFound}
	ErrEquipmentExists       = ApiStatus{"EQUIPMENT_EXISTS", "设备已存在", Conflict}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "缺少JWT令牌或者令牌格式错误", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "无效或过期的JWT令牌", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "未知的JWT解析错误", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError 调用数据库操作函数并处理错误
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	var missingFields *operation.MissingFieldsError
	switch {
	case errors.As(err, &missingFields):
		return nil, NewApiResponse[T](&ErrLackParam, Unsatisfied, nil)
	case errors.Is(err, operation.ErrRecordNotFound):
		return nil, NewApiResponse[T](&ErrRecordNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEquipmentNotFound):
		return nil, NewApiResponse[T](&ErrEquipmentNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEquipmentExists):
		return nil, NewApiResponse[T](&ErrEquipmentExists, Unsatisfied, nil)
	case err != nil:
		slog.Error("Error in DB function", "error", err)
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}
