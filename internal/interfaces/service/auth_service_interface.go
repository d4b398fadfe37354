// Package service
package service

type AuthServiceInterface interface {
	AdminLogin(req *RequestAdminLogin) *ApiResponse[ResponseAdminLogin]
	RefreshToken(req *RequestTokenRefresh) *ApiResponse[ResponseAdminLogin]
	ChangePassword(req *RequestChangePassword) *ApiResponse[ResponseChangePassword]
}

type RequestAdminLogin struct {
	Password string `json:"password"`
}

type ResponseAdminLogin struct {
	Token      string `json:"token"`
	FlushToken string `json:"flush_token"`
}

type RequestTokenRefresh struct {
	FlushToken bool
}

type RequestChangePassword struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ResponseChangePassword bool
