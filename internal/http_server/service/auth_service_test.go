// Package service
package service

import (
	"testing"
	"time"

	c "github.com/mse-lab/labbook/internal/interfaces/config"
	"github.com/mse-lab/labbook/internal/interfaces/global"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
	"github.com/mse-lab/labbook/internal/utils"
)

// fakeSettingOperation 内存键值实现, 模拟settings表的回退链
type fakeSettingOperation struct {
	values  map[string]string
	failSet bool
}

func newFakeSettingOperation() *fakeSettingOperation {
	return &fakeSettingOperation{values: make(map[string]string)}
}

func (f *fakeSettingOperation) GetSetting(key, defaultValue string) string {
	if value, ok := f.values[key]; ok && value != "" {
		return value
	}
	if key == global.SettingAdminPasswordHash {
		return utils.HashPassword("9999")
	}
	return defaultValue
}

func (f *fakeSettingOperation) SetSetting(key, value string) error {
	if f.failSet {
		return errTestStore
	}
	f.values[key] = value
	return nil
}

func (f *fakeSettingOperation) InitDefaultSettings() error { return nil }

var errTestStore = &testStoreError{}

type testStoreError struct{}

func (e *testStoreError) Error() string { return "store unavailable" }

func newTestAuthService() (*AuthService, *fakeSettingOperation) {
	httpConfig := &c.HttpServerConfig{
		JWT: &c.JWTConfig{
			Secret:          "test-secret-test-secret-test-secret",
			ExpiresDuration: 30 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
	}
	InitValidator(&c.HttpServerLimit{PasswordLengthMin: 4, PasswordLengthMax: 64})
	settingOperation := newFakeSettingOperation()
	return NewAuthService(httpConfig, settingOperation), settingOperation
}

func TestAdminLogin(t *testing.T) {
	authService, settingOperation := newTestAuthService()

	tests := []struct {
		name     string
		password string
		expected string
	}{
		{"empty password", "", "PARAM_ERROR"},
		{"wrong password", "0000", "WRONG_PASSWORD"},
		{"default password accepted", "9999", "LOGIN_SUCCESS"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		res := authService.AdminLogin(&RequestAdminLogin{Password: test.password})
		if res.Code != test.expected {
			fail++
			t.Errorf("%s: code = %q; expected %q", test.name, res.Code, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAdminLogin: %d pass, %d fail", pass, fail)

	res := authService.AdminLogin(&RequestAdminLogin{Password: "9999"})
	if res.Data == nil || res.Data.Token == "" || res.Data.FlushToken == "" {
		t.Error("successful login should issue token and flush token")
	}

	// 存储中的哈希优先于默认密码
	settingOperation.values[global.SettingAdminPasswordHash] = utils.HashPassword("secret")
	if res := authService.AdminLogin(&RequestAdminLogin{Password: "9999"}); res.Code != "WRONG_PASSWORD" {
		t.Errorf("old password after change: code = %q; expected WRONG_PASSWORD", res.Code)
	}
	if res := authService.AdminLogin(&RequestAdminLogin{Password: "secret"}); res.Code != "LOGIN_SUCCESS" {
		t.Errorf("stored password: code = %q; expected LOGIN_SUCCESS", res.Code)
	}
}

func TestRefreshToken(t *testing.T) {
	authService, _ := newTestAuthService()

	if res := authService.RefreshToken(&RequestTokenRefresh{FlushToken: false}); res.Code != "PARAM_ERROR" {
		t.Errorf("refresh with access token: code = %q; expected PARAM_ERROR", res.Code)
	}
	res := authService.RefreshToken(&RequestTokenRefresh{FlushToken: true})
	if res.Code != "GET_TOKEN" || res.Data == nil || res.Data.Token == "" {
		t.Errorf("refresh failed: code = %q", res.Code)
	}
}

func TestChangePassword(t *testing.T) {
	authService, settingOperation := newTestAuthService()

	tests := []struct {
		name     string
		new      string
		confirm  string
		expected string
	}{
		{"missing fields", "", "", "PARAM_LACK_ERROR"},
		{"mismatched confirmation", "secret", "secrets", "PASSWORD_MISMATCH"},
		{"too short", "abc", "abc", "PASSWORD_TOO_SHORT"},
		{"accepted", "secret", "secret", "CHANGE_PASSWORD_SUCCESS"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		res := authService.ChangePassword(&RequestChangePassword{NewPassword: test.new, ConfirmPassword: test.confirm})
		if res.Code != test.expected {
			fail++
			t.Errorf("%s: code = %q; expected %q", test.name, res.Code, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestChangePassword: %d pass, %d fail", pass, fail)

	if stored := settingOperation.values[global.SettingAdminPasswordHash]; stored != utils.HashPassword("secret") {
		t.Errorf("stored hash = %q; expected hex sha256 of new password", stored)
	}

	settingOperation.failSet = true
	if res := authService.ChangePassword(&RequestChangePassword{NewPassword: "secret", ConfirmPassword: "secret"}); res.Code != "DATABASE_ERROR" {
		t.Errorf("store failure: code = %q; expected DATABASE_ERROR", res.Code)
	}
}

// 确认各实现与接口定义一致
var _ AuthServiceInterface = (*AuthService)(nil)
var _ RecordServiceInterface = (*RecordService)(nil)
var _ EquipmentServiceInterface = (*EquipmentService)(nil)
