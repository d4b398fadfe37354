// Package global
package global

import "flag"

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	LogFilePath    = flag.String("log", "./labbook.log", "Path to log file")
)

const (
	AppVersion    = "0.3.0"
	ConfigVersion = "0.3.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	// SettingAdminPasswordHash settings表中管理员密码哈希的键名
	SettingAdminPasswordHash = "admin_password_hash"

	// DateLayout / DateTimeLayout 存储层使用的日期与时间戳字符串格式
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"

	// MaxQueryLimit 单次查询的硬上限, 无论调用方传入多少
	MaxQueryLimit = 500
	// DefaultQueryLimit 调用方未指定时的查询条数
	DefaultQueryLimit = 200
)
