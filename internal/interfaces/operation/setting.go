// Package operation
package operation

// SettingOperationInterface 键值设置表接口定义
type SettingOperationInterface interface {
	// GetSetting 读取设置. 回退链: 存储值 -> 管理员密码键的静态配置默认哈希 -> 调用方默认值.
	// 存储故障按未命中处理, 永不报错
	GetSetting(key, defaultValue string) string
	// SetSetting 存在则更新, 否则插入
	SetSetting(key, value string) error
	// InitDefaultSettings 首次运行时写入默认管理员密码哈希
	InitDefaultSettings() error
}
