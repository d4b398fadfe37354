// Package operation
package operation

import "errors"

var (
	// ErrEquipmentExists 同名活跃设备已存在
	ErrEquipmentExists = errors.New("equipment already exists")
	// ErrEquipmentNotFound 设备不存在
	ErrEquipmentNotFound = errors.New("equipment does not exist")
)

// SyncResult 同步操作的逐项执行统计
type SyncResult struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

// EquipmentOperationInterface 设备目录接口定义
type EquipmentOperationInterface interface {
	// AddEquipment 新增设备, 活跃条目中已有同名时返回 ErrEquipmentExists
	AddEquipment(name string) (*Equipment, error)
	// GetEquipmentByName 精确匹配活跃设备
	GetEquipmentByName(name string) (*Equipment, error)
	// SearchEquipmentsByName 取全部活跃设备后做大小写不敏感子串过滤, 空关键词返回全部
	SearchEquipmentsByName(keyword string) ([]*Equipment, error)
	// SoftDeleteEquipment 软删除: 将is_active置false
	SoftDeleteEquipment(id int64) error
	// HardDeleteEquipmentByName 按名称查找后永久删除行
	HardDeleteEquipmentByName(name string) error
	// SyncEquipments 将活跃名称集合对齐到desiredNames: 多余的硬删除, 缺少的新增.
	// 非事务性, 逐项尽力执行, 单项失败记录日志后继续
	SyncEquipments(desiredNames []string) (*SyncResult, error)
	// GetActiveEquipments 全部活跃设备, 名称升序
	GetActiveEquipments() ([]*Equipment, error)
	// CountEquipments 活跃设备数量
	CountEquipments() (int, error)
}
