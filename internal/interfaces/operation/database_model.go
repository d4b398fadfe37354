// Package operation
package operation

const (
	TableEntries    = "entries"
	TableEquipments = "equipments"
	TableSettings   = "settings"
)

// BookingRecord 一条设备使用登记记录.
// id, register_datetime, created_at 在首次写入后不可变;
// 时间类字段以固定宽度的ISO字符串形态存储, 使得日期范围过滤可以
// 直接按字典序比较.
type BookingRecord struct {
	ID               int64   `json:"id" gorm:"primarykey"`
	RegisterDatetime string  `json:"register_datetime" gorm:"size:32;not null"`
	TestDate         string  `json:"test_date" gorm:"size:16;index;not null"`
	TestTime         string  `json:"test_time" gorm:"size:16"`
	Name             string  `json:"name" gorm:"size:64;index;not null"`
	Contact          *string `json:"contact" gorm:"size:64"`
	Advisor          *string `json:"advisor" gorm:"size:64;index"`
	Equipment        string  `json:"equipment" gorm:"size:128;index;not null"`
	MachineHours     float64 `json:"machine_hours" gorm:"not null;default:0"`
	Cost             int     `json:"cost" gorm:"not null;default:0"`
	Remark           *string `json:"remark" gorm:"type:text"`
	CreatedDate      string  `json:"created_at" gorm:"column:created_at;size:16;not null"`
	LastModified     string  `json:"last_modified" gorm:"size:32;not null"`
}

func (BookingRecord) TableName() string { return TableEntries }

// Equipment 设备目录条目. name在活跃条目中唯一(精确匹配),
// 搜索时使用大小写不敏感的子串匹配.
type Equipment struct {
	ID        int64  `json:"id" gorm:"primarykey"`
	Name      string `json:"name" gorm:"size:128;index;not null"`
	IsActive  bool   `json:"is_active" gorm:"index;not null;default:true"`
	CreatedAt string `json:"created_at" gorm:"size:32;not null"`
}

func (Equipment) TableName() string { return TableEquipments }

// Setting 通用键值设置
type Setting struct {
	ID    int64  `json:"id" gorm:"primarykey"`
	Key   string `json:"key" gorm:"size:64;uniqueIndex;not null"`
	Value string `json:"value" gorm:"size:256;not null"`
}

func (Setting) TableName() string { return TableSettings }
