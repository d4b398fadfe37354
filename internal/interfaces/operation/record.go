// Package operation
package operation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mse-lab/labbook/internal/interfaces/store"
)

var (
	// ErrRecordNotFound 记录不存在
	ErrRecordNotFound = errors.New("record does not exist")
	// ErrStoreFailure 底层存储调用失败
	ErrStoreFailure = errors.New("table store operation failed")
)

// MissingFieldsError 必填字段缺失, 携带缺失字段名
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// IsMissingFields 判断err是否为必填字段缺失
func IsMissingFields(err error) bool {
	var missing *MissingFieldsError
	return errors.As(err, &missing)
}

// RecordInput 外部送入的原始登记数据, 数值字段保持动态类型,
// 由Sanitizer统一做安全转换
type RecordInput struct {
	TestDate     string      `json:"test_date"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	TestTime     string      `json:"test_time"`
	Name         string      `json:"name"`
	Contact      string      `json:"contact"`
	Advisor      string      `json:"advisor"`
	Equipment    string      `json:"equipment"`
	MachineHours interface{} `json:"machine_hours"`
	Cost         interface{} `json:"cost"`
	Remark       string      `json:"remark"`
}

// CleanRecord 清洗后的可持久化记录形态, 只包含可变字段
type CleanRecord struct {
	TestDate     string
	TestTime     string
	Name         string
	Contact      *string
	Advisor      *string
	Equipment    string
	MachineHours float64
	Cost         int
	Remark       *string
}

// DateField 日期范围过滤所依据的字段
type DateField string

const (
	DateFieldTestDate         DateField = "test_date"
	DateFieldRegisterDatetime DateField = "register_datetime"
)

// RecordQuery 记录查询参数. Conditions只做等值匹配, 范围过滤在取回后
// 基于DateField对应的日期完成, StartDate/EndDate为闭区间
type RecordQuery struct {
	Conditions map[string]string
	StartDate  string
	EndDate    string
	DateField  DateField
	OrderBy    store.OrderBy
	Limit      int
}

// RecordRow 面向按位置取值的消费方(CSV导出)的只读投影视图.
// Fields() 的列顺序是本类型的文档化契约:
// id, register_datetime, test_date, test_time, name, contact, advisor,
// equipment, machine_hours, cost, remark, created_at, last_modified
type RecordRow struct {
	ID               int64
	RegisterDatetime string
	TestDate         string
	TestTime         string
	Name             string
	Contact          string
	Advisor          string
	Equipment        string
	MachineHours     float64
	Cost             int
	Remark           string
	CreatedAt        string
	LastModified     string
}

// RecordRowHeader CSV导出的表头, 与 RecordRow.Fields 顺序一致
var RecordRowHeader = []string{
	"id", "register_datetime", "test_date", "test_time", "name", "contact",
	"advisor", "equipment", "machine_hours", "cost", "remark", "created_at",
	"last_modified",
}

// Fields 按文档化顺序返回所有字段的字符串形态
func (row *RecordRow) Fields() []string {
	return []string{
		fmt.Sprintf("%d", row.ID),
		row.RegisterDatetime,
		row.TestDate,
		row.TestTime,
		row.Name,
		row.Contact,
		row.Advisor,
		row.Equipment,
		fmt.Sprintf("%g", row.MachineHours),
		fmt.Sprintf("%d", row.Cost),
		row.Remark,
		row.CreatedAt,
		row.LastModified,
	}
}

// RecordOperationInterface 登记记录仓库接口定义
type RecordOperationInterface interface {
	// SaveRecord 保存记录. id为nil时插入并初始化register_datetime与created_at;
	// 否则按id更新, 原样保留不可变字段并刷新last_modified.
	// 必填字段缺失时返回 *MissingFieldsError 且不产生任何写入
	SaveRecord(input *RecordInput, id *int64) (*BookingRecord, error)
	// GetRecordByID 按主键获取记录, 不存在时返回 ErrRecordNotFound
	GetRecordByID(id int64) (*BookingRecord, error)
	// DeleteRecord 按主键无条件硬删除
	DeleteRecord(id int64) error
	// BatchDeleteRecords 逐条尽力删除, 返回成功条数; 至少成功一条即视为成功
	BatchDeleteRecords(ids []int64) (deleted int, err error)
	// GetRecords 等值条件查询+取回后日期范围过滤, limit硬上限500
	GetRecords(query *RecordQuery) ([]*BookingRecord, error)
	// GetRecordRows 同 GetRecords, 投影为固定列序的 RecordRow, 投影失败的记录跳过
	GetRecordRows(query *RecordQuery) ([]*RecordRow, error)
	// SearchRecords 高级搜索: advisor/equipment等值过滤+日期范围+关键词子串匹配
	SearchRecords(keywords, advisor, equipment, startDate, endDate string, limit int) ([]*BookingRecord, error)
}
