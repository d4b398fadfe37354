// Package database
package database

import (
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"github.com/mse-lab/labbook/internal/utils"
)

// cleanRecordRow 将清洗后的可变字段转换为存储行, 可选字段为nil时落NULL
func cleanRecordRow(clean *CleanRecord) store.Row {
	return store.Row{
		"test_date":     clean.TestDate,
		"test_time":     clean.TestTime,
		"name":          clean.Name,
		"contact":       nullable(clean.Contact),
		"advisor":       nullable(clean.Advisor),
		"equipment":     clean.Equipment,
		"machine_hours": clean.MachineHours,
		"cost":          clean.Cost,
		"remark":        nullable(clean.Remark),
	}
}

func nullable(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// decodeRecord 将存储行解码为记录. 数值字段使用安全转换,
// 时间戳字段兼容字符串与time.Time两种存储表示
func decodeRecord(row store.Row) *BookingRecord {
	return &BookingRecord{
		ID:               utils.AnyToInt64(row["id"], 0),
		RegisterDatetime: datetimeString(row["register_datetime"]),
		TestDate:         dateString(row["test_date"]),
		TestTime:         utils.AnyToString(row["test_time"]),
		Name:             utils.AnyToString(row["name"]),
		Contact:          optionalColumn(row["contact"]),
		Advisor:          optionalColumn(row["advisor"]),
		Equipment:        utils.AnyToString(row["equipment"]),
		MachineHours:     utils.AnyToFloat(row["machine_hours"], 0.0),
		Cost:             utils.AnyToInt(row["cost"], 0),
		Remark:           optionalColumn(row["remark"]),
		CreatedDate:      dateString(row["created_at"]),
		LastModified:     datetimeString(row["last_modified"]),
	}
}

func decodeEquipment(row store.Row) *Equipment {
	return &Equipment{
		ID:        utils.AnyToInt64(row["id"], 0),
		Name:      utils.AnyToString(row["name"]),
		IsActive:  utils.AnyToBool(row["is_active"], false),
		CreatedAt: datetimeString(row["created_at"]),
	}
}

func decodeSetting(row store.Row) *Setting {
	return &Setting{
		ID:    utils.AnyToInt64(row["id"], 0),
		Key:   utils.AnyToString(row["key"]),
		Value: utils.AnyToString(row["value"]),
	}
}

func optionalColumn(value interface{}) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return &v
	case *string:
		return v
	default:
		s := utils.AnyToString(value)
		if s == "" {
			return nil
		}
		return &s
	}
}

// datetimeString 将任意存储表示的时间戳归一为"2006-01-02 15:04:05"字符串
func datetimeString(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(global.DateTimeLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(global.DateTimeLayout)
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.Format(global.DateTimeLayout)
		}
		return v
	default:
		return utils.AnyToString(value)
	}
}

// dateString 将任意存储表示的日期归一为"2006-01-02"字符串
func dateString(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(global.DateLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(global.DateLayout)
	default:
		return utils.AnyToString(value)
	}
}
