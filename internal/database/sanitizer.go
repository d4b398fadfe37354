// Package database
package database

import (
	"fmt"
	"strings"

	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/utils"
)

// CheckRequiredFields 校验必填字段, 缺失时返回携带字段名的 *MissingFieldsError.
// 必须在 SanitizeRecord 之前调用
func CheckRequiredFields(input *RecordInput) error {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(input.TestDate) == "" {
		missing = append(missing, "test_date")
	}
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Equipment) == "" {
		missing = append(missing, "equipment")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// SanitizeRecord 将原始输入清洗为可持久化形态. 纯函数, 无副作用:
// 字符串去首尾空白, 可选字段清洗后为空则转为null, 数值字段按安全转换
// 规则取类型默认值, 永不报错
func SanitizeRecord(input *RecordInput) *CleanRecord {
	clean := &CleanRecord{
		TestDate:     strings.TrimSpace(input.TestDate),
		TestTime:     composeTestTime(input),
		Name:         strings.TrimSpace(input.Name),
		Contact:      optionalString(input.Contact),
		Advisor:      optionalString(input.Advisor),
		Equipment:    strings.TrimSpace(input.Equipment),
		MachineHours: utils.AnyToFloat(input.MachineHours, 0.0),
		Cost:         utils.AnyToInt(input.Cost, 0),
		Remark:       optionalString(input.Remark),
	}
	if clean.MachineHours < 0 {
		clean.MachineHours = 0
	}
	if clean.Cost < 0 {
		clean.Cost = 0
	}
	return clean
}

// composeTestTime 由开始/结束时刻拼接"HH:MM-HH:MM"显示串, 不校验时段交叠
func composeTestTime(input *RecordInput) string {
	if t := strings.TrimSpace(input.TestTime); t != "" {
		return t
	}
	start := strings.TrimSpace(input.StartTime)
	end := strings.TrimSpace(input.EndTime)
	if utils.ValidClockTime(start) && utils.ValidClockTime(end) {
		return fmt.Sprintf("%s-%s", start, end)
	}
	return ""
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
