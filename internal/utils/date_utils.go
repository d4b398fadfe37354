// Package utils
package utils

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidDate 校验YYYY-MM-DD格式日期
func ValidDate(dateStr string) bool {
	_, err := time.Parse(dateLayout, dateStr)
	return err == nil
}

// ValidClockTime 校验HH:MM格式时间
func ValidClockTime(timeStr string) bool {
	_, err := time.Parse(timeLayout, timeStr)
	return err == nil
}

// DatePart 从时间戳字符串中提取YYYY-MM-DD日期部分.
// 兼容ISO格式("2024-01-10T08:00:00Z", 含时区偏移), 空格分隔格式
// ("2024-01-10 08:00:00")和纯日期. 无法解析时返回空串.
func DatePart(datetimeStr string) string {
	datetimeStr = strings.TrimSpace(datetimeStr)
	if datetimeStr == "" {
		return ""
	}
	if idx := strings.IndexByte(datetimeStr, 'T'); idx > 0 {
		datetimeStr = datetimeStr[:idx]
	} else if idx := strings.IndexByte(datetimeStr, ' '); idx > 0 {
		datetimeStr = datetimeStr[:idx]
	}
	if !ValidDate(datetimeStr) {
		return ""
	}
	return datetimeStr
}
