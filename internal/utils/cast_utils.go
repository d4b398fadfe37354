// Package utils
package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}
	return result
}

func StrToFloat(str string, defaultValue float64) float64 {
	result, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// AnyToFloat 任意动态类型安全转换为float64, 失败时返回默认值, 永不报错
func AnyToFloat(value interface{}, defaultValue float64) float64 {
	switch v := value.(type) {
	case nil:
		return defaultValue
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		return StrToFloat(v.String(), defaultValue)
	case string:
		if strings.TrimSpace(v) == "" {
			return defaultValue
		}
		return StrToFloat(strings.TrimSpace(v), defaultValue)
	default:
		return defaultValue
	}
}

// AnyToInt 任意动态类型安全转换为int, 失败时返回默认值, 永不报错
func AnyToInt(value interface{}, defaultValue int) int {
	switch v := value.(type) {
	case nil:
		return defaultValue
	case int:
		return v
	case int64:
		return int(v)
	case uint:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		return int(StrToFloat(v.String(), float64(defaultValue)))
	case string:
		if strings.TrimSpace(v) == "" {
			return defaultValue
		}
		return StrToInt(strings.TrimSpace(v), defaultValue)
	default:
		return defaultValue
	}
}

// AnyToInt64 同 AnyToInt, 目标类型为int64, 主要用于行主键解码
func AnyToInt64(value interface{}, defaultValue int64) int64 {
	switch v := value.(type) {
	case nil:
		return defaultValue
	case int64:
		return v
	case int:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		return defaultValue
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i
		}
		return defaultValue
	default:
		return defaultValue
	}
}

// AnyToBool 任意类型安全转换为bool, 数值按非零判定
func AnyToBool(value interface{}, defaultValue bool) bool {
	switch v := value.(type) {
	case nil:
		return defaultValue
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		return defaultValue
	default:
		return defaultValue
	}
}

// AnyToString 任意类型转字符串, nil返回空串
func AnyToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
