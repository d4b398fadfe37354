// Package utils
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword 计算密码的SHA256十六进制摘要, 与settings表中存储的格式一致
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}
