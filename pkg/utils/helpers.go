// Package utils 提供通用辅助函数
package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CalculateMD5 计算字节内容的MD5哈希值（十六进制字符串）
func CalculateMD5(data []byte) string {
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:])
}
