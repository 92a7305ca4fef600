package xfile

import (
	"fmt"
	"strings"
)

// containsNullByte 检测字符串是否包含空字节。
func containsNullByte(s string) bool {
	return strings.ContainsRune(s, 0)
}

// SanitizeName 校验日志逻辑名称并返回可安全拼接的形式。
//
// 规则：
//   - 非空（[ErrEmptyName]）
//   - 不含空字节（[ErrNullByte]）
//   - 不含 '/' 或 '\'（[ErrInvalidName]）——名称是单个文件名段，不是路径
//   - 不为 "." 或 ".."（[ErrInvalidName]）
//
// 设计决策: 同时拒绝 '\'。在 Linux 上反斜杠是合法的文件名字符，但几乎
// 总是跨平台拼接错误，为避免语义歧义统一拒绝。
//
// 注意名称只需是文件名段，以 ".." 开头的合法名称（如 "..config"）不会被误判。
func SanitizeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name is required: %w", ErrEmptyName)
	}
	if containsNullByte(name) {
		return "", fmt.Errorf("name contains null byte: %w", ErrNullByte)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("name %q contains path separator: %w", name, ErrInvalidName)
	}
	if name == "." || name == ".." {
		return "", fmt.Errorf("name %q is reserved: %w", name, ErrInvalidName)
	}
	return name, nil
}
