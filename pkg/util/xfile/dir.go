package xfile

import (
	"fmt"
	"os"
)

// DefaultDirPerm 默认目录权限
//
// 0750 权限说明：
//   - 所有者：读写执行 (7)
//   - 组：读执行 (5)
//   - 其他：无权限 (0)
//
// 符合 gosec G301 安全建议
const DefaultDirPerm os.FileMode = 0750

// ValidateDir 校验 dir 指向一个已存在的目录。
//
// 失败返回 [ErrEmptyPath]、[ErrNullByte] 或 [ErrNotDirectory]。
// 符号链接会被跟随：指向目录的符号链接视为目录。
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory is required: %w", ErrEmptyPath)
	}
	if containsNullByte(dir) {
		return fmt.Errorf("directory contains null byte: %w", ErrNullByte)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w: %w", dir, ErrNotDirectory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	return nil
}

// EnsureDir 确保目录存在，不存在时以默认权限 0750 创建。
//
// 供自行创建日志目录的宿主使用。如果目录已存在，不会修改其权限。
func EnsureDir(dir string) error {
	return EnsureDirWithPerm(dir, DefaultDirPerm)
}

// EnsureDirWithPerm 确保目录存在，使用指定权限创建。
//
// perm 必须包含所有者执行位（0100），否则目录无法遍历。
//
// 安全注意：底层使用 os.MkdirAll，会跟随符号链接。如果路径中包含指向
// 外部的符号链接，目录可能被创建在符号链接目标位置。
func EnsureDirWithPerm(dir string, perm os.FileMode) error {
	if dir == "" {
		return fmt.Errorf("directory is required: %w", ErrEmptyPath)
	}
	if containsNullByte(dir) {
		return fmt.Errorf("directory contains null byte: %w", ErrNullByte)
	}
	// 目录必须包含所有者执行位（0100），否则无法进入和遍历
	if perm&0100 == 0 {
		return fmt.Errorf("directory permission %04o missing owner execute bit: %w", perm, ErrInvalidPerm)
	}
	return os.MkdirAll(dir, perm)
}
