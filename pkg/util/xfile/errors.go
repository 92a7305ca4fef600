package xfile

import "errors"

var (
	// ErrEmptyPath 表示必需的目录路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrNotDirectory 表示路径不存在或不是目录。
	ErrNotDirectory = errors.New("xfile: not a directory")

	// ErrEmptyName 表示逻辑名称为空。
	ErrEmptyName = errors.New("xfile: name is required")

	// ErrInvalidName 表示逻辑名称含路径分隔符或为保留名（"." / ".."）。
	ErrInvalidName = errors.New("xfile: invalid name")

	// ErrNullByte 表示路径或名称中包含空字节（\x00），Linux 内核会在空字节处
	// 截断路径，导致 Go 代码与操作系统看到的路径不一致。
	ErrNullByte = errors.New("xfile: path contains null byte")

	// ErrInvalidPerm 表示目录权限无效（如缺少所有者执行位，目录无法遍历）。
	ErrInvalidPerm = errors.New("xfile: invalid directory permission")
)
