package snaplog

import "os"

// DefaultFileMode 活跃文件的默认创建权限。
const DefaultFileMode os.FileMode = 0600

// config 写入器配置。
type config struct {
	fileMode os.FileMode
	onError  func(error)
}

// Option 写入器配置选项函数。
type Option func(*config)

// WithFileMode 设置活跃文件的创建权限。
//
// 默认 0600。仅允许权限位（0000~0777），不允许文件类型位或 setuid/setgid。
// 权限只在创建新文件时生效，已存在的文件保持原有权限。
func WithFileMode(mode os.FileMode) Option {
	return func(c *config) {
		c.fileMode = mode
	}
}

// WithOnError 设置次要错误的回调函数。
//
// 当一次操作内发生多个失败时（如 Snap 中关闭失败之后重新打开也失败），
// 操作的返回值只承载首要错误，其余失败通过此回调上报。默认为 nil（静默忽略）。
//
// 设计决策: 不使用日志库记录内部错误，避免写入器作为日志输出目标时产生
// 递归写入（写失败 → 打日志 → 再写失败）。回调不得向同一写入器写入数据。
// 回调 panic 会被隔离，不会中断调用链。
func WithOnError(fn func(error)) Option {
	return func(c *config) {
		c.onError = fn
	}
}
