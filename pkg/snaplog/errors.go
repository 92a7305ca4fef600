package snaplog

import "errors"

var (
	// ErrLogFailure 底层文件打开、写入、刷新或关闭失败。
	// 总是包装原始 I/O 错误，可通过 errors.Unwrap 获取。
	ErrLogFailure = errors.New("snaplog: log failure")

	// ErrArchiveRename Snap 归档重命名失败。
	// 写入器此时仍持有有效的活跃文件句柄并保持可用，但本次归档未发生，
	// 旧内容仍留在逻辑路径上等待下一次 Snap。调用方可选择重试或告警。
	ErrArchiveRename = errors.New("snaplog: archive rename failed")

	// ErrClosed 写入器已关闭。
	// Close 之后调用任何操作（包括再次 Close）都返回此错误。
	ErrClosed = errors.New("snaplog: log is closed")

	// ErrInvalidLevel 日志级别不在 INFO/WARNING/ERROR 闭集内。
	ErrInvalidLevel = errors.New("snaplog: invalid level")

	// ErrInvalidFileMode FileMode 包含非权限位（仅允许低 9 位 0000~0777）。
	ErrInvalidFileMode = errors.New("snaplog: invalid FileMode")
)
