package snaplog

import "io"

// 编译时断言：Log 接口是 io.WriteCloser 的超集。
var _ io.WriteCloser = (Log)(nil)

// Log 追加式文件日志接口。
//
// 隐式实现 [io.WriteCloser]，可直接作为 log/slog 等日志库的输出目标。
// 所有方法并发安全：写入、Snap 与 Close 在同一把锁内串行执行。
//
// Close 之后调用任何方法（包括再次 Close）返回 [ErrClosed]。
type Log interface {
	// Info 以 INFO 级别记录一条消息。
	Info(msg string) error

	// Warning 以 WARNING 级别记录一条消息。
	Warning(msg string) error

	// Error 以 ERROR 级别记录一条消息。
	Error(msg string) error

	// Log 以指定级别记录一条消息。
	// 消息为空时省略 ": 消息" 段；级别必须在闭集内。
	// 成功返回时该行已完整到达操作系统缓冲区。
	Log(level Level, msg string) error

	// Snap 手动轮转：关闭当前文件，将其重命名为带毫秒时间戳的归档名，
	// 并在原逻辑路径重新打开一个空的活跃文件。
	//
	// 归档重命名失败返回 [ErrArchiveRename]，写入器仍会重新打开活跃
	// 文件并保持可用；其余失败返回 [ErrLogFailure]。
	Snap() error

	// Write 在同一把锁内原样追加字节，不做格式化。
	Write(p []byte) (n int, err error)

	// Close 刷新并关闭活跃文件，终结写入器。
	Close() error
}
