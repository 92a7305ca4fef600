// Package snaplog 提供线程安全的追加式文件日志，支持手动轮转（snap）。
//
// 日志写入单个持续增长的文本文件，每条记录带 UTC 时间戳。Snap 操作将当前
// 文件以时间戳归档名保存，并在原逻辑路径重新打开一个空文件。
//
// # 文件格式
//
// 每条记录占一行，UTF-8 编码：
//
//	<RFC 3339 时间戳> " - " <LEVEL> [": " <消息>] "\n"
//
// LEVEL 为 INFO、WARNING、ERROR 三者之一。消息为空时整个 ": 消息" 段被省略。
// 消息不得包含换行符，否则会破坏单行记录不变式——调用方负责保证（本包不做转义）。
//
// # 文件布局
//
// 活跃文件固定位于 {directory}/{name}.log。每次 Snap 产生一个归档文件
// {directory}/{name}{毫秒时间戳}.log，归档文件此后不再被触碰，也不会被自动清理。
//
// # 并发模型
//
// 所有状态变更操作（写入、Snap、Close）在同一把互斥锁内完成，包括 I/O 本身。
// 日志写入相对业务负载量小且低频，在锁内做 I/O 换取正确性（字节不交错、
// rename 与写入不竞争）是有意的取舍。操作不支持取消和超时，需要有界延迟的
// 调用方应在外部兜底（如转交给后台 goroutine）。
//
// # 单进程假设
//
// 设计假设单个进程独占持有日志文件，不提供多进程协调。
//
// # 错误处理
//
// I/O 失败统一以 [ErrLogFailure] 包装底层原因返回；参数错误（目录不存在、
// 名称非法）使用 xfile 包的哨兵错误，与 I/O 失败可通过 [errors.Is] 区分。
// Snap 过程中 rename 失败是"降级但继续"状态：写入器仍会重新打开活跃文件并
// 保持可用，该失败以 [ErrArchiveRename] 返回，由调用方决定重试轮转或告警。
// 任何失败都不会自动重试——丢一行日志不应拖垮调用方自身的操作。
//
// # 作为 io.Writer 使用
//
// Log 同时实现 io.WriteCloser，Write 在同一把锁内原样追加字节，可直接作为
// log/slog 等日志库的输出目标。
package snaplog
