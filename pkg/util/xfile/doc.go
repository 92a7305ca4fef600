// Package xfile 提供日志目录与逻辑名称的校验工具。
//
// snaplog 的构造参数分两类失败：目录问题（不存在、不是目录）和名称问题
// （为空、含路径分隔符）。本包把这类参数错误与写入器的 I/O 错误分开建模，
// 调用方可通过 [errors.Is] 区分"调用方用错了"（不可重试）和"环境出问题了"
// （可选择重试或丢弃）。
//
// # 名称安全
//
// SanitizeName 拒绝包含路径分隔符（'/' 与 '\'）、空字节以及 "." / ".." 的
// 名称，逻辑名称只能落在给定目录内，不存在路径穿越的可能。Windows 风格的
// 反斜杠在 Linux 上是合法文件名字符，但几乎总是跨平台拼接错误，统一拒绝。
//
// # 空字节防护
//
// Linux 内核在 VFS 层会在空字节处截断路径，导致 Go 代码与操作系统看到的
// 路径不一致，所有入口一律拒绝。
package xfile
