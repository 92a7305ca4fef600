// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 日志目录与逻辑名称校验，目录创建
//
// 设计原则：
//   - 参数错误与 I/O 失败分开建模，哨兵错误支持 errors.Is 判断
//   - 安全处理空字节与路径分隔符
package util
