// snapctl 是 snaplog 日志文件的命令行工具。
//
// 每次调用构造一个写入器、完成一件事、随即关闭——snaplog 的单进程独占
// 假设在单次调用内成立。不要在宿主进程仍持有同一日志文件时使用本工具。
//
// 用法:
//
//	snapctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-d, --dir      日志目录（必须已存在）
//	-n, --name     日志逻辑名称（活跃文件为 {dir}/{name}.log）
//	-c, --config   配置文件路径（yaml/json，按扩展名识别）
//
// 命令:
//
//	write [-l 级别] <消息...>   追加一条记录（级别: info/warning/error，默认 info）
//	snap                        轮转：归档当前文件并新建空的活跃文件
//	help                        显示帮助信息
//
// 配置文件提供 dir/name/level 的缺省值，命令行参数优先：
//
//	dir: /var/log/myapp
//	name: app
//	level: warning
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（I/O 错误、归档重命名失败等）
//	2: 参数错误（目录不存在、名称非法、未知级别等）
//
// 示例:
//
//	snapctl -d /var/log/myapp -n app write "deploy finished"
//	snapctl -d /var/log/myapp -n app write -l error "deploy failed"
//	snapctl -c snapctl.yaml snap
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "snapctl",
		Usage:   "snaplog 日志文件命令行工具",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "日志目录（必须已存在）",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "日志逻辑名称",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（yaml/json）",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
