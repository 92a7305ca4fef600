package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/snaplog/pkg/snaplog"
	"github.com/omeyang/snaplog/pkg/util/xfile"
)

// usageError 表示参数错误（退出码 2），与执行失败（退出码 1）区分。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// asUsageError 将 snaplog 的参数类错误归类为 usageError。
// I/O 类失败（ErrLogFailure、ErrArchiveRename）保持原样，按执行失败处理。
func asUsageError(err error) error {
	switch {
	case errors.Is(err, xfile.ErrEmptyPath),
		errors.Is(err, xfile.ErrNotDirectory),
		errors.Is(err, xfile.ErrEmptyName),
		errors.Is(err, xfile.ErrInvalidName),
		errors.Is(err, xfile.ErrNullByte),
		errors.Is(err, snaplog.ErrInvalidLevel):
		return &usageError{err: err}
	default:
		return err
	}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createWriteCommand(),
		createSnapCommand(),
	}
}

// createWriteCommand 创建 write 子命令（追加一条记录）。
func createWriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Aliases:   []string{"w"},
		Usage:     "追加一条记录",
		ArgsUsage: "<消息...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "日志级别 (info/warning/error)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			msg := strings.Join(cmd.Args().Slice(), " ")
			return cmdWrite(s, msg)
		},
	}
}

// createSnapCommand 创建 snap 子命令（手动轮转）。
func createSnapCommand() *cli.Command {
	return &cli.Command{
		Name:  "snap",
		Usage: "轮转：归档当前文件并新建空的活跃文件",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return cmdSnap(s)
		},
	}
}

// cmdWrite 追加一条记录并关闭写入器。
func cmdWrite(s settings, msg string) error {
	log, err := snaplog.New(s.dir, s.name)
	if err != nil {
		return asUsageError(err)
	}
	defer func() { _ = log.Close() }()

	if err := log.Log(s.level, msg); err != nil {
		return fmt.Errorf("写入失败: %w", err)
	}
	return nil
}

// cmdSnap 执行一次轮转并关闭写入器。
//
// 注意 snaplog.New 会在逻辑路径不存在时创建空文件，因此对一个从未写过的
// 名称执行 snap 会归档一个空文件——这是写入器构造语义的自然结果。
func cmdSnap(s settings) error {
	log, err := snaplog.New(s.dir, s.name)
	if err != nil {
		return asUsageError(err)
	}
	defer func() { _ = log.Close() }()

	if err := log.Snap(); err != nil {
		if errors.Is(err, snaplog.ErrArchiveRename) {
			// 写入器已恢复活跃句柄，归档未发生；仍按执行失败上报
			return fmt.Errorf("归档未完成（日志文件保持原位）: %w", err)
		}
		return fmt.Errorf("轮转失败: %w", err)
	}
	return nil
}
