package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/snaplog/pkg/snaplog"
	"github.com/omeyang/snaplog/pkg/util/xfile"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoadConfig 测试配置文件加载
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		want     fileConfig
		wantErr  bool
		wantCode bool // 期望参数错误（usageError）
	}{
		{
			name:    "YAML 配置",
			file:    "snapctl.yaml",
			content: "dir: /var/log/myapp\nname: app\nlevel: warning\n",
			want:    fileConfig{Dir: "/var/log/myapp", Name: "app", Level: "warning"},
		},
		{
			name:    "yml 扩展名",
			file:    "snapctl.yml",
			content: "dir: /var/log/myapp\nname: app\n",
			want:    fileConfig{Dir: "/var/log/myapp", Name: "app"},
		},
		{
			name:    "JSON 配置",
			file:    "snapctl.json",
			content: `{"dir": "/var/log/myapp", "name": "app", "level": "error"}`,
			want:    fileConfig{Dir: "/var/log/myapp", Name: "app", Level: "error"},
		},
		{
			name:     "不支持的扩展名",
			file:     "snapctl.toml",
			content:  `dir = "/var/log/myapp"`,
			wantErr:  true,
			wantCode: true,
		},
		{
			name:    "YAML 语法错误",
			file:    "broken.yaml",
			content: "dir: [unclosed\n  name",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)
			got, err := loadConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				var usageErr *usageError
				assert.Equal(t, tt.wantCode, errors.As(err, &usageErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestLoadConfigMissingFile 测试配置文件不存在
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestAsUsageError 测试错误分类：参数错误 → 退出码 2，I/O 失败 → 退出码 1
func TestAsUsageError(t *testing.T) {
	ioFailure := errors.New("disk on fire")

	tests := []struct {
		name      string
		err       error
		wantUsage bool
	}{
		{name: "目录不存在", err: xfile.ErrNotDirectory, wantUsage: true},
		{name: "名称非法", err: xfile.ErrInvalidName, wantUsage: true},
		{name: "名称为空", err: xfile.ErrEmptyName, wantUsage: true},
		{name: "级别非法", err: snaplog.ErrInvalidLevel, wantUsage: true},
		{name: "I/O 失败", err: snaplog.ErrLogFailure, wantUsage: false},
		{name: "归档失败", err: snaplog.ErrArchiveRename, wantUsage: false},
		{name: "其他错误", err: ioFailure, wantUsage: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asUsageError(tt.err)
			var usageErr *usageError
			assert.Equal(t, tt.wantUsage, errors.As(got, &usageErr))
			// 分类不得丢失原始错误
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

// TestCmdWrite 测试单次写入
func TestCmdWrite(t *testing.T) {
	tmpDir := t.TempDir()

	s := settings{dir: tmpDir, name: "app", level: snaplog.LevelWarning}
	require.NoError(t, cmdWrite(s, "deploy finished"))

	data, err := os.ReadFile(filepath.Join(tmpDir, "app.log"))
	require.NoError(t, err)
	line := strings.TrimSuffix(string(data), "\n")

	entry, err := snaplog.ParseEntry(line)
	require.NoError(t, err)
	assert.Equal(t, snaplog.LevelWarning, entry.Level)
	assert.Equal(t, "deploy finished", entry.Message)
}

// TestCmdWriteBadDir 测试目录错误归类为参数错误
func TestCmdWriteBadDir(t *testing.T) {
	s := settings{dir: filepath.Join(t.TempDir(), "missing"), name: "app", level: snaplog.LevelInfo}
	err := cmdWrite(s, "x")
	require.Error(t, err)

	var usageErr *usageError
	assert.True(t, errors.As(err, &usageErr))
}

// TestCmdSnap 测试单次轮转
func TestCmdSnap(t *testing.T) {
	tmpDir := t.TempDir()

	s := settings{dir: tmpDir, name: "app", level: snaplog.LevelInfo}
	require.NoError(t, cmdWrite(s, "before"))
	require.NoError(t, cmdSnap(s))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "归档 + 新的空活跃文件")

	active, err := os.ReadFile(filepath.Join(tmpDir, "app.log"))
	require.NoError(t, err)
	assert.Empty(t, active)
}

// TestResolveSettingsPrecedence 测试命令行参数覆盖配置文件
func TestResolveSettingsPrecedence(t *testing.T) {
	cfgDir := t.TempDir()
	flagDir := t.TempDir()
	cfgPath := writeTempConfig(t, "snapctl.yaml",
		"dir: "+cfgDir+"\nname: fromfile\nlevel: error\n")

	tests := []struct {
		name string
		args []string
		want settings
	}{
		{
			name: "仅配置文件",
			args: []string{"snapctl", "-c", cfgPath, "write", "x"},
			want: settings{dir: cfgDir, name: "fromfile", level: snaplog.LevelError},
		},
		{
			name: "命令行覆盖目录与名称",
			args: []string{"snapctl", "-c", cfgPath, "-d", flagDir, "-n", "fromflag", "write", "x"},
			want: settings{dir: flagDir, name: "fromflag", level: snaplog.LevelError},
		},
		{
			name: "write 的级别参数覆盖配置",
			args: []string{"snapctl", "-c", cfgPath, "write", "-l", "info", "x"},
			want: settings{dir: cfgDir, name: "fromfile", level: snaplog.LevelInfo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runResolve(t, tt.args)
			assert.Equal(t, tt.want, got)
		})
	}
}

// runResolve 通过真实的 CLI 解析管线执行 resolveSettings。
func runResolve(t *testing.T, args []string) settings {
	t.Helper()

	var got settings
	app := createApp()
	// 拦截 write 命令的 Action，只取解析结果不落盘
	for _, cmd := range app.Commands {
		if cmd.Name == "write" {
			cmd.Action = func(_ context.Context, cmd *cli.Command) error {
				s, err := resolveSettings(cmd)
				if err != nil {
					return err
				}
				got = s
				return nil
			}
		}
	}
	require.NoError(t, app.Run(context.Background(), args))
	return got
}
