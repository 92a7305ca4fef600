package snaplog

import (
	"fmt"
	"strings"
)

// Level 日志级别，闭集：INFO、WARNING、ERROR。
type Level int

// 日志级别常量。
const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String 返回级别的字符串表示，即写入文件的字面量。
//
// 非法级别返回 "LEVEL(<n>)" 形式，但这样的值永远不会到达文件：
// Log 在写入前拒绝闭集之外的级别。
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// valid 报告级别是否在闭集内。
func (l Level) valid() bool {
	return l == LevelInfo || l == LevelWarning || l == LevelError
}

// MarshalText 实现 encoding.TextMarshaler 接口。
//
// 支持配置序列化场景（YAML/JSON）。
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口。
//
// 支持从配置文件直接反序列化日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析字符串为日志级别。
// 支持 info/warning/warn/error（大小写不敏感），输入会自动 TrimSpace。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
