package snaplog

import (
	"errors"
	"strings"
	"time"
)

// Entry 一条已写入的日志记录。
type Entry struct {
	// Time 记录时间戳（UTC）。
	Time time.Time

	// Level 日志级别。
	Level Level

	// Message 消息内容，可能为空。
	Message string
}

// 记录行内各段的分隔符。
const (
	fieldSep   = " - "
	messageSep = ": "
)

// ErrMalformedEntry 日志行不符合记录格式。
var ErrMalformedEntry = errors.New("snaplog: malformed entry")

// appendEntry 将一条记录按行格式追加到 buf 并返回。
//
// 格式：<RFC 3339 时间戳> " - " <LEVEL> [": " <消息>] "\n"，
// 消息为空时整个 ": 消息" 段被省略。
func appendEntry(buf []byte, ts time.Time, level Level, msg string) []byte {
	buf = ts.UTC().AppendFormat(buf, time.RFC3339Nano)
	buf = append(buf, fieldSep...)
	buf = append(buf, level.String()...)
	if msg != "" {
		buf = append(buf, messageSep...)
		buf = append(buf, msg...)
	}
	return append(buf, '\n')
}

// ParseEntry 将一行日志文本解析回 (时间戳, 级别, 可选消息) 三元组。
//
// line 可以带或不带末尾换行符。无法解析时返回 [ErrMalformedEntry]。
func ParseEntry(line string) (Entry, error) {
	line = strings.TrimSuffix(line, "\n")

	i := strings.Index(line, fieldSep)
	if i < 0 {
		return Entry{}, ErrMalformedEntry
	}

	ts, err := time.Parse(time.RFC3339Nano, line[:i])
	if err != nil {
		return Entry{}, ErrMalformedEntry
	}

	rest := line[i+len(fieldSep):]
	var msg string
	if j := strings.Index(rest, messageSep); j >= 0 {
		rest, msg = rest[:j], rest[j+len(messageSep):]
	}

	level, err := parseLevelStrict(rest)
	if err != nil {
		return Entry{}, ErrMalformedEntry
	}

	return Entry{Time: ts, Level: level, Message: msg}, nil
}

// parseLevelStrict 精确匹配文件中的级别字面量。
// 与 ParseLevel 不同，不接受小写和 "warn" 缩写——文件里只会出现闭集字面量。
func parseLevelStrict(s string) (Level, error) {
	switch s {
	case "INFO":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, ErrInvalidLevel
	}
}
