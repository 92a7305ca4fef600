package snaplog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/omeyang/snaplog/pkg/util/xfile"
)

// logSuffix 活跃文件与归档文件共用的扩展名。
const logSuffix = ".log"

// 编译时接口检查
var _ Log = (*fileLog)(nil)

// fileLog Log 接口的文件实现。
//
// 唯一的共享可变资源是文件句柄，所有读写和替换都在 mu 内进行。
// 句柄只在 Snap 期间的锁内被替换，从不出现别名。
type fileLog struct {
	path string // 活跃文件路径 dir/name.log，构造后不变

	mode    os.FileMode
	onError func(error)

	mu     sync.Mutex
	file   *os.File
	closed bool

	// 可注入的时钟与重命名调用（nil 时使用标准库），仅用于测试。
	nowFn    func() time.Time
	renameFn func(oldpath, newpath string) error
}

// New 创建指向 {dir}/{name}.log 的日志写入器。
//
// dir 必须是已存在的目录；name 非空且不含路径分隔符。活跃文件以追加模式
// 打开，不存在时创建。打开失败返回 [ErrLogFailure]，参数非法返回 xfile
// 包的哨兵错误，两类错误可通过 errors.Is 区分。
//
// 调用方必须恰好 Close 一次，通常通过 defer 保证。
func New(dir, name string, opts ...Option) (Log, error) {
	if err := xfile.ValidateDir(dir); err != nil {
		return nil, err
	}
	cleanName, err := xfile.SanitizeName(name)
	if err != nil {
		return nil, err
	}

	cfg := config{fileMode: DefaultFileMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// FileMode 仅允许权限位，拒绝文件类型位、setuid/setgid 等
	if cfg.fileMode&^os.FileMode(0o777) != 0 {
		return nil, fmt.Errorf("%w: got %04o, only permission bits (0000~0777) allowed",
			ErrInvalidFileMode, cfg.fileMode)
	}

	l := &fileLog{
		path:    filepath.Join(dir, cleanName+logSuffix),
		mode:    cfg.fileMode,
		onError: cfg.onError,
	}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

// open 以追加模式打开活跃文件并持有句柄。调用方必须持有 mu（或尚未发布 l）。
func (l *fileLog) open() error {
	//#nosec G304 -- 路径由 ValidateDir/SanitizeName 校验后的目录与名称拼接而来
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, l.mode)
	if err != nil {
		return fmt.Errorf("open active file: %w: %w", ErrLogFailure, err)
	}
	l.file = f
	return nil
}

// Info 以 INFO 级别记录一条消息。
func (l *fileLog) Info(msg string) error {
	return l.Log(LevelInfo, msg)
}

// Warning 以 WARNING 级别记录一条消息。
func (l *fileLog) Warning(msg string) error {
	return l.Log(LevelWarning, msg)
}

// Error 以 ERROR 级别记录一条消息。
func (l *fileLog) Error(msg string) error {
	return l.Log(LevelError, msg)
}

// Log 以指定级别记录一条消息。
//
// 整行组装完毕后以单次 Write 写入。os.File 的写入不经过用户态缓冲，
// 成功返回即表示整行已到达操作系统缓冲区，不存在半行可见的窗口。
func (l *fileLog) Log(level Level, msg string) error {
	if !level.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	// 时间戳在锁内取，保证文件内的行序与时间戳序一致
	line := appendEntry(make([]byte, 0, 64+len(msg)), l.now(), level, msg)
	if _, err := l.file.Write(line); err != nil {
		return fmt.Errorf("could not log message: %w: %w", ErrLogFailure, err)
	}
	return nil
}

// Write 实现 io.Writer 接口，在同一把锁内原样追加字节。
func (l *fileLog) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, ErrClosed
	}
	n, err = l.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("write: %w: %w", ErrLogFailure, err)
	}
	return n, nil
}

// Snap 手动轮转。
//
// 在写入共用的同一把锁内完成，轮转与并发写入不可能交错：
//  1. 刷新并关闭当前句柄；
//  2. 将 {name}.log 重命名为 {name}{毫秒时间戳}.log；
//  3. 在逻辑路径重新打开新的活跃文件。
//
// 重命名失败不中止轮转——写入器依然执行第 3 步以避免失去活跃句柄，
// 该失败以 [ErrArchiveRename] 返回。关闭失败时跳过重命名（句柄状态
// 存疑，归档内容无法保证完整），同样先恢复活跃句柄再返回 [ErrLogFailure]。
// 一次 Snap 内的次要失败通过 WithOnError 回调上报。
func (l *fileLog) Snap() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	closeErr := l.syncClose()

	var renameErr error
	if closeErr == nil {
		archive := l.archivePath(l.now())
		if err := l.rename(l.path, archive); err != nil {
			renameErr = fmt.Errorf("archive %s: %w: %w", filepath.Base(archive), ErrArchiveRename, err)
		}
	}

	// 成功重命名后逻辑路径上已无文件，open 会新建；重命名失败或被跳过时
	// 旧文件仍在原地，以追加模式接续——内容不会丢失，等待下一次 Snap 归档。
	openErr := l.open()

	switch {
	case closeErr != nil:
		l.reportError(openErr)
		return fmt.Errorf("close active file: %w: %w", ErrLogFailure, closeErr)
	case openErr != nil:
		l.reportError(renameErr)
		return openErr
	default:
		return renameErr
	}
}

// Close 刷新并关闭活跃文件，终结写入器。
//
// 首次调用即标记关闭，即使底层关闭失败也不会回退：之后所有操作
// （包括再次 Close）都返回 [ErrClosed]。
func (l *fileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	l.closed = true

	if err := l.syncClose(); err != nil {
		return fmt.Errorf("close log: %w: %w", ErrLogFailure, err)
	}
	return nil
}

// syncClose 刷新并关闭当前句柄，随后清空引用。调用方必须持有 mu。
func (l *fileLog) syncClose() error {
	err := l.file.Sync()
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	return err
}

// archivePath 计算归档路径：去掉 ".log" 后缀，插入毫秒时间戳，再补回后缀。
// 例如 app.log → app1700000000000.log。
func (l *fileLog) archivePath(ts time.Time) string {
	return strings.TrimSuffix(l.path, logSuffix) + strconv.FormatInt(ts.UnixMilli(), 10) + logSuffix
}

func (l *fileLog) now() time.Time {
	if l.nowFn != nil {
		return l.nowFn()
	}
	return time.Now()
}

func (l *fileLog) rename(oldpath, newpath string) error {
	if l.renameFn != nil {
		return l.renameFn(oldpath, newpath)
	}
	return os.Rename(oldpath, newpath)
}

// reportError 通过回调上报次要错误。回调 panic 被隔离，不会中断调用链。
func (l *fileLog) reportError(err error) {
	if err != nil && l.onError != nil {
		defer func() { recover() }() //nolint:errcheck // recover 返回值无需检查
		l.onError(err)
	}
}
