package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 输出格式。
const (
	FormatText = "text"
	FormatJSON = "json"
)

// 文件轮转默认值。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
)

// FileOptions 文件输出与轮转配置，零值字段使用默认值。
type FileOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Builder 日志配置构建器
//
// 配置错误会被记录并在 Build() 时返回，链式调用中途不会中断。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	enrich    bool
	attrs     []slog.Attr
	file      *lumberjack.Logger
	onError   func(error)
	err       error
}

// New 创建构建器，默认输出到 stderr、Info 级别、text 格式、启用 enrich。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   FormatText,
		enrich:   true,
	}
}

// SetOutput 设置日志输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值视为 text
func (b *Builder) SetFormat(format string) *Builder {
	switch normalized := strings.ToLower(strings.TrimSpace(format)); normalized {
	case "":
		b.format = FormatText
	case FormatText, FormatJSON:
		b.format = normalized
	default:
		b.setErr(fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetEnrich 是否从 context 注入 xseq 嵌套序号，默认启用
func (b *Builder) SetEnrich(enable bool) *Builder {
	b.enrich = enable
	return b
}

// SetAttrs 设置附加到每条日志的固定属性（如组件名）
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// SetFile 将日志写入按大小轮转的文件，覆盖 SetOutput。
// filename 为空时记录 ErrInvalidFile。
func (b *Builder) SetFile(filename string, opts FileOptions) *Builder {
	if strings.TrimSpace(filename) == "" {
		b.setErr(fmt.Errorf("%w: empty filename", ErrInvalidFile))
		return b
	}
	if opts.MaxSizeMB < 0 || opts.MaxBackups < 0 || opts.MaxAgeDays < 0 {
		b.setErr(fmt.Errorf("%w: negative rotation limit", ErrInvalidFile))
		return b
	}
	b.file = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   opts.Compress,
	}
	b.output = b.file
	return b
}

// SetOnError 设置内部错误回调（Handler.Handle 失败时调用）
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// setErr 只保留第一个配置错误
func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build 构建 Logger
//
// 返回值：
//   - LoggerWithLevel: 日志实例
//   - func() error: 清理函数，关闭日志文件；可重复调用
//   - error: 配置错误
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}

	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}
	if b.enrich {
		handler = &EnrichHandler{base: handler}
	}
	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		onError:    b.onError,
		errorCount: new(atomic.Uint64),
		addSource:  b.addSource,
	}
	return logger, b.cleanup(), nil
}

func (b *Builder) cleanup() func() error {
	var once sync.Once
	file := b.file
	return func() error {
		var err error
		once.Do(func() {
			if file != nil {
				err = file.Close()
			}
		})
		return err
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
