package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xpc/pkg/config/xconf"
	"github.com/omeyang/xpc/pkg/context/xseq"
	"github.com/omeyang/xpc/pkg/observability/xlog"
	"github.com/omeyang/xpc/pkg/util/xtimeval"
)

// app 持有一次运行的输入输出与共享状态。
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	clock  xtimeval.Clock

	settings xconf.Settings
	logger   xlog.LoggerWithLevel
	closers  []func() error
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		errOut: errOut,
		clock:  xtimeval.SystemClock{},
		logger: discardLogger{xlog.Discard()},
	}
}

// command 创建 CLI 根命令。
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "xpcctl",
		Usage:     "xpc 时间值与统计累加器工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
				Sources: cli.EnvVars("XPC_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug/info/warn/error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text/json",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "监视配置文件并在运行期间应用日志级别变更",
			},
		},
		Commands:     a.commands(),
		Before:       a.before,
		After:        a.after,
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return &usageError{msg: fmt.Sprintf("未知命令 %q", cmd.Args().First())}
			}
			return cli.ShowAppHelp(cmd)
		},
		Authors: []any{"XPC Team"},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.errOut, err)
			}
		},
	}
}

// onUsageError 将 flag 解析错误统一为 usageError（退出码 2）。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// before 加载配置、构建日志并在 context 中放入序号计数器。
// 失败时立即释放已创建的资源。
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	ctx, err := a.setup(ctx, cmd)
	if err != nil {
		_ = a.after(ctx, cmd)
	}
	return ctx, err
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	configPath := cmd.String("config")
	settings, err := xconf.LoadSettings(configPath)
	if err != nil {
		return ctx, &usageError{msg: err.Error()}
	}
	if v := cmd.String("log-level"); v != "" {
		settings.Log.Level = v
	}
	if v := cmd.String("log-format"); v != "" {
		settings.Log.Format = v
	}
	a.settings = settings

	logger, cleanup, err := buildLogger(a.errOut, settings.Log)
	if err != nil {
		return ctx, &usageError{msg: err.Error()}
	}
	a.logger = logger
	a.closers = append(a.closers, cleanup)

	ctx = xseq.WithSequencer(ctx, xseq.New())

	if cmd.Bool("watch") {
		if configPath == "" {
			return ctx, &usageError{msg: "--watch 需要 --config"}
		}
		if err := a.watchConfig(ctx, configPath); err != nil {
			return ctx, err
		}
	}

	a.logger.Debug(ctx, "settings loaded",
		slog.String("config", configPath),
		slog.String("log_level", settings.Log.Level),
		slog.Float64("stats_base", settings.Stats.Base),
	)
	return ctx, nil
}

// after 按注册的逆序释放资源。
func (a *app) after(_ context.Context, _ *cli.Command) error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// watchConfig 监视配置文件，变更后重新读取 Settings 并调整日志级别。
// 日志级别以外的配置只在启动时读取一次。
func (a *app) watchConfig(ctx context.Context, path string) error {
	cfg, err := xconf.New(path)
	if err != nil {
		return err
	}
	logger := a.logger
	w, err := xconf.Watch(cfg, func(c xconf.Config, err error) {
		if err != nil {
			logger.Warn(ctx, "config reload failed", slog.Any("error", err))
			return
		}
		s, err := xconf.SettingsFrom(c)
		if err != nil {
			logger.Warn(ctx, "config reload rejected", slog.Any("error", err))
			return
		}
		level, _ := xlog.ParseLevel(s.Log.Level)
		logger.SetLevel(level)
		logger.Info(ctx, "log level changed", slog.String("level", level.String()))
	})
	if err != nil {
		return err
	}
	a.closers = append(a.closers, w.Stop)
	return nil
}

func buildLogger(errOut io.Writer, s xconf.LogSettings) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(errOut).
		SetLevelString(s.Level).
		SetFormat(strings.ToLower(s.Format)).
		SetAttrs(slog.String("component", "xpcctl"))
	if s.File != "" {
		b.SetFile(s.File, xlog.FileOptions{
			MaxSizeMB:  s.MaxSizeMB,
			MaxBackups: s.MaxBackups,
			Compress:   s.Compress,
		})
	}
	return b.Build()
}

// discardLogger 在 before 之前使用，保证 a.logger 非 nil。
type discardLogger struct {
	xlog.Logger
}

func (discardLogger) SetLevel(xlog.Level)                      {}
func (discardLogger) GetLevel() xlog.Level                     { return xlog.LevelError }
func (discardLogger) Enabled(context.Context, xlog.Level) bool { return false }
