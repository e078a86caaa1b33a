package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xpc/pkg/context/xseq"
	"github.com/omeyang/xpc/pkg/util/xtimeval"
)

// exitError 表示命令已完成输出、只需设置非零退出码的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// commands 创建所有子命令。
func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		a.nowCommand(),
		a.parseCommand(),
		a.binaryCommand("add", "a + b", "<a> <b>", func(x, y xtimeval.TimeValue) string {
			return x.Add(y).String()
		}),
		a.binaryCommand("sub", "a - b", "<a> <b>", func(x, y xtimeval.TimeValue) string {
			return x.Sub(y).String()
		}),
		a.binaryCommand("diff", "later - earlier 的浮点秒数", "<later> <earlier>", func(x, y xtimeval.TimeValue) string {
			return formatSeconds(x.Diff(y))
		}),
		a.binaryCommand("cmp", "比较 a 与 b，输出 -1 / 0 / 1", "<a> <b>", func(x, y xtimeval.TimeValue) string {
			return fmt.Sprint(x.Compare(y))
		}),
		a.elapsedCommand(),
		a.statsCommand(),
		a.jitterCommand(),
	}
}

func (a *app) nowCommand() *cli.Command {
	return &cli.Command{
		Name:         "now",
		Usage:        "输出当前时间",
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, _ *cli.Command) error {
			ctx, _ = xseq.Enter(ctx)
			now, err := xtimeval.NowFrom(a.clock)
			if err != nil {
				a.logger.Error(ctx, "read clock", slog.Any("error", err))
				return err
			}
			fmt.Fprintln(a.out, now)
			return nil
		},
	}
}

func (a *app) parseCommand() *cli.Command {
	return &cli.Command{
		Name:         "parse",
		Usage:        "规范化并输出时间值",
		ArgsUsage:    "<t>",
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := a.timeArgs(ctx, cmd, 1)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, args[0])
			return nil
		},
	}
}

// binaryCommand 创建接受两个时间值参数的命令。
func (a *app) binaryCommand(name, usage, argsUsage string, op func(x, y xtimeval.TimeValue) string) *cli.Command {
	return &cli.Command{
		Name:         name,
		Usage:        usage,
		ArgsUsage:    argsUsage,
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := a.timeArgs(ctx, cmd, 2)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, op(args[0], args[1]))
			return nil
		},
	}
}

func (a *app) elapsedCommand() *cli.Command {
	return &cli.Command{
		Name:         "elapsed",
		Usage:        "输出自 t 起经过的浮点秒数",
		ArgsUsage:    "<t>",
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := a.timeArgs(ctx, cmd, 1)
			if err != nil {
				return err
			}
			now, err := xtimeval.NowFrom(a.clock)
			if err != nil {
				a.logger.Error(ctx, "read clock", slog.Any("error", err))
				return err
			}
			fmt.Fprintln(a.out, formatSeconds(now.Diff(args[0])))
			return nil
		},
	}
}

// timeArgs 要求恰好 n 个参数并严格解析为时间值。
func (a *app) timeArgs(ctx context.Context, cmd *cli.Command, n int) ([]xtimeval.TimeValue, error) {
	ctx, _ = xseq.Enter(ctx)
	if cmd.Args().Len() != n {
		return nil, &usageError{msg: fmt.Sprintf("%s 需要 %d 个参数，实际 %d 个", cmd.Name, n, cmd.Args().Len())}
	}
	out := make([]xtimeval.TimeValue, n)
	for i, s := range cmd.Args().Slice() {
		v, err := xtimeval.ParseStrict(s)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("参数 %d: %v", i+1, err)}
		}
		out[i] = v
	}
	a.logger.Debug(ctx, "parsed arguments",
		slog.String("command", cmd.Name),
		slog.Int("count", n),
	)
	return out, nil
}

func formatSeconds(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
