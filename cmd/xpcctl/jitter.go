package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xpc/pkg/context/xseq"
	"github.com/omeyang/xpc/pkg/lifecycle/xrun"
	"github.com/omeyang/xpc/pkg/util/xstats"
	"github.com/omeyang/xpc/pkg/util/xtimeval"
)

const (
	defaultJitterInterval = 100 * time.Millisecond
	defaultJitterCount    = 10
)

func (a *app) jitterCommand() *cli.Command {
	return &cli.Command{
		Name:         "jitter",
		Usage:        "按固定间隔读取时钟，统计实际间隔与期望间隔之差（秒）",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "期望间隔",
				Value:   defaultJitterInterval,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "采样次数，0 表示直到收到信号",
				Value:   defaultJitterCount,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			interval := cmd.Duration("interval")
			count := int(cmd.Int("count"))
			if interval <= 0 {
				return &usageError{msg: fmt.Sprintf("--interval 必须为正数: %s", interval)}
			}
			if count < 0 {
				return &usageError{msg: fmt.Sprintf("--count 不能为负数: %d", count)}
			}
			return a.runJitter(ctx, interval, count)
		},
	}
}

// runJitter 采样直到达到次数或收到信号，然后输出统计。
// 被信号中断时输出已有样本的统计并正常退出。
func (a *app) runJitter(ctx context.Context, interval time.Duration, count int) error {
	ctx, _ = xseq.Enter(ctx)

	prev, err := xtimeval.NowFrom(a.clock)
	if err != nil {
		return err
	}
	expected := interval.Seconds()
	jitter := xstats.New()

	tick := func(context.Context) error {
		now, err := xtimeval.NowFrom(a.clock)
		if err != nil {
			return err
		}
		jitter.Accumulate(now.Diff(prev) - expected)
		prev = now
		return nil
	}

	err = xrun.RunWithOptions(ctx,
		[]xrun.Option{xrun.WithLogger(a.logger), xrun.WithName("jitter")},
		xrun.Ticker(interval, count, tick),
	)
	if errors.Is(err, xrun.ErrSignal) {
		a.logger.Info(ctx, "sampling interrupted", slog.Int("samples", jitter.N()))
	} else if err != nil {
		return err
	}

	writeRow(a.out, "ticks", strconv.Itoa(jitter.N()))
	writeRow(a.out, "interval", formatFloat(expected))
	writeRow(a.out, "mean", formatFloat(jitter.Mean()))
	writeRow(a.out, "stddev", formatFloat(jitter.StdDev()))
	writeRow(a.out, "stderr", formatFloat(jitter.StdErr()))
	writeRow(a.out, "last", formatFloat(jitter.Last()))
	return nil
}
