package xrun

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"
)

// Group 管理一组并发任务。Go 与 Cancel 可并发调用，Wait 只应调用一次。
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建 Group，返回的 context 在任一任务出错或 Cancel 时取消。
// ctx 为 nil 时使用 context.Background()。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)
	return &Group{eg: eg, ctx: egCtx, causeCtx: causeCtx, cancel: cancel, opts: o}, egCtx
}

// Go 启动任务。任务返回非 nil 错误时取消其余任务。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.GoWithName("", fn)
}

// GoWithName 与 Go 相同，并以 name 记录任务的启动与退出。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		attrs := []slog.Attr{slog.String("group", g.opts.name), slog.String("task", name)}
		g.opts.logger.Debug(g.ctx, "task starting", attrs...)

		err := fn(g.ctx)
		switch {
		case err == nil, errors.Is(err, ErrStop), errors.Is(err, context.Canceled):
			g.opts.logger.Debug(g.ctx, "task stopped", attrs...)
		default:
			g.opts.logger.Warn(g.ctx, "task failed", append(attrs, slog.Any("error", err))...)
		}
		return err
	})
}

// Wait 等待全部任务结束。
//
// 返回值：
//   - 第一个非取消、非 ErrStop 的任务错误
//   - Group 被取消且有显式原因时返回该原因（如 *SignalError）
//   - 其余情况返回 nil
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()
	if errors.Is(err, ErrStop) {
		err = nil
	}
	if errors.Is(err, context.Canceled) && g.causeCtx.Err() == nil {
		// 取消来自任务内部，不过滤
		return err
	}
	if err == nil || errors.Is(err, context.Canceled) {
		if g.causeCtx.Err() != nil {
			if cause := context.Cause(g.causeCtx); cause != nil && !errors.Is(cause, context.Canceled) {
				return cause
			}
		}
		return nil
	}
	return err
}

// Cancel 以 cause 取消所有任务。cause 不应包装 context.Canceled。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回 Group 的 context。
func (g *Group) Context() context.Context {
	return g.ctx
}

// Run 启动信号监听与 tasks，等待全部结束。收到信号时返回 *SignalError。
func Run(ctx context.Context, tasks ...func(ctx context.Context) error) error {
	return RunWithOptions(ctx, nil, tasks...)
}

// RunWithOptions 与 Run 相同，但支持配置选项。
func RunWithOptions(ctx context.Context, opts []Option, tasks ...func(ctx context.Context) error) error {
	g, _ := NewGroup(ctx, opts...)
	if !g.opts.noSignalHandler {
		g.GoWithName("signal", g.watchSignals)
	}
	for _, task := range tasks {
		g.Go(task)
	}
	return g.Wait()
}

// testSigChanKey 测试通过 context 注入信号，避免向进程发送真实信号。
type testSigChanKey struct{}

func (g *Group) watchSignals(ctx context.Context) error {
	signals := g.opts.signals
	if len(signals) == 0 {
		signals = DefaultSignals()
	}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signals...)
	defer signal.Stop(sigCh)

	testCh, _ := ctx.Value(testSigChanKey{}).(<-chan os.Signal)

	var sig os.Signal
	select {
	case sig = <-sigCh:
	case sig = <-testCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	g.opts.logger.Info(ctx, "received signal",
		slog.String("group", g.opts.name),
		slog.String("signal", sig.String()),
	)
	g.cancel(&SignalError{Signal: sig})
	return nil
}
