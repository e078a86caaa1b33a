package xmetrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xpc/pkg/util/xstats"
	"github.com/omeyang/xpc/pkg/util/xtimeval"
)

// attrElapsed span 上记录耗时（秒）的属性名。
const attrElapsed = "xpc.elapsed_seconds"

// Timer 计时并把耗时累加到 xstats.Synced。并发安全。
type Timer struct {
	stats  *xstats.Synced
	clock  xtimeval.Clock
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

// NewTimer 创建 Timer。stats 为 nil 时 panic。
func NewTimer(stats *xstats.Synced, opts ...Option) *Timer {
	if stats == nil {
		panic(ErrNilStats)
	}
	cfg := newConfig(opts)
	return &Timer{
		stats:  stats,
		clock:  cfg.clock,
		tracer: cfg.tracerProvider.Tracer(cfg.instrumentationName),
		attrs:  cfg.attrs,
	}
}

// Start 开始一次计时并创建名为 operation 的 span。
//
// 返回的 stop 函数结束计时：耗时（秒）累加到 stats 并返回。
// 任一次时钟读取失败时不累加，返回 0，span 标记为错误。
// stop 只有第一次调用生效，可被多个 goroutine 同时调用。
func (t *Timer) Start(ctx context.Context, operation string) (context.Context, func() float64) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := t.tracer.Start(ctx, operation, trace.WithAttributes(t.attrs...))
	start, startErr := xtimeval.NowFrom(t.clock)

	var (
		once    sync.Once
		elapsed float64
	)
	stop := func() float64 {
		once.Do(func() {
			defer span.End()

			if startErr != nil {
				span.SetStatus(codes.Error, startErr.Error())
				return
			}
			end, err := xtimeval.NowFrom(t.clock)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
				return
			}
			elapsed = end.Diff(start)
			t.stats.Accumulate(elapsed)
			span.SetAttributes(attribute.Float64(attrElapsed, elapsed))
		})
		return elapsed
	}
	return ctx, stop
}

// Time 对 fn 计时，返回 fn 的错误。fn 返回错误时仍然计入耗时。
func (t *Timer) Time(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, stop := t.Start(ctx, operation)
	defer stop()
	err := fn(ctx)
	if err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
	}
	return err
}
