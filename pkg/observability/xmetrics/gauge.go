package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xpc/pkg/util/xstats"
)

// 指标名后缀。
const (
	SuffixMean   = ".mean"
	SuffixStdDev = ".stddev"
	SuffixStdErr = ".stderr"
	SuffixCount  = ".count"
)

// RegisterAverager 将 stats 注册为 Observable Gauge。
//
// 每次采集时在 stats 的锁内读取一次快照，四个指标来自同一快照。
// 返回的 Registration 用于注销回调。
func RegisterAverager(name string, stats *xstats.Synced, opts ...Option) (metric.Registration, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if stats == nil {
		return nil, ErrNilStats
	}

	cfg := newConfig(opts)
	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	mean, err := meter.Float64ObservableGauge(name+SuffixMean,
		metric.WithDescription("running mean of accumulated samples"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}
	stddev, err := meter.Float64ObservableGauge(name+SuffixStdDev,
		metric.WithDescription("sample standard deviation"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}
	stderr, err := meter.Float64ObservableGauge(name+SuffixStdErr,
		metric.WithDescription("standard error of the mean"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}
	count, err := meter.Int64ObservableGauge(name+SuffixCount,
		metric.WithDescription("number of accumulated samples"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}

	attrs := metric.WithAttributes(cfg.attrs...)
	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		snap := stats.Snapshot()
		o.ObserveFloat64(mean, snap.Mean, attrs)
		o.ObserveFloat64(stddev, snap.StdDev, attrs)
		o.ObserveFloat64(stderr, snap.StdErr, attrs)
		o.ObserveInt64(count, int64(snap.N), attrs)
		return nil
	}, mean, stddev, stderr, count)
	if err != nil {
		return nil, fmt.Errorf("%w: register callback: %w", ErrCreateInstrument, err)
	}
	return reg, nil
}
