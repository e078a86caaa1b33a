package xmetrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xpc/pkg/util/xtimeval"
)

const defaultInstrumentationName = "github.com/omeyang/xpc/xmetrics"

type config struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
	tracerProvider      trace.TracerProvider
	clock               xtimeval.Clock
	attrs               []attribute.KeyValue
}

// Option 定义 xmetrics 的配置选项。
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
		tracerProvider:      otel.GetTracerProvider(),
		clock:               xtimeval.SystemClock{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithInstrumentationName 设置 instrumentation 名称，空值忽略。
func WithInstrumentationName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// WithTracerProvider 设置 TracerProvider，nil 忽略。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithClock 设置 Timer 使用的时钟，nil 忽略。
func WithClock(clock xtimeval.Clock) Option {
	return func(cfg *config) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithAttrs 附加到每个数据点 / span 的属性。
func WithAttrs(attrs ...attribute.KeyValue) Option {
	return func(cfg *config) {
		cfg.attrs = append(cfg.attrs, attrs...)
	}
}
