package xstats

// Option 定义 Averager 的配置选项。
type Option func(*Averager)

// WithBase 设置基准值，每个样本累加前先减去该值。
// 默认为 0。
func WithBase(base float64) Option {
	return func(a *Averager) {
		a.base = base
	}
}
