package xstats

import "math"

// Averager 在线累加样本并计算均值与离散度。
//
// 零值可直接使用，等价于 New()（基准值为 0）。
// 非并发安全，并发场景请使用 [Synced]。
type Averager struct {
	base  float64
	sum   float64 // Σ(x - base)
	sumSq float64 // Σ(x - base)²
	n     int
	last  float64

	// 以下字段仅在 dirty == false 时有效。
	dirty    bool
	mean     float64
	variance float64
	stdDev   float64
	stdErr   float64
}

// New 创建 Averager。
func New(opts ...Option) *Averager {
	a := &Averager{}
	for _, opt := range opts {
		opt(a)
	}
	a.mean = a.base
	return a
}

// Accumulate 加入一个样本，返回当前样本数。
func (a *Averager) Accumulate(x float64) int {
	y := x - a.base
	a.sum += y
	a.sumSq += y * y
	a.n++
	a.last = x
	a.dirty = true
	return a.n
}

// Deaccumulate 撤销一个样本，返回当前样本数。
//
// 这是纯代数逆运算：不记录曾经加入过哪些样本，调用方需保证 x 之前被加入过。
// 样本数已为 0 时不做任何修改。样本数回到 0 时累计量重置为精确的 0，
// 避免浮点误差残留。Last 不受影响。
func (a *Averager) Deaccumulate(x float64) int {
	if a.n == 0 {
		return 0
	}
	y := x - a.base
	a.sum -= y
	a.sumSq -= y * y
	a.n--
	if a.n == 0 {
		a.sum, a.sumSq = 0, 0
	}
	a.dirty = true
	return a.n
}

// Clear 清空所有累计量和缓存统计量，基准值保留。
func (a *Averager) Clear() {
	*a = Averager{base: a.base, mean: a.base}
}

// refresh 在 dirty 时一次性重算全部缓存统计量。
func (a *Averager) refresh() {
	if !a.dirty {
		return
	}
	a.dirty = false
	a.variance, a.stdDev, a.stdErr = 0, 0, 0

	if a.n <= 0 {
		a.mean = a.base
		return
	}

	n := float64(a.n)
	a.mean = a.base + a.sum/n
	if a.n > 1 {
		// 浮点抵消可能产生极小的负数，按 0 处理。
		if v := (a.sumSq - a.sum*a.sum/n) / (n - 1); v > 0 {
			a.variance = v
			a.stdDev = math.Sqrt(v)
		}
	}
	a.stdErr = a.stdDev / math.Sqrt(n)
}

// Mean 返回样本均值；无样本时返回基准值。
func (a *Averager) Mean() float64 {
	a.refresh()
	return a.mean
}

// Variance 返回无偏样本方差；样本数 <= 1 时返回 0。
func (a *Averager) Variance() float64 {
	a.refresh()
	return a.variance
}

// StdDev 返回样本标准差 sqrt((Σy² - (Σy)²/n) / (n-1))；样本数 <= 1 时返回 0。
func (a *Averager) StdDev() float64 {
	a.refresh()
	return a.stdDev
}

// StdErr 返回均值的标准误 StdDev / sqrt(n)；无样本时返回 0。
func (a *Averager) StdErr() float64 {
	a.refresh()
	return a.stdErr
}

// Sum 返回减去基准值后的累计和 Σ(x - base)。
func (a *Averager) Sum() float64 { return a.sum }

// AbsoluteSum 返回原始样本总和 Σx = Sum() + base*n。
func (a *Averager) AbsoluteSum() float64 { return a.sum + a.base*float64(a.n) }

// SumOfSquares 返回减去基准值后的平方和 Σ(x - base)²。
func (a *Averager) SumOfSquares() float64 { return a.sumSq }

// N 返回当前样本数。
func (a *Averager) N() int { return a.n }

// Last 返回最近一次 Accumulate 的原始样本值。
func (a *Averager) Last() float64 { return a.last }

// Base 返回基准值。
func (a *Averager) Base() float64 { return a.base }

// Equal 比较两个累加器的均值是否相等。
func (a *Averager) Equal(o *Averager) bool {
	return a.Mean() == o.Mean()
}

// Snapshot 返回当前统计快照。
func (a *Averager) Snapshot() Summary {
	a.refresh()
	return Summary{
		N:            a.n,
		Mean:         a.mean,
		Variance:     a.variance,
		StdDev:       a.stdDev,
		StdErr:       a.stdErr,
		Sum:          a.sum,
		SumOfSquares: a.sumSq,
		Last:         a.last,
		Base:         a.base,
	}
}

// Summary 是 Averager 在某一时刻的统计快照。
type Summary struct {
	N            int     `json:"n"`
	Mean         float64 `json:"mean"`
	Variance     float64 `json:"variance"`
	StdDev       float64 `json:"stddev"`
	StdErr       float64 `json:"stderr"`
	Sum          float64 `json:"sum"`
	SumOfSquares float64 `json:"sum_of_squares"`
	Last         float64 `json:"last"`
	Base         float64 `json:"base"`
}
