package xtimeval

import (
	"fmt"
	"time"
)

// MicrosPerSecond 每秒的微秒数。
const MicrosPerSecond = 1_000_000

// TimeValue 表示一个秒 + 微秒的时间点或时长。
//
// 零值是合法的 0 时刻（"0.000000"）。
// 规范化后 0 <= Usec() < MicrosPerSecond，负的时间由秒承载，
// 例如 -0.5 秒表示为 (-1, 500000)。
type TimeValue struct {
	sec  int64
	usec int64
	// invalid 使用反向语义，保证零值为合法值。
	invalid bool
}

// New 创建规范化后的 TimeValue。
// usec 可以越界或为负，会被进位/借位到秒上。
func New(sec, usec int64) TimeValue {
	sec, usec = normalize(sec, usec)
	return TimeValue{sec: sec, usec: usec}
}

// FromTime 从 time.Time 创建 TimeValue，纳秒部分截断到微秒。
func FromTime(t time.Time) TimeValue {
	return New(t.Unix(), int64(t.Nanosecond()/1000))
}

// FromDuration 从 time.Duration 创建 TimeValue，纳秒部分截断到微秒。
func FromDuration(d time.Duration) TimeValue {
	return New(int64(d/time.Second), int64((d%time.Second)/time.Microsecond))
}

// invalidValue 返回字段为零、标记为非法的 TimeValue。
func invalidValue() TimeValue {
	return TimeValue{invalid: true}
}

// Sec 返回秒部分。
func (t TimeValue) Sec() int64 { return t.sec }

// Usec 返回微秒部分。
func (t TimeValue) Usec() int64 { return t.usec }

// Valid 报告该值是否来自成功的时钟读取或解析。
func (t TimeValue) Valid() bool { return !t.invalid }

// IsZero 报告秒和微秒是否都为 0。不考虑合法性。
func (t TimeValue) IsZero() bool { return t.sec == 0 && t.usec == 0 }

// Time 转换为 time.Time（本地时区）。
func (t TimeValue) Time() time.Time {
	return time.Unix(t.sec, t.usec*1000)
}

// Duration 将该值视为时长转换为 time.Duration。
// 超出 time.Duration 表示范围（约 292 年）时结果溢出。
func (t TimeValue) Duration() time.Duration {
	return time.Duration(t.sec)*time.Second + time.Duration(t.usec)*time.Microsecond
}

// Seconds 返回以浮点秒表示的值：sec + usec/1e6。
func (t TimeValue) Seconds() float64 {
	return float64(t.sec) + float64(t.usec)/MicrosPerSecond
}

// String 按 "%d.%06d" 格式输出，例如 "1234567890.012345"。
func (t TimeValue) String() string {
	return fmt.Sprintf("%d.%06d", t.sec, t.usec)
}

// Add 返回 t + o。
// 两个字段分别相加后进位：微秒 >= 1,000,000 时减去 1,000,000 并使秒加一。
// 结果合法当且仅当两个操作数都合法。
func (t TimeValue) Add(o TimeValue) TimeValue {
	sec, usec := normalize(t.sec+o.sec, t.usec+o.usec)
	return TimeValue{sec: sec, usec: usec, invalid: t.invalid || o.invalid}
}

// Sub 返回 t - o。
// 两个字段分别相减后借位：微秒 < 0 时加上 1,000,000 并使秒减一。
// 若要得到非负时长，o 应为较早的时间；反向调用只改变结果符号。
func (t TimeValue) Sub(o TimeValue) TimeValue {
	sec, usec := normalize(t.sec-o.sec, t.usec-o.usec)
	return TimeValue{sec: sec, usec: usec, invalid: t.invalid || o.invalid}
}

// Diff 返回 t 与 earlier 之差的浮点秒数：
// (t.sec - earlier.sec) + (t.usec - earlier.usec)/1e6。
func (t TimeValue) Diff(earlier TimeValue) float64 {
	return float64(t.sec-earlier.sec) + float64(t.usec-earlier.usec)/MicrosPerSecond
}

// Elapsed 读取当前时间并返回自 t 以来经过的浮点秒数。
// 时钟读取失败时返回 0。
func (t TimeValue) Elapsed() float64 {
	return t.ElapsedFrom(SystemClock{})
}

// ElapsedFrom 与 Elapsed 相同，但使用指定时钟。
func (t TimeValue) ElapsedFrom(c Clock) float64 {
	now, err := NowFrom(c)
	if err != nil {
		return 0
	}
	return now.Diff(t)
}

// Less 报告 t 是否早于 o：先比较秒，秒相等时比较微秒。
func (t TimeValue) Less(o TimeValue) bool {
	if t.sec != o.sec {
		return t.sec < o.sec
	}
	return t.usec < o.usec
}

// Equal 报告 t 与 o 是否相等，定义为 !t.Less(o) && !o.Less(t)。
// 合法性标记不参与比较。
func (t TimeValue) Equal(o TimeValue) bool {
	return !t.Less(o) && !o.Less(t)
}

// Greater 报告 t 是否晚于 o。
func (t TimeValue) Greater(o TimeValue) bool { return o.Less(t) }

// LessOrEqual 报告 t <= o。
func (t TimeValue) LessOrEqual(o TimeValue) bool { return t.Less(o) || t.Equal(o) }

// GreaterOrEqual 报告 t >= o。
func (t TimeValue) GreaterOrEqual(o TimeValue) bool { return t.Greater(o) || t.Equal(o) }

// Compare 返回 -1、0 或 +1，可直接用于 slices.SortFunc。
func (t TimeValue) Compare(o TimeValue) int {
	switch {
	case t.Less(o):
		return -1
	case o.Less(t):
		return 1
	default:
		return 0
	}
}

// MarshalText 实现 encoding.TextMarshaler，输出与 String 相同。
func (t TimeValue) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，规则与 ParseStrict 相同。
func (t *TimeValue) UnmarshalText(data []byte) error {
	v, err := ParseStrict(string(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// normalize 将微秒规范到 [0, MicrosPerSecond)，多余部分进位/借位到秒。
// 等价于逐次加减 1,000,000 的循环，但对大偏移是 O(1)。
func normalize(sec, usec int64) (int64, int64) {
	if usec >= MicrosPerSecond || usec <= -MicrosPerSecond {
		sec += usec / MicrosPerSecond
		usec %= MicrosPerSecond
	}
	if usec < 0 {
		usec += MicrosPerSecond
		sec--
	}
	return sec, usec
}
