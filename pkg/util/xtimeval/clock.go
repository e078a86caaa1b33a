package xtimeval

// Clock 定义时钟来源。
type Clock interface {
	// Now 返回当前时间。失败时返回的错误应包装 ErrClockUnavailable。
	Now() (TimeValue, error)
}

// ClockFunc 将普通函数适配为 Clock。
type ClockFunc func() (TimeValue, error)

// Now 实现 Clock。
func (f ClockFunc) Now() (TimeValue, error) { return f() }

// SystemClock 读取系统墙上时钟。
type SystemClock struct{}

// Now 实现 Clock。
func (SystemClock) Now() (TimeValue, error) { return readClock() }

// Now 读取系统当前时间。
// 读取失败时返回字段为零、Valid() == false 的值，不会重试。
func Now() TimeValue {
	v, _ := NowFrom(SystemClock{})
	return v
}

// NowFrom 从指定时钟读取当前时间。
// 失败时返回 Valid() == false 的零值和包装了 ErrClockUnavailable 的错误。
func NowFrom(c Clock) (TimeValue, error) {
	v, err := c.Now()
	if err != nil {
		return invalidValue(), err
	}
	return v, nil
}
