package xtimeval

import "errors"

var (
	// ErrClockUnavailable 表示系统时钟读取失败。
	ErrClockUnavailable = errors.New("xtimeval: clock unavailable")

	// ErrMalformed 表示时间字符串格式非法。
	ErrMalformed = errors.New("xtimeval: malformed time string")

	// ErrNegativeSeconds 表示时间字符串的秒部分为负数。
	ErrNegativeSeconds = errors.New("xtimeval: negative seconds")
)
