//go:build !unix

package xtimeval

import "time"

// timeNow 时钟函数变量，测试中可替换。
var timeNow = time.Now

// readClock 在非 Unix 平台上使用 time.Now()，不会失败。
func readClock() (TimeValue, error) {
	return FromTime(timeNow()), nil
}
