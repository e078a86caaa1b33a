//go:build unix

package xtimeval

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// 系统调用函数变量，测试中可替换以覆盖失败路径。
// 注意：替换该变量的测试不可使用 t.Parallel()。
var gettimeofday = unix.Gettimeofday

// readClock 通过 gettimeofday(2) 读取墙上时钟。
func readClock() (TimeValue, error) {
	var tv unix.Timeval
	if err := gettimeofday(&tv); err != nil {
		return invalidValue(), fmt.Errorf("%w: gettimeofday: %w", ErrClockUnavailable, err)
	}
	return New(int64(tv.Sec), int64(tv.Usec)), nil
}
