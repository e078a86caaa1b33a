package xrun

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrSignal 表示因收到系统信号而终止，用 errors.Is 判断。
	ErrSignal = errors.New("xrun: received signal")

	// ErrStop 由任务返回，表示正常结束并停止整个 Group。Wait 对其返回 nil。
	ErrStop = errors.New("xrun: stop")

	// ErrNilFunc 表示传入的任务函数为 nil。
	ErrNilFunc = errors.New("xrun: nil func")

	// ErrInvalidInterval 表示 Ticker 的间隔不是正数。
	ErrInvalidInterval = errors.New("xrun: interval must be positive")
)

// SignalError 记录触发退出的信号。
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	if e.Signal == nil {
		return "xrun: received signal <nil>"
	}
	return fmt.Sprintf("xrun: received signal %s", e.Signal)
}

// Unwrap 使 errors.Is(err, ErrSignal) 成立。
func (e *SignalError) Unwrap() error { return ErrSignal }
