package xrun

import (
	"context"
	"time"
)

// Ticker 返回每隔 interval 执行一次 fn 的任务。
//
// count > 0 时执行 count 次后返回 ErrStop，count <= 0 表示不限次数。
// fn 返回错误时任务以该错误结束；ctx 取消时返回 ctx.Err()。
func Ticker(interval time.Duration, count int, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if interval <= 0 {
			return ErrInvalidInterval
		}
		if fn == nil {
			return ErrNilFunc
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for n := 0; count <= 0 || n < count; n++ {
			select {
			case <-t.C:
				if err := fn(ctx); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return ErrStop
	}
}
