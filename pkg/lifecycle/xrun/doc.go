// Package xrun 基于 errgroup + context 管理一组并发任务的运行与协调退出。
//
// # 功能概览
//
//   - [Group]: 任一任务返回错误或 context 取消时，其余任务收到取消信号
//   - [Run] / [RunWithOptions]: 附带信号监听的 Group，收到信号时返回 [*SignalError]
//   - [Ticker]: 周期执行任务的服务函数，可限定执行次数
//
// # 错误处理
//
// Wait 返回第一个非 nil 错误。取消引起的 context.Canceled 被过滤：
// 有显式取消原因（Cancel(cause)、信号）时返回该原因，否则返回 nil。
// 任务用 [ErrStop] 表示正常结束，Wait 同样返回 nil。
//
//	err := xrun.Run(ctx, xrun.Ticker(time.Second, 10, func(ctx context.Context) error {
//		return sample(ctx)
//	}))
//	if errors.Is(err, xrun.ErrSignal) {
//		// 被信号中断
//	}
//
// [errgroup]: https://pkg.go.dev/golang.org/x/sync/errgroup
package xrun
