// Package xseq 为嵌套的跟踪日志提供序号与层级。
//
// # 功能概览
//
//   - [Sequencer]: 单调递增的序号发生器（并发安全）
//   - [WithSequencer] / [SequencerFrom]: 在 context 中携带 Sequencer
//   - [Enter]: 进入一层嵌套，分配下一个序号，层级加一
//   - [FromContext]: 读取当前所在层的 [Frame]
//   - [AppendAttrs]: 将 seq/depth/parent_seq 追加为 slog 属性，供 xlog 注入
//
// # 设计
//
// 序号计数器不是进程级全局变量，而是显式的 Sequencer，随 context 传递。
// 不同的 context 树可以使用互不干扰的计数器，测试之间也不会互相污染。
//
//	ctx := xseq.WithSequencer(context.Background(), xseq.New())
//	ctx, outer := xseq.Enter(ctx) // seq=1 depth=1
//	_, inner := xseq.Enter(ctx)   // seq=2 depth=2 parent=1
package xseq
