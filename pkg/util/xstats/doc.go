// Package xstats 提供单变量样本流的在线统计累加器。
//
// # 功能概览
//
//   - [Averager]: 基于和与平方和的累加器，支持插入 / 撤销样本，
//     惰性计算均值、样本标准差与标准误
//   - [Synced]: 带互斥锁的 Averager 包装，供需要并发访问的调用方使用
//   - [Summary]: 某一时刻的统计快照（纯值类型）
//   - [Registry]: 按键维护多个 Synced，容量满时按 LRU 淘汰
//
// # 基准值
//
// 每个样本在累加前先减去基准值（[WithBase]）。当样本绝对值远大于其波动时，
// 选取接近样本量级的基准值可以避免平方和相减时的精度丢失。
// [Averager.Sum] 和 [Averager.SumOfSquares] 返回的是减去基准值后的累计量，
// 需要原始总和时使用 [Averager.AbsoluteSum]。
//
// # 缓存策略
//
// 任何修改（Accumulate / Deaccumulate / Clear）只标记 dirty；
// 均值、标准差、标准误在之后第一次查询时一起重算。
// 因此查询方法使用指针接收者，Averager 不是并发安全的。
//
// # 边界值
//
//   - n == 0: Mean 返回基准值，StdDev / StdErr 返回 0
//   - n == 1: StdDev / StdErr 返回 0
package xstats
