// Package xtimeval 提供秒 + 微秒精度的时间值（timeval 语义）。
//
// # 功能概览
//
//   - [TimeValue]: 值类型，秒 + 微秒，规范化后 0 <= 微秒 < 1,000,000，符号由秒承载
//   - [Now]: 读取系统时钟，失败时返回 Valid() == false 的值，不返回错误
//   - [Parse] / [ParseStrict]: 解析 "秒.小数" 字符串
//   - [TimeValue.Add] / [TimeValue.Sub]: 带进位/借位规范化的加减
//   - [TimeValue.Diff] / [TimeValue.Elapsed] / [TimeValue.Seconds]: 浮点秒
//   - [Clock]: 时钟来源接口，便于注入测试时钟
//
// # 字符串格式
//
// [TimeValue.String] 固定输出 "%d.%06d"，零值为 "0.000000"。
// [Parse] 的小数部分最多取 6 位，不足右补零，超出部分直接截断（不四舍五入）。
// 秒为负数的字符串视为非法。
//
// # 失败语义
//
// 时钟读取失败、字符串非法都只通过 [TimeValue.Valid] 体现。
// 所有运算在非法值上仍然有定义，不会 panic。
// 需要具体错误原因时使用 [NowFrom] 或 [ParseStrict]。
//
// # 并发安全
//
// TimeValue 是不可变值类型，可以自由复制和并发读取。
//
// # 平台支持
//
// Unix 平台通过 gettimeofday(2)（golang.org/x/sys/unix）读取时钟，
// 其他平台使用 time.Now()。
package xtimeval
