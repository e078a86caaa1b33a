// Package xenv 提供类型化的环境变量读取。
//
// # 功能概览
//
//   - [Lookup] / [Required]: 原始读取，区分未设置与空值
//   - [String] / [Bool] / [Int] / [Float] / [Duration]: 带默认值的类型化读取
//   - [Prefix]: 为一组变量加统一前缀，如 Prefix("XPC").String("LOG_LEVEL", "info")
//     读取 XPC_LOG_LEVEL
//
// # 默认值语义
//
// 变量未设置或值为空白时返回默认值，不返回错误。
// 值存在但无法解析为目标类型时返回默认值和包装了 [ErrInvalidValue] 的错误，
// 由调用方决定是否降级。
//
// # 线程安全
//
// 所有函数只读取进程环境，可并发调用。
package xenv
