// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xtimeval: 秒 + 微秒的时间值，解析、格式化与算术
//   - xstats: 增量统计量（均值、标准差、标准误），含并发安全包装与按键注册表
//   - xsys: 字节序与 CPU 特性检测
//
// 设计原则：
//   - 核心类型不记录日志、不持有锁，由调用方决定并发策略
//   - 跨平台兼容
package util
