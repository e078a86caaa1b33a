// Package xconf 提供 xpc 工具的配置加载，基于 koanf 实现。
//
// # 功能概览
//
//   - [New] / [NewFromBytes]: 从文件或字节加载 YAML / JSON 配置
//   - [Config.Unmarshal]: 按 koanf 标签反序列化到结构体
//   - [LoadSettings]: 读取 xpcctl 的 [Settings]，依次应用默认值、
//     配置文件和 XPC_* 环境变量
//   - [Watch]: 监视配置文件变更并自动重载（基于 fsnotify）
//
// # 覆盖顺序
//
// 默认值 < 配置文件 < 环境变量。环境变量：
//
//	XPC_LOG_LEVEL        debug / info / warn / error
//	XPC_LOG_FORMAT       text / json
//	XPC_LOG_FILE         日志文件路径，空表示 stderr
//	XPC_STATS_BASE       累加器基准值
//	XPC_STATS_PERCENTILES 逗号分隔的百分位，如 "50,90,99"
//
// # 并发安全
//
// Config 的方法并发安全。Reload 成功后原子替换内部 koanf 实例，
// Client() 返回的旧实例仍可用但数据过期。
package xconf
