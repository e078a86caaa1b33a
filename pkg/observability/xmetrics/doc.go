// Package xmetrics 将 xstats 统计量与 xtimeval 计时接入 OpenTelemetry。
//
// # 功能概览
//
//   - [RegisterAverager]: 将 xstats.Synced 注册为一组 Observable Gauge，
//     采集时读取快照：<name>.mean / <name>.stddev / <name>.stderr / <name>.count
//   - [Timer]: 用 xtimeval 时钟计时，把耗时（秒）累加到 xstats.Synced，
//     并为每次计时创建一个 OTel span
//
// # 使用示例
//
//	latency := xstats.NewSynced()
//	reg, err := xmetrics.RegisterAverager("xpc.parse.latency", latency)
//	if err != nil {
//		return err
//	}
//	defer reg.Unregister()
//
//	timer := xmetrics.NewTimer(latency)
//	ctx, stop := timer.Start(ctx, "parse")
//	defer stop()
//
// 未指定 Provider 时使用 otel 全局 MeterProvider / TracerProvider。
package xmetrics
