// Package xlog 提供基于 log/slog 的结构化日志。
//
// # 功能概览
//
//   - [Logger]: 日志接口，所有方法都需要 context.Context，只接受 slog.Attr
//   - [Leveler]: 运行时动态调整级别
//   - [Builder]: 链式配置输出、级别、格式（text/json）、文件轮转
//   - [EnrichHandler]: 从 context 提取 xseq 嵌套序号（seq/depth/parent_seq）注入日志
//
// # 快速开始
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
//	ctx, _ := xseq.Enter(ctx)
//	logger.Info(ctx, "sample accepted", slog.Float64("value", v))
//
// # 文件输出
//
// [Builder.SetFile] 将日志写入文件，按大小轮转（gopkg.in/natefinch/lumberjack.v2），
// cleanup 函数负责关闭文件。
//
// # 错误处理
//
// 日志写入失败不会返回给业务调用方，也不会 panic；
// 失败次数可以通过 [Builder.SetOnError] 接到监控。
package xlog
