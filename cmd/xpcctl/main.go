// xpcctl 是 xpc 时间值与统计累加器的命令行工具。
//
// 用法:
//
//	xpcctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件路径（.yaml/.yml/.json）
//	    --log-level   日志级别，覆盖配置文件与 XPC_LOG_LEVEL
//	    --log-format  日志格式 text/json
//	    --watch       监视配置文件，运行期间按文件内容调整日志级别
//
// 命令:
//
//	now                    输出当前时间 "sec.usec"
//	parse <t>              规范化并输出时间值
//	add <a> <b>            a + b
//	sub <a> <b>            a - b
//	diff <later> <earlier> 浮点秒差
//	cmp <a> <b>            比较，输出 -1 / 0 / 1
//	elapsed <t>            自 t 起经过的浮点秒数
//	stats [file...]        逐行读取数值并输出统计量（无文件时读 stdin）
//	                       --keyed 时每行为 "<key> <value>"，按 key 分组
//	jitter                 按固定间隔采样时钟，统计间隔偏差
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（时钟不可用、文件读取失败、数据行无法解析等）
//	2: 参数错误（时间值格式错误、缺少参数、未知命令或 flag）
//
// 示例:
//
//	xpcctl parse 5.5                        # 5.500000
//	xpcctl add 1.9 0.2                      # 2.100000
//	seq 1 100 | xpcctl stats -p 50 -p 99    # 统计 stdin
//	xpcctl -c xpc.yaml stats --base 1000 samples.txt
//	xpcctl jitter -i 10ms -n 500            # 时钟抖动
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandler(cancel)

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	code := a.run(ctx, os.Args)
	cancel()
	os.Exit(code)
}

// run 执行命令并将错误映射为退出码。
func (a *app) run(ctx context.Context, args []string) int {
	err := a.command().Run(ctx, args)
	return exitCode(a.errOut, err)
}

func exitCode(errOut io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(errOut, "参数错误: %v\n", usageErr)
		return 2
	}
	fmt.Fprintf(errOut, "错误: %v\n", err)
	return 1
}
