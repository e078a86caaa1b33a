package xmetrics

import "errors"

var (
	// ErrEmptyName 表示指标名为空。
	ErrEmptyName = errors.New("xmetrics: empty metric name")

	// ErrNilStats 表示传入的统计累加器为 nil。
	ErrNilStats = errors.New("xmetrics: nil stats")

	// ErrCreateInstrument 表示创建 OTel 指标失败。
	ErrCreateInstrument = errors.New("xmetrics: create instrument failed")
)
