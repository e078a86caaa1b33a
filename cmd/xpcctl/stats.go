package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xpc/pkg/context/xseq"
	"github.com/omeyang/xpc/pkg/observability/xmetrics"
	"github.com/omeyang/xpc/pkg/util/xstats"
)

// statsMetricName stats --metrics 注册的指标名前缀。
const statsMetricName = "xpcctl.stats"

// defaultMaxKeys --keyed 模式默认保留的 key 数。
const defaultMaxKeys = 1024

// statsOptions stats 命令的参数。
type statsOptions struct {
	base        float64
	percentiles []float64
	every       int
	json        bool
	metrics     bool
	keyed       bool
	maxKeys     int
	inputs      []string
}

// statsReport 是 stats 命令的输出。
type statsReport struct {
	xstats.Summary
	AbsoluteSum float64            `json:"absolute_sum"`
	Min         *float64           `json:"min,omitempty"`
	Max         *float64           `json:"max,omitempty"`
	Percentiles map[string]float64 `json:"percentiles,omitempty"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`

	// order 保留百分位的请求顺序，用于文本输出。
	order []string
}

func (a *app) statsCommand() *cli.Command {
	return &cli.Command{
		Name:         "stats",
		Usage:        "逐行读取数值并输出统计量",
		ArgsUsage:    "[file...]",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   "累加器基准值（覆盖配置 stats.base）",
			},
			&cli.FloatSliceFlag{
				Name:    "percentile",
				Aliases: []string{"p"},
				Usage:   "输出的百分位，可重复（覆盖配置 stats.percentiles）",
			},
			&cli.IntFlag{
				Name:  "every",
				Usage: "每累计 N 个样本输出一行中间结果，0 表示不输出",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "经 OpenTelemetry 采集一次并输出指标值",
			},
			&cli.BoolFlag{
				Name:  "keyed",
				Usage: `每行为 "<key> <value>"，按 key 分别统计`,
			},
			&cli.IntFlag{
				Name:  "max-keys",
				Usage: "--keyed 时保留的最大 key 数，超出时淘汰最久未出现的 key",
				Value: defaultMaxKeys,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := statsOptions{
				base:        a.settings.Stats.Base,
				percentiles: a.settings.Stats.Percentiles,
				every:       int(cmd.Int("every")),
				json:        cmd.Bool("json"),
				metrics:     cmd.Bool("metrics"),
				keyed:       cmd.Bool("keyed"),
				maxKeys:     int(cmd.Int("max-keys")),
				inputs:      cmd.Args().Slice(),
			}
			if cmd.IsSet("base") {
				opts.base = cmd.Float("base")
			}
			if cmd.IsSet("percentile") {
				opts.percentiles = cmd.FloatSlice("percentile")
			}
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.keyed {
				return a.runKeyedStats(ctx, opts)
			}
			return a.runStats(ctx, opts)
		},
	}
}

func (o statsOptions) validate() error {
	if o.keyed && o.maxKeys <= 0 {
		return &usageError{msg: fmt.Sprintf("--max-keys 必须为正数: %d", o.maxKeys)}
	}
	if o.every < 0 {
		return &usageError{msg: fmt.Sprintf("--every 不能为负数: %d", o.every)}
	}
	for _, p := range o.percentiles {
		if p <= 0 || p > 100 {
			return &usageError{msg: fmt.Sprintf("百分位 %g 超出范围 (0, 100]", p)}
		}
	}
	return nil
}

func (a *app) runStats(ctx context.Context, opts statsOptions) error {
	ctx, _ = xseq.Enter(ctx)

	acc := xstats.NewSynced(xstats.WithBase(opts.base))
	readTimes := xstats.NewSynced()
	timer := xmetrics.NewTimer(readTimes, xmetrics.WithClock(a.clock))

	var collect func(context.Context) (map[string]float64, error)
	if opts.metrics {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(context.WithoutCancel(ctx)) }()

		reg, err := xmetrics.RegisterAverager(statsMetricName, acc,
			xmetrics.WithMeterProvider(mp),
			xmetrics.WithAttrs(attribute.String("command", "stats")),
		)
		if err != nil {
			return err
		}
		defer func() { _ = reg.Unregister() }()
		collect = func(ctx context.Context) (map[string]float64, error) {
			return collectGauges(ctx, reader)
		}
	}

	inputs := opts.inputs
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	var samples []float64
	for _, name := range inputs {
		err := timer.Time(ctx, "read "+name, func(ctx context.Context) error {
			return a.readSamples(ctx, name, func(x float64) {
				samples = append(samples, x)
				n := acc.Accumulate(x)
				if opts.every > 0 && n%opts.every == 0 {
					s := acc.Snapshot()
					fmt.Fprintf(a.out, "n=%d mean=%s stddev=%s\n", s.N, formatFloat(s.Mean), formatFloat(s.StdDev))
				}
			})
		})
		if err != nil {
			return err
		}
		a.logger.Debug(ctx, "input read",
			slog.String("input", name),
			slog.Float64("seconds", readTimes.Snapshot().Last),
		)
	}

	report := buildReport(acc, samples, opts.percentiles)
	if collect != nil {
		m, err := collect(ctx)
		if err != nil {
			return err
		}
		report.Metrics = m
	}

	if opts.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	writeReport(a.out, report)
	return nil
}

// readSamples 逐行读取数值。空行与 # 开头的行被忽略，name 为 "-" 时读 stdin。
func (a *app) readSamples(ctx context.Context, name string, fn func(float64)) error {
	return a.readLines(ctx, name, func(text string) error {
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		fn(x)
		return nil
	})
}

// readLines 逐行读取并交给 fn，fn 的错误附带 "文件:行号"。
func (a *app) readLines(ctx context.Context, name string, fn func(text string) error) (err error) {
	var r io.Reader = a.in
	if name != "-" {
		f, openErr := os.Open(name)
		if openErr != nil {
			return openErr
		}
		defer func() { err = errors.Join(err, f.Close()) }()
		r = f
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(text); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	return sc.Err()
}

// runKeyedStats 按 key 分组统计，输出按 key 排序。
// 被淘汰的 key 在淘汰时输出其最终统计并标记 evicted。
func (a *app) runKeyedStats(ctx context.Context, opts statsOptions) error {
	ctx, _ = xseq.Enter(ctx)

	var evicted []string
	reg, err := xstats.NewRegistry(opts.maxKeys, func(key string, final xstats.Summary) {
		evicted = append(evicted, formatKeyed(key, final)+" evicted")
	}, xstats.WithBase(opts.base))
	if err != nil {
		return err
	}

	inputs := opts.inputs
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		err := a.readLines(ctx, name, func(text string) error {
			fields := strings.Fields(text)
			if len(fields) != 2 {
				return fmt.Errorf("want \"<key> <value>\", got %q", text)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return err
			}
			reg.Accumulate(fields[0], x)
			return nil
		})
		if err != nil {
			return err
		}
	}

	if len(evicted) > 0 {
		a.logger.Warn(ctx, "keys evicted", slog.Int("count", len(evicted)), slog.Int("max_keys", opts.maxKeys))
	}
	for _, line := range evicted {
		fmt.Fprintln(a.out, line)
	}

	snaps := reg.Snapshots()
	if opts.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}
	for _, key := range reg.Keys() {
		fmt.Fprintln(a.out, formatKeyed(key, snaps[key]))
	}
	return nil
}

func formatKeyed(key string, s xstats.Summary) string {
	return fmt.Sprintf("%s n=%d mean=%s stddev=%s stderr=%s",
		key, s.N, formatFloat(s.Mean), formatFloat(s.StdDev), formatFloat(s.StdErr))
}

func buildReport(acc *xstats.Synced, samples []float64, percentiles []float64) statsReport {
	var report statsReport
	acc.Do(func(a *xstats.Averager) {
		report.Summary = a.Snapshot()
		report.AbsoluteSum = a.AbsoluteSum()
	})
	if len(samples) == 0 {
		return report
	}

	data := stats.Float64Data(samples)
	if v, err := data.Min(); err == nil {
		report.Min = &v
	}
	if v, err := data.Max(); err == nil {
		report.Max = &v
	}
	report.Percentiles = make(map[string]float64, len(percentiles))
	for _, p := range percentiles {
		key := percentileKey(p)
		report.order = append(report.order, key)
		// 样本过少时库对低百分位返回越界错误，该百分位不输出。
		if v, err := stats.Percentile(data, p); err == nil {
			report.Percentiles[key] = v
		}
	}
	return report
}

func writeRow(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%-8s %s\n", name, value)
}

func writeReport(w io.Writer, r statsReport) {
	row := func(name, value string) { writeRow(w, name, value) }

	row("n", strconv.Itoa(r.N))
	row("mean", formatFloat(r.Mean))
	row("stddev", formatFloat(r.StdDev))
	row("stderr", formatFloat(r.StdErr))
	row("sum", formatFloat(r.Sum))
	row("abs_sum", formatFloat(r.AbsoluteSum))
	row("last", formatFloat(r.Last))
	row("min", formatOptional(r.Min))
	row("max", formatOptional(r.Max))
	for _, key := range r.order {
		if v, ok := r.Percentiles[key]; ok {
			row(key, formatFloat(v))
		} else {
			row(key, "n/a")
		}
	}

	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row(name, formatFloat(r.Metrics[name]))
	}
}

// collectGauges 采集一次并将各 gauge 的首个数据点按指标名返回。
func collectGauges(ctx context.Context, reader *sdkmetric.ManualReader) (map[string]float64, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Gauge[float64]:
				if len(data.DataPoints) > 0 {
					out[m.Name] = data.DataPoints[0].Value
				}
			case metricdata.Gauge[int64]:
				if len(data.DataPoints) > 0 {
					out[m.Name] = float64(data.DataPoints[0].Value)
				}
			}
		}
	}
	return out, nil
}

func percentileKey(p float64) string {
	return "p" + strconv.FormatFloat(p, 'f', -1, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return formatFloat(*v)
}
