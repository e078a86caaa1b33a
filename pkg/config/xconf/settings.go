package xconf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/xpc/pkg/context/xenv"
	"github.com/omeyang/xpc/pkg/observability/xlog"
)

// EnvPrefix 是 Settings 环境变量覆盖使用的前缀。
const EnvPrefix xenv.Prefix = "XPC"

// Settings 是 xpcctl 的配置。
type Settings struct {
	Log   LogSettings   `koanf:"log"`
	Stats StatsSettings `koanf:"stats"`
}

// LogSettings 日志配置。
type LogSettings struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	Compress   bool   `koanf:"compress"`
}

// StatsSettings 统计配置。
type StatsSettings struct {
	Base        float64   `koanf:"base"`
	Percentiles []float64 `koanf:"percentiles"`
}

// DefaultPercentiles 未配置百分位时使用的默认值。
var DefaultPercentiles = []float64{50, 90, 99}

// DefaultSettings 返回默认配置。
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{Level: "info", Format: "text"},
		Stats: StatsSettings{
			Percentiles: append([]float64(nil), DefaultPercentiles...),
		},
	}
}

// LoadSettings 加载 Settings：默认值、配置文件（path 非空时）、XPC_* 环境变量依次覆盖，
// 最后校验。
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if path != "" {
		cfg, err := New(path)
		if err != nil {
			return Settings{}, err
		}
		if err := cfg.Unmarshal("", &s); err != nil {
			return Settings{}, err
		}
	}
	return finishSettings(s)
}

// SettingsFrom 从已加载的 Config 读取 Settings，规则与 LoadSettings 相同。
func SettingsFrom(cfg Config) (Settings, error) {
	var s Settings
	if err := cfg.Unmarshal("", &s); err != nil {
		return Settings{}, err
	}
	return finishSettings(s)
}

func finishSettings(s Settings) (Settings, error) {
	s.fillDefaults()
	if err := s.ApplyEnv(EnvPrefix); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// fillDefaults 为未设置的字段填充默认值。
// 在反序列化之后执行，避免 mapstructure 将较短的切片合并进默认切片。
func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
	if s.Log.Format == "" {
		s.Log.Format = def.Log.Format
	}
	if len(s.Stats.Percentiles) == 0 {
		s.Stats.Percentiles = def.Stats.Percentiles
	}
}

// ApplyEnv 用带 prefix 的环境变量覆盖配置。
func (s *Settings) ApplyEnv(prefix xenv.Prefix) error {
	s.Log.Level = prefix.String("LOG_LEVEL", s.Log.Level)
	s.Log.Format = prefix.String("LOG_FORMAT", s.Log.Format)
	s.Log.File = prefix.String("LOG_FILE", s.Log.File)

	base, err := prefix.Float("STATS_BASE", s.Stats.Base)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	s.Stats.Base = base

	if raw, ok := prefix.Lookup("STATS_PERCENTILES"); ok && strings.TrimSpace(raw) != "" {
		ps, err := ParsePercentiles(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidSettings, prefix.Key("STATS_PERCENTILES"), err)
		}
		s.Stats.Percentiles = ps
	}
	return nil
}

// Validate 校验配置。
func (s Settings) Validate() error {
	var errs []error
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(s.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", xlog.ErrUnknownFormat, s.Log.Format))
	}
	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 {
		errs = append(errs, errors.New("log rotation limits must not be negative"))
	}
	for _, p := range s.Stats.Percentiles {
		if p <= 0 || p > 100 {
			errs = append(errs, fmt.Errorf("percentile %g out of range (0, 100]", p))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}

// ParsePercentiles 解析逗号分隔的百分位列表，如 "50,90,99.9"。
func ParsePercentiles(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("percentile %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
