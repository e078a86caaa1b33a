package xenv

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Lookup 返回环境变量的值（去除首尾空白）以及是否已设置。
func Lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Required 返回必须存在且非空的环境变量。
//
// 错误场景：
//   - 未设置: ErrMissingEnv
//   - 空值/纯空白: ErrEmptyEnv
func Required(key string) (string, error) {
	v, ok := Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, key)
	}
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyEnv, key)
	}
	return v, nil
}

// String 返回环境变量值，未设置或为空时返回 def。
func String(key, def string) string {
	if v, ok := Lookup(key); ok && v != "" {
		return v
	}
	return def
}

// Bool 返回布尔环境变量。
// 接受 strconv.ParseBool 的全部取值，另外接受 yes/no/on/off（大小写不敏感）。
func Bool(key string, def bool) (bool, error) {
	return parseWith(key, def, parseBool)
}

// Int 返回整数环境变量。
func Int(key string, def int) (int, error) {
	return parseWith(key, def, strconv.Atoi)
}

// Float 返回浮点环境变量。
func Float(key string, def float64) (float64, error) {
	return parseWith(key, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Duration 返回 time.Duration 环境变量，格式同 time.ParseDuration（如 "1.5s"）。
func Duration(key string, def time.Duration) (time.Duration, error) {
	return parseWith(key, def, time.ParseDuration)
}

// parseWith 读取并用 parse 解析，未设置或为空时返回 def。
func parseWith[T any](key string, def T, parse func(string) (T, error)) (T, error) {
	v, ok := Lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	parsed, err := parse(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, v, err)
	}
	return parsed, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
