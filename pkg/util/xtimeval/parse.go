package xtimeval

import (
	"fmt"
	"strconv"
	"strings"
)

// fracDigits 小数部分的有效位数（微秒精度）。
const fracDigits = 6

// Parse 解析 "秒.小数" 格式的字符串，失败时返回 Valid() == false 的值。
//
// 规则：
//   - 整数部分按十进制解析，非数字或解析结果为负时非法，秒保持为 0（"-0" 即 0，合法）
//   - 小数部分最多取 6 位，不足右补零（"5.5" → 5.500000），超出部分截断
//   - 没有小数点时微秒为 0
//   - 小数部分独立解析：整数部分非法时，合法的小数部分仍会写入微秒
//
// 需要错误原因时使用 ParseStrict。
func Parse(s string) TimeValue {
	v, _ := parse(s)
	return v
}

// ParseStrict 与 Parse 规则相同，但非法输入返回错误
// （[ErrMalformed] 或 [ErrNegativeSeconds]），错误时返回零值。
func ParseStrict(s string) (TimeValue, error) {
	v, err := parse(s)
	if err != nil {
		return TimeValue{}, err
	}
	return v, nil
}

// MustParse 与 ParseStrict 相同，但失败时 panic。
// 仅用于常量初始化和测试。
func MustParse(s string) TimeValue {
	v, err := ParseStrict(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parse(s string) (TimeValue, error) {
	s = strings.TrimSpace(s)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var (
		v        TimeValue
		firstErr error
	)

	sec, err := parseSeconds(intPart)
	if err != nil {
		firstErr = err
	} else {
		v.sec = sec
	}

	if hasFrac {
		usec, err := parseFraction(fracPart)
		switch {
		case err != nil && firstErr == nil:
			firstErr = err
		case err == nil:
			v.usec = usec
		}
	}

	if firstErr != nil {
		v.invalid = true
		return v, firstErr
	}
	return v, nil
}

// parseSeconds 解析整数秒部分。
func parseSeconds(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing seconds", ErrMalformed)
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seconds %q: %w", ErrMalformed, s, err)
	}
	if sec < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativeSeconds, s)
	}
	return sec, nil
}

// parseFraction 解析小数部分为微秒。
// 所有字符都必须是数字；只取前 6 位，不足右补零。
func parseFraction(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: fraction %q", ErrMalformed, s)
		}
	}
	if len(s) > fracDigits {
		s = s[:fracDigits]
	}
	var usec int64
	for i := 0; i < fracDigits; i++ {
		usec *= 10
		if i < len(s) {
			usec += int64(s[i] - '0')
		}
	}
	return usec, nil
}
