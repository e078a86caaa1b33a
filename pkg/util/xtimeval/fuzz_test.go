package xtimeval_test

import (
	"testing"

	"github.com/omeyang/xpc/pkg/util/xtimeval"
)

// FuzzParse 模糊测试字符串解析
//
// 测试目标：
//   - 任意输入不会 panic
//   - 微秒始终在 [0, 1e6) 内
//   - 合法结果经 String 再解析后保持相等
func FuzzParse(f *testing.F) {
	f.Add("5.5")
	f.Add("0.000000")
	f.Add("1234567890.012345")
	f.Add("-1.5")
	f.Add(".5")
	f.Add("1.1234567")
	f.Add("")
	f.Add("abc")
	f.Add("9223372036854775807.999999")

	f.Fuzz(func(t *testing.T, input string) {
		v := xtimeval.Parse(input)
		if v.Usec() < 0 || v.Usec() >= xtimeval.MicrosPerSecond {
			t.Fatalf("Parse(%q) usec out of range: %d", input, v.Usec())
		}
		if !v.Valid() {
			return
		}
		if v.Sec() < 0 {
			t.Fatalf("Parse(%q) accepted negative seconds: %s", input, v)
		}
		again := xtimeval.Parse(v.String())
		if !again.Valid() || !again.Equal(v) {
			t.Fatalf("round trip %q -> %s -> %s", input, v, again)
		}
	})
}

// FuzzAddSub 模糊测试加减往返
func FuzzAddSub(f *testing.F) {
	f.Add(int64(1), int64(900_000), int64(0), int64(200_000))
	f.Add(int64(-3), int64(-1), int64(7), int64(2_000_001))
	f.Add(int64(0), int64(0), int64(0), int64(0))

	f.Fuzz(func(t *testing.T, s1, u1, s2, u2 int64) {
		// 限制范围，避免秒字段溢出
		const limit = 1 << 40
		if s1 > limit || s1 < -limit || s2 > limit || s2 < -limit ||
			u1 > limit || u1 < -limit || u2 > limit || u2 < -limit {
			t.Skip()
		}
		a := xtimeval.New(s1, u1)
		b := xtimeval.New(s2, u2)
		sum := a.Add(b)
		if sum.Usec() < 0 || sum.Usec() >= xtimeval.MicrosPerSecond {
			t.Fatalf("Add usec out of range: %s", sum)
		}
		if got := sum.Sub(b); !got.Equal(a) {
			t.Fatalf("(%s + %s) - %s = %s", a, b, b, got)
		}
	})
}
