package xtimeval_test

import (
	"testing"

	"github.com/omeyang/xpc/pkg/util/xtimeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantSec   int64
		wantUsec  int64
		wantValid bool
	}{
		{"half", "5.5", 5, 500_000, true},
		{"full_precision", "1234567890.012345", 1234567890, 12345, true},
		{"zero", "0.000000", 0, 0, true},
		{"integer_only", "42", 42, 0, true},
		{"trailing_dot", "42.", 42, 0, true},
		{"short_fraction", "1.05", 1, 50_000, true},
		{"long_fraction_truncates", "1.1234567", 1, 123_456, true},
		{"long_fraction_no_rounding", "1.9999999", 1, 999_999, true},
		{"surrounding_space", "  3.25\n", 3, 250_000, true},
		{"plus_sign", "+7.1", 7, 100_000, true},
		{"negative_seconds", "-1.5", 0, 500_000, false},
		{"negative_zero", "-0.5", 0, 500_000, true},
		{"negative_non_numeric", "-abc.5", 0, 500_000, false},
		{"non_numeric_seconds", "abc.25", 0, 250_000, false},
		{"missing_seconds", ".5", 0, 500_000, false},
		{"empty", "", 0, 0, false},
		{"bad_fraction", "3.x", 3, 0, false},
		{"fraction_with_sign", "3.-5", 3, 0, false},
		{"overflow_seconds", "99999999999999999999.0", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := xtimeval.Parse(tt.input)
			assert.Equal(t, tt.wantSec, v.Sec(), "sec")
			assert.Equal(t, tt.wantUsec, v.Usec(), "usec")
			assert.Equal(t, tt.wantValid, v.Valid(), "valid")
		})
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	v, err := xtimeval.ParseStrict("5.5")
	require.NoError(t, err)
	assert.Equal(t, "5.500000", v.String())

	_, err = xtimeval.ParseStrict("-5.5")
	require.ErrorIs(t, err, xtimeval.ErrNegativeSeconds)

	// 只有解析出的秒数为负才拒绝，"-0" 等于 0
	v, err = xtimeval.ParseStrict("-0.5")
	require.NoError(t, err)
	assert.Equal(t, "0.500000", v.String())

	_, err = xtimeval.ParseStrict("-abc")
	require.ErrorIs(t, err, xtimeval.ErrMalformed)
	require.NotErrorIs(t, err, xtimeval.ErrNegativeSeconds)

	_, err = xtimeval.ParseStrict("five")
	require.ErrorIs(t, err, xtimeval.ErrMalformed)

	_, err = xtimeval.ParseStrict("5.five")
	require.ErrorIs(t, err, xtimeval.ErrMalformed)

	// 整数部分错误优先于小数部分错误
	_, err = xtimeval.ParseStrict("-5.five")
	require.ErrorIs(t, err, xtimeval.ErrNegativeSeconds)

	bad, err := xtimeval.ParseStrict("nope")
	require.Error(t, err)
	assert.True(t, bad.IsZero())
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.000002", xtimeval.MustParse("1.000002").String())
	assert.Panics(t, func() { xtimeval.MustParse("-1") })
}

func TestStringParseRoundTrip(t *testing.T) {
	t.Parallel()

	values := []xtimeval.TimeValue{
		xtimeval.New(0, 0),
		xtimeval.New(0, 1),
		xtimeval.New(5, 500_000),
		xtimeval.New(1_700_000_000, 999_999),
		xtimeval.New(9_223_372_036, 854_775),
	}

	for _, v := range values {
		got := xtimeval.Parse(v.String())
		require.True(t, got.Valid(), v.String())
		assert.True(t, got.Equal(v), "%s -> %s", v, got)
	}
}
