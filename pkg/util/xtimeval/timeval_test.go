package xtimeval_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/omeyang/xpc/pkg/util/xtimeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sec      int64
		usec     int64
		wantSec  int64
		wantUsec int64
	}{
		{"zero", 0, 0, 0, 0},
		{"in_range", 3, 999_999, 3, 999_999},
		{"carry_one", 1, 1_000_000, 2, 0},
		{"carry_many", 1, 3_250_000, 4, 250_000},
		{"borrow_one", 2, -1, 1, 999_999},
		{"borrow_many", 0, -2_500_000, -3, 500_000},
		{"negative_seconds", -1, 500_000, -1, 500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := xtimeval.New(tt.sec, tt.usec)
			assert.Equal(t, tt.wantSec, v.Sec())
			assert.Equal(t, tt.wantUsec, v.Usec())
			assert.True(t, v.Valid())
		})
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var v xtimeval.TimeValue
	assert.True(t, v.Valid())
	assert.True(t, v.IsZero())
	assert.Equal(t, "0.000000", v.String())
	assert.Zero(t, v.Seconds())
}

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("carry", func(t *testing.T) {
		t.Parallel()
		got := xtimeval.New(1, 900_000).Add(xtimeval.New(0, 200_000))
		assert.Equal(t, int64(2), got.Sec())
		assert.Equal(t, int64(100_000), got.Usec())
	})

	t.Run("no_carry", func(t *testing.T) {
		t.Parallel()
		got := xtimeval.New(10, 1).Add(xtimeval.New(5, 2))
		assert.Equal(t, "15.000003", got.String())
	})

	t.Run("exact_boundary", func(t *testing.T) {
		t.Parallel()
		got := xtimeval.New(0, 500_000).Add(xtimeval.New(0, 500_000))
		assert.Equal(t, "1.000000", got.String())
	})

	t.Run("invalid_propagates", func(t *testing.T) {
		t.Parallel()
		bad := xtimeval.Parse("-1.0")
		require.False(t, bad.Valid())
		assert.False(t, xtimeval.New(1, 0).Add(bad).Valid())
	})
}

func TestSub(t *testing.T) {
	t.Parallel()

	t.Run("borrow", func(t *testing.T) {
		t.Parallel()
		got := xtimeval.New(2, 100_000).Sub(xtimeval.New(0, 200_000))
		assert.Equal(t, int64(1), got.Sec())
		assert.Equal(t, int64(900_000), got.Usec())
	})

	t.Run("reversed_operands_flip_sign", func(t *testing.T) {
		t.Parallel()
		later := xtimeval.New(5, 250_000)
		earlier := xtimeval.New(3, 500_000)

		forward := later.Sub(earlier)
		backward := earlier.Sub(later)
		assert.Equal(t, "1.750000", forward.String())
		assert.Equal(t, int64(-2), backward.Sec())
		assert.Equal(t, int64(250_000), backward.Usec())
		assert.InDelta(t, -forward.Seconds(), backward.Seconds(), 1e-9)
	})

	t.Run("self_is_zero", func(t *testing.T) {
		t.Parallel()
		v := xtimeval.New(42, 123_456)
		assert.True(t, v.Sub(v).IsZero())
	})
}

func TestAddSubRoundTrip(t *testing.T) {
	t.Parallel()

	values := []xtimeval.TimeValue{
		xtimeval.New(0, 0),
		xtimeval.New(0, 999_999),
		xtimeval.New(1, 1),
		xtimeval.New(1_700_000_000, 654_321),
		xtimeval.New(-5, 500_000),
		xtimeval.New(123, 0),
	}

	for _, a := range values {
		for _, b := range values {
			got := a.Add(b).Sub(b)
			assert.True(t, got.Equal(a), "(%s + %s) - %s = %s", a, b, b, got)
		}
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	values := []xtimeval.TimeValue{
		xtimeval.New(-1, 0),
		xtimeval.New(0, 0),
		xtimeval.New(0, 1),
		xtimeval.New(1, 0),
		xtimeval.New(1, 999_999),
		xtimeval.New(2, 0),
	}

	for i, a := range values {
		for j, b := range values {
			holds := 0
			if a.Less(b) {
				holds++
			}
			if a.Equal(b) {
				holds++
			}
			if b.Less(a) {
				holds++
			}
			assert.Equal(t, 1, holds, "exactly one relation must hold for %s and %s", a, b)

			switch {
			case i < j:
				assert.True(t, a.Less(b))
				assert.True(t, a.LessOrEqual(b))
				assert.False(t, a.GreaterOrEqual(b))
				assert.Equal(t, -1, a.Compare(b))
			case i > j:
				assert.True(t, a.Greater(b))
				assert.True(t, a.GreaterOrEqual(b))
				assert.False(t, a.LessOrEqual(b))
				assert.Equal(t, 1, a.Compare(b))
			default:
				assert.True(t, a.Equal(b))
				assert.True(t, a.LessOrEqual(b))
				assert.True(t, a.GreaterOrEqual(b))
				assert.Equal(t, 0, a.Compare(b))
			}
		}
	}
}

func TestEqual_IgnoresValidity(t *testing.T) {
	t.Parallel()

	bad := xtimeval.Parse("x.5")
	require.False(t, bad.Valid())
	assert.True(t, bad.Equal(xtimeval.New(0, 500_000)))
}

func TestDiff(t *testing.T) {
	t.Parallel()

	later := xtimeval.New(10, 250_000)
	earlier := xtimeval.New(8, 750_000)
	assert.InDelta(t, 1.5, later.Diff(earlier), 1e-9)
	assert.InDelta(t, -1.5, earlier.Diff(later), 1e-9)
	assert.InDelta(t, later.Sub(earlier).Seconds(), later.Diff(earlier), 1e-9)
}

func TestSeconds(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.5, xtimeval.New(5, 500_000).Seconds(), 1e-12)
	assert.InDelta(t, -0.5, xtimeval.New(-1, 500_000).Seconds(), 1e-12)
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    xtimeval.TimeValue
		want string
	}{
		{xtimeval.New(0, 0), "0.000000"},
		{xtimeval.New(1234567890, 12345), "1234567890.012345"},
		{xtimeval.New(7, 1), "7.000001"},
		{xtimeval.New(-2, 500_000), "-2.500000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestTimeConversions(t *testing.T) {
	t.Parallel()

	t.Run("time_round_trip_truncates_to_micros", func(t *testing.T) {
		t.Parallel()
		src := time.Unix(1_700_000_000, 123_456_789)
		v := xtimeval.FromTime(src)
		assert.Equal(t, int64(1_700_000_000), v.Sec())
		assert.Equal(t, int64(123_456), v.Usec())
		assert.True(t, v.Time().Equal(time.Unix(1_700_000_000, 123_456_000)))
	})

	t.Run("duration", func(t *testing.T) {
		t.Parallel()
		v := xtimeval.FromDuration(1500 * time.Millisecond)
		assert.Equal(t, "1.500000", v.String())
		assert.Equal(t, 1500*time.Millisecond, v.Duration())
	})

	t.Run("negative_duration", func(t *testing.T) {
		t.Parallel()
		v := xtimeval.FromDuration(-250 * time.Millisecond)
		assert.Equal(t, int64(-1), v.Sec())
		assert.Equal(t, int64(750_000), v.Usec())
		assert.Equal(t, -250*time.Millisecond, v.Duration())
	})
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	type payload struct {
		At xtimeval.TimeValue `json:"at"`
	}

	data, err := json.Marshal(payload{At: xtimeval.New(12, 34)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"12.000034"}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.At.Equal(xtimeval.New(12, 34)))

	err = json.Unmarshal([]byte(`{"at":"-3.0"}`), &got)
	require.ErrorIs(t, err, xtimeval.ErrNegativeSeconds)
}
