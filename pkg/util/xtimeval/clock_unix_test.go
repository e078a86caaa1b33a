//go:build unix

package xtimeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// 替换包级 gettimeofday，不可并行。
func withGettimeofday(t *testing.T, fn func(*unix.Timeval) error) {
	t.Helper()
	orig := gettimeofday
	gettimeofday = fn
	t.Cleanup(func() { gettimeofday = orig })
}

func TestReadClock_Failure(t *testing.T) {
	withGettimeofday(t, func(*unix.Timeval) error { return unix.EFAULT })

	v, err := readClock()
	require.ErrorIs(t, err, ErrClockUnavailable)
	require.ErrorIs(t, err, unix.EFAULT)
	assert.False(t, v.Valid())

	now := Now()
	assert.False(t, now.Valid())
	assert.True(t, now.IsZero())

	assert.Zero(t, New(1, 0).Elapsed())
}

func TestReadClock_Normalizes(t *testing.T) {
	withGettimeofday(t, func(tv *unix.Timeval) error {
		tv.Sec = 10
		tv.Usec = 1_500_000
		return nil
	})

	v, err := readClock()
	require.NoError(t, err)
	assert.Equal(t, int64(11), v.sec)
	assert.Equal(t, int64(500_000), v.usec)
	assert.True(t, v.Valid())
}
