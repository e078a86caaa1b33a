package xrun

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_Count(t *testing.T) {
	n := 0
	err := Ticker(time.Millisecond, 3, func(context.Context) error {
		n++
		return nil
	})(context.Background())
	require.ErrorIs(t, err, ErrStop)
	assert.Equal(t, 3, n)
}

func TestTicker_FnError(t *testing.T) {
	err := Ticker(time.Millisecond, 0, func(context.Context) error {
		return errTask
	})(context.Background())
	require.ErrorIs(t, err, errTask)
}

func TestTicker_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Ticker(time.Hour, 0, func(context.Context) error { return nil })(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTicker_InvalidArgs(t *testing.T) {
	require.ErrorIs(t, Ticker(0, 1, func(context.Context) error { return nil })(context.Background()), ErrInvalidInterval)
	require.ErrorIs(t, Ticker(time.Millisecond, 1, nil)(context.Background()), ErrNilFunc)
}

func TestTicker_InGroup(t *testing.T) {
	n := 0
	err := RunWithOptions(context.Background(), []Option{WithoutSignalHandler()},
		Ticker(time.Millisecond, 5, func(context.Context) error {
			n++
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
