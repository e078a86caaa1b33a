package xrun

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xpc/pkg/observability/xlog"
)

var errTask = errors.New("task failed")

func TestGroup_AllSucceed(t *testing.T) {
	g, _ := NewGroup(context.Background())
	var n atomic.Int32
	for range 3 {
		g.Go(func(context.Context) error {
			n.Add(1)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(3), n.Load())
}

func TestGroup_ErrorCancelsOthers(t *testing.T) {
	g, ctx := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Go(func(context.Context) error { return errTask })

	require.ErrorIs(t, g.Wait(), errTask)
	assert.Error(t, ctx.Err())
}

func TestGroup_StopIsSuccess(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Go(func(context.Context) error { return ErrStop })
	require.NoError(t, g.Wait())
}

func TestGroup_CancelCause(t *testing.T) {
	cause := errors.New("shutdown requested")
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Cancel(cause)
	require.ErrorIs(t, g.Wait(), cause)
}

func TestGroup_CancelWithoutCause(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Cancel(nil)
	require.NoError(t, g.Wait())
}

func TestGroup_InternalCanceledNotFiltered(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(func(context.Context) error { return context.Canceled })
	require.ErrorIs(t, g.Wait(), context.Canceled)
}

func TestGroup_NilFuncAndContext(t *testing.T) {
	//nolint:staticcheck // 验证 nil context 兼容
	g, ctx := NewGroup(nil, nil)
	require.NotNil(t, ctx)
	assert.Same(t, ctx, g.Context())
	g.Go(nil)
	require.ErrorIs(t, g.Wait(), ErrNilFunc)
}

func TestGroup_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)

	g, _ := NewGroup(context.Background(), WithLogger(logger), WithName("jitter"))
	g.GoWithName("worker", func(context.Context) error { return errTask })
	require.ErrorIs(t, g.Wait(), errTask)

	out := buf.String()
	assert.Contains(t, out, "task starting")
	assert.Contains(t, out, "task failed")
	assert.Contains(t, out, "group=jitter")
	assert.Contains(t, out, "task=worker")
}

func TestRun_Signal(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	ctx := context.WithValue(context.Background(), testSigChanKey{}, (<-chan os.Signal)(sigCh))

	done := make(chan error, 1)
	go func() {
		done <- RunWithOptions(ctx, []Option{WithSignals(os.Interrupt)}, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
	}()
	sigCh <- syscall.SIGTERM

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrSignal)
		var sigErr *SignalError
		require.ErrorAs(t, err, &sigErr)
		assert.Equal(t, syscall.SIGTERM, sigErr.Signal)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after signal")
	}
}

func TestRun_TasksFinish(t *testing.T) {
	err := Run(context.Background(), func(context.Context) error { return ErrStop })
	require.NoError(t, err)

	err = RunWithOptions(context.Background(), []Option{WithoutSignalHandler()},
		func(context.Context) error { return nil })
	require.NoError(t, err)
}

func TestRun_ParentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.NoError(t, err)
}

func TestSignalError(t *testing.T) {
	assert.Equal(t, "xrun: received signal <nil>", (&SignalError{}).Error())
	assert.Contains(t, (&SignalError{Signal: syscall.SIGINT}).Error(), "interrupt")
	assert.Len(t, DefaultSignals(), 2)
}
