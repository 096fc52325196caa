package wait

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPoller_ImmediateSuccess(t *testing.T) {
	calls := 0
	err := New(time.Second, 10*time.Millisecond).UntilDone(func(context.Context) (bool, error) {
		calls++
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPoller_EventualSuccess(t *testing.T) {
	calls := 0
	err := New(time.Second, time.Millisecond).UntilDone(func(context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPoller_TimeoutKeepsLastError(t *testing.T) {
	boom := errors.New("element detached")
	err := New(20*time.Millisecond, 5*time.Millisecond).UntilDone(func(context.Context) (bool, error) {
		return false, boom
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, err.Error(), "element detached")
}

func TestPoller_TimeoutWithoutError(t *testing.T) {
	err := New(20*time.Millisecond, 5*time.Millisecond).UntilDone(func(context.Context) (bool, error) {
		return false, nil
	})
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestPoller_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(time.Second, 5*time.Millisecond).Until(ctx, func(context.Context) (bool, error) {
		return false, nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPoller_BoundContextStopsUntilDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(time.Second, 5*time.Millisecond).WithContext(ctx)

	calls := 0
	start := time.Now()
	err := p.UntilDone(func(context.Context) (bool, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return false, nil
	})

	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, ctx, p.Context())
}

func TestPoller_DefaultsToBackgroundContext(t *testing.T) {
	p := New(time.Second, time.Millisecond)
	assert.NoError(t, p.Context().Err())
	assert.Nil(t, p.Context().Done())
}

func TestPoller_RejectsZeroInterval(t *testing.T) {
	err := New(time.Second, 0).UntilDone(func(context.Context) (bool, error) { return true, nil })
	assert.Error(t, err)
}

func TestPoller_Idempotent(t *testing.T) {
	p := New(50*time.Millisecond, 5*time.Millisecond)
	cond := func(context.Context) (bool, error) { return true, nil }

	for i := 0; i < 5; i++ {
		assert.NoError(t, p.UntilDone(cond))
	}
}
