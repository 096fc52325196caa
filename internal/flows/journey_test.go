package flows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/automationexercise/storefront-e2e/internal/wait"
)

func TestStepNumbersAndRecordsResults(t *testing.T) {
	j := NewJourney("TC0", Env{Logger: zaptest.NewLogger(t)})
	boom := errors.New("boom")

	require.NoError(t, j.Step("first", func() error { return nil }))
	err := j.Step("second", func() error { return boom })

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `step 2 "second"`)

	steps := j.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].Number)
	assert.True(t, steps[0].Passed)
	assert.Equal(t, "second", steps[1].Label)
	assert.False(t, steps[1].Passed)
	assert.Equal(t, "boom", steps[1].Error)
}

func TestSequenceStopsAtFirstFailure(t *testing.T) {
	j := NewJourney("TC0", Env{})
	var ran []string

	err := j.sequence(
		step("a", func() error { ran = append(ran, "a"); return nil }),
		step("b", func() error { ran = append(ran, "b"); return errors.New("no") }),
		step("c", func() error { ran = append(ran, "c"); return nil }),
	)

	assert.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, ran)
	assert.Len(t, j.Steps(), 2)
}

func TestCleanupRunsEveryTeardownInReverse(t *testing.T) {
	j := NewJourney("TC0", Env{Logger: zaptest.NewLogger(t)})
	var order []string
	first := errors.New("first failed")
	third := errors.New("third failed")

	j.Defer("first", func() error { order = append(order, "first"); return first })
	j.Defer("second", func() error { order = append(order, "second"); return nil })
	j.Defer("third", func() error { order = append(order, "third"); return third })

	err := j.Cleanup()
	assert.Equal(t, []string{"third", "second", "first"}, order)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, third)

	order = nil
	assert.NoError(t, j.Cleanup(), "teardowns run once")
	assert.Empty(t, order)
}

func TestRunCleansUpOnEveryExitPath(t *testing.T) {
	tests := []struct {
		name    string
		flow    Flow
		wantErr string
	}{
		{"success", func(*Journey) error { return nil }, ""},
		{"failure", func(*Journey) error { return errors.New("assertion") }, "assertion"},
		{"panic", func(*Journey) error { panic("kaboom") }, "flow panicked: kaboom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJourney("TC0", Env{})
			cleaned := false
			j.Defer("release", func() error { cleaned = true; return nil })

			err := j.Run(tt.flow)
			assert.True(t, cleaned)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunReportsFailureBeforeCleanup(t *testing.T) {
	var events []string
	j := NewJourney("TC7", Env{
		OnFailure: func(caseID string, err error) {
			events = append(events, "failure "+caseID+": "+err.Error())
		},
	})
	j.Defer("release", func() error { events = append(events, "cleanup"); return nil })

	err := j.Run(func(*Journey) error { return errors.New("wrong title") })

	require.Error(t, err)
	assert.Equal(t, []string{"failure TC7: wrong title", "cleanup"}, events)
}

func TestRunSkipsFailureHookOnSuccess(t *testing.T) {
	called := false
	j := NewJourney("TC7", Env{OnFailure: func(string, error) { called = true }})

	require.NoError(t, j.Run(func(*Journey) error { return nil }))
	assert.False(t, called)
}

func TestCancelledJourneySkipsStepsButCleansUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	j := NewJourney("TC2", Env{
		Context: ctx,
		Poller:  wait.New(time.Second, time.Millisecond),
		Logger:  zaptest.NewLogger(t),
	})

	var ran []string
	var cleanupErr error
	j.Defer("delete account", func() error {
		ran = append(ran, "cleanup")
		cleanupErr = j.Poller.UntilDone(func(context.Context) (bool, error) { return true, nil })
		return cleanupErr
	})

	start := time.Now()
	err := j.Run(func(j *Journey) error {
		if err := j.Step("first", func() error { ran = append(ran, "first"); return nil }); err != nil {
			return err
		}
		cancel()
		if err := j.Step("wait for title", func() error {
			return j.Poller.UntilDone(func(context.Context) (bool, error) { return false, nil })
		}); err != nil {
			return err
		}
		ran = append(ran, "unreachable")
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, []string{"first", "cleanup"}, ran)
	assert.NoError(t, cleanupErr, "teardown waits ignore the cancelled context")

	steps := j.Steps()
	require.Len(t, steps, 2)
	assert.False(t, steps[1].Passed)
	assert.Equal(t, context.Canceled.Error(), steps[1].Error)
}

func TestNewJourneyBindsWaitsToContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	j := NewJourney("TC0", Env{Context: ctx, Poller: wait.New(time.Second, time.Millisecond)})
	assert.Equal(t, ctx, j.Poller.Context())

	j = NewJourney("TC0", Env{})
	require.NotNil(t, j.Context)
	assert.NoError(t, j.Context.Err())
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"Login Tester", "Login", "Tester"},
		{"Cher", "Cher", "Test"},
		{"", "Test", "Test"},
		{"Mary Jane Watson", "Mary", "Jane"},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}

func TestSelect(t *testing.T) {
	assert.Len(t, Select(), len(Suite()))

	cases := Select("tc9", " TC2 ", "missing")
	require.Len(t, cases, 2)
	assert.Equal(t, "TC2", cases[0].ID, "suite order is kept")
	assert.Equal(t, "TC9", cases[1].ID)

	seen := map[string]bool{}
	for _, c := range Suite() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotNil(t, c.Run, c.ID)
		assert.NotEmpty(t, c.Title, c.ID)
	}
}
