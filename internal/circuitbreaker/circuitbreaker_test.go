package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

func testConfig() Config {
	return Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          20 * time.Millisecond,
		Name:             "test-breaker",
	}
}

func TestExecuteSuccessStaysClosed(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.True(t, cb.GetStats().IsHealthy)
}

func TestOpensAfterFailureThreshold(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errStore })
		assert.ErrorIs(t, err, errStore)
	}

	assert.Equal(t, StateOpen, cb.State())

	// Calls are rejected without reaching the wrapped function.
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestHalfOpenAfterTimeout(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errStore })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(25 * time.Millisecond)

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())
}

func TestClosesAfterSuccessThreshold(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errStore })
	}
	time.Sleep(25 * time.Millisecond)

	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))

	assert.Equal(t, StateClosed, cb.State())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errStore })
	}
	time.Sleep(25 * time.Millisecond)

	err := cb.Execute(func() error { return errStore })
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, StateOpen, cb.State())
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig())

	_ = cb.Execute(func() error { return errStore })
	_ = cb.Execute(func() error { return errStore })
	require.NoError(t, cb.Execute(func() error { return nil }))

	// Two earlier failures no longer count toward the threshold.
	_ = cb.Execute(func() error { return errStore })
	_ = cb.Execute(func() error { return errStore })
	assert.Equal(t, StateClosed, cb.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestGetStats(t *testing.T) {
	cb := New(testConfig())

	_ = cb.Execute(func() error { return errStore })

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
	assert.True(t, stats.IsHealthy)
}
