package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker unreachable")

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestBreaker(t *testing.T, threshold uint32) (*CircuitBreaker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker("events", Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     10 * time.Second,
		ReadyToTrip: ConsecutiveFailures(threshold),
	})
	cb.now = clock.Now
	cb.expiry = clock.Now().Add(cb.interval)
	return cb, clock
}

func fail() error    { return errBroker }
func succeed() error { return nil }

func TestCircuitBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(t, 3)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errBroker)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(t, 3)

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	require.NoError(t, cb.Execute(succeed))
	_ = cb.Execute(fail)

	assert.Equal(t, StateClosed, cb.State())
	counts := cb.Counts()
	assert.Equal(t, uint32(4), counts.Requests)
	assert.Equal(t, uint32(1), counts.ConsecutiveFailures)
	assert.InDelta(t, 0.75, counts.FailureRate(), 0.001)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb, clock := newTestBreaker(t, 1)

	var transitions []string
	cb.SetStateChangeCallback(func(name string, from, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	})

	_ = cb.Execute(fail)
	require.Equal(t, StateOpen, cb.State())

	clock.Advance(11 * time.Second)
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(succeed))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock := newTestBreaker(t, 1)

	_ = cb.Execute(fail)
	clock.Advance(11 * time.Second)

	assert.ErrorIs(t, cb.Execute(fail), errBroker)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IntervalResetsCounts(t *testing.T) {
	cb, clock := newTestBreaker(t, 3)

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	clock.Advance(2 * time.Minute)
	_ = cb.Execute(fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_ExecuteContextCanceled(t *testing.T) {
	cb, _ := newTestBreaker(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cb.ExecuteContext(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, cb.Counts().Requests)
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker("defaults", Config{})
	assert.Equal(t, "defaults", cb.Name())
	assert.Equal(t, uint32(1), cb.maxRequests)
	assert.Equal(t, 30*time.Second, cb.timeout)

	for i := 0; i < 4; i++ {
		_ = cb.Execute(fail)
	}
	assert.Equal(t, StateClosed, cb.State())
	_ = cb.Execute(fail)
	assert.Equal(t, StateOpen, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
