package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "CredLane/api/v1"
)

func TestCallSuccessRecordsSuccess(t *testing.T) {
	cb, _ := newTestBreaker(2, time.Minute)
	cb.RecordFailure()

	calls := 0
	out, err := Call(context.Background(), cb, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, calls)

	// the success reset the pre-existing failure, so one more failure
	// stays below threshold 2
	cb.RecordFailure()
	assert.True(t, cb.IsAvailable())
}

func TestCallTransientFailureFeedsBreaker(t *testing.T) {
	cb, _ := newTestBreaker(1, time.Minute)

	_, err := Call(context.Background(), cb, func(ctx context.Context) (string, error) {
		return "", v1.ErrorInternal("db down")
	})
	require.Error(t, err)
	assert.False(t, cb.IsAvailable(), "single transient failure trips threshold 1")
}

func TestCallBusinessRejectionLeavesBreakerBlind(t *testing.T) {
	cb, _ := newTestBreaker(1, time.Minute)

	for i := 0; i < 10; i++ {
		_, err := Call(context.Background(), cb, func(ctx context.Context) (string, error) {
			return "", v1.ErrorInvalidCredentials("wrong password")
		})
		require.Error(t, err)
	}
	assert.True(t, cb.IsAvailable(), "a burst of bad passwords must not open the circuit")
}

func TestCallFastFailsWhileOpen(t *testing.T) {
	cb, _ := newTestBreaker(1, time.Minute)
	cb.RecordFailure()
	require.False(t, cb.IsAvailable())

	calls := 0
	_, err := Call(context.Background(), cb, func(ctx context.Context) (string, error) {
		calls++
		return "", nil
	})
	require.Error(t, err)
	assert.True(t, IsCircuitOpen(err))
	assert.Equal(t, 0, calls, "downstream must not be attempted while open")
}

func TestCallCircuitOpenErrorIsDistinct(t *testing.T) {
	assert.True(t, IsCircuitOpen(ErrCircuitOpen()))
	assert.False(t, IsCircuitOpen(v1.ErrorInternal("db down")))
}

func TestCallAbandonedCallRecordsNothing(t *testing.T) {
	cb, _ := newTestBreaker(1, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := Call(ctx, cb, func(ctx context.Context) (string, error) {
		cancel()
		return "", context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, cb.IsAvailable(), "an abandoned call never resolved and must not count as a failure")
}

func TestCallProbeSuccessClosesCircuit(t *testing.T) {
	cb, clock := newTestBreaker(1, 30*time.Second)
	cb.RecordFailure()
	require.False(t, cb.IsAvailable())

	clock.Advance(30 * time.Second)

	out, err := Call(context.Background(), cb, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.True(t, cb.IsAvailable())

	// fully closed: the next failure starts a fresh streak and window
	cb.RecordFailure()
	assert.False(t, cb.IsAvailable())
	clock.Advance(30 * time.Second)
	assert.True(t, cb.IsAvailable())
}
