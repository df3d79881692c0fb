package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("broker down") }

	tests := []struct {
		name      string
		cfg       circuit_breaker.Config
		fails     int
		wantState circuit_breaker.Status
	}{
		{
			name:      "stays closed below ratio",
			cfg:       circuit_breaker.Config{Window: 10, Timeout: time.Minute, FailureRatio: 0.5, RecoveryRequests: 1},
			fails:     4,
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "opens at ratio",
			cfg:       circuit_breaker.Config{Window: 10, Timeout: time.Minute, FailureRatio: 0.5, RecoveryRequests: 1},
			fails:     5,
			wantState: circuit_breaker.Open,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(tt.cfg)
			for i := 0; i < tt.cfg.Window-tt.fails; i++ {
				require.NoError(t, cb.Call(successfulService))
			}
			for i := 0; i < tt.fails; i++ {
				require.Error(t, cb.Call(failingService))
			}
			require.Equal(t, tt.wantState, cb.State())
		})
	}
}

func Test_circuitBreaker_Recovery(t *testing.T) {
	cb := circuit_breaker.New(circuit_breaker.Config{
		Window:           2,
		Timeout:          20 * time.Millisecond,
		FailureRatio:     0.5,
		RecoveryRequests: 2,
	})
	failing := func() error { return errors.New("boom") }
	called := false
	ok := func() error { called = true; return nil }

	require.Error(t, cb.Call(failing))
	require.Equal(t, circuit_breaker.Open, cb.State())

	require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	require.False(t, called)

	time.Sleep(40 * time.Millisecond)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.Closed, cb.State())

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := circuit_breaker.New(circuit_breaker.Config{
		Window:           1,
		Timeout:          10 * time.Millisecond,
		FailureRatio:     1,
		RecoveryRequests: 3,
	})
	failing := func() error { return errors.New("boom") }

	require.Error(t, cb.Call(failing))
	time.Sleep(20 * time.Millisecond)
	require.Error(t, cb.Call(failing))
	require.Equal(t, circuit_breaker.Open, cb.State())
}
