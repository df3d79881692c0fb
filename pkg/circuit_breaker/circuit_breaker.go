package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

var ErrOpenCB = errors.New("circuit breaker is open")

type Config struct {
	// Window is the number of most recent calls tracked.
	Window int
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// FailureRatio of the window that opens the breaker.
	FailureRatio float64
	// RecoveryRequests is the number of consecutive successes in half-open needed to close.
	RecoveryRequests int
}

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	cfg   Config
	state Status

	openedAt time.Time
	// ring of outcomes, true means failed
	outcomes []bool
	pos      int
	// successes seen since entering half-open
	probes int
}

func New(cfg Config) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	return &circuitBreaker{
		cfg:      cfg,
		state:    Closed,
		outcomes: make([]bool, cfg.Window),
	}
}

func (cb *circuitBreaker) Call(service func() error) error {
	if !cb.allow() {
		return ErrOpenCB
	}

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Open {
		return true
	}
	if time.Since(cb.openedAt) <= cb.cfg.Timeout {
		return false
	}
	cb.state = HalfOpen
	cb.probes = 0
	return true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.outcomes[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.outcomes)

	if cb.state == HalfOpen {
		if failed {
			cb.trip()
			return
		}
		cb.probes++
		if cb.probes >= cb.cfg.RecoveryRequests {
			cb.reset()
		}
		return
	}

	fails := 0
	for _, f := range cb.outcomes {
		if f {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.outcomes)) >= cb.cfg.FailureRatio {
		cb.trip()
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.probes = 0
	cb.openedAt = time.Now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.outcomes {
		cb.outcomes[i] = false
	}
	cb.probes = 0
	cb.pos = 0
	cb.state = Closed
}
