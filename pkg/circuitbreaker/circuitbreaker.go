package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned when the breaker rejects a call without executing it.
var ErrOpen = errors.New("circuit breaker is open")

// State of the breaker.
type State int

const (
	StateClosed   State = iota // normal operation, calls pass through
	StateOpen                  // upstream considered down, calls rejected
	StateHalfOpen              // probing: a limited number of calls allowed
)

// Config controls state transitions.
type Config struct {
	// Consecutive failures before the breaker opens.
	FailureThreshold int
	// Successes in half-open state before the breaker closes again.
	SuccessThreshold int
	// How long the breaker stays open before probing.
	OpenTimeout time.Duration
	// Max in-flight probes while half-open.
	HalfOpenMaxCalls int
}

// DefaultConfig matches what we run in front of the OpenAI API.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxCalls: 3,
	}
}

// Breaker wraps calls to a flaky upstream and fails fast while it is down.
type Breaker struct {
	cfg Config

	mu            sync.Mutex
	state         State
	failures      int
	successes     int
	halfOpenCalls int
	openedAt      time.Time
}

func New(cfg Config) *Breaker {
	return &Breaker{cfg: cfg, state: StateClosed}
}

// Execute runs fn unless the breaker is open. The error from fn is returned
// unchanged; ErrOpen is returned when the call was never made.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	b.record(err == nil)
	return err
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Reset forces the breaker back to closed.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
	b.halfOpenCalls = 0
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && time.Since(b.openedAt) >= b.cfg.OpenTimeout {
		b.state = StateHalfOpen
		b.successes = 0
		b.halfOpenCalls = 0
	}

	switch b.state {
	case StateOpen:
		return ErrOpen
	case StateHalfOpen:
		if b.halfOpenCalls >= b.cfg.HalfOpenMaxCalls {
			return ErrOpen
		}
		b.halfOpenCalls++
	}
	return nil
}

func (b *Breaker) record(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !ok {
		b.failures++
		// a failed probe reopens immediately
		if b.state == StateHalfOpen || b.failures >= b.cfg.FailureThreshold {
			b.open()
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.successes++
		b.halfOpenCalls--
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = StateClosed
		}
	}
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.openedAt = time.Now()
	b.halfOpenCalls = 0
	b.successes = 0
	b.failures = 0
}
