package mutation

import (
	"errors"
	"sync"
)

// State of a single tracked mutation.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateError   State = "error"
)

var ErrInvalidTransition = errors.New("invalid mutation state transition")

// Tracker is an explicit state machine for one mutation:
// idle -> pending -> success|error, and back to idle via Reset.
// It replaces ad hoc boolean in-flight flags around write requests.
type Tracker struct {
	mu      sync.Mutex
	state   State
	lastErr string
}

func NewTracker() *Tracker {
	return &Tracker{state: StateIdle}
}

// Begin moves idle -> pending. A mutation already in flight is refused.
func (t *Tracker) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StatePending {
		return ErrInvalidTransition
	}
	t.state = StatePending
	t.lastErr = ""
	return nil
}

// Succeed moves pending -> success.
func (t *Tracker) Succeed() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return ErrInvalidTransition
	}
	t.state = StateSuccess
	return nil
}

// Fail moves pending -> error and records the failure message.
func (t *Tracker) Fail(message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return ErrInvalidTransition
	}
	t.state = StateError
	t.lastErr = message
	return nil
}

// Reset returns the tracker to idle from any terminal state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		t.state = StateIdle
		t.lastErr = ""
	}
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// LastError returns the message recorded by the most recent Fail.
func (t *Tracker) LastError() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
