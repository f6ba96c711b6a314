package sketchpad

import (
	"context"
	"sync"
)

// Signal is a one-shot readiness gate. It settles exactly once, either
// resolved or rejected with an error.
type Signal struct {
	once sync.Once
	done chan struct{}

	mu  sync.RWMutex
	err error
}

// NewSignal returns a pending signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Resolve settles the signal successfully. It reports whether this call
// settled it.
func (s *Signal) Resolve() bool {
	return s.settle(nil)
}

// Reject settles the signal with err. It reports whether this call settled
// it.
func (s *Signal) Reject(err error) bool {
	if err == nil {
		err = ErrNotReady
	}
	return s.settle(err)
}

func (s *Signal) settle(err error) bool {
	settled := false
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.done)
		settled = true
	})
	return settled
}

// Done is closed once the signal settles.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Ready reports whether the signal resolved successfully.
func (s *Signal) Ready() bool {
	select {
	case <-s.done:
		return s.Err() == nil
	default:
		return false
	}
}

// Err returns the rejection error, or nil while pending or once resolved.
func (s *Signal) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Wait blocks until the signal settles or ctx ends.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
