package sketchpad_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

func TestSignalResolvesOnce(t *testing.T) {
	s := sketchpad.NewSignal()
	if s.Ready() {
		t.Fatalf("new signal should be pending")
	}
	if !s.Resolve() {
		t.Fatalf("first resolve should settle the signal")
	}
	if s.Resolve() || s.Reject(errors.New("late")) {
		t.Fatalf("signal settled twice")
	}
	if !s.Ready() || s.Err() != nil {
		t.Fatalf("expected resolved signal, err=%v", s.Err())
	}
	if err := s.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestSignalReject(t *testing.T) {
	s := sketchpad.NewSignal()
	cause := errors.New("fetch failed")
	s.Reject(cause)

	if s.Ready() {
		t.Fatalf("rejected signal must not be ready")
	}
	if err := s.Wait(context.Background()); !errors.Is(err, cause) {
		t.Fatalf("expected rejection cause, got %v", err)
	}
	select {
	case <-s.Done():
	default:
		t.Fatalf("done channel should be closed")
	}
}

func TestSignalWaitHonoursContext(t *testing.T) {
	s := sketchpad.NewSignal()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := s.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
