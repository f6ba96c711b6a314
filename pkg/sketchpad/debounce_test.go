package sketchpad_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	fired := make(chan struct{}, 4)
	d := sketchpad.NewDebouncer(20*time.Millisecond, func() {
		calls.Add(1)
		fired <- struct{}{}
	})

	for i := 0; i < 5; i++ {
		d.Trigger()
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("debounced function never ran")
	}
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one call, got %d", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	var calls atomic.Int32
	d := sketchpad.NewDebouncer(10*time.Millisecond, func() { calls.Add(1) })
	d.Trigger()
	d.Stop()
	d.Trigger()

	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("expected no calls after stop, got %d", got)
	}
}
