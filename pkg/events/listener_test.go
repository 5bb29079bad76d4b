package events

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringstack/ringstack/pkg/queue"
)

// countingWaker counts ProcessSmart calls.
type countingWaker struct {
	calls atomic.Int32
}

func (w *countingWaker) ProcessSmart(ctx context.Context) (queue.PassResult, error) {
	w.calls.Add(1)
	return queue.PassResult{Dispatched: 1}, nil
}

// newTestListener builds a listener without a live connection so the
// dispatch loop can be exercised on its own.
func newTestListener(waker QueueWaker, debounce time.Duration) *WakeListener {
	return &WakeListener{
		connString: "unused",
		processor:  waker,
		debounce:   debounce,
		logger:     slog.Default(),
		wakes:      make(chan struct{}, 1),
	}
}

func TestDispatchLoopCoalescesBursts(t *testing.T) {
	waker := &countingWaker{}
	l := newTestListener(waker, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.dispatchLoop(ctx)
	}()

	// A burst of wakes inside one debounce window runs a single pass.
	for i := 0; i < 10; i++ {
		l.signalWake()
	}

	assert.Eventually(t, func() bool {
		return waker.calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond, "burst should coalesce into one pass")

	// The signal channel must be drained so a later wake still fires.
	l.signalWake()
	assert.Eventually(t, func() bool {
		return waker.calls.Load() == 2
	}, 2*time.Second, 10*time.Millisecond, "wake after the burst should run another pass")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch loop did not exit on cancel")
	}
}

func TestDispatchLoopStopsOnCancel(t *testing.T) {
	waker := &countingWaker{}
	l := newTestListener(waker, time.Hour) // Debounce long enough to never elapse.

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.dispatchLoop(ctx)
	}()

	l.signalWake()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch loop did not exit while debouncing")
	}
	assert.Equal(t, int32(0), waker.calls.Load())
}

func TestSignalWakeNeverBlocks(t *testing.T) {
	l := newTestListener(&countingWaker{}, time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			l.signalWake()
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("signalWake blocked with no consumer")
	}
	require.Len(t, l.wakes, 1)
}
