package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ringstack/ringstack/pkg/queue"
)

const (
	// defaultDebounce lets a burst of wakes (a clump of completions) settle
	// into one pass.
	defaultDebounce = 2 * time.Second

	// wakePassTimeout bounds a wake-triggered pass independently of the
	// listener's lifetime context.
	wakePassTimeout = 2 * time.Minute
)

// QueueWaker runs a gated queue pass. *queue.Processor satisfies it.
type QueueWaker interface {
	ProcessSmart(ctx context.Context) (queue.PassResult, error)
}

// WakeListener holds a dedicated Postgres connection LISTENing on the wake
// channel and turns bursts of wakes into single queue passes. Losing the
// connection degrades the replica to cron-only processing until reconnect.
type WakeListener struct {
	connString string
	processor  QueueWaker
	debounce   time.Duration
	logger     *slog.Logger

	connMu sync.Mutex
	conn   *pgx.Conn // Dedicated connection for LISTEN

	// wakes coalesces pending notifications: capacity 1, so any burst
	// collapses into a single pending signal.
	wakes chan struct{}

	// cancelLoops and wg coordinate graceful shutdown of the receive and
	// dispatch loops.
	cancelLoops context.CancelFunc
	wg          sync.WaitGroup
}

// NewWakeListener creates a listener. connString must be the base connection
// string; LISTEN/NOTIFY is database-level, not schema-level.
func NewWakeListener(connString string, processor QueueWaker) *WakeListener {
	if connString == "" {
		panic("events.NewWakeListener: connString is required")
	}
	if processor == nil {
		panic("events.NewWakeListener: processor is required")
	}
	return &WakeListener{
		connString: connString,
		processor:  processor,
		debounce:   defaultDebounce,
		logger:     slog.With("component", "wake_listener"),
		wakes:      make(chan struct{}, 1),
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving
// wakes. The receive loop is the sole goroutine that touches the pgx
// connection.
func (l *WakeListener) Start(ctx context.Context) error {
	conn, err := l.connect(ctx)
	if err != nil {
		return err
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoops = cancel
	l.wg.Add(2)
	go func() {
		defer l.wg.Done()
		l.receiveLoop(loopCtx)
	}()
	go func() {
		defer l.wg.Done()
		l.dispatchLoop(loopCtx)
	}()

	l.logger.Info("Wake listener started", "channel", WakeChannel)
	return nil
}

// Stop signals both loops to exit, waits for them, then closes the LISTEN
// connection. Waiting first prevents a race between WaitForNotification and
// conn.Close.
func (l *WakeListener) Stop(ctx context.Context) {
	if l.cancelLoops != nil {
		l.cancelLoops()
	}
	l.wg.Wait()

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

// connect opens a connection and subscribes it to the wake channel.
func (l *WakeListener) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{WakeChannel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("LISTEN %s failed: %w", WakeChannel, err)
	}
	return conn, nil
}

// receiveLoop blocks on notifications and flips the pending-wake signal.
func (l *WakeListener) receiveLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return // Shutting down
			}
			l.logger.Error("Wake receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.logger.Debug("Queue wake received", "payload", notification.Payload)
		l.signalWake()
	}
}

// dispatchLoop waits for a pending wake, lets the burst settle, then runs a
// single gated pass.
func (l *WakeListener) dispatchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wakes:
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.debounce):
		}

		// Anything that arrived during the debounce window is covered by the
		// pass we're about to run.
		select {
		case <-l.wakes:
		default:
		}

		passCtx, cancel := context.WithTimeout(ctx, wakePassTimeout)
		result, err := l.processor.ProcessSmart(passCtx)
		cancel()
		if err != nil {
			l.logger.Error("Wake-triggered pass failed", "error", err)
			continue
		}
		if result.Skipped {
			l.logger.Debug("Wake-triggered pass skipped", "reason", result.SkipReason)
			continue
		}
		l.logger.Info("Wake-triggered pass finished",
			"dispatched", result.Dispatched,
			"failed", result.Failed,
			"duration", result.Duration)
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff,
// then signals a wake: notifications were lost while down, so one catch-up
// pass covers whatever happened in the gap.
func (l *WakeListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	if l.conn != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = l.conn.Close(closeCtx)
		cancel()
		l.conn = nil
	}
	l.connMu.Unlock()

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := l.connect(ctx)
		if err != nil {
			l.logger.Error("Wake listener reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.connMu.Lock()
		l.conn = conn
		l.connMu.Unlock()

		l.logger.Info("Wake listener reconnected")
		l.signalWake()
		return
	}
}

func (l *WakeListener) signalWake() {
	select {
	case l.wakes <- struct{}{}:
	default: // A wake is already pending; bursts coalesce here.
	}
}
