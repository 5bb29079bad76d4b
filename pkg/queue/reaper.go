package queue

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/config"
)

// sweepTimeout bounds one reaper sweep end to end.
const sweepTimeout = 2 * time.Minute

// Reaper is the background janitor: it frees concurrency slots whose calls
// died without a completion webhook, settles queue items stuck in
// processing, and prunes stale in-flight attributions. Every replica runs
// one; the work is idempotent so overlap between replicas is harmless.
type Reaper struct {
	slots     *concurrency.Manager
	items     *Service
	inflight  *InflightIndex
	processor *Processor
	reapAfter time.Duration
	interval  time.Duration
	logger    *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReaper creates a Reaper from the queue configuration.
func NewReaper(slots *concurrency.Manager, items *Service, inflight *InflightIndex, processor *Processor, cfg *config.QueueConfig) *Reaper {
	if slots == nil {
		panic("queue.NewReaper: slot manager is required")
	}
	if items == nil {
		panic("queue.NewReaper: item service is required")
	}
	if inflight == nil {
		panic("queue.NewReaper: inflight index is required")
	}
	if cfg == nil {
		panic("queue.NewReaper: config is required")
	}
	return &Reaper{
		slots:     slots,
		items:     items,
		inflight:  inflight,
		processor: processor,
		reapAfter: cfg.ReapAfter,
		interval:  cfg.ReapInterval,
		logger:    slog.With("component", "reaper"),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the background loop. A sweep runs immediately so slots
// leaked by a crashed predecessor are freed before traffic resumes.
func (r *Reaper) Start() {
	r.wg.Add(1)
	go r.run()
	r.logger.Info("Reaper started",
		"reap_after", r.reapAfter,
		"interval", r.interval)
}

// Stop halts the loop and waits for an in-progress sweep to finish.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
	r.logger.Info("Reaper stopped")
}

func (r *Reaper) run() {
	defer r.wg.Done()

	r.sweep()
	for {
		// Jitter staggers replicas so their sweeps don't all align.
		if !r.sleep(r.interval + rand.N(r.interval/10+1)) {
			return
		}
		r.sweep()
	}
}

// sleep waits for d or until Stop. Returns false when stopping.
func (r *Reaper) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-r.stopCh:
		return false
	}
}

func (r *Reaper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	res, err := r.slots.ReapStale(ctx, r.reapAfter)
	if err != nil {
		r.logger.Error("Slot reap failed", "error", err)
	} else if res.Released > 0 {
		r.logger.Warn("Reaped stale slots",
			"released", res.Released,
			"failed_calls", res.FailedCalls)
	}

	completed, failed, err := r.items.ReconcileStaleProcessing(ctx, r.reapAfter)
	if err != nil {
		r.logger.Error("Stale item reconciliation failed", "error", err)
	} else if completed+failed > 0 {
		r.logger.Info("Reconciled stale processing items",
			"completed", completed,
			"failed", failed)
	}

	if pruned := r.inflight.Sweep(r.reapAfter); pruned > 0 {
		r.logger.Debug("Pruned stale in-flight attributions", "pruned", pruned)
	}

	// Freed slots are capacity; let the processor use it right away.
	if res.Released > 0 && r.processor != nil {
		if _, err := r.processor.ProcessImmediate(ctx, ""); err != nil {
			r.logger.Warn("Post-reap processing kick failed", "error", err)
		}
	}
}
