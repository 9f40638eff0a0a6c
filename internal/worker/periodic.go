package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task runs one batch and reports how many items it handled.
type Task func(ctx context.Context) (int, error)

// Periodic runs a Task on a fixed interval until stopped. A tick that lands
// while the previous batch is still running is dropped by the ticker.
type Periodic struct {
	name     string
	interval time.Duration
	task     Task
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	done    chan struct{}
}

func NewPeriodic(name string, interval time.Duration, task Task, logger *slog.Logger) *Periodic {
	if logger == nil {
		logger = slog.Default()
	}
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger.With("worker", name),
	}
}

func (p *Periodic) Name() string {
	return p.name
}

// Start launches the loop in its own goroutine. Calling Start twice is a no-op.
func (p *Periodic) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.done = make(chan struct{})
	p.mu.Unlock()

	go p.loop(ctx)
}

// Stop signals the loop and waits for the in-flight batch to finish or ctx to
// expire.
func (p *Periodic) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	close(p.stopCh)
	done := p.done
	p.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Periodic) loop(ctx context.Context) {
	defer close(p.done)

	p.logger.Info("worker started", "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopped by context")
			return
		case <-p.stopCh:
			p.logger.Info("worker stopped")
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single batch synchronously.
func (p *Periodic) RunOnce(ctx context.Context) {
	start := time.Now()
	n, err := p.task(ctx)
	if err != nil {
		p.logger.Error("worker batch failed", "handled", n, "error", err, "duration", time.Since(start))
		return
	}
	if n > 0 {
		p.logger.Info("worker batch done", "handled", n, "duration", time.Since(start))
	}
}
