package workers

import (
	"chat-bridge/contract"
	"chat-bridge/errors"
	"chat-bridge/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Backoff spaces the restarts of a failing worker. The pause starts at Base
// and doubles on each consecutive failure up to Max. A run that lasted at
// least Healthy counts as recovered and brings the pause back to Base.
type Backoff struct {
	Base    time.Duration
	Max     time.Duration
	Healthy time.Duration
}

func NewBackoff(base time.Duration) Backoff {
	if base <= 0 {
		base = 200 * time.Millisecond
	}
	return Backoff{Base: base, Max: 64 * base, Healthy: 100 * base}
}

// Next returns the pause before the next restart given the previous pause
// (zero for the first failure) and how long the failed run lasted.
func (b Backoff) Next(previous, ran time.Duration) time.Duration {
	if previous <= 0 || ran >= b.Healthy {
		return b.Base
	}
	return min(2*previous, b.Max)
}

// Supervisor runs every worker in its own goroutine until the parent context
// is done. Panics become errors, failed workers are restarted with Backoff and
// a worker returning nil is finished for good.
type Supervisor struct {
	Cancel  context.CancelFunc
	wg      *sync.WaitGroup
	log     *slog.Logger
	monitor *observability.Monitor
	backoff Backoff
	workers []contract.Worker
}

func NewSupervisor(log *slog.Logger, monitor *observability.Monitor, backoff Backoff) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, monitor: monitor, backoff: backoff}
}

// Run blocks until every worker returned.
// Cancelling ctx or calling Stop ends all of them.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start supervises worker in a new goroutine.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, worker)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker) {
	name := contract.GetWorkerName(worker)
	var pause time.Duration
	for attempt := 1; ; attempt++ {
		startedAt := time.Now()
		err := runProtected(ctx, worker)
		switch {
		case err == nil:
			s.log.Info("Worker finished", "name", name, "attempt", attempt)
			return
		case ctx.Err() != nil:
			s.log.Info("Worker stopped", "name", name, "reason", ctx.Err())
			return
		}

		pause = s.backoff.Next(pause, time.Since(startedAt))
		s.monitor.WorkerRestarted(name)
		s.log.Warn("Worker failed", "name", name, "attempt", attempt, "retry_in", pause, "error", err)

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("Worker stopped", "name", name, "reason", ctx.Err())
			return
		case <-timer.C:
		}
	}
}

func runProtected(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels every worker. Run returns once they are all gone.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
