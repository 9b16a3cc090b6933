package workers

import (
	"context"
	"log/slog"
	"time"
)

type pruner interface {
	Prune() int
}

// TopicPrunerWorker drops the per-account and per-group feeds nobody listens
// to anymore.
type TopicPrunerWorker struct {
	log      *slog.Logger
	core     pruner
	interval time.Duration
}

func NewTopicPrunerWorker(log *slog.Logger, core pruner, interval time.Duration) *TopicPrunerWorker {
	return &TopicPrunerWorker{log: log, core: core, interval: interval}
}

func (w *TopicPrunerWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if removed := w.core.Prune(); removed > 0 {
				w.log.Debug("Idle topics pruned", "count", removed)
			}
		}
	}
}
