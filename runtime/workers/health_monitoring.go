package workers

import (
	"chat-bridge/observability"
	"context"
	"log/slog"
	"time"
)

// HealthMonitoringWorker samples the bridge process on every tick so /healthz
// serves a recent view without calling gopsutil per request.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	monitor        *observability.Monitor
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, monitor *observability.Monitor,
	metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, monitor: monitor, metricInterval: metricInterval}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	w.monitor.Sample()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			sample := w.monitor.Sample()
			w.log.Debug("Process sampled",
				"cpu", sample.CPUPercent,
				"rss", sample.RSSBytes,
				"goroutines", sample.Goroutines)
		}
	}
}
