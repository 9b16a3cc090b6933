package observability

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Counts_Streams_Per_Feed(t *testing.T) {
	req := require.New(t)
	m := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given two chat list streams and one search
	m.StreamOpened("chat_list")
	m.StreamOpened("chat_list")
	m.StreamOpened("search")

	// When one chat list consumer leaves and the search ends
	m.StreamClosed("chat_list", "sink_closed")
	m.StreamClosed("search", "source_closed")

	// Then
	stats := m.GetLatest()
	req.Equal(map[string]int64{"chat_list": 1, "search": 0}, stats.ActiveStreams)
	req.Equal(uint64(1), stats.Terminations["chat_list:sink_closed"])
	req.Equal(uint64(1), stats.Terminations["search:source_closed"])
	req.Equal([]string{"chat_list", "search"}, m.Feeds())
}

func TestMonitor_Sample_Reads_Own_Process(t *testing.T) {
	req := require.New(t)
	m := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	sample := m.Sample()

	req.Positive(sample.Goroutines)
	req.NotEmpty(sample.SampledAt)
	req.Equal(sample, m.GetLatest().Process)
}

func TestMonitor_Nil_Records_Nothing(t *testing.T) {
	var m *Monitor

	require.NotPanics(t, func() {
		m.StreamOpened("chat_list")
		m.StreamClosed("chat_list", "cancelled")
		m.SignerLoggedIn()
		m.WorkerRestarted("GrpcServerWorker")
	})
}

func TestMonitor_Counts_Worker_Restarts(t *testing.T) {
	req := require.New(t)
	m := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	m.WorkerRestarted("TopicPrunerWorker")
	m.WorkerRestarted("TopicPrunerWorker")

	stats := m.GetLatest()
	req.Equal(map[string]uint64{"TopicPrunerWorker": 2}, stats.Restarts)

	// Then the returned map is a copy
	stats.Restarts["TopicPrunerWorker"] = 0
	req.Equal(uint64(2), m.GetLatest().Restarts["TopicPrunerWorker"])
}
