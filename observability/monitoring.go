package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is sampled from the OS, not computed by the bridge.
type ProcessStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float32 `json:"memory_percent"`
	RSSBytes      uint64  `json:"rss_bytes"`
	Goroutines    int     `json:"goroutines"`
	AllocMemMb    uint64  `json:"alloc_mem_mb"`
	NumGC         uint32  `json:"num_gc"`
	SampledAt     string  `json:"sampled_at,omitempty"`
}

// Stats aggregates what /healthz exposes.
type Stats struct {
	Uptime        string            `json:"uptime"`
	ActiveStreams map[string]int64  `json:"active_streams"`
	Terminations  map[string]uint64 `json:"terminations"`
	SignerLogins  uint64            `json:"signer_logins"`
	Restarts      map[string]uint64 `json:"worker_restarts"`
	Process       ProcessStats      `json:"process"`
}

// Monitor counts streams and keeps the last process sample. A nil Monitor is
// valid and records nothing.
type Monitor struct {
	log          *slog.Logger
	mu           sync.RWMutex
	startedAt    time.Time
	active       map[string]int64
	terminations map[string]uint64
	signerLogins uint64
	restarts     map[string]uint64
	process      ProcessStats
	proc         *process.Process
}

func NewMonitor(log *slog.Logger) *Monitor {
	m := &Monitor{
		log:          log,
		startedAt:    time.Now(),
		active:       make(map[string]int64),
		terminations: make(map[string]uint64),
		restarts:     make(map[string]uint64),
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process metrics unavailable", "error", err)
	} else {
		m.proc = proc
	}
	return m
}

func (m *Monitor) StreamOpened(feed string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[feed]++
}

func (m *Monitor) StreamClosed(feed, termination string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[feed]--
	m.terminations[feed+":"+termination]++
}

func (m *Monitor) SignerLoggedIn() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signerLogins++
}

func (m *Monitor) WorkerRestarted(worker string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restarts[worker]++
}

// Sample reads the process usage. It is called periodically by a worker, not
// on every health request.
func (m *Monitor) Sample() ProcessStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats := ProcessStats{
		Goroutines: runtime.NumGoroutine(),
		AllocMemMb: mem.Alloc / 1024 / 1024,
		NumGC:      mem.NumGC,
		SampledAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if m.proc != nil {
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		} else {
			m.log.Debug("Error while finding process cpu usage", "error", err)
		}
		if ram, err := m.proc.MemoryPercent(); err == nil {
			stats.MemoryPercent = ram
		} else {
			m.log.Debug("Error while finding process ram usage", "error", err)
		}
		if info, err := m.proc.MemoryInfo(); err == nil {
			stats.RSSBytes = info.RSS
		}
	}

	m.mu.Lock()
	m.process = stats
	m.mu.Unlock()
	return stats
}

func (m *Monitor) GetLatest() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := Stats{
		Uptime:        time.Since(m.startedAt).Round(time.Second).String(),
		ActiveStreams: make(map[string]int64, len(m.active)),
		Terminations:  make(map[string]uint64, len(m.terminations)),
		SignerLogins:  m.signerLogins,
		Restarts:      make(map[string]uint64, len(m.restarts)),
		Process:       m.process,
	}
	for worker, n := range m.restarts {
		stats.Restarts[worker] = n
	}
	for feed, n := range m.active {
		stats.ActiveStreams[feed] = n
	}
	for key, n := range m.terminations {
		stats.Terminations[key] = n
	}
	return stats
}

// Feeds lists the feeds that ever had a stream, sorted.
func (m *Monitor) Feeds() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	feeds := make([]string, 0, len(m.active))
	for feed := range m.active {
		feeds = append(feeds, feed)
	}
	sort.Strings(feeds)
	return feeds
}
