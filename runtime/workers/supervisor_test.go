package workers

import (
	"chat-bridge/mocks"
	"chat-bridge/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBackoff_Next(t *testing.T) {
	b := Backoff{Base: 10 * time.Millisecond, Max: 40 * time.Millisecond, Healthy: time.Second}

	tests := []struct {
		name     string
		previous time.Duration
		ran      time.Duration
		want     time.Duration
	}{
		{name: "first failure", previous: 0, ran: 0, want: 10 * time.Millisecond},
		{name: "doubles on quick failure", previous: 10 * time.Millisecond, ran: time.Millisecond, want: 20 * time.Millisecond},
		{name: "capped", previous: 40 * time.Millisecond, ran: time.Millisecond, want: 40 * time.Millisecond},
		{name: "healthy run resets", previous: 40 * time.Millisecond, ran: 2 * time.Second, want: 10 * time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, b.Next(tc.previous, tc.ran))
		})
	}
}

func TestNewBackoff_Defaults(t *testing.T) {
	req := require.New(t)

	b := NewBackoff(0)

	req.Equal(200*time.Millisecond, b.Base)
	req.Equal(64*b.Base, b.Max)
	req.Equal(100*b.Base, b.Healthy)
}

func TestSupervisor_Restarts_Panicking_Worker_With_Growing_Pauses(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitor := observability.NewMonitor(log)

	var mu sync.Mutex
	var starts []time.Time
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			mu.Lock()
			starts = append(starts, time.Now())
			mu.Unlock()
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, monitor, Backoff{Base: 20 * time.Millisecond, Max: time.Second, Healthy: time.Minute})
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	// When the worker keeps panicking
	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(starts) >= 3
	}, 2*time.Second, 5*time.Millisecond)
	sup.Stop()
	<-done

	// Then each pause is longer than the previous one
	mu.Lock()
	defer mu.Unlock()
	req.GreaterOrEqual(starts[1].Sub(starts[0]), 20*time.Millisecond)
	req.GreaterOrEqual(starts[2].Sub(starts[1]), 40*time.Millisecond)
	req.GreaterOrEqual(monitor.GetLatest().Restarts["MockWorker"], uint64(2))
}

func TestSupervisor_Error_Then_Success_Stops_Restarting(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker failing once then finishing
	gomock.InOrder(
		workerMock.EXPECT().Run(gomock.Any()).Return(fmt.Errorf("listener busy")),
		workerMock.EXPECT().Run(gomock.Any()).Return(nil),
	)

	sup := NewSupervisor(slog.Default(), nil, NewBackoff(time.Millisecond))
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then the supervisor saw a clean end after one restart
	case <-time.After(time.Second):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop_Interrupts_Pause(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			calls.Add(1)
			return fmt.Errorf("down")
		}).
		AnyTimes()

	// Given a pause far longer than the test
	sup := NewSupervisor(slog.Default(), nil, Backoff{Base: time.Hour, Max: time.Hour, Healthy: time.Hour})
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()
	req.Eventually(func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// When the supervisor is stopped during the pause
	sup.Stop()

	// Then it returns without restarting the worker
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Stop should end the pause")
	}
	req.Equal(int32(1), calls.Load())
}
