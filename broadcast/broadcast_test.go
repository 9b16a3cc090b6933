package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcaster_Delivers_In_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	b := New[int](8)
	rx := b.Subscribe()

	// Given three values are sent
	for i := 1; i <= 3; i++ {
		n, err := b.Send(i)
		req.NoError(err)
		req.Equal(1, n)
	}

	// Then they are received in the same order
	for i := 1; i <= 3; i++ {
		v, err := rx.Recv(ctx)
		req.NoError(err)
		req.Equal(i, v)
	}
}

func TestBroadcaster_Receiver_Only_Sees_Values_Sent_After_Subscribe(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	b := New[string](4)

	// Given a value was sent before anyone subscribed
	_, err := b.Send("before")
	req.NoError(err)
	rx := b.Subscribe()

	// When nothing else is sent
	_, err = rx.Recv(ctx)

	// Then the receiver waits until the context expires
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestBroadcaster_Slow_Receiver_Lags_And_Resumes_At_Oldest(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	b := New[int](2)
	slow := b.Subscribe()

	// Given five values are sent into a ring of two
	for i := 1; i <= 5; i++ {
		_, err := b.Send(i)
		req.NoError(err)
	}

	// When the slow receiver reads
	_, err := slow.Recv(ctx)

	// Then it is told how many values it missed
	req.ErrorIs(err, ErrLagged)
	var lagged *LaggedError
	req.True(errors.As(err, &lagged))
	req.Equal(uint64(3), lagged.Skipped)

	// And it resumes with the oldest retained value
	v, err := slow.Recv(ctx)
	req.NoError(err)
	req.Equal(4, v)
	v, err = slow.Recv(ctx)
	req.NoError(err)
	req.Equal(5, v)
}

func TestBroadcaster_Lag_Is_Per_Receiver(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	b := New[int](2)
	fast := b.Subscribe()
	slow := b.Subscribe()

	// Given the fast receiver keeps up with every send
	for i := 1; i <= 4; i++ {
		_, err := b.Send(i)
		req.NoError(err)
		v, err := fast.Recv(ctx)
		req.NoError(err)
		req.Equal(i, v)
	}

	// Then only the slow receiver lags
	_, err := slow.Recv(ctx)
	req.ErrorIs(err, ErrLagged)
}

func TestBroadcaster_Close_Drains_Then_Reports_Closed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	b := New[int](4)
	rx := b.Subscribe()

	// Given a value is pending when the broadcaster closes
	_, err := b.Send(42)
	req.NoError(err)
	b.Close()

	// Then the pending value is still delivered
	v, err := rx.Recv(ctx)
	req.NoError(err)
	req.Equal(42, v)

	// And the receiver is then told the source is closed
	_, err = rx.Recv(ctx)
	req.ErrorIs(err, ErrClosed)

	// And sending is refused
	_, err = b.Send(1)
	req.ErrorIs(err, ErrClosed)
}

func TestBroadcaster_Close_Wakes_Blocked_Receiver(t *testing.T) {
	req := require.New(t)
	b := New[int](4)
	rx := b.Subscribe()
	done := make(chan error, 1)

	// Given a receiver is blocked waiting
	go func() {
		_, err := rx.Recv(context.Background())
		done <- err
	}()

	// When the broadcaster is closed
	time.Sleep(10 * time.Millisecond)
	b.Close()

	// Then the receiver wakes up with ErrClosed
	select {
	case err := <-done:
		req.ErrorIs(err, ErrClosed)
	case <-time.After(time.Second):
		req.Fail("receiver was not woken up")
	}
}

func TestBroadcaster_Concurrent_Senders_Never_Block(t *testing.T) {
	req := require.New(t)
	b := New[int](4)
	_ = b.Subscribe() // never read
	var wg sync.WaitGroup

	// When many goroutines send without anyone reading
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = b.Send(i)
			}
		}()
	}
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	// Then every sender returns
	select {
	case <-finished:
	case <-time.After(time.Second):
		req.Fail("senders were blocked by a slow receiver")
	}
}

func TestReceiver_Close_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	b := New[int](1)
	rx := b.Subscribe()
	req.Equal(1, b.ReceiverCount())

	rx.Close()
	rx.Close()

	req.Equal(0, b.ReceiverCount())
}
