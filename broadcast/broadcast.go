// Package broadcast is a multi-subscriber queue for full-state updates.
//
// Every receiver reads the same bounded ring. Send never blocks: it
// overwrites the oldest slot. A receiver whose cursor fell behind the ring
// gets a LaggedError once and resumes at the oldest retained value, so a slow
// consumer only loses intermediate values of its own stream and never slows
// down the producer or its siblings.
//
// Skipping values is only harmless when each value carries the complete state
// of what it describes. Do not publish deltas on a Broadcaster.
package broadcast

import (
	"context"
	"fmt"
	"sync"
)

var (
	ErrClosed = fmt.Errorf("broadcast closed")
	ErrLagged = fmt.Errorf("receiver lagged")
)

// LaggedError reports how many values a receiver missed. It matches ErrLagged
// with errors.Is.
type LaggedError struct {
	Skipped uint64
}

func (e *LaggedError) Error() string {
	return fmt.Sprintf("receiver lagged: %d values skipped", e.Skipped)
}

func (e *LaggedError) Is(target error) bool { return target == ErrLagged }

type Broadcaster[T any] struct {
	mu        sync.Mutex
	ring      []T
	tail      uint64 // sequence number of the next Send
	closed    bool
	wake      chan struct{}
	receivers int
}

func New[T any](capacity int) *Broadcaster[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Broadcaster[T]{
		ring: make([]T, capacity),
		wake: make(chan struct{}),
	}
}

// Send publishes v to every receiver and returns the number of receivers
// currently subscribed. Sending on a closed Broadcaster returns ErrClosed.
func (b *Broadcaster[T]) Send(v T) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, ErrClosed
	}
	b.ring[b.tail%uint64(len(b.ring))] = v
	b.tail++
	close(b.wake)
	b.wake = make(chan struct{})
	return b.receivers, nil
}

// Subscribe returns a receiver that will see every value sent after this call.
func (b *Broadcaster[T]) Subscribe() *Receiver[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.receivers++
	return &Receiver[T]{b: b, next: b.tail}
}

// Close wakes every receiver. Receivers still drain the values they have not
// read yet before getting ErrClosed.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.wake)
}

func (b *Broadcaster[T]) ReceiverCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.receivers
}

func (b *Broadcaster[T]) Capacity() int { return len(b.ring) }

// Receiver is one independent cursor over a Broadcaster.
// A Receiver belongs to a single goroutine.
type Receiver[T any] struct {
	b        *Broadcaster[T]
	next     uint64
	released bool
}

// Recv returns the next value. It returns a *LaggedError when values were
// overwritten before this receiver could read them, ErrClosed once the
// Broadcaster is closed and drained, and ctx.Err() when ctx is done first.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	b := r.b
	for {
		b.mu.Lock()
		if r.next < b.tail {
			capacity := uint64(len(b.ring))
			if b.tail-r.next > capacity {
				oldest := b.tail - capacity
				skipped := oldest - r.next
				r.next = oldest
				b.mu.Unlock()
				return zero, &LaggedError{Skipped: skipped}
			}
			v := b.ring[r.next%capacity]
			r.next++
			b.mu.Unlock()
			return v, nil
		}
		if b.closed {
			b.mu.Unlock()
			return zero, ErrClosed
		}
		wake := b.wake
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-wake:
		}
	}
}

// Close releases the receiver. It is idempotent.
func (r *Receiver[T]) Close() {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.b.receivers--
}
