package runtime

import (
	"chat-bridge/broadcast"
	"sort"
	"sync"
)

// Registry owns one Broadcaster per feed key (an account pubkey, a group id).
// Topics are created on first use and pruned once nobody listens anymore.
// Once closed, every topic it hands out is already closed.
type Registry[T any] struct {
	mu       sync.RWMutex
	capacity int
	topics   map[string]*broadcast.Broadcaster[T]
	closed   bool
}

func NewRegistry[T any](capacity int) *Registry[T] {
	return &Registry[T]{
		capacity: capacity,
		topics:   make(map[string]*broadcast.Broadcaster[T]),
	}
}

// Topic returns the Broadcaster of key, creating it on the fly.
func (r *Registry[T]) Topic(key string) *broadcast.Broadcaster[T] {
	r.mu.RLock()
	topic, ok := r.topics[key]
	r.mu.RUnlock()
	if ok {
		return topic
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if topic, ok := r.topics[key]; ok {
		return topic
	}
	topic = broadcast.New[T](r.capacity)
	if r.closed {
		topic.Close()
		return topic
	}
	r.topics[key] = topic
	return topic
}

// Publish sends v on key if someone listens to it. It never creates a topic.
func (r *Registry[T]) Publish(key string, v T) int {
	r.mu.RLock()
	topic, ok := r.topics[key]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	n, _ := topic.Send(v)
	return n
}

// Remove closes the topic of key. Its receivers drain then see ErrClosed.
func (r *Registry[T]) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if topic, ok := r.topics[key]; ok {
		topic.Close()
		delete(r.topics, key)
	}
}

// Prune closes and forgets every topic without receivers and returns how
// many were removed.
func (r *Registry[T]) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for key, topic := range r.topics {
		if topic.ReceiverCount() == 0 {
			topic.Close()
			delete(r.topics, key)
			removed++
		}
	}
	return removed
}

func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.topics))
	for key := range r.topics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for key, topic := range r.topics {
		topic.Close()
		delete(r.topics, key)
	}
}
