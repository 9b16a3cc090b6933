package runtime

import (
	"chat-bridge/broadcast"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Topic_Is_Created_Once(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry[string](4)

	// Given no topic exists
	req.Empty(registry.Keys())

	// When the same key is asked twice
	first := registry.Topic("alice")
	second := registry.Topic("alice")

	// Then both calls share the same broadcaster
	req.Same(first, second)
	req.Equal([]string{"alice"}, registry.Keys())
	req.Equal(4, first.Capacity())
}

func TestRegistry_Publish_Without_Topic_Is_Dropped(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry[string](4)

	// When nobody subscribed to the key
	n := registry.Publish("bob", "hello")

	// Then nothing is created
	req.Zero(n)
	req.Empty(registry.Keys())
}

func TestRegistry_Publish_Reaches_Receivers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry[string](4)
	rx := registry.Topic("alice").Subscribe()

	n := registry.Publish("alice", "hello")

	req.Equal(1, n)
	v, err := rx.Recv(context.Background())
	req.NoError(err)
	req.Equal("hello", v)
}

func TestRegistry_Prune_Keeps_Listened_Topics(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry[string](4)
	listened := registry.Topic("alice").Subscribe()
	released := registry.Topic("bob").Subscribe()

	// Given one receiver went away
	released.Close()

	// When topics are pruned
	removed := registry.Prune()

	// Then only the abandoned topic is gone
	req.Equal(1, removed)
	req.Equal([]string{"alice"}, registry.Keys())
	_, err := released.Recv(context.Background())
	req.ErrorIs(err, broadcast.ErrClosed)
	listened.Close()
}

func TestRegistry_Remove_Closes_Receivers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry[string](4)
	rx := registry.Topic("alice").Subscribe()
	registry.Publish("alice", "last")

	// When the topic is removed
	registry.Remove("alice")

	// Then receivers drain what was sent before seeing the end
	v, err := rx.Recv(context.Background())
	req.NoError(err)
	req.Equal("last", v)
	_, err = rx.Recv(context.Background())
	req.ErrorIs(err, broadcast.ErrClosed)
	req.Empty(registry.Keys())
}

func TestRegistry_Topic_After_Close_Is_Closed(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry[string](4)
	registry.Topic("alice")

	// Given the registry is closed
	registry.Close()

	// When a topic is asked afterwards
	rx := registry.Topic("bob").Subscribe()
	defer rx.Close()

	// Then its receivers end at once and nothing is tracked
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := rx.Recv(ctx)
	req.ErrorIs(err, broadcast.ErrClosed)
	req.Empty(registry.Keys())
	req.Zero(registry.Publish("bob", "late"))
}
