package bridge

import (
	"chat-bridge/broadcast"
	"chat-bridge/domain"
	"chat-bridge/mocks"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errSinkClosed = fmt.Errorf("sink closed")

// recordingSink keeps every accepted item and starts rejecting once limit
// items were accepted. A negative limit never rejects.
type recordingSink[T any] struct {
	mu    sync.Mutex
	items []T
	limit int
}

func newRecordingSink[T any](limit int) *recordingSink[T] {
	return &recordingSink[T]{limit: limit}
}

func (s *recordingSink[T]) Add(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit >= 0 && len(s.items) >= s.limit {
		return errSinkClosed
	}
	s.items = append(s.items, item)
	return nil
}

func (s *recordingSink[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

type step[U any] struct {
	value U
	err   error
}

// scriptedSource replays steps then reports the source as closed.
type scriptedSource[U any] struct {
	steps []step[U]
	pos   int
	calls int
}

func (s *scriptedSource[U]) Recv(_ context.Context) (U, error) {
	s.calls++
	var zero U
	if s.pos >= len(s.steps) {
		return zero, broadcast.ErrClosed
	}
	st := s.steps[s.pos]
	s.pos++
	return st.value, st.err
}

func message(id, state string) domain.ChatMessage {
	return domain.ChatMessage{ID: id, Content: state}
}

func newMessage(id, state string) domain.MessageUpdate {
	return domain.MessageUpdate{Trigger: domain.TriggerNewMessage, Message: message(id, state)}
}

func TestRelay_Snapshot_Then_Updates_Skipping_Lag(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a snapshot [1:A] followed by 1:B, a lag notification, then 1:C
	source := &scriptedSource[domain.MessageUpdate]{steps: []step[domain.MessageUpdate]{
		{value: newMessage("1", "B")},
		{err: &broadcast.LaggedError{Skipped: 3}},
		{value: newMessage("1", "C")},
	}}
	sub := domain.MessageSubscription{
		Initial: []domain.ChatMessage{message("1", "A")},
		Updates: source,
	}
	sink := newRecordingSink[domain.MessageStreamItem](-1)

	// When the feed is relayed
	termination := Relay(context.Background(), log, "messages:G", sub, sink)

	// Then the lag produced no event and nothing was fabricated
	req.Equal(TerminationSourceClosed, termination)
	items := sink.Items()
	req.Len(items, 3)

	req.Equal(domain.StreamInitialSnapshot, items[0].Kind)
	req.Equal([]domain.ChatMessage{message("1", "A")}, items[0].Items)

	req.Equal(domain.StreamUpdate, items[1].Kind)
	req.Equal(newMessage("1", "B"), *items[1].Update)

	req.Equal(domain.StreamUpdate, items[2].Kind)
	req.Equal(newMessage("1", "C"), *items[2].Update)
}

func TestRelay_Sink_Closed_Before_Snapshot(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSink := mocks.NewMockSink[domain.ChatListStreamItem](ctrl)
	source := &scriptedSource[domain.ChatListUpdate]{}

	// Given the consumer is already gone
	mockSink.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errSinkClosed).Times(1)

	// When the feed is relayed
	termination := Relay(context.Background(), log, "chat-list",
		domain.ChatListSubscription{Updates: source}, mockSink)

	// Then the relay stops without reading the source
	req.Equal(TerminationSinkClosed, termination)
	req.Zero(source.calls)
}

func TestRelay_Source_Closed_Right_After_Snapshot(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	b := broadcast.New[domain.NotificationUpdate](4)
	rx := b.Subscribe()
	sink := newRecordingSink[domain.NotificationStreamItem](-1)

	// Given the core closes the feed before anything happens
	b.Close()

	// When the feed is relayed
	termination := Relay(context.Background(), log, "notifications",
		domain.NotificationSubscription{Updates: rx}, sink)

	// Then exactly one (empty) snapshot was delivered
	req.Equal(TerminationSourceClosed, termination)
	items := sink.Items()
	req.Len(items, 1)
	req.Equal(domain.StreamInitialSnapshot, items[0].Kind)
	req.Empty(items[0].Items)
}

func TestRelay_Sink_Rejects_An_Update(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	source := &scriptedSource[domain.MessageUpdate]{steps: []step[domain.MessageUpdate]{
		{value: newMessage("1", "B")},
		{value: newMessage("1", "C")},
		{value: newMessage("1", "D")},
	}}

	// Given the consumer disconnects after two events
	sink := newRecordingSink[domain.MessageStreamItem](2)

	// When the feed is relayed
	termination := Relay(context.Background(), log, "messages:G",
		domain.MessageSubscription{Initial: []domain.ChatMessage{message("1", "A")}, Updates: source}, sink)

	// Then the relay stops quietly and stops reading the source
	req.Equal(TerminationSinkClosed, termination)
	req.Len(sink.Items(), 2)
	req.Equal(2, source.calls)
}

func TestRelay_Context_Cancelled_While_Waiting(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	b := broadcast.New[domain.ChatListUpdate](4)
	rx := b.Subscribe()
	sink := newRecordingSink[domain.ChatListStreamItem](-1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Termination, 1)

	// Given a relay waiting for updates
	go func() {
		done <- Relay(ctx, log, "chat-list", domain.ChatListSubscription{Updates: rx}, sink)
	}()

	// When the transport goes away
	time.Sleep(10 * time.Millisecond)
	cancel()

	// Then the relay ends without error
	select {
	case termination := <-done:
		req.Equal(TerminationCancelled, termination)
	case <-time.After(time.Second):
		req.Fail("relay did not stop")
	}
}

func TestRelay_Keeps_Source_Order_With_Live_Producer(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	const total = 200
	b := broadcast.New[domain.MessageUpdate](total)
	rx := b.Subscribe()
	sink := newRecordingSink[domain.MessageStreamItem](-1)

	// Given a producer publishing while the relay runs
	go func() {
		for i := 0; i < total; i++ {
			_, _ = b.Send(newMessage(fmt.Sprint(i%5), fmt.Sprint(i)))
		}
		b.Close()
	}()

	// When the feed is relayed
	termination := Relay(context.Background(), log, "messages:G",
		domain.MessageSubscription{Updates: rx}, sink)

	// Then every update arrived in emission order
	req.Equal(TerminationSourceClosed, termination)
	items := sink.Items()
	req.Len(items, total+1)
	for i, item := range items[1:] {
		req.Equal(fmt.Sprint(i), item.Update.Message.Content)
	}
}

func TestRelay_Lagged_Consumer_Still_Converges_To_Latest_State(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	b := broadcast.New[domain.MessageUpdate](2)
	rx := b.Subscribe()
	sink := newRecordingSink[domain.MessageStreamItem](-1)

	// Given many updates overflow the ring before the consumer reads
	for _, u := range []domain.MessageUpdate{
		newMessage("1", "B"), newMessage("2", "X"), newMessage("1", "C"),
		newMessage("2", "Y"), newMessage("1", "D"), newMessage("2", "Z"),
	} {
		_, err := b.Send(u)
		req.NoError(err)
	}
	b.Close()

	// When the feed is relayed
	Relay(context.Background(), log, "messages:G",
		domain.MessageSubscription{Initial: []domain.ChatMessage{message("1", "A"), message("2", "W")}, Updates: rx}, sink)

	// Then the consumer holds the latest state of every item
	items := sink.Items()
	req.Len(items, 3)
	state := applyStream(items)
	req.Equal(map[string]string{"1": "D", "2": "Z"}, state)
}

func TestFullStateUpdates_Last_Update_Per_Item_Is_Enough(t *testing.T) {
	req := require.New(t)
	snapshot := []domain.ChatMessage{message("1", "A"), message("2", "W")}
	updates := []domain.MessageUpdate{
		newMessage("1", "B"), newMessage("2", "X"), newMessage("1", "C"),
		newMessage("3", "K"), newMessage("2", "Y"), newMessage("1", "D"),
	}

	// When only the last update of each item is kept
	last := make(map[string]domain.MessageUpdate)
	var order []string
	for _, u := range updates {
		if _, ok := last[u.Message.ID]; !ok {
			order = append(order, u.Message.ID)
		}
		last[u.Message.ID] = u
	}
	var pruned []domain.MessageUpdate
	for _, id := range order {
		pruned = append(pruned, last[id])
	}

	// Then replaying it gives the same final state as replaying everything
	req.Equal(replay(snapshot, updates), replay(snapshot, pruned))
}

func replay(snapshot []domain.ChatMessage, updates []domain.MessageUpdate) map[string]string {
	state := make(map[string]string)
	for _, m := range snapshot {
		state[m.ID] = m.Content
	}
	for _, u := range updates {
		state[u.Message.ID] = u.Message.Content
	}
	return state
}

func applyStream(items []domain.MessageStreamItem) map[string]string {
	var snapshot []domain.ChatMessage
	var updates []domain.MessageUpdate
	for _, item := range items {
		switch item.Kind {
		case domain.StreamInitialSnapshot:
			snapshot = item.Items
		case domain.StreamUpdate:
			updates = append(updates, *item.Update)
		}
	}
	return replay(snapshot, updates)
}
