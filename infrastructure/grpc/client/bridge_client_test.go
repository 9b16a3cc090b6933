package client

import (
	pb "chat-bridge/proto/bridge"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// mockChatListStream replays items then reports the end of the stream.
type mockChatListStream struct {
	grpc.ServerStreamingClient[pb.ChatListStreamItem]
	items []*pb.ChatListStreamItem
	err   error
}

func (m *mockChatListStream) Recv() (*pb.ChatListStreamItem, error) {
	if len(m.items) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	item := m.items[0]
	m.items = m.items[1:]
	return item, nil
}

// mockServiceClient simulates the BridgeService client.
type mockServiceClient struct {
	pb.BridgeServiceClient
	stream   *mockChatListStream
	lastAuth []string
	sent     *pb.SendMessageToGroupRequest
}

func (m *mockServiceClient) Login(_ context.Context, in *pb.LoginRequest, _ ...grpc.CallOption) (*pb.LoginResponse, error) {
	if in.Password != "good" {
		return nil, errors.New("refused")
	}
	return &pb.LoginResponse{Token: "token-123"}, nil
}

func (m *mockServiceClient) SubscribeToChatList(ctx context.Context, _ *pb.SubscribeToChatListRequest, _ ...grpc.CallOption) (grpc.ServerStreamingClient[pb.ChatListStreamItem], error) {
	md, _ := metadata.FromOutgoingContext(ctx)
	m.lastAuth = md.Get("authorization")
	return m.stream, nil
}

func (m *mockServiceClient) SendMessageToGroup(ctx context.Context, in *pb.SendMessageToGroupRequest, _ ...grpc.CallOption) (*pb.SendMessageToGroupResponse, error) {
	md, _ := metadata.FromOutgoingContext(ctx)
	m.lastAuth = md.Get("authorization")
	m.sent = in
	return &pb.SendMessageToGroupResponse{Message: &pb.ChatMessage{Id: "m1", Content: in.Message}}, nil
}

func (m *mockServiceClient) MarkMessageRead(_ context.Context, in *pb.MarkMessageReadRequest, _ ...grpc.CallOption) (*pb.AccountGroupResponse, error) {
	return &pb.AccountGroupResponse{AccountGroup: &pb.AccountGroup{
		AccountPubkey:     in.AccountPubkey,
		LastReadMessageId: in.MessageId,
	}}, nil
}

func snapshotItem() *pb.ChatListStreamItem {
	return &pb.ChatListStreamItem{Item: &pb.ChatListStreamItem_InitialSnapshot{InitialSnapshot: &pb.ChatListSnapshot{}}}
}

func TestBridgeClient_Tail_Sends_Token_And_Stops_On_EOF(t *testing.T) {
	update := &pb.ChatListStreamItem{Item: &pb.ChatListStreamItem_Update{Update: &pb.ChatListUpdate{
		Trigger: pb.ChatListTrigger_CHAT_LIST_TRIGGER_NEW_GROUP,
	}}}
	mock := &mockServiceClient{stream: &mockChatListStream{items: []*pb.ChatListStreamItem{snapshotItem(), update}}}
	c := NewBridgeClient(mock)

	assert.Error(t, c.Login(context.Background(), "desktop", "bad"))
	assert.Empty(t, c.Token())
	assert.NoError(t, c.Login(context.Background(), "desktop", "good"))

	var snapshots, updates int
	err := c.TailChatList(context.Background(), "npub", func(item *pb.ChatListStreamItem) error {
		if item.GetInitialSnapshot() != nil {
			snapshots++
		}
		if item.GetUpdate() != nil {
			updates++
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, snapshots)
	assert.Equal(t, 1, updates)
	assert.Equal(t, []string{"Bearer token-123"}, mock.lastAuth)
}

func TestBridgeClient_Tail_Propagates_Errors(t *testing.T) {
	broken := errors.New("connection reset")
	mock := &mockServiceClient{stream: &mockChatListStream{err: broken}}
	c := NewBridgeClient(mock)

	err := c.TailChatList(context.Background(), "npub", func(*pb.ChatListStreamItem) error { return nil })
	assert.ErrorIs(t, err, broken)

	stop := errors.New("stop")
	mock.stream = &mockChatListStream{items: []*pb.ChatListStreamItem{snapshotItem()}}
	err = c.TailChatList(context.Background(), "npub", func(*pb.ChatListStreamItem) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func TestBridgeClient_Group_Calls(t *testing.T) {
	mock := &mockServiceClient{}
	c := NewBridgeClient(mock)
	assert.NoError(t, c.Login(context.Background(), "desktop", "good"))

	msg, err := c.SendMessageToGroup(context.Background(), "npub", "0f0f", "hello", "m0")
	assert.NoError(t, err)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "m0", mock.sent.ReplyToId)
	assert.Equal(t, "0f0f", mock.sent.GroupId)
	assert.Equal(t, []string{"Bearer token-123"}, mock.lastAuth)

	group, err := c.MarkMessageRead(context.Background(), "npub", msg.Id)
	assert.NoError(t, err)
	assert.Equal(t, "m1", group.LastReadMessageId)
}
