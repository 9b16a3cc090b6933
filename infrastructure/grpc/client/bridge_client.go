package client

import (
	pb "chat-bridge/proto/bridge"
	"context"
	stdErrors "errors"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// BridgeClient is the host side of BridgeService: it logs in once and
// attaches the token to every later call.
type BridgeClient struct {
	conn   *grpc.ClientConn
	Client pb.BridgeServiceClient
	token  string
}

func NewBridgeClient(client pb.BridgeServiceClient) *BridgeClient {
	return &BridgeClient{Client: client}
}

// Dial opens a plaintext connection to a bridge listening on address.
func Dial(address string, opts ...grpc.DialOption) (*BridgeClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to bridge at %s: %w", address, err)
	}
	c := NewBridgeClient(pb.NewBridgeServiceClient(conn))
	c.conn = conn
	return c, nil
}

func (c *BridgeClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *BridgeClient) Login(ctx context.Context, hostID, password string) error {
	resp, err := c.Client.Login(ctx, &pb.LoginRequest{HostId: hostID, Password: password})
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Token is the bearer obtained by the last successful Login.
func (c *BridgeClient) Token() string { return c.token }

func (c *BridgeClient) withToken(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

func (c *BridgeClient) GetChatList(ctx context.Context, accountPubkey string) ([]*pb.ChatSummary, error) {
	resp, err := c.Client.GetChatList(c.withToken(ctx), &pb.GetChatListRequest{AccountPubkey: accountPubkey})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *BridgeClient) FetchAggregatedMessages(ctx context.Context, accountPubkey, groupID string) ([]*pb.ChatMessage, error) {
	resp, err := c.Client.FetchAggregatedMessages(c.withToken(ctx), &pb.FetchAggregatedMessagesRequest{
		AccountPubkey: accountPubkey,
		GroupId:       groupID,
	})
	if err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// SendMessageToGroup posts message as accountPubkey. An empty replyToID
// posts a plain message.
func (c *BridgeClient) SendMessageToGroup(ctx context.Context, accountPubkey, groupID, message, replyToID string) (*pb.ChatMessage, error) {
	resp, err := c.Client.SendMessageToGroup(c.withToken(ctx), &pb.SendMessageToGroupRequest{
		AccountPubkey: accountPubkey,
		GroupId:       groupID,
		Message:       message,
		ReplyToId:     replyToID,
	})
	if err != nil {
		return nil, err
	}
	return resp.Message, nil
}

func (c *BridgeClient) AcceptAccountGroup(ctx context.Context, accountPubkey, groupID string) (*pb.AccountGroup, error) {
	resp, err := c.Client.AcceptAccountGroup(c.withToken(ctx), &pb.AccountGroupRequest{AccountPubkey: accountPubkey, GroupId: groupID})
	if err != nil {
		return nil, err
	}
	return resp.AccountGroup, nil
}

func (c *BridgeClient) DeclineAccountGroup(ctx context.Context, accountPubkey, groupID string) (*pb.AccountGroup, error) {
	resp, err := c.Client.DeclineAccountGroup(c.withToken(ctx), &pb.AccountGroupRequest{AccountPubkey: accountPubkey, GroupId: groupID})
	if err != nil {
		return nil, err
	}
	return resp.AccountGroup, nil
}

func (c *BridgeClient) MarkMessageRead(ctx context.Context, accountPubkey, messageID string) (*pb.AccountGroup, error) {
	resp, err := c.Client.MarkMessageRead(c.withToken(ctx), &pb.MarkMessageReadRequest{AccountPubkey: accountPubkey, MessageId: messageID})
	if err != nil {
		return nil, err
	}
	return resp.AccountGroup, nil
}

// The Tail* methods call fn for every stream item until the server ends the
// stream, fn fails or ctx is done. A stream ended by the server returns nil.

func (c *BridgeClient) TailChatList(ctx context.Context, accountPubkey string, fn func(*pb.ChatListStreamItem) error) error {
	stream, err := c.Client.SubscribeToChatList(c.withToken(ctx), &pb.SubscribeToChatListRequest{AccountPubkey: accountPubkey})
	if err != nil {
		return err
	}
	return consume(stream, fn)
}

func (c *BridgeClient) TailGroupMessages(ctx context.Context, groupID string, fn func(*pb.MessageStreamItem) error) error {
	stream, err := c.Client.SubscribeToGroupMessages(c.withToken(ctx), &pb.SubscribeToGroupMessagesRequest{GroupId: groupID})
	if err != nil {
		return err
	}
	return consume(stream, fn)
}

func (c *BridgeClient) TailNotifications(ctx context.Context, fn func(*pb.NotificationStreamItem) error) error {
	stream, err := c.Client.SubscribeToNotifications(c.withToken(ctx), &pb.SubscribeToNotificationsRequest{})
	if err != nil {
		return err
	}
	return consume(stream, fn)
}

func (c *BridgeClient) SearchUsers(ctx context.Context, req *pb.SearchUsersRequest, fn func(*pb.UserSearchStreamItem) error) error {
	stream, err := c.Client.SearchUsers(c.withToken(ctx), req)
	if err != nil {
		return err
	}
	return consume(stream, fn)
}

func consume[T any](stream grpc.ServerStreamingClient[T], fn func(*T) error) error {
	for {
		item, err := stream.Recv()
		if stdErrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}
