package e2e

import (
	"chat-bridge/infrastructure/grpc/client"
	pb "chat-bridge/proto/bridge"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errStop = errors.New("stop")

type FeedsSuite struct {
	BaseGrpcSuite
}

func TestFeedsSuite(t *testing.T) {
	suite.Run(t, new(FeedsSuite))
}

func (s *FeedsSuite) TestWrongPasswordIsRefused() {
	c := s.Dial(s.T(), "Login with a wrong password")
	defer c.Close()

	err := c.Login(context.Background(), s.Config.HostID, s.Config.HostPassword+"-wrong")
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *FeedsSuite) TestNotificationsStartWithEmptySnapshot() {
	s.WithBridge("Tail notifications", func(ctx context.Context, c *client.BridgeClient) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var first *pb.NotificationStreamItem
		err := c.TailNotifications(ctx, func(item *pb.NotificationStreamItem) error {
			first = item
			return errStop
		})

		s.ErrorIs(err, errStop)
		s.Require().NotNil(first)
		s.Require().NotNil(first.GetInitialSnapshot())
		s.Empty(first.GetInitialSnapshot().Items)
	})
}

func (s *FeedsSuite) TestUnknownAccountIsNotFound() {
	s.WithBridge("Chat list of a stranger", func(ctx context.Context, c *client.BridgeClient) {
		pk, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
		s.Require().NoError(err)

		_, err = c.GetChatList(ctx, pk)
		s.Equal(codes.NotFound, status.Code(err))

		err = c.SearchUsers(ctx, &pb.SearchUsersRequest{AccountPubkey: pk, Query: "alice", RadiusEnd: 1},
			func(*pb.UserSearchStreamItem) error { return nil })
		s.Equal(codes.NotFound, status.Code(err))
	})
}

func (s *FeedsSuite) TestMalformedGroupIsInvalid() {
	s.WithBridge("Messages of a malformed group", func(ctx context.Context, c *client.BridgeClient) {
		err := c.TailGroupMessages(ctx, "not-hex", func(*pb.MessageStreamItem) error { return nil })
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *FeedsSuite) TestGroupCallsOfAStrangerAreNotFound() {
	s.WithBridge("Group calls of a stranger", func(ctx context.Context, c *client.BridgeClient) {
		pk, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
		s.Require().NoError(err)

		_, err = c.SendMessageToGroup(ctx, pk, "0f0f", "hello", "")
		s.Equal(codes.NotFound, status.Code(err))

		_, err = c.AcceptAccountGroup(ctx, pk, "0f0f")
		s.Equal(codes.NotFound, status.Code(err))
	})
}
