package server

import (
	"chat-bridge/errors"
	pb "chat-bridge/proto/bridge"
	"chat-bridge/services"
	"context"
	"log/slog"

	"google.golang.org/grpc"
)

// PublicMethods can be called without a bearer token.
var PublicMethods = []string{pb.BridgeService_Login_FullMethodName}

type BridgeServer struct {
	pb.UnimplementedBridgeServiceServer
	log          *slog.Logger
	authService  services.IAuthService
	feedService  services.IFeedService
	groupService services.IGroupService
}

func NewBridgeServer(log *slog.Logger,
	authService services.IAuthService,
	feedService services.IFeedService,
	groupService services.IGroupService) *BridgeServer {
	return &BridgeServer{log: log, authService: authService, feedService: feedService, groupService: groupService}
}

func (s *BridgeServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.authService.Login(req.GetHostId(), req.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LoginResponse{Token: token.String()}, nil
}

func (s *BridgeServer) GetChatList(ctx context.Context, req *pb.GetChatListRequest) (*pb.GetChatListResponse, error) {
	items, err := s.feedService.GetChatList(ctx, req.GetAccountPubkey())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	resp := &pb.GetChatListResponse{Items: make([]*pb.ChatSummary, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toPbChatSummary(item))
	}
	return resp, nil
}

func (s *BridgeServer) FetchAggregatedMessages(ctx context.Context, req *pb.FetchAggregatedMessagesRequest) (*pb.FetchAggregatedMessagesResponse, error) {
	messages, err := s.feedService.FetchAggregatedMessages(ctx, req.GetAccountPubkey(), req.GetGroupId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FetchAggregatedMessagesResponse{Messages: toPbChatMessages(messages)}, nil
}

func (s *BridgeServer) SendMessageToGroup(ctx context.Context, req *pb.SendMessageToGroupRequest) (*pb.SendMessageToGroupResponse, error) {
	msg, err := s.groupService.SendMessageToGroup(ctx, req.GetAccountPubkey(), req.GetGroupId(), req.GetMessage(), req.GetReplyToId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageToGroupResponse{Message: toPbChatMessage(msg)}, nil
}

func (s *BridgeServer) AcceptAccountGroup(ctx context.Context, req *pb.AccountGroupRequest) (*pb.AccountGroupResponse, error) {
	group, err := s.groupService.AcceptAccountGroup(ctx, req.GetAccountPubkey(), req.GetGroupId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AccountGroupResponse{AccountGroup: toPbAccountGroup(group)}, nil
}

func (s *BridgeServer) DeclineAccountGroup(ctx context.Context, req *pb.AccountGroupRequest) (*pb.AccountGroupResponse, error) {
	group, err := s.groupService.DeclineAccountGroup(ctx, req.GetAccountPubkey(), req.GetGroupId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AccountGroupResponse{AccountGroup: toPbAccountGroup(group)}, nil
}

func (s *BridgeServer) MarkMessageRead(ctx context.Context, req *pb.MarkMessageReadRequest) (*pb.AccountGroupResponse, error) {
	group, err := s.groupService.MarkMessageRead(ctx, req.GetAccountPubkey(), req.GetMessageId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AccountGroupResponse{AccountGroup: toPbAccountGroup(group)}, nil
}

// SubscribeToChatList blocks until the client leaves or the feed closes.
// A refused subscription is reported as a status error before anything was
// sent.
func (s *BridgeServer) SubscribeToChatList(req *pb.SubscribeToChatListRequest, stream grpc.ServerStreamingServer[pb.ChatListStreamItem]) error {
	sink := newStreamSink(stream, toPbChatListStreamItem)
	return errors.MapToGRPCError(s.feedService.SubscribeToChatList(stream.Context(), req.GetAccountPubkey(), sink))
}

func (s *BridgeServer) SubscribeToGroupMessages(req *pb.SubscribeToGroupMessagesRequest, stream grpc.ServerStreamingServer[pb.MessageStreamItem]) error {
	sink := newStreamSink(stream, toPbMessageStreamItem)
	return errors.MapToGRPCError(s.feedService.SubscribeToGroupMessages(stream.Context(), req.GetGroupId(), sink))
}

func (s *BridgeServer) SubscribeToNotifications(_ *pb.SubscribeToNotificationsRequest, stream grpc.ServerStreamingServer[pb.NotificationStreamItem]) error {
	sink := newStreamSink(stream, toPbNotificationStreamItem)
	return errors.MapToGRPCError(s.feedService.SubscribeToNotifications(stream.Context(), sink))
}

func (s *BridgeServer) SearchUsers(req *pb.SearchUsersRequest, stream grpc.ServerStreamingServer[pb.UserSearchStreamItem]) error {
	sink := newStreamSink(stream, toPbUserSearchStreamItem)
	return errors.MapToGRPCError(s.feedService.SearchUsers(stream.Context(), services.SearchRequest{
		AccountPubkey: req.GetAccountPubkey(),
		Query:         req.GetQuery(),
		RadiusStart:   req.GetRadiusStart(),
		RadiusEnd:     req.GetRadiusEnd(),
	}, sink))
}
