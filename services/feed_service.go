package services

import (
	"chat-bridge/bridge"
	"chat-bridge/contract"
	"chat-bridge/domain"
	"chat-bridge/errors"
	"chat-bridge/observability"
	"context"
	"fmt"
	"log/slog"
)

const (
	FeedChatList      = "chat_list"
	FeedMessages      = "messages"
	FeedNotifications = "notifications"
	FeedSearch        = "search"
)

// IFeedService is what the host can ask about feeds.
// Subscribe* and SearchUsers return an error only when the request is invalid
// or the core refuses it; in that case nothing was sent on the sink. Once the
// stream started they block until it ends and return nil.
type IFeedService interface {
	GetChatList(ctx context.Context, accountPubkey string) ([]domain.ChatSummary, error)
	FetchAggregatedMessages(ctx context.Context, accountPubkey, groupID string) ([]domain.ChatMessage, error)
	SubscribeToChatList(ctx context.Context, accountPubkey string, sink contract.Sink[domain.ChatListStreamItem]) error
	SubscribeToGroupMessages(ctx context.Context, groupID string, sink contract.Sink[domain.MessageStreamItem]) error
	SubscribeToNotifications(ctx context.Context, sink contract.Sink[domain.NotificationStreamItem]) error
	SearchUsers(ctx context.Context, req SearchRequest, sink contract.Sink[domain.UserSearchStreamItem]) error
}

type SearchRequest struct {
	AccountPubkey string `json:"account_pubkey"`
	Query         string `json:"query"`
	RadiusStart   uint32 `json:"radius_start"`
	RadiusEnd     uint32 `json:"radius_end"`
}

type FeedService struct {
	log     *slog.Logger
	core    contract.ICore
	monitor *observability.Monitor
}

func NewFeedService(log *slog.Logger, core contract.ICore, monitor *observability.Monitor) *FeedService {
	return &FeedService{log: log, core: core, monitor: monitor}
}

func (s *FeedService) account(ctx context.Context, accountPubkey string) (domain.Account, error) {
	pubkey, err := domain.ParsePublicKey(accountPubkey)
	if err != nil {
		return domain.Account{}, err
	}
	return s.core.FindAccountByPubkey(ctx, pubkey)
}

func (s *FeedService) GetChatList(ctx context.Context, accountPubkey string) ([]domain.ChatSummary, error) {
	account, err := s.account(ctx, accountPubkey)
	if err != nil {
		return nil, err
	}
	return s.core.GetChatList(ctx, account)
}

func (s *FeedService) FetchAggregatedMessages(ctx context.Context, accountPubkey, groupID string) ([]domain.ChatMessage, error) {
	pubkey, err := domain.ParsePublicKey(accountPubkey)
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseGroupID(groupID)
	if err != nil {
		return nil, err
	}
	return s.core.FetchAggregatedMessages(ctx, pubkey, id)
}

func (s *FeedService) SubscribeToChatList(ctx context.Context, accountPubkey string,
	sink contract.Sink[domain.ChatListStreamItem]) error {
	account, err := s.account(ctx, accountPubkey)
	if err != nil {
		return err
	}
	sub, err := s.core.SubscribeToChatList(ctx, account)
	if err != nil {
		return err
	}
	stream(ctx, s, FeedChatList, account.Pubkey.Hex(), sub, sink)
	return nil
}

func (s *FeedService) SubscribeToGroupMessages(ctx context.Context, groupID string,
	sink contract.Sink[domain.MessageStreamItem]) error {
	id, err := domain.ParseGroupID(groupID)
	if err != nil {
		return err
	}
	sub, err := s.core.SubscribeToGroupMessages(ctx, id)
	if err != nil {
		return err
	}
	stream(ctx, s, FeedMessages, id.String(), sub, sink)
	return nil
}

func (s *FeedService) SubscribeToNotifications(ctx context.Context,
	sink contract.Sink[domain.NotificationStreamItem]) error {
	sub := s.core.SubscribeToNotifications(ctx)
	stream(ctx, s, FeedNotifications, "", sub, sink)
	return nil
}

func (s *FeedService) SearchUsers(ctx context.Context, req SearchRequest,
	sink contract.Sink[domain.UserSearchStreamItem]) error {
	pubkey, err := domain.ParsePublicKey(req.AccountPubkey)
	if err != nil {
		return err
	}
	if req.RadiusEnd > domain.MaxSearchRadius {
		return fmt.Errorf("%w: radius_end %d above %d", errors.ErrInvalidSearchParams, req.RadiusEnd, domain.MaxSearchRadius)
	}
	params := domain.UserSearchParams{
		Query:          req.Query,
		SearcherPubkey: pubkey,
		RadiusStart:    uint8(min(req.RadiusStart, domain.MaxSearchRadius+1)),
		RadiusEnd:      uint8(req.RadiusEnd),
	}
	if err := params.Validate(); err != nil {
		return err
	}
	sub, err := s.core.SearchUsers(ctx, params)
	if err != nil {
		return err
	}
	stream(ctx, s, FeedSearch, pubkey.Hex(), sub, sink)
	return nil
}

func stream[I, U any](ctx context.Context, s *FeedService, feed, key string,
	sub domain.Subscription[I, U], sink contract.Sink[domain.StreamItem[I, U]]) {
	s.monitor.StreamOpened(feed)
	termination := bridge.Relay(ctx, s.log, feed, sub, sink)
	s.monitor.StreamClosed(feed, termination.String())
	s.log.Debug("Stream ended", "feed", feed, "key", key, "termination", termination.String())
}
