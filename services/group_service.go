package services

import (
	"chat-bridge/contract"
	"chat-bridge/domain"
	"context"
	"log/slog"
	"strings"
)

// IGroupService is what the host can do to the groups of an account.
type IGroupService interface {
	SendMessageToGroup(ctx context.Context, accountPubkey, groupID, message string, replyToID string) (domain.ChatMessage, error)
	AcceptAccountGroup(ctx context.Context, accountPubkey, groupID string) (domain.AccountGroup, error)
	DeclineAccountGroup(ctx context.Context, accountPubkey, groupID string) (domain.AccountGroup, error)
	MarkMessageRead(ctx context.Context, accountPubkey, messageID string) (domain.AccountGroup, error)
}

type GroupService struct {
	log  *slog.Logger
	core contract.ICore
}

func NewGroupService(log *slog.Logger, core contract.ICore) *GroupService {
	return &GroupService{log: log, core: core}
}

// SendMessageToGroup posts message as the account. An empty replyToID posts
// a plain message.
func (s *GroupService) SendMessageToGroup(ctx context.Context, accountPubkey, groupID, message string,
	replyToID string) (domain.ChatMessage, error) {
	pubkey, err := domain.ParsePublicKey(accountPubkey)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	id, err := domain.ParseGroupID(groupID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	account, err := s.core.FindAccountByPubkey(ctx, pubkey)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	var replyTo *string
	if replyToID = strings.TrimSpace(replyToID); replyToID != "" {
		replyTo = &replyToID
	}
	msg, err := s.core.SendMessageToGroup(ctx, account, id, message, replyTo)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	s.log.Debug("Message sent", "group_id", id, "message_id", msg.ID)
	return msg, nil
}

func (s *GroupService) AcceptAccountGroup(ctx context.Context, accountPubkey, groupID string) (domain.AccountGroup, error) {
	pubkey, id, err := parseMembership(accountPubkey, groupID)
	if err != nil {
		return domain.AccountGroup{}, err
	}
	return s.core.AcceptAccountGroup(ctx, pubkey, id)
}

func (s *GroupService) DeclineAccountGroup(ctx context.Context, accountPubkey, groupID string) (domain.AccountGroup, error) {
	pubkey, id, err := parseMembership(accountPubkey, groupID)
	if err != nil {
		return domain.AccountGroup{}, err
	}
	group, err := s.core.DeclineAccountGroup(ctx, pubkey, id)
	if err != nil {
		return domain.AccountGroup{}, err
	}
	s.log.Info("Group declined", "pubkey", pubkey, "group_id", id)
	return group, nil
}

func (s *GroupService) MarkMessageRead(ctx context.Context, accountPubkey, messageID string) (domain.AccountGroup, error) {
	pubkey, err := domain.ParsePublicKey(accountPubkey)
	if err != nil {
		return domain.AccountGroup{}, err
	}
	return s.core.MarkMessageRead(ctx, pubkey, strings.ToLower(strings.TrimSpace(messageID)))
}

func parseMembership(accountPubkey, groupID string) (domain.PublicKey, domain.GroupID, error) {
	pubkey, err := domain.ParsePublicKey(accountPubkey)
	if err != nil {
		return "", "", err
	}
	id, err := domain.ParseGroupID(groupID)
	if err != nil {
		return "", "", err
	}
	return pubkey, id, nil
}
