package server

import (
	"chat-bridge/domain"
	pb "chat-bridge/proto/bridge"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPbTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toPbGroupType(groupType domain.GroupType) pb.GroupType {
	switch groupType {
	case domain.GroupTypeGroup:
		return pb.GroupType_GROUP_TYPE_GROUP
	case domain.GroupTypeDirectMessage:
		return pb.GroupType_GROUP_TYPE_DIRECT_MESSAGE
	default:
		return pb.GroupType_GROUP_TYPE_UNSPECIFIED
	}
}

func toPbChatMessageSummary(summary *domain.ChatMessageSummary) *pb.ChatMessageSummary {
	if summary == nil {
		return nil
	}
	return &pb.ChatMessageSummary{
		MlsGroupId:           summary.MlsGroupID.String(),
		Author:               summary.Author.Hex(),
		AuthorDisplayName:    lo.FromPtr(summary.AuthorDisplayName),
		Content:              summary.Content,
		CreatedAt:            toPbTimestamp(summary.CreatedAt),
		MediaAttachmentCount: summary.MediaAttachmentCount,
	}
}

func toPbChatSummary(summary domain.ChatSummary) *pb.ChatSummary {
	return &pb.ChatSummary{
		MlsGroupId:          summary.MlsGroupID.String(),
		Name:                lo.FromPtr(summary.Name),
		GroupType:           toPbGroupType(summary.GroupType),
		CreatedAt:           toPbTimestamp(summary.CreatedAt),
		GroupImagePath:      lo.FromPtr(summary.GroupImagePath),
		GroupImageUrl:       lo.FromPtr(summary.GroupImageURL),
		LastMessage:         toPbChatMessageSummary(summary.LastMessage),
		PendingConfirmation: summary.PendingConfirmation,
		WelcomerPubkey:      lo.FromPtr(summary.WelcomerPubkey).Hex(),
	}
}

func toPbChatListTrigger(trigger domain.ChatListUpdateTrigger) pb.ChatListTrigger {
	switch trigger {
	case domain.TriggerNewGroup:
		return pb.ChatListTrigger_CHAT_LIST_TRIGGER_NEW_GROUP
	case domain.TriggerNewLastMessage:
		return pb.ChatListTrigger_CHAT_LIST_TRIGGER_NEW_LAST_MESSAGE
	case domain.TriggerLastMessageDeleted:
		return pb.ChatListTrigger_CHAT_LIST_TRIGGER_LAST_MESSAGE_DELETED
	default:
		return pb.ChatListTrigger_CHAT_LIST_TRIGGER_UNSPECIFIED
	}
}

func toPbChatListStreamItem(item domain.ChatListStreamItem) *pb.ChatListStreamItem {
	if item.Kind == domain.StreamUpdate && item.Update != nil {
		return &pb.ChatListStreamItem{Item: &pb.ChatListStreamItem_Update{Update: &pb.ChatListUpdate{
			Trigger: toPbChatListTrigger(item.Update.Trigger),
			Item:    toPbChatSummary(item.Update.Item),
		}}}
	}
	return &pb.ChatListStreamItem{Item: &pb.ChatListStreamItem_InitialSnapshot{InitialSnapshot: &pb.ChatListSnapshot{
		Items: lo.Map(item.Items, func(s domain.ChatSummary, _ int) *pb.ChatSummary { return toPbChatSummary(s) }),
	}}}
}

func toPbChatMessage(msg domain.ChatMessage) *pb.ChatMessage {
	return &pb.ChatMessage{
		Id:        msg.ID,
		Pubkey:    msg.Pubkey.Hex(),
		Content:   msg.Content,
		CreatedAt: toPbTimestamp(msg.CreatedAt),
		Tags: lo.Map(msg.Tags, func(tag []string, _ int) *pb.Tag {
			return &pb.Tag{Values: append([]string(nil), tag...)}
		}),
		IsReply:   msg.IsReply,
		ReplyToId: lo.FromPtr(msg.ReplyToID),
		IsDeleted: msg.IsDeleted,
		Reactions: &pb.ReactionSummary{
			ByEmoji: lo.Map(msg.Reactions.ByEmoji, func(r domain.EmojiReaction, _ int) *pb.EmojiReaction {
				return &pb.EmojiReaction{
					Emoji: r.Emoji,
					Count: r.Count,
					Users: lo.Map(r.Users, func(u domain.PublicKey, _ int) string { return u.Hex() }),
				}
			}),
			UserReactions: lo.Map(msg.Reactions.UserReactions, func(r domain.UserReaction, _ int) *pb.UserReaction {
				return &pb.UserReaction{
					ReactionId: r.ReactionID,
					User:       r.User.Hex(),
					Emoji:      r.Emoji,
					CreatedAt:  toPbTimestamp(r.CreatedAt),
				}
			}),
		},
		Kind: uint32(msg.Kind),
	}
}

func toPbChatMessages(messages []domain.ChatMessage) []*pb.ChatMessage {
	return lo.Map(messages, func(m domain.ChatMessage, _ int) *pb.ChatMessage { return toPbChatMessage(m) })
}

func toPbMessageTrigger(trigger domain.UpdateTrigger) pb.MessageTrigger {
	switch trigger {
	case domain.TriggerNewMessage:
		return pb.MessageTrigger_MESSAGE_TRIGGER_NEW_MESSAGE
	case domain.TriggerReactionAdded:
		return pb.MessageTrigger_MESSAGE_TRIGGER_REACTION_ADDED
	case domain.TriggerReactionRemoved:
		return pb.MessageTrigger_MESSAGE_TRIGGER_REACTION_REMOVED
	case domain.TriggerMessageDeleted:
		return pb.MessageTrigger_MESSAGE_TRIGGER_MESSAGE_DELETED
	default:
		return pb.MessageTrigger_MESSAGE_TRIGGER_UNSPECIFIED
	}
}

func toPbMessageStreamItem(item domain.MessageStreamItem) *pb.MessageStreamItem {
	if item.Kind == domain.StreamUpdate && item.Update != nil {
		return &pb.MessageStreamItem{Item: &pb.MessageStreamItem_Update{Update: &pb.MessageUpdate{
			Trigger: toPbMessageTrigger(item.Update.Trigger),
			Message: toPbChatMessage(item.Update.Message),
		}}}
	}
	return &pb.MessageStreamItem{Item: &pb.MessageStreamItem_InitialSnapshot{InitialSnapshot: &pb.MessageSnapshot{
		Items: toPbChatMessages(item.Items),
	}}}
}

func toPbNotificationUser(user domain.NotificationUser) *pb.NotificationUser {
	return &pb.NotificationUser{
		Pubkey:      user.Pubkey.Hex(),
		DisplayName: lo.FromPtr(user.DisplayName),
		PictureUrl:  lo.FromPtr(user.PictureURL),
	}
}

func toPbNotificationTrigger(trigger domain.NotificationTrigger) pb.NotificationTrigger {
	switch trigger {
	case domain.NotificationNewMessage:
		return pb.NotificationTrigger_NOTIFICATION_TRIGGER_NEW_MESSAGE
	case domain.NotificationGroupInvite:
		return pb.NotificationTrigger_NOTIFICATION_TRIGGER_GROUP_INVITE
	default:
		return pb.NotificationTrigger_NOTIFICATION_TRIGGER_UNSPECIFIED
	}
}

func toPbNotificationUpdate(update domain.NotificationUpdate) *pb.NotificationUpdate {
	return &pb.NotificationUpdate{
		Trigger:    toPbNotificationTrigger(update.Trigger),
		MlsGroupId: update.MlsGroupID.String(),
		GroupName:  lo.FromPtr(update.GroupName),
		IsDm:       update.IsDM,
		Receiver:   toPbNotificationUser(update.Receiver),
		Sender:     toPbNotificationUser(update.Sender),
		Content:    update.Content,
		Timestamp:  toPbTimestamp(update.Timestamp),
	}
}

func toPbNotificationStreamItem(item domain.NotificationStreamItem) *pb.NotificationStreamItem {
	if item.Kind == domain.StreamUpdate && item.Update != nil {
		return &pb.NotificationStreamItem{Item: &pb.NotificationStreamItem_Update{Update: toPbNotificationUpdate(*item.Update)}}
	}
	return &pb.NotificationStreamItem{Item: &pb.NotificationStreamItem_InitialSnapshot{InitialSnapshot: &pb.NotificationSnapshot{
		Items: lo.Map(item.Items, func(n domain.NotificationUpdate, _ int) *pb.NotificationUpdate { return toPbNotificationUpdate(n) }),
	}}}
}

func toPbMatchQuality(quality domain.MatchQuality) pb.MatchQuality {
	switch quality {
	case domain.MatchExact:
		return pb.MatchQuality_MATCH_QUALITY_EXACT
	case domain.MatchPrefix:
		return pb.MatchQuality_MATCH_QUALITY_PREFIX
	case domain.MatchContains:
		return pb.MatchQuality_MATCH_QUALITY_CONTAINS
	default:
		return pb.MatchQuality_MATCH_QUALITY_UNSPECIFIED
	}
}

func toPbMatchedField(field domain.MatchedField) pb.MatchedField {
	switch field {
	case domain.FieldName:
		return pb.MatchedField_MATCHED_FIELD_NAME
	case domain.FieldNip05:
		return pb.MatchedField_MATCHED_FIELD_NIP05
	case domain.FieldDisplayName:
		return pb.MatchedField_MATCHED_FIELD_DISPLAY_NAME
	case domain.FieldAbout:
		return pb.MatchedField_MATCHED_FIELD_ABOUT
	default:
		return pb.MatchedField_MATCHED_FIELD_UNSPECIFIED
	}
}

func toPbUserSearchResult(result domain.UserSearchResult) *pb.UserSearchResult {
	return &pb.UserSearchResult{
		Pubkey: result.Pubkey.Hex(),
		Metadata: &pb.Metadata{
			Name:        result.Metadata.Name,
			DisplayName: result.Metadata.DisplayName,
			About:       result.Metadata.About,
			Picture:     result.Metadata.Picture,
			Nip05:       result.Metadata.Nip05,
		},
		Radius:        uint32(result.Radius),
		MatchQuality:  toPbMatchQuality(result.MatchQuality),
		BestField:     toPbMatchedField(result.BestField),
		MatchedFields: lo.Map(result.MatchedFields, func(f domain.MatchedField, _ int) pb.MatchedField { return toPbMatchedField(f) }),
	}
}

func toPbUserSearchResults(results []domain.UserSearchResult) []*pb.UserSearchResult {
	return lo.Map(results, func(r domain.UserSearchResult, _ int) *pb.UserSearchResult { return toPbUserSearchResult(r) })
}

var searchTriggerKinds = map[domain.SearchTriggerKind]pb.SearchTriggerKind{
	domain.SearchRadiusStarted:   pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RADIUS_STARTED,
	domain.SearchResultsFound:    pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RESULTS_FOUND,
	domain.SearchRadiusCompleted: pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RADIUS_COMPLETED,
	domain.SearchRadiusCapped:    pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RADIUS_CAPPED,
	domain.SearchRadiusTimeout:   pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RADIUS_TIMEOUT,
	domain.SearchCompleted:       pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_SEARCH_COMPLETED,
	domain.SearchError:           pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_ERROR,
}

func toPbSearchTrigger(trigger domain.SearchUpdateTrigger) *pb.SearchTrigger {
	return &pb.SearchTrigger{
		Kind:                 searchTriggerKinds[trigger.Kind],
		Radius:               uint32(trigger.Radius),
		TotalPubkeysSearched: trigger.TotalPubkeysSearched,
		Cap:                  trigger.Cap,
		Actual:               trigger.Actual,
		FinalRadius:          uint32(trigger.FinalRadius),
		TotalResults:         trigger.TotalResults,
		Message:              trigger.Message,
	}
}

func toPbUserSearchStreamItem(item domain.UserSearchStreamItem) *pb.UserSearchStreamItem {
	if item.Kind == domain.StreamUpdate && item.Update != nil {
		return &pb.UserSearchStreamItem{Item: &pb.UserSearchStreamItem_Update{Update: &pb.UserSearchUpdate{
			Trigger:          toPbSearchTrigger(item.Update.Trigger),
			NewResults:       toPbUserSearchResults(item.Update.NewResults),
			TotalResultCount: item.Update.TotalResultCount,
		}}}
	}
	return &pb.UserSearchStreamItem{Item: &pb.UserSearchStreamItem_InitialSnapshot{InitialSnapshot: &pb.UserSearchSnapshot{
		Items: toPbUserSearchResults(item.Items),
	}}}
}

func toPbUserConfirmation(confirmation *bool) pb.UserConfirmation {
	switch {
	case confirmation == nil:
		return pb.UserConfirmation_USER_CONFIRMATION_PENDING
	case *confirmation:
		return pb.UserConfirmation_USER_CONFIRMATION_ACCEPTED
	default:
		return pb.UserConfirmation_USER_CONFIRMATION_DECLINED
	}
}

func toPbAccountGroup(group domain.AccountGroup) *pb.AccountGroup {
	return &pb.AccountGroup{
		AccountPubkey:     group.AccountPubkey.Hex(),
		MlsGroupId:        group.MlsGroupID.String(),
		UserConfirmation:  toPbUserConfirmation(group.UserConfirmation),
		WelcomerPubkey:    lo.FromPtr(group.WelcomerPubkey).Hex(),
		LastReadMessageId: lo.FromPtr(group.LastReadMessageID),
		CreatedAt:         toPbTimestamp(group.CreatedAt),
		UpdatedAt:         toPbTimestamp(group.UpdatedAt),
	}
}
