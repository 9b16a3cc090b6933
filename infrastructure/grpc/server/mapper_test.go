package server

import (
	"chat-bridge/domain"
	pb "chat-bridge/proto/bridge"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

var (
	alice   = domain.PublicKey("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	groupID = domain.GroupID("0f0f")
	created = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
)

func TestToPbChatListStreamItem_Snapshot_And_Update(t *testing.T) {
	req := require.New(t)
	summary := domain.ChatSummary{
		MlsGroupID: groupID,
		Name:       lo.ToPtr("team"),
		GroupType:  domain.GroupTypeDirectMessage,
		CreatedAt:  created,
		LastMessage: &domain.ChatMessageSummary{
			MlsGroupID: groupID,
			Author:     alice,
			Content:    "hi",
			CreatedAt:  created,
		},
		PendingConfirmation: true,
		WelcomerPubkey:      lo.ToPtr(alice),
	}

	// When
	snapshot := toPbChatListStreamItem(domain.InitialSnapshot[domain.ChatSummary, domain.ChatListUpdate](nil))
	update := toPbChatListStreamItem(domain.NewUpdate[domain.ChatSummary](domain.ChatListUpdate{
		Trigger: domain.TriggerNewLastMessage,
		Item:    summary,
	}))

	// Then an empty snapshot still selects the snapshot branch
	req.NotNil(snapshot.GetInitialSnapshot())
	req.Empty(snapshot.GetInitialSnapshot().Items)
	req.Nil(snapshot.GetUpdate())

	// And the update carries every field
	req.True(proto.Equal(&pb.ChatListUpdate{
		Trigger: pb.ChatListTrigger_CHAT_LIST_TRIGGER_NEW_LAST_MESSAGE,
		Item: &pb.ChatSummary{
			MlsGroupId: groupID.String(),
			Name:       "team",
			GroupType:  pb.GroupType_GROUP_TYPE_DIRECT_MESSAGE,
			CreatedAt:  toPbTimestamp(created),
			LastMessage: &pb.ChatMessageSummary{
				MlsGroupId: groupID.String(),
				Author:     alice.Hex(),
				Content:    "hi",
				CreatedAt:  toPbTimestamp(created),
			},
			PendingConfirmation: true,
			WelcomerPubkey:      alice.Hex(),
		},
	}, update.GetUpdate()))
}

func TestToPbChatMessage_Maps_Reply_And_Reactions(t *testing.T) {
	req := require.New(t)
	msg := domain.ChatMessage{
		ID:        "m2",
		Pubkey:    alice,
		Content:   "+1",
		CreatedAt: created,
		Tags:      [][]string{{"h", groupID.String()}, {"e", "m1", "", "reply"}},
		IsReply:   true,
		ReplyToID: lo.ToPtr("m1"),
		Reactions: domain.ReactionSummary{
			ByEmoji:       []domain.EmojiReaction{{Emoji: "🔥", Count: 1, Users: []domain.PublicKey{alice}}},
			UserReactions: []domain.UserReaction{{ReactionID: "r1", User: alice, Emoji: "🔥", CreatedAt: created}},
		},
		Kind: 9,
	}

	got := toPbChatMessage(msg)

	req.Equal("m1", got.ReplyToId)
	req.Equal(uint32(9), got.Kind)
	req.Len(got.Tags, 2)
	req.Equal([]string{"e", "m1", "", "reply"}, got.Tags[1].Values)
	req.Equal([]string{alice.Hex()}, got.Reactions.ByEmoji[0].Users)
	req.Equal("r1", got.Reactions.UserReactions[0].ReactionId)
	req.Equal(created, got.CreatedAt.AsTime())
}

func TestToPbUserSearchStreamItem_Maps_Trigger_Kinds(t *testing.T) {
	req := require.New(t)

	for kind, want := range map[domain.SearchTriggerKind]pb.SearchTriggerKind{
		domain.SearchRadiusStarted: pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RADIUS_STARTED,
		domain.SearchRadiusCapped:  pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_RADIUS_CAPPED,
		domain.SearchCompleted:     pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_SEARCH_COMPLETED,
		domain.SearchError:         pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_ERROR,
		"unknown":                  pb.SearchTriggerKind_SEARCH_TRIGGER_KIND_UNSPECIFIED,
	} {
		item := toPbUserSearchStreamItem(domain.NewUpdate[domain.UserSearchResult](domain.UserSearchUpdate{
			Trigger: domain.SearchUpdateTrigger{Kind: kind, Radius: 2},
			NewResults: []domain.UserSearchResult{{
				Pubkey:        alice,
				Metadata:      domain.Metadata{Name: "alice"},
				Radius:        2,
				MatchQuality:  domain.MatchPrefix,
				BestField:     domain.FieldName,
				MatchedFields: []domain.MatchedField{domain.FieldName, domain.FieldAbout},
			}},
			TotalResultCount: 1,
		}))
		update := item.GetUpdate()
		req.Equal(want, update.Trigger.Kind, kind)
		req.Equal(uint32(2), update.Trigger.Radius)
		req.Equal(pb.MatchQuality_MATCH_QUALITY_PREFIX, update.NewResults[0].MatchQuality)
		req.Equal([]pb.MatchedField{pb.MatchedField_MATCHED_FIELD_NAME, pb.MatchedField_MATCHED_FIELD_ABOUT}, update.NewResults[0].MatchedFields)
	}
}

func TestToPbNotificationStreamItem_Leaves_Missing_Optionals_Empty(t *testing.T) {
	req := require.New(t)

	item := toPbNotificationStreamItem(domain.NewUpdate[domain.NotificationUpdate](domain.NotificationUpdate{
		Trigger:    domain.NotificationGroupInvite,
		MlsGroupID: groupID,
		Receiver:   domain.NotificationUser{Pubkey: alice},
		Sender:     domain.NotificationUser{Pubkey: alice, DisplayName: lo.ToPtr("Alice")},
	}))

	update := item.GetUpdate()
	req.Equal(pb.NotificationTrigger_NOTIFICATION_TRIGGER_GROUP_INVITE, update.Trigger)
	req.Empty(update.GroupName)
	req.Empty(update.Receiver.DisplayName)
	req.Equal("Alice", update.Sender.DisplayName)
	req.Nil(update.Timestamp)
}

func TestToPbAccountGroup_Confirmation_States(t *testing.T) {
	req := require.New(t)

	req.Equal(pb.UserConfirmation_USER_CONFIRMATION_PENDING, toPbAccountGroup(domain.AccountGroup{}).UserConfirmation)
	req.Equal(pb.UserConfirmation_USER_CONFIRMATION_ACCEPTED, toPbAccountGroup(domain.AccountGroup{UserConfirmation: lo.ToPtr(true)}).UserConfirmation)
	req.Equal(pb.UserConfirmation_USER_CONFIRMATION_DECLINED, toPbAccountGroup(domain.AccountGroup{UserConfirmation: lo.ToPtr(false)}).UserConfirmation)

	got := toPbAccountGroup(domain.AccountGroup{
		AccountPubkey:     alice,
		MlsGroupID:        groupID,
		LastReadMessageID: lo.ToPtr("m1"),
		CreatedAt:         created,
	})
	req.Equal("m1", got.LastReadMessageId)
	req.Empty(got.WelcomerPubkey)
	req.Nil(got.UpdatedAt)
}
