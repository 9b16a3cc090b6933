package domain

import "time"

type GroupType string

const (
	GroupTypeGroup         GroupType = "group"
	GroupTypeDirectMessage GroupType = "direct_message"
)

// ChatListUpdateTrigger tells the host why a chat list entry changed.
type ChatListUpdateTrigger string

const (
	// TriggerNewGroup a group was created or joined
	TriggerNewGroup ChatListUpdateTrigger = "new_group"
	// TriggerNewLastMessage a new message replaced the preview
	TriggerNewLastMessage ChatListUpdateTrigger = "new_last_message"
	// TriggerLastMessageDeleted the previewed message was deleted
	TriggerLastMessageDeleted ChatListUpdateTrigger = "last_message_deleted"
)

// ChatSummary is one entry of an account's chat list.
// Name is the group name for groups and the other user's display name for DMs.
type ChatSummary struct {
	MlsGroupID          GroupID             `json:"mls_group_id"`
	Name                *string             `json:"name,omitempty"`
	GroupType           GroupType           `json:"group_type"`
	CreatedAt           time.Time           `json:"created_at"`
	GroupImagePath      *string             `json:"group_image_path,omitempty"`
	GroupImageURL       *string             `json:"group_image_url,omitempty"`
	LastMessage         *ChatMessageSummary `json:"last_message,omitempty"`
	PendingConfirmation bool                `json:"pending_confirmation"`
	WelcomerPubkey      *PublicKey          `json:"welcomer_pubkey,omitempty"`
}

type ChatListUpdate struct {
	Trigger ChatListUpdateTrigger `json:"trigger"`
	Item    ChatSummary           `json:"item"`
}

type ChatListSubscription = Subscription[ChatSummary, ChatListUpdate]
type ChatListStreamItem = StreamItem[ChatSummary, ChatListUpdate]
