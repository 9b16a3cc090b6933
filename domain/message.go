// Package domain contains the projections the bridge moves between the
// messaging core and the host.
// Items are opaque to the bridge: only the core builds them and only the host
// reads them.
package domain

import "time"

// UpdateTrigger tells the host why a group message changed.
type UpdateTrigger string

const (
	TriggerNewMessage      UpdateTrigger = "new_message"
	TriggerReactionAdded   UpdateTrigger = "reaction_added"
	TriggerReactionRemoved UpdateTrigger = "reaction_removed"
	TriggerMessageDeleted  UpdateTrigger = "message_deleted"
)

// ChatMessage is the aggregated state of one message: content, reactions and
// deletion status folded together.
type ChatMessage struct {
	ID        string          `json:"id"`
	Pubkey    PublicKey       `json:"pubkey"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Tags      [][]string      `json:"tags"`
	IsReply   bool            `json:"is_reply"`
	ReplyToID *string         `json:"reply_to_id,omitempty"`
	IsDeleted bool            `json:"is_deleted"`
	Reactions ReactionSummary `json:"reactions"`
	Kind      uint16          `json:"kind"`
}

type ReactionSummary struct {
	ByEmoji       []EmojiReaction `json:"by_emoji"`
	UserReactions []UserReaction  `json:"user_reactions"`
}

type EmojiReaction struct {
	Emoji string      `json:"emoji"`
	Count uint64      `json:"count"`
	Users []PublicKey `json:"users"`
}

type UserReaction struct {
	ReactionID string    `json:"reaction_id"`
	User       PublicKey `json:"user"`
	Emoji      string    `json:"emoji"`
	CreatedAt  time.Time `json:"created_at"`
}

// MessageUpdate carries the complete current state of the affected message,
// never a delta.
type MessageUpdate struct {
	Trigger UpdateTrigger `json:"trigger"`
	Message ChatMessage   `json:"message"`
}

// ChatMessageSummary is the last message preview shown in the chat list.
type ChatMessageSummary struct {
	MlsGroupID           GroupID   `json:"mls_group_id"`
	Author               PublicKey `json:"author"`
	AuthorDisplayName    *string   `json:"author_display_name,omitempty"`
	Content              string    `json:"content"`
	CreatedAt            time.Time `json:"created_at"`
	MediaAttachmentCount uint64    `json:"media_attachment_count"`
}

type MessageSubscription = Subscription[ChatMessage, MessageUpdate]
type MessageStreamItem = StreamItem[ChatMessage, MessageUpdate]
