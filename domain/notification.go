package domain

import "time"

type NotificationTrigger string

const (
	NotificationNewMessage  NotificationTrigger = "new_message"
	NotificationGroupInvite NotificationTrigger = "group_invite"
)

type NotificationUser struct {
	Pubkey      PublicKey `json:"pubkey"`
	DisplayName *string   `json:"display_name,omitempty"`
	PictureURL  *string   `json:"picture_url,omitempty"`
}

// NotificationUpdate is both the item and the update of the notification
// feed: the feed has no state of its own, so its snapshot is always empty.
type NotificationUpdate struct {
	Trigger    NotificationTrigger `json:"trigger"`
	MlsGroupID GroupID             `json:"mls_group_id"`
	GroupName  *string             `json:"group_name,omitempty"`
	IsDM       bool                `json:"is_dm"`
	Receiver   NotificationUser    `json:"receiver"`
	Sender     NotificationUser    `json:"sender"`
	Content    string              `json:"content"`
	Timestamp  time.Time           `json:"timestamp"`
}

type NotificationSubscription = Subscription[NotificationUpdate, NotificationUpdate]
type NotificationStreamItem = StreamItem[NotificationUpdate, NotificationUpdate]
