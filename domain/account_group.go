package domain

import "time"

// AccountGroup is the membership of one account in one group.
// UserConfirmation is nil while an invite is pending, true once accepted and
// false once declined. A declined group is hidden from the account's chat list.
type AccountGroup struct {
	AccountPubkey     PublicKey  `json:"account_pubkey"`
	MlsGroupID        GroupID    `json:"mls_group_id"`
	UserConfirmation  *bool      `json:"user_confirmation,omitempty"`
	WelcomerPubkey    *PublicKey `json:"welcomer_pubkey,omitempty"`
	LastReadMessageID *string    `json:"last_read_message_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (a AccountGroup) IsPending() bool  { return a.UserConfirmation == nil }
func (a AccountGroup) IsAccepted() bool { return a.UserConfirmation != nil && *a.UserConfirmation }
func (a AccountGroup) IsDeclined() bool { return a.UserConfirmation != nil && !*a.UserConfirmation }
