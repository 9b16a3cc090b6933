package domain

import "github.com/nbd-wtf/go-nostr"

// UnsignedEvent is a Nostr event waiting for a signature. ID is optional: the
// signer computes it when missing.
type UnsignedEvent struct {
	ID        string          `json:"id,omitempty"`
	PubKey    PublicKey       `json:"pubkey"`
	CreatedAt nostr.Timestamp `json:"created_at"`
	Kind      int             `json:"kind"`
	Tags      nostr.Tags      `json:"tags"`
	Content   string          `json:"content"`
}

// Event returns the unsigned content as a go-nostr event with its id set.
func (u UnsignedEvent) Event() nostr.Event {
	tags := u.Tags
	if tags == nil {
		tags = nostr.Tags{}
	}
	evt := nostr.Event{
		PubKey:    string(u.PubKey),
		CreatedAt: u.CreatedAt,
		Kind:      u.Kind,
		Tags:      tags,
		Content:   u.Content,
	}
	evt.ID = evt.GetID()
	return evt
}

// WithID fills ID and normalises nil tags so the JSON form is canonical.
func (u UnsignedEvent) WithID() UnsignedEvent {
	evt := u.Event()
	u.ID = evt.ID
	u.Tags = evt.Tags
	return u
}
