package domain

import (
	"chat-bridge/errors"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

// PublicKey is a Nostr x-only public key in lower-case hex.
type PublicKey string

// ParsePublicKey accepts either a 64 characters hex key or a bech32 npub.
func ParsePublicKey(raw string) (PublicKey, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "npub1") {
		prefix, value, err := nip19.Decode(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", errors.ErrInvalidPublicKey, err)
		}
		hexKey, ok := value.(string)
		if prefix != "npub" || !ok {
			return "", fmt.Errorf("%w: unexpected bech32 prefix %q", errors.ErrInvalidPublicKey, prefix)
		}
		raw = hexKey
	}
	raw = strings.ToLower(raw)
	if !nostr.IsValidPublicKey(raw) {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidPublicKey, raw)
	}
	return PublicKey(raw), nil
}

func (p PublicKey) Hex() string { return string(p) }

// Npub returns the bech32 form, or an empty string if the key is malformed.
func (p PublicKey) Npub() string {
	npub, err := nip19.EncodePublicKey(string(p))
	if err != nil {
		return ""
	}
	return npub
}

// GroupID identifies an MLS group. It is kept as lower-case hex so it can be
// used as a map key and travels unchanged on the wire.
type GroupID string

func ParseGroupID(raw string) (GroupID, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", fmt.Errorf("%w: empty", errors.ErrInvalidGroupID)
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidGroupID, err)
	}
	return GroupID(raw), nil
}

func NewGroupID(raw []byte) GroupID {
	return GroupID(hex.EncodeToString(raw))
}

func (g GroupID) String() string { return string(g) }

func (g GroupID) Bytes() []byte {
	b, _ := hex.DecodeString(string(g))
	return b
}
