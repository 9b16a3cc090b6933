// Package signer implements the Nostr signer capability set on top of
// callbacks owned by the host (an external signer app such as Amber, NIP-55).
// No private key ever reaches this process.
//
// The adapter is a pure pass-through: each operation makes exactly one
// foreign call and waits for its answer. There is no timeout, no retry and no
// concurrency limit here, because the foreign side may be waiting for a
// human to approve the request. Callers that need bounded latency put a
// deadline on their context.
package signer

import (
	"chat-bridge/contract"
	"chat-bridge/domain"
	"chat-bridge/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nbd-wtf/go-nostr"
)

const backendName = "external signer (NIP-55)"

// ExternalSigner is safe to use from many goroutines: it only holds the
// public key and a shared handle on the foreign callbacks. Each login gets its
// own *ExternalSigner, so the pointer identifies one host session.
type ExternalSigner struct {
	pubkey  domain.PublicKey
	foreign contract.IForeignSigner
}

var _ contract.INostrSigner = (*ExternalSigner)(nil)

func NewExternalSigner(pubkey domain.PublicKey, foreign contract.IForeignSigner) *ExternalSigner {
	return &ExternalSigner{pubkey: pubkey, foreign: foreign}
}

func (s *ExternalSigner) Backend() string { return backendName }

// GetPublicKey answers from the key given at construction, without asking
// the host.
func (s *ExternalSigner) GetPublicKey(_ context.Context) (domain.PublicKey, error) {
	return s.pubkey, nil
}

// SignEvent sends the unsigned event as JSON to the host and parses the
// answer as a signed event. The answer must carry an id matching its content
// and a valid signature, otherwise nothing is returned.
func (s *ExternalSigner) SignEvent(ctx context.Context, unsigned domain.UnsignedEvent) (*nostr.Event, error) {
	payload, err := json.Marshal(unsigned.WithID())
	if err != nil {
		return nil, fmt.Errorf("%w: encode unsigned event: %v", errors.ErrSigningFailed, err)
	}

	signedJSON, err := s.foreign.SignEvent(ctx, string(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSigningFailed, err)
	}

	var evt nostr.Event
	if err := json.Unmarshal([]byte(signedJSON), &evt); err != nil {
		return nil, fmt.Errorf("%w: malformed signed event: %v", errors.ErrSigningFailed, err)
	}
	if evt.ID != evt.GetID() {
		return nil, fmt.Errorf("%w: event id does not match its content", errors.ErrSigningFailed)
	}
	ok, err := evt.CheckSignature()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSigningFailed, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: invalid signature", errors.ErrSigningFailed)
	}
	return &evt, nil
}

func (s *ExternalSigner) Nip04Encrypt(ctx context.Context, counterparty domain.PublicKey, content string) (string, error) {
	return passThrough(ctx, "nip04_encrypt", s.foreign.Nip04Encrypt, content, counterparty)
}

func (s *ExternalSigner) Nip04Decrypt(ctx context.Context, counterparty domain.PublicKey, encrypted string) (string, error) {
	return passThrough(ctx, "nip04_decrypt", s.foreign.Nip04Decrypt, encrypted, counterparty)
}

func (s *ExternalSigner) Nip44Encrypt(ctx context.Context, counterparty domain.PublicKey, content string) (string, error) {
	return passThrough(ctx, "nip44_encrypt", s.foreign.Nip44Encrypt, content, counterparty)
}

func (s *ExternalSigner) Nip44Decrypt(ctx context.Context, counterparty domain.PublicKey, payload string) (string, error) {
	return passThrough(ctx, "nip44_decrypt", s.foreign.Nip44Decrypt, payload, counterparty)
}

// passThrough returns the host answer verbatim. The host is the authority on
// ciphertext shape.
func passThrough(ctx context.Context, op string, call CipherFunc,
	content string, counterparty domain.PublicKey) (string, error) {
	result, err := call(ctx, content, counterparty.Hex())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errors.ErrSignerOperation, op, err)
	}
	return result, nil
}

func (s *ExternalSigner) String() string {
	return fmt.Sprintf("ExternalSigner{pubkey: %s}", s.pubkey)
}

// LogValue keeps the callbacks out of logs.
func (s *ExternalSigner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", backendName),
		slog.String("pubkey", s.pubkey.Hex()),
	)
}
