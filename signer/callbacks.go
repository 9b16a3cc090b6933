package signer

import (
	"chat-bridge/contract"
	"chat-bridge/errors"
	"context"
	"fmt"
)

// SignFunc takes an unsigned event as JSON and returns the signed event as JSON.
type SignFunc func(ctx context.Context, unsignedJSON string) (string, error)

// CipherFunc takes (content, counterparty pubkey hex) and returns the
// encrypted or decrypted content.
type CipherFunc func(ctx context.Context, content, pubkeyHex string) (string, error)

// CallbackFuncs turns five plain functions into an IForeignSigner.
// Every function must be safe to call concurrently. A nil function makes its
// operation fail with ErrSignerOperation.
type CallbackFuncs struct {
	SignFn         SignFunc
	Nip04EncryptFn CipherFunc
	Nip04DecryptFn CipherFunc
	Nip44EncryptFn CipherFunc
	Nip44DecryptFn CipherFunc
}

var _ contract.IForeignSigner = CallbackFuncs{}

func (c CallbackFuncs) SignEvent(ctx context.Context, unsignedJSON string) (string, error) {
	if c.SignFn == nil {
		return "", unsupported("sign_event")
	}
	return c.SignFn(ctx, unsignedJSON)
}

func (c CallbackFuncs) Nip04Encrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return call(ctx, "nip04_encrypt", c.Nip04EncryptFn, content, pubkeyHex)
}

func (c CallbackFuncs) Nip04Decrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return call(ctx, "nip04_decrypt", c.Nip04DecryptFn, content, pubkeyHex)
}

func (c CallbackFuncs) Nip44Encrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return call(ctx, "nip44_encrypt", c.Nip44EncryptFn, content, pubkeyHex)
}

func (c CallbackFuncs) Nip44Decrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return call(ctx, "nip44_decrypt", c.Nip44DecryptFn, content, pubkeyHex)
}

func call(ctx context.Context, op string, fn CipherFunc, content, pubkeyHex string) (string, error) {
	if fn == nil {
		return "", unsupported(op)
	}
	return fn(ctx, content, pubkeyHex)
}

func unsupported(op string) error {
	return fmt.Errorf("%w: %s callback not provided", errors.ErrSignerOperation, op)
}
