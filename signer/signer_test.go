package signer

import (
	"chat-bridge/domain"
	"chat-bridge/errors"
	"chat-bridge/mocks"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type keyPair struct {
	secret string
	public domain.PublicKey
}

func newKeyPair(t *testing.T) keyPair {
	sk := nostr.GeneratePrivateKey()
	pk, err := nostr.GetPublicKey(sk)
	require.NoError(t, err)
	return keyPair{secret: sk, public: domain.PublicKey(pk)}
}

// hostSign plays the external signer app: it signs whatever it receives.
func hostSign(secret string) SignFunc {
	return func(_ context.Context, unsignedJSON string) (string, error) {
		var evt nostr.Event
		if err := json.Unmarshal([]byte(unsignedJSON), &evt); err != nil {
			return "", err
		}
		if err := evt.Sign(secret); err != nil {
			return "", err
		}
		signed, err := json.Marshal(&evt)
		return string(signed), err
	}
}

func unsignedNote(pubkey domain.PublicKey) domain.UnsignedEvent {
	return domain.UnsignedEvent{
		PubKey:    pubkey,
		CreatedAt: nostr.Timestamp(1_700_000_000),
		Kind:      nostr.KindTextNote,
		Tags:      nostr.Tags{{"t", "bridge"}},
		Content:   "hello from the bridge",
	}
}

func TestExternalSigner_SignEvent_Returns_Signed_Event(t *testing.T) {
	req := require.New(t)
	keys := newKeyPair(t)
	s := NewExternalSigner(keys.public, CallbackFuncs{SignFn: hostSign(keys.secret)})
	unsigned := unsignedNote(keys.public)

	// When the host signs the event
	evt, err := s.SignEvent(context.Background(), unsigned)

	// Then the content is unchanged and the signature verifies
	req.NoError(err)
	req.NotNil(evt)
	req.Equal(unsigned.Content, evt.Content)
	req.Equal(unsigned.Kind, evt.Kind)
	req.Equal(unsigned.CreatedAt, evt.CreatedAt)
	req.Equal(keys.public.Hex(), evt.PubKey)
	req.Equal(unsigned.WithID().ID, evt.ID)
	ok, err := evt.CheckSignature()
	req.NoError(err)
	req.True(ok)
}

func TestExternalSigner_SignEvent_Sends_Canonical_Json_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	keys := newKeyPair(t)
	foreign := mocks.NewMockIForeignSigner(ctrl)
	unsigned := unsignedNote(keys.public)

	// Given the host receives the unsigned event with its id filled in
	foreign.EXPECT().SignEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, unsignedJSON string) (string, error) {
			var got domain.UnsignedEvent
			req.NoError(json.Unmarshal([]byte(unsignedJSON), &got))
			req.Equal(unsigned.WithID(), got)
			return hostSign(keys.secret)(ctx, unsignedJSON)
		}).Times(1)

	// When the event is signed
	_, err := NewExternalSigner(keys.public, foreign).SignEvent(context.Background(), unsigned)

	// Then exactly one foreign call was made
	req.NoError(err)
}

func TestExternalSigner_SignEvent_Malformed_Answer(t *testing.T) {
	keys := newKeyPair(t)
	other := newKeyPair(t)

	tamperedContent := func(ctx context.Context, unsignedJSON string) (string, error) {
		signed, err := hostSign(keys.secret)(ctx, unsignedJSON)
		if err != nil {
			return "", err
		}
		var evt nostr.Event
		_ = json.Unmarshal([]byte(signed), &evt)
		evt.Content = "something else"
		b, err := json.Marshal(&evt)
		return string(b), err
	}
	foreignSignature := func(ctx context.Context, unsignedJSON string) (string, error) {
		signed, err := hostSign(other.secret)(ctx, unsignedJSON)
		if err != nil {
			return "", err
		}
		var evt nostr.Event
		_ = json.Unmarshal([]byte(signed), &evt)
		// keep the other key's signature but claim the expected author
		evt.PubKey = keys.public.Hex()
		evt.ID = evt.GetID()
		b, err := json.Marshal(&evt)
		return string(b), err
	}

	cases := []struct {
		name string
		sign SignFunc
	}{
		{"not json", func(context.Context, string) (string, error) { return "{not json", nil }},
		{"empty object", func(context.Context, string) (string, error) { return "{}", nil }},
		{"content changed after signing", tamperedContent},
		{"signature from another key", foreignSignature},
		{"host refused", func(context.Context, string) (string, error) { return "", fmt.Errorf("user rejected") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			s := NewExternalSigner(keys.public, CallbackFuncs{SignFn: tc.sign})

			evt, err := s.SignEvent(context.Background(), unsignedNote(keys.public))

			req.ErrorIs(err, errors.ErrSigningFailed)
			req.Nil(evt)
		})
	}
}

func TestExternalSigner_GetPublicKey_Does_Not_Call_Host(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	keys := newKeyPair(t)

	// Given a host expecting no call at all
	foreign := mocks.NewMockIForeignSigner(ctrl)

	pk, err := NewExternalSigner(keys.public, foreign).GetPublicKey(context.Background())

	req.NoError(err)
	req.Equal(keys.public, pk)
}

func TestExternalSigner_Encryption_Is_Passed_Through(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	keys := newKeyPair(t)
	peer := newKeyPair(t)
	foreign := mocks.NewMockIForeignSigner(ctrl)
	s := NewExternalSigner(keys.public, foreign)
	ctx := context.Background()

	// Given the host answers each call with an opaque string
	foreign.EXPECT().Nip04Encrypt(gomock.Any(), "plain", peer.public.Hex()).Return("c04", nil).Times(1)
	foreign.EXPECT().Nip04Decrypt(gomock.Any(), "c04", peer.public.Hex()).Return("plain", nil).Times(1)
	foreign.EXPECT().Nip44Encrypt(gomock.Any(), "plain", peer.public.Hex()).Return("not base64 at all", nil).Times(1)
	foreign.EXPECT().Nip44Decrypt(gomock.Any(), "c44", peer.public.Hex()).Return("plain", nil).Times(1)

	// Then every answer comes back verbatim
	out, err := s.Nip04Encrypt(ctx, peer.public, "plain")
	req.NoError(err)
	req.Equal("c04", out)

	out, err = s.Nip04Decrypt(ctx, peer.public, "c04")
	req.NoError(err)
	req.Equal("plain", out)

	out, err = s.Nip44Encrypt(ctx, peer.public, "plain")
	req.NoError(err)
	req.Equal("not base64 at all", out)

	out, err = s.Nip44Decrypt(ctx, peer.public, "c44")
	req.NoError(err)
	req.Equal("plain", out)
}

func TestExternalSigner_Encryption_Error_Is_Wrapped(t *testing.T) {
	req := require.New(t)
	keys := newKeyPair(t)
	hostErr := fmt.Errorf("host unavailable")
	s := NewExternalSigner(keys.public, CallbackFuncs{
		Nip44DecryptFn: func(context.Context, string, string) (string, error) { return "", hostErr },
	})

	_, err := s.Nip44Decrypt(context.Background(), keys.public, "payload")

	req.ErrorIs(err, errors.ErrSignerOperation)
	req.ErrorIs(err, hostErr)
}

func TestCallbackFuncs_Missing_Callback(t *testing.T) {
	req := require.New(t)

	_, err := CallbackFuncs{}.Nip04Encrypt(context.Background(), "plain", "pk")
	req.ErrorIs(err, errors.ErrSignerOperation)

	_, err = CallbackFuncs{}.SignEvent(context.Background(), "{}")
	req.ErrorIs(err, errors.ErrSignerOperation)
}

func TestCallbackFuncs_Routes_Each_Operation(t *testing.T) {
	req := require.New(t)
	tagged := func(op string) CipherFunc {
		return func(_ context.Context, content, pubkeyHex string) (string, error) {
			return op + ":" + content + ":" + pubkeyHex, nil
		}
	}
	funcs := CallbackFuncs{
		SignFn:         func(_ context.Context, unsignedJSON string) (string, error) { return "signed:" + unsignedJSON, nil },
		Nip04EncryptFn: tagged("04e"),
		Nip04DecryptFn: tagged("04d"),
		Nip44EncryptFn: tagged("44e"),
		Nip44DecryptFn: tagged("44d"),
	}
	ctx := context.Background()

	// When each operation is called on the callbacks
	signed, err := funcs.SignEvent(ctx, "{}")
	req.NoError(err)
	enc04, err := funcs.Nip04Encrypt(ctx, "a", "pk")
	req.NoError(err)
	dec04, err := funcs.Nip04Decrypt(ctx, "b", "pk")
	req.NoError(err)
	enc44, err := funcs.Nip44Encrypt(ctx, "c", "pk")
	req.NoError(err)
	dec44, err := funcs.Nip44Decrypt(ctx, "d", "pk")
	req.NoError(err)

	// Then every one reached its own function with its arguments in order
	req.Equal("signed:{}", signed)
	req.Equal("04e:a:pk", enc04)
	req.Equal("04d:b:pk", dec04)
	req.Equal("44e:c:pk", enc44)
	req.Equal("44d:d:pk", dec44)
}

func TestExternalSigner_Signs_Concurrently(t *testing.T) {
	req := require.New(t)
	keys := newKeyPair(t)
	var mu sync.Mutex
	calls := 0
	sign := hostSign(keys.secret)
	s := NewExternalSigner(keys.public, CallbackFuncs{
		SignFn: func(ctx context.Context, unsignedJSON string) (string, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			return sign(ctx, unsignedJSON)
		},
	})

	// When many goroutines sign through the same signer
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unsigned := unsignedNote(keys.public)
			unsigned.Content = fmt.Sprintf("note %d", i)
			evt, err := s.SignEvent(context.Background(), unsigned)
			if err == nil && evt.Content != unsigned.Content {
				err = fmt.Errorf("content mismatch")
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	// Then each one made exactly one foreign call and succeeded
	for err := range errs {
		req.NoError(err)
	}
	req.Equal(20, calls)
}

func TestExternalSigner_Does_Not_Log_Callbacks(t *testing.T) {
	req := require.New(t)
	keys := newKeyPair(t)
	s := NewExternalSigner(keys.public, CallbackFuncs{})

	req.Equal(fmt.Sprintf("ExternalSigner{pubkey: %s}", keys.public), s.String())
	req.Equal(backendName, s.Backend())
}
