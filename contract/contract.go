//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-bridge/domain"
	"context"
	"reflect"

	"github.com/nbd-wtf/go-nostr"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Sink is the remote consumer of a stream.
// Add returns an error once the consumer is gone; the caller must stop
// emitting at that point.
type Sink[T any] interface {
	Add(ctx context.Context, item T) error
}

// ICore is the messaging core the bridge is attached to.
// Every Subscribe* must be atomic: the snapshot and the starting point of the
// update source correspond to the same instant.
type ICore interface {
	FindAccountByPubkey(ctx context.Context, pubkey domain.PublicKey) (domain.Account, error)
	GetChatList(ctx context.Context, account domain.Account) ([]domain.ChatSummary, error)
	SubscribeToChatList(ctx context.Context, account domain.Account) (domain.ChatListSubscription, error)
	FetchAggregatedMessages(ctx context.Context, pubkey domain.PublicKey, groupID domain.GroupID) ([]domain.ChatMessage, error)
	SubscribeToGroupMessages(ctx context.Context, groupID domain.GroupID) (domain.MessageSubscription, error)
	SubscribeToNotifications(ctx context.Context) domain.NotificationSubscription
	SearchUsers(ctx context.Context, params domain.UserSearchParams) (domain.UserSearchSubscription, error)
	SendMessageToGroup(ctx context.Context, account domain.Account, groupID domain.GroupID, content string, replyTo *string) (domain.ChatMessage, error)
	AcceptAccountGroup(ctx context.Context, pubkey domain.PublicKey, groupID domain.GroupID) (domain.AccountGroup, error)
	DeclineAccountGroup(ctx context.Context, pubkey domain.PublicKey, groupID domain.GroupID) (domain.AccountGroup, error)
	MarkMessageRead(ctx context.Context, pubkey domain.PublicKey, messageID string) (domain.AccountGroup, error)
	LoginWithExternalSigner(ctx context.Context, pubkey domain.PublicKey) (domain.Account, error)
	RegisterExternalSigner(pubkey domain.PublicKey, signer INostrSigner)
	// UnregisterExternalSigner is a compare-and-delete: it only removes signer
	// if it is still the one registered for pubkey.
	UnregisterExternalSigner(pubkey domain.PublicKey, signer INostrSigner) bool
	PublishKeyPackageWithSigner(ctx context.Context, account domain.Account, signer INostrSigner) error
}

// INostrSigner is the signer capability set the core relies on.
type INostrSigner interface {
	Backend() string
	GetPublicKey(ctx context.Context) (domain.PublicKey, error)
	SignEvent(ctx context.Context, unsigned domain.UnsignedEvent) (*nostr.Event, error)
	Nip04Encrypt(ctx context.Context, counterparty domain.PublicKey, content string) (string, error)
	Nip04Decrypt(ctx context.Context, counterparty domain.PublicKey, encrypted string) (string, error)
	Nip44Encrypt(ctx context.Context, counterparty domain.PublicKey, content string) (string, error)
	Nip44Decrypt(ctx context.Context, counterparty domain.PublicKey, payload string) (string, error)
}

// IForeignSigner is the host-side port: one call, one answer. Implementations
// must accept concurrent calls.
type IForeignSigner interface {
	SignEvent(ctx context.Context, unsignedJSON string) (string, error)
	Nip04Encrypt(ctx context.Context, content, pubkeyHex string) (string, error)
	Nip04Decrypt(ctx context.Context, content, pubkeyHex string) (string, error)
	Nip44Encrypt(ctx context.Context, content, pubkeyHex string) (string, error)
	Nip44Decrypt(ctx context.Context, content, pubkeyHex string) (string, error)
}
