package runtime

import (
	"chat-bridge/broadcast"
	"chat-bridge/domain"
	"chat-bridge/errors"
	"chat-bridge/signer"
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/nbd-wtf/go-nostr"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newCore(bufferSize int) *Core {
	return NewCore(logs.GetLoggerFromLevel(slog.LevelDebug), Config{
		BufferSize:          bufferSize,
		SearchRadiusCap:     100,
		SearchRadiusTimeout: time.Second,
	})
}

func newPubkey(t *testing.T) domain.PublicKey {
	pk, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	require.NoError(t, err)
	return domain.PublicKey(pk)
}

// drain reads a source until it is closed.
func drain[U any](t *testing.T, source domain.UpdateSource[U]) []U {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var out []U
	for {
		v, err := source.Recv(ctx)
		switch {
		case err == nil:
			out = append(out, v)
		case stdErrors.Is(err, broadcast.ErrClosed):
			return out
		default:
			require.NoError(t, err)
		}
	}
}

func TestCore_Group_Subscription_Is_Atomic_Under_Concurrent_Writes(t *testing.T) {
	req := require.New(t)
	const total = 300
	core := newCore(total + 1)
	ctx := context.Background()
	alice := newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{Name: "alice"})
	groupID, err := core.CreateGroup(ctx, alice, lo.ToPtr("team"), domain.GroupTypeGroup, nil)
	req.NoError(err)

	// Given a writer posting while subscribers keep joining
	var subs []domain.MessageSubscription
	var subsMu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			_, err := core.PostMessage(ctx, groupID, alice, fmt.Sprint(i), nil)
			req.NoError(err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			sub, err := core.SubscribeToGroupMessages(ctx, groupID)
			req.NoError(err)
			subsMu.Lock()
			subs = append(subs, sub)
			subsMu.Unlock()
			time.Sleep(time.Millisecond)
		}
	}()
	wg.Wait()
	core.Close()

	// Then every subscriber sees every message exactly once
	for _, sub := range subs {
		seen := make(map[string]int)
		for _, m := range sub.Initial {
			seen[m.ID]++
		}
		for _, u := range drain(t, sub.Updates) {
			req.Equal(domain.TriggerNewMessage, u.Trigger)
			seen[u.Message.ID]++
		}
		req.Len(seen, total)
		for id, count := range seen {
			req.Equal(1, count, "message %s seen %d times", id, count)
		}
	}
}

func TestCore_Reactions_Publish_Full_Message_State(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice, bob := newPubkey(t), newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{})
	core.CreateAccount(bob, domain.Metadata{})
	groupID, err := core.CreateGroup(ctx, alice, nil, domain.GroupTypeGroup, []domain.PublicKey{bob})
	req.NoError(err)
	msg, err := core.PostMessage(ctx, groupID, alice, "hello", nil)
	req.NoError(err)
	sub, err := core.SubscribeToGroupMessages(ctx, groupID)
	req.NoError(err)

	// When two users react and one takes it back
	_, err = core.React(ctx, groupID, alice, msg.ID, "👍")
	req.NoError(err)
	_, err = core.React(ctx, groupID, bob, msg.ID, "👍")
	req.NoError(err)
	_, err = core.React(ctx, groupID, bob, msg.ID, "👍")
	req.NoError(err)
	_, err = core.Unreact(ctx, groupID, alice, msg.ID, "👍")
	req.NoError(err)
	core.Close()

	// Then each update carries the whole summary, duplicates are ignored
	updates := drain(t, sub.Updates)
	req.Len(updates, 3)
	req.Equal(domain.TriggerReactionAdded, updates[0].Trigger)
	req.Equal(uint64(1), updates[0].Message.Reactions.ByEmoji[0].Count)
	req.Equal(domain.TriggerReactionAdded, updates[1].Trigger)
	req.Equal(uint64(2), updates[1].Message.Reactions.ByEmoji[0].Count)
	req.Equal([]domain.PublicKey{alice, bob}, updates[1].Message.Reactions.ByEmoji[0].Users)
	req.Equal(domain.TriggerReactionRemoved, updates[2].Trigger)
	req.Equal([]domain.PublicKey{bob}, updates[2].Message.Reactions.ByEmoji[0].Users)
	req.Len(updates[2].Message.Reactions.UserReactions, 1)
}

func TestCore_Deleting_Last_Message_Updates_Chat_List(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice := newPubkey(t)
	account := core.CreateAccount(alice, domain.Metadata{DisplayName: "Alice"})
	groupID, err := core.CreateGroup(ctx, alice, lo.ToPtr("team"), domain.GroupTypeGroup, nil)
	req.NoError(err)
	_, err = core.PostMessage(ctx, groupID, alice, "first", nil)
	req.NoError(err)
	second, err := core.PostMessage(ctx, groupID, alice, "second", nil)
	req.NoError(err)

	chatList, err := core.SubscribeToChatList(ctx, account)
	req.NoError(err)
	messages, err := core.SubscribeToGroupMessages(ctx, groupID)
	req.NoError(err)
	req.Len(chatList.Initial, 1)
	req.Equal("second", chatList.Initial[0].LastMessage.Content)
	req.Equal("Alice", *chatList.Initial[0].LastMessage.AuthorDisplayName)

	// When the previewed message is deleted
	req.NoError(core.DeleteMessage(ctx, groupID, alice, second.ID))
	core.Close()

	// Then the preview falls back to the previous message
	listUpdates := drain(t, chatList.Updates)
	req.Len(listUpdates, 1)
	req.Equal(domain.TriggerLastMessageDeleted, listUpdates[0].Trigger)
	req.Equal("first", listUpdates[0].Item.LastMessage.Content)

	msgUpdates := drain(t, messages.Updates)
	req.Len(msgUpdates, 1)
	req.Equal(domain.TriggerMessageDeleted, msgUpdates[0].Trigger)
	req.True(msgUpdates[0].Message.IsDeleted)
	req.Empty(msgUpdates[0].Message.Content)
}

func TestCore_Delete_Requires_Author(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	alice, bob := newPubkey(t), newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{})
	core.CreateAccount(bob, domain.Metadata{})
	groupID, err := core.CreateGroup(ctx, alice, nil, domain.GroupTypeGroup, []domain.PublicKey{bob})
	req.NoError(err)
	msg, err := core.PostMessage(ctx, groupID, alice, "mine", nil)
	req.NoError(err)

	err = core.DeleteMessage(ctx, groupID, bob, msg.ID)

	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestCore_Invites_And_Messages_Notify_Local_Receivers(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice, bob, remote := newPubkey(t), newPubkey(t), newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{Name: "alice"})
	bobAccount := core.CreateAccount(bob, domain.Metadata{Name: "bob"})
	notifications := core.SubscribeToNotifications(ctx)
	req.Empty(notifications.Initial)

	// Given a DM with a local and a remote member
	groupID, err := core.CreateGroup(ctx, alice, nil, domain.GroupTypeDirectMessage, []domain.PublicKey{bob, remote})
	req.NoError(err)
	_, err = core.PostMessage(ctx, groupID, alice, "hi bob", nil)
	req.NoError(err)
	core.Close()

	// Then only bob is notified, never the author
	got := drain(t, notifications.Updates)
	req.Len(got, 2)
	req.Equal(domain.NotificationGroupInvite, got[0].Trigger)
	req.Equal(bob, got[0].Receiver.Pubkey)
	req.Equal(domain.NotificationNewMessage, got[1].Trigger)
	req.Equal("hi bob", got[1].Content)
	req.True(got[1].IsDM)
	req.Equal("alice", *got[1].Sender.DisplayName)

	// And bob sees a pending chat welcomed by alice
	list, err := core.GetChatList(ctx, bobAccount)
	req.NoError(err)
	req.Len(list, 1)
	req.True(list[0].PendingConfirmation)
	req.Equal(alice, *list[0].WelcomerPubkey)
}

func TestCore_Unknown_Keys(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	stranger := newPubkey(t)

	_, err := core.FindAccountByPubkey(ctx, stranger)
	req.ErrorIs(err, errors.ErrAccountNotFound)

	_, err = core.SubscribeToChatList(ctx, domain.Account{Pubkey: stranger})
	req.ErrorIs(err, errors.ErrAccountNotFound)

	_, err = core.SubscribeToGroupMessages(ctx, domain.GroupID("abcd"))
	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestCore_Prune_Forgets_Abandoned_Feeds(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	alice := newPubkey(t)
	account := core.CreateAccount(alice, domain.Metadata{})
	sub, err := core.SubscribeToChatList(ctx, account)
	req.NoError(err)
	req.Equal(1, core.Stats().ChatListTopics)

	// When the only receiver goes away
	sub.Updates.(*broadcast.Receiver[domain.ChatListUpdate]).Close()

	// Then the topic is pruned
	req.Equal(1, core.Prune())
	req.Zero(core.Stats().ChatListTopics)
}

func TestCore_Publish_Key_Package_With_External_Signer(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	sk := nostr.GeneratePrivateKey()
	pk, err := nostr.GetPublicKey(sk)
	req.NoError(err)
	pubkey := domain.PublicKey(pk)

	s := signer.NewExternalSigner(pubkey, signer.CallbackFuncs{
		SignFn: func(_ context.Context, unsignedJSON string) (string, error) {
			var evt nostr.Event
			if err := json.Unmarshal([]byte(unsignedJSON), &evt); err != nil {
				return "", err
			}
			if err := evt.Sign(sk); err != nil {
				return "", err
			}
			signed, err := json.Marshal(&evt)
			return string(signed), err
		},
	})

	// When the account logs in and publishes
	account, err := core.LoginWithExternalSigner(ctx, pubkey)
	req.NoError(err)
	req.True(account.ExternalSigner)
	core.RegisterExternalSigner(pubkey, s)
	req.NoError(core.PublishKeyPackageWithSigner(ctx, account, s))

	// Then a signed key package is kept for the account
	evt, ok := core.KeyPackage(pubkey)
	req.True(ok)
	req.Equal(KindKeyPackage, evt.Kind)
	req.Equal(pk, evt.PubKey)
	registered, ok := core.Signer(pubkey)
	req.True(ok)
	req.Equal("external signer (NIP-55)", registered.Backend())
}

func TestCore_Key_Package_Signed_By_Another_Key_Is_Refused(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	pubkey := newPubkey(t)
	otherSecret := nostr.GeneratePrivateKey()

	s := signer.NewExternalSigner(pubkey, signer.CallbackFuncs{
		SignFn: func(_ context.Context, unsignedJSON string) (string, error) {
			var evt nostr.Event
			_ = json.Unmarshal([]byte(unsignedJSON), &evt)
			_ = evt.Sign(otherSecret)
			signed, err := json.Marshal(&evt)
			return string(signed), err
		},
	})
	account, err := core.LoginWithExternalSigner(ctx, pubkey)
	req.NoError(err)

	err = core.PublishKeyPackageWithSigner(ctx, account, s)

	req.ErrorIs(err, errors.ErrSigningFailed)
	_, ok := core.KeyPackage(pubkey)
	req.False(ok)
}

func TestCore_Stale_Unregister_Keeps_Newer_Signer(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	pubkey := newPubkey(t)

	// Given two logins for the same pubkey, the second replacing the first
	first := signer.NewExternalSigner(pubkey, signer.CallbackFuncs{})
	second := signer.NewExternalSigner(pubkey, signer.CallbackFuncs{})
	for _, s := range []*signer.ExternalSigner{first, second} {
		_, err := core.LoginWithExternalSigner(ctx, pubkey)
		req.NoError(err)
		core.RegisterExternalSigner(pubkey, s)
	}

	// When the first session goes away
	removed := core.UnregisterExternalSigner(pubkey, first)

	// Then the second signer is still the registered one
	req.False(removed)
	current, ok := core.Signer(pubkey)
	req.True(ok)
	req.Same(second, current)

	// And its own logout removes it
	req.True(core.UnregisterExternalSigner(pubkey, second))
	_, ok = core.Signer(pubkey)
	req.False(ok)
}

func TestCore_Subscribe_After_Close_Ends_Immediately(t *testing.T) {
	req := require.New(t)
	core := newCore(4)
	ctx := context.Background()
	alice := newPubkey(t)
	account := core.CreateAccount(alice, domain.Metadata{})
	groupID, err := core.CreateGroup(ctx, alice, lo.ToPtr("team"), domain.GroupTypeGroup, nil)
	req.NoError(err)

	// Given the core is closed
	core.Close()

	// When feeds are subscribed afterwards
	chats, err := core.SubscribeToChatList(ctx, account)
	req.NoError(err)
	messages, err := core.SubscribeToGroupMessages(ctx, groupID)
	req.NoError(err)

	// Then their update sources are already closed
	req.Empty(drain(t, chats.Updates))
	req.Empty(drain(t, messages.Updates))
	req.Zero(core.Stats().ChatListTopics)
}

func TestCore_Accept_Account_Group_Confirms_Pending_Invite(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice, bob := newPubkey(t), newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{})
	bobAccount := core.CreateAccount(bob, domain.Metadata{})
	groupID, err := core.CreateGroup(ctx, alice, lo.ToPtr("team"), domain.GroupTypeGroup, []domain.PublicKey{bob})
	req.NoError(err)
	sub, err := core.SubscribeToChatList(ctx, bobAccount)
	req.NoError(err)
	req.Len(sub.Initial, 1)
	req.True(sub.Initial[0].PendingConfirmation)
	req.Equal(alice, *sub.Initial[0].WelcomerPubkey)

	// When bob accepts the invite
	membership, err := core.AcceptAccountGroup(ctx, bob, groupID)

	// Then the membership is confirmed and the chat list entry no longer pending
	req.NoError(err)
	req.True(membership.IsAccepted())
	req.Equal(alice, *membership.WelcomerPubkey)
	req.Equal(groupID, membership.MlsGroupID)
	core.Close()
	updates := drain(t, sub.Updates)
	req.Len(updates, 1)
	req.Equal(domain.TriggerNewGroup, updates[0].Trigger)
	req.False(updates[0].Item.PendingConfirmation)
	req.Nil(updates[0].Item.WelcomerPubkey)
}

func TestCore_Decline_Account_Group_Hides_It(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice, bob := newPubkey(t), newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{})
	bobAccount := core.CreateAccount(bob, domain.Metadata{})
	kept, err := core.CreateGroup(ctx, alice, lo.ToPtr("kept"), domain.GroupTypeGroup, []domain.PublicKey{bob})
	req.NoError(err)
	declined, err := core.CreateGroup(ctx, alice, lo.ToPtr("spam"), domain.GroupTypeGroup, []domain.PublicKey{bob})
	req.NoError(err)

	// When bob declines one invite
	membership, err := core.DeclineAccountGroup(ctx, bob, declined)
	req.NoError(err)
	req.True(membership.IsDeclined())

	// Then it leaves his chat list and its activity no longer reaches him
	chats, err := core.GetChatList(ctx, bobAccount)
	req.NoError(err)
	req.Equal([]domain.GroupID{kept}, lo.Map(chats, func(c domain.ChatSummary, _ int) domain.GroupID { return c.MlsGroupID }))
	sub, err := core.SubscribeToChatList(ctx, bobAccount)
	req.NoError(err)
	_, err = core.PostMessage(ctx, declined, alice, "buy now", nil)
	req.NoError(err)
	_, err = core.PostMessage(ctx, kept, alice, "hi", nil)
	req.NoError(err)
	core.Close()
	updates := drain(t, sub.Updates)
	req.Len(updates, 1)
	req.Equal(kept, updates[0].Item.MlsGroupID)

	// And the sender still sees the group
	aliceChats, err := core.GetChatList(ctx, domain.Account{Pubkey: alice})
	req.NoError(err)
	req.Len(aliceChats, 2)
}

func TestCore_Mark_Message_Read(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice, bob := newPubkey(t), newPubkey(t)
	core.CreateAccount(alice, domain.Metadata{})
	core.CreateAccount(bob, domain.Metadata{})
	groupID, err := core.CreateGroup(ctx, alice, nil, domain.GroupTypeGroup, []domain.PublicKey{bob})
	req.NoError(err)
	msg, err := core.PostMessage(ctx, groupID, alice, "hello", nil)
	req.NoError(err)

	// When bob marks the message as read
	membership, err := core.MarkMessageRead(ctx, bob, msg.ID)

	// Then his marker points at it, still pending confirmation
	req.NoError(err)
	req.Equal(groupID, membership.MlsGroupID)
	req.Equal(msg.ID, *membership.LastReadMessageID)
	req.True(membership.IsPending())

	// And a message outside his groups is unknown
	_, err = core.MarkMessageRead(ctx, bob, "deadbeef")
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestCore_Send_Message_To_Group_Requires_Local_Account(t *testing.T) {
	req := require.New(t)
	core := newCore(16)
	ctx := context.Background()
	alice, stranger := newPubkey(t), newPubkey(t)
	account := core.CreateAccount(alice, domain.Metadata{})
	groupID, err := core.CreateGroup(ctx, alice, nil, domain.GroupTypeGroup, nil)
	req.NoError(err)

	msg, err := core.SendMessageToGroup(ctx, account, groupID, "hello", nil)
	req.NoError(err)
	req.Equal("hello", msg.Content)
	req.Equal(alice, msg.Pubkey)

	_, err = core.SendMessageToGroup(ctx, domain.Account{Pubkey: stranger}, groupID, "hi", nil)
	req.ErrorIs(err, errors.ErrAccountNotFound)

	_, err = core.AcceptAccountGroup(ctx, stranger, groupID)
	req.ErrorIs(err, errors.ErrGroupNotFound)
}
