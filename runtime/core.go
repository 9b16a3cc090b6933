// Package runtime is an in-process messaging core. It keeps accounts, groups
// and messages in memory and publishes every change on the feeds the bridge
// relays. It has no persistence and no group-messaging protocol: it exists to
// drive the bridge in the binary and in tests.
package runtime

import (
	"chat-bridge/broadcast"
	"chat-bridge/contract"
	"chat-bridge/domain"
	"chat-bridge/errors"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nbd-wtf/go-nostr"
	"github.com/samber/lo"
)

const (
	// KindKeyPackage is the Nostr kind of an MLS key package event.
	KindKeyPackage = 443
	// KindChatMessage is the kind of messages inside an MLS group.
	KindChatMessage = 9
)

type Config struct {
	BufferSize          int
	SearchRadiusCap     int
	SearchRadiusTimeout time.Duration
}

type group struct {
	id        domain.GroupID
	name      *string
	groupType domain.GroupType
	createdAt time.Time
	members   []domain.PublicKey
	joined    map[domain.PublicKey]*membership
	messages  []*domain.ChatMessage
	byID      map[string]*domain.ChatMessage
}

// membership is nil-confirmation while an invite is pending.
type membership struct {
	welcomer     *domain.PublicKey
	confirmation *bool
	lastRead     *string
	createdAt    time.Time
	updatedAt    time.Time
}

func (m *membership) declined() bool { return m.confirmation != nil && !*m.confirmation }

// Core is safe for concurrent use. Every state change and the update it
// publishes happen under mu, and every Subscribe* takes its snapshot and its
// receiver under mu too, so a subscriber never misses or doubles a change.
type Core struct {
	mu          sync.Mutex
	log         *slog.Logger
	cfg         Config
	now         func() time.Time
	accounts    map[domain.PublicKey]*domain.Account
	metadata    map[domain.PublicKey]domain.Metadata
	follows     map[domain.PublicKey][]domain.PublicKey
	groups      map[domain.GroupID]*group
	signers     map[domain.PublicKey]contract.INostrSigner
	keyPackages map[domain.PublicKey]nostr.Event

	chatLists     *Registry[domain.ChatListUpdate]
	messages      *Registry[domain.MessageUpdate]
	notifications *broadcast.Broadcaster[domain.NotificationUpdate]
}

var _ contract.ICore = (*Core)(nil)

func NewCore(log *slog.Logger, cfg Config) *Core {
	if cfg.SearchRadiusCap <= 0 {
		cfg.SearchRadiusCap = 1000
	}
	if cfg.SearchRadiusTimeout <= 0 {
		cfg.SearchRadiusTimeout = 5 * time.Second
	}
	return &Core{
		log:           log,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
		accounts:      make(map[domain.PublicKey]*domain.Account),
		metadata:      make(map[domain.PublicKey]domain.Metadata),
		follows:       make(map[domain.PublicKey][]domain.PublicKey),
		groups:        make(map[domain.GroupID]*group),
		signers:       make(map[domain.PublicKey]contract.INostrSigner),
		keyPackages:   make(map[domain.PublicKey]nostr.Event),
		chatLists:     NewRegistry[domain.ChatListUpdate](cfg.BufferSize),
		messages:      NewRegistry[domain.MessageUpdate](cfg.BufferSize),
		notifications: broadcast.New[domain.NotificationUpdate](cfg.BufferSize),
	}
}

// Close ends every feed. Relays drain what is left and stop.
func (c *Core) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chatLists.Close()
	c.messages.Close()
	c.notifications.Close()
}

// Prune forgets feeds nobody listens to anymore.
func (c *Core) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatLists.Prune() + c.messages.Prune()
}

// Stats is a point in time view of the feeds, for health reporting.
type Stats struct {
	Accounts              int `json:"accounts"`
	Groups                int `json:"groups"`
	ChatListTopics        int `json:"chat_list_topics"`
	MessageTopics         int `json:"message_topics"`
	NotificationReceivers int `json:"notification_receivers"`
}

func (c *Core) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Accounts:              len(c.accounts),
		Groups:                len(c.groups),
		ChatListTopics:        len(c.chatLists.Keys()),
		MessageTopics:         len(c.messages.Keys()),
		NotificationReceivers: c.notifications.ReceiverCount(),
	}
}

// ---- accounts ----

// CreateAccount adds a local account with a managed key. It is a no-op for an
// existing account apart from updating its metadata.
func (c *Core) CreateAccount(pubkey domain.PublicKey, metadata domain.Metadata) domain.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	account := c.ensureAccount(pubkey, false)
	c.metadata[pubkey] = metadata
	return *account
}

// SetMetadata records the profile of any user, local or not.
func (c *Core) SetMetadata(pubkey domain.PublicKey, metadata domain.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadata[pubkey] = metadata
}

// Follow adds target to the follow list of follower, once.
func (c *Core) Follow(follower, target domain.PublicKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lo.Contains(c.follows[follower], target) {
		return
	}
	c.follows[follower] = append(c.follows[follower], target)
}

func (c *Core) ensureAccount(pubkey domain.PublicKey, external bool) *domain.Account {
	if account, ok := c.accounts[pubkey]; ok {
		if external {
			account.ExternalSigner = true
		}
		return account
	}
	account := &domain.Account{Pubkey: pubkey, ExternalSigner: external, CreatedAt: c.now()}
	c.accounts[pubkey] = account
	return account
}

func (c *Core) FindAccountByPubkey(_ context.Context, pubkey domain.PublicKey) (domain.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	account, ok := c.accounts[pubkey]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", errors.ErrAccountNotFound, pubkey)
	}
	return *account, nil
}

func (c *Core) LoginWithExternalSigner(_ context.Context, pubkey domain.PublicKey) (domain.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	account := c.ensureAccount(pubkey, true)
	c.log.Info("Account logged in with external signer", "pubkey", pubkey)
	return *account, nil
}

func (c *Core) RegisterExternalSigner(pubkey domain.PublicKey, signer contract.INostrSigner) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signers[pubkey] = signer
}

// Signer returns the signer registered for pubkey, if any.
func (c *Core) Signer(pubkey domain.PublicKey) (contract.INostrSigner, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.signers[pubkey]
	return s, ok
}

// UnregisterExternalSigner drops the signer of pubkey if it is still signer.
// A newer login for the same pubkey keeps its own signer, so a stale socket
// closing late cannot remove it. It reports whether signer was removed.
func (c *Core) UnregisterExternalSigner(pubkey domain.PublicKey, signer contract.INostrSigner) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.signers[pubkey]
	if !ok || current != signer {
		return false
	}
	delete(c.signers, pubkey)
	return true
}

// PublishKeyPackageWithSigner asks signer to sign a fresh key package event
// for account. The signing call runs without holding the core lock since the
// signer may wait for a human.
func (c *Core) PublishKeyPackageWithSigner(ctx context.Context, account domain.Account, signer contract.INostrSigner) error {
	material := make([]byte, 32)
	if _, err := rand.Read(material); err != nil {
		return fmt.Errorf("key package material: %w", err)
	}
	unsigned := domain.UnsignedEvent{
		PubKey:    account.Pubkey,
		CreatedAt: nostr.Timestamp(c.now().Unix()),
		Kind:      KindKeyPackage,
		Tags: nostr.Tags{
			{"mls_protocol_version", "1.0"},
			{"ciphersuite", "0x0001"},
			{"client", "chat-bridge"},
		},
		Content: hex.EncodeToString(material),
	}

	evt, err := signer.SignEvent(ctx, unsigned)
	if err != nil {
		return err
	}
	if evt.PubKey != account.Pubkey.Hex() {
		return fmt.Errorf("%w: key package signed by %s", errors.ErrSigningFailed, evt.PubKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyPackages[account.Pubkey] = *evt
	c.log.Info("Key package published", "pubkey", account.Pubkey, "event_id", evt.ID)
	return nil
}

// KeyPackage returns the last key package published for pubkey.
func (c *Core) KeyPackage(pubkey domain.PublicKey) (nostr.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	evt, ok := c.keyPackages[pubkey]
	return evt, ok
}

// ---- chat list ----

func (c *Core) GetChatList(_ context.Context, account domain.Account) ([]domain.ChatSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.accounts[account.Pubkey]; !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrAccountNotFound, account.Pubkey)
	}
	return c.chatListOf(account.Pubkey), nil
}

func (c *Core) SubscribeToChatList(_ context.Context, account domain.Account) (domain.ChatListSubscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.accounts[account.Pubkey]; !ok {
		return domain.ChatListSubscription{}, fmt.Errorf("%w: %s", errors.ErrAccountNotFound, account.Pubkey)
	}
	return domain.ChatListSubscription{
		Initial: c.chatListOf(account.Pubkey),
		Updates: c.chatLists.Topic(account.Pubkey.Hex()).Subscribe(),
	}, nil
}

// chatListOf sorts by last activity, most recent first.
func (c *Core) chatListOf(pubkey domain.PublicKey) []domain.ChatSummary {
	var summaries []domain.ChatSummary
	for _, g := range c.groups {
		if m, ok := g.joined[pubkey]; ok && !m.declined() {
			summaries = append(summaries, c.summaryFor(g, pubkey))
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return lastActivity(summaries[i]).After(lastActivity(summaries[j]))
	})
	return summaries
}

func lastActivity(s domain.ChatSummary) time.Time {
	if s.LastMessage != nil {
		return s.LastMessage.CreatedAt
	}
	return s.CreatedAt
}

func (c *Core) summaryFor(g *group, viewer domain.PublicKey) domain.ChatSummary {
	summary := domain.ChatSummary{
		MlsGroupID: g.id,
		Name:       g.name,
		GroupType:  g.groupType,
		CreatedAt:  g.createdAt,
	}
	if g.groupType == domain.GroupTypeDirectMessage {
		if other, ok := lo.Find(g.members, func(m domain.PublicKey) bool { return m != viewer }); ok {
			summary.Name = c.displayName(other)
		}
	}
	if m, ok := g.joined[viewer]; ok && m.confirmation == nil {
		summary.PendingConfirmation = true
		summary.WelcomerPubkey = copyPtr(m.welcomer)
	}
	if last := lastVisible(g); last != nil {
		summary.LastMessage = &domain.ChatMessageSummary{
			MlsGroupID:        g.id,
			Author:            last.Pubkey,
			AuthorDisplayName: c.displayName(last.Pubkey),
			Content:           last.Content,
			CreatedAt:         last.CreatedAt,
		}
	}
	return summary
}

func lastVisible(g *group) *domain.ChatMessage {
	for i := len(g.messages) - 1; i >= 0; i-- {
		if !g.messages[i].IsDeleted {
			return g.messages[i]
		}
	}
	return nil
}

func (c *Core) displayName(pubkey domain.PublicKey) *string {
	metadata, ok := c.metadata[pubkey]
	switch {
	case !ok:
		return nil
	case metadata.DisplayName != "":
		return lo.ToPtr(metadata.DisplayName)
	case metadata.Name != "":
		return lo.ToPtr(metadata.Name)
	default:
		return nil
	}
}

func (c *Core) publishChatList(g *group, trigger domain.ChatListUpdateTrigger) {
	for _, member := range g.members {
		if g.joined[member].declined() {
			continue
		}
		c.chatLists.Publish(member.Hex(), domain.ChatListUpdate{
			Trigger: trigger,
			Item:    c.summaryFor(g, member),
		})
	}
}

// ---- groups and messages ----

// CreateGroup creates a group owned by creator. Every other member is invited:
// the group shows up in their chat list as pending and they get a
// group_invite notification.
func (c *Core) CreateGroup(_ context.Context, creator domain.PublicKey, name *string,
	groupType domain.GroupType, members []domain.PublicKey) (domain.GroupID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.accounts[creator]; !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrAccountNotFound, creator)
	}

	rawID := uuid.New()
	g := &group{
		id:        domain.NewGroupID(rawID[:]),
		name:      name,
		groupType: groupType,
		createdAt: c.now(),
		members:   lo.Uniq(append([]domain.PublicKey{creator}, members...)),
		joined:    make(map[domain.PublicKey]*membership),
		byID:      make(map[string]*domain.ChatMessage),
	}
	for _, member := range g.members {
		m := &membership{createdAt: g.createdAt, updatedAt: g.createdAt}
		if member == creator {
			m.confirmation = lo.ToPtr(true)
		} else {
			m.welcomer = lo.ToPtr(creator)
		}
		g.joined[member] = m
	}
	c.groups[g.id] = g

	c.publishChatList(g, domain.TriggerNewGroup)
	for _, member := range g.members {
		if member == creator {
			continue
		}
		c.notify(g, domain.NotificationGroupInvite, member, creator, "", g.createdAt)
	}
	c.log.Debug("Group created", "group_id", g.id, "members", len(g.members))
	return g.id, nil
}

// AcceptAccountGroup confirms the membership of member. Accepting a pending
// or declined group puts it back in the member's chat list.
func (c *Core) AcceptAccountGroup(_ context.Context, member domain.PublicKey, groupID domain.GroupID) (domain.AccountGroup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, err := c.memberGroup(member, groupID)
	if err != nil {
		return domain.AccountGroup{}, err
	}
	m := g.joined[member]
	if m.confirmation == nil || !*m.confirmation {
		m.confirmation = lo.ToPtr(true)
		m.updatedAt = c.now()
		c.chatLists.Publish(member.Hex(), domain.ChatListUpdate{
			Trigger: domain.TriggerNewGroup,
			Item:    c.summaryFor(g, member),
		})
	}
	return accountGroup(member, g.id, m), nil
}

// DeclineAccountGroup hides the group from the chat list of member. Its chat
// list updates stop reaching member until it accepts again.
func (c *Core) DeclineAccountGroup(_ context.Context, member domain.PublicKey, groupID domain.GroupID) (domain.AccountGroup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, err := c.memberGroup(member, groupID)
	if err != nil {
		return domain.AccountGroup{}, err
	}
	m := g.joined[member]
	if !m.declined() {
		m.confirmation = lo.ToPtr(false)
		m.updatedAt = c.now()
	}
	return accountGroup(member, g.id, m), nil
}

// MarkMessageRead moves the read marker of member to messageID, in whichever
// group of member holds that message.
func (c *Core) MarkMessageRead(_ context.Context, member domain.PublicKey, messageID string) (domain.AccountGroup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, g := range c.groups {
		m, ok := g.joined[member]
		if !ok {
			continue
		}
		if _, ok := g.byID[messageID]; !ok {
			continue
		}
		m.lastRead = lo.ToPtr(messageID)
		m.updatedAt = c.now()
		return accountGroup(member, g.id, m), nil
	}
	return domain.AccountGroup{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, messageID)
}

func accountGroup(member domain.PublicKey, groupID domain.GroupID, m *membership) domain.AccountGroup {
	return domain.AccountGroup{
		AccountPubkey:     member,
		MlsGroupID:        groupID,
		UserConfirmation:  copyPtr(m.confirmation),
		WelcomerPubkey:    copyPtr(m.welcomer),
		LastReadMessageID: copyPtr(m.lastRead),
		CreatedAt:         m.createdAt,
		UpdatedAt:         m.updatedAt,
	}
}

func (c *Core) memberGroup(member domain.PublicKey, groupID domain.GroupID) (*group, error) {
	g, ok := c.groups[groupID]
	if !ok || !lo.Contains(g.members, member) {
		return nil, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	return g, nil
}

func (c *Core) FetchAggregatedMessages(_ context.Context, pubkey domain.PublicKey, groupID domain.GroupID) ([]domain.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.accounts[pubkey]; !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrAccountNotFound, pubkey)
	}
	g, err := c.memberGroup(pubkey, groupID)
	if err != nil {
		return nil, err
	}
	return copyMessages(g), nil
}

func (c *Core) SubscribeToGroupMessages(_ context.Context, groupID domain.GroupID) (domain.MessageSubscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.groups[groupID]
	if !ok {
		return domain.MessageSubscription{}, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	return domain.MessageSubscription{
		Initial: copyMessages(g),
		Updates: c.messages.Topic(groupID.String()).Subscribe(),
	}, nil
}

func copyMessages(g *group) []domain.ChatMessage {
	return lo.Map(g.messages, func(m *domain.ChatMessage, _ int) domain.ChatMessage {
		return cloneMessage(m)
	})
}

// cloneMessage deep copies the slices so a published update never shares
// memory with the core state.
func cloneMessage(m *domain.ChatMessage) domain.ChatMessage {
	out := *m
	out.Tags = lo.Map(m.Tags, func(tag []string, _ int) []string { return append([]string(nil), tag...) })
	out.Reactions = domain.ReactionSummary{
		ByEmoji: lo.Map(m.Reactions.ByEmoji, func(r domain.EmojiReaction, _ int) domain.EmojiReaction {
			r.Users = append([]domain.PublicKey(nil), r.Users...)
			return r
		}),
		UserReactions: append([]domain.UserReaction(nil), m.Reactions.UserReactions...),
	}
	return out
}

// SendMessageToGroup posts content as account. The account must be known
// locally, which PostMessage does not require of remote members.
func (c *Core) SendMessageToGroup(ctx context.Context, account domain.Account, groupID domain.GroupID,
	content string, replyTo *string) (domain.ChatMessage, error) {
	c.mu.Lock()
	_, ok := c.accounts[account.Pubkey]
	c.mu.Unlock()
	if !ok {
		return domain.ChatMessage{}, fmt.Errorf("%w: %s", errors.ErrAccountNotFound, account.Pubkey)
	}
	return c.PostMessage(ctx, groupID, account.Pubkey, content, replyTo)
}

// PostMessage appends a message from author. A non nil replyTo must name a
// message of the same group.
func (c *Core) PostMessage(_ context.Context, groupID domain.GroupID, author domain.PublicKey,
	content string, replyTo *string) (domain.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, err := c.memberGroup(author, groupID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	tags := [][]string{{"h", groupID.String()}}
	if replyTo != nil {
		if _, ok := g.byID[*replyTo]; !ok {
			return domain.ChatMessage{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, *replyTo)
		}
		tags = append(tags, []string{"e", *replyTo, "", "reply"})
	}

	msg := &domain.ChatMessage{
		ID:        eventID(),
		Pubkey:    author,
		Content:   content,
		CreatedAt: c.now(),
		Tags:      tags,
		IsReply:   replyTo != nil,
		ReplyToID: replyTo,
		Kind:      KindChatMessage,
		Reactions: domain.ReactionSummary{ByEmoji: []domain.EmojiReaction{}, UserReactions: []domain.UserReaction{}},
	}
	g.messages = append(g.messages, msg)
	g.byID[msg.ID] = msg

	c.messages.Publish(groupID.String(), domain.MessageUpdate{Trigger: domain.TriggerNewMessage, Message: cloneMessage(msg)})
	c.publishChatList(g, domain.TriggerNewLastMessage)
	for _, member := range g.members {
		if member != author {
			c.notify(g, domain.NotificationNewMessage, member, author, content, msg.CreatedAt)
		}
	}
	return cloneMessage(msg), nil
}

// React adds emoji from user on a message. A user has at most one reaction
// per emoji on a given message.
func (c *Core) React(_ context.Context, groupID domain.GroupID, user domain.PublicKey,
	messageID, emoji string) (domain.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, err := c.liveMessage(groupID, user, messageID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	already := lo.ContainsBy(msg.Reactions.UserReactions, func(r domain.UserReaction) bool {
		return r.User == user && r.Emoji == emoji
	})
	if !already {
		msg.Reactions.UserReactions = append(msg.Reactions.UserReactions, domain.UserReaction{
			ReactionID: eventID(),
			User:       user,
			Emoji:      emoji,
			CreatedAt:  c.now(),
		})
		msg.Reactions.ByEmoji = summarizeReactions(msg.Reactions.UserReactions)
		c.messages.Publish(groupID.String(), domain.MessageUpdate{Trigger: domain.TriggerReactionAdded, Message: cloneMessage(msg)})
	}
	return cloneMessage(msg), nil
}

// Unreact removes the emoji reaction of user, if any.
func (c *Core) Unreact(_ context.Context, groupID domain.GroupID, user domain.PublicKey,
	messageID, emoji string) (domain.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, err := c.liveMessage(groupID, user, messageID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	kept := lo.Reject(msg.Reactions.UserReactions, func(r domain.UserReaction, _ int) bool {
		return r.User == user && r.Emoji == emoji
	})
	if len(kept) != len(msg.Reactions.UserReactions) {
		msg.Reactions.UserReactions = kept
		msg.Reactions.ByEmoji = summarizeReactions(kept)
		c.messages.Publish(groupID.String(), domain.MessageUpdate{Trigger: domain.TriggerReactionRemoved, Message: cloneMessage(msg)})
	}
	return cloneMessage(msg), nil
}

// DeleteMessage marks a message of author as deleted. Deleting the previewed
// message moves the chat list preview back to the previous visible one.
func (c *Core) DeleteMessage(_ context.Context, groupID domain.GroupID, author domain.PublicKey, messageID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, err := c.liveMessage(groupID, author, messageID)
	if err != nil {
		return err
	}
	if msg.Pubkey != author {
		return fmt.Errorf("%w: %s is not the author of %s", errors.ErrMessageNotFound, author, messageID)
	}
	g := c.groups[groupID]
	wasLast := lastVisible(g) == msg

	msg.IsDeleted = true
	msg.Content = ""
	c.messages.Publish(groupID.String(), domain.MessageUpdate{Trigger: domain.TriggerMessageDeleted, Message: cloneMessage(msg)})
	if wasLast {
		c.publishChatList(g, domain.TriggerLastMessageDeleted)
	}
	return nil
}

func (c *Core) liveMessage(groupID domain.GroupID, user domain.PublicKey, messageID string) (*domain.ChatMessage, error) {
	g, err := c.memberGroup(user, groupID)
	if err != nil {
		return nil, err
	}
	msg, ok := g.byID[messageID]
	if !ok || msg.IsDeleted {
		return nil, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, messageID)
	}
	return msg, nil
}

// summarizeReactions groups reactions per emoji in first seen order.
func summarizeReactions(reactions []domain.UserReaction) []domain.EmojiReaction {
	summary := []domain.EmojiReaction{}
	index := make(map[string]int)
	for _, r := range reactions {
		i, ok := index[r.Emoji]
		if !ok {
			i = len(summary)
			index[r.Emoji] = i
			summary = append(summary, domain.EmojiReaction{Emoji: r.Emoji})
		}
		summary[i].Count++
		summary[i].Users = append(summary[i].Users, r.User)
	}
	return summary
}

// ---- notifications ----

func (c *Core) SubscribeToNotifications(_ context.Context) domain.NotificationSubscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.NotificationSubscription{Updates: c.notifications.Subscribe()}
}

// notify only concerns local accounts: remote members have no device here.
func (c *Core) notify(g *group, trigger domain.NotificationTrigger, receiver, sender domain.PublicKey,
	content string, at time.Time) {
	if _, ok := c.accounts[receiver]; !ok {
		return
	}
	_, _ = c.notifications.Send(domain.NotificationUpdate{
		Trigger:    trigger,
		MlsGroupID: g.id,
		GroupName:  g.name,
		IsDM:       g.groupType == domain.GroupTypeDirectMessage,
		Receiver:   c.notificationUser(receiver),
		Sender:     c.notificationUser(sender),
		Content:    content,
		Timestamp:  at,
	})
}

func (c *Core) notificationUser(pubkey domain.PublicKey) domain.NotificationUser {
	user := domain.NotificationUser{Pubkey: pubkey, DisplayName: c.displayName(pubkey)}
	if metadata, ok := c.metadata[pubkey]; ok && metadata.Picture != "" {
		user.PictureURL = lo.ToPtr(metadata.Picture)
	}
	return user
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return lo.ToPtr(*p)
}

func eventID() string {
	raw := make([]byte, 32)
	_, _ = rand.Read(raw)
	return hex.EncodeToString(raw)
}
