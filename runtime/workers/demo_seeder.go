package workers

import (
	"chat-bridge/domain"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/samber/lo"
)

// DemoCore is the part of the core the demo seeder drives.
type DemoCore interface {
	CreateAccount(pubkey domain.PublicKey, metadata domain.Metadata) domain.Account
	Follow(follower, target domain.PublicKey)
	CreateGroup(ctx context.Context, creator domain.PublicKey, name *string,
		groupType domain.GroupType, members []domain.PublicKey) (domain.GroupID, error)
	AcceptAccountGroup(ctx context.Context, member domain.PublicKey, groupID domain.GroupID) (domain.AccountGroup, error)
	PostMessage(ctx context.Context, groupID domain.GroupID, author domain.PublicKey,
		content string, replyTo *string) (domain.ChatMessage, error)
	React(ctx context.Context, groupID domain.GroupID, user domain.PublicKey,
		messageID, emoji string) (domain.ChatMessage, error)
}

var (
	demoNames  = []string{"alice", "bob", "carol", "dave", "erin"}
	demoLines  = []string{"gm", "anyone around?", "shipping the relay today", "lgtm", "see you at the meetup"}
	demoEmojis = []string{"👍", "🔥", "🎉"}
)

// DemoSeederWorker fills an empty core with a few accounts, follows and one
// group, then keeps the feeds moving with messages and reactions.
type DemoSeederWorker struct {
	log      *slog.Logger
	core     DemoCore
	interval time.Duration
	accounts []domain.PublicKey
	groupID  domain.GroupID
	lastID   string
}

func NewDemoSeederWorker(log *slog.Logger, core DemoCore, interval time.Duration) *DemoSeederWorker {
	return &DemoSeederWorker{log: log, core: core, interval: interval}
}

func (w *DemoSeederWorker) Run(ctx context.Context) error {
	if w.groupID == "" {
		if err := w.seed(ctx); err != nil {
			return err
		}
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *DemoSeederWorker) seed(ctx context.Context) error {
	w.accounts = lo.Map(demoNames, func(name string, _ int) domain.PublicKey {
		pk, _ := nostr.GetPublicKey(nostr.GeneratePrivateKey())
		pubkey := domain.PublicKey(pk)
		w.core.CreateAccount(pubkey, domain.Metadata{
			Name:        name,
			DisplayName: fmt.Sprintf("%s (demo)", name),
			Nip05:       name + "@demo.local",
		})
		w.log.Info("Demo account", "name", name, "npub", pubkey.Npub())
		return pubkey
	})
	// A follow chain gives the search several radii to walk
	for i := 0; i+1 < len(w.accounts); i++ {
		w.core.Follow(w.accounts[i], w.accounts[i+1])
	}

	groupID, err := w.core.CreateGroup(ctx, w.accounts[0], lo.ToPtr("demo"), domain.GroupTypeGroup, w.accounts[1:3])
	if err != nil {
		return fmt.Errorf("demo group: %w", err)
	}
	for _, member := range w.accounts[1:3] {
		if _, err := w.core.AcceptAccountGroup(ctx, member, groupID); err != nil {
			return fmt.Errorf("demo invite: %w", err)
		}
	}
	w.groupID = groupID
	w.log.Info("Demo group", "group_id", groupID)
	return nil
}

func (w *DemoSeederWorker) tick(ctx context.Context) error {
	author := w.accounts[rand.IntN(3)]
	if w.lastID != "" && rand.IntN(3) == 0 {
		_, err := w.core.React(ctx, w.groupID, author, w.lastID, demoEmojis[rand.IntN(len(demoEmojis))])
		return err
	}
	msg, err := w.core.PostMessage(ctx, w.groupID, author, demoLines[rand.IntN(len(demoLines))], nil)
	if err != nil {
		return err
	}
	w.lastID = msg.ID
	return nil
}
