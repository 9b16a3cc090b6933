package main

import (
	"chat-bridge/infrastructure/grpc/client"
	pb "chat-bridge/proto/bridge"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"BRIDGE_ADDR,default=localhost:8080"`
	HostID        string `env:"HOST_ID,required=true"`
	HostPassword  string `env:"HOST_PASSWORD,required=true"`
	Feed          string `env:"FEED,default=chat_list"`
	Account       string `env:"ACCOUNT"`
	GroupID       string `env:"GROUP_ID"`
	Query         string `env:"QUERY"`
	RadiusEnd     uint32 `env:"RADIUS_END,default=2"`
	Message       string `env:"MESSAGE"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run logs the host in and tails one feed until Ctrl+C or the end of the
// stream.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := client.Dial(config.ServerAddress)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing connection...")
		_ = c.Close()
	}()

	if err := c.Login(ctx, config.HostID, config.HostPassword); err != nil {
		return exitRuntime, fmt.Errorf("login failed: %w", err)
	}
	log.Info("Connected", "address", config.ServerAddress, "feed", config.Feed)

	err = tail(ctx, c, config)
	if ctx.Err() != nil {
		return exitOK, nil
	}
	if err != nil {
		return exitRuntime, fmt.Errorf("stream error: %w", err)
	}
	return exitOK, nil
}

func tail(ctx context.Context, c *client.BridgeClient, config Config) error {
	switch config.Feed {
	case "chat_list":
		return c.TailChatList(ctx, config.Account, func(item *pb.ChatListStreamItem) error {
			if snapshot := item.GetInitialSnapshot(); snapshot != nil {
				renderChats(snapshot.Items)
				return nil
			}
			u := item.GetUpdate()
			printUpdate(u.Trigger.String(), chatName(u.Item), lastMessage(u.Item))
			return nil
		})
	case "messages":
		return c.TailGroupMessages(ctx, config.GroupID, func(item *pb.MessageStreamItem) error {
			if snapshot := item.GetInitialSnapshot(); snapshot != nil {
				renderMessages(snapshot.Items)
				return nil
			}
			u := item.GetUpdate()
			printUpdate(u.Trigger.String(), short(u.Message.GetPubkey()), messageLine(u.Message))
			return nil
		})
	case "notifications":
		return c.TailNotifications(ctx, func(item *pb.NotificationStreamItem) error {
			n := item.GetUpdate()
			if n == nil {
				return nil
			}
			printUpdate(n.Trigger.String(), short(n.Sender.GetPubkey()), n.Content)
			return nil
		})
	case "search":
		return c.SearchUsers(ctx, &pb.SearchUsersRequest{
			AccountPubkey: config.Account,
			Query:         config.Query,
			RadiusEnd:     config.RadiusEnd,
		}, func(item *pb.UserSearchStreamItem) error {
			u := item.GetUpdate()
			if u == nil {
				return nil
			}
			names := lo.Map(u.NewResults, func(r *pb.UserSearchResult, _ int) string {
				return fmt.Sprintf("%s(r%d,%s)", r.Metadata.GetName(), r.Radius, r.MatchQuality)
			})
			printUpdate(u.Trigger.GetKind().String(), fmt.Sprintf("total=%d", u.TotalResultCount), strings.Join(names, " "))
			return nil
		})
	case "send":
		m, err := c.SendMessageToGroup(ctx, config.Account, config.GroupID, config.Message, "")
		if err != nil {
			return err
		}
		renderMessages([]*pb.ChatMessage{m})
		return nil
	default:
		return fmt.Errorf("unknown feed %q", config.Feed)
	}
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderChats(chats []*pb.ChatSummary) {
	table := newTable([]string{"Group", "Name", "Type", "Pending", "Last message"})
	for _, chat := range chats {
		table.Append([]string{
			short(chat.MlsGroupId),
			chatName(chat),
			chat.GroupType.String(),
			fmt.Sprintf("%t", chat.PendingConfirmation),
			lastMessage(chat),
		})
	}
	table.Render()
}

func renderMessages(messages []*pb.ChatMessage) {
	table := newTable([]string{"At", "Author", "Message", "Reactions"})
	for _, m := range messages {
		reactions := lo.Map(m.GetReactions().GetByEmoji(), func(r *pb.EmojiReaction, _ int) string {
			return fmt.Sprintf("%s%d", r.Emoji, r.Count)
		})
		table.Append([]string{
			m.CreatedAt.AsTime().Local().Format(time.TimeOnly),
			short(m.Pubkey),
			messageLine(m),
			strings.Join(reactions, " "),
		})
	}
	table.Render()
}

func printUpdate(trigger, who, what string) {
	fmt.Printf("%s %s %s %s\n",
		color.Gray.Render(time.Now().Format(time.TimeOnly)),
		color.Cyan.Render(trigger),
		color.Yellow.Render(who),
		what)
}

func chatName(chat *pb.ChatSummary) string {
	return lo.CoalesceOrEmpty(chat.GetName(), "-")
}

func lastMessage(chat *pb.ChatSummary) string {
	return chat.GetLastMessage().GetContent()
}

func messageLine(m *pb.ChatMessage) string {
	if m.GetIsDeleted() {
		return color.Red.Render("(deleted)")
	}
	return m.GetContent()
}

func short(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
