package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg-pingbot/internal/logger"
	"tg-pingbot/internal/ping"
	"tg-pingbot/internal/service"
)

// handleCommand dispatches bot commands. Returns true when the message was a
// command, even if handling it failed.
func handleCommand(ctx *th.Context, bot *telego.Bot, message telego.Message) (bool, error) {
	if !strings.HasPrefix(message.Text, "/") {
		return false, nil
	}

	switch commandName(message.Text) {
	case "ping":
		incrementCounter(&totalCommandsProcessed)
		return true, handlePing(ctx, bot, message, ping.SourceAll)
	case "pingadmins":
		incrementCounter(&totalCommandsProcessed)
		return true, handlePing(ctx, bot, message, ping.SourceAdministrators)
	case "pingknown":
		incrementCounter(&totalCommandsProcessed)
		return true, handlePing(ctx, bot, message, ping.SourceDirectory)
	case "status":
		incrementCounter(&totalCommandsProcessed)
		return true, handleStatus(ctx, bot, message)
	case "help":
		incrementCounter(&totalCommandsProcessed)
		return true, sendHelpMessage(ctx, bot, message)
	default:
		// Unknown commands fall through to the member observer.
		return false, nil
	}
}

// commandName extracts the bare command from message text, stripping the
// leading slash, an @BotName suffix and any arguments.
func commandName(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(name, "@"); at != -1 {
		name = name[:at]
	}
	return name
}

// isStale reports whether a message is too old to act on. Long polling can
// replay a backlog after downtime and a mass mention must not fire for each
// queued command.
func isStale(messageDate int64, now time.Time, maxAge time.Duration) bool {
	return now.Sub(time.Unix(messageDate, 0)) > maxAge
}

func isGroupChat(chatType string) bool {
	return chatType == telego.ChatTypeGroup || chatType == telego.ChatTypeSupergroup
}

// reply sends an HTML message as a reply to the triggering message.
func reply(ctx *th.Context, bot *telego.Bot, message telego.Message, text string) error {
	_, err := bot.SendMessage(ctx.Context(), &telego.SendMessageParams{
		ChatID:          telego.ChatID{ID: message.Chat.ID},
		Text:            text,
		ParseMode:       "HTML",
		ReplyParameters: &telego.ReplyParameters{MessageID: message.MessageID},
	})
	return err
}

// handlePing runs the full broadcast pipeline for one command.
func handlePing(ctx *th.Context, bot *telego.Bot, message telego.Message, source ping.Source) error {
	if isStale(message.Date, time.Now(), globalConfig.Ping.StaleAfter) {
		logger.Infof("Ignoring stale %s command in chat %d from %s",
			source, message.Chat.ID, time.Unix(message.Date, 0).Format(time.RFC3339))
		return nil
	}

	if !isGroupChat(message.Chat.Type) {
		return reply(ctx, bot, message, "This command only works in groups!")
	}

	chatID := message.Chat.ID

	// The live member listing is only readable by administrator bots, so
	// check up front instead of failing mid-broadcast.
	self, err := bot.GetChatMember(ctx.Context(), &telego.GetChatMemberParams{
		ChatID: telego.ChatID{ID: chatID},
		UserID: bot.ID(),
	})
	if err != nil {
		logger.Errorf("Failed to check own membership in chat %d: %v", chatID, err)
		return reply(ctx, bot, message, "Error: cannot check my rights in this group.")
	}
	status := self.MemberStatus()
	if status != telego.MemberStatusAdministrator && status != telego.MemberStatusCreator {
		return reply(ctx, bot, message, "I must be an admin to ping members!")
	}

	recipients, err := ping.Resolve(ctx.Context(), platformClient, service.Directory(), source, chatID, globalConfig.Ping.MemberPageSize)
	if err != nil {
		logger.Errorf("Failed to resolve %s recipients in chat %d: %v", source, chatID, err)
		return reply(ctx, bot, message, fmt.Sprintf("Error fetching members: %v", err))
	}
	if len(recipients) == 0 {
		return reply(ctx, bot, message, emptyReply(source))
	}

	groupInfo := service.GetGroupInfo(ctx.Context(), bot, chatID)
	logger.Infof("Broadcasting to %d %s recipients in %s (%d)", len(recipients), source, groupInfo.GroupName, chatID)
	incrementCounter(&totalBroadcastsStarted)

	chunkSize, delay, placeholder := broadcastParams(source)
	broadcaster := ping.NewBroadcaster(platformClient, chunkSize, delay, placeholder)

	sent, err := broadcaster.Run(ctx.Context(), chatID, recipients)
	if err != nil {
		incrementCounter(&totalBroadcastErrors)
		if errors.Is(err, ping.ErrRateLimited) {
			if err := reply(ctx, bot, message, "Telegram is rate limiting me, wait a minute before pinging again."); err != nil {
				return err
			}
		} else {
			if err := reply(ctx, bot, message, fmt.Sprintf("Error sending mentions: %v", err)); err != nil {
				return err
			}
		}
	}

	// The summary goes out even after a partial broadcast.
	return reply(ctx, bot, message, fmt.Sprintf("Ping finished! Mentioned %d members.", sent))
}

func emptyReply(source ping.Source) string {
	switch source {
	case ping.SourceAdministrators:
		return "No administrators found to ping."
	case ping.SourceDirectory:
		return "I haven't seen any members in this group yet. I record members as they post messages."
	default:
		return "No members found to ping."
	}
}

func broadcastParams(source ping.Source) (chunkSize int, delay time.Duration, placeholder string) {
	cfg := globalConfig.Ping
	switch source {
	case ping.SourceAdministrators:
		// Admin pings are small and rare; spread them out further.
		return cfg.AdminChunkSize, cfg.AdminDelay, "Admin"
	case ping.SourceDirectory:
		return cfg.AdminChunkSize, cfg.AdminDelay, "User"
	default:
		return cfg.ChunkSize, cfg.ChunkDelay, "User"
	}
}

// handleStatus answers with a fixed liveness message.
func handleStatus(ctx *th.Context, bot *telego.Bot, message telego.Message) error {
	if isStale(message.Date, time.Now(), globalConfig.Ping.StaleAfter) {
		return nil
	}
	return reply(ctx, bot, message, "✅ I'm alive and watching this group.")
}

func sendHelpMessage(ctx *th.Context, bot *telego.Bot, message telego.Message) error {
	helpText := "<b>Ping Bot</b>\n\n" +
		"I mention group members in rate-limited batches. I must be a group admin.\n\n" +
		"<b>Commands</b>\n" +
		"/ping - mention every member of the group\n" +
		"/pingadmins - mention the group administrators\n" +
		"/pingknown - mention members I have seen posting\n" +
		"/status - check whether I'm alive\n" +
		"/help - show this message"
	return reply(ctx, bot, message, helpText)
}
