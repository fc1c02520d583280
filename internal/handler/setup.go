package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg-pingbot/internal/config"
	"tg-pingbot/internal/crash"
	"tg-pingbot/internal/logger"
	"tg-pingbot/internal/ping"
	"tg-pingbot/internal/service"
)

// Client is the platform surface the command handlers need: sending chunk
// messages and listing members.
type Client interface {
	ping.Sender
	ping.MemberSource
}

var (
	globalConfig   *config.Config
	platformClient Client
)

// Initialize stores dependencies for the handler package.
func Initialize(cfg *config.Config) {
	globalConfig = cfg
	service.Initialize(cfg)
}

// SetupMessageHandlers registers message processing on the bot handler.
func SetupMessageHandlers(bh *th.BotHandler, bot *telego.Bot, client Client) {
	platformClient = client

	service.InitRepositories()

	bh.HandleMessage(func(ctx *th.Context, message telego.Message) error {
		defer crash.RecoverWithStack("message-handler")

		handled, err := handleCommand(ctx, bot, message)
		if err != nil {
			logger.Errorf("Error handling command in chat %d: %v", message.Chat.ID, err)
		}
		if handled {
			return nil
		}

		handleIncomingMessage(message)
		return nil
	})
}
