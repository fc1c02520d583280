package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg-pingbot/internal/config"
	"tg-pingbot/internal/logger"
)

// BotService bundles the telego bot, its update handler and the platform
// client used by the broadcast engine.
type BotService struct {
	Bot     *telego.Bot
	Handler *th.BotHandler
	Client  *PlatformClient
}

// Initialize creates the bot, switches it to long polling and prepares the
// update handler. Handlers are registered by the caller before Start.
func Initialize(ctx context.Context, cfg *config.Config) (*BotService, error) {
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is empty")
	}

	bot, err := telego.NewBot(cfg.Bot.Token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("creating bot: %w", err)
	}

	me, err := bot.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting bot info: %w", err)
	}
	logger.Infof("Authorized on account %s", me.Username)

	setCommands(ctx, bot)

	// Long polling conflicts with a leftover webhook registration.
	if err := bot.DeleteWebhook(ctx, &telego.DeleteWebhookParams{}); err != nil {
		logger.Warningf("Failed to delete webhook: %v", err)
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        cfg.Bot.PollTimeout,
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		return nil, fmt.Errorf("starting long polling: %w", err)
	}

	handler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("creating bot handler: %w", err)
	}

	return &BotService{
		Bot:     bot,
		Handler: handler,
		Client:  NewPlatformClient(bot, cfg.Bot.Token),
	}, nil
}

// Start blocks processing updates until Stop is called.
func (s *BotService) Start() {
	logger.Infof("Bot handler started")
	s.Handler.Start()
}

// Stop shuts down the update handler and waits for in-flight handlers.
func (s *BotService) Stop() {
	s.Handler.Stop()
	logger.Infof("Bot handler stopped")
}

func setCommands(ctx context.Context, bot *telego.Bot) {
	err := bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{
		Commands: []telego.BotCommand{
			{Command: "ping", Description: "Mention every member of the group"},
			{Command: "pingadmins", Description: "Mention the group administrators"},
			{Command: "pingknown", Description: "Mention members seen by the bot"},
			{Command: "status", Description: "Check whether the bot is alive"},
			{Command: "help", Description: "Show usage information"},
		},
	})
	if err != nil {
		logger.Warningf("Failed to set bot commands: %v", err)
	}
}
