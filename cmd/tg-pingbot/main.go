package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tg-pingbot/internal/bot"
	"tg-pingbot/internal/config"
	"tg-pingbot/internal/crash"
	"tg-pingbot/internal/handler"
	"tg-pingbot/internal/logger"
	"tg-pingbot/internal/storage"
)

func main() {
	defer crash.RecoverWithStackAndExit("main")

	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Setup(cfg); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	if cfg.Bot.Token == "" {
		log.Fatal("Bot token is not configured, set bot.token or PINGBOT_BOT_TOKEN")
	}

	if storage.IsEnabled(cfg) {
		if err := storage.Initialize(cfg); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		log.Println("Database connection established")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botService, err := bot.Initialize(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}

	handler.Initialize(cfg)
	handler.SetupMessageHandlers(botService.Handler, botService.Bot, botService.Client)
	handler.StartStatusMonitoring()

	crash.SafeGoroutine("bot-handler", botService.Start)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down...", sig)

	botService.Stop()
	cancel()
	log.Println("Bot gracefully stopped")
}
