package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"arendnipro_bot/bot"
	"arendnipro_bot/compose"
	"arendnipro_bot/config"
	"arendnipro_bot/httputil"
	"arendnipro_bot/listing"
	"arendnipro_bot/logging"
	"arendnipro_bot/scheduler"
	"arendnipro_bot/telegram"
	"arendnipro_bot/web"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := logging.Setup(cfg.LogPath)
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Println("Starting arendnipro bot...")
	log.Printf("Channel: %s, API: %s", cfg.Channel, cfg.APIBase)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}
	log.Printf("Authorized as @%s", api.Self.UserName)

	clients := httputil.NewClients()

	fetcher := listing.NewFetcher(cfg.APIBase, clients.API)
	composer := compose.New(cfg.Promo)
	publisher := telegram.NewPublisher(api, cfg.Channel, clients.Media)
	pipeline := bot.NewPipeline(fetcher, composer, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Liveness endpoint for the hosting platform
	srv := web.NewServer(cfg.Port)
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("web server stopped: %v", err)
		}
	}()

	keepalive := scheduler.NewKeepalive(cfg.Keepalive, clients.API)
	if err := keepalive.Start(); err != nil {
		log.Fatalf("Failed to start keepalive: %v", err)
	}
	defer keepalive.Stop()

	transport := bot.NewTransport(api, pipeline)
	go func() {
		if err := transport.Run(ctx); err != nil {
			log.Fatalf("Transport failed: %v", err)
		}
	}()

	log.Println("Bot running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	cancel()
	log.Println("Goodbye!")
}
