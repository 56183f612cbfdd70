package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/boot-gif/ticket-bot/internal/catalog"
	"github.com/boot-gif/ticket-bot/internal/config"
	"github.com/boot-gif/ticket-bot/internal/conversation"
	"github.com/boot-gif/ticket-bot/internal/notify"
	"github.com/boot-gif/ticket-bot/internal/store"
	"github.com/boot-gif/ticket-bot/internal/telegram"
	"github.com/boot-gif/ticket-bot/internal/ticketpdf"
)

func main() {
	logger := log.New(os.Stdout, "ticket-bot ", log.Ldate|log.Ltime|log.Lmicroseconds|log.LUTC)

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	bookings, err := store.NewGormStore(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatalf("failed to initialize booking store: %v", err)
	}
	defer func() {
		if err := bookings.Close(); err != nil {
			logger.Printf("store close error: %v", err)
		}
	}()

	builder, err := ticketpdf.NewBuilder(cfg.PaymentAddress)
	if err != nil {
		logger.Fatalf("failed to initialize confirmation builder: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatalf("failed to create telegram client: %v", err)
	}

	sender := telegram.NewSender(bot)
	dispatcher := notify.NewDispatcher(sender, cfg.OperatorChatID, logger)
	flow := conversation.NewFlow(catalog.Default(), bookings, builder, dispatcher, logger)
	listener := telegram.NewListener(bot, sender, flow, bookings, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := listener.Start(ctx); err != nil {
		logger.Fatalf("failed to start listener: %v", err)
	}

	<-ctx.Done()

	if err := listener.Stop(); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
}
