package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/boot-gif/ticket-bot/internal/conversation"
	"github.com/boot-gif/ticket-bot/internal/store"
)

const pollTimeoutSeconds = 30

// Flow is the conversation surface the listener drives.
type Flow interface {
	Start(chatID int64) conversation.Prompt
	Cancel(chatID int64) conversation.Prompt
	HandleText(ctx context.Context, chatID int64, text string) (conversation.Prompt, bool)
}

// PromptSender is the outbound surface the listener replies through.
type PromptSender interface {
	SendText(chatID int64, text string) error
	SendPrompt(chatID int64, prompt conversation.Prompt) error
}

type Listener struct {
	flow   Flow
	sender PromptSender
	store  store.Store
	logger *log.Logger

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func NewListener(bot *tgbotapi.BotAPI, sender PromptSender, flow Flow, st store.Store, logger *log.Logger) *Listener {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Listener{
		flow:   flow,
		sender: sender,
		store:  st,
		logger: logger,
		bot:    bot,
	}
}

// Start begins long polling and dispatches updates until ctx is done.
func (l *Listener) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	l.mu.Lock()
	bot := l.bot
	l.mu.Unlock()
	if bot == nil {
		return fmt.Errorf("listener already stopped")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeoutSeconds
	updates := bot.GetUpdatesChan(updateConfig)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				l.handleUpdate(ctx, update)
			}
		}
	}()

	l.logger.Printf("telegram listener started bot=%s", bot.Self.UserName)
	return nil
}

func (l *Listener) Stop() error {
	l.mu.Lock()
	bot := l.bot
	l.bot = nil
	l.mu.Unlock()

	if bot == nil {
		return nil
	}
	bot.StopReceivingUpdates()
	l.logger.Printf("telegram listener stopped")
	return nil
}

func (l *Listener) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			l.reply(chatID, l.flow.Start(chatID))
		case "cancel":
			l.reply(chatID, l.flow.Cancel(chatID))
		case "stats":
			l.replyStats(ctx, chatID)
		}
		return
	}

	if strings.TrimSpace(msg.Text) == "" {
		return
	}
	if prompt, ok := l.flow.HandleText(ctx, chatID, msg.Text); ok {
		l.reply(chatID, prompt)
	}
}

func (l *Listener) replyStats(ctx context.Context, chatID int64) {
	stats, err := l.store.Stats(ctx)
	if err != nil {
		l.logger.Printf("chat=%d stats query failed: %v", chatID, err)
		return
	}
	text := fmt.Sprintf(
		"📊 Total bookings: %d\n💰 Total amount: %d USDT\nRéservations totales : %d\nMontant total : %d USDT",
		stats.Count, stats.TotalPrice, stats.Count, stats.TotalPrice,
	)
	if err := l.sender.SendText(chatID, text); err != nil {
		l.logger.Printf("chat=%d stats reply failed: %v", chatID, err)
	}
}

func (l *Listener) reply(chatID int64, prompt conversation.Prompt) {
	if prompt.Text == "" {
		return
	}
	if err := l.sender.SendPrompt(chatID, prompt); err != nil {
		l.logger.Printf("chat=%d reply failed: %v", chatID, err)
	}
}
