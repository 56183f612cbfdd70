// Package telegram is the chat transport: it wraps the Bot API client
// behind the small sender surface the rest of the bot talks to, and runs
// the long-polling update loop that feeds the conversation flow.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/boot-gif/ticket-bot/internal/conversation"
)

type Sender struct {
	bot *tgbotapi.BotAPI
}

func NewSender(bot *tgbotapi.BotAPI) *Sender {
	return &Sender{bot: bot}
}

func (s *Sender) SendText(chatID int64, text string) error {
	if text == "" {
		return nil
	}
	_, err := s.bot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendPrompt sends the prompt text, attaching its options as a one-time
// reply keyboard.
func (s *Sender) SendPrompt(chatID int64, prompt conversation.Prompt) error {
	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	if len(prompt.Options) > 0 {
		msg.ReplyMarkup = replyKeyboard(prompt.Options)
	}
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send prompt: %w", err)
	}
	return nil
}

func (s *Sender) SendDocument(chatID int64, filename string, data []byte, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption
	if _, err := s.bot.Send(doc); err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	keyboardRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		keyboardRows = append(keyboardRows, buttons)
	}
	keyboard := tgbotapi.NewReplyKeyboard(keyboardRows...)
	keyboard.OneTimeKeyboard = true
	return keyboard
}
