// Package notify fans a completed booking out: a plain-text summary to the
// operator chat and the rendered confirmation document to the requester.
package notify

import (
	"fmt"
	"io"
	"log"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

// Sender is the outbound half of the chat transport.
type Sender interface {
	SendText(chatID int64, text string) error
	SendDocument(chatID int64, filename string, data []byte, caption string) error
}

type Dispatcher struct {
	sender         Sender
	operatorChatID int64
	logger         *log.Logger
}

func NewDispatcher(sender Sender, operatorChatID int64, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Dispatcher{
		sender:         sender,
		operatorChatID: operatorChatID,
		logger:         logger,
	}
}

func (d *Dispatcher) NotifyOperator(rec booking.Booking) error {
	if err := d.sender.SendText(d.operatorChatID, operatorSummary(rec)); err != nil {
		return fmt.Errorf("notify operator: %w", err)
	}
	return nil
}

func (d *Dispatcher) DeliverDocument(chatID int64, rec booking.Booking, document []byte) error {
	filename := fmt.Sprintf("ticket_%s.pdf", rec.Code)
	caption := "📄 Your booking is confirmed!\nVotre réservation est confirmée !"
	if err := d.sender.SendDocument(chatID, filename, document, caption); err != nil {
		return fmt.Errorf("deliver confirmation document: %w", err)
	}
	return nil
}

func operatorSummary(rec booking.Booking) string {
	return fmt.Sprintf(
		"📥 New Booking:\nID: %s\nName: %s\nCategory: %s\nDetails: %s\nType: %s\nPrice: %d USDT",
		rec.Code, rec.Name, rec.Category, rec.Selection, rec.TicketType, rec.Price,
	)
}
