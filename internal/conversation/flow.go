// Package conversation drives the booking dialogue: a linear state machine
// per chat plus the ordered completion sequence that turns the collected
// answers into a persisted, confirmed booking.
package conversation

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/boot-gif/ticket-bot/internal/booking"
	"github.com/boot-gif/ticket-bot/internal/catalog"
	"github.com/boot-gif/ticket-bot/internal/ids"
	"github.com/boot-gif/ticket-bot/internal/store"
)

// Renderer produces the confirmation document for a booking.
type Renderer interface {
	Render(booking.Booking) ([]byte, error)
}

// Notifier delivers completion side effects through the chat transport.
type Notifier interface {
	NotifyOperator(booking.Booking) error
	DeliverDocument(chatID int64, rec booking.Booking, document []byte) error
}

type Flow struct {
	catalog  catalog.Catalog
	store    store.Store
	renderer Renderer
	notifier Notifier
	logger   *log.Logger
	registry *Registry
	newCode  func() string
}

func NewFlow(cat catalog.Catalog, st store.Store, renderer Renderer, notifier Notifier, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Flow{
		catalog:  cat,
		store:    st,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		registry: NewRegistry(),
		newCode:  ids.BookingCode,
	}
}

// Start opens a fresh session for the chat, replacing any unfinished one,
// and returns the greeting prompt.
func (f *Flow) Start(chatID int64) Prompt {
	f.registry.Begin(chatID)
	return greetingPrompt()
}

// Cancel discards the chat's session, if any, without persisting anything.
func (f *Flow) Cancel(chatID int64) Prompt {
	f.registry.End(chatID)
	return Prompt{Text: cancelText}
}

// HandleText advances the chat's session with one reply. The returned bool
// is false when there is nothing to send back: either no session is open
// for the chat, or the conversation completed and the confirmation document
// already went out through the notifier.
func (f *Flow) HandleText(ctx context.Context, chatID int64, text string) (Prompt, bool) {
	s, ok := f.registry.Lookup(chatID)
	if !ok {
		return Prompt{}, false
	}

	switch s.Step {
	case StepName:
		s.Name = text
		s.Step = StepCategory
		return categoryPrompt(), true

	case StepCategory:
		s.Category = booking.ClassifyCategory(text)
		s.Step = StepSelection
		return selectionPrompt(f.catalog, s.Category), true

	case StepSelection:
		s.Selection = text
		s.Step = StepTicketType
		return ticketTypePrompt(f.catalog, ticketText), true

	case StepTicketType:
		ticketType, ok := booking.ParseTicketType(text)
		if !ok {
			// Stay on this step rather than pricing an unknown type at
			// zero.
			return ticketTypePrompt(f.catalog, retryText), true
		}

		f.registry.End(chatID)
		if err := f.complete(ctx, s, ticketType); err != nil {
			f.logger.Printf("chat=%d booking failed: %v", chatID, err)
			return Prompt{Text: failureText}, true
		}
		return Prompt{}, false

	default:
		return Prompt{}, false
	}
}

// complete runs the ordered completion sequence: generate code, render
// document, persist, notify operator, deliver document. A render or persist
// failure aborts before any visible side effect; once the booking is
// durable, notification and delivery failures are logged but do not undo
// it.
func (f *Flow) complete(ctx context.Context, s *Session, ticketType booking.TicketType) error {
	price, ok := f.catalog.PriceFor(ticketType)
	if !ok {
		return fmt.Errorf("no price for ticket type %q", ticketType)
	}

	rec := booking.Booking{
		Code:       f.newCode(),
		Name:       s.Name,
		Category:   s.Category,
		Selection:  s.Selection,
		TicketType: ticketType,
		Price:      price,
	}

	document, err := f.renderer.Render(rec)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	saved, err := f.store.Save(ctx, rec)
	if err != nil {
		return fmt.Errorf("persist booking: %w", err)
	}

	if err := f.notifier.NotifyOperator(saved); err != nil {
		// The booking is durable; the operator reconciles from the log.
		f.logger.Printf("chat=%d booking=%s operator notification failed: %v", s.ChatID, saved.Code, err)
	}
	if err := f.notifier.DeliverDocument(s.ChatID, saved, document); err != nil {
		f.logger.Printf("chat=%d booking=%s document delivery failed: %v", s.ChatID, saved.Code, err)
	}
	return nil
}
