package conversation

import (
	"github.com/boot-gif/ticket-bot/internal/booking"
	"github.com/boot-gif/ticket-bot/internal/catalog"
)

// Prompt is the next message to send to the requester. Options, when
// present, render as a one-time reply keyboard, one row per inner slice.
type Prompt struct {
	Text    string
	Options [][]string
}

const (
	greetingText = "👋 Welcome! What is your full name?\nBonjour ! Quel est votre nom complet ?"
	categoryText = "📌 Do you want to book an Event or a Match?\nSouhaitez-vous réserver un événement ou un match ?"
	eventText    = "🎤 Please choose the event:\nVeuillez choisir l'événement :"
	matchText    = "⚽ Please choose the match:\nVeuillez choisir le match :"
	ticketText   = "🎟️ Choose the ticket type:\nChoisissez le type de billet :"
	retryText    = "⚠️ Please choose one of the offered ticket types.\nVeuillez choisir l'un des types de billets proposés."
	cancelText   = "❌ Booking cancelled.\nRéservation annulée."
	failureText  = "⚠️ Something went wrong while confirming your booking. Please try again with /start.\nUne erreur s'est produite lors de la confirmation de votre réservation. Veuillez réessayer avec /start."
)

func greetingPrompt() Prompt {
	return Prompt{Text: greetingText}
}

func categoryPrompt() Prompt {
	return Prompt{
		Text:    categoryText,
		Options: [][]string{{"🎫 Event", "🏟️ Match"}},
	}
}

func selectionPrompt(cat catalog.Catalog, category booking.Category) Prompt {
	text := matchText
	if category == booking.CategoryEvent {
		text = eventText
	}
	return Prompt{
		Text:    text,
		Options: oneOptionPerRow(cat.Candidates(category)),
	}
}

func ticketTypePrompt(cat catalog.Catalog, text string) Prompt {
	types := cat.TicketTypes()
	labels := make([]string, 0, len(types))
	for _, t := range types {
		labels = append(labels, string(t))
	}
	return Prompt{
		Text:    text,
		Options: oneOptionPerRow(labels),
	}
}

func oneOptionPerRow(labels []string) [][]string {
	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, []string{label})
	}
	return rows
}
