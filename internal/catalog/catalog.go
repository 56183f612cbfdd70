// Package catalog holds the fixed offering: ticket prices and the bookable
// events and matches. The catalog is constructed once at startup and passed
// by value; nothing mutates it afterwards.
package catalog

import (
	"github.com/boot-gif/ticket-bot/internal/booking"
)

type Catalog struct {
	Prices  map[booking.TicketType]int
	Events  []string
	Matches []string
}

func Default() Catalog {
	return Catalog{
		Prices: map[booking.TicketType]int{
			booking.TicketVIP:     30,
			booking.TicketRegular: 15,
			booking.TicketOnline:  8,
		},
		Events: []string{
			"🎤 Night Beats Concert - Aug 5",
			"💡 Future of AI Seminar - Aug 15",
		},
		Matches: []string{
			"🏆 Algeria vs Egypt - Aug 12",
			"⚽ Morocco vs Tunisia - Aug 20",
		},
	}
}

func (c Catalog) PriceFor(t booking.TicketType) (int, bool) {
	price, ok := c.Prices[t]
	return price, ok
}

// Candidates returns the selection list offered for a category.
func (c Catalog) Candidates(cat booking.Category) []string {
	if cat == booking.CategoryEvent {
		return c.Events
	}
	return c.Matches
}

// TicketTypes returns the offered types in display order.
func (c Catalog) TicketTypes() []booking.TicketType {
	return []booking.TicketType{booking.TicketVIP, booking.TicketRegular, booking.TicketOnline}
}
