package booking

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryEvent Category = "Event"
	CategoryMatch Category = "Match"
)

type TicketType string

const (
	TicketVIP     TicketType = "VIP"
	TicketRegular TicketType = "Regular"
	TicketOnline  TicketType = "Online"
)

// Booking is the persisted record of one completed conversation. Records are
// append-only: there is no update or delete path.
type Booking struct {
	ID         int64
	Code       string
	Name       string
	Category   Category
	Selection  string
	TicketType TicketType
	Price      int
	CreatedAt  time.Time
}

func (b Booking) Validate() error {
	if strings.TrimSpace(b.Code) == "" {
		return fmt.Errorf("booking code is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(string(b.Category)) == "" {
		return fmt.Errorf("category is required")
	}
	if strings.TrimSpace(b.Selection) == "" {
		return fmt.Errorf("selection is required")
	}
	if strings.TrimSpace(string(b.TicketType)) == "" {
		return fmt.Errorf("ticket type is required")
	}
	return nil
}

// ClassifyCategory maps a free-text category reply to a category. Replies
// containing the literal word "Event" book an event; everything else books a
// match. The reply usually comes from the offered keyboard but is not
// required to.
func ClassifyCategory(text string) Category {
	if strings.Contains(text, "Event") {
		return CategoryEvent
	}
	return CategoryMatch
}

// ParseTicketType matches a reply against the three offered ticket types.
// Unlike category classification it is strict: anything else is rejected so
// the conversation can re-prompt instead of pricing an unknown type.
func ParseTicketType(text string) (TicketType, bool) {
	switch TicketType(strings.TrimSpace(text)) {
	case TicketVIP:
		return TicketVIP, true
	case TicketRegular:
		return TicketRegular, true
	case TicketOnline:
		return TicketOnline, true
	default:
		return "", false
	}
}
