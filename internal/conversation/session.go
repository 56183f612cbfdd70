package conversation

import "github.com/boot-gif/ticket-bot/internal/booking"

// Step is the question the conversation is waiting on. The flow is linear:
// name, category, selection, ticket type, then the completion sequence.
type Step int

const (
	StepIdle Step = iota
	StepName
	StepCategory
	StepSelection
	StepTicketType
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepName:
		return "awaiting_name"
	case StepCategory:
		return "awaiting_category"
	case StepSelection:
		return "awaiting_selection"
	case StepTicketType:
		return "awaiting_ticket_type"
	default:
		return "unknown"
	}
}

// Session holds the answers collected so far for one chat.
type Session struct {
	ChatID    int64
	Step      Step
	Name      string
	Category  booking.Category
	Selection string
}
