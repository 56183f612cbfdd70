// Package store persists completed bookings. The table is append-only:
// rows are created once and never updated or deleted.
package store

import (
	"context"
	"errors"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

var ErrNotFound = errors.New("booking not found")

// Stats aggregates the stored bookings. Both values are zero for an empty
// store; a null sum is coalesced, never propagated.
type Stats struct {
	Count      int64
	TotalPrice int64
}

type Store interface {
	// Save appends one booking and returns it with the surrogate id and
	// write timestamp assigned. Every field must be non-empty.
	Save(context.Context, booking.Booking) (booking.Booking, error)
	// GetByCode looks a booking up by its 8-character code.
	GetByCode(context.Context, string) (booking.Booking, error)
	Stats(context.Context) (Stats, error)
	Close() error
}
