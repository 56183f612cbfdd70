package store

import (
	"time"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

type bookingRow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	BookingID  string    `gorm:"column:booking_id;size:191;index"`
	Name       string    `gorm:"size:191;not null"`
	Category   string    `gorm:"size:191;not null"`
	Selection  string    `gorm:"size:191;not null"`
	TicketType string    `gorm:"column:ticket_type;size:191;not null"`
	Price      int       `gorm:"not null"`
	Timestamp  time.Time `gorm:"column:timestamp;not null"`
}

func (bookingRow) TableName() string {
	return "bookings"
}

func (r bookingRow) toRecord() booking.Booking {
	return booking.Booking{
		ID:         r.ID,
		Code:       r.BookingID,
		Name:       r.Name,
		Category:   booking.Category(r.Category),
		Selection:  r.Selection,
		TicketType: booking.TicketType(r.TicketType),
		Price:      r.Price,
		CreatedAt:  r.Timestamp,
	}
}

func bookingRowFromRecord(rec booking.Booking) bookingRow {
	return bookingRow{
		ID:         rec.ID,
		BookingID:  rec.Code,
		Name:       rec.Name,
		Category:   string(rec.Category),
		Selection:  rec.Selection,
		TicketType: string(rec.TicketType),
		Price:      rec.Price,
		Timestamp:  rec.CreatedAt,
	}
}
