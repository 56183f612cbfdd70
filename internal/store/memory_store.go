package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

// MemoryStore keeps bookings in memory. It backs tests; the deployed bot
// uses GormStore.
type MemoryStore struct {
	mu     sync.Mutex
	rows   []booking.Booking
	byCode map[string]int
	nextID int64
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCode: make(map[string]int),
		nextID: 1,
	}
}

func (s *MemoryStore) Save(_ context.Context, rec booking.Booking) (booking.Booking, error) {
	if err := rec.Validate(); err != nil {
		return booking.Booking{}, fmt.Errorf("invalid booking: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return booking.Booking{}, fmt.Errorf("memory store is closed")
	}

	rec.ID = s.nextID
	s.nextID++
	rec.CreatedAt = time.Now().UTC()
	s.rows = append(s.rows, rec)
	s.byCode[rec.Code] = len(s.rows) - 1
	return rec, nil
}

func (s *MemoryStore) GetByCode(_ context.Context, code string) (booking.Booking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return booking.Booking{}, fmt.Errorf("booking code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return booking.Booking{}, fmt.Errorf("memory store is closed")
	}

	idx, ok := s.byCode[code]
	if !ok {
		return booking.Booking{}, ErrNotFound
	}
	return s.rows[idx], nil
}

func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Stats{}, fmt.Errorf("memory store is closed")
	}

	out := Stats{Count: int64(len(s.rows))}
	for _, rec := range s.rows {
		out.TotalPrice += int64(rec.Price)
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
