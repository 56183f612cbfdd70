package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

func testBooking(code string) booking.Booking {
	return booking.Booking{
		Code:       code,
		Name:       "Alice Example",
		Category:   booking.CategoryEvent,
		Selection:  "🎤 Night Beats Concert - Aug 5",
		TicketType: booking.TicketVIP,
		Price:      30,
	}
}

func TestGormStoreSaveRoundTrip(t *testing.T) {
	st, err := NewGormStore("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()

	saved, err := st.Save(ctx, testBooking("AB12CD34"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("expected surrogate id to be assigned")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("expected write timestamp to be assigned")
	}

	got, err := st.GetByCode(ctx, "AB12CD34")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got.Name != saved.Name || got.Category != saved.Category ||
		got.Selection != saved.Selection || got.TicketType != saved.TicketType ||
		got.Price != saved.Price {
		t.Fatalf("round trip mismatch: saved %+v, got %+v", saved, got)
	}
}

func TestGormStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.db")
	ctx := context.Background()

	st, err := NewGormStore("sqlite", path)
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	if _, err := st.Save(ctx, testBooking("DURABLE1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewGormStore("sqlite", path)
	if err != nil {
		t.Fatalf("reopen gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = reopened.Close()
	})

	got, err := reopened.GetByCode(ctx, "DURABLE1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Code != "DURABLE1" {
		t.Fatalf("unexpected booking after reopen: %+v", got)
	}
}

func TestGormStoreStatsEmpty(t *testing.T) {
	st, err := NewGormStore("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	stats, err := st.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 0 || stats.TotalPrice != 0 {
		t.Fatalf("empty store stats = %+v, want (0, 0)", stats)
	}
}

func TestGormStoreStatsAggregates(t *testing.T) {
	st, err := NewGormStore("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()

	first := testBooking("AAAA1111")
	second := testBooking("BBBB2222")
	second.TicketType = booking.TicketRegular
	second.Price = 15
	for _, rec := range []booking.Booking{first, second} {
		if _, err := st.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", rec.Code, err)
		}
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 2 {
		t.Fatalf("count = %d, want 2", stats.Count)
	}
	if stats.TotalPrice != 45 {
		t.Fatalf("total price = %d, want 45", stats.TotalPrice)
	}
}

func TestGormStoreGetByCodeNotFound(t *testing.T) {
	st, err := NewGormStore("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	if _, err := st.GetByCode(context.Background(), "MISSING1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStoreRejectsIncompleteBooking(t *testing.T) {
	st, err := NewGormStore("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	rec := testBooking("AB12CD34")
	rec.Name = ""
	if _, err := st.Save(context.Background(), rec); err == nil {
		t.Fatalf("expected validation error")
	}

	stats, err := st.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 0 {
		t.Fatalf("rejected save must not persist, count = %d", stats.Count)
	}
}

func TestGormStoreConcurrentSaves(t *testing.T) {
	st, err := NewGormStore("sqlite", filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("new gorm store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()

	const writers = 8
	const perWriter = 5

	var wg sync.WaitGroup
	errCh := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				rec := testBooking(fmt.Sprintf("W%dN%04d", w, i))
				if _, err := st.Save(ctx, rec); err != nil {
					errCh <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent save: %v", err)
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != writers*perWriter {
		t.Fatalf("count = %d, want %d", stats.Count, writers*perWriter)
	}
}
