package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(driver, dsn string) (*GormStore, error) {
	gormDB, err := OpenGorm(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open booking store: %w", err)
	}

	store := &GormStore{db: gormDB}
	if err := gormDB.AutoMigrate(&bookingRow{}); err != nil {
		return nil, fmt.Errorf("migrate booking store: %w", err)
	}
	return store, nil
}

func (s *GormStore) Save(ctx context.Context, rec booking.Booking) (booking.Booking, error) {
	if err := rec.Validate(); err != nil {
		return booking.Booking{}, fmt.Errorf("invalid booking: %w", err)
	}

	rec.ID = 0
	rec.CreatedAt = time.Now().UTC()
	row := bookingRowFromRecord(rec)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return booking.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	return row.toRecord(), nil
}

func (s *GormStore) GetByCode(ctx context.Context, code string) (booking.Booking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return booking.Booking{}, fmt.Errorf("booking code is required")
	}

	var row bookingRow
	err := s.db.WithContext(ctx).Where("booking_id = ?", code).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking.Booking{}, ErrNotFound
		}
		return booking.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return row.toRecord(), nil
}

func (s *GormStore) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	err := s.db.WithContext(ctx).
		Model(&bookingRow{}).
		Select("COUNT(*) AS count, COALESCE(SUM(price), 0) AS total_price").
		Scan(&out).Error
	if err != nil {
		return Stats{}, fmt.Errorf("booking stats: %w", err)
	}
	return out, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
