package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/cadence-sh/cadence/internal/repository"
	"github.com/google/uuid"
)

type bookingService struct {
	bookings repository.BookingRepo
}

func NewBookingService(bookings repository.BookingRepo) BookingService {
	return &bookingService{bookings: bookings}
}

func (s *bookingService) Add(ctx context.Context, title string, start, end time.Time) (*domain.Booking, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("booking end %s must be after start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	b := &domain.Booking{
		ID:    uuid.New().String(),
		Title: title,
		Start: start.UTC(),
		End:   end.UTC(),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *bookingService) Remove(ctx context.Context, id string) error {
	return s.bookings.Delete(ctx, id)
}
