package service

import (
	"context"
	"errors"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
)

type BookingService struct {
	Store store.Store
}

// CreateBooking books an amenity slot. The amenity must exist; the requested
// date is taken as-is, double bookings are not checked.
func (s *BookingService) CreateBooking(ctx context.Context, userID, amenityID string, requestedDate time.Time) (domain.Booking, error) {
	if userID == "" || amenityID == "" || requestedDate.IsZero() {
		return domain.Booking{}, ErrInvalidRequest
	}

	if _, err := s.Store.Amenities().GetAmenityByID(ctx, amenityID); err != nil {
		return domain.Booking{}, err
	}

	b := domain.Booking{
		ID:            idx.New().String(),
		UserID:        userID,
		AmenityID:     amenityID,
		RequestedDate: requestedDate,
		CreatedAt:     time.Now(),
	}
	if err := s.Store.Bookings().CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

func (s *BookingService) ListMyBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.Store.Bookings().ListBookingsByUser(ctx, userID)
}

// RescheduleBooking moves a booking to a new date. Only the booking owner
// may reschedule.
func (s *BookingService) RescheduleBooking(ctx context.Context, userID, bookingID string, requestedDate time.Time) (domain.Booking, error) {
	if requestedDate.IsZero() {
		return domain.Booking{}, ErrInvalidRequest
	}

	b, err := s.Store.Bookings().GetBookingByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if b.UserID != userID {
		return domain.Booking{}, store.ErrNotFound
	}

	if err := s.Store.Bookings().UpdateBookingDate(ctx, bookingID, requestedDate); err != nil {
		return domain.Booking{}, err
	}
	b.RequestedDate = requestedDate
	return b, nil
}

// CancelBooking deletes a booking. Only the booking owner may cancel.
func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	b, err := s.Store.Bookings().GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return store.ErrNotFound
	}
	err = s.Store.Bookings().DeleteBooking(ctx, bookingID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
