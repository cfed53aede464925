package marketplaceRepo

import (
	"context"
	"fmt"
	"strconv"

	"apna/models"
)

const (
	userBookingPrefix     = "b"
	providerBookingPrefix = "pb"
)

func copyBookings(in []models.Booking) []models.Booking {
	return append(make([]models.Booking, 0, len(in)), in...)
}

func (s *Store) FetchUserBookings(ctx context.Context) ([]models.Booking, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.userBookings), nil
}

func (s *Store) FetchProviderBookings(ctx context.Context) ([]models.Booking, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.providerBookings), nil
}

// CreateUserBooking records a confirmed customer booking and a pending twin on
// the provider side. Both are written under a single lock acquisition; they are
// independent records afterwards. The amount is the sum of the provider's four
// price components and is never recalculated.
func (s *Store) CreateUserBooking(ctx context.Context, input models.BookingInput) (models.Booking, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.Booking{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProvider(input.ProviderID)
	if idx < 0 {
		return models.Booking{}, fmt.Errorf("create booking for provider %s: %w", input.ProviderID, ErrProviderNotFound)
	}
	p := s.providers[idx]

	bookingType := input.Type
	if bookingType == "" {
		bookingType = models.BookingOneTime
	}
	amount := p.BasePrice + p.BookingCharge + p.ConsultationFee + p.ServiceFee

	userBooking := models.Booking{
		ID:           userBookingPrefix + strconv.Itoa(s.nextUserSeq),
		ProviderID:   p.ID,
		ProviderName: p.Name,
		Service:      p.PrimaryService(),
		Date:         input.Date,
		Time:         input.Time,
		Status:       models.BookingConfirmed,
		Amount:       amount,
		Type:         bookingType,
	}
	providerBooking := userBooking
	providerBooking.ID = providerBookingPrefix + strconv.Itoa(s.nextProviderSeq)
	providerBooking.ProviderName = s.currentUser.Name
	providerBooking.Status = models.BookingPending

	s.nextUserSeq++
	s.nextProviderSeq++
	s.userBookings = append([]models.Booking{userBooking}, s.userBookings...)
	s.providerBookings = append([]models.Booking{providerBooking}, s.providerBookings...)
	return userBooking, nil
}

// UpdateUserBookingStatus overwrites the status without transition checks.
func (s *Store) UpdateUserBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := findBooking(s.userBookings, bookingID); idx >= 0 {
		s.userBookings[idx].Status = status
	}
	return nil
}

// RescheduleUserBooking moves a booking; a cancelled booking becomes pending again.
func (s *Store) RescheduleUserBooking(ctx context.Context, bookingID, date, time string) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := findBooking(s.userBookings, bookingID)
	if idx < 0 {
		return nil
	}
	b := &s.userBookings[idx]
	b.Date = date
	b.Time = time
	if b.Status == models.BookingCancelled {
		b.Status = models.BookingPending
	}
	return nil
}

// UpdateProviderBookingStatus is the provider-side counterpart of
// UpdateUserBookingStatus. The customer's twin record is left untouched.
func (s *Store) UpdateProviderBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := findBooking(s.providerBookings, bookingID); idx >= 0 {
		s.providerBookings[idx].Status = status
	}
	return nil
}
