package marketplaceRepo

import (
	"context"

	"apna/models"
)

// MarketplaceRepository defines data access for providers, bookings and the
// catalogue. Fetch methods return copies the caller may mutate freely.
type MarketplaceRepository interface {
	FetchProviders(ctx context.Context) ([]models.Provider, error)
	// FetchProvider returns ErrProviderNotFound for an unknown id.
	FetchProvider(ctx context.Context, id string) (models.Provider, error)
	FetchUserBookings(ctx context.Context) ([]models.Booking, error)
	FetchProviderBookings(ctx context.Context) ([]models.Booking, error)
	FetchPopularServices(ctx context.Context) ([]models.PopularService, error)
	FetchCurrentUser(ctx context.Context) (models.CurrentUser, error)

	// AddProviderReview and CreateUserBooking fail with ErrProviderNotFound.
	AddProviderReview(ctx context.Context, providerID string, input models.ReviewInput) (models.Review, error)
	CreateUserBooking(ctx context.Context, input models.BookingInput) (models.Booking, error)

	// The remaining mutations silently ignore unknown ids.
	UpdateUserBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	RescheduleUserBooking(ctx context.Context, bookingID, date, time string) error
	UpdateProviderBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	UpdateProviderModeration(ctx context.Context, providerID string, action models.ModerationAction) error
}
