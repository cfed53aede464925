package marketplace

import (
	"context"
	"fmt"
	"strings"

	"apna/metrics"
	"apna/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshot is everything a page needs, loaded in one go.
type Snapshot struct {
	CurrentUser      models.CurrentUser      `json:"currentUser"`
	Providers        []models.Provider       `json:"providers"`
	UserBookings     []models.Booking        `json:"userBookings"`
	ProviderBookings []models.Booking        `json:"providerBookings"`
	PopularServices  []models.PopularService `json:"popularServices"`
	FavoriteIDs      []string                `json:"favoriteProviderIds"`
}

// Snapshot loads all collections concurrently. If any load fails, or ctx is
// cancelled before they all complete, the partial result is discarded.
func (s *DefaultMarketplaceService) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.CurrentUser, err = s.Repo.FetchCurrentUser(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Providers, err = s.Repo.FetchProviders(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.UserBookings, err = s.Repo.FetchUserBookings(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.ProviderBookings, err = s.Repo.FetchProviderBookings(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.PopularServices, err = s.Repo.FetchPopularServices(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("load marketplace snapshot: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	snap.FavoriteIDs = s.favorites.IDs(ctx)
	return snap, nil
}

func (s *DefaultMarketplaceService) Providers(ctx context.Context) ([]models.Provider, error) {
	return s.Repo.FetchProviders(ctx)
}

func (s *DefaultMarketplaceService) Provider(ctx context.Context, id string) (models.Provider, error) {
	return s.Repo.FetchProvider(ctx, id)
}

func (s *DefaultMarketplaceService) UserBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.FetchUserBookings(ctx)
}

func (s *DefaultMarketplaceService) ProviderBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.FetchProviderBookings(ctx)
}

func (s *DefaultMarketplaceService) PopularServices(ctx context.Context) ([]models.PopularService, error) {
	return s.Repo.FetchPopularServices(ctx)
}

func (s *DefaultMarketplaceService) CurrentUser(ctx context.Context) (models.CurrentUser, error) {
	return s.Repo.FetchCurrentUser(ctx)
}

// AddReview posts a review as the current user.
func (s *DefaultMarketplaceService) AddReview(ctx context.Context, providerID string, rating float64, comment string) (models.Review, error) {
	user, err := s.Repo.FetchCurrentUser(ctx)
	if err != nil {
		return models.Review{}, err
	}
	if user.ID == "" && user.Name == "" {
		return models.Review{}, ErrNoCurrentUser
	}
	if strings.TrimSpace(comment) == "" {
		return models.Review{}, ErrEmptyComment
	}

	review, err := s.Repo.AddProviderReview(ctx, providerID, models.ReviewInput{
		UserName: user.Name,
		Rating:   rating,
		Comment:  comment,
	})
	if err != nil {
		return models.Review{}, err
	}
	metrics.IncReviewAdded()
	s.Logger.Info("Review added",
		zap.String("providerId", providerID), zap.String("reviewId", review.ID), zap.Int("rating", review.Rating))
	return review, nil
}

// BookProvider creates the booking and then notifies. A notifier failure is
// logged only; the booking stands.
func (s *DefaultMarketplaceService) BookProvider(ctx context.Context, providerID, date, time string, bookingType models.BookingType) (models.Booking, error) {
	booking, err := s.Repo.CreateUserBooking(ctx, models.BookingInput{
		ProviderID: providerID,
		Date:       date,
		Time:       time,
		Type:       bookingType,
	})
	if err != nil {
		return models.Booking{}, err
	}
	metrics.IncBookingCreated(string(booking.Type))
	s.Logger.Info("Booking created",
		zap.String("bookingId", booking.ID), zap.String("providerId", providerID), zap.Float64("amount", booking.Amount))

	if err := s.Notifier.BookingCreated(ctx, booking); err != nil {
		s.Logger.Warn("Booking notification failed", zap.String("bookingId", booking.ID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultMarketplaceService) CancelUserBooking(ctx context.Context, bookingID string) error {
	return s.UpdateUserBookingStatus(ctx, bookingID, models.BookingCancelled)
}

func (s *DefaultMarketplaceService) UpdateUserBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if err := s.Repo.UpdateUserBookingStatus(ctx, bookingID, status); err != nil {
		return err
	}
	metrics.IncBookingStatusChanged("user", string(status))
	return nil
}

func (s *DefaultMarketplaceService) RescheduleBooking(ctx context.Context, bookingID, date, time string) error {
	return s.Repo.RescheduleUserBooking(ctx, bookingID, date, time)
}

// UpdateProviderRequest lets a provider accept, decline or complete a request.
func (s *DefaultMarketplaceService) UpdateProviderRequest(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if err := s.Repo.UpdateProviderBookingStatus(ctx, bookingID, status); err != nil {
		return err
	}
	metrics.IncBookingStatusChanged("provider", string(status))
	return nil
}

func (s *DefaultMarketplaceService) ModerateProvider(ctx context.Context, providerID string, action models.ModerationAction) error {
	if err := s.Repo.UpdateProviderModeration(ctx, providerID, action); err != nil {
		return err
	}
	metrics.IncModerationAction(string(action))
	s.Logger.Info("Provider moderated", zap.String("providerId", providerID), zap.String("action", string(action)))
	return nil
}
