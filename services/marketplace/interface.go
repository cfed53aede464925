package marketplace

import (
	"context"

	"apna/database/kv"
	marketplaceRepo "apna/database/repository/marketplace"
	"apna/models"
	"apna/services/notification"

	"go.uber.org/zap"
)

// MarketplaceService is the application-facing facade over the marketplace
// store, mirroring what a customer, a provider or an admin can do.
type MarketplaceService interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Providers(ctx context.Context) ([]models.Provider, error)
	Provider(ctx context.Context, id string) (models.Provider, error)
	UserBookings(ctx context.Context) ([]models.Booking, error)
	ProviderBookings(ctx context.Context) ([]models.Booking, error)
	PopularServices(ctx context.Context) ([]models.PopularService, error)
	CurrentUser(ctx context.Context) (models.CurrentUser, error)

	AddReview(ctx context.Context, providerID string, rating float64, comment string) (models.Review, error)
	BookProvider(ctx context.Context, providerID, date, time string, bookingType models.BookingType) (models.Booking, error)
	CancelUserBooking(ctx context.Context, bookingID string) error
	RescheduleBooking(ctx context.Context, bookingID, date, time string) error
	UpdateUserBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	UpdateProviderRequest(ctx context.Context, bookingID string, status models.BookingStatus) error
	ModerateProvider(ctx context.Context, providerID string, action models.ModerationAction) error

	Favorites() *Favorites
}

// DefaultMarketplaceService implements MarketplaceService.
type DefaultMarketplaceService struct {
	Repo     marketplaceRepo.MarketplaceRepository
	Notifier notification.Notifier
	Logger   *zap.Logger

	favorites *Favorites
}

var _ MarketplaceService = (*DefaultMarketplaceService)(nil)

func NewDefaultMarketplaceService(
	repo marketplaceRepo.MarketplaceRepository,
	store kv.Store,
	notifier notification.Notifier,
	logger *zap.Logger,
) *DefaultMarketplaceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notification.LogNotifier{Logger: logger}
	}
	return &DefaultMarketplaceService{
		Repo:      repo,
		Notifier:  notifier,
		Logger:    logger,
		favorites: NewFavorites(store),
	}
}

func (s *DefaultMarketplaceService) Favorites() *Favorites {
	return s.favorites
}
