package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	HealthHandler gin.HandlerFunc

	// Customer endpoints
	GetSnapshotHandler        gin.HandlerFunc
	GetCurrentUserHandler     gin.HandlerFunc
	GetPopularServicesHandler gin.HandlerFunc
	GetProvidersHandler       gin.HandlerFunc
	GetProviderHandler        gin.HandlerFunc
	GetQuoteHandler           gin.HandlerFunc
	AddReviewHandler          gin.HandlerFunc
	SearchProvidersHandler    gin.HandlerFunc

	// Client-side state
	GetLocationHandler    gin.HandlerFunc
	SaveLocationHandler   gin.HandlerFunc
	GetFavoritesHandler   gin.HandlerFunc
	ToggleFavoriteHandler gin.HandlerFunc
	GetThemeHandler       gin.HandlerFunc
	SaveThemeHandler      gin.HandlerFunc

	// Booking endpoints
	GetUserBookingsHandler     gin.HandlerFunc
	CreateBookingHandler       gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	RescheduleBookingHandler   gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Provider dashboard endpoints
	GetProviderDashboardHandler  gin.HandlerFunc
	UpdateProviderRequestHandler gin.HandlerFunc

	// Admin endpoints
	GetAdminOverviewHandler  gin.HandlerFunc
	GetAdminProvidersHandler gin.HandlerFunc
	ModerateProviderHandler  gin.HandlerFunc
}

// NewHandlerBundle wires every MarketplaceHandler method into a bundle.
func NewHandlerBundle(h *MarketplaceHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: HealthHandler,

		GetSnapshotHandler:        h.GetSnapshotHandler,
		GetCurrentUserHandler:     h.GetCurrentUserHandler,
		GetPopularServicesHandler: h.GetPopularServicesHandler,
		GetProvidersHandler:       h.GetProvidersHandler,
		GetProviderHandler:        h.GetProviderHandler,
		GetQuoteHandler:           h.GetQuoteHandler,
		AddReviewHandler:          h.AddReviewHandler,
		SearchProvidersHandler:    h.SearchProvidersHandler,

		GetLocationHandler:    h.GetLocationHandler,
		SaveLocationHandler:   h.SaveLocationHandler,
		GetFavoritesHandler:   h.GetFavoritesHandler,
		ToggleFavoriteHandler: h.ToggleFavoriteHandler,
		GetThemeHandler:       h.GetThemeHandler,
		SaveThemeHandler:      h.SaveThemeHandler,

		GetUserBookingsHandler:     h.GetUserBookingsHandler,
		CreateBookingHandler:       h.CreateBookingHandler,
		CancelBookingHandler:       h.CancelBookingHandler,
		RescheduleBookingHandler:   h.RescheduleBookingHandler,
		UpdateBookingStatusHandler: h.UpdateBookingStatusHandler,

		GetProviderDashboardHandler:  h.GetProviderDashboardHandler,
		UpdateProviderRequestHandler: h.UpdateProviderRequestHandler,

		GetAdminOverviewHandler:  h.GetAdminOverviewHandler,
		GetAdminProvidersHandler: h.GetAdminProvidersHandler,
		ModerateProviderHandler:  h.ModerateProviderHandler,
	}
}
