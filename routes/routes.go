package routes

import (
	"time"

	"apna/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterHealthRoutes registers health-check and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterCustomerRoutes registers browsing, search and client-state endpoints.
// searchMiddleware runs on /search only.
func RegisterCustomerRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, searchMiddleware ...gin.HandlerFunc) {
	api.GET("/snapshot", hb.GetSnapshotHandler)
	api.GET("/me", hb.GetCurrentUserHandler)
	api.GET("/services/popular", hb.GetPopularServicesHandler)
	searchChain := append(append([]gin.HandlerFunc{}, searchMiddleware...), hb.SearchProvidersHandler)
	api.GET("/search", searchChain...)

	providers := api.Group("/providers")
	{
		providers.GET("", hb.GetProvidersHandler)
		providers.GET("/:id", hb.GetProviderHandler)
		providers.GET("/:id/quote", hb.GetQuoteHandler)
		providers.POST("/:id/reviews", hb.AddReviewHandler)
	}

	api.GET("/location", hb.GetLocationHandler)
	api.PUT("/location", hb.SaveLocationHandler)
	api.GET("/favorites", hb.GetFavoritesHandler)
	api.POST("/favorites/:id/toggle", hb.ToggleFavoriteHandler)
	api.GET("/theme", hb.GetThemeHandler)
	api.PUT("/theme", hb.SaveThemeHandler)
}

// RegisterBookingRoutes registers the customer's booking endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookingGroup := api.Group("/bookings")
	{
		bookingGroup.GET("", hb.GetUserBookingsHandler)
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelBookingHandler)
		bookingGroup.PUT("/:id/reschedule", hb.RescheduleBookingHandler)
		bookingGroup.PUT("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterProviderDashboardRoutes registers the provider-side endpoints.
func RegisterProviderDashboardRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	dashboard := api.Group("/provider-dashboard")
	{
		dashboard.GET("/:providerId", hb.GetProviderDashboardHandler)
		dashboard.PUT("/bookings/:id/status", hb.UpdateProviderRequestHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/overview", hb.GetAdminOverviewHandler)
		adminGroup.GET("/providers", hb.GetAdminProvidersHandler)
		adminGroup.POST("/providers/:id/moderation", hb.ModerateProviderHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints. searchMiddleware
// (the geolocation lookup) runs on /api/search only.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, searchMiddleware ...gin.HandlerFunc) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)

	api := r.Group("/api")
	RegisterCustomerRoutes(api, hb, searchMiddleware...)
	RegisterBookingRoutes(api, hb)
	RegisterProviderDashboardRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
