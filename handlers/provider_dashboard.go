package handlers

import (
	"net/http"

	"apna/models"
	"apna/services/dashboard"

	"github.com/gin-gonic/gin"
)

// GetProviderDashboardHandler returns a provider's requests and earnings.
// Optional query: status (or "all") and q over customer name and service.
func (h *MarketplaceHandler) GetProviderDashboardHandler(c *gin.Context) {
	ctx := c.Request.Context()
	providerID := c.Param("providerId")

	provider, err := h.Service.Provider(ctx, providerID)
	if err != nil {
		respondError(c, "Provider not found", err)
		return
	}

	var status models.BookingStatus
	if raw := c.Query("status"); raw != "" && raw != "all" {
		if status, err = models.ParseBookingStatus(raw); err != nil {
			respondError(c, "Invalid booking status", err)
			return
		}
	}

	bookings, err := h.Service.ProviderBookings(ctx)
	if err != nil {
		respondError(c, "Failed to fetch provider bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"provider": provider,
		"stats":    dashboard.BuildProviderStats(provider, bookings),
		"bookings": dashboard.ProviderBookings(bookings, providerID, status, c.Query("q")),
	})
}

// UpdateProviderRequestHandler accepts, declines or completes a request.
// The customer's copy of the booking is not touched.
func (h *MarketplaceHandler) UpdateProviderRequestHandler(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.Service.UpdateProviderRequest(c.Request.Context(), id, status); err != nil {
		respondError(c, "Failed to update request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}
