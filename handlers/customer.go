package handlers

import (
	"net/http"

	"apna/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSnapshotHandler returns every collection at once plus the saved providers.
func (h *MarketplaceHandler) GetSnapshotHandler(c *gin.Context) {
	snap, err := h.Service.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load marketplace", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *MarketplaceHandler) GetCurrentUserHandler(c *gin.Context) {
	user, err := h.Service.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch current user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *MarketplaceHandler) GetPopularServicesHandler(c *gin.Context) {
	services, err := h.Service.PopularServices(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch popular services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *MarketplaceHandler) GetProvidersHandler(c *gin.Context) {
	providers, err := h.Service.Providers(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch providers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderHandler returns one provider with its reviews and saved state.
func (h *MarketplaceHandler) GetProviderHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	provider, err := h.Service.Provider(ctx, id)
	if err != nil {
		respondError(c, "Provider not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"provider":   provider,
		"isFavorite": h.Service.Favorites().IsFavorite(ctx, id),
	})
}

// GetQuoteHandler returns the confirmation-page price breakdown.
func (h *MarketplaceHandler) GetQuoteHandler(c *gin.Context) {
	provider, err := h.Service.Provider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Provider not found", err)
		return
	}
	c.JSON(http.StatusOK, booking.Quote(provider))
}

type reviewRequest struct {
	Rating  *float64 `json:"rating" binding:"required"`
	Comment string   `json:"comment"`
}

func (h *MarketplaceHandler) AddReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid review request", zap.Error(err))
		badRequest(c, err)
		return
	}

	review, err := h.Service.AddReview(c.Request.Context(), c.Param("id"), *req.Rating, req.Comment)
	if err != nil {
		respondError(c, "Failed to add review", err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
