package handlers

import (
	"net/http"

	"apna/models"
	"apna/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAdminOverviewHandler returns platform-wide moderation figures.
func (h *MarketplaceHandler) GetAdminOverviewHandler(c *gin.Context) {
	ctx := c.Request.Context()
	providers, err := h.Service.Providers(ctx)
	if err != nil {
		respondError(c, "Failed to fetch providers", err)
		return
	}
	bookings, err := h.Service.UserBookings(ctx)
	if err != nil {
		respondError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, dashboard.BuildAdminOverview(providers, bookings))
}

// GetAdminProvidersHandler lists every provider, blocked ones included.
func (h *MarketplaceHandler) GetAdminProvidersHandler(c *gin.Context) {
	providers, err := h.Service.Providers(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all providers", zap.Error(err))
		respondError(c, "Failed to fetch providers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": dashboard.FilterProviders(providers, c.Query("q"))})
}

type moderationRequest struct {
	Action string `json:"action" binding:"required"`
}

func (h *MarketplaceHandler) ModerateProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	action, err := models.ParseModerationAction(req.Action)
	if err != nil {
		respondError(c, "Invalid moderation action", err)
		return
	}

	id := c.Param("id")
	if err := h.Service.ModerateProvider(c.Request.Context(), id, action); err != nil {
		respondError(c, "Failed to moderate provider", err)
		return
	}
	logger.Info("Moderation applied", zap.String("providerId", id), zap.String("action", string(action)))
	c.JSON(http.StatusOK, gin.H{"id": id, "action": action})
}
