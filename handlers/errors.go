package handlers

import (
	"context"
	"errors"
	"net/http"

	marketplaceRepo "apna/database/repository/marketplace"
	"apna/models"
	"apna/services/marketplace"
	"apna/services/search"
	"apna/services/theme"
	"apna/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, marketplaceRepo.ErrProviderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, marketplace.ErrEmptyComment),
		errors.Is(err, marketplace.ErrNoCurrentUser),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidBookingType),
		errors.Is(err, models.ErrInvalidModerationAction),
		errors.Is(err, search.ErrInvalidSortKey),
		errors.Is(err, theme.ErrInvalidTheme):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads this.
		status = 499
	}
	utils.JSONError(c, status, message, err.Error())
}

// badRequest reports a request the handler could not parse.
func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
