package handlers

import (
	"net/http"

	"apna/models"
	"apna/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetUserBookingsHandler lists the customer's bookings with summary counts.
func (h *MarketplaceHandler) GetUserBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.UserBookings(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"stats":    dashboard.BuildUserStats(bookings),
	})
}

type createBookingRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Type       string `json:"type"`
}

func (h *MarketplaceHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		badRequest(c, err)
		return
	}
	bookingType, err := models.ParseBookingType(req.Type)
	if err != nil {
		respondError(c, "Invalid booking type", err)
		return
	}

	booking, err := h.Service.BookProvider(c.Request.Context(), req.ProviderID, req.Date, req.Time, bookingType)
	if err != nil {
		respondError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *MarketplaceHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CancelUserBooking(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": models.BookingCancelled})
}

type rescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *MarketplaceHandler) RescheduleBookingHandler(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id := c.Param("id")
	if err := h.Service.RescheduleBooking(c.Request.Context(), id, req.Date, req.Time); err != nil {
		respondError(c, "Failed to reschedule booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "date": req.Date, "time": req.Time})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// bindStatus reads and validates a status body, writing the error response itself.
func bindStatus(c *gin.Context) (models.BookingStatus, bool) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return "", false
	}
	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		respondError(c, "Invalid booking status", err)
		return "", false
	}
	return status, true
}

func (h *MarketplaceHandler) UpdateBookingStatusHandler(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.Service.UpdateUserBookingStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, "Failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}
