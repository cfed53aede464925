package dashboard

import (
	"math"

	"apna/models"
)

type UserStats struct {
	TotalBookings    int     `json:"totalBookings"`
	Active           int     `json:"active"`
	Completed        int     `json:"completed"`
	Cancelled        int     `json:"cancelled"`
	Contracts        int     `json:"contracts"`
	CancellationRate float64 `json:"cancellationRate"`
}

// BuildUserStats counts the customer's bookings. Active means pending or
// confirmed; the cancellation rate is a percentage with one decimal.
func BuildUserStats(bookings []models.Booking) UserStats {
	stats := UserStats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending, models.BookingConfirmed:
			stats.Active++
		case models.BookingCompleted:
			stats.Completed++
		case models.BookingCancelled:
			stats.Cancelled++
		}
		if b.Type == models.BookingContract {
			stats.Contracts++
		}
	}
	if stats.TotalBookings > 0 {
		stats.CancellationRate = math.Round(float64(stats.Cancelled)/float64(stats.TotalBookings)*1000) / 10
	}
	return stats
}
