package dashboard

import (
	"math"
	"strings"

	"apna/models"
)

// monthlyEarningsShare approximates this month's slice of lifetime earnings.
const monthlyEarningsShare = 0.24

type ProviderStats struct {
	ReliabilityScore float64 `json:"reliabilityScore"`
	TotalEarnings    float64 `json:"totalEarnings"`
	MonthlyEarnings  float64 `json:"monthlyEarnings"`
	PendingRequests  int     `json:"pendingRequests"`
	UpcomingBookings int     `json:"upcomingBookings"`
	Completed        int     `json:"completed"`
	Cancellations    int     `json:"cancellations"`
	AcceptRate       int     `json:"acceptRate"`
}

// ProviderBookings returns providerID's bookings, optionally narrowed to one
// status and to those whose customer name or service contains text.
// An empty status or "all" keeps every status.
func ProviderBookings(bookings []models.Booking, providerID string, status models.BookingStatus, text string) []models.Booking {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.ProviderID != providerID {
			continue
		}
		if status != "" && status != "all" && b.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.ProviderName), needle) &&
			!strings.Contains(strings.ToLower(b.Service), needle) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BuildProviderStats summarises the provider-side bookings for p. The accept
// rate here is live: confirmed plus completed over everything received.
func BuildProviderStats(p models.Provider, bookings []models.Booking) ProviderStats {
	stats := ProviderStats{ReliabilityScore: p.ReliabilityScore}
	var earnings float64
	total := 0
	for _, b := range bookings {
		if b.ProviderID != p.ID {
			continue
		}
		total++
		switch b.Status {
		case models.BookingPending:
			stats.PendingRequests++
		case models.BookingConfirmed:
			stats.UpcomingBookings++
		case models.BookingCompleted:
			stats.Completed++
			earnings += b.Amount
		case models.BookingCancelled:
			stats.Cancellations++
		}
	}
	stats.TotalEarnings = math.Round(earnings)
	stats.MonthlyEarnings = math.Round(earnings * monthlyEarningsShare)
	if total > 0 {
		stats.AcceptRate = int(math.Round(float64(stats.Completed+stats.UpcomingBookings) / float64(total) * 100))
	}
	return stats
}
