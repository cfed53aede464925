package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apna",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created by type.",
		},
		[]string{"type"},
	)

	bookingStatusChanged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apna",
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status updates by side and new status.",
		},
		[]string{"side", "status"},
	)

	reviewsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "apna",
			Name:      "reviews_added_total",
			Help:      "Count of provider reviews added.",
		},
	)

	moderationActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apna",
			Name:      "moderation_actions_total",
			Help:      "Count of admin moderation actions.",
		},
		[]string{"action"},
	)

	searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apna",
			Name:      "searches_total",
			Help:      "Count of provider searches by sort key.",
		},
		[]string{"sort"},
	)

	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "apna",
			Name:      "search_results",
			Help:      "Number of providers returned per search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apna",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{bookingsCreated, bookingStatusChanged, reviewsAdded, moderationActions, searches, searchResults, httpRequests}
}

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(collectors()...)
	})
}

func IncBookingCreated(bookingType string) {
	bookingsCreated.WithLabelValues(bookingType).Inc()
}

func IncBookingStatusChanged(side, status string) {
	bookingStatusChanged.WithLabelValues(side, status).Inc()
}

func IncReviewAdded() {
	reviewsAdded.Inc()
}

func IncModerationAction(action string) {
	moderationActions.WithLabelValues(action).Inc()
}

// ObserveSearch counts a search under its sort key and records how many
// providers it returned.
func ObserveSearch(sort string, n int) {
	searches.WithLabelValues(sort).Inc()
	searchResults.Observe(float64(n))
}

func IncHTTPRequest(route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
