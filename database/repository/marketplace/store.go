package marketplaceRepo

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"apna/models"
)

// Seed is the initial content of a Store.
type Seed struct {
	CurrentUser      models.CurrentUser
	Providers        []models.Provider
	UserBookings     []models.Booking
	ProviderBookings []models.Booking
	PopularServices  []models.PopularService
}

// Options configure a Store.
type Options struct {
	// Latency is awaited before every operation to mimic a remote backend.
	Latency time.Duration
	// Now stamps review dates. Defaults to time.Now.
	Now func() time.Time
	// NewID generates review ids. Defaults to a random UUID.
	NewID func() string
}

// Store is the in-memory marketplace backend. It is created once per process
// and shared by every consumer; all collections are guarded by one lock so
// that multi-record writes are observed atomically.
type Store struct {
	latency time.Duration
	now     func() time.Time
	newID   func() string

	mu               sync.RWMutex
	currentUser      models.CurrentUser
	providers        []models.Provider
	userBookings     []models.Booking
	providerBookings []models.Booking
	popularServices  []models.PopularService
	nextUserSeq      int
	nextProviderSeq  int
}

var _ MarketplaceRepository = (*Store)(nil)

// NewStore builds a store from seed. The seed is copied and every provider's
// rating is recomputed from its reviews.
func NewStore(seed Seed, opts Options) *Store {
	s := &Store{
		latency:         opts.Latency,
		now:             opts.Now,
		newID:           opts.NewID,
		currentUser:     seed.CurrentUser,
		popularServices: append([]models.PopularService(nil), seed.PopularServices...),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = newReviewID
	}

	s.providers = make([]models.Provider, 0, len(seed.Providers))
	for _, p := range seed.Providers {
		p = p.Clone()
		if len(p.Reviews) > 0 {
			p.Rating = averageRating(p.Reviews)
		}
		s.providers = append(s.providers, p)
	}
	s.userBookings = append([]models.Booking(nil), seed.UserBookings...)
	s.providerBookings = append([]models.Booking(nil), seed.ProviderBookings...)
	s.nextUserSeq = nextSeq(s.userBookings, userBookingPrefix)
	s.nextProviderSeq = nextSeq(s.providerBookings, providerBookingPrefix)
	return s
}

// NewSeededStore builds a store holding the demo dataset.
func NewSeededStore(opts Options) *Store {
	return NewStore(DefaultSeed(), opts)
}

// simulateLatency waits for the configured delay or until ctx is done.
func (s *Store) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// findProvider returns the index of id, or -1. Callers hold the lock.
func (s *Store) findProvider(id string) int {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return i
		}
	}
	return -1
}

func findBooking(bookings []models.Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// nextSeq returns one past the highest numeric suffix among ids with prefix.
func nextSeq(bookings []models.Booking, prefix string) int {
	max := 0
	for _, b := range bookings {
		if !strings.HasPrefix(b.ID, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(b.ID, prefix))
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}
