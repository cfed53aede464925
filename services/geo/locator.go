package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"apna/database/kv"
	"apna/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoPosition is returned when a locator cannot produce a coordinate.
var ErrNoPosition = errors.New("position unavailable")

// Locator produces the caller's current position. hint is implementation
// specific (the client IP for IPLocator).
type Locator interface {
	CurrentPosition(ctx context.Context, hint string) (models.LatLng, error)
}

// ipLookupResponse is the subset of the ipapi.co payload we use.
type ipLookupResponse struct {
	IP        string   `json:"ip"`
	City      string   `json:"city"`
	Country   string   `json:"country_name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

const (
	positiveTTL     = 24 * time.Hour
	negativeTTL     = time.Minute
	maxCacheEntries = 4096
)

type cacheEntry struct {
	pos     models.LatLng
	err     error
	expires time.Time
}

// IPLocator resolves coordinates from a client IP through an HTTP lookup
// service. Answers and failures are cached per IP (failures briefly), the
// cache holds at most MaxEntries IPs, and concurrent lookups for one IP share
// a single upstream call. Private and loopback addresses are never sent
// upstream.
type IPLocator struct {
	URL        string // fmt pattern, %s is the IP
	Client     *http.Client
	Logger     *zap.Logger
	MaxEntries int
	Now        func() time.Time

	mu     sync.Mutex
	cache  map[string]cacheEntry
	flight singleflight.Group
}

func NewIPLocator(url string, timeout time.Duration, logger *zap.Logger) *IPLocator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IPLocator{
		URL:        url,
		Client:     &http.Client{Timeout: timeout},
		Logger:     logger,
		MaxEntries: maxCacheEntries,
		Now:        time.Now,
		cache:      make(map[string]cacheEntry),
	}
}

func isPrivateIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() || parsed.IsLinkLocalUnicast()
}

func (l *IPLocator) cached(ip string) (cacheEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.cache[ip]
	if !ok {
		return cacheEntry{}, false
	}
	if l.Now().After(e.expires) {
		delete(l.cache, ip)
		return cacheEntry{}, false
	}
	return e, true
}

func (l *IPLocator) remember(ip string, e cacheEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[ip]; !ok && len(l.cache) >= l.MaxEntries {
		now := l.Now()
		for key, old := range l.cache {
			if now.After(old.expires) {
				delete(l.cache, key)
			}
		}
		// still full: drop arbitrary entries until there is room
		for key := range l.cache {
			if len(l.cache) < l.MaxEntries {
				break
			}
			delete(l.cache, key)
		}
	}
	l.cache[ip] = e
}

func (l *IPLocator) CurrentPosition(ctx context.Context, ip string) (models.LatLng, error) {
	if isPrivateIP(ip) {
		return models.LatLng{}, ErrNoPosition
	}
	if e, ok := l.cached(ip); ok {
		return e.pos, e.err
	}

	v, err, _ := l.flight.Do(ip, func() (any, error) {
		pos, err := l.lookup(ctx, ip)
		if err != nil && errors.Is(ctx.Err(), context.Canceled) {
			// the client went away; says nothing about the upstream
			return pos, err
		}
		ttl := positiveTTL
		if err != nil {
			ttl = negativeTTL
		}
		l.remember(ip, cacheEntry{pos: pos, err: err, expires: l.Now().Add(ttl)})
		return pos, err
	})
	if err != nil {
		return models.LatLng{}, err
	}
	return v.(models.LatLng), nil
}

func (l *IPLocator) lookup(ctx context.Context, ip string) (models.LatLng, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(l.URL, ip), nil)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("build geolocation request: %w", err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("query geolocation API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.LatLng{}, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var body ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.LatLng{}, fmt.Errorf("decode geolocation response: %w", err)
	}
	if body.Latitude == nil || body.Longitude == nil {
		return models.LatLng{}, ErrNoPosition
	}

	l.Logger.Debug("Geolocation retrieved from external API",
		zap.String("ip", ip), zap.String("city", body.City), zap.String("country", body.Country))
	return models.LatLng{Lat: *body.Latitude, Lng: *body.Longitude}, nil
}

// LocatorFunc adapts a plain function to Locator.
type LocatorFunc func(ctx context.Context, hint string) (models.LatLng, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context, hint string) (models.LatLng, error) {
	return f(ctx, hint)
}

// ResolveUserLocation asks the locator for a live position, bounded by
// timeout when it is positive. A live position is saved for later; on any failure the stored
// location is used instead. ok is false when neither is available.
func ResolveUserLocation(ctx context.Context, locator Locator, store kv.Store, hint string, timeout time.Duration) (models.LatLng, bool) {
	if locator != nil {
		lookupCtx, cancel := ctx, context.CancelFunc(func() {})
		if timeout > 0 {
			lookupCtx, cancel = context.WithTimeout(ctx, timeout)
		}
		pos, err := locator.CurrentPosition(lookupCtx, hint)
		cancel()
		if err == nil {
			SaveUserLocation(ctx, store, pos)
			return pos, true
		}
		zap.L().Debug("geo: live position unavailable, falling back to stored", zap.Error(err))
	}
	return ReadStoredUserLocation(ctx, store)
}
