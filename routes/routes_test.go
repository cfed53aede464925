package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apna/database/kv"
	marketplaceRepo "apna/database/repository/marketplace"
	"apna/handlers"
	"apna/middleware"
	"apna/models"
	"apna/services/geo"
	"apna/services/marketplace"
	"apna/services/notification"
	"apna/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, searchMiddleware ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kv.NewMemoryStore()
	repo := marketplaceRepo.NewSeededStore(marketplaceRepo.Options{})
	svc := marketplace.NewDefaultMarketplaceService(repo, store, notification.LogNotifier{Logger: zap.NewNop()}, zap.NewNop())
	hb := handlers.NewHandlerBundle(handlers.NewMarketplaceHandler(svc, store))

	r := gin.New()
	RegisterRoutes(r, hb, searchMiddleware...)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

type searchResponse struct {
	Results []struct {
		Provider   models.Provider `json:"provider"`
		DistanceKm *float64        `json:"distanceKm"`
		Distance   string          `json:"distance"`
	} `json:"results"`
	Count    int            `json:"count"`
	Location *models.LatLng `json:"location"`
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/metrics", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", w.Code)
	}
}

func TestProviderEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/providers/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	detail := decode[struct {
		Provider   models.Provider `json:"provider"`
		IsFavorite bool            `json:"isFavorite"`
	}](t, w)
	if detail.Provider.ID != "1" || detail.IsFavorite {
		t.Fatalf("unexpected provider detail %+v", detail)
	}

	if w := do(t, r, http.MethodGet, "/api/providers/missing", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown provider, got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/providers/1/quote", nil)
	quote := decode[struct {
		Total                float64 `json:"total"`
		Recorded             float64 `json:"recorded"`
		InsuranceFee         float64 `json:"insuranceFee"`
		InsuranceNotRecorded bool    `json:"insuranceNotRecorded"`
	}](t, w)
	if quote.Recorded != 73 || quote.InsuranceFee != 15 || quote.Total != 88 || !quote.InsuranceNotRecorded {
		t.Fatalf("unexpected quote %+v", quote)
	}
}

func TestAddReviewEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/providers/1/reviews", map[string]any{"rating": 7, "comment": "Spotless"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	review := decode[models.Review](t, w)
	if review.Rating != 5 || review.UserName == "" {
		t.Fatalf("expected clamped rating by current user, got %+v", review)
	}

	tests := []struct {
		name string
		path string
		body map[string]any
		want int
	}{
		{name: "blank comment", path: "/api/providers/1/reviews", body: map[string]any{"rating": 4, "comment": "  "}, want: http.StatusBadRequest},
		{name: "missing rating", path: "/api/providers/1/reviews", body: map[string]any{"comment": "ok"}, want: http.StatusBadRequest},
		{name: "unknown provider", path: "/api/providers/zz/reviews", body: map[string]any{"rating": 4, "comment": "ok"}, want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := do(t, r, http.MethodPost, tc.path, tc.body); w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestSearchEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/search?sort=price-asc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	res := decode[searchResponse](t, w)
	if res.Count == 0 || res.Location != nil {
		t.Fatalf("expected results without location, got %+v", res)
	}
	for i := 1; i < len(res.Results); i++ {
		if res.Results[i-1].Provider.BasePrice > res.Results[i].Provider.BasePrice {
			t.Fatalf("results not sorted by price at %d", i)
		}
	}

	w = do(t, r, http.MethodGet, "/api/search?lat=19.0726&lng=72.8845&maxDistance=7", nil)
	res = decode[searchResponse](t, w)
	if res.Location == nil || res.Results[0].Provider.ID != "1" {
		t.Fatalf("expected nearest-first from Kurla, got %+v", res)
	}
	for _, item := range res.Results {
		if item.DistanceKm == nil || *item.DistanceKm > 7 {
			t.Fatalf("expected all results within 7km, got %+v", item)
		}
	}

	// The coordinate is remembered for the next search.
	w = do(t, r, http.MethodGet, "/api/location", nil)
	loc := decode[struct {
		Location *models.LatLng `json:"location"`
	}](t, w)
	if loc.Location == nil || loc.Location.Lat != 19.0726 {
		t.Fatalf("expected stored location, got %+v", loc)
	}

	for _, q := range []string{
		"sort=cheapest",
		"minPrice=abc",
		"minPrice=NaN",
		"maxDistance=Inf",
		"lat=north&lng=1",
		"lat=19.07",
		"lng=72.88",
		"lat=91&lng=72.88",
		"lat=19.07&lng=-181",
	} {
		w := do(t, r, http.MethodGet, "/api/search?"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
		body := decode[utils.ErrorResponse](t, w)
		if body.Message != "Invalid request" || body.Details == "" {
			t.Fatalf("%s: expected error envelope, got %+v", q, body)
		}
	}
}

func TestGeolocationOnlyRunsForSearch(t *testing.T) {
	lookups := 0
	live := models.LatLng{Lat: 19.1136, Lng: 72.8697}
	locator := geo.LocatorFunc(func(context.Context, string) (models.LatLng, error) {
		lookups++
		return live, nil
	})
	r := newTestRouter(t, middleware.GeolocationMiddleware(locator, time.Second))

	for _, path := range []string{"/api/theme", "/api/me", "/api/admin/overview", "/api/search?lat=19.07&lng=72.88"} {
		if w := do(t, r, http.MethodGet, path, nil); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
	if lookups != 0 {
		t.Fatalf("expected no lookups outside IP-located search, got %d", lookups)
	}

	res := decode[searchResponse](t, do(t, r, http.MethodGet, "/api/search", nil))
	if lookups != 1 {
		t.Fatalf("expected one lookup for search without coordinates, got %d", lookups)
	}
	if res.Location == nil || *res.Location != live {
		t.Fatalf("expected live location %+v, got %+v", live, res.Location)
	}

	loc := decode[struct {
		Location *models.LatLng `json:"location"`
	}](t, do(t, r, http.MethodGet, "/api/location", nil))
	if loc.Location == nil || *loc.Location != live {
		t.Fatalf("expected live location to be stored, got %+v", loc.Location)
	}
}

func TestSearchFallsBackToStoredLocation(t *testing.T) {
	failing := geo.LocatorFunc(func(context.Context, string) (models.LatLng, error) {
		return models.LatLng{}, geo.ErrNoPosition
	})
	r := newTestRouter(t, middleware.GeolocationMiddleware(failing, time.Second))

	saved := map[string]any{"lat": 19.0596, "lng": 72.8295}
	if w := do(t, r, http.MethodPut, "/api/location", saved); w.Code != http.StatusOK {
		t.Fatalf("expected 200 saving location, got %d", w.Code)
	}
	res := decode[searchResponse](t, do(t, r, http.MethodGet, "/api/search", nil))
	if res.Location == nil || res.Location.Lat != 19.0596 || res.Location.Lng != 72.8295 {
		t.Fatalf("expected stored location, got %+v", res.Location)
	}
}

func TestFavoritesAndSavedSearch(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/favorites/3/toggle", nil)
	toggled := decode[struct {
		Saved bool     `json:"saved"`
		IDs   []string `json:"favoriteProviderIds"`
	}](t, w)
	if !toggled.Saved || len(toggled.IDs) != 1 || toggled.IDs[0] != "3" {
		t.Fatalf("unexpected toggle response %+v", toggled)
	}

	res := decode[searchResponse](t, do(t, r, http.MethodGet, "/api/search?saved=true", nil))
	if res.Count != 1 || res.Results[0].Provider.ID != "3" {
		t.Fatalf("expected only provider 3, got %+v", res)
	}

	do(t, r, http.MethodPost, "/api/favorites/3/toggle", nil)
	ids := decode[struct {
		IDs []string `json:"favoriteProviderIds"`
	}](t, do(t, r, http.MethodGet, "/api/favorites", nil))
	if len(ids.IDs) != 0 {
		t.Fatalf("expected favorites cleared, got %v", ids.IDs)
	}
}

func TestBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/bookings", map[string]any{"providerId": "1", "date": "2026-03-05", "time": "10:00 AM"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	booking := decode[models.Booking](t, w)
	if booking.Amount != 73 || booking.Status != models.BookingConfirmed || booking.Type != models.BookingOneTime {
		t.Fatalf("unexpected booking %+v", booking)
	}

	dash := decode[struct {
		Stats struct {
			PendingRequests int `json:"pendingRequests"`
		} `json:"stats"`
		Bookings []models.Booking `json:"bookings"`
	}](t, do(t, r, http.MethodGet, "/api/provider-dashboard/1?status=pending", nil))
	if dash.Stats.PendingRequests != 3 || len(dash.Bookings) != 3 {
		t.Fatalf("expected 3 pending requests incl. the new twin, got %+v", dash)
	}

	if w := do(t, r, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil); w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPut, "/api/bookings/"+booking.ID+"/reschedule", map[string]any{"date": "2026-03-08", "time": "1:00 PM"}); w.Code != http.StatusOK {
		t.Fatalf("reschedule: expected 200, got %d", w.Code)
	}

	list := decode[struct {
		Bookings []models.Booking `json:"bookings"`
	}](t, do(t, r, http.MethodGet, "/api/bookings", nil))
	if list.Bookings[0].ID != booking.ID || list.Bookings[0].Status != models.BookingPending || list.Bookings[0].Date != "2026-03-08" {
		t.Fatalf("expected rescheduled booking to be pending, got %+v", list.Bookings[0])
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   map[string]any
		want   int
	}{
		{name: "unknown provider", method: http.MethodPost, path: "/api/bookings", body: map[string]any{"providerId": "zz", "date": "2026-03-05", "time": "10:00 AM"}, want: http.StatusNotFound},
		{name: "bad type", method: http.MethodPost, path: "/api/bookings", body: map[string]any{"providerId": "1", "date": "2026-03-05", "time": "10:00 AM", "type": "weekly"}, want: http.StatusBadRequest},
		{name: "missing date", method: http.MethodPost, path: "/api/bookings", body: map[string]any{"providerId": "1", "time": "10:00 AM"}, want: http.StatusBadRequest},
		{name: "bad status", method: http.MethodPut, path: "/api/bookings/b1/status", body: map[string]any{"status": "done"}, want: http.StatusBadRequest},
		{name: "status update", method: http.MethodPut, path: "/api/bookings/b1/status", body: map[string]any{"status": "completed"}, want: http.StatusOK},
		{name: "provider accepts", method: http.MethodPut, path: "/api/provider-dashboard/bookings/pb1/status", body: map[string]any{"status": "confirmed"}, want: http.StatusOK},
		{name: "unknown provider dashboard", method: http.MethodGet, path: "/api/provider-dashboard/zz", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := do(t, r, tc.method, tc.path, tc.body); w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestAdminModeration(t *testing.T) {
	r := newTestRouter(t)

	for _, action := range []string{"flag", "block"} {
		if w := do(t, r, http.MethodPost, "/api/admin/providers/1/moderation", map[string]any{"action": action}); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", action, w.Code)
		}
	}
	if w := do(t, r, http.MethodPost, "/api/admin/providers/1/moderation", map[string]any{"action": "ban"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", w.Code)
	}

	overview := decode[struct {
		BlockedProviders int `json:"blockedProviders"`
		FlaggedAccounts  int `json:"flaggedAccounts"`
	}](t, do(t, r, http.MethodGet, "/api/admin/overview", nil))
	if overview.BlockedProviders < 1 || overview.FlaggedAccounts < 1 {
		t.Fatalf("expected moderation reflected in overview, got %+v", overview)
	}

	// Blocked providers disappear from customer search but stay visible to admins.
	res := decode[searchResponse](t, do(t, r, http.MethodGet, "/api/search", nil))
	for _, item := range res.Results {
		if item.Provider.ID == "1" {
			t.Fatal("expected blocked provider hidden from search")
		}
	}
	admin := decode[struct {
		Providers []models.Provider `json:"providers"`
	}](t, do(t, r, http.MethodGet, "/api/admin/providers?q=priya", nil))
	if len(admin.Providers) != 1 || !admin.Providers[0].Blocked {
		t.Fatalf("expected blocked Priya in admin list, got %+v", admin.Providers)
	}
}

func TestThemeEndpoints(t *testing.T) {
	r := newTestRouter(t)

	got := decode[struct {
		Theme string `json:"theme"`
	}](t, do(t, r, http.MethodGet, "/api/theme?systemDark=true", nil))
	if got.Theme != "dark" {
		t.Fatalf("expected system preference dark, got %s", got.Theme)
	}

	if w := do(t, r, http.MethodPut, "/api/theme", map[string]any{"theme": "light"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got = decode[struct {
		Theme string `json:"theme"`
	}](t, do(t, r, http.MethodGet, "/api/theme?systemDark=true", nil))
	if got.Theme != "light" {
		t.Fatalf("expected stored light to win, got %s", got.Theme)
	}

	if w := do(t, r, http.MethodPut, "/api/theme", map[string]any{"theme": "sepia"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown theme, got %d", w.Code)
	}
}

func TestSnapshotAndCatalogue(t *testing.T) {
	r := newTestRouter(t)

	snap := decode[struct {
		CurrentUser models.CurrentUser `json:"currentUser"`
		Providers   []models.Provider  `json:"providers"`
	}](t, do(t, r, http.MethodGet, "/api/snapshot", nil))
	if snap.CurrentUser.ID == "" || len(snap.Providers) == 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	if w := do(t, r, http.MethodGet, "/api/services/popular", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/me", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
