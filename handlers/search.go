package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"apna/metrics"
	"apna/middleware"
	"apna/models"
	"apna/services/geo"
	"apna/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func optionalFloat(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a finite number", name)
	}
	return &v, nil
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

// parseFilters reads search filters from the query string.
func parseFilters(c *gin.Context) (search.Filters, error) {
	f := search.Filters{
		Query:         c.Query("q"),
		Category:      c.Query("category"),
		VerifiedOnly:  queryBool(c, "verified"),
		FastResponder: queryBool(c, "fast"),
		SavedOnly:     queryBool(c, "saved"),
		// Customers never see blocked providers.
		HideBlocked: true,
	}

	sortKey, err := search.ParseSortKey(c.Query("sort"))
	if err != nil {
		return f, err
	}
	f.Sort = sortKey

	if f.MinPrice, err = optionalFloat(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalFloat(c, "maxPrice"); err != nil {
		return f, err
	}
	if f.MaxDistanceKm, err = optionalFloat(c, "maxDistance"); err != nil {
		return f, err
	}
	minRating, err := optionalFloat(c, "minRating")
	if err != nil {
		return f, err
	}
	if minRating != nil {
		f.MinRating = *minRating
	}
	minReliability, err := optionalFloat(c, "minReliability")
	if err != nil {
		return f, err
	}
	if minReliability != nil {
		f.MinReliability = *minReliability
	}
	return f, nil
}

// explicitLocation reads a lat/lng pair from the query. Both or neither must
// be given.
func explicitLocation(c *gin.Context) (*models.LatLng, error) {
	lat, err := optionalFloat(c, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := optionalFloat(c, "lng")
	if err != nil {
		return nil, err
	}
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil || lng == nil:
		return nil, errors.New("lat and lng must be given together")
	case *lat < -90 || *lat > 90:
		return nil, errors.New("lat must be between -90 and 90")
	case *lng < -180 || *lng > 180:
		return nil, errors.New("lng must be between -180 and 180")
	}
	return &models.LatLng{Lat: *lat, Lng: *lng}, nil
}

// userLocation picks explicit lat/lng, then the live IP position, then the
// stored coordinate. Live positions are remembered for next time.
func (h *MarketplaceHandler) userLocation(c *gin.Context) (*models.LatLng, error) {
	explicit, err := explicitLocation(c)
	if err != nil {
		return nil, err
	}
	live := geo.LocatorFunc(func(context.Context, string) (models.LatLng, error) {
		if explicit != nil {
			return *explicit, nil
		}
		if pos, ok := middleware.LiveLocation(c); ok {
			return pos, nil
		}
		return models.LatLng{}, geo.ErrNoPosition
	})
	// the middleware already bounded the IP lookup
	pos, ok := geo.ResolveUserLocation(c.Request.Context(), live, h.KV, "", 0)
	if !ok {
		return nil, nil
	}
	return &pos, nil
}

// SearchProvidersHandler runs the filter and sort pipeline over all providers.
func (h *MarketplaceHandler) SearchProvidersHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	filters, err := parseFilters(c)
	if err != nil {
		logger.Warn("Invalid search filters", zap.Error(err))
		badRequest(c, err)
		return
	}
	loc, err := h.userLocation(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	providers, err := h.Service.Providers(ctx)
	if err != nil {
		respondError(c, "Failed to fetch providers", err)
		return
	}
	favorites := search.NewIDSet(h.Service.Favorites().IDs(ctx)...)

	results := search.Search(providers, filters, loc, favorites)
	metrics.ObserveSearch(string(filters.Sort), len(results))
	logger.Debug("Search completed", zap.Int("results", len(results)), zap.Bool("located", loc != nil))

	c.JSON(http.StatusOK, gin.H{
		"results":  results,
		"count":    len(results),
		"location": loc,
		"sort":     filters.Sort,
	})
}
