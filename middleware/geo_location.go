package middleware

import (
	"context"
	"time"

	"apna/models"
	"apna/services/geo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoLocationKey is the context key holding the caller's live models.LatLng.
const GeoLocationKey = "geoLocation"

// GeolocationMiddleware asks locator for the client's position and, when one
// is found within timeout, stores it under GeoLocationKey. Requests that
// already carry lat and lng skip the lookup. A failed lookup never fails the
// request.
func GeolocationMiddleware(locator geo.Locator, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if locator == nil || (c.Query("lat") != "" && c.Query("lng") != "") {
			c.Next()
			return
		}
		clientIP := getClientIP(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		pos, err := locator.CurrentPosition(ctx, clientIP)
		cancel()
		if err != nil {
			zap.L().Debug("GeolocationMiddleware: no live position", zap.String("ip", clientIP), zap.Error(err))
			c.Next()
			return
		}

		c.Set(GeoLocationKey, pos)
		c.Next()
	}
}

// LiveLocation returns the position set by GeolocationMiddleware, if any.
func LiveLocation(c *gin.Context) (models.LatLng, bool) {
	v, ok := c.Get(GeoLocationKey)
	if !ok {
		return models.LatLng{}, false
	}
	pos, ok := v.(models.LatLng)
	return pos, ok
}
