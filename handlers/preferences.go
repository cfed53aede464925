package handlers

import (
	"net/http"

	"apna/models"
	"apna/services/geo"
	"apna/services/theme"

	"github.com/gin-gonic/gin"
)

func (h *MarketplaceHandler) GetLocationHandler(c *gin.Context) {
	loc, ok := geo.ReadStoredUserLocation(c.Request.Context(), h.KV)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"location": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

type locationRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

func (h *MarketplaceHandler) SaveLocationHandler(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	loc := models.LatLng{Lat: *req.Lat, Lng: *req.Lng}
	geo.SaveUserLocation(c.Request.Context(), h.KV, loc)
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

func (h *MarketplaceHandler) GetFavoritesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favoriteProviderIds": h.Service.Favorites().IDs(c.Request.Context())})
}

func (h *MarketplaceHandler) ToggleFavoriteHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	favorites := h.Service.Favorites()
	saved := favorites.Toggle(ctx, id)
	c.JSON(http.StatusOK, gin.H{
		"providerId":          id,
		"saved":               saved,
		"favoriteProviderIds": favorites.IDs(ctx),
	})
}

// GetThemeHandler resolves the theme; systemDark reports the client's OS preference.
func (h *MarketplaceHandler) GetThemeHandler(c *gin.Context) {
	t := theme.Resolve(c.Request.Context(), h.KV, queryBool(c, "systemDark"))
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *MarketplaceHandler) SaveThemeHandler(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := theme.Parse(req.Theme)
	if err != nil {
		respondError(c, "Invalid theme", err)
		return
	}
	theme.Save(c.Request.Context(), h.KV, t)
	c.JSON(http.StatusOK, gin.H{"theme": t})
}
