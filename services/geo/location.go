package geo

import (
	"context"
	"encoding/json"

	"apna/database/kv"
	"apna/models"
	"apna/utils"
)

type storedLocation struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// ReadStoredUserLocation returns the last saved coordinate. A missing key or a
// malformed value means there is no stored location.
func ReadStoredUserLocation(ctx context.Context, store kv.Store) (models.LatLng, bool) {
	if store == nil {
		return models.LatLng{}, false
	}
	raw, ok := store.Get(ctx, utils.UserLocationKey)
	if !ok || raw == "" {
		return models.LatLng{}, false
	}
	var loc storedLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return models.LatLng{}, false
	}
	if loc.Lat == nil || loc.Lng == nil {
		return models.LatLng{}, false
	}
	return models.LatLng{Lat: *loc.Lat, Lng: *loc.Lng}, true
}

// SaveUserLocation persists loc as {"lat":..,"lng":..}. Failures are ignored.
func SaveUserLocation(ctx context.Context, store kv.Store, loc models.LatLng) {
	if store == nil {
		return
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		return
	}
	store.Set(ctx, utils.UserLocationKey, string(payload))
}
