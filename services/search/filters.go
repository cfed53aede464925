package search

import (
	"errors"
	"fmt"
	"strings"
)

type SortKey string

const (
	SortNearest     SortKey = "nearest"
	SortRating      SortKey = "rating"
	SortReliability SortKey = "reliability"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
)

// Thresholds for the quick toggles.
const (
	VerifiedReliability = 95
	FastResponderAccept = 90
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// ParseSortKey maps a user supplied key; empty means nearest first.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortNearest, nil
	case SortNearest, SortRating, SortReliability, SortPriceAsc, SortPriceDesc:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Filters are the user's search choices. Zero values disable a constraint;
// pointer fields are only active when set.
type Filters struct {
	Query          string
	Category       string
	MinPrice       *float64
	MaxPrice       *float64
	MinRating      float64
	MinReliability float64
	VerifiedOnly   bool
	FastResponder  bool
	SavedOnly      bool
	MaxDistanceKm  *float64
	HideBlocked    bool
	Sort           SortKey
}

// FavoriteSet reports whether a provider id is saved.
type FavoriteSet interface {
	Has(id string) bool
}

// IDSet is a FavoriteSet over a plain map.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
