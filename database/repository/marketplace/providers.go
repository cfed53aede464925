package marketplaceRepo

import (
	"context"
	"fmt"
	"math"
	"strings"

	"apna/models"
	"apna/utils"

	"github.com/google/uuid"
)

func newReviewID() string {
	return "r-" + uuid.New().String()
}

// clampRating rounds to the nearest integer and clamps to 1..5.
func clampRating(r float64) int {
	if math.IsNaN(r) {
		return 1
	}
	n := math.Round(r)
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return int(n)
}

// averageRating is the mean review rating rounded to one decimal.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

func (s *Store) FetchProviders(ctx context.Context) ([]models.Provider, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Provider, 0, len(s.providers))
	for _, p := range s.providers {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (s *Store) FetchProvider(ctx context.Context, id string) (models.Provider, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.Provider{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.findProvider(id)
	if idx < 0 {
		return models.Provider{}, fmt.Errorf("fetch provider %s: %w", id, ErrProviderNotFound)
	}
	return s.providers[idx].Clone(), nil
}

// AddProviderReview prepends a review and recomputes the provider's rating.
func (s *Store) AddProviderReview(ctx context.Context, providerID string, input models.ReviewInput) (models.Review, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.Review{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProvider(providerID)
	if idx < 0 {
		return models.Review{}, fmt.Errorf("add review for provider %s: %w", providerID, ErrProviderNotFound)
	}

	review := models.Review{
		ID:       s.newID(),
		UserName: input.UserName,
		Rating:   clampRating(input.Rating),
		Comment:  strings.TrimSpace(input.Comment),
		Date:     s.now().Format(utils.DateLayout),
	}

	p := &s.providers[idx]
	p.Reviews = append([]models.Review{review}, p.Reviews...)
	p.Rating = averageRating(p.Reviews)
	return review, nil
}

// UpdateProviderModeration applies a moderation action. Unknown providers are ignored.
func (s *Store) UpdateProviderModeration(ctx context.Context, providerID string, action models.ModerationAction) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProvider(providerID)
	if idx < 0 {
		return nil
	}
	p := &s.providers[idx]
	switch action {
	case models.ModerationFlag:
		p.FlaggedCount++
	case models.ModerationBlock:
		p.Blocked = true
	case models.ModerationUnblock:
		p.Blocked = false
	default:
		return fmt.Errorf("%w: %q", models.ErrInvalidModerationAction, action)
	}
	return nil
}
