package marketplaceRepo

import (
	"context"

	"apna/models"
)

func (s *Store) FetchPopularServices(ctx context.Context) ([]models.PopularService, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]models.PopularService, 0, len(s.popularServices)), s.popularServices...), nil
}

func (s *Store) FetchCurrentUser(ctx context.Context) (models.CurrentUser, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.CurrentUser{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser, nil
}
