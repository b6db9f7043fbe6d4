package catalog

import (
	"context"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// ListGenres returns the full taxonomy. Any authenticated tier may read.
func (s *Service) ListGenres(ctx context.Context, caller auth.Caller) ([]model.Genre, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	return s.genres.List(ctx)
}

// GetGenre returns a single genre.
func (s *Service) GetGenre(ctx context.Context, caller auth.Caller, id uint64) (*model.Genre, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	return s.genres.GetByID(ctx, id)
}

// CreateGenre adds a taxonomy entry. ADMIN only.
func (s *Service) CreateGenre(ctx context.Context, caller auth.Caller, name, description string) (*model.Genre, error) {
	if err := caller.RequireAtLeast(auth.RoleAdmin); err != nil {
		return nil, err
	}
	g := &model.Genre{Name: name, Description: description}
	if err := s.genres.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGenre replaces a genre's name and description. ADMIN only.
func (s *Service) UpdateGenre(ctx context.Context, caller auth.Caller, id uint64, name, description string) error {
	if err := caller.RequireAtLeast(auth.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.genres.GetByID(ctx, id); err != nil {
		return err
	}
	return s.genres.Update(ctx, id, name, description)
}

// DeleteGenre removes a genre. ADMIN only. Series keep existing under
// their other genres.
func (s *Service) DeleteGenre(ctx context.Context, caller auth.Caller, id uint64) error {
	if err := caller.RequireAtLeast(auth.RoleAdmin); err != nil {
		return err
	}
	return s.genres.Delete(ctx, id)
}
