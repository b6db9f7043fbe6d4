package catalog

import (
	"context"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// CreateSeriesInput carries the fields for a new series. PosterID may
// be zero, in which case the caller is recorded as the poster.
type CreateSeriesInput struct {
	Name         string
	Description  string
	Directors    string
	StarringCast string
	PosterID     uint64
	GenreIDs     []uint64
}

// ListSeries returns the series under a genre. Any authenticated tier
// may read; a missing genre is reported before anything else.
func (s *Service) ListSeries(ctx context.Context, caller auth.Caller, genreID uint64) ([]model.Series, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	if _, err := s.genres.GetByID(ctx, genreID); err != nil {
		return nil, err
	}
	return s.series.ListInGenre(ctx, genreID)
}

// GetSeries resolves and returns one series under a genre.
func (s *Service) GetSeries(ctx context.Context, caller auth.Caller, genreID, seriesID uint64) (*model.Series, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	return s.ResolveSeries(ctx, genreID, seriesID)
}

// CreateSeries adds a series. POSTER tier or above. There is no
// ownership model for series, but the recorded poster reference must
// resolve to a real identity of at least POSTER tier, and every
// referenced genre must exist.
func (s *Service) CreateSeries(ctx context.Context, caller auth.Caller, in CreateSeriesInput) (*model.Series, error) {
	if err := caller.RequireAtLeast(auth.RolePoster); err != nil {
		return nil, err
	}
	posterID := in.PosterID
	if posterID == 0 {
		posterID = caller.ID
	}
	poster, err := s.posters.GetPoster(ctx, posterID)
	if err != nil {
		return nil, err
	}
	series := &model.Series{
		Name:         in.Name,
		Description:  in.Description,
		Directors:    in.Directors,
		StarringCast: in.StarringCast,
		PosterID:     poster.ID,
		GenreIDs:     in.GenreIDs,
	}
	if err := s.series.Create(ctx, series); err != nil {
		return nil, err
	}
	return series, nil
}

// UpdateSeries patches description, directors and cast of a series
// under a genre. POSTER tier or above; any qualifying role may update
// any series.
func (s *Service) UpdateSeries(ctx context.Context, caller auth.Caller, genreID, seriesID uint64, description, directors, starringCast string) error {
	if err := caller.RequireAtLeast(auth.RolePoster); err != nil {
		return err
	}
	if _, err := s.ResolveSeries(ctx, genreID, seriesID); err != nil {
		return err
	}
	return s.series.Update(ctx, seriesID, description, directors, starringCast)
}

// DeleteSeries removes a series under a genre. POSTER tier or above.
func (s *Service) DeleteSeries(ctx context.Context, caller auth.Caller, genreID, seriesID uint64) error {
	if err := caller.RequireAtLeast(auth.RolePoster); err != nil {
		return err
	}
	if _, err := s.ResolveSeries(ctx, genreID, seriesID); err != nil {
		return err
	}
	return s.series.Delete(ctx, seriesID)
}
