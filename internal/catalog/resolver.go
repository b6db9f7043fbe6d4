package catalog

import (
	"context"

	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// ResolveSeries validates the (genre, series) pair top-down: the genre
// must exist, then the series must exist within that genre. The order
// is fixed so a series that exists globally but under another genre
// reports the same not-found as one that does not exist at all;
// resolution never reveals cross-genre existence.
func (s *Service) ResolveSeries(ctx context.Context, genreID, seriesID uint64) (*model.Series, error) {
	if _, err := s.genres.GetByID(ctx, genreID); err != nil {
		return nil, err
	}
	return s.series.GetInGenre(ctx, genreID, seriesID)
}

// ResolveReview validates the full (genre, series, review) triple in
// the same top-down order: genre, then series within it, then review
// within that series. Failure always identifies the first level that
// did not match.
func (s *Service) ResolveReview(ctx context.Context, genreID, seriesID, reviewID uint64) (*model.Review, error) {
	if _, err := s.ResolveSeries(ctx, genreID, seriesID); err != nil {
		return nil, err
	}
	return s.reviews.GetInSeries(ctx, seriesID, reviewID)
}
