package catalog

import (
	"context"
	"time"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// CreateReviewInput carries the fields for a new review. ID may be
// zero for an auto-assigned id. ReviewerID may be zero; when set it
// must equal the caller's own id, which blocks attribution forgery.
type CreateReviewInput struct {
	ID         uint64
	ReviewerID uint64
	Rating     int
	Text       string
}

// ListReviews returns the reviews of a series under a genre.
func (s *Service) ListReviews(ctx context.Context, caller auth.Caller, genreID, seriesID uint64) ([]model.Review, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	if _, err := s.ResolveSeries(ctx, genreID, seriesID); err != nil {
		return nil, err
	}
	return s.reviews.ListInSeries(ctx, seriesID)
}

// GetReview resolves and returns one review.
func (s *Service) GetReview(ctx context.Context, caller auth.Caller, genreID, seriesID, reviewID uint64) (*model.Review, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	return s.ResolveReview(ctx, genreID, seriesID, reviewID)
}

// CreateReview posts a review on a series. Any authenticated tier may
// post. The review is always attributed to the caller: a non-zero
// ReviewerID naming anyone else is rejected even when that identity
// exists. The post date is set server-side.
func (s *Service) CreateReview(ctx context.Context, caller auth.Caller, genreID, seriesID uint64, in CreateReviewInput) (*model.Review, error) {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return nil, err
	}
	if in.ReviewerID != 0 && in.ReviewerID != caller.ID {
		return nil, auth.ErrUnauthorized
	}
	if _, err := s.ResolveSeries(ctx, genreID, seriesID); err != nil {
		return nil, err
	}
	reviewer := caller.ID
	rv := &model.Review{
		ID:         in.ID,
		SeriesID:   seriesID,
		ReviewerID: &reviewer,
		Rating:     in.Rating,
		Text:       in.Text,
		PostDate:   time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// UpdateReview patches a review's rating and text. Ownership is
// strict: only the recorded author may update, role is irrelevant, and
// a review whose author was deleted is frozen forever.
func (s *Service) UpdateReview(ctx context.Context, caller auth.Caller, genreID, seriesID, reviewID uint64, rating int, text string) error {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return err
	}
	rv, err := s.ResolveReview(ctx, genreID, seriesID, reviewID)
	if err != nil {
		return err
	}
	if err := s.guardOwnership(rv, caller); err != nil {
		return err
	}
	return s.reviews.Update(ctx, reviewID, rating, text)
}

// DeleteReview removes a review under the same strict ownership rule
// as UpdateReview.
func (s *Service) DeleteReview(ctx context.Context, caller auth.Caller, genreID, seriesID, reviewID uint64) error {
	if err := caller.RequireAtLeast(auth.RoleUser); err != nil {
		return err
	}
	rv, err := s.ResolveReview(ctx, genreID, seriesID, reviewID)
	if err != nil {
		return err
	}
	if err := s.guardOwnership(rv, caller); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, reviewID)
}

// guardOwnership applies the review mutation rule: frozen when the
// author is gone, otherwise the caller must be the author.
func (s *Service) guardOwnership(rv *model.Review, caller auth.Caller) error {
	if rv.ReviewerID == nil {
		return ErrReviewFrozen
	}
	if *rv.ReviewerID != caller.ID {
		return ErrNotOwner
	}
	return nil
}
