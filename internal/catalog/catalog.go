// Package catalog implements the genre → series → review hierarchy:
// nested-path resolution, the per-entity authorization rules and the
// guarded mutations consumed by the HTTP handlers.
//
// Authorization is asymmetric by design. Genres are taxonomy and take
// an ADMIN tier. Series are shared catalog content and take a POSTER
// tier, with no ownership check: any qualifying role may mutate any
// series. Reviews are personal opinion: any authenticated tier may
// write one, but mutation is bound strictly to the recorded author:
// an ADMIN cannot edit someone else's review.
package catalog

import (
	"context"
	"errors"

	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// ErrNotOwner rejects a review mutation by anyone other than the
// recorded author, whatever their role.
var ErrNotOwner = errors.New("review does not belong to caller")

// ErrReviewFrozen rejects mutation of a review whose author was
// deleted. The reviewer reference is gone and nobody may claim it.
var ErrReviewFrozen = errors.New("reviewer was deleted; review can no longer be modified")

// GenreStore is the genre persistence surface the service needs.
type GenreStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
	Create(ctx context.Context, g *model.Genre) error
	Update(ctx context.Context, id uint64, name, description string) error
	Delete(ctx context.Context, id uint64) error
}

// SeriesStore is the series persistence surface. Lookups are always
// scoped to a genre so membership is checked where the data lives.
type SeriesStore interface {
	GetInGenre(ctx context.Context, genreID, seriesID uint64) (*model.Series, error)
	ListInGenre(ctx context.Context, genreID uint64) ([]model.Series, error)
	Create(ctx context.Context, s *model.Series) error
	Update(ctx context.Context, id uint64, description, directors, starringCast string) error
	Delete(ctx context.Context, id uint64) error
}

// ReviewStore is the review persistence surface, scoped to a series.
type ReviewStore interface {
	GetInSeries(ctx context.Context, seriesID, reviewID uint64) (*model.Review, error)
	ListInSeries(ctx context.Context, seriesID uint64) ([]model.Review, error)
	Create(ctx context.Context, rv *model.Review) error
	Update(ctx context.Context, id uint64, rating int, text string) error
	Delete(ctx context.Context, id uint64) error
}

// PosterStore resolves identities allowed to post series.
type PosterStore interface {
	GetPoster(ctx context.Context, id uint64) (*model.User, error)
}

// Service ties the stores together behind the authorization rules.
type Service struct {
	genres  GenreStore
	series  SeriesStore
	reviews ReviewStore
	posters PosterStore
}

// NewService constructs a catalog Service.
func NewService(genres GenreStore, series SeriesStore, reviews ReviewStore, posters PosterStore) *Service {
	return &Service{genres: genres, series: series, reviews: reviews, posters: posters}
}
