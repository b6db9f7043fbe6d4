package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/model"
	"github.com/iliyamo/tvshow-catalog/internal/repository"
)

// ---- in-memory fakes ----

type fakeGenres struct {
	nextID uint64
	byID   map[uint64]*model.Genre
}

func (f *fakeGenres) GetByID(_ context.Context, id uint64) (*model.Genre, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrGenreNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGenres) List(_ context.Context) ([]model.Genre, error) {
	out := make([]model.Genre, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGenres) Create(_ context.Context, g *model.Genre) error {
	for _, existing := range f.byID {
		if existing.Name == g.Name {
			return repository.ErrGenreExists
		}
	}
	g.ID = f.nextID
	f.nextID++
	cp := *g
	f.byID[g.ID] = &cp
	return nil
}

func (f *fakeGenres) Update(_ context.Context, id uint64, name, description string) error {
	if g, ok := f.byID[id]; ok {
		g.Name, g.Description = name, description
	}
	return nil
}

func (f *fakeGenres) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrGenreNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeSeries struct {
	nextID uint64
	byID   map[uint64]*model.Series
	genres *fakeGenres
}

func (f *fakeSeries) inGenre(s *model.Series, genreID uint64) bool {
	for _, id := range s.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}

func (f *fakeSeries) GetInGenre(_ context.Context, genreID, seriesID uint64) (*model.Series, error) {
	s, ok := f.byID[seriesID]
	if !ok || !f.inGenre(s, genreID) {
		return nil, repository.ErrSeriesNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSeries) ListInGenre(_ context.Context, genreID uint64) ([]model.Series, error) {
	var out []model.Series
	for _, s := range f.byID {
		if f.inGenre(s, genreID) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSeries) Create(_ context.Context, s *model.Series) error {
	for _, gid := range s.GenreIDs {
		if _, ok := f.genres.byID[gid]; !ok {
			return repository.ErrGenreNotFound
		}
	}
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSeries) Update(_ context.Context, id uint64, description, directors, starringCast string) error {
	if s, ok := f.byID[id]; ok {
		s.Description, s.Directors, s.StarringCast = description, directors, starringCast
	}
	return nil
}

func (f *fakeSeries) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrSeriesNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeReviews struct {
	nextID uint64
	byID   map[uint64]*model.Review
}

func (f *fakeReviews) GetInSeries(_ context.Context, seriesID, reviewID uint64) (*model.Review, error) {
	r, ok := f.byID[reviewID]
	if !ok || r.SeriesID != seriesID {
		return nil, repository.ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviews) ListInSeries(_ context.Context, seriesID uint64) ([]model.Review, error) {
	var out []model.Review
	for _, r := range f.byID {
		if r.SeriesID == seriesID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviews) Create(_ context.Context, rv *model.Review) error {
	if rv.ID == 0 {
		rv.ID = f.nextID
		f.nextID++
	} else if _, ok := f.byID[rv.ID]; ok {
		return repository.ErrDuplicateReview
	}
	cp := *rv
	f.byID[rv.ID] = &cp
	return nil
}

func (f *fakeReviews) Update(_ context.Context, id uint64, rating int, text string) error {
	if r, ok := f.byID[id]; ok {
		r.Rating, r.Text = rating, text
	}
	return nil
}

func (f *fakeReviews) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakePosters struct {
	byID map[uint64]*model.User
}

func (f *fakePosters) GetPoster(_ context.Context, id uint64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok || (u.Role != string(auth.RolePoster) && u.Role != string(auth.RoleAdmin)) {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// ---- fixture ----

var (
	asUser   = auth.Caller{ID: 10, Role: auth.RoleUser}
	asPoster = auth.Caller{ID: 20, Role: auth.RolePoster}
	asAdmin  = auth.Caller{ID: 30, Role: auth.RoleAdmin}
)

// newTestService seeds two genres, one series under the first genre
// and one review on that series written by asUser.
func newTestService(t *testing.T) *Service {
	t.Helper()

	genres := &fakeGenres{nextID: 1, byID: map[uint64]*model.Genre{}}
	series := &fakeSeries{nextID: 1, byID: map[uint64]*model.Series{}, genres: genres}
	reviews := &fakeReviews{nextID: 1, byID: map[uint64]*model.Review{}}
	posters := &fakePosters{byID: map[uint64]*model.User{
		asPoster.ID: {ID: asPoster.ID, Role: string(auth.RolePoster)},
		asAdmin.ID:  {ID: asAdmin.ID, Role: string(auth.RoleAdmin)},
	}}
	svc := NewService(genres, series, reviews, posters)
	ctx := context.Background()

	drama, err := svc.CreateGenre(ctx, asAdmin, "Drama", "serious stuff")
	require.NoError(t, err)
	require.Equal(t, uint64(1), drama.ID)
	_, err = svc.CreateGenre(ctx, asAdmin, "Comedy", "funny stuff")
	require.NoError(t, err)

	s, err := svc.CreateSeries(ctx, asPoster, CreateSeriesInput{
		Name:     "The Wire",
		GenreIDs: []uint64{drama.ID},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), s.ID)

	userReviewer := asUser.ID
	require.NoError(t, reviews.Create(ctx, &model.Review{
		SeriesID:   s.ID,
		ReviewerID: &userReviewer,
		Rating:     9,
		Text:       "all the pieces matter",
		PostDate:   time.Now().UTC(),
	}))
	return svc
}

// ---- resolution ----

func TestResolve_TopDown(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		genreID  uint64
		seriesID uint64
		reviewID uint64
		wantErr  error
	}{
		{name: "full chain resolves", genreID: 1, seriesID: 1, reviewID: 1},
		{name: "unknown genre fails first", genreID: 99, seriesID: 1, reviewID: 1, wantErr: repository.ErrGenreNotFound},
		{name: "series under wrong genre hidden", genreID: 2, seriesID: 1, reviewID: 1, wantErr: repository.ErrSeriesNotFound},
		{name: "unknown series", genreID: 1, seriesID: 99, reviewID: 1, wantErr: repository.ErrSeriesNotFound},
		{name: "unknown review", genreID: 1, seriesID: 1, reviewID: 99, wantErr: repository.ErrReviewNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetReview(ctx, asUser, tt.genreID, tt.seriesID, tt.reviewID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ---- genres ----

func TestGenres_AdminGate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateGenre(ctx, asPoster, "Sci-Fi", "")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	assert.ErrorIs(t, svc.UpdateGenre(ctx, asUser, 1, "Drama", ""), auth.ErrUnauthorized)
	assert.ErrorIs(t, svc.DeleteGenre(ctx, asPoster, 1), auth.ErrUnauthorized)

	_, err = svc.ListGenres(ctx, auth.Caller{})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	genres, err := svc.ListGenres(ctx, asUser)
	require.NoError(t, err)
	assert.Len(t, genres, 2)
}

func TestGenres_DuplicateNameAndMissingTarget(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateGenre(ctx, asAdmin, "Drama", "again")
	assert.ErrorIs(t, err, repository.ErrGenreExists)

	assert.ErrorIs(t, svc.UpdateGenre(ctx, asAdmin, 99, "X", ""), repository.ErrGenreNotFound)
	assert.ErrorIs(t, svc.DeleteGenre(ctx, asAdmin, 99), repository.ErrGenreNotFound)
}

// ---- series ----

func TestCreateSeries_PosterGateAndValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSeries(ctx, asUser, CreateSeriesInput{Name: "Nope", GenreIDs: []uint64{1}})
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	// Every referenced genre must exist.
	_, err = svc.CreateSeries(ctx, asPoster, CreateSeriesInput{Name: "Nope", GenreIDs: []uint64{1, 99}})
	assert.ErrorIs(t, err, repository.ErrGenreNotFound)

	// The recorded poster must be a real POSTER-tier identity.
	_, err = svc.CreateSeries(ctx, asAdmin, CreateSeriesInput{Name: "Nope", PosterID: 12345, GenreIDs: []uint64{1}})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// Zero PosterID defaults to the caller.
	s, err := svc.CreateSeries(ctx, asPoster, CreateSeriesInput{Name: "Deadwood", GenreIDs: []uint64{1}})
	require.NoError(t, err)
	assert.Equal(t, asPoster.ID, s.PosterID)
}

func TestSeries_MutationIsSharedAcrossPosters(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	// A different poster may update a series they did not post; series
	// have no ownership.
	other := auth.Caller{ID: 77, Role: auth.RolePoster}
	require.NoError(t, svc.UpdateSeries(ctx, other, 1, 1, "new synopsis", "Simon", "West"))

	s, err := svc.GetSeries(ctx, asUser, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "new synopsis", s.Description)

	assert.ErrorIs(t, svc.UpdateSeries(ctx, asUser, 1, 1, "x", "", ""), auth.ErrUnauthorized)
	assert.ErrorIs(t, svc.DeleteSeries(ctx, other, 2, 1), repository.ErrSeriesNotFound)
	require.NoError(t, svc.DeleteSeries(ctx, other, 1, 1))
}

// ---- reviews ----

func TestCreateReview_AttributionIsForced(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	// Naming someone else as the reviewer is rejected even though the
	// identity exists.
	_, err := svc.CreateReview(ctx, asUser, 1, 1, CreateReviewInput{ReviewerID: asPoster.ID, Rating: 1})
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	// Naming yourself is redundant but allowed.
	rv, err := svc.CreateReview(ctx, asUser, 1, 1, CreateReviewInput{ReviewerID: asUser.ID, Rating: 8, Text: "good"})
	require.NoError(t, err)
	require.NotNil(t, rv.ReviewerID)
	assert.Equal(t, asUser.ID, *rv.ReviewerID)
	assert.False(t, rv.PostDate.IsZero())
}

func TestCreateReview_DuplicateExplicitID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, asUser, 1, 1, CreateReviewInput{ID: 1, Rating: 5})
	assert.ErrorIs(t, err, repository.ErrDuplicateReview)
}

func TestReviewOwnership_Strict(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	// The author may mutate their own review.
	require.NoError(t, svc.UpdateReview(ctx, asUser, 1, 1, 1, 10, "even better on rewatch"))

	// An admin may not touch someone else's review; tier does not
	// override ownership.
	assert.ErrorIs(t, svc.UpdateReview(ctx, asAdmin, 1, 1, 1, 1, "overruled"), ErrNotOwner)
	assert.ErrorIs(t, svc.DeleteReview(ctx, asAdmin, 1, 1, 1), ErrNotOwner)

	rv, err := svc.GetReview(ctx, asAdmin, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "even better on rewatch", rv.Text)

	require.NoError(t, svc.DeleteReview(ctx, asUser, 1, 1, 1))
}

func TestReviewFrozen_WhenReviewerDeleted(t *testing.T) {
	t.Parallel()

	genres := &fakeGenres{nextID: 1, byID: map[uint64]*model.Genre{
		1: {ID: 1, Name: "Drama"},
	}}
	series := &fakeSeries{nextID: 2, byID: map[uint64]*model.Series{
		1: {ID: 1, Name: "The Wire", GenreIDs: []uint64{1}},
	}, genres: genres}
	reviews := &fakeReviews{nextID: 2, byID: map[uint64]*model.Review{
		1: {ID: 1, SeriesID: 1, ReviewerID: nil, Rating: 9, Text: "orphaned"},
	}}
	svc := NewService(genres, series, reviews, &fakePosters{byID: map[uint64]*model.User{}})
	ctx := context.Background()

	// A frozen review is readable by anyone but mutable by nobody.
	rv, err := svc.GetReview(ctx, asUser, 1, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, rv.ReviewerID)

	assert.ErrorIs(t, svc.UpdateReview(ctx, asUser, 1, 1, 1, 1, "mine now"), ErrReviewFrozen)
	assert.ErrorIs(t, svc.DeleteReview(ctx, asAdmin, 1, 1, 1), ErrReviewFrozen)
}

func TestListReviews_ScopedToResolvedSeries(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	reviews, err := svc.ListReviews(ctx, asUser, 1, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	_, err = svc.ListReviews(ctx, asUser, 2, 1)
	assert.ErrorIs(t, err, repository.ErrSeriesNotFound)
}
