package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// ReviewRepo persists reviews. Reviews are always addressed through
// their series so the nested-path checks stay in one place.
type ReviewRepo struct{ db *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// GetInSeries fetches a review by id only when it belongs to the given
// series. A review under a different series scans the same as a
// missing one.
func (r *ReviewRepo) GetInSeries(ctx context.Context, seriesID, reviewID uint64) (*model.Review, error) {
	var (
		rv       model.Review
		reviewer sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, series_id, reviewer_id, rating, text, post_date
		 FROM reviews WHERE series_id=? AND id=? LIMIT 1`,
		seriesID, reviewID).Scan(&rv.ID, &rv.SeriesID, &reviewer, &rv.Rating, &rv.Text, &rv.PostDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if reviewer.Valid {
		id := uint64(reviewer.Int64)
		rv.ReviewerID = &id
	}
	return &rv, nil
}

// ListInSeries returns all reviews for a series ordered by id.
func (r *ReviewRepo) ListInSeries(ctx context.Context, seriesID uint64) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, series_id, reviewer_id, rating, text, post_date
		 FROM reviews WHERE series_id=? ORDER BY id`, seriesID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var (
			rv       model.Review
			reviewer sql.NullInt64
		)
		if err := rows.Scan(&rv.ID, &rv.SeriesID, &reviewer, &rv.Rating, &rv.Text, &rv.PostDate); err != nil {
			return nil, err
		}
		if reviewer.Valid {
			id := uint64(reviewer.Int64)
			rv.ReviewerID = &id
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Create inserts a review. When rv.ID is non-zero the client-chosen id
// is used; collisions map to ErrDuplicateReview.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	var (
		res sql.Result
		err error
	)
	if rv.ID != 0 {
		res, err = r.db.ExecContext(ctx,
			"INSERT INTO reviews (id, series_id, reviewer_id, rating, text, post_date) VALUES (?,?,?,?,?,?)",
			rv.ID, rv.SeriesID, rv.ReviewerID, rv.Rating, rv.Text, rv.PostDate)
	} else {
		res, err = r.db.ExecContext(ctx,
			"INSERT INTO reviews (series_id, reviewer_id, rating, text, post_date) VALUES (?,?,?,?,?)",
			rv.SeriesID, rv.ReviewerID, rv.Rating, rv.Text, rv.PostDate)
	}
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateReview
		}
		return err
	}
	if rv.ID == 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		rv.ID = uint64(id)
	}
	return nil
}

// Update patches rating and text of a review.
func (r *ReviewRepo) Update(ctx context.Context, id uint64, rating int, text string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET rating=?, text=? WHERE id=?", rating, text, id)
	return err
}

// Delete removes a review.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res, ErrReviewNotFound)
}
