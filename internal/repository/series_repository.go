package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// SeriesRepo persists series rows and their genre memberships.
type SeriesRepo struct{ db *sql.DB }

func NewSeriesRepo(db *sql.DB) *SeriesRepo { return &SeriesRepo{db: db} }

const seriesColumns = "s.id, s.name, s.description, s.directors, s.starring_cast, s.poster_id, s.created_at, s.updated_at"

func scanSeries(scan func(dest ...any) error) (*model.Series, error) {
	var s model.Series
	err := scan(&s.ID, &s.Name, &s.Description, &s.Directors, &s.StarringCast, &s.PosterID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetInGenre fetches a series by id only when it is a member of the
// given genre. A series that exists under a different genre scans the
// same as one that does not exist at all, so the query never reveals
// cross-genre existence.
func (r *SeriesRepo) GetInGenre(ctx context.Context, genreID, seriesID uint64) (*model.Series, error) {
	s, err := scanSeries(r.db.QueryRowContext(ctx,
		"SELECT "+seriesColumns+` FROM series s
		 JOIN genre_series gs ON gs.series_id = s.id
		 WHERE gs.genre_id=? AND s.id=? LIMIT 1`, genreID, seriesID).Scan)
	if err != nil {
		return nil, err
	}
	if err := r.loadGenreIDs(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListInGenre returns all series that are members of the given genre.
func (r *SeriesRepo) ListInGenre(ctx context.Context, genreID uint64) ([]model.Series, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+seriesColumns+` FROM series s
		 JOIN genre_series gs ON gs.series_id = s.id
		 WHERE gs.genre_id=? ORDER BY s.id`, genreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Series
	for rows.Next() {
		var s model.Series
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Directors, &s.StarringCast, &s.PosterID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a series and its genre memberships in one
// transaction. Every referenced genre must exist: the membership
// insert re-selects ids from genres, and a count short of the request
// rolls everything back with ErrGenreNotFound.
func (r *SeriesRepo) Create(ctx context.Context, s *model.Series) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO series (name, description, directors, starring_cast, poster_id) VALUES (?,?,?,?,?)",
		s.Name, s.Description, s.Directors, s.StarringCast, s.PosterID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	for _, gid := range s.GenreIDs {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO genre_series (genre_id, series_id) SELECT id, ? FROM genres WHERE id=?",
			s.ID, gid)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrGenreNotFound
		}
	}
	return tx.Commit()
}

// Update patches description, directors and cast. Name, poster and
// genre memberships are fixed at creation.
func (r *SeriesRepo) Update(ctx context.Context, id uint64, description, directors, starringCast string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE series SET description=?, directors=?, starring_cast=? WHERE id=?",
		description, directors, starringCast, id)
	return err
}

// Delete removes a series. Memberships and reviews cascade with the
// foreign keys.
func (r *SeriesRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM series WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res, ErrSeriesNotFound)
}

func (r *SeriesRepo) loadGenreIDs(ctx context.Context, s *model.Series) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT genre_id FROM genre_series WHERE series_id=? ORDER BY genre_id", s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var gid uint64
		if err := rows.Scan(&gid); err != nil {
			return err
		}
		s.GenreIDs = append(s.GenreIDs, gid)
	}
	return rows.Err()
}
