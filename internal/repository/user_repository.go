package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// UserRepo persists identities in the `users` table, including the
// single active refresh token each identity may hold.
type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = "id, email, password_hash, salt, role, refresh_token_hash, refresh_expires_at, created_at, updated_at"

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		u       model.User
		hash    sql.NullString
		expires sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Role, &hash, &expires, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if hash.Valid {
		u.RefreshTokenHash = &hash.String
	}
	if expires.Valid {
		t := expires.Time
		u.RefreshExpiresAt = &t
	}
	return &u, nil
}

// Create inserts a user. The email is normalized to lower case and
// must be unique; MySQL duplicate-key errors map to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, salt, role) VALUES (?,?,?,?)",
		u.Email, u.PasswordHash, u.Salt, u.Role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// FindByEmail fetches a user by normalized email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetPoster fetches a user by id only when they hold a tier allowed to
// post series (POSTER or ADMIN). A user below that tier reports the
// same not-found as a missing id.
func (r *UserRepo) GetPoster(ctx context.Context, id uint64) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? AND role IN ('POSTER','ADMIN') LIMIT 1", id))
}

// ListByRole returns all users holding the given role.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE role=? ORDER BY id", role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var (
			u       model.User
			hash    sql.NullString
			expires sql.NullTime
		)
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Role, &hash, &expires, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		if hash.Valid {
			u.RefreshTokenHash = &hash.String
		}
		if expires.Valid {
			t := expires.Time
			u.RefreshExpiresAt = &t
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetRefreshToken stores a new refresh token hash and expiry,
// overwriting any previous token. Sign-in uses this: whoever signs in
// last holds the only live session.
func (r *UserRepo) SetRefreshToken(ctx context.Context, id uint64, hash string, exp time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET refresh_token_hash=?, refresh_expires_at=? WHERE id=?",
		hash, exp, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RotateRefreshToken swaps oldHash for newHash with a compare-and-swap
// on the stored hash. Two concurrent rotations presenting the same
// token cannot both succeed: the second swap matches zero rows and
// reports ErrStaleRefresh.
func (r *UserRepo) RotateRefreshToken(ctx context.Context, id uint64, oldHash, newHash string, exp time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET refresh_token_hash=?, refresh_expires_at=? WHERE id=? AND refresh_token_hash=?",
		newHash, exp, id, oldHash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaleRefresh
	}
	return nil
}

// ClearRefreshToken drops the stored refresh token, ending the session.
func (r *UserRepo) ClearRefreshToken(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET refresh_token_hash=NULL, refresh_expires_at=NULL WHERE id=?", id)
	return err
}

// Delete removes a user. Reviews written by the user are kept but
// their reviewer reference is nulled in the same transaction, which
// permanently freezes them against further mutation.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"UPDATE reviews SET reviewer_id=NULL WHERE reviewer_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return tx.Commit()
}
