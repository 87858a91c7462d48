package repository

import (
	"context"
	"errors"
	"time"

	"github.com/3digitdev/baas/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row is absent. Callers map it to the
// appropriate uniform response; it never distinguishes why the row is missing.
var ErrNotFound = errors.New("not found")

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user and returns the created userid.
func (r *UserRepository) Create(ctx context.Context, key, secretHash string, now time.Time) (int64, error) {
	var id int64
	query := `INSERT INTO users (key, secrethash, created_at, last_accessed) VALUES ($1, $2, $3, $3) RETURNING userid`
	if err := r.DB.QueryRow(ctx, query, key, secretHash, now).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) GetByKey(ctx context.Context, key string) (*model.User, error) {
	var u model.User
	query := `SELECT userid, key, secrethash, created_at, last_accessed FROM users WHERE key=$1`
	if err := r.DB.QueryRow(ctx, query, key).Scan(&u.UserID, &u.Key, &u.SecretHash, &u.CreatedAt, &u.LastAccessed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// TouchLastAccessed refreshes the activity timestamp tracked for expiration.
// Concurrent touches race last-writer-wins, which is fine for this field.
func (r *UserRepository) TouchLastAccessed(ctx context.Context, userID int64, now time.Time) error {
	_, err := r.DB.Exec(ctx, `UPDATE users SET last_accessed=$1 WHERE userid=$2`, now, userID)
	return err
}

// DeleteInactiveSince removes every user whose last_accessed predates cutoff.
// Owned booleans vanish in the same statement via ON DELETE CASCADE, so the
// account and its booleans are never observed half-deleted.
func (r *UserRepository) DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE last_accessed < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
