package repository

import (
	"context"
	"errors"
	"time"

	"github.com/3digitdev/baas/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BoolRepository struct {
	DB *pgxpool.Pool
}

func NewBoolRepository(db *pgxpool.Pool) *BoolRepository {
	return &BoolRepository{DB: db}
}

func (r *BoolRepository) Create(ctx context.Context, ownerID int64, name string, value bool, now time.Time) (*model.Bool, error) {
	var b model.Bool
	query := `INSERT INTO booleans (name, value, ownerid, created_at) VALUES ($1, $2, $3, $4)
			RETURNING boolid, name, value, ownerid, created_at`
	if err := r.DB.QueryRow(ctx, query, name, value, ownerID, now).Scan(&b.BoolID, &b.Name, &b.Value, &b.OwnerID, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BoolRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Bool, error) {
	query := `SELECT boolid, name, value, ownerid, created_at FROM booleans WHERE ownerid=$1 ORDER BY boolid`
	rows, err := r.DB.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Bool{}
	for rows.Next() {
		var b model.Bool
		if err := rows.Scan(&b.BoolID, &b.Name, &b.Value, &b.OwnerID, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetOwned returns the boolean only when it belongs to ownerID. An unknown id
// and another account's id are the same ErrNotFound.
func (r *BoolRepository) GetOwned(ctx context.Context, boolID, ownerID int64) (*model.Bool, error) {
	var b model.Bool
	query := `SELECT boolid, name, value, ownerid, created_at FROM booleans WHERE boolid=$1 AND ownerid=$2`
	if err := r.DB.QueryRow(ctx, query, boolID, ownerID).Scan(&b.BoolID, &b.Name, &b.Value, &b.OwnerID, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ToggleOwned flips the value. The ownership check and the write are one
// statement, so nothing can act on the row between check and mutation.
func (r *BoolRepository) ToggleOwned(ctx context.Context, boolID, ownerID int64) (*model.Bool, error) {
	var b model.Bool
	query := `UPDATE booleans SET value = NOT value WHERE boolid=$1 AND ownerid=$2
			RETURNING boolid, name, value, ownerid, created_at`
	if err := r.DB.QueryRow(ctx, query, boolID, ownerID).Scan(&b.BoolID, &b.Name, &b.Value, &b.OwnerID, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// DeleteOwned removes the boolean when owned. Zero rows affected is not an
// error; deleting an unknown or foreign id is a silent no-op.
func (r *BoolRepository) DeleteOwned(ctx context.Context, boolID, ownerID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM booleans WHERE boolid=$1 AND ownerid=$2`, boolID, ownerID)
	return err
}
