package services

import (
	"context"
	"time"

	"github.com/3digitdev/baas/internal/model"
)

type BoolStore interface {
	Create(ctx context.Context, ownerID int64, name string, value bool, now time.Time) (*model.Bool, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Bool, error)
	GetOwned(ctx context.Context, boolID, ownerID int64) (*model.Bool, error)
	ToggleOwned(ctx context.Context, boolID, ownerID int64) (*model.Bool, error)
	DeleteOwned(ctx context.Context, boolID, ownerID int64) error
}

// BoolService scopes every operation to the authenticated owner. Booleans that
// are absent or belong to someone else surface identically as not found.
type BoolService struct {
	Repo BoolStore
}

func NewBoolService(r BoolStore) *BoolService {
	return &BoolService{Repo: r}
}

func (s *BoolService) List(ctx context.Context, identity *Identity) ([]model.Bool, error) {
	return s.Repo.ListByOwner(ctx, identity.UserID)
}

func (s *BoolService) Create(ctx context.Context, identity *Identity, name string, value bool) (*model.Bool, error) {
	return s.Repo.Create(ctx, identity.UserID, name, value, time.Now())
}

func (s *BoolService) Get(ctx context.Context, identity *Identity, boolID int64) (*model.Bool, error) {
	return s.Repo.GetOwned(ctx, boolID, identity.UserID)
}

func (s *BoolService) Toggle(ctx context.Context, identity *Identity, boolID int64) (*model.Bool, error) {
	return s.Repo.ToggleOwned(ctx, boolID, identity.UserID)
}

// Delete succeeds whether or not the boolean existed or belonged to the
// caller; reporting the difference would leak other accounts' ids.
func (s *BoolService) Delete(ctx context.Context, identity *Identity, boolID int64) error {
	return s.Repo.DeleteOwned(ctx, boolID, identity.UserID)
}
