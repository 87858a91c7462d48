package services

import (
	"context"
	"errors"
	"time"

	"github.com/3digitdev/baas/internal/model"
	"github.com/3digitdev/baas/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// KeyWarning is returned alongside every fresh key; there is no recovery path.
const KeyWarning = "IF YOU LOSE THIS KEY, YOU WILL BE UNABLE TO RECOVER YOUR ACCOUNT."

var (
	ErrSecretRequired     = errors.New("must provide a secret like {'secret': 'hunter2'}")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when the key does not exist, so a lookup miss
// costs the same bcrypt work as a wrong secret.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Identity is the opaque result of a successful authentication.
type Identity struct {
	UserID int64
}

type UserStore interface {
	Create(ctx context.Context, key, secretHash string, now time.Time) (int64, error)
	GetByKey(ctx context.Context, key string) (*model.User, error)
	TouchLastAccessed(ctx context.Context, userID int64, now time.Time) error
}

type AuthService struct {
	Users UserStore
}

func NewAuthService(u UserStore) *AuthService {
	return &AuthService{Users: u}
}

// Register creates an account and returns its fresh API key. The key is
// generated server-side and is the only credential identifier the caller sees.
func (s *AuthService) Register(ctx context.Context, secret string) (string, error) {
	if secret == "" {
		return "", ErrSecretRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	key := uuid.NewString()
	if _, err := s.Users.Create(ctx, key, string(hash), time.Now()); err != nil {
		return "", err
	}
	return key, nil
}

// Authenticate resolves a key/secret pair to an identity. A missing key and a
// wrong secret fail with the same error after comparable work, and only a
// successful authentication refreshes last_accessed.
func (s *AuthService) Authenticate(ctx context.Context, key, secret string) (*Identity, error) {
	u, err := s.Users.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SecretHash), []byte(secret)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.Users.TouchLastAccessed(ctx, u.UserID, time.Now()); err != nil {
		return nil, err
	}
	return &Identity{UserID: u.UserID}, nil
}
