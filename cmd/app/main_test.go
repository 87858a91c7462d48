package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/3digitdev/baas/internal/model"
	"github.com/3digitdev/baas/internal/repository"
	"github.com/3digitdev/baas/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// In-memory stores so the endpoint tests exercise the full pipeline
// (middleware -> services) without a database.

type memUserStore struct {
	nextID int64
	users  map[string]*model.User
}

func (f *memUserStore) Create(_ context.Context, key, secretHash string, now time.Time) (int64, error) {
	if _, ok := f.users[key]; ok {
		return 0, errors.New("duplicate key")
	}
	f.nextID++
	f.users[key] = &model.User{UserID: f.nextID, Key: key, SecretHash: secretHash, CreatedAt: now, LastAccessed: now}
	return f.nextID, nil
}

func (f *memUserStore) GetByKey(_ context.Context, key string) (*model.User, error) {
	u, ok := f.users[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *memUserStore) TouchLastAccessed(_ context.Context, userID int64, now time.Time) error {
	for _, u := range f.users {
		if u.UserID == userID {
			u.LastAccessed = now
			return nil
		}
	}
	return repository.ErrNotFound
}

type memBoolStore struct {
	nextID int64
	bools  []*model.Bool
}

func (f *memBoolStore) Create(_ context.Context, ownerID int64, name string, value bool, now time.Time) (*model.Bool, error) {
	f.nextID++
	b := &model.Bool{BoolID: f.nextID, Name: name, Value: value, OwnerID: ownerID, CreatedAt: now}
	f.bools = append(f.bools, b)
	cp := *b
	return &cp, nil
}

func (f *memBoolStore) ListByOwner(_ context.Context, ownerID int64) ([]model.Bool, error) {
	out := []model.Bool{}
	for _, b := range f.bools {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *memBoolStore) GetOwned(_ context.Context, boolID, ownerID int64) (*model.Bool, error) {
	for _, b := range f.bools {
		if b.BoolID == boolID && b.OwnerID == ownerID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memBoolStore) ToggleOwned(_ context.Context, boolID, ownerID int64) (*model.Bool, error) {
	for _, b := range f.bools {
		if b.BoolID == boolID && b.OwnerID == ownerID {
			b.Value = !b.Value
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memBoolStore) DeleteOwned(_ context.Context, boolID, ownerID int64) error {
	for i, b := range f.bools {
		if b.BoolID == boolID && b.OwnerID == ownerID {
			f.bools = append(f.bools[:i], f.bools[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	authSvc := services.NewAuthService(&memUserStore{users: map[string]*model.User{}})
	boolSvc := services.NewBoolService(&memBoolStore{})

	e := echo.New()
	registerUserRoutes(e, authSvc)
	registerBoolRoutes(e, boolSvc, authSvc)
	return e
}

func doRequest(e *echo.Echo, method, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func basicHeader(key, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
}

// registerAccount creates an account through the HTTP surface and returns its key.
func registerAccount(t *testing.T, e *echo.Echo, secret string) string {
	t.Helper()
	rec := doRequest(e, "POST", "/users", `{"secret":"`+secret+`"}`, "")
	require.Equal(t, 200, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	key, ok := body["key"].(string)
	require.True(t, ok, "response missing key: %v", body)
	return key
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
