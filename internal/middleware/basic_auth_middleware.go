package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/3digitdev/baas/internal/services"

	"github.com/labstack/echo/v4"
)

const identityKey = "auth_identity"

// Authenticator resolves a key/secret pair to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, key, secret string) (*services.Identity, error)
}

// BasicAuth returns an Echo middleware that validates the Authorization header
// and attaches the authenticated identity to the request-scoped context.
// Every failure mode gets the same 401 body, so a caller cannot tell a missing
// key from a wrong secret from a malformed header.
func BasicAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, secret, ok := decodeBasicHeader(c.Request().Header.Get("Authorization"))
			if !ok {
				return headerError(c)
			}
			identity, err := auth.Authenticate(c.Request().Context(), key, secret)
			if err != nil {
				if errors.Is(err, services.ErrInvalidCredentials) {
					return headerError(c)
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

func headerError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid Authorization Header"})
}

func decodeBasicHeader(header string) (key, secret string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	pair := strings.SplitN(string(raw), ":", 2)
	if len(pair) != 2 {
		return "", "", false
	}
	return pair[0], pair[1], true
}

// GetIdentity extracts the identity set by BasicAuth.
func GetIdentity(c echo.Context) *services.Identity {
	v := c.Get(identityKey)
	if v == nil {
		return nil
	}
	if id, ok := v.(*services.Identity); ok {
		return id
	}
	return nil
}
