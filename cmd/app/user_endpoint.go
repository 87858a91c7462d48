package main

import (
	"errors"
	"net/http"

	"github.com/3digitdev/baas/internal/services"

	"github.com/labstack/echo/v4"
)

type createUserRequest struct {
	Secret string `json:"secret"`
}

func registerUserRoutes(e *echo.Echo, authSvc *services.AuthService) {
	// PUBLIC — the only unauthenticated endpoint
	e.POST("/users", func(c echo.Context) error {
		req := new(createUserRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": services.ErrSecretRequired.Error()})
		}
		key, err := authSvc.Register(c.Request().Context(), req.Secret)
		if err != nil {
			if errors.Is(err, services.ErrSecretRequired) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"key":     key,
			"warning": services.KeyWarning,
		})
	})
}
