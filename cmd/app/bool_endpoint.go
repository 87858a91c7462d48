package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/3digitdev/baas/internal/middleware"
	"github.com/3digitdev/baas/internal/repository"
	"github.com/3digitdev/baas/internal/services"

	"github.com/labstack/echo/v4"
)

const invalidBodyMsg = "Request body must be in the format {'name': 'foo', 'value': true}"

// Pointer fields so that a missing or type-mismatched key is rejected rather
// than silently zero-valued.
type createBoolRequest struct {
	Name  *string `json:"name"`
	Value *bool   `json:"value"`
}

func registerBoolRoutes(e *echo.Echo, bs *services.BoolService, auth middleware.Authenticator) {
	g := e.Group("/bools")
	g.Use(middleware.BasicAuth(auth))

	// LIST
	g.GET("", func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		list, err := bs.List(c.Request().Context(), identity)
		if err != nil {
			return internalError(c)
		}
		views := make([]map[string]interface{}, 0, len(list))
		for i := range list {
			views = append(views, list[i].View(false))
		}
		return c.JSON(http.StatusOK, echo.Map{"bools": views})
	})

	// CREATE
	g.POST("", func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		req := new(createBoolRequest)
		if err := c.Bind(req); err != nil || req.Name == nil || req.Value == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": invalidBodyMsg})
		}
		b, err := bs.Create(c.Request().Context(), identity, *req.Name, *req.Value)
		if err != nil {
			return internalError(c)
		}
		return c.JSON(http.StatusOK, echo.Map{"bool": b.View(simpleParam(c))})
	})

	// GET
	g.GET("/:id", func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		boolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return notFound(c)
		}
		b, err := bs.Get(c.Request().Context(), identity, boolID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c)
			}
			return internalError(c)
		}
		return c.JSON(http.StatusOK, echo.Map{"bool": b.View(simpleParam(c))})
	})

	// TOGGLE
	g.POST("/:id", func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		boolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return notFound(c)
		}
		b, err := bs.Toggle(c.Request().Context(), identity, boolID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c)
			}
			return internalError(c)
		}
		return c.JSON(http.StatusOK, echo.Map{"bool": b.View(simpleParam(c))})
	})

	// DELETE — always 204, whether or not the boolean existed or was ours
	g.DELETE("/:id", func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		boolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err == nil {
			if err := bs.Delete(c.Request().Context(), identity, boolID); err != nil {
				return internalError(c)
			}
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func simpleParam(c echo.Context) bool {
	return strings.ToLower(c.QueryParam("simple")) == "true"
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"error": fmt.Sprintf("Could not find boolean with ID '%s'", c.Param("id")),
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
