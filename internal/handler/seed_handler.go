package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"coride/internal/fixture"
	"coride/internal/seed"
)

// Seeder writes a dataset into the backing database.
type Seeder interface {
	Seed(ctx context.Context, ds *fixture.Dataset) (seed.Result, error)
}

// Invalidator drops data cached from the tables a seed rewrites.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seeder Seeder
	caches []Invalidator
}

// NewSeedHandler creates a new seed handler. caches are invalidated after
// every successful seed.
func NewSeedHandler(seeder Seeder, caches ...Invalidator) *SeedHandler {
	return &SeedHandler{seeder: seeder, caches: caches}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
}

// Seed godoc
// @Summary Load the sample dataset into the database
// @Description Only mounted when a SQL data source is configured.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()
	res, err := h.seeder.Seed(ctx, nil)
	if err != nil {
		return respondError(c, err)
	}
	for _, cache := range h.caches {
		if err := cache.Invalidate(ctx); err != nil {
			c.Logger().Warnf("invalidate cache after seed: %v", err)
		}
	}

	return c.JSON(http.StatusOK, SeedResponse{
		Message: "sample data seeded successfully",
		Created: res.Created,
		Updated: res.Updated,
	})
}
