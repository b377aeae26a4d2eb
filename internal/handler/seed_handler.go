package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quizapi/internal/cache"
	apperrors "quizapi/internal/errors"
	"quizapi/internal/repository"
	"quizapi/internal/seed"
	"quizapi/internal/service"
)

// SeedHandler loads the demo dataset over HTTP for local development.
type SeedHandler struct {
	categories repository.CategoryRepository
	questions  repository.QuestionRepository
	users      repository.UserRepository
	cache      *cache.Client
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(
	categories repository.CategoryRepository,
	questions repository.QuestionRepository,
	users repository.UserRepository,
	cache *cache.Client,
) *SeedHandler {
	return &SeedHandler{categories: categories, questions: questions, users: users, cache: cache}
}

// seedInvalidationKeys lists every cache entry the demo dataset can stale.
func seedInvalidationKeys() []string {
	keys := []string{service.CategoriesCacheKey}
	for _, category := range seed.Categories() {
		keys = append(keys, service.CountCacheKey(category))
	}
	return keys
}

// SeedDemoResponse reports what was seeded.
type SeedDemoResponse struct {
	Message string      `json:"message"`
	Created seed.Result `json:"created"`
}

// SeedDemo godoc
// @Summary Seed the demo dataset
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()
	result, err := seed.Apply(ctx, h.categories, h.questions, h.users)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// Newly seeded rows must be visible to cached reads: the category list
	// and every seeded category's question count.
	_ = h.cache.Delete(ctx, seedInvalidationKeys()...)

	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message: "Demo data seeded successfully",
		Created: result,
	})
}
