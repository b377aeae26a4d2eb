package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "quizapi/internal/errors"
	"quizapi/internal/model"
	"quizapi/internal/service"
)

// QuizHandler handles quiz content endpoints.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CategoriesResponse lists all quiz categories.
type CategoriesResponse struct {
	Categories []model.Category `json:"categories"`
	Count      int              `json:"count"`
}

// QuizResponse is a sampled set of questions for one category. Answers are
// obfuscated, not hidden: base64 of "{id}{answer}".
type QuizResponse struct {
	Category       string           `json:"category"`
	RequestedCount int              `json:"requestedCount"`
	ActualCount    int              `json:"actualCount"`
	TotalAvailable int64            `json:"totalAvailable"`
	Questions      []model.Question `json:"questions"`
}

// GetQuizCategories godoc
// @Summary List quiz categories
// @Tags quiz
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /quiz/categories [get]
func (h *QuizHandler) GetQuizCategories(c echo.Context) error {
	categories, err := h.quizService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CategoriesResponse{
		Categories: categories,
		Count:      len(categories),
	})
}

// GetQuizByCategory godoc
// @Summary Sample random questions from a category
// @Tags quiz
// @Produce json
// @Param category query string true "Category code"
// @Param count query int true "Number of questions to sample"
// @Success 200 {object} QuizResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuizByCategory(c echo.Context) error {
	ctx := c.Request().Context()

	category := strings.TrimSpace(c.QueryParam("category"))
	if category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Category parameter is required",
			Code:  "MISSING_CATEGORY",
		})
	}

	count, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil || count <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Count parameter must be a positive integer",
			Code:  "INVALID_COUNT",
		})
	}

	exists, err := h.quizService.CategoryExists(ctx, category)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: fmt.Sprintf("Category '%s' not found", category),
			Code:  "CATEGORY_NOT_FOUND",
		})
	}

	questions, err := h.quizService.SampleQuestions(ctx, category, count)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	totalAvailable, err := h.quizService.CountQuestions(ctx, category)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Category:       category,
		RequestedCount: count,
		ActualCount:    len(questions),
		TotalAvailable: totalAvailable,
		Questions:      questions,
	})
}
