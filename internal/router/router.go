package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"quizapi/internal/config"
	"quizapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	quizHandler *handler.QuizHandler,
	userHandler *handler.UserHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Quiz content (read-only)
	api.GET("/quiz/categories", quizHandler.GetQuizCategories)
	api.GET("/quiz", quizHandler.GetQuizByCategory)

	// User accounts
	api.POST("/users/validate", userHandler.ValidateUser)
	api.GET("/users", userHandler.GetAllUsers)
	api.POST("/users", userHandler.CreateUser)
	api.DELETE("/users", userHandler.DeleteUser)
	api.POST("/users/password/change", userHandler.ChangePassword)
	api.POST("/users/password/reset", userHandler.ResetPassword)

	// Dev tooling
	api.GET("/seed/demo", seedHandler.SeedDemo)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator used by all handlers.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
