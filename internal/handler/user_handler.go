package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "quizapi/internal/errors"
	"quizapi/internal/model"
	"quizapi/internal/service"
)

// UserHandler handles user account endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ValidateUserRequest carries credentials to check.
type ValidateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ValidateUserResponse reports the credential check outcome.
type ValidateUserResponse struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// ChangePasswordRequest carries a password change with old-password proof.
type ChangePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPasswordRequest carries an administrative password reset.
type ResetPasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// CreateUserRequest carries a new account.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StatusResponse is the generic success/message envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateUserResponse wraps the created user (password cleared).
type CreateUserResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// UsersResponse lists users with passwords cleared.
type UsersResponse struct {
	Users []model.User `json:"users"`
	Count int          `json:"count"`
}

// blank reports whether any field is empty after trimming, matching the
// whitespace-rejecting validation of the existing clients.
func blank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

// ValidateUser godoc
// @Summary Validate user credentials
// @Tags users
// @Accept json
// @Produce json
// @Param request body ValidateUserRequest true "Credentials"
// @Success 200 {object} ValidateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/validate [post]
func (h *UserHandler) ValidateUser(c echo.Context) error {
	var req ValidateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Invalid JSON format",
			Code:  "INVALID_JSON",
		})
	}
	if err := c.Validate(&req); err != nil || blank(req.Username, req.Password) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Username and password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	isValid, err := h.userService.ValidateUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	message := "Invalid credentials"
	if isValid {
		message = "User validation successful"
	}
	return c.JSON(http.StatusOK, ValidateUserResponse{IsValid: isValid, Message: message})
}

// GetAllUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, UsersResponse{Users: users, Count: len(users)})
}

// ChangePassword godoc
// @Summary Change a user's password
// @Tags users
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Password change"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/password/change [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Invalid JSON format",
			Code:  "INVALID_JSON",
		})
	}
	if err := c.Validate(&req); err != nil || blank(req.Username, req.OldPassword, req.NewPassword) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Username, old password, and new password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	err := h.userService.ChangePassword(c.Request().Context(), req.Username, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "Invalid username or old password",
				Code:  "INVALID_CREDENTIALS",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Password changed successfully"})
}

// ResetPassword godoc
// @Summary Reset a user's password (administrative)
// @Tags users
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Password reset"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/password/reset [post]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Invalid JSON format",
			Code:  "INVALID_JSON",
		})
	}
	if err := c.Validate(&req); err != nil || blank(req.Username, req.NewPassword) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Username and new password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	err := h.userService.ResetPassword(c.Request().Context(), req.Username, req.NewPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "Invalid username",
				Code:  "INVALID_USERNAME",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Password reset successfully"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("username"))
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Username parameter is required",
			Code:  "MISSING_USERNAME",
		})
	}

	err := h.userService.DeleteUser(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: fmt.Sprintf("User '%s' not found", username),
				Code:  "USER_NOT_FOUND",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("User '%s' deleted successfully", username),
	})
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "New account"
// @Success 200 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Invalid JSON format",
			Code:  "INVALID_JSON",
		})
	}
	if err := c.Validate(&req); err != nil || blank(req.Username, req.Password) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Username and password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "User creation failed. Username may already exist.",
				Code:  "USERNAME_TAKEN",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateUserResponse{
		Success: true,
		Message: "User created successfully",
		User:    user,
	})
}
