package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/tracker"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	tracker *tracker.Tracker
	users   repositories.UserRepositoryInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(t *tracker.Tracker, users repositories.UserRepositoryInterface) *UserHandler {
	return &UserHandler{tracker: t, users: users}
}

// ListUsers lists every profile, ordered by name
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse "User profiles"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.tracker.AllUsers()
	if err != nil {
		return SendSystemError(c, err)
	}

	var activeID *uint
	if id, ok := h.tracker.ActiveUserID(); ok {
		activeID = &id
	}

	out := make([]dto.UserResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user, activeID)
	}

	return c.JSON(http.StatusOK, dto.ListUsersResponse{Users: out, Count: len(out)})
}

// GetUser retrieves a single profile by id
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse "User profile"
// @Failure 400 {object} errors.ErrorResponse "USER_002 - Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	var activeID *uint
	if aid, ok := h.tracker.ActiveUserID(); ok {
		activeID = &aid
	}

	return c.JSON(http.StatusOK, toUserResponse(*user, activeID))
}

// CreateUser creates a new profile, optionally activating it immediately
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse "User created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	user := &models.User{
		Name:              req.Name,
		PreferredCurrency: models.Currency(req.PreferredCurrency),
	}

	id, err := h.tracker.InsertUser(user)
	if err != nil {
		return SendSystemError(c, err)
	}

	if req.Activate {
		if err := h.tracker.SetActiveUser(id); err != nil {
			return SendSystemError(c, err)
		}
	}

	var activeID *uint
	if aid, ok := h.tracker.ActiveUserID(); ok {
		activeID = &aid
	}

	return c.JSON(http.StatusCreated, toUserResponse(*user, activeID))
}

// UpdateUser updates a profile's name or preferred currency
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Profile updates"
// @Success 200 {object} dto.UserResponse "User updated"
// @Failure 400 {object} errors.ErrorResponse "USER_002 - Invalid user ID or VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if req.Name == nil && req.PreferredCurrency == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("At least one field must be provided for update"))
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PreferredCurrency != nil {
		user.PreferredCurrency = models.Currency(*req.PreferredCurrency)
	}

	if err := h.tracker.UpdateUser(user); err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	var activeID *uint
	if aid, ok := h.tracker.ActiveUserID(); ok {
		activeID = &aid
	}

	return c.JSON(http.StatusOK, toUserResponse(*user, activeID))
}

// DeleteUser removes a profile and everything it owns
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} SuccessResponse "User deleted"
// @Failure 400 {object} errors.ErrorResponse "USER_002 - Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	if err := h.tracker.DeleteUser(id); err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted successfully"})
}

// GetActiveUser returns the active profile, or a null user when none is set
// @Summary Get active user
// @Tags Users
// @Produce json
// @Success 200 {object} dto.ActiveUserResponse "Active user, null when none"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/active [get]
func (h *UserHandler) GetActiveUser(c echo.Context) error {
	id, ok := h.tracker.ActiveUserID()
	if !ok {
		return c.JSON(http.StatusOK, dto.ActiveUserResponse{User: nil})
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return c.JSON(http.StatusOK, dto.ActiveUserResponse{User: nil})
		}
		return SendSystemError(c, err)
	}

	resp := toUserResponse(*user, &id)
	return c.JSON(http.StatusOK, dto.ActiveUserResponse{User: &resp})
}

// ActivateUser switches the active profile
// @Summary Activate user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.ActivateUserRequest true "User to activate"
// @Success 200 {object} SuccessResponse "Active user changed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/active [put]
func (h *UserHandler) ActivateUser(c echo.Context) error {
	var req dto.ActivateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.tracker.SetActiveUser(req.UserID); err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Active user changed"})
}

// ListCurrencies lists the supported currencies
// @Summary List currencies
// @Tags Users
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse "Supported currencies"
// @Router /currencies [get]
func (h *UserHandler) ListCurrencies(c echo.Context) error {
	all := models.AllCurrencies()
	out := make([]dto.CurrencyResponse, len(all))
	for i, currency := range all {
		out[i] = dto.CurrencyResponse{
			Code:        string(currency),
			Symbol:      currency.Symbol(),
			DisplayName: currency.DisplayName(),
		}
	}
	return c.JSON(http.StatusOK, dto.ListCurrenciesResponse{Currencies: out})
}
