package handlers

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder      *services.SampleDataSeeder
	environment string
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder *services.SampleDataSeeder, environment string) *DevHandler {
	return &DevHandler{seeder: seeder, environment: environment}
}

// SeedSampleData populates the store with generated users, categories and
// transactions for manual testing
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - users: Number of user profiles to create (default: 2, max: 20)
//   - days: Number of days of transaction history (default: 30, max: 365)
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	if h.environment != "development" {
		return echo.NewHTTPError(http.StatusForbidden, "seeding is only available in development")
	}

	users := 2
	days := 30
	if param := c.QueryParam("users"); param != "" {
		if n, err := strconv.Atoi(param); err == nil && n > 0 && n <= 20 {
			users = n
		}
	}
	if param := c.QueryParam("days"); param != "" {
		if n, err := strconv.Atoi(param); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	if err := h.seeder.Seed(users, days); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Sample data created"})
}
