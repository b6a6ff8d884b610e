package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/tracker"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CategoryHandler handles category HTTP requests. Categories always belong to
// the active user; without one, mutations are rejected and listings are empty.
type CategoryHandler struct {
	tracker    *tracker.Tracker
	categories repositories.CategoryRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(t *tracker.Tracker, categories repositories.CategoryRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{tracker: t, categories: categories}
}

// ListCategories lists the active user's categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse "Categories of the active user"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.tracker.UserCategories()
	if err != nil {
		return SendSystemError(c, err)
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = toCategoryResponse(category)
	}

	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: out, Count: len(out)})
}

// CreateCategory creates a category for the active user
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "USER_003 - No active user selected"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, ok := h.tracker.ActiveUserID()
	if !ok {
		return SendError(c, errors.UserNoActiveUser)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	limit := models.NoSpendingLimit
	if req.SpendingLimit != nil {
		parsed, err := decimal.NewFromString(*req.SpendingLimit)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		limit = parsed
	}

	category := &models.Category{
		Name:          req.Name,
		Type:          req.Type,
		SpendingLimit: limit,
		UserID:        userID,
	}

	if err := h.tracker.InsertCategory(category); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// UpdateCategory updates a category's name, type or spending limit
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category updates"
// @Success 200 {object} dto.CategoryResponse "Category updated"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid category ID or VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	category, err := h.categories.GetByID(id)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		category.Type = *req.Type
	}
	if req.SpendingLimit != nil {
		parsed, err := decimal.NewFromString(*req.SpendingLimit)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		category.SpendingLimit = parsed
	} else if req.ClearLimit {
		category.SpendingLimit = models.NoSpendingLimit
	}

	if err := h.tracker.UpdateCategory(category); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory removes a category and its transactions
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} SuccessResponse "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	if err := h.tracker.DeleteCategory(id); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted successfully"})
}

// GetCategorySummaries aggregates the active user's transactions per category
// @Summary Category summaries
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategorySummariesResponse "Per-category totals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/summary [get]
func (h *CategoryHandler) GetCategorySummaries(c echo.Context) error {
	summaries, err := h.tracker.CategorySummaries()
	if err != nil {
		return SendSystemError(c, err)
	}

	out := make([]dto.CategorySummaryResponse, len(summaries))
	for i, summary := range summaries {
		out[i] = toCategorySummaryResponse(summary)
	}

	return c.JSON(http.StatusOK, dto.ListCategorySummariesResponse{Summaries: out, Count: len(out)})
}
