package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/tracker"

	"github.com/labstack/echo/v4"
)

// ViewHandler exposes the filter state of the transaction view. Each setter
// adjusts one dimension independently; the filtered list endpoints and the
// stream reflect the change immediately.
type ViewHandler struct {
	tracker    *tracker.Tracker
	categories repositories.CategoryRepositoryInterface
}

// NewViewHandler creates a new view handler
func NewViewHandler(t *tracker.Tracker, categories repositories.CategoryRepositoryInterface) *ViewHandler {
	return &ViewHandler{tracker: t, categories: categories}
}

// GetView returns the current filter state
// @Summary Get view state
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewStateResponse "Current filter state"
// @Router /view [get]
func (h *ViewHandler) GetView(c echo.Context) error {
	return c.JSON(http.StatusOK, h.viewState())
}

// SetTypeFilter narrows the view to one transaction direction
// @Summary Set type filter
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.SetTypeFilterRequest true "all, income or expense"
// @Success 200 {object} dto.ViewStateResponse "Updated filter state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter value"
// @Router /view/type [put]
func (h *ViewHandler) SetTypeFilter(c echo.Context) error {
	var req dto.SetTypeFilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.tracker.SetTypeFilter(tracker.TypeFilter(req.Type)); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, h.viewState())
}

// SetStartDate sets or clears the inclusive lower date bound
// @Summary Set start date
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.SetDateFilterRequest true "Date in YYYY-MM-DD form, null to clear"
// @Success 200 {object} dto.ViewStateResponse "Updated filter state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid date"
// @Router /view/start-date [put]
func (h *ViewHandler) SetStartDate(c echo.Context) error {
	var req dto.SetDateFilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	var date *tracker.Date
	if req.Date != nil {
		parsed, err := tracker.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		date = &parsed
	}

	h.tracker.SetStartDate(date)
	return c.JSON(http.StatusOK, h.viewState())
}

// SetEndDate sets or clears the inclusive upper date bound
// @Summary Set end date
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.SetDateFilterRequest true "Date in YYYY-MM-DD form, null to clear"
// @Success 200 {object} dto.ViewStateResponse "Updated filter state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid date"
// @Router /view/end-date [put]
func (h *ViewHandler) SetEndDate(c echo.Context) error {
	var req dto.SetDateFilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	var date *tracker.Date
	if req.Date != nil {
		parsed, err := tracker.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		date = &parsed
	}

	h.tracker.SetEndDate(date)
	return c.JSON(http.StatusOK, h.viewState())
}

// SetCategoryFilter sets or clears the category filter
// @Summary Set category filter
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.SetCategoryFilterRequest true "Category id, null to clear"
// @Success 200 {object} dto.ViewStateResponse "Updated filter state"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /view/category [put]
func (h *ViewHandler) SetCategoryFilter(c echo.Context) error {
	var req dto.SetCategoryFilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if req.CategoryID != nil {
		if _, err := h.categories.GetByID(*req.CategoryID); err != nil {
			if err == repositories.ErrCategoryNotFound {
				return SendError(c, errors.CategoryNotFound)
			}
			return SendSystemError(c, err)
		}
	}

	h.tracker.SetSelectedCategory(req.CategoryID)
	return c.JSON(http.StatusOK, h.viewState())
}

// ResetView restores the default filter state showing everything
// @Summary Reset view state
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewStateResponse "Default filter state"
// @Router /view [delete]
func (h *ViewHandler) ResetView(c echo.Context) error {
	_ = h.tracker.SetTypeFilter(tracker.FilterAll)
	h.tracker.SetStartDate(nil)
	h.tracker.SetEndDate(nil)
	h.tracker.SetSelectedCategory(nil)
	return c.JSON(http.StatusOK, h.viewState())
}

func (h *ViewHandler) viewState() dto.ViewStateResponse {
	filter := h.tracker.Filter()

	resp := dto.ViewStateResponse{
		Type:       string(filter.Type),
		CategoryID: filter.CategoryID,
	}
	if filter.StartDate != nil {
		start := filter.StartDate.String()
		resp.StartDate = &start
	}
	if filter.EndDate != nil {
		end := filter.EndDate.String()
		resp.EndDate = &end
	}
	return resp
}
