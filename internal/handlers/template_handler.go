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

// TemplateHandler handles transaction template HTTP requests. Templates hold
// a preset amount, direction and category so recurring transactions can be
// recorded in one step.
type TemplateHandler struct {
	tracker    *tracker.Tracker
	templates  repositories.TemplateRepositoryInterface
	categories repositories.CategoryRepositoryInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(
	t *tracker.Tracker,
	templates repositories.TemplateRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
) *TemplateHandler {
	return &TemplateHandler{tracker: t, templates: templates, categories: categories}
}

// ListTemplates lists the active user's templates
// @Summary List templates
// @Tags Templates
// @Produce json
// @Success 200 {object} dto.ListTemplatesResponse "Templates of the active user"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	templates, err := h.tracker.UserTemplates()
	if err != nil {
		return SendSystemError(c, err)
	}

	out := make([]dto.TemplateResponse, len(templates))
	for i, template := range templates {
		out[i] = toTemplateResponse(template)
	}

	return c.JSON(http.StatusOK, dto.ListTemplatesResponse{Templates: out, Count: len(out)})
}

// CreateTemplate creates a template for the active user
// @Summary Create template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.TemplateResponse "Template created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "USER_003 - No active user selected"
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	userID, ok := h.tracker.ActiveUserID()
	if !ok {
		return SendError(c, errors.UserNoActiveUser)
	}

	var req dto.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	category, err := h.categories.GetByID(req.CategoryID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}
	if category.UserID != userID {
		return SendError(c, errors.CategoryNotFound, errors.WithDetails("Category belongs to another user"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	template := &models.Template{
		Name:       req.Name,
		Amount:     amount,
		IsPositive: *req.IsPositive,
		CategoryID: req.CategoryID,
		UserID:     userID,
	}

	if err := h.tracker.InsertTemplate(template); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toTemplateResponse(*template))
}

// UpdateTemplate updates a template's preset fields
// @Summary Update template
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body dto.UpdateTemplateRequest true "Template updates"
// @Success 200 {object} dto.TemplateResponse "Template updated"
// @Failure 400 {object} errors.ErrorResponse "TEMPLATE_002 - Invalid template ID or VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TEMPLATE_001 - Template not found"
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TemplateInvalidID)
	}

	var req dto.UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	template, err := h.templates.GetByID(id)
	if err != nil {
		if err == repositories.ErrTemplateNotFound {
			return SendError(c, errors.TemplateNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		template.Amount = amount
	}
	if req.IsPositive != nil {
		template.IsPositive = *req.IsPositive
	}
	if req.CategoryID != nil {
		category, err := h.categories.GetByID(*req.CategoryID)
		if err != nil {
			if err == repositories.ErrCategoryNotFound {
				return SendError(c, errors.CategoryNotFound)
			}
			return SendSystemError(c, err)
		}
		if category.UserID != template.UserID {
			return SendError(c, errors.CategoryNotFound, errors.WithDetails("Category belongs to another user"))
		}
		template.CategoryID = *req.CategoryID
	}

	if err := h.tracker.UpdateTemplate(template); err != nil {
		if err == repositories.ErrTemplateNotFound {
			return SendError(c, errors.TemplateNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toTemplateResponse(*template))
}

// DeleteTemplate removes a template. Transactions already recorded from it
// are untouched.
// @Summary Delete template
// @Tags Templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} SuccessResponse "Template deleted"
// @Failure 400 {object} errors.ErrorResponse "TEMPLATE_002 - Invalid template ID"
// @Failure 404 {object} errors.ErrorResponse "TEMPLATE_001 - Template not found"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TemplateInvalidID)
	}

	if err := h.tracker.DeleteTemplate(id); err != nil {
		if err == repositories.ErrTemplateNotFound {
			return SendError(c, errors.TemplateNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Template deleted successfully"})
}

// ApplyTemplate records a transaction from a template's presets
// @Summary Apply template
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body dto.ApplyTemplateRequest false "Optional transaction timestamp"
// @Success 201 {object} dto.TransactionResponse "Transaction created from template"
// @Failure 400 {object} errors.ErrorResponse "TEMPLATE_002 - Invalid template ID"
// @Failure 404 {object} errors.ErrorResponse "TEMPLATE_001 - Template not found"
// @Failure 409 {object} errors.ErrorResponse "USER_003 - No active user selected"
// @Router /templates/{id}/apply [post]
func (h *TemplateHandler) ApplyTemplate(c echo.Context) error {
	userID, ok := h.tracker.ActiveUserID()
	if !ok {
		return SendError(c, errors.UserNoActiveUser)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TemplateInvalidID)
	}

	var req dto.ApplyTemplateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	template, err := h.templates.GetByID(id)
	if err != nil {
		if err == repositories.ErrTemplateNotFound {
			return SendError(c, errors.TemplateNotFound)
		}
		return SendSystemError(c, err)
	}
	if template.UserID != userID {
		return SendError(c, errors.TemplateNotFound, errors.WithDetails("Template belongs to another user"))
	}

	transaction := &models.Transaction{
		Amount:     template.Amount,
		IsPositive: template.IsPositive,
		CategoryID: template.CategoryID,
		UserID:     userID,
	}
	if req.Timestamp != nil {
		transaction.Timestamp = *req.Timestamp
	}

	if err := h.tracker.InsertTransaction(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(*transaction))
}
