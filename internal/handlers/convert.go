package handlers

import (
	"strconv"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/labstack/echo/v4"
)

// parseIDParam parses a numeric path parameter into an entity id
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.ErrBadRequest
	}
	return uint(id), nil
}

func toUserResponse(user models.User, activeID *uint) dto.UserResponse {
	return dto.UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		PreferredCurrency: string(user.PreferredCurrency),
		CurrencySymbol:    user.CurrencySymbol(),
		Active:            activeID != nil && *activeID == user.ID,
	}
}

func toCategoryResponse(category models.Category) dto.CategoryResponse {
	resp := dto.CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Type:   category.Type,
		UserID: category.UserID,
	}
	if category.HasSpendingLimit() {
		limit := category.SpendingLimit.StringFixed(2)
		resp.SpendingLimit = &limit
	}
	return resp
}

func toTransactionResponse(txn models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         txn.ID,
		Amount:     txn.Amount.StringFixed(2),
		IsPositive: txn.IsPositive,
		Timestamp:  txn.Timestamp,
		CategoryID: txn.CategoryID,
		UserID:     txn.UserID,
	}
}

func toTransactionResponses(txns []models.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = toTransactionResponse(txn)
	}
	return out
}

func toTemplateResponse(template models.Template) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:         template.ID,
		Name:       template.Name,
		Amount:     template.Amount.StringFixed(2),
		IsPositive: template.IsPositive,
		CategoryID: template.CategoryID,
		UserID:     template.UserID,
	}
}

func toCategorySummaryResponse(summary models.CategorySummary) dto.CategorySummaryResponse {
	resp := dto.CategorySummaryResponse{
		CategoryID: summary.CategoryID,
		Name:       summary.Name,
		Type:       summary.Type,
		Income:     summary.Income.StringFixed(2),
		Expense:    summary.Expense.StringFixed(2),
		OverLimit:  summary.OverLimit,
	}
	if summary.SpendingLimit.Sign() >= 0 {
		limit := summary.SpendingLimit.StringFixed(2)
		resp.SpendingLimit = &limit
	}
	return resp
}
