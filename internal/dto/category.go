package dto

// CreateCategoryRequest represents the request body for creating a category.
// A null spending_limit means the category has no limit.
type CreateCategoryRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Type          string  `json:"type" validate:"required,category_type"`
	SpendingLimit *string `json:"spending_limit" validate:"omitempty,money_amount"`
}

// UpdateCategoryRequest represents the request body for updating a category.
// Omitted fields are left unchanged; an explicit null spending_limit clears it.
type UpdateCategoryRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type          *string `json:"type" validate:"omitempty,category_type"`
	SpendingLimit *string `json:"spending_limit" validate:"omitempty,money_amount"`
	ClearLimit    bool    `json:"clear_limit"`
}

// CategoryResponse represents a category in API responses.
// SpendingLimit is omitted when the category has no limit.
type CategoryResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	SpendingLimit *string `json:"spending_limit"`
	UserID        uint    `json:"user_id"`
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}

// CategorySummaryResponse aggregates one category's totals
type CategorySummaryResponse struct {
	CategoryID    uint    `json:"category_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Income        string  `json:"income"`
	Expense       string  `json:"expense"`
	SpendingLimit *string `json:"spending_limit"`
	OverLimit     bool    `json:"over_limit"`
}

// ListCategorySummariesResponse represents the per-category totals response
type ListCategorySummariesResponse struct {
	Summaries []CategorySummaryResponse `json:"summaries"`
	Count     int                       `json:"count"`
}
