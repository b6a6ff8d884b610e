package dto

// ViewStateResponse represents the current filter state of the transaction view
type ViewStateResponse struct {
	Type       string  `json:"type"`
	CategoryID *uint   `json:"category_id"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

// SetTypeFilterRequest selects a direction filter: all, income or expense
type SetTypeFilterRequest struct {
	Type string `json:"type" validate:"required,type_filter"`
}

// SetDateFilterRequest sets or clears a date bound. A null date clears the
// bound; dates are calendar days in YYYY-MM-DD form.
type SetDateFilterRequest struct {
	Date *string `json:"date" validate:"omitempty,iso_date"`
}

// SetCategoryFilterRequest sets or clears the category filter. A null
// category_id clears it.
type SetCategoryFilterRequest struct {
	CategoryID *uint `json:"category_id"`
}

// ActivateUserRequest selects the active user profile
type ActivateUserRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}
