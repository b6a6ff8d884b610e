package dto

// CreateTemplateRequest represents the request body for creating a
// transaction template
type CreateTemplateRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Amount     string `json:"amount" validate:"required,money_amount"`
	IsPositive *bool  `json:"is_positive" validate:"required"`
	CategoryID uint   `json:"category_id" validate:"required"`
}

// UpdateTemplateRequest represents the request body for updating a template.
// Omitted fields are left unchanged.
type UpdateTemplateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Amount     *string `json:"amount" validate:"omitempty,money_amount"`
	IsPositive *bool   `json:"is_positive"`
	CategoryID *uint   `json:"category_id"`
}

// ApplyTemplateRequest represents the request body for instantiating a
// template as a transaction. Timestamp is epoch milliseconds; when omitted
// the store stamps the current instant.
type ApplyTemplateRequest struct {
	Timestamp *int64 `json:"timestamp" validate:"omitempty,min=0"`
}

// TemplateResponse represents a template in API responses
type TemplateResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	IsPositive bool   `json:"is_positive"`
	CategoryID uint   `json:"category_id"`
	UserID     uint   `json:"user_id"`
}

// ListTemplatesResponse represents the response for listing templates
type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Count     int                `json:"count"`
}
