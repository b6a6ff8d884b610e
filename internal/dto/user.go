package dto

// CreateUserRequest represents the request body for creating a user profile
type CreateUserRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	PreferredCurrency string `json:"preferred_currency" validate:"omitempty,currency_code"`
	Activate          bool   `json:"activate"`
}

// UpdateUserRequest represents the request body for updating a user profile.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=100"`
	PreferredCurrency *string `json:"preferred_currency" validate:"omitempty,currency_code"`
}

// UserResponse represents a user profile in API responses
type UserResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	PreferredCurrency string `json:"preferred_currency"`
	CurrencySymbol    string `json:"currency_symbol"`
	Active            bool   `json:"active"`
}

// ListUsersResponse represents the response for listing user profiles
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ActiveUserResponse represents the currently active user, if any
type ActiveUserResponse struct {
	User *UserResponse `json:"user"`
}

// CurrencyResponse describes one supported currency
type CurrencyResponse struct {
	Code        string `json:"code"`
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
}

// ListCurrenciesResponse represents the response for listing supported currencies
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}
