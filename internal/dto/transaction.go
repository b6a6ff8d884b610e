package dto

// CreateTransactionRequest represents the request body for recording a
// transaction. Amount is a non-negative decimal string; is_positive carries
// the direction. Timestamp is epoch milliseconds; when omitted the store
// stamps the current instant.
type CreateTransactionRequest struct {
	Amount     string `json:"amount" validate:"required,money_amount"`
	IsPositive *bool  `json:"is_positive" validate:"required"`
	CategoryID uint   `json:"category_id" validate:"required"`
	Timestamp  *int64 `json:"timestamp" validate:"omitempty,min=0"`
}

// UpdateTransactionRequest represents the request body for updating a
// transaction. Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Amount     *string `json:"amount" validate:"omitempty,money_amount"`
	IsPositive *bool   `json:"is_positive"`
	CategoryID *uint   `json:"category_id"`
	Timestamp  *int64  `json:"timestamp" validate:"omitempty,min=0"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID         uint   `json:"id"`
	Amount     string `json:"amount"`
	IsPositive bool   `json:"is_positive"`
	Timestamp  int64  `json:"timestamp"`
	CategoryID uint   `json:"category_id"`
	UserID     uint   `json:"user_id"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}
