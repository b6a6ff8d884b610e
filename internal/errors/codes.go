package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound        ErrorCode = "USER_001"
	UserInvalidID       ErrorCode = "USER_002"
	UserNoActiveUser    ErrorCode = "USER_003"
	UserInvalidCurrency ErrorCode = "USER_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryInvalidID   ErrorCode = "CATEGORY_002"
	CategoryInvalidType ErrorCode = "CATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidID     ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_003"
)

// Template error codes (TEMPLATE_*)
const (
	TemplateNotFound  ErrorCode = "TEMPLATE_001"
	TemplateInvalidID ErrorCode = "TEMPLATE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Invalid amount",

	// User errors
	UserNotFound:        "User not found",
	UserInvalidID:       "Invalid user ID",
	UserNoActiveUser:    "No active user selected",
	UserInvalidCurrency: "Unsupported currency code",

	// Category errors
	CategoryNotFound:    "Category not found",
	CategoryInvalidID:   "Invalid category ID",
	CategoryInvalidType: "Category type must be INCOME or EXPENSE",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidID:     "Invalid transaction ID",
	TransactionInvalidAmount: "Transaction amount must not be negative",

	// Template errors
	TemplateNotFound:  "Template not found",
	TemplateInvalidID: "Invalid template ID",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
