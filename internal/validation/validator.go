package validation

import (
	"reflect"
	"strings"

	"finance-tracker/internal/models"
	"finance-tracker/internal/tracker"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("type_filter", validateTypeFilter)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode validates that a currency code is one of the supported currencies
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}
	return models.IsValidCurrency(models.Currency(strings.ToUpper(code)))
}

// validateCategoryType validates that a category type is INCOME or EXPENSE
func validateCategoryType(fl validator.FieldLevel) bool {
	return models.IsValidCategoryType(strings.ToUpper(fl.Field().String()))
}

// validateTypeFilter validates that a transaction type filter is all, income or expense
func validateTypeFilter(fl validator.FieldLevel) bool {
	return tracker.IsValidTypeFilter(tracker.TypeFilter(strings.ToLower(fl.Field().String())))
}

// validateMoneyAmount validates that an amount string parses as a non-negative decimal
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return amount.Sign() >= 0
}

// validateISODate validates a calendar date in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	_, err := tracker.ParseDate(raw)
	return err == nil
}
