package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "INCOME"
	CategoryTypeExpense = "EXPENSE"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")

	// NoSpendingLimit is the sentinel stored when a category has no limit.
	NoSpendingLimit = decimal.NewFromInt(-1)
)

// Category groups transactions of one direction for one user. A non-negative
// SpendingLimit caps expected spending; any negative value means "no limit".
type Category struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Type          string          `gorm:"type:varchar(10);not null" json:"type"`
	SpendingLimit decimal.Decimal `gorm:"type:decimal(15,2);not null;default:-1" json:"spending_limit"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}

	if !IsValidCategoryType(c.Type) {
		return fmt.Errorf("%w: %s", ErrInvalidCategoryType, c.Type)
	}

	if c.UserID == 0 {
		return errors.New("category must belong to a user")
	}

	return nil
}

// HasSpendingLimit reports whether a limit is set. The stored sentinel for
// "no limit" is any negative value.
func (c *Category) HasSpendingLimit() bool {
	return c.SpendingLimit.Sign() >= 0
}

func (c *Category) IsIncome() bool {
	return c.Type == CategoryTypeIncome
}

func (c *Category) IsExpense() bool {
	return c.Type == CategoryTypeExpense
}

func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is one of the known kinds.
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}
