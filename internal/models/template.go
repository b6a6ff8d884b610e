package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Template is a reusable preset used to prefill a new transaction.
type Template struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"type:varchar(100);not null" json:"name"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsPositive bool            `gorm:"not null" json:"is_positive"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	return t.Validate()
}

func (t *Template) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return t.Validate()
}

func (t *Template) Validate() error {
	if t.Name == "" {
		return errors.New("template name is required")
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.CategoryID == 0 {
		return errors.New("template must reference a category")
	}

	if t.UserID == 0 {
		return errors.New("template must belong to a user")
	}

	return nil
}

func (t *Template) TableName() string {
	return "transaction_templates"
}
