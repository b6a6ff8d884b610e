package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DefaultUserName is the display name of the profile synthesized on first launch.
const DefaultUserName = "Default User"

// User is a local profile. All categories, transactions and templates belong
// to exactly one user and are removed with it.
type User struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	Name              string   `gorm:"type:varchar(100);not null" json:"name"`
	PreferredCurrency Currency `gorm:"type:varchar(3);not null;default:'EUR'" json:"preferred_currency"`

	Categories   []Category    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Templates    []Template    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.PreferredCurrency == "" {
		u.PreferredCurrency = DefaultCurrency
	}
	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		// Map-based updates carry only the touched columns; skip struct validation.
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("user name is required")
	}

	if !IsValidCurrency(u.PreferredCurrency) {
		return fmt.Errorf("invalid currency: %s", u.PreferredCurrency)
	}

	return nil
}

// CurrencySymbol returns the symbol of the user's preferred currency.
func (u *User) CurrencySymbol() string {
	return u.PreferredCurrency.Symbol()
}

func (u *User) TableName() string {
	return "users"
}
