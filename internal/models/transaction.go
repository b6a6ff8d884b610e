package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeAmount = errors.New("transaction amount must not be negative")
)

// Transaction is a single income or expense entry. Amount is a non-negative
// magnitude; the direction is carried by IsPositive, never by the sign of
// Amount. Timestamp is the instant of the transaction in epoch milliseconds.
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsPositive bool            `gorm:"not null" json:"is_positive"`
	Timestamp  int64           `gorm:"not null;index" json:"timestamp"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Timestamp == 0 {
		t.Timestamp = time.Now().UnixMilli()
	}
	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.CategoryID == 0 {
		return errors.New("transaction must belong to a category")
	}

	if t.UserID == 0 {
		return errors.New("transaction must belong to a user")
	}

	return nil
}

// OccurredAt returns the transaction instant.
func (t *Transaction) OccurredAt() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// SetOccurredAt stores the given instant with millisecond precision.
func (t *Transaction) SetOccurredAt(instant time.Time) {
	t.Timestamp = instant.UnixMilli()
}

// LocalDate returns the calendar date of the transaction in the given zone.
// The zone is the reader's current zone, not the zone at write time.
func (t *Transaction) LocalDate(loc *time.Location) (year int, month time.Month, day int) {
	return t.OccurredAt().In(loc).Date()
}

// Signed returns the amount with the direction applied: positive for income,
// negative for expenses.
func (t *Transaction) Signed() decimal.Decimal {
	if t.IsPositive {
		return t.Amount
	}
	return t.Amount.Neg()
}

func (t *Transaction) TableName() string {
	return "transactions"
}
