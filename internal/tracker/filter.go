package tracker

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTypeFilter = errors.New("invalid type filter")

// TypeFilter narrows the displayed list to one transaction direction.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// IsValidTypeFilter checks if the value is one of the known filters.
func IsValidTypeFilter(f TypeFilter) bool {
	switch f {
	case FilterAll, FilterIncome, FilterExpense:
		return true
	default:
		return false
	}
}

// Matches reports whether a transaction direction passes the filter.
func (f TypeFilter) Matches(isPositive bool) bool {
	switch f {
	case FilterIncome:
		return isPositive
	case FilterExpense:
		return !isPositive
	default:
		return true
	}
}

// Date is a calendar date with no time-of-day and no zone. Transactions store
// instants; the date they fall on depends on the zone used at read time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Filter is the user-chosen view state controlling which of the active
// user's transactions are displayed. Fields are independent; there is no
// cross-field validation. A start date after the end date is accepted and
// simply yields an empty result.
type Filter struct {
	Type       TypeFilter
	CategoryID *uint
	StartDate  *Date
	EndDate    *Date
}

// DefaultFilter shows everything.
func DefaultFilter() Filter {
	return Filter{Type: FilterAll}
}
