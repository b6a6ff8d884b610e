package tracker

import (
	"time"

	"finance-tracker/internal/models"
)

// Derive produces the displayed transaction list from the full transaction
// list of the active user and the current filter. It applies, in order: the
// type filter, the start-date filter, the end-date filter and the category
// filter. The result is an order-preserving subsequence of the input; the
// input is never mutated.
//
// Calendar dates are derived from the stored instant using loc, the device's
// current zone at read time.
func Derive(transactions []models.Transaction, filter Filter, loc *time.Location) []models.Transaction {
	if loc == nil {
		loc = time.Local
	}

	out := filterByType(transactions, filter.Type)
	if filter.StartDate != nil {
		out = filterNotBefore(out, *filter.StartDate, loc)
	}
	if filter.EndDate != nil {
		out = filterNotAfter(out, *filter.EndDate, loc)
	}
	if filter.CategoryID != nil {
		out = filterByCategory(out, *filter.CategoryID)
	}
	return out
}

func filterByType(transactions []models.Transaction, typeFilter TypeFilter) []models.Transaction {
	if typeFilter == FilterAll || typeFilter == "" {
		return transactions
	}

	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if typeFilter.Matches(txn.IsPositive) {
			out = append(out, txn)
		}
	}
	return out
}

// filterNotBefore keeps transactions whose local date is on or after start.
func filterNotBefore(transactions []models.Transaction, start Date, loc *time.Location) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if !localDate(&txn, loc).Before(start) {
			out = append(out, txn)
		}
	}
	return out
}

// filterNotAfter keeps transactions whose local date is on or before end.
func filterNotAfter(transactions []models.Transaction, end Date, loc *time.Location) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if !localDate(&txn, loc).After(end) {
			out = append(out, txn)
		}
	}
	return out
}

func filterByCategory(transactions []models.Transaction, categoryID uint) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.CategoryID == categoryID {
			out = append(out, txn)
		}
	}
	return out
}

func localDate(txn *models.Transaction, loc *time.Location) Date {
	year, month, day := txn.LocalDate(loc)
	return Date{Year: year, Month: month, Day: day}
}
