package models

import "github.com/shopspring/decimal"

// CategorySummary aggregates one user's transactions for a single category.
// Income and Expense are magnitude sums over the matching direction.
type CategorySummary struct {
	CategoryID    uint            `json:"category_id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	SpendingLimit decimal.Decimal `json:"spending_limit"`
	OverLimit     bool            `json:"over_limit"`
}

// SummarizeByCategory computes per-category totals for the given transactions.
// Categories with no transactions still appear with zero totals. OverLimit is
// set when a category has a spending limit and its expense total exceeds it.
func SummarizeByCategory(categories []Category, transactions []Transaction) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(categories))
	byCategory := make(map[uint]*CategorySummary, len(categories))

	for _, category := range categories {
		summaries = append(summaries, CategorySummary{
			CategoryID:    category.ID,
			Name:          category.Name,
			Type:          category.Type,
			Income:        decimal.Zero,
			Expense:       decimal.Zero,
			SpendingLimit: category.SpendingLimit,
		})
		byCategory[category.ID] = &summaries[len(summaries)-1]
	}

	for _, txn := range transactions {
		summary, ok := byCategory[txn.CategoryID]
		if !ok {
			continue
		}
		if txn.IsPositive {
			summary.Income = summary.Income.Add(txn.Amount)
		} else {
			summary.Expense = summary.Expense.Add(txn.Amount)
		}
	}

	for i := range summaries {
		s := &summaries[i]
		s.OverLimit = s.SpendingLimit.Sign() >= 0 && s.Expense.GreaterThan(s.SpendingLimit)
	}

	return summaries
}
