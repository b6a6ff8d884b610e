package tracker

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTransaction(id uint, amount float64, isPositive bool, categoryID uint, occurredAt time.Time) models.Transaction {
	return models.Transaction{
		ID:         id,
		Amount:     decimal.NewFromFloat(amount),
		IsPositive: isPositive,
		Timestamp:  occurredAt.UnixMilli(),
		CategoryID: categoryID,
		UserID:     1,
	}
}

func datePtr(year int, month time.Month, day int) *Date {
	return &Date{Year: year, Month: month, Day: day}
}

func TestDerive_DefaultFilterReturnsEverything(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		makeTransaction(3, 50, true, 1, now),
		makeTransaction(2, 20, false, 2, now.Add(-time.Hour)),
		makeTransaction(1, 10, false, 1, now.Add(-2*time.Hour)),
	}

	out := Derive(transactions, DefaultFilter(), time.UTC)

	assert.Equal(t, transactions, out)
}

func TestDerive_TypeFilter(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		makeTransaction(1, 100, true, 1, now),
		makeTransaction(2, 20, false, 1, now),
		makeTransaction(3, 30, false, 2, now),
	}

	income := Derive(transactions, Filter{Type: FilterIncome}, time.UTC)
	require.Len(t, income, 1)
	assert.Equal(t, uint(1), income[0].ID)

	expense := Derive(transactions, Filter{Type: FilterExpense}, time.UTC)
	require.Len(t, expense, 2)
	assert.Equal(t, uint(2), expense[0].ID)
	assert.Equal(t, uint(3), expense[1].ID)
}

func TestDerive_CategoryFilter(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		makeTransaction(1, 100, true, 1, now),
		makeTransaction(2, 20, false, 2, now),
		makeTransaction(3, 30, false, 1, now),
	}

	category := uint(1)
	out := Derive(transactions, Filter{Type: FilterAll, CategoryID: &category}, time.UTC)

	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
}

func TestDerive_DateBoundsAreInclusive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
	}
	transactions := []models.Transaction{
		makeTransaction(1, 10, false, 1, day(9)),
		makeTransaction(2, 20, false, 1, day(10)),
		makeTransaction(3, 30, false, 1, day(15)),
		makeTransaction(4, 40, false, 1, day(16)),
	}

	filter := Filter{
		Type:      FilterAll,
		StartDate: datePtr(2024, time.March, 10),
		EndDate:   datePtr(2024, time.March, 15),
	}
	out := Derive(transactions, filter, time.UTC)

	require.Len(t, out, 2)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
}

func TestDerive_StartAfterEndYieldsEmpty(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		makeTransaction(1, 10, false, 1, now),
	}

	filter := Filter{
		Type:      FilterAll,
		StartDate: datePtr(2024, time.June, 20),
		EndDate:   datePtr(2024, time.June, 10),
	}
	out := Derive(transactions, filter, time.UTC)

	assert.Empty(t, out)
}

func TestDerive_AllStagesCombined(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
	}
	transactions := []models.Transaction{
		makeTransaction(1, 100, true, 1, day(12)),  // wrong direction
		makeTransaction(2, 20, false, 2, day(12)),  // wrong category
		makeTransaction(3, 30, false, 1, day(5)),   // before start
		makeTransaction(4, 40, false, 1, day(25)),  // after end
		makeTransaction(5, 50, false, 1, day(12)),  // match
		makeTransaction(6, 60, false, 1, day(14)),  // match
	}

	category := uint(1)
	filter := Filter{
		Type:       FilterExpense,
		CategoryID: &category,
		StartDate:  datePtr(2024, time.March, 10),
		EndDate:    datePtr(2024, time.March, 15),
	}
	out := Derive(transactions, filter, time.UTC)

	require.Len(t, out, 2)
	assert.Equal(t, uint(5), out[0].ID)
	assert.Equal(t, uint(6), out[1].ID)
}

func TestDerive_InputIsNotMutated(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		makeTransaction(1, 100, true, 1, now),
		makeTransaction(2, 20, false, 1, now),
	}
	original := make([]models.Transaction, len(transactions))
	copy(original, transactions)

	_ = Derive(transactions, Filter{Type: FilterExpense}, time.UTC)

	assert.Equal(t, original, transactions)
}

func TestDerive_IsIdempotent(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
	}
	transactions := []models.Transaction{
		makeTransaction(1, 100, true, 1, day(12)),
		makeTransaction(2, 20, false, 1, day(13)),
		makeTransaction(3, 30, false, 2, day(14)),
	}

	filter := Filter{
		Type:      FilterExpense,
		StartDate: datePtr(2024, time.March, 13),
	}

	once := Derive(transactions, filter, time.UTC)
	twice := Derive(once, filter, time.UTC)

	assert.Equal(t, once, twice)
}

// The date a transaction falls on depends on the zone used at read time. An
// instant late in the evening UTC is already the next day further east.
func TestDerive_DateDependsOnReadZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	instant := time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		makeTransaction(1, 10, false, 1, instant),
	}

	filter := Filter{
		Type:      FilterAll,
		StartDate: datePtr(2024, time.March, 11),
	}

	assert.Empty(t, Derive(transactions, filter, time.UTC))
	assert.Len(t, Derive(transactions, filter, tokyo), 1)
}

func TestDerive_NilLocationFallsBackToLocal(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		makeTransaction(1, 10, false, 1, now),
	}

	out := Derive(transactions, DefaultFilter(), nil)

	assert.Len(t, out, 1)
}
