package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFilter_Matches(t *testing.T) {
	assert.True(t, FilterAll.Matches(true))
	assert.True(t, FilterAll.Matches(false))
	assert.True(t, FilterIncome.Matches(true))
	assert.False(t, FilterIncome.Matches(false))
	assert.False(t, FilterExpense.Matches(true))
	assert.True(t, FilterExpense.Matches(false))
}

func TestIsValidTypeFilter(t *testing.T) {
	assert.True(t, IsValidTypeFilter(FilterAll))
	assert.True(t, IsValidTypeFilter(FilterIncome))
	assert.True(t, IsValidTypeFilter(FilterExpense))
	assert.False(t, IsValidTypeFilter("everything"))
	assert.False(t, IsValidTypeFilter(""))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 10}, date)
	assert.Equal(t, "2024-03-10", date.String())

	_, err = ParseDate("10.03.2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)
}

func TestDate_Ordering(t *testing.T) {
	earlier := Date{Year: 2024, Month: time.March, Day: 10}
	later := Date{Year: 2024, Month: time.March, Day: 11}
	nextMonth := Date{Year: 2024, Month: time.April, Day: 1}
	nextYear := Date{Year: 2025, Month: time.January, Day: 1}

	assert.True(t, earlier.Before(later))
	assert.True(t, later.Before(nextMonth))
	assert.True(t, nextMonth.Before(nextYear))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(earlier))
}

func TestDefaultFilter(t *testing.T) {
	filter := DefaultFilter()

	assert.Equal(t, FilterAll, filter.Type)
	assert.Nil(t, filter.CategoryID)
	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
}
