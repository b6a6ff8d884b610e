package handlers

import (
	"net/http"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGetView_Defaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/view", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ViewStateResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "all", resp.Type)
	assert.Nil(t, resp.CategoryID)
	assert.Nil(t, resp.StartDate)
	assert.Nil(t, resp.EndDate)
}

func TestSetTypeFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/v1/view/type", dto.SetTypeFilterRequest{Type: "expense"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ViewStateResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "expense", resp.Type)
}

func TestSetTypeFilter_Invalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/v1/view/type", dto.SetTypeFilterRequest{Type: "refunds"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStartDate_SetAndClear(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/v1/view/start-date", dto.SetDateFilterRequest{Date: strPtr("2024-03-10")})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ViewStateResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2024-03-10", *resp.StartDate)

	rec = env.request(t, http.MethodPut, "/api/v1/view/start-date", dto.SetDateFilterRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Nil(t, resp.StartDate)
}

func TestSetStartDate_InvalidDate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/v1/view/start-date", dto.SetDateFilterRequest{Date: strPtr("10.03.2024")})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_004", errorCode(t, rec))
}

func TestSetEndDate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/v1/view/end-date", dto.SetDateFilterRequest{Date: strPtr("2024-03-15")})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ViewStateResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2024-03-15", *resp.EndDate)
}

func TestSetCategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	category := database.CreateTestCategory(t, env.db, user.ID, "Groceries", models.CategoryTypeExpense)

	rec := env.request(t, http.MethodPut, "/api/v1/view/category", dto.SetCategoryFilterRequest{CategoryID: &category.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ViewStateResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.CategoryID)
	assert.Equal(t, category.ID, *resp.CategoryID)

	rec = env.request(t, http.MethodPut, "/api/v1/view/category", dto.SetCategoryFilterRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Nil(t, resp.CategoryID)
}

func TestSetCategoryFilter_UnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	unknown := uint(999)

	rec := env.request(t, http.MethodPut, "/api/v1/view/category", dto.SetCategoryFilterRequest{CategoryID: &unknown})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_001", errorCode(t, rec))
}

func TestResetView(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	category := database.CreateTestCategory(t, env.db, user.ID, "Groceries", models.CategoryTypeExpense)

	env.request(t, http.MethodPut, "/api/v1/view/type", dto.SetTypeFilterRequest{Type: "expense"})
	env.request(t, http.MethodPut, "/api/v1/view/start-date", dto.SetDateFilterRequest{Date: strPtr("2024-03-01")})
	env.request(t, http.MethodPut, "/api/v1/view/category", dto.SetCategoryFilterRequest{CategoryID: &category.ID})

	rec := env.request(t, http.MethodDelete, "/api/v1/view", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ViewStateResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "all", resp.Type)
	assert.Nil(t, resp.CategoryID)
	assert.Nil(t, resp.StartDate)
	assert.Nil(t, resp.EndDate)
}
