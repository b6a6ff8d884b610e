package handlers

import (
	"net/http"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTemplate(t *testing.T, db *database.DB, userID, categoryID uint, name string) *models.Template {
	t.Helper()

	template := &models.Template{
		Name:       name,
		Amount:     decimal.NewFromInt(55),
		IsPositive: false,
		CategoryID: categoryID,
		UserID:     userID,
	}
	require.NoError(t, db.Create(template).Error)
	return template
}

func TestCreateTemplate(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	category := database.CreateTestCategory(t, env.db, user.ID, "Utilities", models.CategoryTypeExpense)
	require.NoError(t, env.tracker.SetActiveUser(user.ID))

	rec := env.request(t, http.MethodPost, "/api/v1/templates", dto.CreateTemplateRequest{
		Name:       "Electricity",
		Amount:     "89.90",
		IsPositive: boolPtr(false),
		CategoryID: category.ID,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TemplateResponse
	decodeBody(t, rec, &resp)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Electricity", resp.Name)
	assert.Equal(t, "89.90", resp.Amount)
	assert.False(t, resp.IsPositive)
	assert.Equal(t, category.ID, resp.CategoryID)
}

func TestCreateTemplate_NoActiveUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/templates", dto.CreateTemplateRequest{
		Name:       "Electricity",
		Amount:     "89.90",
		IsPositive: boolPtr(false),
		CategoryID: 1,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_003", errorCode(t, rec))
}

func TestCreateTemplate_ForeignCategory(t *testing.T) {
	env := newTestEnv(t)
	alice := database.CreateTestUser(t, env.db, "Alice")
	bob := database.CreateTestUser(t, env.db, "Bob")
	bobsCategory := database.CreateTestCategory(t, env.db, bob.ID, "Rent", models.CategoryTypeExpense)
	require.NoError(t, env.tracker.SetActiveUser(alice.ID))

	rec := env.request(t, http.MethodPost, "/api/v1/templates", dto.CreateTemplateRequest{
		Name:       "Rent",
		Amount:     "900",
		IsPositive: boolPtr(false),
		CategoryID: bobsCategory.ID,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_001", errorCode(t, rec))
}

func TestListTemplates_ScopedToActiveUser(t *testing.T) {
	env := newTestEnv(t)
	alice := database.CreateTestUser(t, env.db, "Alice")
	bob := database.CreateTestUser(t, env.db, "Bob")
	alicesCategory := database.CreateTestCategory(t, env.db, alice.ID, "Utilities", models.CategoryTypeExpense)
	bobsCategory := database.CreateTestCategory(t, env.db, bob.ID, "Utilities", models.CategoryTypeExpense)
	createTestTemplate(t, env.db, alice.ID, alicesCategory.ID, "Electricity")
	createTestTemplate(t, env.db, bob.ID, bobsCategory.ID, "Water")
	require.NoError(t, env.tracker.SetActiveUser(alice.ID))

	rec := env.request(t, http.MethodGet, "/api/v1/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListTemplatesResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Electricity", resp.Templates[0].Name)
}

func TestUpdateTemplate(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	category := database.CreateTestCategory(t, env.db, user.ID, "Utilities", models.CategoryTypeExpense)
	template := createTestTemplate(t, env.db, user.ID, category.ID, "Electricity")
	require.NoError(t, env.tracker.SetActiveUser(user.ID))

	name := "Gas"
	amount := "42.00"
	rec := env.request(t, http.MethodPut, "/api/v1/templates/"+itoa(template.ID), dto.UpdateTemplateRequest{
		Name:   &name,
		Amount: &amount,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TemplateResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Gas", resp.Name)
	assert.Equal(t, "42.00", resp.Amount)
}

func TestDeleteTemplate_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodDelete, "/api/v1/templates/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TEMPLATE_001", errorCode(t, rec))
}

func TestApplyTemplate(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	category := database.CreateTestCategory(t, env.db, user.ID, "Utilities", models.CategoryTypeExpense)
	template := createTestTemplate(t, env.db, user.ID, category.ID, "Electricity")
	require.NoError(t, env.tracker.SetActiveUser(user.ID))

	rec := env.request(t, http.MethodPost, "/api/v1/templates/"+itoa(template.ID)+"/apply", dto.ApplyTemplateRequest{})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TransactionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "55.00", resp.Amount)
	assert.False(t, resp.IsPositive)
	assert.Equal(t, category.ID, resp.CategoryID)
	assert.NotZero(t, resp.Timestamp)

	rec = env.request(t, http.MethodGet, "/api/v1/transactions", nil)
	var list dto.ListTransactionsResponse
	decodeBody(t, rec, &list)
	assert.Equal(t, 1, list.Count)
}

func TestApplyTemplate_ExplicitTimestamp(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	category := database.CreateTestCategory(t, env.db, user.ID, "Utilities", models.CategoryTypeExpense)
	template := createTestTemplate(t, env.db, user.ID, category.ID, "Electricity")
	require.NoError(t, env.tracker.SetActiveUser(user.ID))

	ts := int64(1710067200000)
	rec := env.request(t, http.MethodPost, "/api/v1/templates/"+itoa(template.ID)+"/apply", dto.ApplyTemplateRequest{Timestamp: &ts})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TransactionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, ts, resp.Timestamp)
}

func TestApplyTemplate_ForeignTemplate(t *testing.T) {
	env := newTestEnv(t)
	alice := database.CreateTestUser(t, env.db, "Alice")
	bob := database.CreateTestUser(t, env.db, "Bob")
	bobsCategory := database.CreateTestCategory(t, env.db, bob.ID, "Rent", models.CategoryTypeExpense)
	template := createTestTemplate(t, env.db, bob.ID, bobsCategory.ID, "Rent")
	require.NoError(t, env.tracker.SetActiveUser(alice.ID))

	rec := env.request(t, http.MethodPost, "/api/v1/templates/"+itoa(template.ID)+"/apply", dto.ApplyTemplateRequest{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TEMPLATE_001", errorCode(t, rec))
}

func TestApplyTemplate_NoActiveUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/templates/1/apply", dto.ApplyTemplateRequest{})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_003", errorCode(t, rec))
}
