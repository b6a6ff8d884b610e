package handlers

import (
	"net/http"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{
		Name:              "Alice",
		PreferredCurrency: "USD",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.UserResponse
	decodeBody(t, rec, &resp)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "USD", resp.PreferredCurrency)
	assert.Equal(t, "$", resp.CurrencySymbol)
	assert.False(t, resp.Active)
}

func TestCreateUser_WithActivation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{
		Name:     "Alice",
		Activate: true,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.UserResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Active)
	// Omitted currency falls back to the default.
	assert.Equal(t, "EUR", resp.PreferredCurrency)

	id, ok := env.tracker.ActiveUserID()
	assert.True(t, ok)
	assert.Equal(t, resp.ID, id)
}

func TestCreateUser_UnknownCurrency(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{
		Name:              "Alice",
		PreferredCurrency: "XYZ",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_003", errorCode(t, rec))
}

func TestCreateUser_MissingName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsers_OrderedByNameWithActiveFlag(t *testing.T) {
	env := newTestEnv(t)
	bob := database.CreateTestUser(t, env.db, "Bob")
	database.CreateTestUser(t, env.db, "Alice")
	require.NoError(t, env.tracker.SetActiveUser(bob.ID))

	rec := env.request(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListUsersResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Alice", resp.Users[0].Name)
	assert.False(t, resp.Users[0].Active)
	assert.Equal(t, "Bob", resp.Users[1].Name)
	assert.True(t, resp.Users[1].Active)
}

func TestGetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/users/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_001", errorCode(t, rec))
}

func TestGetUser_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/users/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_002", errorCode(t, rec))
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")

	name := "Alicia"
	currency := "GBP"
	rec := env.request(t, http.MethodPut, "/api/v1/users/"+itoa(user.ID), dto.UpdateUserRequest{
		Name:              &name,
		PreferredCurrency: &currency,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UserResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Alicia", resp.Name)
	assert.Equal(t, "GBP", resp.PreferredCurrency)
}

func TestUpdateUser_NoFields(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")

	rec := env.request(t, http.MethodPut, "/api/v1/users/"+itoa(user.ID), dto.UpdateUserRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser_ClearsActiveUser(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")
	require.NoError(t, env.tracker.SetActiveUser(user.ID))

	rec := env.request(t, http.MethodDelete, "/api/v1/users/"+itoa(user.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := env.tracker.ActiveUserID()
	assert.False(t, ok)
}

func TestGetActiveUser_NoneSelected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/users/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ActiveUserResponse
	decodeBody(t, rec, &resp)
	assert.Nil(t, resp.User)
}

func TestActivateUser(t *testing.T) {
	env := newTestEnv(t)
	user := database.CreateTestUser(t, env.db, "Alice")

	rec := env.request(t, http.MethodPut, "/api/v1/users/active", dto.ActivateUserRequest{UserID: user.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/users/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ActiveUserResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.True(t, resp.User.Active)
}

func TestActivateUser_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/v1/users/active", dto.ActivateUserRequest{UserID: 999})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_001", errorCode(t, rec))
}

func TestListCurrencies(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/currencies", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListCurrenciesResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Currencies, 10)
	assert.Equal(t, "EUR", resp.Currencies[0].Code)
	assert.Equal(t, "€", resp.Currencies[0].Symbol)
}
