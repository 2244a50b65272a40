package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"contest_backend/internal/models"
	"contest_backend/internal/services/dto"
	"contest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_RequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestUser_AdminFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _, _ := ts.LoginAs(t, models.UserRoleAdmin)

	// 1. Создание
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", adminToken, map[string]any{
		"email": "anna@example.com",
		"name":  "Anna",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created dto.UserResponse
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, "USER", string(created.Role))

	// 2. Чтение возвращает то же, что вернул create
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var fetched dto.UserResponse
	helpers.DecodeJSON(t, body, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, created.Name, fetched.Name)

	// 3. Повторный email
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/users", adminToken, map[string]any{
		"email": "anna@example.com",
		"name":  "Anna 2",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// 4. Частичное обновление
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/users/"+created.ID, adminToken, map[string]any{
		"name": "Anna K.",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated dto.UserResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Anna K.", updated.Name)
	assert.Equal(t, "anna@example.com", updated.Email)

	// 5. Удаление, затем 404
	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/users/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Equal(t, "User not found", decodeError(t, body).Error.Message)
}

func TestUser_WriteRequiresPermission(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, _ := ts.LoginAs(t, models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", token, map[string]any{
		"email": "x@example.com",
		"name":  "X",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestUser_Pagination(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, _ := ts.LoginAs(t, models.UserRoleUser)

	// вместе с вызывающим 25 пользователей
	for i := 0; i < 24; i++ {
		helpers.CreateUser(t, ts.DB, &models.User{Email: fmt.Sprintf("u%02d@example.com", i)})
	}

	var p page[dto.UserResponse]

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users?page=3&limit=10", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &p)
	assert.Len(t, p.Data, 5)
	assert.Equal(t, int64(25), p.Meta.Total)
	assert.Equal(t, 3, p.Meta.TotalPages)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users?page=4&limit=10", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &p)
	assert.Empty(t, p.Data)
	assert.Equal(t, int64(25), p.Meta.Total)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users?page=0", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	assert.Contains(t, decodeError(t, body).Error.Details, "page")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users?page=abc", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	e := decodeError(t, body)
	assert.Equal(t, "VALIDATION_FAILED", e.Error.Code)
	assert.Equal(t, "Expected integer", e.Error.Details["page"])
	assert.NotContains(t, e.Error.Details, "query")
}

func TestProfile_OnePerUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user, _ := ts.LoginAs(t, models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, map[string]any{
		"userId": user.ID,
		"city":   "Astana",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/profiles", token, map[string]any{
		"userId": "missing",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles?userId="+user.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var p page[dto.ProfileResponse]
	helpers.DecodeJSON(t, body, &p)
	require.Len(t, p.Data, 1)
	assert.Equal(t, user.ID, p.Data[0].UserID)
}
