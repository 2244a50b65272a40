package integration_test

import (
	"net/http"
	"testing"

	"contest_backend/internal/models"
	"contest_backend/internal/services/dto"
	"contest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotification_CreateAndList - создание и выборка по userId/isRead
func TestNotification_CreateAndList(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user, _ := ts.LoginAs(t, models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/notifications", token, map[string]any{
		"userId":  user.ID,
		"message": "hi",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created dto.NotificationResponse
	helpers.DecodeJSON(t, body, &created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsRead)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, models.DefaultNotificationType, created.Type)

	res, body = ts.SendRequest(t, http.MethodGet,
		"/api/v1/notifications?userId="+user.ID+"&isRead=false&page=1&limit=10", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list page[dto.NotificationResponse]
	helpers.DecodeJSON(t, body, &list)
	assert.GreaterOrEqual(t, list.Meta.Total, int64(1))
	require.NotEmpty(t, list.Data)
	assert.Equal(t, created.ID, list.Data[0].ID)
	assert.Equal(t, 1, list.Meta.Page)
	assert.Equal(t, 10, list.Meta.Limit)
}

func TestNotification_ListDefaultsToCaller(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user, _ := ts.LoginAs(t, models.UserRoleUser)
	other, _ := helpers.CreateUserWithProfile(t, ts.DB, models.UserRoleUser)

	helpers.CreateNotification(t, ts.DB, user.ID, "mine", false)
	helpers.CreateNotification(t, ts.DB, other.ID, "not mine", false)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list page[dto.NotificationResponse]
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "mine", list.Data[0].Message)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications?isRead=abc", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	assert.Equal(t, map[string]string{"isRead": "Expected boolean"}, decodeError(t, body).Error.Details)
}

func TestNotification_MarkAsReadAndReadAll(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user, _ := ts.LoginAs(t, models.UserRoleUser)

	first := helpers.CreateNotification(t, ts.DB, user.ID, "first", false)
	helpers.CreateNotification(t, ts.DB, user.ID, "second", false)
	helpers.CreateNotification(t, ts.DB, user.ID, "third", false)
	helpers.CreateNotification(t, ts.DB, user.ID, "old", true)

	// 1. Одно уведомление
	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/notifications/"+first.ID+"/read", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var read dto.NotificationResponse
	helpers.DecodeJSON(t, body, &read)
	assert.True(t, read.IsRead)
	assert.NotNil(t, read.ReadAt)

	// 2. Остальные непрочитанные: считаются только ранее непрочитанные
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/notifications/"+user.ID+"/read-all", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var all dto.MarkAllReadResponse
	helpers.DecodeJSON(t, body, &all)
	assert.Equal(t, int64(2), all.UpdatedCount)
	assert.Equal(t, "All notifications marked as read", all.Message)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/notifications/"+user.ID+"/read-all", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &all)
	assert.Equal(t, int64(0), all.UpdatedCount)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/notifications/missing-user/read-all", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Equal(t, "User not found", decodeError(t, body).Error.Message)
}

func TestNotification_UpdateAndDelete(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user, _ := ts.LoginAs(t, models.UserRoleUser)
	n := helpers.CreateNotification(t, ts.DB, user.ID, "original", false)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+n.ID, token, map[string]any{
		"title": "Updated",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated dto.NotificationResponse
	helpers.DecodeJSON(t, body, &updated)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Updated", *updated.Title)
	assert.Equal(t, "original", updated.Message, "непереданные поля не меняются")
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+n.ID, token, map[string]any{
		"data": map[string]any{"contestId": "c1"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &updated)
	assert.JSONEq(t, `{"contestId":"c1"}`, string(updated.Data))

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+n.ID, token, map[string]any{
		"data": nil,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var nullCount int64
	require.NoError(t, ts.DB.Model(&models.Notification{}).Where("id = ? AND data IS NULL", n.ID).Count(&nullCount).Error)
	assert.Equal(t, int64(1), nullCount)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+n.ID, token, map[string]any{
		"message": "",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	assert.Contains(t, decodeError(t, body).Error.Details, "message")

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/notifications/"+n.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var deleted dto.NotificationResponse
	helpers.DecodeJSON(t, body, &deleted)
	assert.Equal(t, n.ID, deleted.ID)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/"+n.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNotification_CreateValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, _ := ts.LoginAs(t, models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/notifications", token, map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	e := decodeError(t, body)
	assert.Equal(t, "VALIDATION_FAILED", e.Error.Code)
	assert.Contains(t, e.Error.Details, "userId")
	assert.Contains(t, e.Error.Details, "message")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/notifications", token, map[string]any{
		"userId":  "does-not-exist",
		"message": "hi",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}
