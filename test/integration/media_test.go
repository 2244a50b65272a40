package integration_test

import (
	"net/http"
	"testing"
	"time"

	"contest_backend/internal/models"
	"contest_backend/internal/services/dto"
	"contest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedia_UploadIsProcessed(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, profile := ts.LoginAs(t, models.UserRoleUser)

	res, body := ts.SendMultipart(t, "/api/v1/media/upload", token,
		map[string]string{"profileId": profile.ID},
		"file", "photo.png", pngImage(t, 64, 48))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var media dto.MediaResponse
	helpers.DecodeJSON(t, body, &media)
	assert.Equal(t, models.MediaStatusProcessing, media.Status)
	assert.Equal(t, "image/png", media.Type)
	assert.Equal(t, "photo.png", media.OriginalFileName)

	// воркер переводит медиа в COMPLETED и строит превью
	require.Eventually(t, func() bool {
		var row models.Media
		if err := ts.DB.First(&row, "id = ?", media.ID).Error; err != nil {
			return false
		}
		return row.Status == models.MediaStatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/media/"+media.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &media)
	assert.NotNil(t, media.ThumbnailURL)

	// файл доступен по публичному URL
	res, _ = ts.SendRequest(t, http.MethodGet, media.URL, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMedia_UploadRejections(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, profile := ts.LoginAs(t, models.UserRoleUser)

	res, body := ts.SendMultipart(t, "/api/v1/media/upload", token,
		map[string]string{"profileId": profile.ID},
		"file", "notes.png", []byte("just some text pretending to be an image"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)

	res, body = ts.SendMultipart(t, "/api/v1/media/upload", token,
		map[string]string{"profileId": profile.ID}, "", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	res, body = ts.SendMultipart(t, "/api/v1/media/upload", token,
		map[string]string{}, "file", "photo.png", pngImage(t, 8, 8))
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	res, body = ts.SendMultipart(t, "/api/v1/media/upload", token,
		map[string]string{"profileId": "missing"}, "file", "photo.png", pngImage(t, 8, 8))
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Media{}).Count(&count)
	assert.Zero(t, count)
}
