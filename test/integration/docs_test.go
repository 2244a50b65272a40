package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"contest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocs_OpenAPIDocument(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/openapi.json", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
		Tags    []struct {
			Name string `json:"name"`
		} `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, "2.0", doc.Swagger)

	assert.Contains(t, doc.Paths, "/api/v1/notifications/{id}/read")
	assert.Contains(t, doc.Paths, "/api/v1/notifications/{userId}/read-all")
	assert.Contains(t, doc.Paths["/api/v1/notifications/{id}"], "put")
	assert.Contains(t, doc.Paths["/api/v1/contests/{contestId}/awards"], "post")
	assert.Contains(t, doc.Paths, "/health")

	names := make([]string, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		names = append(names, tag.Name)
	}
	for _, want := range []string{"Users", "Profiles", "Contests", "Awards", "Participations", "Votes", "Media", "Notifications"} {
		assert.Contains(t, names, want)
	}
}

func TestDocs_SwaggerUIAndSystemEndpoints(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "/api/v1/contests")

	res, _ = ts.SendRequest(t, http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"ok"`)

	// счетчики запросов видны после обращения к API
	res, body = ts.SendRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, strings.Contains(body, "http_requests_total"), "metrics body: %s", body)
}
