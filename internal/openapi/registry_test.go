package openapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"

	"contest_backend/internal/auth"
	"contest_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemQuery struct {
	Page  int    `form:"page,default=1" validate:"min=1"`
	Limit int    `form:"limit,default=10" validate:"min=1,max=100"`
	Kind  string `form:"kind" json:"kind" validate:"omitempty,oneof=a b"`
}

type itemBody struct {
	Name  string  `json:"name" validate:"required,min=1"`
	Count *int    `json:"count" validate:"omitempty,gt=0"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type itemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestRegistry(t *testing.T) (*Registry, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.Configure("test-secret", time.Hour)

	reg := NewRegistry(validator.New(), Info{Title: "Test API", Version: "1.0", BasePath: "/api/v1"})
	reg.Enum("vote-type", "FREE", "PAID")

	router := gin.New()
	api := router.Group("/api/v1")
	reg.Mount(api,
		Route{
			Method: http.MethodGet, Path: "/items", Summary: "List items", Tags: []string{"Items"},
			Query: itemQuery{}, Public: true,
			Responses: map[int]Response{http.StatusOK: {Description: "OK", Body: []itemResponse{}}},
			Handler: func(c *gin.Context) {
				q := Query[itemQuery](c)
				c.JSON(http.StatusOK, gin.H{"page": q.Page, "limit": q.Limit, "kind": q.Kind})
			},
		},
		Route{
			Method: http.MethodPost, Path: "/items", Summary: "Create item", Tags: []string{"Items"},
			Body: itemBody{},
			Responses: map[int]Response{http.StatusCreated: {Description: "Created", Body: itemResponse{}}},
			Handler: func(c *gin.Context) {
				b := Body[itemBody](c)
				c.JSON(http.StatusCreated, itemResponse{ID: "1", Name: b.Name})
			},
		},
		Route{
			Method: http.MethodPatch, Path: "/items/{id}/read", Tags: []string{"Items"},
			Params: map[string]string{"id": "Item ID"},
			Handler: func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": c.Param("id")}) },
		},
		Route{
			Method: http.MethodPatch, Path: "/items/{ownerId}/read-all", Tags: []string{"Items"},
			Handler: func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ownerId": c.Param("ownerId")}) },
		},
		Route{
			Method: http.MethodDelete, Path: "/items/{id}", Tags: []string{"Items"},
			Permission: auth.PermContestsWrite,
			Handler:    func(c *gin.Context) { c.Status(http.StatusNoContent) },
		},
	)
	return reg, router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken("u1", role)
	require.NoError(t, err)
	return tok
}

func errorDetails(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Details
}

func TestToGinPath(t *testing.T) {
	path, names := toGinPath("/contests/{contestId}/awards/{id}")
	assert.Equal(t, "/contests/:p0/awards/:p1", path)
	assert.Equal(t, []string{"contestId", "id"}, names)

	path, names = toGinPath("/health")
	assert.Equal(t, "/health", path)
	assert.Empty(t, names)
}

func TestMount_QueryDefaultsAndValidation(t *testing.T) {
	_, router := newTestRegistry(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":1,"limit":10,"kind":""}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/v1/items?page=0&kind=z", "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	details := errorDetails(t, w)
	assert.Contains(t, details, "page")
	assert.Contains(t, details, "kind")

	w = doRequest(t, router, http.MethodGet, "/api/v1/items?page=abc", "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	details = errorDetails(t, w)
	assert.Equal(t, map[string]string{"page": "Expected integer"}, details)
}

func TestQueryErrorDetails(t *testing.T) {
	type embedded struct {
		Page int `form:"page,default=1"`
	}
	type flagsQuery struct {
		embedded
		IsRead *bool   `form:"isRead"`
		Score  float64 `form:"score"`
		Name   string  `form:"name"`
	}
	typ := reflect.TypeOf(flagsQuery{})

	assert.Equal(t, map[string]string{"isRead": "Expected boolean"},
		queryErrorDetails(typ, url.Values{"isRead": {"abc"}, "name": {"x"}}))
	assert.Equal(t, map[string]string{"page": "Expected integer"},
		queryErrorDetails(typ, url.Values{"page": {"1.5"}}))
	assert.Equal(t, map[string]string{"score": "Expected number"},
		queryErrorDetails(typ, url.Values{"score": {"high"}}))
	assert.Equal(t, map[string]string{"query": "Invalid query parameters"},
		queryErrorDetails(typ, url.Values{"isRead": {"true"}}))
}

func TestMount_BodyValidation(t *testing.T) {
	_, router := newTestRegistry(t)
	tok := token(t, "USER")

	w := doRequest(t, router, http.MethodPost, "/api/v1/items", tok, map[string]any{"name": "box"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"1","name":"box"}`, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/api/v1/items", tok, map[string]any{"count": 0, "email": "nope"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	details := errorDetails(t, w)
	assert.Len(t, details, 3)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "count")
	assert.Contains(t, details, "email")

	w = doRequest(t, router, http.MethodPost, "/api/v1/items", tok, map[string]any{"name": 5})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Expected string", errorDetails(t, w)["name"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/items", tok, `{"name":`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, errorDetails(t, w), "body")
}

func TestMount_AuthAndPermissions(t *testing.T) {
	_, router := newTestRegistry(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/items", "", map[string]any{"name": "box"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/items", "garbage", map[string]any{"name": "box"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/items/42", token(t, "USER"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/items/42", token(t, "ADMIN"), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMount_ParamsRenamedPerRoute(t *testing.T) {
	_, router := newTestRegistry(t)
	tok := token(t, "USER")

	w := doRequest(t, router, http.MethodPatch, "/api/v1/items/n1/read", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"n1"}`, w.Body.String())

	w = doRequest(t, router, http.MethodPatch, "/api/v1/items/u7/read-all", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ownerId":"u7"}`, w.Body.String())
}

func TestDocument(t *testing.T) {
	reg, _ := newTestRegistry(t)
	doc := reg.Document()

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Contains(t, doc.SecurityDefinitions, bearerAuth)

	items, ok := doc.Paths.Paths["/api/v1/items"]
	require.True(t, ok)
	require.NotNil(t, items.Get)
	require.NotNil(t, items.Post)
	assert.Empty(t, items.Get.Security)
	assert.NotEmpty(t, items.Post.Security)

	var queryNames []string
	for _, p := range items.Get.Parameters {
		queryNames = append(queryNames, p.Name)
	}
	assert.ElementsMatch(t, []string{"page", "limit", "kind"}, queryNames)

	body, ok := doc.Definitions["itemBody"]
	require.True(t, ok)
	assert.Equal(t, []string{"name"}, body.Required)
	assert.Equal(t, "email", body.Properties["email"].Format)

	_, ok = items.Post.Responses.StatusCodeResponses[http.StatusUnprocessableEntity]
	assert.True(t, ok)
	_, ok = items.Post.Responses.StatusCodeResponses[http.StatusUnauthorized]
	assert.True(t, ok)

	read, ok := doc.Paths.Paths["/api/v1/items/{id}/read"]
	require.True(t, ok)
	require.NotNil(t, read.Patch)
	require.Len(t, read.Patch.Parameters, 1)
	assert.Equal(t, "path", read.Patch.Parameters[0].In)
	assert.Equal(t, "Item ID", read.Patch.Parameters[0].Description)

	raw, err := reg.Publish()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"swagger":"2.0"`)
}

type page[T any] struct {
	Data []T `json:"data"`
}

func TestDefinitionName(t *testing.T) {
	assert.Equal(t, "itemBody", definitionName(reflect.TypeOf(itemBody{})))
	assert.Equal(t, "pageitemResponse", definitionName(reflect.TypeOf(page[itemResponse]{})))
}
