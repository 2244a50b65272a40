package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"contest_backend/internal/middleware"
	"contest_backend/pkg/contextkeys"
	"contest_backend/test/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ctxMarker struct{}

func TestDBMiddleware_BindsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := helpers.NewTestDB(t)

	var got *gorm.DB
	router := gin.New()
	router.Use(middleware.DBMiddleware(db))
	router.GET("/", func(c *gin.Context) {
		val, ok := c.Get(string(contextkeys.DBContextKey))
		require.True(t, ok)
		got = val.(*gorm.DB)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxMarker{}, "req-1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "req-1", got.Statement.Context.Value(ctxMarker{}))

	var n int64
	require.NoError(t, got.Raw("SELECT 1").Scan(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestDBMiddleware_CanceledRequestCancelsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := helpers.NewTestDB(t)

	var queryErr error
	router := gin.New()
	router.Use(middleware.DBMiddleware(db))
	router.GET("/", func(c *gin.Context) {
		val, _ := c.Get(string(contextkeys.DBContextKey))
		var n int64
		queryErr = val.(*gorm.DB).Raw("SELECT 1").Scan(&n).Error
		c.Status(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.ErrorIs(t, queryErr, context.Canceled)
}
