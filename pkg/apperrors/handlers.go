package apperrors

import (
	"sync/atomic"

	"contest_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

var debugMode atomic.Bool

// SetDebug включает вывод деталей внутренних ошибок (только для development)
func SetDebug(debug bool) {
	debugMode.Store(debug)
}

// HandleError пишет ошибку в ответ. Не-AppError превращается в 500,
// детали которой наружу не уходят.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
		if !debugMode.Load() {
			hidden := *appErr
			hidden.Details = nil
			appErr = &hidden
		} else if appErr.Err != nil {
			dbg := *appErr
			dbg.Details = appErr.Err.Error()
			appErr = &dbg
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
