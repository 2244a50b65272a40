package handlers

import (
	"fmt"

	"contest_backend/internal/logger"
	"contest_backend/internal/middleware"
	"contest_backend/pkg/apperrors"
	"contest_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

// BaseHandler - общие методы обработчиков. Привязка и валидация запросов
// выполняются диспетчером маршрутов (internal/openapi) до вызова обработчика.
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// ============================================================================
// 2. DB из контекста запроса
// ============================================================================

// GetDB извлекает *gorm.DB, положенный DBMiddleware, из gin.Context
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 3. Обработка ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	apperrors.HandleError(c, apperrors.InternalError(err))
}

// ============================================================================
// 4. Текущий пользователь
// ============================================================================

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return userID, true
}
