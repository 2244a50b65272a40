package middleware

import (
	"strings"

	"contest_backend/internal/auth"
	"contest_backend/internal/logger"
	"contest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware проверяет Bearer JWT. Токены выпускает внешний провайдер,
// здесь только проверка подписи и срока действия.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "error", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequirePermission пропускает только роли, у которых есть permission
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.HasPermission(GetRole(c), permission) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func GetRole(c *gin.Context) string {
	return c.GetString(ContextRoleKey)
}
