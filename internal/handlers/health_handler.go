package handlers

import (
	"context"
	"net/http"
	"time"

	"contest_backend/internal/logger"
	"contest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

// Health проверяет доступность БД; при недоступной БД отвечает 503
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: "up"}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "health check: database unavailable", err)
		resp.Status, resp.Database = "degraded", "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
