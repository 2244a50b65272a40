package handlers

import (
	"net/http"

	"contest_backend/internal/openapi"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

// ListNotifications - без userId возвращает уведомления текущего пользователя
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	q := *openapi.Query[dto.ListNotificationsQuery](c)
	if q.UserID == "" {
		q.UserID = userID
	}

	resp, err := h.notificationService.ListNotifications(h.GetDB(c), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	req := openapi.Body[dto.CreateNotificationRequest](c)

	notification, err := h.notificationService.CreateNotification(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	notification, err := h.notificationService.GetNotification(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	req := openapi.Body[dto.UpdateNotificationRequest](c)

	notification, err := h.notificationService.UpdateNotification(h.GetDB(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notification, err := h.notificationService.DeleteNotification(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notification, err := h.notificationService.MarkAsRead(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	resp, err := h.notificationService.MarkAllAsRead(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
