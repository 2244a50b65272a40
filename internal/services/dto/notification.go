package dto

import (
	"bytes"
	"time"

	"contest_backend/internal/models"

	"gorm.io/datatypes"
)

// ---------------- Requests ----------------

type CreateNotificationRequest struct {
	UserID  string         `json:"userId" validate:"required"`
	Type    string         `json:"type" validate:"omitempty,max=50"`
	Title   *string        `json:"title" validate:"omitempty,max=200"`
	Message string         `json:"message" validate:"required,min=1,max=2000"`
	Data    datatypes.JSON `json:"data" swaggertype:"object"`
}

func (r *CreateNotificationRequest) ToModel() *models.Notification {
	t := r.Type
	if t == "" {
		t = models.DefaultNotificationType
	}
	return &models.Notification{
		UserID:  r.UserID,
		Type:    t,
		Title:   r.Title,
		Message: r.Message,
		Data:    r.Data,
	}
}

type UpdateNotificationRequest struct {
	Type     *string        `json:"type" validate:"omitempty,min=1,max=50"`
	Title    *string        `json:"title" validate:"omitempty,max=200"`
	Message  *string        `json:"message" validate:"omitempty,min=1,max=2000"`
	Data     datatypes.JSON `json:"data" swaggertype:"object"`
	IsRead   *bool          `json:"isRead"`
	Archived *bool          `json:"archived"`
}

// ToUpdates: при смене isRead также выставляется/сбрасывается readAt
func (r *UpdateNotificationRequest) ToUpdates(now time.Time) map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Message != nil {
		updates["message"] = *r.Message
	}
	if len(r.Data) > 0 {
		// литерал null очищает payload (SQL NULL)
		if string(bytes.TrimSpace(r.Data)) == "null" {
			updates["data"] = nil
		} else {
			updates["data"] = r.Data
		}
	}
	if r.IsRead != nil {
		updates["is_read"] = *r.IsRead
		if *r.IsRead {
			updates["read_at"] = now
		} else {
			updates["read_at"] = nil
		}
	}
	if r.Archived != nil {
		updates["archived"] = *r.Archived
	}
	return updates
}

// ListNotificationsQuery - userId по умолчанию равен текущему пользователю
type ListNotificationsQuery struct {
	PaginationQuery
	UserID   string `form:"userId" json:"userId"`
	IsRead   *bool  `form:"isRead" json:"isRead"`
	Archived *bool  `form:"archived" json:"archived"`
}

// ---------------- Responses ----------------

type NotificationResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     *string        `json:"title"`
	Message   string         `json:"message"`
	Data      datatypes.JSON `json:"data,omitempty" swaggertype:"object"`
	IsRead    bool           `json:"isRead"`
	Archived  bool           `json:"archived"`
	ReadAt    *time.Time     `json:"readAt"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		Archived:  n.Archived,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type MarkAllReadResponse struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updatedCount"`
}

// ---------------- Misc ----------------

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
