package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultNotificationType = "general"

type Notification struct {
	BaseModel
	UserID   string `gorm:"type:varchar(36);not null;index:idx_notifications_user_read"`
	Type     string `gorm:"not null;default:'general'"`
	Title    *string
	Message  string         `gorm:"not null"`
	Data     datatypes.JSON // произвольный payload, например {"contestId": "..."}
	IsRead   bool           `gorm:"not null;default:false;index:idx_notifications_user_read"`
	Archived bool           `gorm:"not null;default:false"`
	ReadAt   *time.Time
}
