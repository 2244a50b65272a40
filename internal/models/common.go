package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - id и временные метки, общие для всех таблиц.
// ID генерируется на стороне приложения, чтобы схема работала и в postgres, и в sqlite.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// All перечисляет модели в порядке миграции (сначала родительские таблицы)
func All() []interface{} {
	return []interface{}{
		&User{},
		&Profile{},
		&Contest{},
		&Award{},
		&ContestParticipation{},
		&Vote{},
		&Media{},
		&Notification{},
	}
}
