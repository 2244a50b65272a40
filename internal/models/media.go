package models

type Media struct {
	BaseModel
	Key              string      `gorm:"uniqueIndex;not null"` // ключ объекта в хранилище
	Name             string      `gorm:"not null"`
	URL              string      `gorm:"not null"`
	ThumbnailURL     *string
	Size             int64       `gorm:"not null"`
	Type             string      `gorm:"not null"` // MIME
	OriginalFileName string      `gorm:"not null"`
	Status           MediaStatus `gorm:"type:varchar(20);not null;default:'PROCESSING';index"`
	ProfileID        string      `gorm:"type:varchar(36);not null;index"`
}

func (m *Media) IsImage() bool {
	switch m.Type {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
