package models

type User struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null"`
	EmailVerified   bool     `gorm:"default:false"`
	Username        *string  `gorm:"uniqueIndex"`
	DisplayUsername *string
	Name            string   `gorm:"not null"`
	Image           *string
	Role            UserRole `gorm:"type:varchar(20);not null;default:'USER'"`

	Profile       *Profile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
