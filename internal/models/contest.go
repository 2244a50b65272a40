package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contest struct {
	BaseModel
	Name        string          `gorm:"not null;index"`
	Description *string
	PrizePool   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	StartDate   time.Time       `gorm:"not null;index"`
	EndDate     time.Time       `gorm:"not null;index"`

	Awards         []Award                `gorm:"foreignKey:ContestID;constraint:OnDelete:CASCADE"`
	Participations []ContestParticipation `gorm:"foreignKey:ContestID;constraint:OnDelete:CASCADE"`
	Votes          []Vote                 `gorm:"foreignKey:ContestID;constraint:OnDelete:CASCADE"`
}

// IsActive - идет ли конкурс в момент now
func (c *Contest) IsActive(now time.Time) bool {
	return !now.Before(c.StartDate) && now.Before(c.EndDate)
}

type Award struct {
	BaseModel
	Name      string `gorm:"not null"`
	Icon      string `gorm:"not null"`
	ContestID string `gorm:"type:varchar(36);not null;index"`
}

type ContestParticipation struct {
	BaseModel
	ProfileID       string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_participation_profile_contest"`
	ContestID       string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_participation_profile_contest;index"`
	CoverImage      *string
	IsApproved      bool `gorm:"not null;default:false"`
	IsParticipating bool `gorm:"not null"`
}
