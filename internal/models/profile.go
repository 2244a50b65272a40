package models

import "time"

// Profile - анкета участника. Голоса и участия в конкурсах ссылаются на профиль, а не на пользователя.
type Profile struct {
	BaseModel
	UserID             string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Bio                *string
	AvatarURL          *string
	Phone              *string
	Address            *string
	City               *string `gorm:"index"`
	Country            *string `gorm:"index"`
	PostalCode         *string
	DateOfBirth        *time.Time
	Gender             *Gender `gorm:"type:varchar(20)"`
	HobbiesAndPassions *string
	PaidVoterMessage   *string
	FreeVoterMessage   *string

	Media          []Media                `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Participations []ContestParticipation `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	VotesCast      []Vote                 `gorm:"foreignKey:VoterID;constraint:OnDelete:CASCADE"`
	VotesReceived  []Vote                 `gorm:"foreignKey:VoteeID;constraint:OnDelete:CASCADE"`
}
