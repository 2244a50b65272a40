package models

// Vote - голос одного профиля за другой в рамках конкурса.
// PAID голоса только фиксируются, списание денег происходит вне системы.
type Vote struct {
	BaseModel
	VoterID   string   `gorm:"type:varchar(36);not null;index;check:chk_votes_voter_votee,voter_id <> votee_id"`
	VoteeID   string   `gorm:"type:varchar(36);not null;index"`
	ContestID string   `gorm:"type:varchar(36);not null;index"`
	Type      VoteType `gorm:"type:varchar(10);not null;default:'FREE'"`
}
