package repositories

import (
	"contest_backend/internal/models"

	"gorm.io/gorm"
)

type VoteFilter struct {
	ContestID string
	VoterID   string
	VoteeID   string
	Type      string
}

func (f VoteFilter) Scope() Scope {
	return chain(
		eq("contest_id", f.ContestID),
		eq("voter_id", f.VoterID),
		eq("votee_id", f.VoteeID),
		eq("type", f.Type),
	)
}

// LeaderboardRow - агрегат голосов за одного профиля
type LeaderboardRow struct {
	ProfileID  string `gorm:"column:profile_id"`
	TotalVotes int64  `gorm:"column:total_votes"`
	FreeVotes  int64  `gorm:"column:free_votes"`
	PaidVotes  int64  `gorm:"column:paid_votes"`
}

type VoteRepository interface {
	Create(db *gorm.DB, vote *models.Vote) error
	FindByID(db *gorm.DB, id string) (*models.Vote, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.Vote, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.Vote, error)
	Delete(db *gorm.DB, id string) (*models.Vote, error)
	Leaderboard(db *gorm.DB, contestID string, page, limit int) ([]LeaderboardRow, int64, error)
}

type VoteRepositoryImpl struct {
	CRUD[models.Vote]
}

func NewVoteRepository() VoteRepository {
	return &VoteRepositoryImpl{}
}

func (r *VoteRepositoryImpl) Leaderboard(db *gorm.DB, contestID string, page, limit int) ([]LeaderboardRow, int64, error) {
	var total int64
	err := db.Model(&models.Vote{}).
		Where("contest_id = ?", contestID).
		Distinct("votee_id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []LeaderboardRow{}, 0, nil
	}

	var rows []LeaderboardRow
	err = db.Model(&models.Vote{}).
		Select(`votee_id AS profile_id,
			COUNT(*) AS total_votes,
			SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS free_votes,
			SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS paid_votes`,
			models.VoteTypeFree, models.VoteTypePaid).
		Where("contest_id = ?", contestID).
		Group("votee_id").
		Order("total_votes DESC").
		Order("votee_id").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
