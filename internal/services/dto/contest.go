package dto

import (
	"time"

	"contest_backend/internal/models"

	"github.com/shopspring/decimal"
)

// ---------------- Contest ----------------

type CreateContestRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=5000"`
	PrizePool   decimal.Decimal `json:"prizePool" validate:"min=0"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     time.Time       `json:"endDate" validate:"required,gtfield=StartDate"`
}

func (r *CreateContestRequest) ToModel() *models.Contest {
	return &models.Contest{
		Name:        r.Name,
		Description: r.Description,
		PrizePool:   r.PrizePool,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

type UpdateContestRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	PrizePool   *decimal.Decimal `json:"prizePool" validate:"omitempty,min=0"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
}

func (r *UpdateContestRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.PrizePool != nil {
		updates["prize_pool"] = *r.PrizePool
	}
	if r.StartDate != nil {
		updates["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["end_date"] = *r.EndDate
	}
	return updates
}

type ListContestsQuery struct {
	PaginationQuery
	Q      string `form:"q" json:"q" validate:"omitempty,max=200"`
	Active *bool  `form:"active" json:"active"`
}

type ContestResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	PrizePool   decimal.Decimal `json:"prizePool"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewContestResponse(c *models.Contest) ContestResponse {
	return ContestResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PrizePool:   c.PrizePool,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// LeaderboardEntry - голоса, полученные профилем в конкурсе
type LeaderboardEntry struct {
	ProfileID  string `json:"profileId"`
	TotalVotes int64  `json:"totalVotes"`
	FreeVotes  int64  `json:"freeVotes"`
	PaidVotes  int64  `json:"paidVotes"`
}

// ---------------- Award ----------------

// CreateAwardRequest - contestId берется из пути
type CreateAwardRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Icon string `json:"icon" validate:"required,min=1,max=50"`
}

type UpdateAwardRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Icon *string `json:"icon" validate:"omitempty,min=1,max=50"`
}

func (r *UpdateAwardRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Icon != nil {
		updates["icon"] = *r.Icon
	}
	return updates
}

type ListAwardsQuery struct {
	PaginationQuery
	ContestID string `form:"contestId" json:"contestId"`
}

type AwardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	ContestID string    `json:"contestId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewAwardResponse(a *models.Award) AwardResponse {
	return AwardResponse{
		ID:        a.ID,
		Name:      a.Name,
		Icon:      a.Icon,
		ContestID: a.ContestID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ---------------- Participation ----------------

// CreateParticipationRequest - contestId берется из пути
type CreateParticipationRequest struct {
	ProfileID       string  `json:"profileId" validate:"required"`
	CoverImage      *string `json:"coverImage" validate:"omitempty,url"`
	IsApproved      bool    `json:"isApproved"`
	IsParticipating *bool   `json:"isParticipating"`
}

func (r *CreateParticipationRequest) ToModel(contestID string) *models.ContestParticipation {
	participating := true
	if r.IsParticipating != nil {
		participating = *r.IsParticipating
	}
	return &models.ContestParticipation{
		ProfileID:       r.ProfileID,
		ContestID:       contestID,
		CoverImage:      r.CoverImage,
		IsApproved:      r.IsApproved,
		IsParticipating: participating,
	}
}

type UpdateParticipationRequest struct {
	CoverImage      *string `json:"coverImage" validate:"omitempty,url"`
	IsApproved      *bool   `json:"isApproved"`
	IsParticipating *bool   `json:"isParticipating"`
}

func (r *UpdateParticipationRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.CoverImage != nil {
		updates["cover_image"] = *r.CoverImage
	}
	if r.IsApproved != nil {
		updates["is_approved"] = *r.IsApproved
	}
	if r.IsParticipating != nil {
		updates["is_participating"] = *r.IsParticipating
	}
	return updates
}

type ListParticipationsQuery struct {
	PaginationQuery
	ContestID       string `form:"contestId" json:"contestId"`
	ProfileID       string `form:"profileId" json:"profileId"`
	IsApproved      *bool  `form:"isApproved" json:"isApproved"`
	IsParticipating *bool  `form:"isParticipating" json:"isParticipating"`
}

type ParticipationResponse struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profileId"`
	ContestID       string    `json:"contestId"`
	CoverImage      *string   `json:"coverImage"`
	IsApproved      bool      `json:"isApproved"`
	IsParticipating bool      `json:"isParticipating"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewParticipationResponse(p *models.ContestParticipation) ParticipationResponse {
	return ParticipationResponse{
		ID:              p.ID,
		ProfileID:       p.ProfileID,
		ContestID:       p.ContestID,
		CoverImage:      p.CoverImage,
		IsApproved:      p.IsApproved,
		IsParticipating: p.IsParticipating,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
