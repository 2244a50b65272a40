package dto

import (
	"time"

	"contest_backend/internal/models"
)

type CreateVoteRequest struct {
	VoterID   string `json:"voterId" validate:"required"`
	VoteeID   string `json:"voteeId" validate:"required,nefield=VoterID"`
	ContestID string `json:"contestId" validate:"required"`
	Type      string `json:"type" validate:"required,vote-type"`
}

func (r *CreateVoteRequest) ToModel() *models.Vote {
	return &models.Vote{
		VoterID:   r.VoterID,
		VoteeID:   r.VoteeID,
		ContestID: r.ContestID,
		Type:      models.VoteType(r.Type),
	}
}

// UpdateVoteRequest - участники и конкурс у голоса неизменны, меняется только тип
type UpdateVoteRequest struct {
	Type *string `json:"type" validate:"omitempty,vote-type"`
}

func (r *UpdateVoteRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Type != nil {
		updates["type"] = models.VoteType(*r.Type)
	}
	return updates
}

type ListVotesQuery struct {
	PaginationQuery
	ContestID string `form:"contestId" json:"contestId"`
	VoterID   string `form:"voterId" json:"voterId"`
	VoteeID   string `form:"voteeId" json:"voteeId"`
	Type      string `form:"type" json:"type" validate:"omitempty,vote-type"`
}

type VoteResponse struct {
	ID        string          `json:"id"`
	VoterID   string          `json:"voterId"`
	VoteeID   string          `json:"voteeId"`
	ContestID string          `json:"contestId"`
	Type      models.VoteType `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewVoteResponse(v *models.Vote) VoteResponse {
	return VoteResponse{
		ID:        v.ID,
		VoterID:   v.VoterID,
		VoteeID:   v.VoteeID,
		ContestID: v.ContestID,
		Type:      v.Type,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
