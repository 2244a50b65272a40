package dto

import (
	"time"

	"contest_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type CreateProfileRequest struct {
	UserID             string     `json:"userId" validate:"required"`
	Bio                *string    `json:"bio" validate:"omitempty,max=2000"`
	AvatarURL          *string    `json:"avatarUrl" validate:"omitempty,url"`
	Phone              *string    `json:"phone" validate:"omitempty,max=32"`
	Address            *string    `json:"address"`
	City               *string    `json:"city"`
	Country            *string    `json:"country"`
	PostalCode         *string    `json:"postalCode" validate:"omitempty,max=20"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Gender             *string    `json:"gender" validate:"omitempty,gender"`
	HobbiesAndPassions *string    `json:"hobbiesAndPassions" validate:"omitempty,max=2000"`
	PaidVoterMessage   *string    `json:"paidVoterMessage" validate:"omitempty,max=500"`
	FreeVoterMessage   *string    `json:"freeVoterMessage" validate:"omitempty,max=500"`
}

func (r *CreateProfileRequest) ToModel() *models.Profile {
	p := &models.Profile{
		UserID:             r.UserID,
		Bio:                r.Bio,
		AvatarURL:          r.AvatarURL,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		Country:            r.Country,
		PostalCode:         r.PostalCode,
		DateOfBirth:        r.DateOfBirth,
		HobbiesAndPassions: r.HobbiesAndPassions,
		PaidVoterMessage:   r.PaidVoterMessage,
		FreeVoterMessage:   r.FreeVoterMessage,
	}
	if r.Gender != nil {
		g := models.Gender(*r.Gender)
		p.Gender = &g
	}
	return p
}

// UpdateProfileRequest - userId менять нельзя
type UpdateProfileRequest struct {
	Bio                *string    `json:"bio" validate:"omitempty,max=2000"`
	AvatarURL          *string    `json:"avatarUrl" validate:"omitempty,url"`
	Phone              *string    `json:"phone" validate:"omitempty,max=32"`
	Address            *string    `json:"address"`
	City               *string    `json:"city"`
	Country            *string    `json:"country"`
	PostalCode         *string    `json:"postalCode" validate:"omitempty,max=20"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Gender             *string    `json:"gender" validate:"omitempty,gender"`
	HobbiesAndPassions *string    `json:"hobbiesAndPassions" validate:"omitempty,max=2000"`
	PaidVoterMessage   *string    `json:"paidVoterMessage" validate:"omitempty,max=500"`
	FreeVoterMessage   *string    `json:"freeVoterMessage" validate:"omitempty,max=500"`
}

func (r *UpdateProfileRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	setString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setString("bio", r.Bio)
	setString("avatar_url", r.AvatarURL)
	setString("phone", r.Phone)
	setString("address", r.Address)
	setString("city", r.City)
	setString("country", r.Country)
	setString("postal_code", r.PostalCode)
	setString("gender", r.Gender)
	setString("hobbies_and_passions", r.HobbiesAndPassions)
	setString("paid_voter_message", r.PaidVoterMessage)
	setString("free_voter_message", r.FreeVoterMessage)
	if r.DateOfBirth != nil {
		updates["date_of_birth"] = *r.DateOfBirth
	}
	return updates
}

type ListProfilesQuery struct {
	PaginationQuery
	UserID  string `form:"userId" json:"userId"`
	City    string `form:"city" json:"city"`
	Country string `form:"country" json:"country"`
	Gender  string `form:"gender" json:"gender" validate:"omitempty,gender"`
}

// ==========================
// Responses
// ==========================

type ProfileResponse struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"userId"`
	Bio                *string        `json:"bio"`
	AvatarURL          *string        `json:"avatarUrl"`
	Phone              *string        `json:"phone"`
	Address            *string        `json:"address"`
	City               *string        `json:"city"`
	Country            *string        `json:"country"`
	PostalCode         *string        `json:"postalCode"`
	DateOfBirth        *time.Time     `json:"dateOfBirth"`
	Gender             *models.Gender `json:"gender"`
	HobbiesAndPassions *string        `json:"hobbiesAndPassions"`
	PaidVoterMessage   *string        `json:"paidVoterMessage"`
	FreeVoterMessage   *string        `json:"freeVoterMessage"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func NewProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Bio:                p.Bio,
		AvatarURL:          p.AvatarURL,
		Phone:              p.Phone,
		Address:            p.Address,
		City:               p.City,
		Country:            p.Country,
		PostalCode:         p.PostalCode,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		HobbiesAndPassions: p.HobbiesAndPassions,
		PaidVoterMessage:   p.PaidVoterMessage,
		FreeVoterMessage:   p.FreeVoterMessage,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
