package dto

import (
	"time"

	"contest_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateUserRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	EmailVerified   bool    `json:"emailVerified"`
	Username        *string `json:"username" validate:"omitempty,min=3,max=50"`
	DisplayUsername *string `json:"displayUsername" validate:"omitempty,max=100"`
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	Image           *string `json:"image" validate:"omitempty,url"`
	Role            string  `json:"role" validate:"omitempty,user-role"`
}

func (r *CreateUserRequest) ToModel() *models.User {
	role := models.UserRole(r.Role)
	if role == "" {
		role = models.UserRoleUser
	}
	return &models.User{
		Email:           r.Email,
		EmailVerified:   r.EmailVerified,
		Username:        r.Username,
		DisplayUsername: r.DisplayUsername,
		Name:            r.Name,
		Image:           r.Image,
		Role:            role,
	}
}

type UpdateUserRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	EmailVerified   *bool   `json:"emailVerified"`
	Username        *string `json:"username" validate:"omitempty,min=3,max=50"`
	DisplayUsername *string `json:"displayUsername" validate:"omitempty,max=100"`
	Name            *string `json:"name" validate:"omitempty,min=1,max=100"`
	Image           *string `json:"image" validate:"omitempty,url"`
	Role            *string `json:"role" validate:"omitempty,user-role"`
}

// ToUpdates возвращает только переданные поля (имя колонки -> значение)
func (r *UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.EmailVerified != nil {
		updates["email_verified"] = *r.EmailVerified
	}
	if r.Username != nil {
		updates["username"] = *r.Username
	}
	if r.DisplayUsername != nil {
		updates["display_username"] = *r.DisplayUsername
	}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Role != nil {
		updates["role"] = models.UserRole(*r.Role)
	}
	return updates
}

type ListUsersQuery struct {
	PaginationQuery
	Role  string `form:"role" json:"role" validate:"omitempty,user-role"`
	Email string `form:"email" json:"email" validate:"omitempty,email"`
}

// ---------------- Responses ----------------

type UserResponse struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	EmailVerified   bool            `json:"emailVerified"`
	Username        *string         `json:"username"`
	DisplayUsername *string         `json:"displayUsername"`
	Name            string          `json:"name"`
	Image           *string         `json:"image"`
	Role            models.UserRole `json:"role"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		EmailVerified:   u.EmailVerified,
		Username:        u.Username,
		DisplayUsername: u.DisplayUsername,
		Name:            u.Name,
		Image:           u.Image,
		Role:            u.Role,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
