package dto

import (
	"time"

	"contest_backend/internal/models"
)

// CreateMediaRequest регистрирует уже загруженный объект хранилища
type CreateMediaRequest struct {
	Key              string `json:"key" validate:"required,max=255"`
	Name             string `json:"name" validate:"required,max=255"`
	URL              string `json:"url" validate:"required,url"`
	Size             int64  `json:"size" validate:"required,gt=0"`
	Type             string `json:"type" validate:"required,max=100"`
	OriginalFileName string `json:"originalFileName" validate:"required,max=255"`
	Status           string `json:"status" validate:"omitempty,media-status"`
	ProfileID        string `json:"profileId" validate:"required"`
}

func (r *CreateMediaRequest) ToModel() *models.Media {
	status := models.MediaStatus(r.Status)
	if status == "" {
		status = models.MediaStatusProcessing
	}
	return &models.Media{
		Key:              r.Key,
		Name:             r.Name,
		URL:              r.URL,
		Size:             r.Size,
		Type:             r.Type,
		OriginalFileName: r.OriginalFileName,
		Status:           status,
		ProfileID:        r.ProfileID,
	}
}

type UpdateMediaRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=255"`
	Status *string `json:"status" validate:"omitempty,media-status"`
}

func (r *UpdateMediaRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Status != nil {
		updates["status"] = models.MediaStatus(*r.Status)
	}
	return updates
}

// UploadMediaRequest - поля multipart-формы кроме самого файла
type UploadMediaRequest struct {
	ProfileID string `form:"profileId" json:"profileId" validate:"required"`
	Name      string `form:"name" json:"name" validate:"omitempty,max=255"`
}

type ListMediaQuery struct {
	PaginationQuery
	ProfileID string `form:"profileId" json:"profileId"`
	Status    string `form:"status" json:"status" validate:"omitempty,media-status"`
	Type      string `form:"type" json:"type"`
}

type MediaResponse struct {
	ID               string             `json:"id"`
	Key              string             `json:"key"`
	Name             string             `json:"name"`
	URL              string             `json:"url"`
	ThumbnailURL     *string            `json:"thumbnailUrl"`
	Size             int64              `json:"size"`
	Type             string             `json:"type"`
	OriginalFileName string             `json:"originalFileName"`
	Status           models.MediaStatus `json:"status"`
	ProfileID        string             `json:"profileId"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func NewMediaResponse(m *models.Media) MediaResponse {
	return MediaResponse{
		ID:               m.ID,
		Key:              m.Key,
		Name:             m.Name,
		URL:              m.URL,
		ThumbnailURL:     m.ThumbnailURL,
		Size:             m.Size,
		Type:             m.Type,
		OriginalFileName: m.OriginalFileName,
		Status:           m.Status,
		ProfileID:        m.ProfileID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
