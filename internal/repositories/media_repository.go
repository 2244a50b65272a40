package repositories

import (
	"time"

	"contest_backend/internal/models"

	"gorm.io/gorm"
)

type MediaFilter struct {
	ProfileID string
	Status    string
	Type      string
}

func (f MediaFilter) Scope() Scope {
	return chain(eq("profile_id", f.ProfileID), eq("status", f.Status), eq("type", f.Type))
}

type MediaRepository interface {
	Create(db *gorm.DB, media *models.Media) error
	FindByID(db *gorm.DB, id string) (*models.Media, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.Media, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.Media, error)
	Delete(db *gorm.DB, id string) (*models.Media, error)
	SetStatus(db *gorm.DB, id string, status models.MediaStatus, thumbnailURL *string) error
	FindStuck(db *gorm.DB, olderThan time.Time, limit int) ([]models.Media, error)
}

type MediaRepositoryImpl struct {
	CRUD[models.Media]
}

func NewMediaRepository() MediaRepository {
	return &MediaRepositoryImpl{}
}

func (r *MediaRepositoryImpl) SetStatus(db *gorm.DB, id string, status models.MediaStatus, thumbnailURL *string) error {
	updates := map[string]interface{}{"status": status}
	if thumbnailURL != nil {
		updates["thumbnail_url"] = *thumbnailURL
	}
	res := db.Model(&models.Media{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindStuck - медиа, которые слишком долго висят в PROCESSING (например, после рестарта)
func (r *MediaRepositoryImpl) FindStuck(db *gorm.DB, olderThan time.Time, limit int) ([]models.Media, error) {
	var items []models.Media
	err := db.
		Where("status = ? AND updated_at < ?", models.MediaStatusProcessing, olderThan).
		Order("created_at").
		Limit(limit).
		Find(&items).Error
	return items, err
}
