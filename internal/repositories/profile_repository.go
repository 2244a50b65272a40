package repositories

import (
	"contest_backend/internal/models"

	"gorm.io/gorm"
)

type ProfileFilter struct {
	UserID  string
	City    string
	Country string
	Gender  string
}

func (f ProfileFilter) Scope() Scope {
	return chain(
		eq("user_id", f.UserID),
		eq("city", f.City),
		eq("country", f.Country),
		eq("gender", f.Gender),
	)
}

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	Exists(db *gorm.DB, id string) (bool, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.Profile, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.Profile, error)
	Delete(db *gorm.DB, id string) (*models.Profile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
}

type ProfileRepositoryImpl struct {
	CRUD[models.Profile]
}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}
