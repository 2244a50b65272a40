package repositories

import (
	"contest_backend/internal/models"

	"gorm.io/gorm"
)

type UserFilter struct {
	Role  string
	Email string
}

func (f UserFilter) Scope() Scope {
	return chain(eq("role", f.Role), eq("email", f.Email))
}

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	Exists(db *gorm.DB, id string) (bool, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.User, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.User, error)
	Delete(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
}

type UserRepositoryImpl struct {
	CRUD[models.User]
}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
