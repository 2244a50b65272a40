package repositories

import (
	"time"

	"contest_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationFilter struct {
	UserID   string
	IsRead   *bool
	Archived *bool
}

func (f NotificationFilter) Scope() Scope {
	return chain(
		eq("user_id", f.UserID),
		eqBool("is_read", f.IsRead),
		eqBool("archived", f.Archived),
	)
}

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByID(db *gorm.DB, id string) (*models.Notification, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.Notification, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.Notification, error)
	Delete(db *gorm.DB, id string) (*models.Notification, error)
	MarkAsRead(db *gorm.DB, id string, at time.Time) (*models.Notification, error)
	MarkAllAsRead(db *gorm.DB, userID string, at time.Time) (int64, error)
}

type NotificationRepositoryImpl struct {
	CRUD[models.Notification]
}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

// MarkAsRead идемпотентен: у уже прочитанного уведомления readAt не меняется
func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id string, at time.Time) (*models.Notification, error) {
	n, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return n, nil
	}

	err = db.Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(db, id)
}

// MarkAllAsRead - один UPDATE по непрочитанным уведомлениям пользователя.
// Возвращает количество реально измененных строк.
func (r *NotificationRepositoryImpl) MarkAllAsRead(db *gorm.DB, userID string, at time.Time) (int64, error) {
	res := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
