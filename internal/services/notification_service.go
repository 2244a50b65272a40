package services

import (
	"time"

	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"

	"gorm.io/gorm"
)

const domainNotification = "notification"

type NotificationService interface {
	ListNotifications(db *gorm.DB, q dto.ListNotificationsQuery) (*dto.Paginated[dto.NotificationResponse], error)
	CreateNotification(db *gorm.DB, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetNotification(db *gorm.DB, id string) (*dto.NotificationResponse, error)
	UpdateNotification(db *gorm.DB, id string, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	DeleteNotification(db *gorm.DB, id string) (*dto.NotificationResponse, error)
	MarkAsRead(db *gorm.DB, id string) (*dto.NotificationResponse, error)
	MarkAllAsRead(db *gorm.DB, userID string) (*dto.MarkAllReadResponse, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	now              func() time.Time
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		now:              time.Now,
	}
}

func (s *notificationService) ListNotifications(db *gorm.DB, q dto.ListNotificationsQuery) (*dto.Paginated[dto.NotificationResponse], error) {
	q.Normalize()
	filter := repositories.NotificationFilter{
		UserID:   q.UserID,
		IsRead:   q.IsRead,
		Archived: q.Archived,
	}

	items, total, err := s.notificationRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	page := dto.NewPaginated(dto.MapSlice(items, dto.NewNotificationResponse), q.Page, q.Limit, total)
	return &page, nil
}

func (s *notificationService) CreateNotification(db *gorm.DB, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if err := ensureExists(func() (bool, error) { return s.userRepo.Exists(db, req.UserID) }, domainUser); err != nil {
		return nil, err
	}

	n := req.ToModel()
	if err := s.notificationRepo.Create(db, n); err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	resp := dto.NewNotificationResponse(n)
	return &resp, nil
}

func (s *notificationService) GetNotification(db *gorm.DB, id string) (*dto.NotificationResponse, error) {
	n, err := s.notificationRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	resp := dto.NewNotificationResponse(n)
	return &resp, nil
}

func (s *notificationService) UpdateNotification(db *gorm.DB, id string, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	n, err := s.notificationRepo.Update(db, id, req.ToUpdates(s.now()))
	if err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	resp := dto.NewNotificationResponse(n)
	return &resp, nil
}

func (s *notificationService) DeleteNotification(db *gorm.DB, id string) (*dto.NotificationResponse, error) {
	n, err := s.notificationRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	resp := dto.NewNotificationResponse(n)
	return &resp, nil
}

func (s *notificationService) MarkAsRead(db *gorm.DB, id string) (*dto.NotificationResponse, error) {
	n, err := s.notificationRepo.MarkAsRead(db, id, s.now())
	if err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	resp := dto.NewNotificationResponse(n)
	return &resp, nil
}

// MarkAllAsRead возвращает число уведомлений, которые были непрочитанными
func (s *notificationService) MarkAllAsRead(db *gorm.DB, userID string) (*dto.MarkAllReadResponse, error) {
	if err := ensureExists(func() (bool, error) { return s.userRepo.Exists(db, userID) }, domainUser); err != nil {
		return nil, err
	}

	count, err := s.notificationRepo.MarkAllAsRead(db, userID, s.now())
	if err != nil {
		return nil, handleRepoError(err, domainNotification)
	}
	return &dto.MarkAllReadResponse{
		Message:      "All notifications marked as read",
		UpdatedCount: count,
	}, nil
}
