package services

import (
	"contest_backend/internal/repositories"
	"contest_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	UserService          UserService
	ProfileService       ProfileService
	ContestService       ContestService
	AwardService         AwardService
	ParticipationService ParticipationService
	VoteService          VoteService
	MediaService         MediaService
	NotificationService  NotificationService
}

// Dependencies - внешние зависимости сервисов, не являющиеся репозиториями
type Dependencies struct {
	Storage      storage.Storage
	MediaQueue   MediaQueue
	VoteRecorder VoteRecorder
	Upload       UploadConfig
}

// NewServiceContainer собирает сервисы поверх stateless-репозиториев
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	contestRepo := repositories.NewContestRepository()
	awardRepo := repositories.NewAwardRepository()
	participationRepo := repositories.NewParticipationRepository()
	voteRepo := repositories.NewVoteRepository()
	mediaRepo := repositories.NewMediaRepository()
	notificationRepo := repositories.NewNotificationRepository()

	return &ServiceContainer{
		UserService:          NewUserService(userRepo),
		ProfileService:       NewProfileService(profileRepo, userRepo),
		ContestService:       NewContestService(contestRepo, voteRepo),
		AwardService:         NewAwardService(awardRepo, contestRepo),
		ParticipationService: NewParticipationService(participationRepo, contestRepo, profileRepo),
		VoteService:          NewVoteService(voteRepo, contestRepo, profileRepo, deps.VoteRecorder),
		MediaService:         NewMediaService(mediaRepo, profileRepo, deps.Storage, deps.MediaQueue, deps.Upload),
		NotificationService:  NewNotificationService(notificationRepo, userRepo),
	}
}
