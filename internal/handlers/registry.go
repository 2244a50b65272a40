package handlers

import "contest_backend/internal/services"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UserHandler          *UserHandler
	ProfileHandler       *ProfileHandler
	ContestHandler       *ContestHandler
	AwardHandler         *AwardHandler
	ParticipationHandler *ParticipationHandler
	VoteHandler          *VoteHandler
	MediaHandler         *MediaHandler
	NotificationHandler  *NotificationHandler
	HealthHandler        *HealthHandler
}

func NewAppHandlers(s *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		UserHandler:          NewUserHandler(base, s.UserService),
		ProfileHandler:       NewProfileHandler(base, s.ProfileService),
		ContestHandler:       NewContestHandler(base, s.ContestService),
		AwardHandler:         NewAwardHandler(base, s.AwardService),
		ParticipationHandler: NewParticipationHandler(base, s.ParticipationService),
		VoteHandler:          NewVoteHandler(base, s.VoteService),
		MediaHandler:         NewMediaHandler(base, s.MediaService),
		NotificationHandler:  NewNotificationHandler(base, s.NotificationService),
		HealthHandler:        NewHealthHandler(base),
	}
}
