package services

import (
	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"

	"gorm.io/gorm"
)

const domainParticipation = "participation"

type ParticipationService interface {
	ListParticipations(db *gorm.DB, q dto.ListParticipationsQuery) (*dto.Paginated[dto.ParticipationResponse], error)
	CreateParticipation(db *gorm.DB, contestID string, req *dto.CreateParticipationRequest) (*dto.ParticipationResponse, error)
	GetParticipation(db *gorm.DB, id string) (*dto.ParticipationResponse, error)
	UpdateParticipation(db *gorm.DB, id string, req *dto.UpdateParticipationRequest) (*dto.ParticipationResponse, error)
	DeleteParticipation(db *gorm.DB, id string) (*dto.ParticipationResponse, error)
}

type participationService struct {
	participationRepo repositories.ParticipationRepository
	contestRepo       repositories.ContestRepository
	profileRepo       repositories.ProfileRepository
}

func NewParticipationService(
	participationRepo repositories.ParticipationRepository,
	contestRepo repositories.ContestRepository,
	profileRepo repositories.ProfileRepository,
) ParticipationService {
	return &participationService{
		participationRepo: participationRepo,
		contestRepo:       contestRepo,
		profileRepo:       profileRepo,
	}
}

func (s *participationService) ListParticipations(db *gorm.DB, q dto.ListParticipationsQuery) (*dto.Paginated[dto.ParticipationResponse], error) {
	q.Normalize()
	filter := repositories.ParticipationFilter{
		ContestID:       q.ContestID,
		ProfileID:       q.ProfileID,
		IsApproved:      q.IsApproved,
		IsParticipating: q.IsParticipating,
	}

	items, total, err := s.participationRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainParticipation)
	}
	page := dto.NewPaginated(dto.MapSlice(items, dto.NewParticipationResponse), q.Page, q.Limit, total)
	return &page, nil
}

// CreateParticipation: повторная заявка профиля в тот же конкурс дает 409
func (s *participationService) CreateParticipation(db *gorm.DB, contestID string, req *dto.CreateParticipationRequest) (*dto.ParticipationResponse, error) {
	if err := ensureExists(func() (bool, error) { return s.contestRepo.Exists(db, contestID) }, domainContest); err != nil {
		return nil, err
	}
	if err := ensureExists(func() (bool, error) { return s.profileRepo.Exists(db, req.ProfileID) }, domainProfile); err != nil {
		return nil, err
	}

	p := req.ToModel(contestID)
	if err := s.participationRepo.Create(db, p); err != nil {
		return nil, handleRepoError(err, domainParticipation)
	}
	resp := dto.NewParticipationResponse(p)
	return &resp, nil
}

func (s *participationService) GetParticipation(db *gorm.DB, id string) (*dto.ParticipationResponse, error) {
	p, err := s.participationRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainParticipation)
	}
	resp := dto.NewParticipationResponse(p)
	return &resp, nil
}

func (s *participationService) UpdateParticipation(db *gorm.DB, id string, req *dto.UpdateParticipationRequest) (*dto.ParticipationResponse, error) {
	p, err := s.participationRepo.Update(db, id, req.ToUpdates())
	if err != nil {
		return nil, handleRepoError(err, domainParticipation)
	}
	resp := dto.NewParticipationResponse(p)
	return &resp, nil
}

func (s *participationService) DeleteParticipation(db *gorm.DB, id string) (*dto.ParticipationResponse, error) {
	p, err := s.participationRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainParticipation)
	}
	resp := dto.NewParticipationResponse(p)
	return &resp, nil
}
