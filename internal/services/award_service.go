package services

import (
	"contest_backend/internal/models"
	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"

	"gorm.io/gorm"
)

const domainAward = "award"

type AwardService interface {
	ListAwards(db *gorm.DB, q dto.ListAwardsQuery) (*dto.Paginated[dto.AwardResponse], error)
	CreateAward(db *gorm.DB, contestID string, req *dto.CreateAwardRequest) (*dto.AwardResponse, error)
	GetAward(db *gorm.DB, id string) (*dto.AwardResponse, error)
	UpdateAward(db *gorm.DB, id string, req *dto.UpdateAwardRequest) (*dto.AwardResponse, error)
	DeleteAward(db *gorm.DB, id string) (*dto.AwardResponse, error)
}

type awardService struct {
	awardRepo   repositories.AwardRepository
	contestRepo repositories.ContestRepository
}

func NewAwardService(awardRepo repositories.AwardRepository, contestRepo repositories.ContestRepository) AwardService {
	return &awardService{
		awardRepo:   awardRepo,
		contestRepo: contestRepo,
	}
}

func (s *awardService) ListAwards(db *gorm.DB, q dto.ListAwardsQuery) (*dto.Paginated[dto.AwardResponse], error) {
	q.Normalize()
	filter := repositories.AwardFilter{ContestID: q.ContestID}

	awards, total, err := s.awardRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainAward)
	}
	page := dto.NewPaginated(dto.MapSlice(awards, dto.NewAwardResponse), q.Page, q.Limit, total)
	return &page, nil
}

func (s *awardService) CreateAward(db *gorm.DB, contestID string, req *dto.CreateAwardRequest) (*dto.AwardResponse, error) {
	if err := ensureExists(func() (bool, error) { return s.contestRepo.Exists(db, contestID) }, domainContest); err != nil {
		return nil, err
	}

	award := &models.Award{
		Name:      req.Name,
		Icon:      req.Icon,
		ContestID: contestID,
	}
	if err := s.awardRepo.Create(db, award); err != nil {
		return nil, handleRepoError(err, domainAward)
	}
	resp := dto.NewAwardResponse(award)
	return &resp, nil
}

func (s *awardService) GetAward(db *gorm.DB, id string) (*dto.AwardResponse, error) {
	award, err := s.awardRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainAward)
	}
	resp := dto.NewAwardResponse(award)
	return &resp, nil
}

func (s *awardService) UpdateAward(db *gorm.DB, id string, req *dto.UpdateAwardRequest) (*dto.AwardResponse, error) {
	award, err := s.awardRepo.Update(db, id, req.ToUpdates())
	if err != nil {
		return nil, handleRepoError(err, domainAward)
	}
	resp := dto.NewAwardResponse(award)
	return &resp, nil
}

func (s *awardService) DeleteAward(db *gorm.DB, id string) (*dto.AwardResponse, error) {
	award, err := s.awardRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainAward)
	}
	resp := dto.NewAwardResponse(award)
	return &resp, nil
}
