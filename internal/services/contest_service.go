package services

import (
	"time"

	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"
	"contest_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const domainContest = "contest"

type ContestService interface {
	ListContests(db *gorm.DB, q dto.ListContestsQuery) (*dto.Paginated[dto.ContestResponse], error)
	CreateContest(db *gorm.DB, req *dto.CreateContestRequest) (*dto.ContestResponse, error)
	GetContest(db *gorm.DB, id string) (*dto.ContestResponse, error)
	UpdateContest(db *gorm.DB, id string, req *dto.UpdateContestRequest) (*dto.ContestResponse, error)
	DeleteContest(db *gorm.DB, id string) (*dto.ContestResponse, error)
	GetLeaderboard(db *gorm.DB, contestID string, q dto.PaginationQuery) (*dto.Paginated[dto.LeaderboardEntry], error)
}

type contestService struct {
	contestRepo repositories.ContestRepository
	voteRepo    repositories.VoteRepository
	now         func() time.Time
}

func NewContestService(contestRepo repositories.ContestRepository, voteRepo repositories.VoteRepository) ContestService {
	return &contestService{
		contestRepo: contestRepo,
		voteRepo:    voteRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *contestService) ListContests(db *gorm.DB, q dto.ListContestsQuery) (*dto.Paginated[dto.ContestResponse], error) {
	q.Normalize()
	filter := repositories.ContestFilter{Q: q.Q, Active: q.Active, Now: s.now()}

	contests, total, err := s.contestRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainContest)
	}
	page := dto.NewPaginated(dto.MapSlice(contests, dto.NewContestResponse), q.Page, q.Limit, total)
	return &page, nil
}

func (s *contestService) CreateContest(db *gorm.DB, req *dto.CreateContestRequest) (*dto.ContestResponse, error) {
	contest := req.ToModel()
	if err := s.contestRepo.Create(db, contest); err != nil {
		return nil, handleRepoError(err, domainContest)
	}
	resp := dto.NewContestResponse(contest)
	return &resp, nil
}

func (s *contestService) GetContest(db *gorm.DB, id string) (*dto.ContestResponse, error) {
	contest, err := s.contestRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainContest)
	}
	resp := dto.NewContestResponse(contest)
	return &resp, nil
}

// UpdateContest: даты проверяются после слияния с текущими значениями,
// чтобы нельзя было передать только endDate раньше сохраненного startDate
func (s *contestService) UpdateContest(db *gorm.DB, id string, req *dto.UpdateContestRequest) (*dto.ContestResponse, error) {
	var updated *dto.ContestResponse
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := s.contestRepo.FindByID(tx, id)
		if err != nil {
			return handleRepoError(err, domainContest)
		}

		start, end := current.StartDate, current.EndDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if !end.After(start) {
			return apperrors.ErrInvalidContestDates
		}

		contest, err := s.contestRepo.Update(tx, id, req.ToUpdates())
		if err != nil {
			return handleRepoError(err, domainContest)
		}
		resp := dto.NewContestResponse(contest)
		updated = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *contestService) DeleteContest(db *gorm.DB, id string) (*dto.ContestResponse, error) {
	contest, err := s.contestRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainContest)
	}
	resp := dto.NewContestResponse(contest)
	return &resp, nil
}

func (s *contestService) GetLeaderboard(db *gorm.DB, contestID string, q dto.PaginationQuery) (*dto.Paginated[dto.LeaderboardEntry], error) {
	if err := ensureExists(func() (bool, error) { return s.contestRepo.Exists(db, contestID) }, domainContest); err != nil {
		return nil, err
	}

	q.Normalize()
	rows, total, err := s.voteRepo.Leaderboard(db, contestID, q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainVote)
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.LeaderboardEntry{
			ProfileID:  r.ProfileID,
			TotalVotes: r.TotalVotes,
			FreeVotes:  r.FreeVotes,
			PaidVotes:  r.PaidVotes,
		})
	}
	page := dto.NewPaginated(entries, q.Page, q.Limit, total)
	return &page, nil
}
