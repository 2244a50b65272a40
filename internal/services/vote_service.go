package services

import (
	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"
	"contest_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const domainVote = "vote"

// VoteRecorder получает уведомление о каждом сохраненном голосе (метрики)
type VoteRecorder interface {
	VoteRecorded(voteType string)
}

type VoteService interface {
	ListVotes(db *gorm.DB, q dto.ListVotesQuery) (*dto.Paginated[dto.VoteResponse], error)
	CreateVote(db *gorm.DB, req *dto.CreateVoteRequest) (*dto.VoteResponse, error)
	GetVote(db *gorm.DB, id string) (*dto.VoteResponse, error)
	UpdateVote(db *gorm.DB, id string, req *dto.UpdateVoteRequest) (*dto.VoteResponse, error)
	DeleteVote(db *gorm.DB, id string) (*dto.VoteResponse, error)
}

type voteService struct {
	voteRepo    repositories.VoteRepository
	contestRepo repositories.ContestRepository
	profileRepo repositories.ProfileRepository
	recorder    VoteRecorder
}

func NewVoteService(
	voteRepo repositories.VoteRepository,
	contestRepo repositories.ContestRepository,
	profileRepo repositories.ProfileRepository,
	recorder VoteRecorder,
) VoteService {
	return &voteService{
		voteRepo:    voteRepo,
		contestRepo: contestRepo,
		profileRepo: profileRepo,
		recorder:    recorder,
	}
}

func (s *voteService) ListVotes(db *gorm.DB, q dto.ListVotesQuery) (*dto.Paginated[dto.VoteResponse], error) {
	q.Normalize()
	filter := repositories.VoteFilter{
		ContestID: q.ContestID,
		VoterID:   q.VoterID,
		VoteeID:   q.VoteeID,
		Type:      q.Type,
	}

	votes, total, err := s.voteRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainVote)
	}
	page := dto.NewPaginated(dto.MapSlice(votes, dto.NewVoteResponse), q.Page, q.Limit, total)
	return &page, nil
}

func (s *voteService) CreateVote(db *gorm.DB, req *dto.CreateVoteRequest) (*dto.VoteResponse, error) {
	// валидатор уже проверяет nefield, но сервис может вызываться и напрямую
	if req.VoterID == req.VoteeID {
		return nil, apperrors.ErrSelfVote
	}

	if err := ensureExists(func() (bool, error) { return s.contestRepo.Exists(db, req.ContestID) }, domainContest); err != nil {
		return nil, err
	}
	for _, id := range []string{req.VoterID, req.VoteeID} {
		if err := ensureExists(func() (bool, error) { return s.profileRepo.Exists(db, id) }, domainProfile); err != nil {
			return nil, err
		}
	}

	vote := req.ToModel()
	if err := s.voteRepo.Create(db, vote); err != nil {
		return nil, handleRepoError(err, domainVote)
	}
	if s.recorder != nil {
		s.recorder.VoteRecorded(string(vote.Type))
	}

	resp := dto.NewVoteResponse(vote)
	return &resp, nil
}

func (s *voteService) GetVote(db *gorm.DB, id string) (*dto.VoteResponse, error) {
	vote, err := s.voteRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainVote)
	}
	resp := dto.NewVoteResponse(vote)
	return &resp, nil
}

func (s *voteService) UpdateVote(db *gorm.DB, id string, req *dto.UpdateVoteRequest) (*dto.VoteResponse, error) {
	vote, err := s.voteRepo.Update(db, id, req.ToUpdates())
	if err != nil {
		return nil, handleRepoError(err, domainVote)
	}
	resp := dto.NewVoteResponse(vote)
	return &resp, nil
}

func (s *voteService) DeleteVote(db *gorm.DB, id string) (*dto.VoteResponse, error) {
	vote, err := s.voteRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainVote)
	}
	resp := dto.NewVoteResponse(vote)
	return &resp, nil
}
