package services

import (
	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"

	"gorm.io/gorm"
)

const domainProfile = "profile"

type ProfileService interface {
	ListProfiles(db *gorm.DB, q dto.ListProfilesQuery) (*dto.Paginated[dto.ProfileResponse], error)
	CreateProfile(db *gorm.DB, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) ListProfiles(db *gorm.DB, q dto.ListProfilesQuery) (*dto.Paginated[dto.ProfileResponse], error) {
	q.Normalize()
	filter := repositories.ProfileFilter{
		UserID:  q.UserID,
		City:    q.City,
		Country: q.Country,
		Gender:  q.Gender,
	}

	profiles, total, err := s.profileRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainProfile)
	}
	page := dto.NewPaginated(dto.MapSlice(profiles, dto.NewProfileResponse), q.Page, q.Limit, total)
	return &page, nil
}

// CreateProfile: у пользователя может быть только один профиль (409 при повторе)
func (s *profileService) CreateProfile(db *gorm.DB, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if err := ensureExists(func() (bool, error) { return s.userRepo.Exists(db, req.UserID) }, domainUser); err != nil {
		return nil, err
	}

	profile := req.ToModel()
	if err := s.profileRepo.Create(db, profile); err != nil {
		return nil, handleRepoError(err, domainProfile)
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) GetProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainProfile)
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateProfile(db *gorm.DB, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.Update(db, id, req.ToUpdates())
	if err != nil {
		return nil, handleRepoError(err, domainProfile)
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) DeleteProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainProfile)
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}
