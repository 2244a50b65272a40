package services

import (
	"contest_backend/internal/repositories"
	"contest_backend/internal/services/dto"

	"gorm.io/gorm"
)

const domainUser = "user"

type UserService interface {
	ListUsers(db *gorm.DB, q dto.ListUsersQuery) (*dto.Paginated[dto.UserResponse], error)
	CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(db *gorm.DB, id string) (*dto.UserResponse, error)
	UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(db *gorm.DB, id string) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(db *gorm.DB, q dto.ListUsersQuery) (*dto.Paginated[dto.UserResponse], error) {
	q.Normalize()
	filter := repositories.UserFilter{Role: q.Role, Email: q.Email}

	users, total, err := s.userRepo.List(db, filter.Scope(), q.Page, q.Limit)
	if err != nil {
		return nil, handleRepoError(err, domainUser)
	}
	page := dto.NewPaginated(dto.MapSlice(users, dto.NewUserResponse), q.Page, q.Limit, total)
	return &page, nil
}

func (s *userService) CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := req.ToModel()
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, handleRepoError(err, domainUser)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) GetUser(db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainUser)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.Update(db, id, req.ToUpdates())
	if err != nil {
		return nil, handleRepoError(err, domainUser)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.Delete(db, id)
	if err != nil {
		return nil, handleRepoError(err, domainUser)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
