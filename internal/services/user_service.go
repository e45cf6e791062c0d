package services

import (
	"accverse/internal/models"
	"accverse/internal/repositories"
)

type UserService interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	ListUsers() ([]*models.User, error)
	ListClients() ([]*models.User, error)
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) ListUsers() ([]*models.User, error) {
	return s.repo.List()
}

func (s *userService) ListClients() ([]*models.User, error) {
	return s.repo.ListClients()
}
