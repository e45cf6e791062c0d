package services

import (
	"accverse/internal/models"
	"accverse/internal/repositories"
)

type NotificationService interface {
	List(filter models.NotificationFilter) ([]*models.Notification, error)
	MarkRead(id int) (*models.Notification, error)
	Archive(id int) error
	Unarchive(id int) (*models.Notification, error)
	MarkAllRead(userID *int) error
}

type notificationService struct {
	repo repositories.NotificationRepository
}

func NewNotificationService(repo repositories.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(filter models.NotificationFilter) ([]*models.Notification, error) {
	return s.repo.List(filter)
}

func (s *notificationService) MarkRead(id int) (*models.Notification, error) {
	if err := s.repo.MarkRead(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

func (s *notificationService) Archive(id int) error {
	return s.repo.SetArchived(id, true)
}

func (s *notificationService) Unarchive(id int) (*models.Notification, error) {
	if err := s.repo.SetArchived(id, false); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

func (s *notificationService) MarkAllRead(userID *int) error {
	return s.repo.MarkAllRead(userID)
}
