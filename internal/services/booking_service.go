package services

import (
	"accverse/internal/models"
	"accverse/internal/repositories"
)

type BookingService interface {
	ListAppointments() ([]*models.Appointment, error)
	ListServices() ([]*models.Service, error)
	UpdateService(id int, name string, duration int) error
	BookingConfig() (*models.BookingConfig, error)
	UpdateBookingConfig(id int, upd *models.BookingConfigUpdate) error
}

type bookingService struct {
	repo repositories.BookingRepository
}

func NewBookingService(repo repositories.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) ListAppointments() ([]*models.Appointment, error) {
	return s.repo.ListAppointments()
}

func (s *bookingService) ListServices() ([]*models.Service, error) {
	return s.repo.ListServices()
}

func (s *bookingService) UpdateService(id int, name string, duration int) error {
	return s.repo.UpdateService(id, name, duration)
}

func (s *bookingService) BookingConfig() (*models.BookingConfig, error) {
	return s.repo.GetBookingConfig()
}

func (s *bookingService) UpdateBookingConfig(id int, upd *models.BookingConfigUpdate) error {
	return s.repo.UpdateBookingConfig(id, upd)
}
