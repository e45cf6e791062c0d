package services

import (
	"accverse/internal/models"
	"accverse/internal/repositories"
)

type BillingService interface {
	PaymentsForUser(userID int) ([]*models.FormPayment, error)
	AllPayments() ([]*models.FormPayment, error)
	PricingConfigs() ([]*models.FormPricingConfig, error)
	UpdatePricingConfig(id int, upd *models.FormPricingConfigUpdate) (*models.FormPricingConfig, error)
}

type billingService struct {
	payments repositories.PaymentRepository
	pricing  repositories.PricingRepository
}

func NewBillingService(payments repositories.PaymentRepository, pricing repositories.PricingRepository) BillingService {
	return &billingService{payments: payments, pricing: pricing}
}

func (s *billingService) PaymentsForUser(userID int) ([]*models.FormPayment, error) {
	return s.payments.ListByUser(userID)
}

func (s *billingService) AllPayments() ([]*models.FormPayment, error) {
	return s.payments.ListAll()
}

func (s *billingService) PricingConfigs() ([]*models.FormPricingConfig, error) {
	return s.pricing.List()
}

// UpdatePricingConfig applies a partial update and returns the fresh record.
func (s *billingService) UpdatePricingConfig(id int, upd *models.FormPricingConfigUpdate) (*models.FormPricingConfig, error) {
	if err := s.pricing.Update(id, upd); err != nil {
		return nil, err
	}
	return s.pricing.GetByID(id)
}
