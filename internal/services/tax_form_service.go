package services

import (
	"accverse/internal/models"
	"accverse/internal/repositories"
)

type TaxFormService interface {
	FormsForUser(userID int) ([]*models.TaxForm, error)
	FormsForUserByType(userID int, formType string) ([]*models.TaxForm, error)
	FormsByType(formType string) ([]*models.TaxForm, error)
	FormByID(formID string) (*models.TaxForm, error)
	FilesForForm(formID string) ([]models.TaxFormFileInfo, error)
	FileInForm(formID, fileName string) (*models.TaxFormFileInfo, error)
	FileBlob(fileID int) (*models.TaxFormFile, error)
}

type taxFormService struct {
	forms repositories.TaxFormRepository
	files repositories.TaxFormFileRepository
}

func NewTaxFormService(forms repositories.TaxFormRepository, files repositories.TaxFormFileRepository) TaxFormService {
	return &taxFormService{forms: forms, files: files}
}

func (s *taxFormService) FormsForUser(userID int) ([]*models.TaxForm, error) {
	return s.forms.ListByUser(userID)
}

func (s *taxFormService) FormsForUserByType(userID int, formType string) ([]*models.TaxForm, error) {
	return s.forms.ListByUserAndType(userID, formType)
}

func (s *taxFormService) FormsByType(formType string) ([]*models.TaxForm, error) {
	return s.forms.ListByType(formType)
}

func (s *taxFormService) FormByID(formID string) (*models.TaxForm, error) {
	return s.forms.GetByID(formID)
}

func (s *taxFormService) FilesForForm(formID string) ([]models.TaxFormFileInfo, error) {
	return s.files.ListForForm(formID)
}

func (s *taxFormService) FileInForm(formID, fileName string) (*models.TaxFormFileInfo, error) {
	return s.files.FindInForm(formID, fileName)
}

func (s *taxFormService) FileBlob(fileID int) (*models.TaxFormFile, error) {
	return s.files.GetBlob(fileID)
}
