package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
	"gym_club_backend/pkg/utils"
)

var (
	ErrServiceNotFound    = errors.New("service record not found")
	ErrServiceValidation  = errors.New("service data validation error")
	ErrUnknownServiceKind = errors.New("unknown service kind")
)

// AncillaryRequest records one InBody scan or Day-Use pass.
type AncillaryRequest struct {
	ClientName string  `json:"client_name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	StaffName  string  `json:"staff_name" binding:"required"`
	Notes      *string `json:"notes"`
}

// AncillaryService bills one-off services, keyed by kind.
type AncillaryService interface {
	AddService(kind string, req AncillaryRequest) (*models.AncillaryService, error)
	GetServices(kind string) ([]models.AncillaryService, error)
	DeleteService(kind string, serviceID int64) error
}

type ancillaryService struct {
	repos map[string]repositories.AncillaryRepository
	db    *sql.DB
}

// NewAncillaryService builds the service over one repository per kind.
func NewAncillaryService(db *sql.DB, repos ...repositories.AncillaryRepository) AncillaryService {
	byKind := make(map[string]repositories.AncillaryRepository, len(repos))
	for _, r := range repos {
		byKind[r.Kind()] = r
	}
	return &ancillaryService{repos: byKind, db: db}
}

func (s *ancillaryService) repo(kind string) (repositories.AncillaryRepository, error) {
	r, ok := s.repos[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceKind, kind)
	}
	return r, nil
}

func (s *ancillaryService) AddService(kind string, req AncillaryRequest) (*models.AncillaryService, error) {
	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	name, err := requireText(ErrServiceValidation, "client name", req.ClientName)
	if err != nil {
		return nil, err
	}
	phone, err := requireText(ErrServiceValidation, "phone", req.Phone)
	if err != nil {
		return nil, err
	}
	staff, err := requireText(ErrServiceValidation, "staff name", req.StaffName)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegative(ErrServiceValidation, "price", req.Price); err != nil {
		return nil, err
	}

	record := &models.AncillaryService{ClientName: name, Phone: phone, Price: req.Price, StaffName: staff, Notes: utils.TrimPtr(req.Notes)}
	if _, err := repo.CreateService(s.db, record); err != nil {
		return nil, fmt.Errorf("failed to add %s service: %w", kind, err)
	}
	utils.LogInfo("Service billed", map[string]interface{}{"kind": kind, "service_id": record.ID, "price": record.Price})
	return record, nil
}

func (s *ancillaryService) GetServices(kind string) ([]models.AncillaryService, error) {
	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	records, err := repo.GetServices()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s services: %w", kind, err)
	}
	return records, nil
}

func (s *ancillaryService) DeleteService(kind string, serviceID int64) error {
	repo, err := s.repo(kind)
	if err != nil {
		return err
	}
	if err := repo.DeleteService(s.db, serviceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete %s service: %w", kind, err)
	}
	return nil
}
