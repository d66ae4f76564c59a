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
	ErrVisitorNotFound   = errors.New("visitor not found")
	ErrVisitorValidation = errors.New("visitor data validation error")
)

// VisitorRequest records a walk-in.
type VisitorRequest struct {
	Name       string  `json:"name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Notes      *string `json:"notes"`
	RecordedBy string  `json:"recorded_by" binding:"required"`
}

// VisitorService logs walk-in visitors.
type VisitorService interface {
	AddVisitor(req VisitorRequest) (*models.Visitor, error)
	GetVisitors() ([]models.Visitor, error)
	DeleteVisitor(visitorID int64) error
}

type visitorService struct {
	visitorRepo repositories.VisitorRepository
	db          *sql.DB
}

func NewVisitorService(repo repositories.VisitorRepository, db *sql.DB) VisitorService {
	return &visitorService{visitorRepo: repo, db: db}
}

func (s *visitorService) AddVisitor(req VisitorRequest) (*models.Visitor, error) {
	name, err := requireText(ErrVisitorValidation, "name", req.Name)
	if err != nil {
		return nil, err
	}
	phone, err := requireText(ErrVisitorValidation, "phone", req.Phone)
	if err != nil {
		return nil, err
	}
	recordedBy, err := requireText(ErrVisitorValidation, "recorded by", req.RecordedBy)
	if err != nil {
		return nil, err
	}

	visitor := &models.Visitor{Name: name, Phone: phone, Notes: utils.TrimPtr(req.Notes), RecordedBy: recordedBy}
	if _, err := s.visitorRepo.CreateVisitor(s.db, visitor); err != nil {
		return nil, fmt.Errorf("failed to add visitor: %w", err)
	}
	utils.LogInfo("Visitor recorded", map[string]interface{}{"visitor_id": visitor.ID, "recorded_by": recordedBy})
	return visitor, nil
}

func (s *visitorService) GetVisitors() ([]models.Visitor, error) {
	visitors, err := s.visitorRepo.GetVisitors()
	if err != nil {
		return nil, fmt.Errorf("failed to get visitors: %w", err)
	}
	return visitors, nil
}

func (s *visitorService) DeleteVisitor(visitorID int64) error {
	if err := s.visitorRepo.DeleteVisitor(s.db, visitorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVisitorNotFound
		}
		return fmt.Errorf("failed to delete visitor: %w", err)
	}
	return nil
}
