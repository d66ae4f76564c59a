package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
	"gym_club_backend/pkg/utils"
)

var (
	ErrPTClientNotFound   = errors.New("PT client not found")
	ErrPTClientValidation = errors.New("PT client data validation error")
)

// PTClientRequest enrolls a client in a session package.
type PTClientRequest struct {
	ClientCode        *string `json:"client_code"`
	ClientName        string  `json:"client_name" binding:"required"`
	Phone             string  `json:"phone" binding:"required"`
	CoachName         string  `json:"coach_name" binding:"required"`
	TotalSessions     int     `json:"total_sessions" binding:"gte=0"`
	CompletedSessions int     `json:"completed_sessions" binding:"gte=0"`
	TotalAmount       float64 `json:"total_amount" binding:"gte=0"`
	PaidAmount        float64 `json:"paid_amount" binding:"gte=0"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           string  `json:"end_date"` // one month after start when empty
	Notes             *string `json:"notes"`
}

// SessionUpdateRequest sets how many sessions a client has completed.
type SessionUpdateRequest struct {
	CompletedSessions int `json:"completed_sessions" binding:"gte=0"`
}

// PTClientService manages personal-training enrollments.
type PTClientService interface {
	AddPTClient(req PTClientRequest) (*models.PTClient, error)
	GetPTClients() ([]models.PTClient, error)
	GetPTClientByID(clientID int64) (*models.PTClient, error)
	UpdateSessions(clientID int64, completed int) (*models.PTClient, error)
	DeletePTClient(clientID int64) error
}

type ptClientService struct {
	ptRepo repositories.PTClientRepository
	db     *sql.DB
}

func NewPTClientService(repo repositories.PTClientRepository, db *sql.DB) PTClientService {
	return &ptClientService{ptRepo: repo, db: db}
}

func (s *ptClientService) AddPTClient(req PTClientRequest) (*models.PTClient, error) {
	name, err := requireText(ErrPTClientValidation, "client name", req.ClientName)
	if err != nil {
		return nil, err
	}
	phone, err := requireText(ErrPTClientValidation, "phone", req.Phone)
	if err != nil {
		return nil, err
	}
	coach, err := requireText(ErrPTClientValidation, "coach name", req.CoachName)
	if err != nil {
		return nil, err
	}
	if req.TotalSessions < 0 || req.CompletedSessions < 0 {
		return nil, fmt.Errorf("%w: session counts cannot be negative", ErrPTClientValidation)
	}
	if req.CompletedSessions > req.TotalSessions {
		return nil, fmt.Errorf("%w: completed sessions cannot exceed total sessions", ErrPTClientValidation)
	}
	if err := requireNonNegative(ErrPTClientValidation, "total amount", req.TotalAmount); err != nil {
		return nil, err
	}
	if err := requireNonNegative(ErrPTClientValidation, "paid amount", req.PaidAmount); err != nil {
		return nil, err
	}
	start, err := requireDate(ErrPTClientValidation, "start date", req.StartDate)
	if err != nil {
		return nil, err
	}
	var end string
	if strings.TrimSpace(req.EndDate) == "" {
		end, err = calc.EndDateString(start, models.SubscriptionMonthly)
	} else {
		end, err = requireDate(ErrPTClientValidation, "end date", req.EndDate)
	}
	if err != nil {
		return nil, err
	}

	client := &models.PTClient{
		ClientCode:        utils.TrimPtr(req.ClientCode),
		ClientName:        name,
		Phone:             phone,
		CoachName:         coach,
		TotalSessions:     req.TotalSessions,
		CompletedSessions: req.CompletedSessions,
		RemainingSessions: calc.RemainingSessions(req.TotalSessions, req.CompletedSessions),
		TotalAmount:       req.TotalAmount,
		PaidAmount:        req.PaidAmount,
		RemainingAmount:   calc.Remaining(req.TotalAmount, req.PaidAmount),
		StartDate:         start,
		EndDate:           end,
		Notes:             utils.TrimPtr(req.Notes),
	}
	id, err := s.ptRepo.CreatePTClient(s.db, client)
	if err != nil {
		return nil, fmt.Errorf("failed to add PT client: %w", err)
	}
	utils.LogInfo("PT client enrolled", map[string]interface{}{"pt_client_id": id, "coach": coach})
	return s.ptRepo.GetPTClientByID(id)
}

func (s *ptClientService) GetPTClients() ([]models.PTClient, error) {
	clients, err := s.ptRepo.GetPTClients()
	if err != nil {
		return nil, fmt.Errorf("failed to get PT clients: %w", err)
	}
	return clients, nil
}

func (s *ptClientService) GetPTClientByID(clientID int64) (*models.PTClient, error) {
	client, err := s.ptRepo.GetPTClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPTClientNotFound
		}
		return nil, fmt.Errorf("failed to get PT client: %w", err)
	}
	return client, nil
}

// UpdateSessions records the completed-session count and recomputes what remains.
func (s *ptClientService) UpdateSessions(clientID int64, completed int) (*models.PTClient, error) {
	client, err := s.GetPTClientByID(clientID)
	if err != nil {
		return nil, err
	}
	if completed < 0 || completed > client.TotalSessions {
		return nil, fmt.Errorf("%w: completed sessions must be between 0 and %d", ErrPTClientValidation, client.TotalSessions)
	}
	remaining := calc.RemainingSessions(client.TotalSessions, completed)
	if err := s.ptRepo.UpdateSessions(s.db, clientID, completed, remaining); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPTClientNotFound
		}
		return nil, fmt.Errorf("failed to update PT sessions: %w", err)
	}
	utils.LogInfo("PT session recorded", map[string]interface{}{"pt_client_id": clientID, "completed": completed, "remaining": remaining})
	return s.ptRepo.GetPTClientByID(clientID)
}

func (s *ptClientService) DeletePTClient(clientID int64) error {
	if err := s.ptRepo.DeletePTClient(s.db, clientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPTClientNotFound
		}
		return fmt.Errorf("failed to delete PT client: %w", err)
	}
	return nil
}
