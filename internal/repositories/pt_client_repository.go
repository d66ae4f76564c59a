package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_club_backend/internal/models"
)

// PTClientRepository stores personal-training enrollments.
type PTClientRepository interface {
	CreatePTClient(executor SQLExecutor, client *models.PTClient) (int64, error)
	GetPTClientByID(id int64) (*models.PTClient, error)
	GetPTClients() ([]models.PTClient, error)
	UpdateSessions(executor SQLExecutor, id int64, completed, remaining int) error
	DeletePTClient(executor SQLExecutor, id int64) error
}

type ptClientRepository struct {
	db *sql.DB
}

// NewPTClientRepository creates a new instance of PTClientRepository.
func NewPTClientRepository(db *sql.DB) PTClientRepository {
	return &ptClientRepository{db: db}
}

const ptClientColumns = `id, client_code, client_name, phone, coach_name, total_sessions, completed_sessions,
	remaining_sessions, total_amount, paid_amount, remaining_amount, start_date, end_date, notes, created_at`

func scanPTClient(s scanner) (models.PTClient, error) {
	var c models.PTClient
	err := s.Scan(
		&c.ID, &c.ClientCode, &c.ClientName, &c.Phone, &c.CoachName, &c.TotalSessions, &c.CompletedSessions,
		&c.RemainingSessions, &c.TotalAmount, &c.PaidAmount, &c.RemainingAmount, &c.StartDate, &c.EndDate,
		&c.Notes, &c.CreatedAt,
	)
	return c, err
}

func (r *ptClientRepository) CreatePTClient(executor SQLExecutor, client *models.PTClient) (int64, error) {
	query := `INSERT INTO pt_clients (client_code, client_name, phone, coach_name, total_sessions, completed_sessions,
	            remaining_sessions, total_amount, paid_amount, remaining_amount, start_date, end_date, notes, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if client.CreatedAt == "" {
		client.CreatedAt = time.Now().Format(time.RFC3339)
	}
	result, err := executor.Exec(query,
		client.ClientCode, client.ClientName, client.Phone, client.CoachName, client.TotalSessions,
		client.CompletedSessions, client.RemainingSessions, client.TotalAmount, client.PaidAmount,
		client.RemainingAmount, client.StartDate, client.EndDate, client.Notes, client.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating PT client: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new PT client id: %v", ErrDatabaseError, err)
	}
	client.ID = id
	return id, nil
}

func (r *ptClientRepository) GetPTClientByID(id int64) (*models.PTClient, error) {
	c, err := scanPTClient(r.db.QueryRow(`SELECT `+ptClientColumns+` FROM pt_clients WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting PT client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &c, nil
}

func (r *ptClientRepository) GetPTClients() ([]models.PTClient, error) {
	rows, err := r.db.Query(`SELECT ` + ptClientColumns + ` FROM pt_clients ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying PT clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	clients := []models.PTClient{}
	for rows.Next() {
		c, err := scanPTClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning PT client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating PT client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateSessions writes the completed and remaining session counters together.
func (r *ptClientRepository) UpdateSessions(executor SQLExecutor, id int64, completed, remaining int) error {
	result, err := executor.Exec(
		`UPDATE pt_clients SET completed_sessions = ?, remaining_sessions = ? WHERE id = ?`,
		completed, remaining, id,
	)
	if err != nil {
		return fmt.Errorf("%w: updating sessions of PT client ID %d: %v", ErrDatabaseError, id, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for PT client ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}

func (r *ptClientRepository) DeletePTClient(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM pt_clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting PT client ID %d: %v", ErrDatabaseError, id, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for deleting PT client ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}
