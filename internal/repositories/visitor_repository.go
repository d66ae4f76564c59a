package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_club_backend/internal/models"
)

// VisitorRepository stores walk-in visitors. Visitors are never updated.
type VisitorRepository interface {
	CreateVisitor(executor SQLExecutor, visitor *models.Visitor) (int64, error)
	GetVisitors() ([]models.Visitor, error)
	DeleteVisitor(executor SQLExecutor, id int64) error
}

type visitorRepository struct {
	db *sql.DB
}

// NewVisitorRepository creates a new instance of VisitorRepository.
func NewVisitorRepository(db *sql.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) CreateVisitor(executor SQLExecutor, visitor *models.Visitor) (int64, error) {
	if visitor.CreatedAt == "" {
		visitor.CreatedAt = time.Now().Format(time.RFC3339)
	}
	result, err := executor.Exec(
		`INSERT INTO visitors (name, phone, notes, recorded_by, created_at) VALUES (?, ?, ?, ?, ?)`,
		visitor.Name, visitor.Phone, visitor.Notes, visitor.RecordedBy, visitor.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating visitor: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new visitor id: %v", ErrDatabaseError, err)
	}
	visitor.ID = id
	return id, nil
}

func (r *visitorRepository) GetVisitors() ([]models.Visitor, error) {
	rows, err := r.db.Query(`SELECT id, name, phone, notes, recorded_by, created_at FROM visitors ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying visitors: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	visitors := []models.Visitor{}
	for rows.Next() {
		var v models.Visitor
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.Notes, &v.RecordedBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning visitor: %v", ErrDatabaseError, err)
		}
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating visitor rows: %v", ErrDatabaseError, err)
	}
	return visitors, nil
}

func (r *visitorRepository) DeleteVisitor(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM visitors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting visitor ID %d: %v", ErrDatabaseError, id, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for deleting visitor ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}
