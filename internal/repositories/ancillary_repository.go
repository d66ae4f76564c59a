package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_club_backend/internal/models"
)

// AncillaryRepository stores one kind of ancillary service (InBody or Day-Use).
// Both kinds share a shape but live in separate tables.
type AncillaryRepository interface {
	Kind() string
	CreateService(executor SQLExecutor, service *models.AncillaryService) (int64, error)
	GetServices() ([]models.AncillaryService, error)
	DeleteService(executor SQLExecutor, id int64) error
}

var ancillaryTables = map[string]string{
	models.ServiceInBody: "inbody_services",
	models.ServiceDayUse: "dayuse_services",
}

type ancillaryRepository struct {
	db    *sql.DB
	kind  string
	table string
}

// NewAncillaryRepository creates the repository for one service kind.
func NewAncillaryRepository(db *sql.DB, kind string) (AncillaryRepository, error) {
	table, ok := ancillaryTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown ancillary service kind %q", kind)
	}
	return &ancillaryRepository{db: db, kind: kind, table: table}, nil
}

func (r *ancillaryRepository) Kind() string { return r.kind }

func (r *ancillaryRepository) CreateService(executor SQLExecutor, service *models.AncillaryService) (int64, error) {
	if service.CreatedAt == "" {
		service.CreatedAt = time.Now().Format(time.RFC3339)
	}
	service.Kind = r.kind
	result, err := executor.Exec(
		`INSERT INTO `+r.table+` (client_name, phone, price, staff_name, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		service.ClientName, service.Phone, service.Price, service.StaffName, service.Notes, service.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating %s service: %v", ErrDatabaseError, r.kind, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new %s service id: %v", ErrDatabaseError, r.kind, err)
	}
	service.ID = id
	return id, nil
}

func (r *ancillaryRepository) GetServices() ([]models.AncillaryService, error) {
	rows, err := r.db.Query(`SELECT id, client_name, phone, price, staff_name, notes, created_at FROM ` + r.table + ` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s services: %v", ErrDatabaseError, r.kind, err)
	}
	defer rows.Close()

	services := []models.AncillaryService{}
	for rows.Next() {
		s := models.AncillaryService{Kind: r.kind}
		if err := rows.Scan(&s.ID, &s.ClientName, &s.Phone, &s.Price, &s.StaffName, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning %s service: %v", ErrDatabaseError, r.kind, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s service rows: %v", ErrDatabaseError, r.kind, err)
	}
	return services, nil
}

func (r *ancillaryRepository) DeleteService(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM `+r.table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting %s service ID %d: %v", ErrDatabaseError, r.kind, id, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for %s service ID %d: %v", ErrDatabaseError, r.kind, id, err)
	}
	return nil
}
