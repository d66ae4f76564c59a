package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gym_club_backend/internal/models"
)

// MemberRepository defines the interface for member-related database operations.
type MemberRepository interface {
	CreateMember(executor SQLExecutor, member *models.Member) (int64, error)
	GetMemberByID(id int64) (*models.Member, error)
	GetMembers() ([]models.Member, error)
	SearchMembers(term string) ([]models.Member, error)
	UpdateMember(executor SQLExecutor, member *models.Member) error
	UpdateMemberPhoto(executor SQLExecutor, id int64, photoPath string) error
	DeleteMember(executor SQLExecutor, id int64) error
	MaxMemberCode() (int64, error)
}

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new instance of MemberRepository.
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, member_code, name, phone, photo_path, subscription_type, subscription_start,
	subscription_end, payment_type, total_amount, paid_amount, remaining_amount, notes, created_at`

func scanMember(s scanner) (models.Member, error) {
	var m models.Member
	err := s.Scan(
		&m.ID, &m.MemberCode, &m.Name, &m.Phone, &m.PhotoPath, &m.SubscriptionType, &m.SubscriptionStart,
		&m.SubscriptionEnd, &m.PaymentType, &m.TotalAmount, &m.PaidAmount, &m.RemainingAmount, &m.Notes, &m.CreatedAt,
	)
	return m, err
}

// CreateMember inserts a new member and assigns its id and creation timestamp.
func (r *memberRepository) CreateMember(executor SQLExecutor, member *models.Member) (int64, error) {
	query := `INSERT INTO members (member_code, name, phone, photo_path, subscription_type, subscription_start,
	            subscription_end, payment_type, total_amount, paid_amount, remaining_amount, notes, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if member.CreatedAt == "" {
		member.CreatedAt = time.Now().Format(time.RFC3339)
	}

	result, err := executor.Exec(query,
		member.MemberCode, member.Name, member.Phone, member.PhotoPath, member.SubscriptionType, member.SubscriptionStart,
		member.SubscriptionEnd, member.PaymentType, member.TotalAmount, member.PaidAmount, member.RemainingAmount,
		member.Notes, member.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: member code already used", ErrDuplicateKey)
		}
		return 0, fmt.Errorf("%w: creating member: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new member id: %v", ErrDatabaseError, err)
	}
	member.ID = id
	return id, nil
}

// GetMemberByID retrieves a member by id.
func (r *memberRepository) GetMemberByID(id int64) (*models.Member, error) {
	row := r.db.QueryRow(`SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting member by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &m, nil
}

// GetMembers returns every member, newest first.
func (r *memberRepository) GetMembers() ([]models.Member, error) {
	return r.queryMembers(`SELECT ` + memberColumns + ` FROM members ORDER BY id DESC`)
}

// SearchMembers matches the term as a case-insensitive substring of name, phone or member code.
// Folding happens in Go because SQLite's LOWER and LIKE only fold ASCII.
func (r *memberRepository) SearchMembers(term string) ([]models.Member, error) {
	members, err := r.GetMembers()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return members, nil
	}

	matched := []models.Member{}
	for _, m := range members {
		code := ""
		if m.MemberCode != nil {
			code = *m.MemberCode
		}
		if containsFold(m.Name, needle) || containsFold(m.Phone, needle) || containsFold(code, needle) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// containsFold reports whether lowerNeedle occurs in s after Unicode lower-casing.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func (r *memberRepository) queryMembers(query string, args ...interface{}) ([]models.Member, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning member: %v", ErrDatabaseError, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating member rows: %v", ErrDatabaseError, err)
	}
	return members, nil
}

// UpdateMember replaces every mutable column. id, photo_path and created_at are left alone.
func (r *memberRepository) UpdateMember(executor SQLExecutor, member *models.Member) error {
	query := `UPDATE members SET
	            member_code = ?, name = ?, phone = ?, subscription_type = ?, subscription_start = ?,
	            subscription_end = ?, payment_type = ?, total_amount = ?, paid_amount = ?,
	            remaining_amount = ?, notes = ?
	          WHERE id = ?`

	result, err := executor.Exec(query,
		member.MemberCode, member.Name, member.Phone, member.SubscriptionType, member.SubscriptionStart,
		member.SubscriptionEnd, member.PaymentType, member.TotalAmount, member.PaidAmount,
		member.RemainingAmount, member.Notes, member.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: member code already used", ErrDuplicateKey)
		}
		return fmt.Errorf("%w: updating member ID %d: %v", ErrDatabaseError, member.ID, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for updating member ID %d: %v", ErrDatabaseError, member.ID, err)
	}
	return nil
}

// UpdateMemberPhoto records the stored photo path of a member.
func (r *memberRepository) UpdateMemberPhoto(executor SQLExecutor, id int64, photoPath string) error {
	result, err := executor.Exec(`UPDATE members SET photo_path = ? WHERE id = ?`, photoPath, id)
	if err != nil {
		return fmt.Errorf("%w: updating photo of member ID %d: %v", ErrDatabaseError, id, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for member photo ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}

// DeleteMember removes a member. A missing id yields ErrNotFound.
func (r *memberRepository) DeleteMember(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting member ID %d: %v", ErrDatabaseError, id, err)
	}
	if err := requireAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: getting rows affected for deleting member ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}

// MaxMemberCode returns the largest purely numeric member code, or 0 when none exist.
func (r *memberRepository) MaxMemberCode() (int64, error) {
	rows, err := r.db.Query(`SELECT member_code FROM members WHERE member_code IS NOT NULL AND member_code <> ''`)
	if err != nil {
		return 0, fmt.Errorf("%w: querying member codes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var highest int64
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return 0, fmt.Errorf("%w: scanning member code: %v", ErrDatabaseError, err)
		}
		n, err := strconv.ParseInt(code, 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: iterating member codes: %v", ErrDatabaseError, err)
	}
	return highest, nil
}
