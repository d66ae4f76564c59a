package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
	"gym_club_backend/pkg/utils"
)

// --- Custom Service Errors for Member ---
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMemberValidation = errors.New("member data validation error")
	ErrMemberCodeExists = errors.New("member code already exists")
)

// MemberRequest carries every mutable member field. It is used for both
// registration and the edit form: an update replaces the whole row.
type MemberRequest struct {
	MemberCode        *string `json:"member_code"`
	Name              string  `json:"name" binding:"required"`
	Phone             string  `json:"phone" binding:"required"`
	PhotoPath         *string `json:"photo_path"`
	SubscriptionType  string  `json:"subscription_type" binding:"required"`
	SubscriptionStart string  `json:"subscription_start" binding:"required"`
	SubscriptionEnd   string  `json:"subscription_end"` // derived from start + type when empty
	PaymentType       string  `json:"payment_type" binding:"required"`
	TotalAmount       float64 `json:"total_amount" binding:"gte=0"`
	PaidAmount        float64 `json:"paid_amount" binding:"gte=0"`
	Notes             *string `json:"notes"`
}

// MemberService defines member registration, editing and lookup.
type MemberService interface {
	CreateMember(req MemberRequest) (*models.Member, error)
	GetMemberByID(memberID int64) (*models.Member, error)
	GetMembers() ([]models.MemberView, error)
	SearchMembers(term string) ([]models.MemberView, error)
	UpdateMember(memberID int64, req MemberRequest) (*models.Member, error)
	DeleteMember(memberID int64) error
	NextMemberCode() (string, error)
	SetMemberPhoto(memberID int64, photoPath string) error
}

type memberService struct {
	memberRepo repositories.MemberRepository
	db         *sql.DB
	now        Clock
}

// NewMemberService creates a new instance of MemberService. A nil clock uses time.Now.
func NewMemberService(repo repositories.MemberRepository, db *sql.DB, clock Clock) MemberService {
	return &memberService{
		memberRepo: repo,
		db:         db,
		now:        clockOrNow(clock),
	}
}

// buildMember validates req and produces the row to persist, deriving the
// end date and the remaining amount.
func (s *memberService) buildMember(req MemberRequest) (*models.Member, error) {
	name, err := requireText(ErrMemberValidation, "name", req.Name)
	if err != nil {
		return nil, err
	}
	phone, err := requireText(ErrMemberValidation, "phone", req.Phone)
	if err != nil {
		return nil, err
	}

	subType := normalizeEnum(req.SubscriptionType)
	if !oneOf(subType, models.SubscriptionTypes) {
		return nil, fmt.Errorf("%w: subscription type must be one of %s", ErrMemberValidation, strings.Join(models.SubscriptionTypes, ", "))
	}
	payType := normalizeEnum(req.PaymentType)
	if !oneOf(payType, models.PaymentTypes) {
		return nil, fmt.Errorf("%w: payment type must be one of %s", ErrMemberValidation, strings.Join(models.PaymentTypes, ", "))
	}

	start, err := requireDate(ErrMemberValidation, "subscription start", req.SubscriptionStart)
	if err != nil {
		return nil, err
	}
	var end string
	if strings.TrimSpace(req.SubscriptionEnd) == "" {
		end, err = calc.EndDateString(start, subType)
	} else {
		end, err = requireDate(ErrMemberValidation, "subscription end", req.SubscriptionEnd)
	}
	if err != nil {
		return nil, err
	}

	if err := requireNonNegative(ErrMemberValidation, "total amount", req.TotalAmount); err != nil {
		return nil, err
	}
	if err := requireNonNegative(ErrMemberValidation, "paid amount", req.PaidAmount); err != nil {
		return nil, err
	}

	return &models.Member{
		MemberCode:        utils.TrimPtr(req.MemberCode),
		Name:              name,
		Phone:             phone,
		PhotoPath:         utils.TrimPtr(req.PhotoPath),
		SubscriptionType:  subType,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
		PaymentType:       payType,
		TotalAmount:       req.TotalAmount,
		PaidAmount:        req.PaidAmount,
		RemainingAmount:   calc.Remaining(req.TotalAmount, req.PaidAmount),
		Notes:             utils.TrimPtr(req.Notes),
	}, nil
}

func (s *memberService) CreateMember(req MemberRequest) (*models.Member, error) {
	member, err := s.buildMember(req)
	if err != nil {
		return nil, err
	}

	id, err := s.memberRepo.CreateMember(s.db, member)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrMemberCodeExists
		}
		return nil, fmt.Errorf("failed to create member in repository: %w", err)
	}
	utils.LogInfo("Member registered", map[string]interface{}{"member_id": id, "subscription_type": member.SubscriptionType})
	return s.memberRepo.GetMemberByID(id)
}

func (s *memberService) GetMemberByID(memberID int64) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member by ID: %w", err)
	}
	return member, nil
}

func (s *memberService) GetMembers() ([]models.MemberView, error) {
	members, err := s.memberRepo.GetMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return calc.Views(members, s.now()), nil
}

func (s *memberService) SearchMembers(term string) ([]models.MemberView, error) {
	if strings.TrimSpace(term) == "" {
		return s.GetMembers()
	}
	members, err := s.memberRepo.SearchMembers(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	return calc.Views(members, s.now()), nil
}

func (s *memberService) UpdateMember(memberID int64, req MemberRequest) (*models.Member, error) {
	existing, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member for update: %w", err)
	}

	member, err := s.buildMember(req)
	if err != nil {
		return nil, err
	}
	member.ID = existing.ID
	member.CreatedAt = existing.CreatedAt

	if err := s.memberRepo.UpdateMember(s.db, member); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrMemberCodeExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member in repository: %w", err)
	}
	if member.PhotoPath != nil && utils.StringValue(member.PhotoPath) != utils.StringValue(existing.PhotoPath) {
		if err := s.memberRepo.UpdateMemberPhoto(s.db, memberID, *member.PhotoPath); err != nil {
			return nil, fmt.Errorf("failed to update member photo: %w", err)
		}
	}
	utils.LogInfo("Member updated", map[string]interface{}{"member_id": memberID})
	return s.memberRepo.GetMemberByID(memberID)
}

func (s *memberService) DeleteMember(memberID int64) error {
	if err := s.memberRepo.DeleteMember(s.db, memberID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}
	utils.LogInfo("Member deleted", map[string]interface{}{"member_id": memberID})
	return nil
}

// NextMemberCode proposes the next display code: the highest numeric code plus one.
// Codes freed by deletions below the maximum are not reused.
func (s *memberService) NextMemberCode() (string, error) {
	highest, err := s.memberRepo.MaxMemberCode()
	if err != nil {
		return "", fmt.Errorf("failed to compute next member code: %w", err)
	}
	return strconv.FormatInt(highest+1, 10), nil
}

func (s *memberService) SetMemberPhoto(memberID int64, photoPath string) error {
	if err := s.memberRepo.UpdateMemberPhoto(s.db, memberID, photoPath); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to set member photo: %w", err)
	}
	return nil
}
