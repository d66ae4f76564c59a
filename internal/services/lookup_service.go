package services

import (
	"context"
	"fmt"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/lookup"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
)

// LookupService answers the quick "is this member's subscription valid" check.
type LookupService interface {
	LookupMember(ctx context.Context, term string) (*models.LookupResult, error)
}

type lookupService struct {
	memberRepo repositories.MemberRepository
	lookuper   *lookup.Lookuper
	now        Clock
}

func NewLookupService(memberRepo repositories.MemberRepository, clock Clock) LookupService {
	return &lookupService{memberRepo: memberRepo, lookuper: lookup.New(), now: clockOrNow(clock)}
}

// LookupMember returns the first matching member with its derived status.
// A lookup overtaken by a newer one fails with lookup.ErrSuperseded.
func (s *lookupService) LookupMember(ctx context.Context, term string) (*models.LookupResult, error) {
	members, err := s.memberRepo.GetMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to load members for lookup: %w", err)
	}
	m, found, err := s.lookuper.Find(ctx, term, members)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.LookupResult{Found: false}, nil
	}
	view := calc.View(m, s.now())
	return &models.LookupResult{Found: true, Member: &view}, nil
}
