package services_test

import (
	"context"
	"testing"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
)

func TestLookupMemberReportsStatus(t *testing.T) {
	f := newFixture(t)
	req := memberReq("Omar Said", "01055556666", "2025-01-01", models.SubscriptionMonthly)
	req.MemberCode = strPtr("42")
	mustCreateMember(t, f.memberSvc, req)
	svc := services.NewLookupService(f.members, clock)

	res, err := svc.LookupMember(context.Background(), "42")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !res.Found || res.Member.Name != "Omar Said" || !res.Member.Expired || res.Member.Status != models.StatusExpired {
		t.Fatalf("unexpected lookup result %+v", res)
	}

	res, err = svc.LookupMember(context.Background(), "nobody")
	if err != nil || res.Found || res.Member != nil {
		t.Fatalf("expected not found, got %+v %v", res, err)
	}
}
