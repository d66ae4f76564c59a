package services_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"gym_club_backend/internal/database"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
	"gym_club_backend/internal/services"
)

// fixedNow is the pinned "today" for every service test.
var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

type fixture struct {
	db        *sql.DB
	members   repositories.MemberRepository
	visitors  repositories.VisitorRepository
	pt        repositories.PTClientRepository
	inbody    repositories.AncillaryRepository
	dayuse    repositories.AncillaryRepository
	memberSvc services.MemberService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenAndInit(filepath.Join(t.TempDir(), "gym.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	inbody, err := repositories.NewAncillaryRepository(db, models.ServiceInBody)
	if err != nil {
		t.Fatalf("inbody repo: %v", err)
	}
	dayuse, err := repositories.NewAncillaryRepository(db, models.ServiceDayUse)
	if err != nil {
		t.Fatalf("dayuse repo: %v", err)
	}
	f := &fixture{
		db:       db,
		members:  repositories.NewMemberRepository(db),
		visitors: repositories.NewVisitorRepository(db),
		pt:       repositories.NewPTClientRepository(db),
		inbody:   inbody,
		dayuse:   dayuse,
	}
	f.memberSvc = services.NewMemberService(f.members, db, clock)
	return f
}

func memberReq(name, phone, start, subType string) services.MemberRequest {
	return services.MemberRequest{
		Name:              name,
		Phone:             phone,
		SubscriptionType:  subType,
		SubscriptionStart: start,
		PaymentType:       models.PaymentCash,
		TotalAmount:       600,
		PaidAmount:        250,
	}
}

func mustCreateMember(t *testing.T, svc services.MemberService, req services.MemberRequest) *models.Member {
	t.Helper()
	m, err := svc.CreateMember(req)
	if err != nil {
		t.Fatalf("create member %s: %v", req.Name, err)
	}
	return m
}

func strPtr(s string) *string { return &s }

func repositoriesSettings(f *fixture) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(f.db)
}
