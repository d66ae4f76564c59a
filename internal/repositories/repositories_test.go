package repositories_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"gym_club_backend/internal/database"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenAndInit(filepath.Join(t.TempDir(), "gym.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func sampleMember(name, phone, code string) *models.Member {
	m := &models.Member{
		Name:              name,
		Phone:             phone,
		SubscriptionType:  models.SubscriptionMonthly,
		SubscriptionStart: "2025-01-15",
		SubscriptionEnd:   "2025-02-15",
		PaymentType:       models.PaymentCash,
		TotalAmount:       500,
		PaidAmount:        200,
		RemainingAmount:   300,
	}
	if code != "" {
		m.MemberCode = strPtr(code)
	}
	return m
}

func TestMemberRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewMemberRepository(db)

	m := sampleMember("Omar Hassan", "01001234567", "7")
	id, err := repo.CreateMember(db, m)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id <= 0 || m.CreatedAt == "" {
		t.Fatalf("expected id and created_at, got %d %q", id, m.CreatedAt)
	}

	got, err := repo.GetMemberByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Omar Hassan" || got.RemainingAmount != 300 || got.MemberCode == nil || *got.MemberCode != "7" {
		t.Fatalf("unexpected member %+v", got)
	}

	got.PaidAmount = 500
	got.RemainingAmount = 0
	if err := repo.UpdateMember(db, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.GetMemberByID(id)
	if again.PaidAmount != 500 || again.CreatedAt != m.CreatedAt {
		t.Fatalf("update did not persist or touched created_at: %+v", again)
	}

	if err := repo.DeleteMember(db, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetMemberByID(id); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.DeleteMember(db, id); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("deleting twice should be not found, got %v", err)
	}
	missing := sampleMember("Ghost", "0", "")
	missing.ID = 9999
	if err := repo.UpdateMember(db, missing); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("updating a missing id should be not found, got %v", err)
	}
}

func TestMemberRepositorySearch(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewMemberRepository(db)
	for _, m := range []*models.Member{
		sampleMember("Mona Ali", "0100111", "A-1"),
		sampleMember("ahmed MONIR", "0122999", ""),
		sampleMember("Karim 100%", "0155000", ""),
	} {
		if _, err := repo.CreateMember(db, m); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byName, err := repo.SearchMembers("MON")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 name matches, got %d", len(byName))
	}

	byPhone, _ := repo.SearchMembers("0122")
	if len(byPhone) != 1 || byPhone[0].Name != "ahmed MONIR" {
		t.Fatalf("unexpected phone matches %+v", byPhone)
	}

	byCode, _ := repo.SearchMembers("a-1")
	if len(byCode) != 1 || byCode[0].Name != "Mona Ali" {
		t.Fatalf("unexpected code matches %+v", byCode)
	}

	literal, _ := repo.SearchMembers("0%")
	if len(literal) != 1 || literal[0].Name != "Karim 100%" {
		t.Fatalf("percent must match literally, got %+v", literal)
	}
}

func TestMemberRepositorySearchNonASCII(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewMemberRepository(db)
	for _, m := range []*models.Member{
		sampleMember("Élodie", "0100001", ""),
		sampleMember("Ахмет", "0100002", "Ж-7"),
		sampleMember("Ahmed", "0100003", ""),
	} {
		if _, err := repo.CreateMember(db, m); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	cases := []struct {
		term string
		want string
	}{
		{"Élodie", "Élodie"},
		{"élodie", "Élodie"},
		{"ÉLODIE", "Élodie"},
		{"Ахмет", "Ахмет"},
		{"АХМЕТ", "Ахмет"},
		{"ахм", "Ахмет"},
		{"ж-7", "Ахмет"},
		{"Ahmed", "Ahmed"},
	}
	for _, tc := range cases {
		got, err := repo.SearchMembers(tc.term)
		if err != nil {
			t.Fatalf("search %q: %v", tc.term, err)
		}
		if len(got) != 1 || got[0].Name != tc.want {
			t.Errorf("search %q: expected [%s], got %+v", tc.term, tc.want, got)
		}
	}
}

func TestMemberCodeUniqueAndMax(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewMemberRepository(db)

	if max, err := repo.MaxMemberCode(); err != nil || max != 0 {
		t.Fatalf("empty max = %d, %v", max, err)
	}
	for _, code := range []string{"3", "12", "VIP"} {
		if _, err := repo.CreateMember(db, sampleMember("m"+code, "1", code)); err != nil {
			t.Fatalf("create %s: %v", code, err)
		}
	}
	if _, err := repo.CreateMember(db, sampleMember("dup", "1", "12")); !errors.Is(err, repositories.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}
	if _, err := repo.CreateMember(db, sampleMember("no code", "1", "")); err != nil {
		t.Fatalf("members without a code never collide: %v", err)
	}
	if _, err := repo.CreateMember(db, sampleMember("no code 2", "1", "")); err != nil {
		t.Fatalf("members without a code never collide: %v", err)
	}
	max, err := repo.MaxMemberCode()
	if err != nil || max != 12 {
		t.Fatalf("max = %d, %v", max, err)
	}
}

func TestPTClientSessions(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPTClientRepository(db)
	c := &models.PTClient{
		ClientName: "Nour", Phone: "011", CoachName: "Coach Adel",
		TotalSessions: 10, RemainingSessions: 10, TotalAmount: 1000, RemainingAmount: 1000,
		StartDate: "2025-01-01", EndDate: "2025-02-01",
	}
	id, err := repo.CreatePTClient(db, c)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.UpdateSessions(db, id, 4, 6); err != nil {
		t.Fatalf("update sessions: %v", err)
	}
	got, _ := repo.GetPTClientByID(id)
	if got.CompletedSessions != 4 || got.RemainingSessions != 6 {
		t.Fatalf("unexpected counters %+v", got)
	}
	if err := repo.UpdateSessions(db, id+100, 1, 1); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAncillaryKindsAreSeparate(t *testing.T) {
	db := newTestDB(t)
	inbody, err := repositories.NewAncillaryRepository(db, models.ServiceInBody)
	if err != nil {
		t.Fatalf("inbody repo: %v", err)
	}
	dayuse, _ := repositories.NewAncillaryRepository(db, models.ServiceDayUse)
	if _, err := repositories.NewAncillaryRepository(db, "sauna"); err == nil {
		t.Fatalf("unknown kind must be rejected")
	}

	if _, err := inbody.CreateService(db, &models.AncillaryService{ClientName: "A", Phone: "1", Price: 150, StaffName: "S"}); err != nil {
		t.Fatalf("create inbody: %v", err)
	}
	list, _ := inbody.GetServices()
	other, _ := dayuse.GetServices()
	if len(list) != 1 || len(other) != 0 || list[0].Kind != models.ServiceInBody {
		t.Fatalf("kinds leaked: inbody=%v dayuse=%v", list, other)
	}
	if err := dayuse.DeleteService(db, list[0].ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("deleting through the other kind must miss, got %v", err)
	}
}

func TestSettingsUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSettingsRepository(db)
	if _, err := repo.GetSetting(models.SettingGymName); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	for _, v := range []string{"Iron Temple", "Iron Temple Gym"} {
		if err := repo.UpsertSetting(db, &models.AppSetting{Key: models.SettingGymName, Value: v}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	all, _ := repo.GetSettings()
	if len(all) != 1 || all[0].Value != "Iron Temple Gym" {
		t.Fatalf("unexpected settings %+v", all)
	}
}
