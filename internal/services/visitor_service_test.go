package services_test

import (
	"errors"
	"testing"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
)

func TestVisitorLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := services.NewVisitorService(f.visitors, f.db)

	v, err := svc.AddVisitor(services.VisitorRequest{Name: "Walk In", Phone: "0100", RecordedBy: "Reem", Notes: strPtr("  ")})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if v.Notes != nil {
		t.Fatalf("blank notes should be stored as NULL")
	}
	if _, err := svc.AddVisitor(services.VisitorRequest{Name: "No Staff", Phone: "0100"}); !errors.Is(err, services.ErrVisitorValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	list, _ := svc.GetVisitors()
	if len(list) != 1 {
		t.Fatalf("expected one visitor, got %d", len(list))
	}
	if err := svc.DeleteVisitor(v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteVisitor(v.ID); !errors.Is(err, services.ErrVisitorNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAncillaryServiceKinds(t *testing.T) {
	f := newFixture(t)
	svc := services.NewAncillaryService(f.db, f.inbody, f.dayuse)

	req := services.AncillaryRequest{ClientName: "Guest", Phone: "0111", Price: 200, StaffName: "Reem"}
	rec, err := svc.AddService(models.ServiceDayUse, req)
	if err != nil {
		t.Fatalf("add dayuse: %v", err)
	}
	if rec.Kind != models.ServiceDayUse {
		t.Fatalf("kind = %s", rec.Kind)
	}
	inbody, _ := svc.GetServices(models.ServiceInBody)
	if len(inbody) != 0 {
		t.Fatalf("inbody must be independent of dayuse")
	}
	if _, err := svc.GetServices("massage"); !errors.Is(err, services.ErrUnknownServiceKind) {
		t.Fatalf("expected unknown kind, got %v", err)
	}
	if err := svc.DeleteService(models.ServiceInBody, rec.ID); !errors.Is(err, services.ErrServiceNotFound) {
		t.Fatalf("wrong kind delete should miss, got %v", err)
	}
	if err := svc.DeleteService(models.ServiceDayUse, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	f := newFixture(t)
	svc := services.NewSettingsService(repositoriesSettings(f), f.db)

	all, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if all[models.SettingGymName] != "Gym Club" {
		t.Fatalf("default gym name = %q", all[models.SettingGymName])
	}
	if _, err := svc.SaveSetting(services.SettingRequest{Key: models.SettingGymName, Value: " Iron House "}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v, _ := svc.GetSetting(models.SettingGymName); v != "Iron House" {
		t.Fatalf("saved value = %q", v)
	}
	if _, err := svc.SaveSetting(services.SettingRequest{Key: "theme", Value: "dark"}); !errors.Is(err, services.ErrUnknownSetting) {
		t.Fatalf("expected unknown setting, got %v", err)
	}
}
