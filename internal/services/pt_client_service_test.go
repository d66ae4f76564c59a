package services_test

import (
	"errors"
	"testing"

	"gym_club_backend/internal/services"
)

func ptReq() services.PTClientRequest {
	return services.PTClientRequest{
		ClientName:    "Nour",
		Phone:         "0109",
		CoachName:     "Coach Adel",
		TotalSessions: 12,
		TotalAmount:   2400,
		PaidAmount:    1000,
		StartDate:     "2025-03-01",
	}
}

func TestAddPTClientDerivesRemaining(t *testing.T) {
	f := newFixture(t)
	svc := services.NewPTClientService(f.pt, f.db)

	c, err := svc.AddPTClient(ptReq())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.RemainingSessions != 12 || c.RemainingAmount != 1400 {
		t.Fatalf("unexpected derived values %+v", c)
	}
	if c.EndDate != "2025-04-01" {
		t.Fatalf("default end date = %s", c.EndDate)
	}

	bad := ptReq()
	bad.CompletedSessions = 13
	if _, err := svc.AddPTClient(bad); !errors.Is(err, services.ErrPTClientValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePTSessionKeepsInvariant(t *testing.T) {
	f := newFixture(t)
	svc := services.NewPTClientService(f.pt, f.db)
	c, err := svc.AddPTClient(ptReq())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, completed := range []int{1, 5, 12} {
		got, err := svc.UpdateSessions(c.ID, completed)
		if err != nil {
			t.Fatalf("update %d: %v", completed, err)
		}
		if got.RemainingSessions != got.TotalSessions-got.CompletedSessions || got.CompletedSessions != completed {
			t.Fatalf("invariant broken: %+v", got)
		}
	}
	if _, err := svc.UpdateSessions(c.ID, 13); !errors.Is(err, services.ErrPTClientValidation) {
		t.Fatalf("expected validation error past total, got %v", err)
	}
	if _, err := svc.UpdateSessions(c.ID, -1); !errors.Is(err, services.ErrPTClientValidation) {
		t.Fatalf("expected validation error for negative, got %v", err)
	}
	if _, err := svc.UpdateSessions(c.ID+50, 1); !errors.Is(err, services.ErrPTClientNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.DeletePTClient(c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeletePTClient(c.ID); !errors.Is(err, services.ErrPTClientNotFound) {
		t.Fatalf("second delete should fail, got %v", err)
	}
}
