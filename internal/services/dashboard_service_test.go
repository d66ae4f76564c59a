package services_test

import (
	"testing"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
)

func TestDashboardStatsCountsByExpiry(t *testing.T) {
	f := newFixture(t)
	mustCreateMember(t, f.memberSvc, memberReq("Active One", "0101", "2025-03-01", models.SubscriptionMonthly))
	mustCreateMember(t, f.memberSvc, memberReq("Active Two", "0102", "2025-02-25", models.SubscriptionMonthly))
	mustCreateMember(t, f.memberSvc, memberReq("Lapsed", "0103", "2025-01-01", models.SubscriptionMonthly))

	pt := services.NewPTClientService(f.pt, f.db)
	if _, err := pt.AddPTClient(ptReq()); err != nil {
		t.Fatalf("add pt: %v", err)
	}
	extras := services.NewAncillaryService(f.db, f.inbody, f.dayuse)
	for _, kind := range []string{models.ServiceInBody, models.ServiceInBody, models.ServiceDayUse} {
		req := services.AncillaryRequest{ClientName: "Guest", Phone: "0111", Price: 150, StaffName: "Reem"}
		if _, err := extras.AddService(kind, req); err != nil {
			t.Fatalf("add %s: %v", kind, err)
		}
	}

	dash := services.NewDashboardService(f.members, f.visitors, f.pt, f.inbody, f.dayuse, clock)
	stats, err := dash.GetDashboardStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalMembers != 3 || stats.ActiveMembers != 2 || stats.ExpiredMembers != 1 {
		t.Fatalf("member counts = total %d active %d expired %d", stats.TotalMembers, stats.ActiveMembers, stats.ExpiredMembers)
	}
	if stats.NearExpiryMembers != 0 {
		t.Fatalf("near expiry = %d", stats.NearExpiryMembers)
	}
	if stats.TotalPaid != 750 || stats.TotalRemaining != 1050 {
		t.Fatalf("money totals = paid %.2f remaining %.2f", stats.TotalPaid, stats.TotalRemaining)
	}
	if stats.TotalPTClients != 1 || stats.PTRevenue != 1000 {
		t.Fatalf("pt figures = %d %.2f", stats.TotalPTClients, stats.PTRevenue)
	}
	if stats.InBodyRevenue != 300 || stats.DayUseRevenue != 150 {
		t.Fatalf("service revenue = inbody %.2f dayuse %.2f", stats.InBodyRevenue, stats.DayUseRevenue)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture(t)
	dash := services.NewDashboardService(f.members, f.visitors, f.pt, f.inbody, f.dayuse, clock)
	stats, err := dash.GetDashboardStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if *stats != (models.DashboardStats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
