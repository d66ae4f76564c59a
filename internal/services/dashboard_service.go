package services

import (
	"fmt"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
)

// DashboardService aggregates figures across every collection.
type DashboardService interface {
	GetDashboardStats() (*models.DashboardStats, error)
}

type dashboardService struct {
	memberRepo  repositories.MemberRepository
	visitorRepo repositories.VisitorRepository
	ptRepo      repositories.PTClientRepository
	inbodyRepo  repositories.AncillaryRepository
	dayuseRepo  repositories.AncillaryRepository
	now         Clock
}

func NewDashboardService(
	memberRepo repositories.MemberRepository,
	visitorRepo repositories.VisitorRepository,
	ptRepo repositories.PTClientRepository,
	inbodyRepo repositories.AncillaryRepository,
	dayuseRepo repositories.AncillaryRepository,
	clock Clock,
) DashboardService {
	return &dashboardService{
		memberRepo:  memberRepo,
		visitorRepo: visitorRepo,
		ptRepo:      ptRepo,
		inbodyRepo:  inbodyRepo,
		dayuseRepo:  dayuseRepo,
		now:         clockOrNow(clock),
	}
}

// GetDashboardStats recomputes every figure from the stored rows. Membership
// status uses the same date-only rule as every listing.
func (s *dashboardService) GetDashboardStats() (*models.DashboardStats, error) {
	now := s.now()
	stats := &models.DashboardStats{}

	members, err := s.memberRepo.GetMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to load members for dashboard: %w", err)
	}
	stats.TotalMembers = len(members)
	for _, v := range calc.Views(members, now) {
		if v.Expired {
			stats.ExpiredMembers++
		} else {
			stats.ActiveMembers++
		}
		if v.NearExpiry {
			stats.NearExpiryMembers++
		}
		stats.TotalPaid += v.PaidAmount
		stats.TotalRemaining += v.RemainingAmount
		if calc.SameDay(v.CreatedAt, now) {
			stats.TodayMembers++
		}
	}

	visitors, err := s.visitorRepo.GetVisitors()
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors for dashboard: %w", err)
	}
	stats.TotalVisitors = len(visitors)
	for _, v := range visitors {
		if calc.SameDay(v.CreatedAt, now) {
			stats.TodayVisitors++
		}
	}

	clients, err := s.ptRepo.GetPTClients()
	if err != nil {
		return nil, fmt.Errorf("failed to load PT clients for dashboard: %w", err)
	}
	stats.TotalPTClients = len(clients)
	for _, c := range clients {
		stats.PTRevenue += c.PaidAmount
	}

	if stats.InBodyRevenue, err = serviceRevenue(s.inbodyRepo); err != nil {
		return nil, err
	}
	if stats.DayUseRevenue, err = serviceRevenue(s.dayuseRepo); err != nil {
		return nil, err
	}
	return stats, nil
}

func serviceRevenue(repo repositories.AncillaryRepository) (float64, error) {
	records, err := repo.GetServices()
	if err != nil {
		return 0, fmt.Errorf("failed to load %s services for dashboard: %w", repo.Kind(), err)
	}
	var total float64
	for _, r := range records {
		total += r.Price
	}
	return total, nil
}
