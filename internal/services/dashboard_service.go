package services

import (
	"math"
	"time"

	"accverse/internal/models"
	"accverse/internal/repositories"
)

type DashboardService interface {
	MainWidgets() (*models.DashboardWidgets, error)
	ClientGrowth() ([]models.ClientGrowthPoint, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) MainWidgets() (*models.DashboardWidgets, error) {
	totalClients, err := s.repo.CountClients()
	if err != nil {
		return nil, err
	}
	currentRevenue, prevRevenue, totalPending, err := s.repo.PaymentStats()
	if err != nil {
		return nil, err
	}
	currentClients, prevClients, err := s.repo.ClientStats()
	if err != nil {
		return nil, err
	}

	stats := models.DashboardStats{
		TotalClients:    totalClients,
		MonthlyRevenue:  currentRevenue,
		PendingPayments: totalPending,
		Changes: models.DashboardChanges{
			Clients: percentChange(float64(currentClients), float64(prevClients)),
			Revenue: percentChange(currentRevenue, prevRevenue),
			// change metric not tracked for total pending
			Payments: 0,
		},
	}

	trend, err := s.revenueTrend()
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.UpcomingAppointments(5)
	if err != nil {
		return nil, err
	}

	return &models.DashboardWidgets{
		Stats:                stats,
		RevenueTrend:         trend,
		UpcomingAppointments: upcoming,
	}, nil
}

// revenueTrend zero-fills the last 15 days so the chart stays continuous,
// ordered oldest to newest.
func (s *dashboardService) revenueTrend() ([]models.RevenuePoint, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -14)
	revenue, err := s.repo.RevenueByDay(since)
	if err != nil {
		return nil, err
	}

	trend := make([]models.RevenuePoint, 0, 15)
	for i := 14; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		trend = append(trend, models.RevenuePoint{
			Date:    day,
			Revenue: revenue[day],
		})
	}
	return trend, nil
}

func (s *dashboardService) ClientGrowth() ([]models.ClientGrowthPoint, error) {
	since := s.now().UTC().AddDate(0, -6, 0)
	rows, err := s.repo.ClientGrowthByMonth(since)
	if err != nil {
		return nil, err
	}

	points := make([]models.ClientGrowthPoint, 0, len(rows))
	for _, row := range rows {
		month := row.Month
		if t, err := time.Parse("2006-01", row.Month); err == nil {
			month = t.Format("Jan")
		}
		points = append(points, models.ClientGrowthPoint{
			Month:   month,
			Clients: row.NewClients,
		})
	}
	return points, nil
}

func percentChange(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(((current - previous) / previous) * 100))
}
