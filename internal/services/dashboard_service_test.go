package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accverse/internal/models"
	"accverse/internal/repositories"
)

type fakeDashboardRepo struct {
	totalClients   int
	currentRevenue float64
	prevRevenue    float64
	totalPending   float64
	currentClients int
	prevClients    int
	revenueByDay   map[string]float64
	upcoming       []models.UpcomingAppointment
	growth         []repositories.ClientGrowthRow
}

func (r *fakeDashboardRepo) CountClients() (int, error) { return r.totalClients, nil }

func (r *fakeDashboardRepo) PaymentStats() (float64, float64, float64, error) {
	return r.currentRevenue, r.prevRevenue, r.totalPending, nil
}

func (r *fakeDashboardRepo) ClientStats() (int, int, error) {
	return r.currentClients, r.prevClients, nil
}

func (r *fakeDashboardRepo) RevenueByDay(since time.Time) (map[string]float64, error) {
	return r.revenueByDay, nil
}

func (r *fakeDashboardRepo) UpcomingAppointments(limit int) ([]models.UpcomingAppointment, error) {
	if len(r.upcoming) > limit {
		return r.upcoming[:limit], nil
	}
	return r.upcoming, nil
}

func (r *fakeDashboardRepo) ClientGrowthByMonth(since time.Time) ([]repositories.ClientGrowthRow, error) {
	return r.growth, nil
}

func TestMainWidgetsStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		totalClients:   40,
		currentRevenue: 1500,
		prevRevenue:    1000,
		totalPending:   250,
		currentClients: 6,
		prevClients:    4,
		revenueByDay:   map[string]float64{},
	}
	svc := &dashboardService{repo: repo, now: time.Now}

	w, err := svc.MainWidgets()
	require.NoError(t, err)

	assert.Equal(t, 40, w.Stats.TotalClients)
	assert.Equal(t, 1500.0, w.Stats.MonthlyRevenue)
	assert.Equal(t, 250.0, w.Stats.PendingPayments)
	assert.Equal(t, 50, w.Stats.Changes.Clients)
	assert.Equal(t, 50, w.Stats.Changes.Revenue)
	assert.Equal(t, 0, w.Stats.Changes.Payments)
}

func TestRevenueTrendZeroFillsFifteenDays(t *testing.T) {
	fixed := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{
		revenueByDay: map[string]float64{
			"2026-03-20": 300,
			"2026-03-15": 120,
		},
	}
	svc := &dashboardService{repo: repo, now: func() time.Time { return fixed }}

	w, err := svc.MainWidgets()
	require.NoError(t, err)
	require.Len(t, w.RevenueTrend, 15)

	// oldest to newest, gaps filled with zero
	assert.Equal(t, "2026-03-06", w.RevenueTrend[0].Date)
	assert.Equal(t, "2026-03-20", w.RevenueTrend[14].Date)
	assert.Equal(t, 0.0, w.RevenueTrend[0].Revenue)
	assert.Equal(t, 120.0, w.RevenueTrend[9].Revenue)
	assert.Equal(t, 300.0, w.RevenueTrend[14].Revenue)
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0, percentChange(0, 0))
	assert.Equal(t, 100, percentChange(10, 0))
	assert.Equal(t, -50, percentChange(5, 10))
	assert.Equal(t, 33, percentChange(4, 3))
	assert.Equal(t, -100, percentChange(0, 8))
}

func TestClientGrowthFormatsMonths(t *testing.T) {
	repo := &fakeDashboardRepo{
		revenueByDay: map[string]float64{},
		growth: []repositories.ClientGrowthRow{
			{Month: "2026-01", NewClients: 3},
			{Month: "2026-02", NewClients: 7},
		},
	}
	svc := &dashboardService{repo: repo, now: time.Now}

	points, err := svc.ClientGrowth()
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, models.ClientGrowthPoint{Month: "Jan", Clients: 3}, points[0])
	assert.Equal(t, models.ClientGrowthPoint{Month: "Feb", Clients: 7}, points[1])
}
