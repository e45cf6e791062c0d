package repositories

import (
	"database/sql"
	"time"

	"accverse/internal/models"
)

// ClientGrowthRow is one month of new client signups.
type ClientGrowthRow struct {
	Month      string
	NewClients int
}

// DashboardRepository runs the aggregate queries behind the admin dashboard.
type DashboardRepository interface {
	CountClients() (int, error)
	PaymentStats() (currentMonthRevenue, prevMonthRevenue, totalPending float64, err error)
	ClientStats() (currentMonth, prevMonth int, err error)
	RevenueByDay(since time.Time) (map[string]float64, error)
	UpcomingAppointments(limit int) ([]models.UpcomingAppointment, error)
	ClientGrowthByMonth(since time.Time) ([]ClientGrowthRow, error)
}

type dashboardRepository struct {
	DB *sql.DB
}

func NewDashboardRepository(db *sql.DB) DashboardRepository {
	return &dashboardRepository{DB: db}
}

func (r *dashboardRepository) CountClients() (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE role = 'client'`).Scan(&total)
	return total, err
}

func (r *dashboardRepository) PaymentStats() (float64, float64, float64, error) {
	const q = `
		SELECT
			COALESCE(SUM(CASE WHEN payment_status = 'completed'
				AND date_trunc('month', payment_date) = date_trunc('month', CURRENT_DATE)
				THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'completed'
				AND date_trunc('month', payment_date) = date_trunc('month', CURRENT_DATE - INTERVAL '1 month')
				THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN amount ELSE 0 END), 0)
		FROM form_payments
	`
	var current, prev, pending float64
	err := r.DB.QueryRow(q).Scan(&current, &prev, &pending)
	return current, prev, pending, err
}

func (r *dashboardRepository) ClientStats() (int, int, error) {
	const q = `
		SELECT
			COUNT(CASE WHEN date_trunc('month', created_at) = date_trunc('month', CURRENT_DATE) THEN id END),
			COUNT(CASE WHEN date_trunc('month', created_at) = date_trunc('month', CURRENT_DATE - INTERVAL '1 month') THEN id END)
		FROM users
		WHERE role = 'client'
	`
	var current, prev int
	err := r.DB.QueryRow(q).Scan(&current, &prev)
	return current, prev, err
}

func (r *dashboardRepository) RevenueByDay(since time.Time) (map[string]float64, error) {
	const q = `
		SELECT to_char(payment_date::date, 'YYYY-MM-DD'), SUM(amount)
		FROM form_payments
		WHERE payment_date >= $1
		GROUP BY payment_date::date
		ORDER BY 1 ASC
	`
	rows, err := r.DB.Query(q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenue := map[string]float64{}
	for rows.Next() {
		var (
			day    string
			amount float64
		)
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, err
		}
		revenue[day] = amount
	}
	return revenue, rows.Err()
}

func (r *dashboardRepository) UpcomingAppointments(limit int) ([]models.UpcomingAppointment, error) {
	const q = `
		SELECT a.id,
		       a.appointment_date + a.appointment_time AS start_time,
		       u.name, s.name
		FROM appointments a
		JOIN users u ON a.user_id = u.id
		JOIN services s ON a.service_id = s.id
		WHERE a.appointment_date + a.appointment_time > NOW()
		ORDER BY start_time ASC
		LIMIT $1
	`
	rows, err := r.DB.Query(q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []models.UpcomingAppointment{}
	for rows.Next() {
		var a models.UpcomingAppointment
		if err := rows.Scan(&a.ID, &a.StartTime, &a.UserName, &a.ServiceName); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *dashboardRepository) ClientGrowthByMonth(since time.Time) ([]ClientGrowthRow, error) {
	const q = `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(id)
		FROM users
		WHERE role = 'client' AND created_at >= $1
		GROUP BY month
		ORDER BY month ASC
	`
	rows, err := r.DB.Query(q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClientGrowthRow
	for rows.Next() {
		var row ClientGrowthRow
		if err := rows.Scan(&row.Month, &row.NewClients); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
