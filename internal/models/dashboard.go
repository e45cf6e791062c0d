package models

type DashboardChanges struct {
	Clients  int `json:"clients"`
	Revenue  int `json:"revenue"`
	Payments int `json:"payments"`
}

type DashboardStats struct {
	TotalClients    int              `json:"totalClients"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
	PendingPayments float64          `json:"pendingPayments"`
	Changes         DashboardChanges `json:"changes"`
}

type RevenuePoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

type DashboardWidgets struct {
	Stats                DashboardStats        `json:"stats"`
	RevenueTrend         []RevenuePoint        `json:"revenue_trend"`
	UpcomingAppointments []UpcomingAppointment `json:"upcoming_appointments"`
}

type ClientGrowthPoint struct {
	Month   string `json:"month"` // three-letter month, e.g. "Jun"
	Clients int    `json:"clients"`
}
