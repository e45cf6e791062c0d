package models

import "time"

type Appointment struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	ServiceID       int       `json:"service_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"` // HH:MM:SS
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpcomingAppointment is the joined shape used by the dashboard widget.
type UpcomingAppointment struct {
	ID          int       `json:"id"`
	StartTime   time.Time `json:"start_time"`
	UserName    string    `json:"user_name"`
	ServiceName string    `json:"service_name"`
}

type Service struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // minutes
	Price    float64 `json:"price"`
}

type ServiceUpdateRequest struct {
	Name     string `json:"name"`
	Duration *int   `json:"duration"`
}

type BookingConfig struct {
	ID                        int    `json:"id"`
	WorkingHoursStart         string `json:"working_hours_start"`
	WorkingHoursEnd           string `json:"working_hours_end"`
	SlotDuration              string `json:"slot_duration"`
	BufferBetweenAppointments string `json:"buffer_between_appointments"`
	MaxAdvanceBookingDays     int    `json:"max_advance_booking_days"`
	MinAdvanceBookingHours    int    `json:"min_advance_booking_hours"`
	MaxAppointmentsPerDay     int    `json:"max_appointments_per_day"`
	MaxAppointmentsPerUser    int    `json:"max_appointments_per_user"`
	AllowedBookingDays        string `json:"allowed_booking_days"`
	Holidays                  string `json:"holidays"`
	Timezone                  string `json:"timezone"`
}

// BookingConfigUpdate uses pointers so the handler can insist on every field
// being present, as the update endpoint requires.
type BookingConfigUpdate struct {
	WorkingHoursStart         *string `json:"working_hours_start"`
	WorkingHoursEnd           *string `json:"working_hours_end"`
	SlotDuration              *string `json:"slot_duration"`
	BufferBetweenAppointments *string `json:"buffer_between_appointments"`
	MaxAdvanceBookingDays     *int    `json:"max_advance_booking_days"`
	MinAdvanceBookingHours    *int    `json:"min_advance_booking_hours"`
	MaxAppointmentsPerDay     *int    `json:"max_appointments_per_day"`
	MaxAppointmentsPerUser    *int    `json:"max_appointments_per_user"`
	AllowedBookingDays        *string `json:"allowed_booking_days"`
	Holidays                  *string `json:"holidays"`
	Timezone                  *string `json:"timezone"`
}

func (u *BookingConfigUpdate) Complete() bool {
	return u.WorkingHoursStart != nil && u.WorkingHoursEnd != nil &&
		u.SlotDuration != nil && u.BufferBetweenAppointments != nil &&
		u.MaxAdvanceBookingDays != nil && u.MinAdvanceBookingHours != nil &&
		u.MaxAppointmentsPerDay != nil && u.MaxAppointmentsPerUser != nil &&
		u.AllowedBookingDays != nil && u.Holidays != nil && u.Timezone != nil
}
