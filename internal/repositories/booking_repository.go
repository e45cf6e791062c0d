package repositories

import (
	"database/sql"

	"accverse/internal/models"
)

type BookingRepository interface {
	ListAppointments() ([]*models.Appointment, error)
	ListServices() ([]*models.Service, error)
	UpdateService(id int, name string, duration int) error
	GetBookingConfig() (*models.BookingConfig, error)
	UpdateBookingConfig(id int, upd *models.BookingConfigUpdate) error
}

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) ListAppointments() ([]*models.Appointment, error) {
	const q = `
		SELECT id, user_id, service_id,
		       to_char(appointment_date, 'YYYY-MM-DD'),
		       to_char(appointment_time, 'HH24:MI:SS'),
		       status, COALESCE(notes,''), created_at
		FROM appointments
		ORDER BY appointment_date DESC, appointment_time DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []*models.Appointment
	for rows.Next() {
		a := &models.Appointment{}
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ServiceID,
			&a.AppointmentDate, &a.AppointmentTime,
			&a.Status, &a.Notes, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *bookingRepository) ListServices() ([]*models.Service, error) {
	const q = `
		SELECT id, name,
		       EXTRACT(EPOCH FROM duration)::int / 60,
		       COALESCE(price, 0)
		FROM services
		ORDER BY name
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		s := &models.Service{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Duration, &s.Price); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *bookingRepository) UpdateService(id int, name string, duration int) error {
	const q = `UPDATE services SET name = $1, duration = make_interval(mins => $2) WHERE id = $3`
	_, err := r.DB.Exec(q, name, duration, id)
	return err
}

func (r *bookingRepository) GetBookingConfig() (*models.BookingConfig, error) {
	const q = `
		SELECT id,
		       to_char(working_hours_start, 'HH24:MI:SS'),
		       to_char(working_hours_end, 'HH24:MI:SS'),
		       to_char('1970-01-01'::date + slot_duration, 'HH24:MI:SS'),
		       to_char('1970-01-01'::date + buffer_between_appointments, 'HH24:MI:SS'),
		       max_advance_booking_days, min_advance_booking_hours,
		       max_appointments_per_day, max_appointments_per_user,
		       allowed_booking_days, COALESCE(holidays,''), timezone
		FROM booking_config
		LIMIT 1
	`
	cfg := &models.BookingConfig{}
	err := r.DB.QueryRow(q).Scan(
		&cfg.ID,
		&cfg.WorkingHoursStart, &cfg.WorkingHoursEnd,
		&cfg.SlotDuration, &cfg.BufferBetweenAppointments,
		&cfg.MaxAdvanceBookingDays, &cfg.MinAdvanceBookingHours,
		&cfg.MaxAppointmentsPerDay, &cfg.MaxAppointmentsPerUser,
		&cfg.AllowedBookingDays, &cfg.Holidays, &cfg.Timezone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (r *bookingRepository) UpdateBookingConfig(id int, upd *models.BookingConfigUpdate) error {
	const q = `
		UPDATE booking_config SET
			working_hours_start = $1::time,
			working_hours_end = $2::time,
			slot_duration = $3::interval,
			buffer_between_appointments = $4::interval,
			max_advance_booking_days = $5,
			min_advance_booking_hours = $6,
			max_appointments_per_day = $7,
			max_appointments_per_user = $8,
			allowed_booking_days = $9,
			holidays = $10,
			timezone = $11
		WHERE id = $12
	`
	_, err := r.DB.Exec(q,
		*upd.WorkingHoursStart, *upd.WorkingHoursEnd,
		*upd.SlotDuration, *upd.BufferBetweenAppointments,
		*upd.MaxAdvanceBookingDays, *upd.MinAdvanceBookingHours,
		*upd.MaxAppointmentsPerDay, *upd.MaxAppointmentsPerUser,
		*upd.AllowedBookingDays, *upd.Holidays, *upd.Timezone,
		id,
	)
	return err
}
