package repositories

import (
	"database/sql"

	"accverse/internal/models"
)

type PaymentRepository interface {
	ListByUser(userID int) ([]*models.FormPayment, error)
	ListAll() ([]*models.FormPayment, error)
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

const paymentSelect = `
	SELECT fp.id, fp.user_id, fp.form_id, fp.amount, fp.payment_status,
	       fp.payment_date, fp.created_at, fp.updated_at,
	       tf.form_type
	FROM form_payments fp
	LEFT JOIN tax_forms tf ON fp.form_id = tf.id
`

func (r *paymentRepository) ListByUser(userID int) ([]*models.FormPayment, error) {
	const q = paymentSelect + `
		WHERE fp.user_id = $1
		ORDER BY fp.created_at DESC
	`
	return r.queryPayments(q, userID)
}

func (r *paymentRepository) ListAll() ([]*models.FormPayment, error) {
	const q = paymentSelect + ` ORDER BY fp.created_at DESC`
	return r.queryPayments(q)
}

func (r *paymentRepository) queryPayments(q string, args ...interface{}) ([]*models.FormPayment, error) {
	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.FormPayment
	for rows.Next() {
		p := &models.FormPayment{}
		var (
			paymentDate  sql.NullTime
			updatedAt    sql.NullTime
			formTypeName sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.FormID, &p.Amount, &p.PaymentStatus,
			&paymentDate, &p.CreatedAt, &updatedAt,
			&formTypeName,
		); err != nil {
			return nil, err
		}
		if paymentDate.Valid {
			p.PaymentDate = &paymentDate.Time
		}
		if updatedAt.Valid {
			p.UpdatedAt = &updatedAt.Time
		}
		if formTypeName.Valid {
			p.FormTypeName = &formTypeName.String
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
