package repositories

import (
	"database/sql"
	"time"

	"accverse/internal/models"
)

type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	List() ([]*models.User, error)
	ListClients() ([]*models.User, error)

	// reset helpers; Set and Clear each touch both columns in one statement
	SetResetToken(userID int, token string, expiry time.Time) error
	GetByResetToken(token string) (*models.User, error)
	ClearResetToken(userID int) error
	UpdatePassword(userID int, passwordHash string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, name, email, COALESCE(phone,''), COALESCE(address,''),
	password_hash, role, is_verified,
	reset_token, reset_token_expiry,
	created_at, updated_at
`

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		resetToken  sql.NullString
		resetExpiry sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address,
		&u.PasswordHash, &u.Role, &u.IsVerified,
		&resetToken, &resetExpiry,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if resetToken.Valid {
		u.ResetToken = &resetToken.String
	}
	if resetExpiry.Valid {
		u.ResetTokenExpiry = &resetExpiry.Time
	}
	return u, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanUser(r.DB.QueryRow(q, email))
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByResetToken(token string) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1`
	return r.scanUser(r.DB.QueryRow(q, token))
}

func (r *userRepository) List() ([]*models.User, error) {
	const q = `
		SELECT id, name, email, COALESCE(phone,''), COALESCE(address,''),
		       role, is_verified, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	return r.listPublic(q)
}

func (r *userRepository) ListClients() ([]*models.User, error) {
	const q = `
		SELECT id, name, email, COALESCE(phone,''), COALESCE(address,''),
		       role, is_verified, created_at, updated_at
		FROM users
		WHERE role = 'client'
		ORDER BY created_at DESC
	`
	return r.listPublic(q)
}

func (r *userRepository) listPublic(q string) ([]*models.User, error) {
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address,
			&u.Role, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) SetResetToken(userID int, token string, expiry time.Time) error {
	const q = `UPDATE users SET reset_token = $1, reset_token_expiry = $2 WHERE id = $3`
	_, err := r.DB.Exec(q, token, expiry, userID)
	return err
}

func (r *userRepository) ClearResetToken(userID int) error {
	const q = `UPDATE users SET reset_token = NULL, reset_token_expiry = NULL WHERE id = $1`
	_, err := r.DB.Exec(q, userID)
	return err
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.Exec(q, passwordHash, userID)
	return err
}
