package repositories

import (
	"database/sql"
	"encoding/json"

	"accverse/internal/models"
)

type TaxFormRepository interface {
	ListByUser(userID int) ([]*models.TaxForm, error)
	ListByUserAndType(userID int, formType string) ([]*models.TaxForm, error)
	ListByType(formType string) ([]*models.TaxForm, error)
	GetByID(formID string) (*models.TaxForm, error)
}

type taxFormRepository struct {
	DB    *sql.DB
	files TaxFormFileRepository
}

func NewTaxFormRepository(db *sql.DB, files TaxFormFileRepository) TaxFormRepository {
	return &taxFormRepository{DB: db, files: files}
}

const taxFormColumns = `
	id, user_id, form_type, status, COALESCE(notes,''),
	created_at, updated_at, COALESCE(form_data,'{}')
`

func (r *taxFormRepository) ListByUser(userID int) ([]*models.TaxForm, error) {
	const q = `
		SELECT ` + taxFormColumns + `
		FROM tax_forms
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryForms(q, userID)
}

func (r *taxFormRepository) ListByUserAndType(userID int, formType string) ([]*models.TaxForm, error) {
	const q = `
		SELECT ` + taxFormColumns + `
		FROM tax_forms
		WHERE user_id = $1 AND form_type = $2
		ORDER BY created_at DESC
	`
	return r.queryForms(q, userID, formType)
}

func (r *taxFormRepository) ListByType(formType string) ([]*models.TaxForm, error) {
	const q = `
		SELECT ` + taxFormColumns + `
		FROM tax_forms
		WHERE form_type = $1
		ORDER BY created_at DESC
	`
	return r.queryForms(q, formType)
}

func (r *taxFormRepository) GetByID(formID string) (*models.TaxForm, error) {
	const q = `SELECT ` + taxFormColumns + ` FROM tax_forms WHERE id = $1`
	form, err := r.scanForm(r.DB.QueryRow(q, formID))
	if err != nil || form == nil {
		return nil, err
	}
	if err := r.attachFiles(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (r *taxFormRepository) queryForms(q string, args ...interface{}) ([]*models.TaxForm, error) {
	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []*models.TaxForm
	for rows.Next() {
		f := &models.TaxForm{}
		var (
			createdAt sql.NullTime
			updatedAt sql.NullTime
			formData  []byte
		)
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.FormType, &f.Status, &f.Notes,
			&createdAt, &updatedAt, &formData,
		); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			f.CreatedAt = &createdAt.Time
		}
		if updatedAt.Valid {
			f.UpdatedAt = &updatedAt.Time
		}
		f.FormData = normalizeFormData(formData)
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, f := range forms {
		if err := r.attachFiles(f); err != nil {
			return nil, err
		}
	}
	return forms, nil
}

func (r *taxFormRepository) scanForm(row *sql.Row) (*models.TaxForm, error) {
	f := &models.TaxForm{}
	var (
		createdAt sql.NullTime
		updatedAt sql.NullTime
		formData  []byte
	)
	err := row.Scan(
		&f.ID, &f.UserID, &f.FormType, &f.Status, &f.Notes,
		&createdAt, &updatedAt, &formData,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if createdAt.Valid {
		f.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		f.UpdatedAt = &updatedAt.Time
	}
	f.FormData = normalizeFormData(formData)
	return f, nil
}

func (r *taxFormRepository) attachFiles(f *models.TaxForm) error {
	files, err := r.files.ListForForm(f.ID)
	if err != nil {
		return err
	}
	f.Files = files
	return nil
}

// form_data is stored as a JSON string; a broken value degrades to {} rather
// than failing the whole response.
func normalizeFormData(raw []byte) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(raw)
}
