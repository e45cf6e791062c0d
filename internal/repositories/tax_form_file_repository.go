package repositories

import (
	"database/sql"
	"encoding/json"
	"log"

	"accverse/internal/models"
)

type TaxFormFileRepository interface {
	// ListForForm flattens every entry of the JSON files column for a form.
	ListForForm(formID string) ([]models.TaxFormFileInfo, error)
	// FindInForm returns a single named entry, payload included.
	FindInForm(formID, fileName string) (*models.TaxFormFileInfo, error)
	// GetBlob returns a binary attachment row by its id.
	GetBlob(fileID int) (*models.TaxFormFile, error)
}

type taxFormFileRepository struct {
	DB *sql.DB
}

func NewTaxFormFileRepository(db *sql.DB) TaxFormFileRepository {
	return &taxFormFileRepository{DB: db}
}

func (r *taxFormFileRepository) ListForForm(formID string) ([]models.TaxFormFileInfo, error) {
	const q = `SELECT files FROM tax_form_files WHERE tax_form_id = $1`
	rows, err := r.DB.Query(q, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := []models.TaxFormFileInfo{}
	for rows.Next() {
		var raw sql.NullString
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		for _, f := range parseFilesJSON(raw, formID) {
			// metadata only on the list path
			f.FileBlob = ""
			all = append(all, f)
		}
	}
	return all, rows.Err()
}

func (r *taxFormFileRepository) FindInForm(formID, fileName string) (*models.TaxFormFileInfo, error) {
	const q = `SELECT files FROM tax_form_files WHERE tax_form_id = $1`
	rows, err := r.DB.Query(q, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var raw sql.NullString
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		for _, f := range parseFilesJSON(raw, formID) {
			if f.FileName == fileName {
				found := f
				return &found, nil
			}
		}
	}
	return nil, rows.Err()
}

func (r *taxFormFileRepository) GetBlob(fileID int) (*models.TaxFormFile, error) {
	const q = `SELECT id, file_name, file_type, file_blobs FROM tax_form_files WHERE id = $1`
	f := &models.TaxFormFile{}
	var blob []byte
	err := r.DB.QueryRow(q, fileID).Scan(&f.ID, &f.FileName, &f.FileType, &blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	f.Blob = blob
	return f, nil
}

func parseFilesJSON(raw sql.NullString, formID string) []models.TaxFormFileInfo {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var files []models.TaxFormFileInfo
	if err := json.Unmarshal([]byte(raw.String), &files); err != nil {
		log.Printf("[files] unparseable files column for form %s: %v", formID, err)
		return nil
	}
	for i := range files {
		files[i].FormID = formID
	}
	return files
}
