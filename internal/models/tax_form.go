package models

import (
	"encoding/json"
	"time"
)

type TaxForm struct {
	ID        string          `json:"id"`
	UserID    int             `json:"user_id"`
	FormType  string          `json:"form_type"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes"`
	CreatedAt *time.Time      `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at"`
	FormData  json.RawMessage `json:"form_data"`

	Files []TaxFormFileInfo `json:"files,omitempty"`
}

// TaxFormFileInfo is one entry of the JSON `files` column on tax_form_files.
type TaxFormFileInfo struct {
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	FileSize  int64  `json:"file_size,omitempty"`
	FieldName string `json:"field_name,omitempty"`
	FormID    string `json:"form_id,omitempty"`
	// base64 payload; only populated on the single-file lookup path
	FileBlob string `json:"file_blob,omitempty"`
}

// TaxFormFile is a stored binary attachment row.
type TaxFormFile struct {
	ID        int    `json:"id"`
	TaxFormID string `json:"tax_form_id"`
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	Blob      []byte `json:"-"`
}
