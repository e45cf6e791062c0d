package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"accverse/internal/models"
)

type PricingRepository interface {
	List() ([]*models.FormPricingConfig, error)
	GetByID(id int) (*models.FormPricingConfig, error)
	Update(id int, upd *models.FormPricingConfigUpdate) error
}

type pricingRepository struct {
	DB *sql.DB
}

func NewPricingRepository(db *sql.DB) PricingRepository {
	return &pricingRepository{DB: db}
}

const pricingColumns = `
	id, form_type, base_price, gst_rate,
	COALESCE(pricing_options,'[]'), COALESCE(add_ons,'[]'),
	created_at, updated_at
`

func (r *pricingRepository) List() ([]*models.FormPricingConfig, error) {
	const q = `SELECT ` + pricingColumns + ` FROM form_pricing_configs ORDER BY form_type`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.FormPricingConfig
	for rows.Next() {
		cfg, err := scanPricing(rows.Scan)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (r *pricingRepository) GetByID(id int) (*models.FormPricingConfig, error) {
	const q = `SELECT ` + pricingColumns + ` FROM form_pricing_configs WHERE id = $1`
	cfg, err := scanPricing(r.DB.QueryRow(q, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Update writes only the fields present in upd, like the dynamic SET the
// admin UI relies on for partial edits.
func (r *pricingRepository) Update(id int, upd *models.FormPricingConfigUpdate) error {
	var (
		sets []string
		args []interface{}
	)
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.FormType != nil {
		add("form_type", *upd.FormType)
	}
	if upd.BasePrice != nil {
		add("base_price", *upd.BasePrice)
	}
	if upd.GSTRate != nil {
		add("gst_rate", *upd.GSTRate)
	}
	if upd.PricingOptions != nil {
		add("pricing_options", string(upd.PricingOptions))
	}
	if upd.AddOns != nil {
		add("add_ons", string(upd.AddOns))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	q := fmt.Sprintf(
		"UPDATE form_pricing_configs SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)
	_, err := r.DB.Exec(q, args...)
	return err
}

func scanPricing(scan func(...interface{}) error) (*models.FormPricingConfig, error) {
	cfg := &models.FormPricingConfig{}
	var (
		pricingOptions []byte
		addOns         []byte
		updatedAt      sql.NullTime
	)
	if err := scan(
		&cfg.ID, &cfg.FormType, &cfg.BasePrice, &cfg.GSTRate,
		&pricingOptions, &addOns,
		&cfg.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	cfg.PricingOptions = pricingOptions
	cfg.AddOns = addOns
	if updatedAt.Valid {
		cfg.UpdatedAt = &updatedAt.Time
	}
	return cfg, nil
}
