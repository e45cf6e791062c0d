package models

import (
	"encoding/json"
	"time"
)

type FormPayment struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	FormID        string     `json:"form_id"`
	Amount        float64    `json:"amount"`
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	// joined from tax_forms
	FormTypeName *string `json:"form_type_name"`
}

type FormPricingConfig struct {
	ID             int             `json:"id"`
	FormType       string          `json:"form_type"`
	BasePrice      float64         `json:"base_price"`
	GSTRate        float64         `json:"gst_rate"`
	PricingOptions json.RawMessage `json:"pricing_options"`
	AddOns         json.RawMessage `json:"add_ons"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

// FormPricingConfigUpdate carries only the fields the caller sent; nil
// pointers are left untouched by the update.
type FormPricingConfigUpdate struct {
	FormType       *string         `json:"form_type"`
	BasePrice      *float64        `json:"base_price"`
	GSTRate        *float64        `json:"gst_rate"`
	PricingOptions json.RawMessage `json:"pricing_options"`
	AddOns         json.RawMessage `json:"add_ons"`
}

func (u *FormPricingConfigUpdate) Empty() bool {
	return u.FormType == nil && u.BasePrice == nil && u.GSTRate == nil &&
		u.PricingOptions == nil && u.AddOns == nil
}
