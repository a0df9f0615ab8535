package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile groups ingested files under one owner. CompanyName and
// DefaultCurrency feed the extraction prompt as hints.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CompanyName     *string   `json:"company_name,omitempty"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
