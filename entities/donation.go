package entities

import (
	"time"

	"github.com/google/uuid"
)

// DonatedFood is an append-only ledger entry for a completed donation.
// Rows are never updated or deleted by application flows.
type DonatedFood struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	DonorName      string     `json:"donor_name"`
	Name           string     `json:"name"`
	Quantity       int        `json:"quantity"`
	ImageURL       string     `json:"image_url,omitempty"`
	DonationDate   time.Time  `json:"donation_date"`
	Location       string     `json:"location"`
	Organization   string     `json:"organization"`
	Notes          string     `json:"notes,omitempty"`
	OriginalFoodID *uuid.UUID `json:"original_food_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
