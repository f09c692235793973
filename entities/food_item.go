package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodItem is one inventory entry. Quantity is the amount originally added,
// Stock is what remains available for donation; 0 <= Stock <= Quantity.
type FoodItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	Stock           int       `json:"stock"`
	ManufactureDate time.Time `json:"manufacture_date"`
	ExpiryDate      time.Time `json:"expiry_date"`
	DaysUntilExpiry int       `json:"days_until_expiry"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
