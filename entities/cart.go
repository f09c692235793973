package entities

import (
	"github.com/google/uuid"
)

// CartItem stages a quantity of a food item for donation. Name and ImageURL
// are snapshots taken when the item is first added.
type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FoodItemID uuid.UUID `json:"food_item_id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url,omitempty"`
	Quantity   int       `json:"quantity"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
