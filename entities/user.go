package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Mobile       string    `gorm:"uniqueIndex" json:"mobile"`
	Password     string    `json:"-"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Role         string    `json:"role"`
	LastLogin    time.Time `json:"last_login"`

	Timestamp
}
