package entities

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset holds a one-time reset code. A user has at most one live row;
// issuing a new code deletes all prior rows for that user.
type PasswordReset struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	EmailOrMobile string    `json:"email_or_mobile"`
	OTP           string    `json:"-"`
	Expires       time.Time `json:"expires"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
