package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a quiz user account.
//
// Passwords are stored in plaintext and compared with exact string equality
// because the upstream system the API contract comes from does exactly that.
// TODO: move to hashed credential storage once the legacy clients that depend
// on exact-match validation are retired.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string    `json:"password,omitempty" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// BeforeCreate stamps creation time in UTC.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return nil
}
