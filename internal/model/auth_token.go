package model

import "time"

// AuthToken is the opaque bearer credential for a user. Exactly one token
// exists per user; it is issued at registration and reused across logins.
type AuthToken struct {
	Key       string    `json:"token" gorm:"primaryKey;size:40"`
	UserID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
