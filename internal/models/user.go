// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// BioMaxLen is the maximum bio length in characters; longer input is truncated.
const BioMaxLen = 160

// User represents an account backed by a Telegram identity.
// TelegramID is the platform-issued identifier and is unique across all accounts.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TelegramID   int64     `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username     string    `gorm:"size:80" json:"username"`
	FirstName    string    `gorm:"size:80;not null" json:"first_name"`
	LastName     string    `gorm:"size:80" json:"last_name"`
	LanguageCode string    `gorm:"size:10" json:"language_code"`
	PhotoURL     string    `gorm:"type:text" json:"photo_url"`
	Bio          string    `gorm:"size:160" json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// FullName and Handle are derived from the stored fields, never persisted.
	FullName string `gorm:"-" json:"full_name"`
	Handle   string `gorm:"-" json:"handle"`

	// Counts and the viewer-relative flag are computed at query time.
	FollowersCount int64 `gorm:"->;-:migration" json:"followers_count"`
	FollowingCount int64 `gorm:"->;-:migration" json:"following_count"`
	PostsCount     int64 `gorm:"->;-:migration" json:"posts_count"`
	IsFollowing    bool  `gorm:"->;-:migration" json:"is_following"`

	Posts []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// ComputeDerived fills FullName and Handle from the stored fields.
func (u *User) ComputeDerived() {
	u.FullName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	if u.Username != "" {
		u.Handle = "@" + u.Username
	} else {
		u.Handle = fmt.Sprintf("@user%d", u.TelegramID)
	}
}

// AfterFind keeps derived presentation fields in sync on every read.
func (u *User) AfterFind(*gorm.DB) error {
	u.ComputeDerived()
	return nil
}

// AfterCreate keeps derived presentation fields in sync on insert.
func (u *User) AfterCreate(*gorm.DB) error {
	u.ComputeDerived()
	return nil
}
