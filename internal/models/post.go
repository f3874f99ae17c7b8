package models

import (
	"time"
)

// ContentMaxLen is the maximum post/comment body length in characters.
const ContentMaxLen = 280

// Post represents a feed post. Posts are hard-deleted together with their
// author (cascade); there is no soft-delete state.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Author    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed at query time, never persisted.
	LikesCount    int64 `gorm:"->;-:migration" json:"likes_count"`
	CommentsCount int64 `gorm:"->;-:migration" json:"comments_count"`
	IsLiked       bool  `gorm:"->;-:migration" json:"is_liked"`
}
