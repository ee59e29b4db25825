package model

import "time"

// Post is the content aggregate. Comments and likes live in child tables so a
// comment or like lands as a single row insert instead of a rewrite of the whole
// post, which would lose updates under concurrent requests.
type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Images    []string  `gorm:"serializer:json" json:"images"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Featured  bool      `gorm:"default:false" json:"featured"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes     []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is append-only; there is no edit or delete path. UserID is a weak
// reference: deleting the user leaves the row in place.
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Like holds at most one row per (post, user); the composite unique index makes
// the toggle idempotent even when two requests race.
type Like struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
