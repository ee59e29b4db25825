package model

import "time"

// Notice is an admin announcement. Creation triggers the subscriber email
// dispatch, strictly after the row is committed.
type Notice struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
