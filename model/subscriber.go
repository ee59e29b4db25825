package model

import "time"

// Subscriber is a notice-alert contact. The phone number is stored in canonical
// +977 form and is unique at the store level; email is optional, and only
// subscribers with an email are on the dispatch path.
type Subscriber struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	PhoneNumber string    `gorm:"uniqueIndex;not null;size:20" json:"phone_number"`
	Email       string    `gorm:"size:191" json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
