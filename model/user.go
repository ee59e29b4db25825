package model

import "time"

// Role of an account. Checked centrally by internal/authz, never ad hoc in handlers.
type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// User is the identity record. Email and username are unique at the store level
// so concurrent registrations cannot race past a check-then-insert.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:191" json:"email"`
	Username  string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Phone     string    `gorm:"not null;size:20" json:"phone"` // canonical +977XXXXXXXXXX
	Password  string    `gorm:"not null;size:100" json:"-"`    // bcrypt hash
	Role      Role      `gorm:"not null;size:16;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
