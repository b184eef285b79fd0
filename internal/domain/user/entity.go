package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // HR staff, full access
	RoleUser  Role = "user"  // Read-only access
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can mutate records
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
