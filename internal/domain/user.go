package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAgent  UserRole = "agent"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID            int64     `json:"id"`
	LastName      string    `json:"last_name"`
	FirstName     string    `json:"first_name"`
	Email         string    `json:"email" validate:"required,email"`
	PasswordHash  string    `json:"-"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Role          UserRole  `json:"role"`
	AccountStatus string    `json:"account_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
