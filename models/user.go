package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Id        int64
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time

	// PasswordHash is only populated on the login path and never
	// leaves the process.
	PasswordHash string
}

type CreateUser struct {
	Name     string
	Email    string
	Password string
}
