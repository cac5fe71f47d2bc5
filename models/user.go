package models

import "time"

// Roles recognized by the role middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an authenticated actor. Role "admin" marks the practice's
// administrative account (slot enablement, education management).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the user carries the administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterUserRequest is the signup payload.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthUserRequest is the login payload.
type AuthUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthUserResponse returns the issued token alongside the profile.
type AuthUserResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
