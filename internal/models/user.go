package models

import "time"

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	FullName     *string   `json:"full_name" db:"full_name"`   // Optional display name
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt digest
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserCredentials is the registration and login payload.
// Login reuses it; FullName is accepted there and ignored.
type UserCredentials struct {
	Email    *string `json:"email" validate:"required,max=255"`
	Password *string `json:"password" validate:"required"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
}
