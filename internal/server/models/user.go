// Package models contains the persistent row types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// User is a registered account. Rows are created only through a verified
// pending registration, never directly.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
