package models

import "time"

// SignStatusPending is the initial placement status.
const SignStatusPending = "pending"

// Signature is a placement record: where on which page of a document a user
// is expected to sign.
type Signature struct {
	ID         int64     `json:"id"`
	DocumentID string    `json:"document_id"`
	UserID     string    `json:"user_id"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Page       int       `json:"page"`
	SignStatus string    `json:"sign_status"`
	CreatedAt  time.Time `json:"created_at"`
}
