package models

import "time"

// SignatureRequest binds a document to a recipient email through a random
// token embedded in a public signing link. The token itself is the
// credential; no authentication is required to resolve it.
type SignatureRequest struct {
	ID         int64     `json:"id"`
	DocumentID string    `json:"document_id"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"created_at"`
}
