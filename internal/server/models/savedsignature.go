package models

// SavedSignature holds a user's reusable signature images. One row per user;
// images are data URLs appended in insertion order.
type SavedSignature struct {
	UserID string   `json:"user_id"`
	Images []string `json:"images"`
}
