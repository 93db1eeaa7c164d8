package models

import "time"

// Document is an uploaded PDF. FilePath is the public URL of the stored
// object; StorageKey is the object-store key used for deletion.
type Document struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"filepath"`
	StorageKey string    `json:"-"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}
