package models

import "time"

// AuditEntry is an immutable record of a signing confirmation. Entries are
// append-only; nothing in the service updates or deletes them.
type AuditEntry struct {
	ID          int64     `json:"id"`
	DocumentID  string    `json:"document_id"`
	SignerEmail string    `json:"signer_email"`
	IP          string    `json:"ip"`
	Timestamp   time.Time `json:"timestamp"`
}
