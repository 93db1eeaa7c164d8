package models

import "time"

// CandidateUser is the not-yet-created account embedded in a pending
// registration. The password is already hashed when the payload is stored.
type CandidateUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// PendingRegistration holds a one-time registration code together with the
// serialized candidate user, keyed by email. At most one row per email.
type PendingRegistration struct {
	Email     string
	Code      string
	Payload   []byte
	CreatedAt time.Time
}
