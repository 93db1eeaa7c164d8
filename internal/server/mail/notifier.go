// Package mail delivers templated notification messages. The Notifier
// interface is constructed once at process start and injected into the
// services that need it.
package mail

import "context"

// Notifier sends the two message kinds the service produces.
type Notifier interface {
	// SendRegistrationCode mails a one-time registration code.
	SendRegistrationCode(ctx context.Context, to, code string) error

	// SendSignatureRequest mails a public signing link.
	SendSignatureRequest(ctx context.Context, to, link string) error
}
