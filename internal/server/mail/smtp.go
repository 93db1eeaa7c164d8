package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends messages through a single SMTP account.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier constructs a Notifier over the given SMTP settings.
// from is the sender address, optionally with a display name
// ("Doc Signature App <docs@example>").
func NewSMTPNotifier(host string, port int, user, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mail send error: %w", err)
	}

	return nil
}

func (n *SMTPNotifier) SendRegistrationCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(`<h3>Your OTP is <b>%s</b></h3><p>This OTP is valid for 5 minutes.</p>`, code)
	return n.send(ctx, to, "Your OTP Code", body)
}

func (n *SMTPNotifier) SendSignatureRequest(ctx context.Context, to, link string) error {
	body := fmt.Sprintf(`
        <p>You have been requested to sign a document.</p>
        <p>Click the link below to view and sign:</p>
        <a href="%s">%s</a>
        <p>This link is secure and unique.</p>
      `, link, link)
	return n.send(ctx, to, "Document Signature Request", body)
}
