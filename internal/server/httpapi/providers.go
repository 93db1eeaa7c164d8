package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

// The handler layer depends on narrow interfaces so it can be tested
// without a database or SMTP.

type UserProvider interface {
	RequestRegistration(ctx context.Context, name, email, password string) error
	VerifyRegistration(ctx context.Context, email, code string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(tokenString string) (string, error)
	SessionValidity() time.Duration
}

type DocumentProvider interface {
	Upload(ctx context.Context, ownerID, filename, contentType string, data []byte) (*models.Document, error)
	List(ctx context.Context, ownerID string) ([]*models.Document, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type SignatureProvider interface {
	Save(ctx context.Context, userID, documentID string, x, y float64, page int, status string) (*models.Signature, error)
	ListByDocument(ctx context.Context, documentID string) ([]*models.Signature, error)
}

type SavedSignatureProvider interface {
	Save(ctx context.Context, userID, image string) error
	Get(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, userID string, index int) error
}

type PublicLinkProvider interface {
	Issue(ctx context.Context, documentID, email string) (string, error)
	Resolve(ctx context.Context, token string) (*models.Document, error)
	Confirm(ctx context.Context, token, clientIP string) error
}

type AuditProvider interface {
	ListByDocument(ctx context.Context, documentID string) ([]*models.AuditEntry, error)
}

// Services bundles everything the HTTP server serves.
type Services struct {
	Users           UserProvider
	Documents       DocumentProvider
	Signatures      SignatureProvider
	SavedSignatures SavedSignatureProvider
	PublicLinks     PublicLinkProvider
	Audit           AuditProvider
}
