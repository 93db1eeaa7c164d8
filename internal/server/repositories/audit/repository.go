package audit

import (
	"context"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.AuditEntry) error

	// ListByDocument returns entries newest first.
	ListByDocument(ctx context.Context, documentID string) ([]*models.AuditEntry, error)
}
