package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/repomanager"
)

// AuditService exposes the per-document signing trail.
type AuditService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAuditService(db *sql.DB, rm repomanager.RepositoryManager) *AuditService {
	return &AuditService{db: db, repomanager: rm}
}

// ListByDocument returns the document's audit entries, newest first.
func (s *AuditService) ListByDocument(ctx context.Context, documentID string) ([]*models.AuditEntry, error) {
	entries, err := s.repomanager.Audit(s.db).ListByDocument(ctx, documentID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return entries, nil
}
