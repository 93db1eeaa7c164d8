package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/repomanager"
)

// SignatureService records signature placements on document pages.
type SignatureService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSignatureService(db *sql.DB, rm repomanager.RepositoryManager) *SignatureService {
	return &SignatureService{db: db, repomanager: rm}
}

// Save stores a placement. An empty status defaults to pending.
func (s *SignatureService) Save(ctx context.Context, userID, documentID string, x, y float64, page int, status string) (*models.Signature, error) {

	if status == "" {
		status = models.SignStatusPending
	}

	sig := &models.Signature{
		DocumentID: documentID,
		UserID:     userID,
		X:          x,
		Y:          y,
		Page:       page,
		SignStatus: status,
	}

	sig, err := s.repomanager.Signatures(s.db).Create(ctx, sig)
	if err != nil {
		return nil, fmt.Errorf("error saving signature: %w", err)
	}

	return sig, nil
}

// ListByDocument returns all placements recorded for the document.
func (s *SignatureService) ListByDocument(ctx context.Context, documentID string) ([]*models.Signature, error) {
	sigs, err := s.repomanager.Signatures(s.db).ListByDocument(ctx, documentID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return sigs, nil
}
