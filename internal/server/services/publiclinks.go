package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	sc "github.com/dmitrijs2005/signkeeper/internal/server/config"
	"github.com/dmitrijs2005/signkeeper/internal/server/mail"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/repomanager"
)

// tokenByteLen is the entropy of a public link token; hex-encoded it
// yields a 40-character token.
const tokenByteLen = 20

// PublicLinkService issues tokenized signing links for a document, resolves
// them for anonymous visitors and records signing confirmations in the
// audit trail.
type PublicLinkService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	notifier      mail.Notifier
	clientBaseURL string
}

func NewPublicLinkService(db *sql.DB, rm repomanager.RepositoryManager, config *sc.Config, notifier mail.Notifier) *PublicLinkService {
	return &PublicLinkService{
		db:            db,
		repomanager:   rm,
		notifier:      notifier,
		clientBaseURL: config.ClientBaseURL,
	}
}

func (s *PublicLinkService) link(token string) string {
	return fmt.Sprintf("%s/sign/%s", s.clientBaseURL, token)
}

// Issue creates a signing link for the document, mails it to the recipient
// and returns the link token. The link row outlives a notifier failure;
// reissuing simply creates another link.
func (s *PublicLinkService) Issue(ctx context.Context, documentID, email string) (string, error) {

	if _, err := s.repomanager.Documents(s.db).GetByID(ctx, documentID); err != nil {
		return "", err
	}

	token, err := common.MakeRandHexString(tokenByteLen)
	if err != nil {
		return "", common.ErrorInternal
	}

	req := &models.SignatureRequest{DocumentID: documentID, Email: email, Token: token}
	if err := s.repomanager.SignatureRequests(s.db).Create(ctx, req); err != nil {
		return "", fmt.Errorf("error storing signature request: %w", err)
	}

	if err := s.notifier.SendSignatureRequest(ctx, email, s.link(token)); err != nil {
		return "", fmt.Errorf("error sending signature request: %w", err)
	}

	return token, nil
}

// Resolve maps a link token to the document it was issued for. Unknown
// tokens and tokens whose document has since been deleted both surface as
// ErrorNotFound.
func (s *PublicLinkService) Resolve(ctx context.Context, token string) (*models.Document, error) {

	req, err := s.repomanager.SignatureRequests(s.db).GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, req.DocumentID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return doc, nil
}

// Confirm records a signing event for the link token. Confirming the same
// link again appends another audit entry.
func (s *PublicLinkService) Confirm(ctx context.Context, token, clientIP string) error {

	req, err := s.repomanager.SignatureRequests(s.db).GetByToken(ctx, token)
	if err != nil {
		return err
	}

	entry := &models.AuditEntry{
		DocumentID:  req.DocumentID,
		SignerEmail: req.Email,
		IP:          clientIP,
	}

	if err := s.repomanager.Audit(s.db).Create(ctx, entry); err != nil {
		return fmt.Errorf("error saving audit entry: %w", err)
	}

	return nil
}
