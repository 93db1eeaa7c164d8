package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/logging"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
	"github.com/dmitrijs2005/signkeeper/internal/server/objectstore"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/repomanager"
)

// DocumentService owns the document lifecycle: binaries live in the object
// store, metadata in the registry table.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       objectstore.ObjectStore
	logger      logging.Logger
}

func NewDocumentService(db *sql.DB, rm repomanager.RepositoryManager, store objectstore.ObjectStore, logger logging.Logger) *DocumentService {
	return &DocumentService{db: db, repomanager: rm, store: store, logger: logger}
}

// storageKey namespaces objects per owner and prefixes a timestamp so equal
// filenames never collide.
func (s *DocumentService) storageKey(ownerID, filename string) string {
	return fmt.Sprintf("user_%s/%d-%s", ownerID, time.Now().UnixMilli(), filename)
}

// Upload stores the binary first and registers the metadata second. If the
// registry insert fails the uploaded object is removed on a best-effort
// basis so the bucket does not accumulate orphans.
func (s *DocumentService) Upload(ctx context.Context, ownerID, filename, contentType string, data []byte) (*models.Document, error) {

	key := s.storageKey(ownerID, filename)

	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, fmt.Errorf("error uploading document: %w", err)
	}

	doc := &models.Document{
		Filename:   filename,
		FilePath:   s.store.PublicURL(key),
		StorageKey: key,
		UploadedBy: ownerID,
	}

	doc, err := s.repomanager.Documents(s.db).Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Warn(ctx, "could not remove orphaned object", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("error registering document: %w", err)
	}

	return doc, nil
}

// List returns the owner's documents, newest first.
func (s *DocumentService) List(ctx context.Context, ownerID string) ([]*models.Document, error) {
	docs, err := s.repomanager.Documents(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return docs, nil
}

// Get returns a document regardless of owner (used by public signing links).
func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.repomanager.Documents(s.db).GetByID(ctx, id)
}

// Delete removes both the object and the registry row. Only the owner may
// delete; anyone else gets ErrorNotFound.
func (s *DocumentService) Delete(ctx context.Context, ownerID, id string) error {

	docRepo := s.repomanager.Documents(s.db)

	doc, err := docRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		return fmt.Errorf("error deleting document object: %w", err)
	}

	if err := docRepo.Delete(ctx, doc.ID); err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}

	return nil
}
