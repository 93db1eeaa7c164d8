package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/dbx"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/repomanager"
)

// SavedSignatureService manages a user's gallery of reusable signature
// images (stored as data URLs).
type SavedSignatureService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSavedSignatureService(db *sql.DB, rm repomanager.RepositoryManager) *SavedSignatureService {
	return &SavedSignatureService{db: db, repomanager: rm}
}

// Save appends an image to the user's gallery, creating it on first use.
func (s *SavedSignatureService) Save(ctx context.Context, userID, image string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.SavedSignatures(tx)

		images, err := repo.GetImages(ctx, userID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		return repo.Upsert(ctx, userID, append(images, image))
	})
	if err != nil {
		return fmt.Errorf("error saving signature image: %w", err)
	}

	return nil
}

// Get returns the user's gallery. An absent or empty gallery is
// ErrorNotFound.
func (s *SavedSignatureService) Get(ctx context.Context, userID string) ([]string, error) {

	images, err := s.repomanager.SavedSignatures(s.db).GetImages(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, common.ErrorNotFound
	}

	return images, nil
}

// Delete removes the image at index from the gallery. An out-of-range
// index or an absent gallery is ErrorNotFound.
func (s *SavedSignatureService) Delete(ctx context.Context, userID string, index int) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.SavedSignatures(tx)

		images, err := repo.GetImages(ctx, userID)
		if err != nil {
			return err
		}

		if index < 0 || index >= len(images) {
			return common.ErrorNotFound
		}

		return repo.Upsert(ctx, userID, append(images[:index], images[index+1:]...))
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting signature image: %w", err)
	}

	return nil
}
