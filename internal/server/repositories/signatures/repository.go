package signatures

import (
	"context"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, sig *models.Signature) (*models.Signature, error)
	ListByDocument(ctx context.Context, documentID string) ([]*models.Signature, error)
}
