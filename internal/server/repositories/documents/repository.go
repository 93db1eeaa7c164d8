package documents

import (
	"context"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error)
	Delete(ctx context.Context, id string) error
}
