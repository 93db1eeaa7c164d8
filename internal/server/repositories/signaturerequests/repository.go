package signaturerequests

import (
	"context"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, req *models.SignatureRequest) error
	GetByToken(ctx context.Context, token string) (*models.SignatureRequest, error)
}
