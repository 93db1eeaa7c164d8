// Package registrations stores pending registrations: one-time codes keyed
// by email with the serialized candidate user attached.
package registrations

import (
	"context"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, reg *models.PendingRegistration) error
	GetByEmail(ctx context.Context, email string) (*models.PendingRegistration, error)
	DeleteByEmail(ctx context.Context, email string) error
}
