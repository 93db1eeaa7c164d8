package savedsignatures

import "context"

type Repository interface {
	// GetImages returns the stored image list for a user, or
	// common.ErrorNotFound when the user has no row yet.
	GetImages(ctx context.Context, userID string) ([]string, error)

	// Upsert replaces the user's image list, creating the row if needed.
	Upsert(ctx context.Context, userID string, images []string) error
}
