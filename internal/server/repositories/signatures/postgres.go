package signatures

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/signkeeper/internal/dbx"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, sig *models.Signature) (*models.Signature, error) {

	query :=
		`INSERT INTO signatures (document_id, user_id, x, y, page, sign_status)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		sig.DocumentID, sig.UserID, sig.X, sig.Y, sig.Page, sig.SignStatus).Scan(&sig.ID, &sig.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sig, nil
}

func (r *PostgresRepository) ListByDocument(ctx context.Context, documentID string) ([]*models.Signature, error) {
	query :=
		`SELECT id, document_id, user_id, x, y, page, sign_status, created_at FROM signatures
		 WHERE document_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	sigs := []*models.Signature{}
	for rows.Next() {
		sig := &models.Signature{}
		if err := rows.Scan(&sig.ID, &sig.DocumentID, &sig.UserID, &sig.X, &sig.Y, &sig.Page, &sig.SignStatus, &sig.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		sigs = append(sigs, sig)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sigs, nil
}
