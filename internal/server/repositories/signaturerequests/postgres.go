package signaturerequests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/dbx"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, req *models.SignatureRequest) error {

	query :=
		`INSERT INTO public_signatures (document_id, email, token)
         VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, req.DocumentID, req.Email, req.Token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.SignatureRequest, error) {
	query :=
		`SELECT id, document_id, email, token, created_at FROM public_signatures
		 WHERE token = $1
		 `

	req := &models.SignatureRequest{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&req.ID, &req.DocumentID, &req.Email, &req.Token, &req.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}
