package savedsignatures

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetImages(ctx context.Context, userID string) ([]string, error) {
	query :=
		`SELECT images FROM saved_signatures
		 WHERE user_id = $1
		 `

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, fmt.Errorf("images decode error: %w", err)
	}

	return images, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, userID string, images []string) error {

	raw, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("images encode error: %w", err)
	}

	query :=
		`INSERT INTO saved_signatures (user_id, images)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET images = EXCLUDED.images
		 `

	_, err = r.db.ExecContext(ctx, query, userID, raw)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
