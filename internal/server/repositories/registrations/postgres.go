package registrations

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

func (r *PostgresRepository) Create(ctx context.Context, reg *models.PendingRegistration) error {

	query :=
		`INSERT INTO otps (email, otp, user_data)
         VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, reg.Email, reg.Code, reg.Payload)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.PendingRegistration, error) {
	query :=
		`SELECT email, otp, user_data, created_at FROM otps
		 WHERE email = $1
		 `

	reg := &models.PendingRegistration{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&reg.Email, &reg.Code, &reg.Payload, &reg.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reg, nil
}

func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) error {

	query := `DELETE FROM otps WHERE email = $1`

	_, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
