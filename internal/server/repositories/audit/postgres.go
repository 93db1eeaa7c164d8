package audit

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

func (r *PostgresRepository) Create(ctx context.Context, entry *models.AuditEntry) error {

	query :=
		`INSERT INTO audit_logs (document_id, signer_email, ip)
         VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, entry.DocumentID, entry.SignerEmail, entry.IP)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByDocument(ctx context.Context, documentID string) ([]*models.AuditEntry, error) {
	query :=
		`SELECT id, document_id, signer_email, ip, timestamp FROM audit_logs
		 WHERE document_id = $1
		 ORDER BY timestamp DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := []*models.AuditEntry{}
	for rows.Next() {
		entry := &models.AuditEntry{}
		if err := rows.Scan(&entry.ID, &entry.DocumentID, &entry.SignerEmail, &entry.IP, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entries, nil
}
