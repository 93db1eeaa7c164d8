package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/signkeeper/internal/dbx"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/audit"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/documents"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/registrations"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/savedsignatures"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/signaturerequests"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/signatures"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Registrations(db dbx.DBTX) registrations.Repository
	Documents(db dbx.DBTX) documents.Repository
	Signatures(db dbx.DBTX) signatures.Repository
	SavedSignatures(db dbx.DBTX) savedsignatures.Repository
	SignatureRequests(db dbx.DBTX) signaturerequests.Repository
	Audit(db dbx.DBTX) audit.Repository
}
