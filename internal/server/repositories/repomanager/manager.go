package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/foundrmate/internal/dbx"
	"github.com/dmitrijs2005/foundrmate/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle, so services can
// use the same repository inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
