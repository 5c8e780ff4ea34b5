package repomanager

import (
	"context"
	"database/sql"

	"wallmagic/internal/dbx"
	"wallmagic/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
