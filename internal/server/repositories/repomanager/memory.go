package repomanager

import (
	"context"
	"database/sql"

	"wallmagic/internal/dbx"
	"wallmagic/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends repositories backed by process memory.
// It serves tests and the no-database mode: RunMigrations is a no-op and
// the DBTX argument to Users is ignored, so a nil *sql.DB is fine.
type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func (m *InMemoryRepositoryManager) Users(_ dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) RunMigrations(_ context.Context, _ *sql.DB) error {
	return nil
}

// NewInMemoryRepositoryManager constructs a memory-backed RepositoryManager.
func NewInMemoryRepositoryManager() (RepositoryManager, error) {
	return &InMemoryRepositoryManager{users: users.NewMemoryRepository()}, nil
}
