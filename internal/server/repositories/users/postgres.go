package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"wallmagic/internal/common"
	"wallmagic/internal/dbx"
	"wallmagic/internal/server/models"
)

// Unique constraint names from the users table migration.
const (
	emailConstraint    = "users_email_key"
	usernameConstraint = "users_username_key"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, username, password_hash, full_name, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.FullName, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)

	if err != nil {
		if taken := takenError(err); taken != nil {
			return nil, taken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, full_name, created_at, updated_at FROM users
		 WHERE email = $1
		 `

	return r.findOne(ctx, query, email)
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, full_name, created_at, updated_at FROM users
		 WHERE username = $1
		 `

	return r.findOne(ctx, query, username)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.FullName, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// takenError maps a unique constraint violation onto the matching duplicate
// sentinel. Any other error yields nil.
func takenError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case emailConstraint:
		return common.ErrEmailTaken
	case usernameConstraint:
		return common.ErrUsernameTaken
	}
	return nil
}
