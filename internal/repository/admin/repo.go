package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
)

var ErrAdminNotFound = errors.New("admin not found")

// Repository provides methods to interact with admins table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new admin repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetAdminByLogin retrieves an admin account by login.
func (r *Repository) GetAdminByLogin(ctx context.Context, login string) (model.Admin, error) {
	var a model.Admin
	err := r.db.Master.QueryRowContext(ctx,
		`SELECT id, login, password_hash FROM admins WHERE login = $1;`, login,
	).Scan(&a.ID, &a.Login, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Admin{}, ErrAdminNotFound
		}

		return model.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

// UpsertAdmin creates the account or replaces its password hash.
func (r *Repository) UpsertAdmin(ctx context.Context, login, passwordHash string) error {
	query := `
		INSERT INTO admins (login, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (login) DO UPDATE SET password_hash = EXCLUDED.password_hash;
    `

	if _, err := r.db.Master.ExecContext(ctx, query, login, passwordHash); err != nil {
		return fmt.Errorf("failed to upsert admin: %w", err)
	}

	return nil
}
