package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
)

var ErrProjectNotFound = errors.New("project not found")

// Repository provides methods to interact with projects table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new project repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateProject inserts a project and returns its ID.
func (r *Repository) CreateProject(ctx context.Context, p model.Project) (int64, error) {
	query := `
		INSERT INTO projects (title, subtitle, image, description, purpose, advantages, application)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, p.Title, p.Subtitle, p.Image, p.Description, p.Purpose, p.Advantages, p.Application,
	).Scan(&p.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	return p.ID, nil
}

// UpdateProject overwrites a project.
func (r *Repository) UpdateProject(ctx context.Context, p model.Project) error {
	query := `
		UPDATE projects
		SET title = $1, subtitle = $2, image = $3, description = $4, purpose = $5, advantages = $6, application = $7
		WHERE id = $8;
    `

	res, err := r.db.Master.ExecContext(
		ctx, query, p.Title, p.Subtitle, p.Image, p.Description, p.Purpose, p.Advantages, p.Application, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes a project.
func (r *Repository) DeleteProject(ctx context.Context, id int64) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// GetProjectByID retrieves a project by its ID.
func (r *Repository) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	query := `
		SELECT id, title, subtitle, image, description, purpose, advantages, application, created_at
		FROM projects
		WHERE id = $1;
    `

	var p model.Project
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Subtitle, &p.Image, &p.Description, &p.Purpose, &p.Advantages, &p.Application, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}

		return model.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// GetAllProjects retrieves all projects, newest first.
func (r *Repository) GetAllProjects(ctx context.Context) ([]model.Project, error) {
	query := `
		SELECT id, title, subtitle, image, description, purpose, advantages, application, created_at
		FROM projects
		ORDER BY created_at DESC, id DESC;
    `

	rows, err := r.db.Master.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Subtitle, &p.Image, &p.Description, &p.Purpose, &p.Advantages, &p.Application, &p.CreatedAt,
		); err != nil {
			return nil, err
		}

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// CountProjects returns the number of projects.
func (r *Repository) CountProjects(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Master.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return n, nil
}
