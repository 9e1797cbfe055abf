package vacancy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
)

var ErrVacancyNotFound = errors.New("vacancy not found")

// Repository provides methods to interact with vacancies table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new vacancy repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const vacancyColumns = `id, location, title, salary, pay_period, experience, employment_type,
		schedule, work_hours, work_format, description, created_at`

// CreateVacancy inserts a vacancy and returns its ID.
func (r *Repository) CreateVacancy(ctx context.Context, v model.Vacancy) (int64, error) {
	query := `
		INSERT INTO vacancies (
		    location, title, salary, pay_period, experience, employment_type,
		    schedule, work_hours, work_format, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, v.Location, v.Title, v.Salary, v.PayPeriod, v.Experience, v.EmploymentType,
		v.Schedule, v.WorkHours, v.WorkFormat, v.Description,
	).Scan(&v.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create vacancy: %w", err)
	}

	return v.ID, nil
}

// UpdateVacancy overwrites a vacancy.
func (r *Repository) UpdateVacancy(ctx context.Context, v model.Vacancy) error {
	query := `
		UPDATE vacancies
		SET location = $1, title = $2, salary = $3, pay_period = $4, experience = $5, employment_type = $6,
		    schedule = $7, work_hours = $8, work_format = $9, description = $10
		WHERE id = $11;
    `

	res, err := r.db.Master.ExecContext(
		ctx, query, v.Location, v.Title, v.Salary, v.PayPeriod, v.Experience, v.EmploymentType,
		v.Schedule, v.WorkHours, v.WorkFormat, v.Description, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacancy: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrVacancyNotFound
	}

	return nil
}

// DeleteVacancy removes a vacancy.
func (r *Repository) DeleteVacancy(ctx context.Context, id int64) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM vacancies WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacancy: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrVacancyNotFound
	}

	return nil
}

// GetVacancyByID retrieves a vacancy by its ID.
func (r *Repository) GetVacancyByID(ctx context.Context, id int64) (model.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1;`

	v, err := scanVacancy(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vacancy{}, ErrVacancyNotFound
		}

		return model.Vacancy{}, fmt.Errorf("failed to get vacancy: %w", err)
	}

	return v, nil
}

// GetAllVacancies retrieves all vacancies, newest first.
func (r *Repository) GetAllVacancies(ctx context.Context) ([]model.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at DESC, id DESC;`

	rows, err := r.db.Master.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all vacancies: %w", err)
	}
	defer rows.Close()

	var vacancies []model.Vacancy
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, err
		}

		vacancies = append(vacancies, v)
	}

	return vacancies, rows.Err()
}

// CountVacancies returns the number of vacancies.
func (r *Repository) CountVacancies(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Master.QueryRowContext(ctx, `SELECT COUNT(*) FROM vacancies;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count vacancies: %w", err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVacancy(s scanner) (model.Vacancy, error) {
	var v model.Vacancy
	err := s.Scan(
		&v.ID, &v.Location, &v.Title, &v.Salary, &v.PayPeriod, &v.Experience, &v.EmploymentType,
		&v.Schedule, &v.WorkHours, &v.WorkFormat, &v.Description, &v.CreatedAt,
	)

	return v, err
}
