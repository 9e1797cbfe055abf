package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/ordering"
	"github.com/aliskhannn/corpsite/internal/repository/dbtx"
)

// ErrEmployeeNotFound wraps ordering.ErrNotFound so rank operations can match either.
var ErrEmployeeNotFound = fmt.Errorf("employee %w", ordering.ErrNotFound)

// Tx is the part of the repository available inside a rank transaction.
type Tx interface {
	ordering.Store
	CreateEmployee(ctx context.Context, e model.Employee) (int64, error)
}

// Repository provides methods to interact with employees table.
type Repository struct {
	db *dbpg.DB
	q  dbtx.Querier
}

// NewRepository creates a new employee repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db, q: db.Master}
}

// InRankTx runs fn against a repository bound to a transaction that holds the
// employee ordering lock, so rank reads and writes inside fn are serialized.
func (r *Repository) InRankTx(ctx context.Context, fn func(tx Tx) error) error {
	return dbtx.WithTx(ctx, r.db.Master, func(tx *sql.Tx) error {
		if err := dbtx.AdvisoryLock(ctx, tx, dbtx.LockEmployeeOrder); err != nil {
			return err
		}

		return fn(&Repository{db: r.db, q: tx})
	})
}

// CreateEmployee inserts a new employee and returns its ID.
func (r *Repository) CreateEmployee(ctx context.Context, e model.Employee) (int64, error) {
	query := `
		INSERT INTO employees (
		    full_name, title, dept, email, phone, photo, span2, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.q.QueryRowContext(
		ctx, query, e.FullName, e.Title, e.Dept, e.Email, e.Phone, e.Photo, e.Span2, e.SortOrder,
	).Scan(&e.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return e.ID, nil
}

// UpdateEmployee overwrites the editable fields of an employee. The rank is not touched.
func (r *Repository) UpdateEmployee(ctx context.Context, e model.Employee) error {
	query := `
		UPDATE employees
		SET full_name = $1, title = $2, dept = $3, email = $4, phone = $5, photo = $6, span2 = $7
		WHERE id = $8;
    `

	res, err := r.q.ExecContext(ctx, query, e.FullName, e.Title, e.Dept, e.Email, e.Phone, e.Photo, e.Span2, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return expectOneRow(res)
}

// DeleteEmployee removes an employee. Ranks of the others keep their gap.
func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1;`

	res, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return expectOneRow(res)
}

// GetEmployeeByID retrieves an employee by its ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, id int64) (model.Employee, error) {
	query := `
		SELECT id, full_name, title, dept, email, phone, photo, span2, sort_order
		FROM employees
		WHERE id = $1;
    `

	e, err := scanEmployee(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, ErrEmployeeNotFound
		}

		return model.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetAllEmployees retrieves all employees in display order: ranked first, unranked last, then by id.
func (r *Repository) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	query := `
		SELECT id, full_name, title, dept, email, phone, photo, span2, sort_order
		FROM employees
		ORDER BY sort_order ASC NULLS LAST, id ASC;
    `

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}

		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// CountEmployees returns the number of employees.
func (r *Repository) CountEmployees(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return n, nil
}

// MaxRank returns the largest assigned rank; ok is false when no employee is ranked.
func (r *Repository) MaxRank(ctx context.Context) (int, bool, error) {
	var top sql.NullInt64
	if err := r.q.QueryRowContext(ctx, `SELECT MAX(sort_order) FROM employees;`).Scan(&top); err != nil {
		return 0, false, fmt.Errorf("failed to get max rank: %w", err)
	}

	return int(top.Int64), top.Valid, nil
}

// Rank returns the rank of an employee, nil when it has none.
func (r *Repository) Rank(ctx context.Context, id int64) (*int, error) {
	var rank sql.NullInt64
	err := r.q.QueryRowContext(ctx, `SELECT sort_order FROM employees WHERE id = $1;`, id).Scan(&rank)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}

		return nil, fmt.Errorf("failed to get rank: %w", err)
	}

	return nullableRank(rank), nil
}

// SetRank assigns a rank to an employee.
func (r *Repository) SetRank(ctx context.Context, id int64, rank int) error {
	res, err := r.q.ExecContext(ctx, `UPDATE employees SET sort_order = $1 WHERE id = $2;`, rank, id)
	if err != nil {
		return fmt.Errorf("failed to set rank: %w", err)
	}

	return expectOneRow(res)
}

// Before returns the ranked employee with the greatest rank below the given one.
func (r *Repository) Before(ctx context.Context, rank int) (ordering.Item, bool, error) {
	query := `
		SELECT id, sort_order
		FROM employees
		WHERE sort_order < $1
		ORDER BY sort_order DESC, id ASC
		LIMIT 1;
    `

	return r.neighbour(ctx, query, rank)
}

// After returns the ranked employee with the smallest rank above the given one.
func (r *Repository) After(ctx context.Context, rank int) (ordering.Item, bool, error) {
	query := `
		SELECT id, sort_order
		FROM employees
		WHERE sort_order > $1
		ORDER BY sort_order ASC, id ASC
		LIMIT 1;
    `

	return r.neighbour(ctx, query, rank)
}

func (r *Repository) neighbour(ctx context.Context, query string, rank int) (ordering.Item, bool, error) {
	var (
		id int64
		nr sql.NullInt64
	)

	err := r.q.QueryRowContext(ctx, query, rank).Scan(&id, &nr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ordering.Item{}, false, nil
		}

		return ordering.Item{}, false, fmt.Errorf("failed to get neighbour: %w", err)
	}

	return ordering.Item{ID: id, Rank: nullableRank(nr)}, true, nil
}

// SwapRanks exchanges the ranks of two employees in a single statement.
func (r *Repository) SwapRanks(ctx context.Context, a, b ordering.Item) error {
	if a.Rank == nil || b.Rank == nil {
		return errors.New("failed to swap ranks: both employees must be ranked")
	}

	query := `
		UPDATE employees
		SET sort_order = CASE id WHEN $1 THEN $2::int WHEN $3 THEN $4::int END
		WHERE id IN ($1, $3);
    `

	res, err := r.q.ExecContext(ctx, query, a.ID, *b.Rank, b.ID, *a.Rank)
	if err != nil {
		return fmt.Errorf("failed to swap ranks: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows != 2 {
		return ErrEmployeeNotFound
	}

	return nil
}

// Unranked returns the ids of employees without a rank in ascending order.
func (r *Repository) Unranked(ctx context.Context) ([]int64, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id FROM employees WHERE sort_order IS NULL ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list unranked employees: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(s scanner) (model.Employee, error) {
	var (
		e    model.Employee
		rank sql.NullInt64
	)

	if err := s.Scan(&e.ID, &e.FullName, &e.Title, &e.Dept, &e.Email, &e.Phone, &e.Photo, &e.Span2, &rank); err != nil {
		return model.Employee{}, err
	}

	e.SortOrder = nullableRank(rank)

	return e, nil
}

func nullableRank(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}

	v := int(n.Int64)

	return &v
}

func expectOneRow(res sql.Result) error {
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
