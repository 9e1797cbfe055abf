package team

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/ordering"
	"github.com/aliskhannn/corpsite/internal/repository/employee"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/team/mock.go -package=mocks

type employeeRepository interface {
	InRankTx(context.Context, func(employee.Tx) error) error
	UpdateEmployee(context.Context, model.Employee) error
	DeleteEmployee(context.Context, int64) error
	GetEmployeeByID(context.Context, int64) (model.Employee, error)
	GetAllEmployees(context.Context) ([]model.Employee, error)
}

// Roster is the public team page: employees in display order and their departments.
type Roster struct {
	Employees   []model.Employee `json:"employees"`
	Departments []string         `json:"departments"`
}

type Service struct {
	repo employeeRepository
}

func NewService(repo employeeRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetRoster(ctx context.Context) (Roster, error) {
	employees, err := s.repo.GetAllEmployees(ctx)
	if err != nil {
		return Roster{}, fmt.Errorf("get employees: %w", err)
	}

	return Roster{Employees: employees, Departments: departments(employees)}, nil
}

// departments returns the distinct trimmed department names sorted case-insensitively.
func departments(employees []model.Employee) []string {
	seen := make(map[string]struct{})
	depts := make([]string, 0)

	for _, e := range employees {
		d := strings.TrimSpace(e.Dept)
		if d == "" {
			continue
		}

		if _, ok := seen[d]; ok {
			continue
		}

		seen[d] = struct{}{}
		depts = append(depts, d)
	}

	slices.SortStableFunc(depts, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return depts
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (model.Employee, error) {
	e, err := s.repo.GetEmployeeByID(ctx, id)
	if err != nil {
		return model.Employee{}, fmt.Errorf("get employee: %w", err)
	}

	return e, nil
}

// CreateEmployee adds an employee at the end of the display order.
func (s *Service) CreateEmployee(ctx context.Context, e model.Employee) (int64, error) {
	var id int64

	err := s.repo.InRankTx(ctx, func(tx employee.Tx) error {
		rank, err := ordering.NewManager(tx).NextRank(ctx)
		if err != nil {
			return err
		}

		e.SortOrder = &rank

		id, err = tx.CreateEmployee(ctx, e)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}

	return id, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, e model.Employee) error {
	if err := s.repo.UpdateEmployee(ctx, e); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	return nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	return nil
}

// MoveUp swaps the employee with the previous one in display order.
func (s *Service) MoveUp(ctx context.Context, id int64) (ordering.Move, error) {
	return s.move(ctx, id, (*ordering.Manager).Promote)
}

// MoveDown swaps the employee with the next one in display order.
func (s *Service) MoveDown(ctx context.Context, id int64) (ordering.Move, error) {
	return s.move(ctx, id, (*ordering.Manager).Demote)
}

func (s *Service) move(
	ctx context.Context,
	id int64,
	op func(*ordering.Manager, context.Context, int64) (ordering.Move, error),
) (ordering.Move, error) {
	var res ordering.Move

	err := s.repo.InRankTx(ctx, func(tx employee.Tx) error {
		var err error
		res, err = op(ordering.NewManager(tx), ctx, id)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("move employee %d: %w", id, err)
	}

	zlog.Logger.Info().Int64("id", id).Str("result", res.String()).Msg("employee moved")

	return res, nil
}

// Backfill ranks every employee that has none; ranked employees keep their rank.
func (s *Service) Backfill(ctx context.Context) (int, error) {
	var n int

	err := s.repo.InRankTx(ctx, func(tx employee.Tx) error {
		var err error
		n, err = ordering.NewManager(tx).Backfill(ctx)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("backfill employee order: %w", err)
	}

	if n > 0 {
		zlog.Logger.Info().Int("count", n).Msg("employee order backfilled")
	}

	return n, nil
}
