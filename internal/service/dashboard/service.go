package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dashboard/mock.go -package=mocks

type newsCounter interface {
	CountNews(context.Context) (int, error)
}

type employeeCounter interface {
	CountEmployees(context.Context) (int, error)
}

type projectCounter interface {
	CountProjects(context.Context) (int, error)
}

type vacancyCounter interface {
	CountVacancies(context.Context) (int, error)
}

// Stats is the admin dashboard summary.
type Stats struct {
	News      int `json:"news"`
	Employees int `json:"employees"`
	Projects  int `json:"projects"`
	Vacancies int `json:"vacancies"`
}

type Service struct {
	news      newsCounter
	employees employeeCounter
	projects  projectCounter
	vacancies vacancyCounter
}

func NewService(n newsCounter, e employeeCounter, p projectCounter, v vacancyCounter) *Service {
	return &Service{news: n, employees: e, projects: p, vacancies: v}
}

// GetStats counts every content type concurrently.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if stats.News, err = s.news.CountNews(ctx); err != nil {
			return fmt.Errorf("count news: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.Employees, err = s.employees.CountEmployees(ctx); err != nil {
			return fmt.Errorf("count employees: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.Projects, err = s.projects.CountProjects(ctx); err != nil {
			return fmt.Errorf("count projects: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.Vacancies, err = s.vacancies.CountVacancies(ctx); err != nil {
			return fmt.Errorf("count vacancies: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return stats, nil
}
