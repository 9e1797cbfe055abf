package vacancy

import (
	"context"
	"fmt"
	"strings"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/notify"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/vacancy/mock.go -package=mocks

type vacancyRepository interface {
	CreateVacancy(context.Context, model.Vacancy) (int64, error)
	UpdateVacancy(context.Context, model.Vacancy) error
	DeleteVacancy(context.Context, int64) error
	GetVacancyByID(context.Context, int64) (model.Vacancy, error)
	GetAllVacancies(context.Context) ([]model.Vacancy, error)
}

type dispatcher interface {
	Dispatch(context.Context, notify.Event) notify.Outcome
}

// Application is a candidate's response to a vacancy.
type Application struct {
	Name        string
	Phone       string
	Note        string
	Attachments []notify.Attachment
}

type Service struct {
	repo       vacancyRepository
	dispatcher dispatcher
}

func NewService(repo vacancyRepository, d dispatcher) *Service {
	return &Service{repo: repo, dispatcher: d}
}

func (s *Service) GetAllVacancies(ctx context.Context) ([]model.Vacancy, error) {
	vacancies, err := s.repo.GetAllVacancies(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all vacancies: %w", err)
	}

	return vacancies, nil
}

func (s *Service) GetVacancy(ctx context.Context, id int64) (model.Vacancy, error) {
	v, err := s.repo.GetVacancyByID(ctx, id)
	if err != nil {
		return model.Vacancy{}, fmt.Errorf("get vacancy: %w", err)
	}

	return v, nil
}

func (s *Service) CreateVacancy(ctx context.Context, v model.Vacancy) (int64, error) {
	id, err := s.repo.CreateVacancy(ctx, v)
	if err != nil {
		return 0, fmt.Errorf("create vacancy: %w", err)
	}

	return id, nil
}

func (s *Service) UpdateVacancy(ctx context.Context, v model.Vacancy) error {
	if err := s.repo.UpdateVacancy(ctx, v); err != nil {
		return fmt.Errorf("update vacancy: %w", err)
	}

	return nil
}

func (s *Service) DeleteVacancy(ctx context.Context, id int64) error {
	if err := s.repo.DeleteVacancy(ctx, id); err != nil {
		return fmt.Errorf("delete vacancy: %w", err)
	}

	return nil
}

// Apply relays an application to the HR endpoint. The error is only about the
// vacancy lookup; delivery problems are reported in the outcome.
func (s *Service) Apply(ctx context.Context, id int64, app Application) (notify.Outcome, error) {
	v, err := s.repo.GetVacancyByID(ctx, id)
	if err != nil {
		return notify.Outcome{}, fmt.Errorf("get vacancy: %w", err)
	}

	ev := notify.Event{
		Category: notify.CategoryVacancyApplication,
		Fields: map[string]string{
			notify.FieldVacancy:  v.Title,
			notify.FieldLocation: v.LocationHuman(),
			notify.FieldName:     orDash(app.Name),
			notify.FieldPhone:    orDash(app.Phone),
			notify.FieldNote:     orDash(app.Note),
		},
		Attachments: app.Attachments,
	}

	return s.dispatcher.Dispatch(ctx, ev), nil
}

func orDash(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "—"
	}

	return s
}
