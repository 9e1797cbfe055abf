package project

import (
	"context"
	"fmt"

	"github.com/aliskhannn/corpsite/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/project/mock.go -package=mocks

type projectRepository interface {
	CreateProject(context.Context, model.Project) (int64, error)
	UpdateProject(context.Context, model.Project) error
	DeleteProject(context.Context, int64) error
	GetProjectByID(context.Context, int64) (model.Project, error)
	GetAllProjects(context.Context) ([]model.Project, error)
}

type Service struct {
	repo projectRepository
}

func NewService(repo projectRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAllProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all projects: %w", err)
	}

	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, id int64) (model.Project, error) {
	p, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}

	return p, nil
}

func (s *Service) CreateProject(ctx context.Context, p model.Project) (int64, error) {
	id, err := s.repo.CreateProject(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}

	return id, nil
}

func (s *Service) UpdateProject(ctx context.Context, p model.Project) error {
	if err := s.repo.UpdateProject(ctx, p); err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	return nil
}
