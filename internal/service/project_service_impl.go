package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeCompleted)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.projects.SetCompleted(ctx, id, completed)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !p.Completed {
			return fmt.Errorf("project must be completed before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
