package repository

import (
	"context"

	"github.com/minsukang/stagegate/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error

	// SetField upserts one stage field value and bumps the project's
	// updated_at timestamp.
	SetField(ctx context.Context, projectID string, stage domain.StageName, field, value string) error
	// SetExecuted upserts one execution flag without touching the value.
	SetExecuted(ctx context.Context, projectID string, stage domain.StageName, field string, executed bool) error
	// SetNotes replaces a stage's free-text notes.
	SetNotes(ctx context.Context, projectID string, stage domain.StageName, notes string) error
}
