package service

import (
	"context"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string, force bool) error
}

// FieldService is the edit entry point. Validation is advisory: the value
// is persisted regardless and the violation, if any, rides along in the
// result for the caller to surface.
type FieldService interface {
	UpdateField(ctx context.Context, req contract.FieldUpdate) (*contract.FieldUpdateResult, error)
	SetExecuted(ctx context.Context, projectID string, stage domain.StageName, field string, executed bool) (*contract.FieldUpdateResult, error)
	SetNotes(ctx context.Context, projectID string, stage domain.StageName, notes string) error
	// Check runs validation only, without persisting anything.
	Check(ctx context.Context, req contract.FieldUpdate) (*contract.FieldUpdateResult, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

// CalendarService derives the classified event list. Always recomputed
// from the current project collection, never cached.
type CalendarService interface {
	Calendar(ctx context.Context, req contract.CalendarRequest) ([]contract.CalendarEntry, error)
}
