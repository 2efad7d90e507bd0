package service

import (
	"context"
	"fmt"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/db"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
	"github.com/minsukang/stagegate/internal/repository"
	"github.com/minsukang/stagegate/internal/schema"
)

type fieldService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	registry schema.Registry
}

func NewFieldService(projects repository.ProjectRepo, uow db.UnitOfWork, registry schema.Registry) FieldService {
	return &fieldService{projects: projects, uow: uow, registry: registry}
}

// UpdateField validates the candidate against the current snapshot, stores
// it, and returns the violation (if any) together with the scores
// recomputed from the post-edit state.
func (s *fieldService) UpdateField(ctx context.Context, req contract.FieldUpdate) (*contract.FieldUpdateResult, error) {
	if !domain.ValidStageNames[string(req.Stage)] {
		return nil, fmt.Errorf("unknown stage %q", req.Stage)
	}
	p, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	violation := engine.ValidateDateField(s.registry, p, req.Stage, req.Field, req.Value)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).SetField(ctx, req.ProjectID, req.Stage, req.Field, req.Value)
	})
	if err != nil {
		return nil, fmt.Errorf("storing field %s/%s: %w", req.Stage, req.Field, err)
	}

	stage := p.Stage(req.Stage)
	stage.Set(req.Field, req.Value)
	p.SetStage(req.Stage, stage)

	return &contract.FieldUpdateResult{
		Violation: violation,
		Progress:  engine.OverallProgress(s.registry, p),
	}, nil
}

func (s *fieldService) SetExecuted(ctx context.Context, projectID string, stageName domain.StageName, field string, executed bool) (*contract.FieldUpdateResult, error) {
	if !domain.ValidStageNames[string(stageName)] {
		return nil, fmt.Errorf("unknown stage %q", stageName)
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).SetExecuted(ctx, projectID, stageName, field, executed)
	})
	if err != nil {
		return nil, fmt.Errorf("storing executed flag %s/%s: %w", stageName, field, err)
	}

	stage := p.Stage(stageName)
	stage.SetExecuted(field, executed)
	p.SetStage(stageName, stage)

	return &contract.FieldUpdateResult{
		Progress: engine.OverallProgress(s.registry, p),
	}, nil
}

func (s *fieldService) SetNotes(ctx context.Context, projectID string, stageName domain.StageName, notes string) error {
	if !domain.ValidStageNames[string(stageName)] {
		return fmt.Errorf("unknown stage %q", stageName)
	}
	return s.projects.SetNotes(ctx, projectID, stageName, notes)
}

// Check runs the validator and recomputes scores against a probe copy of
// the stage, leaving stored data untouched.
func (s *fieldService) Check(ctx context.Context, req contract.FieldUpdate) (*contract.FieldUpdateResult, error) {
	p, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	violation := engine.ValidateDateField(s.registry, p, req.Stage, req.Field, req.Value)

	probe := *p
	stage := p.Stage(req.Stage).Clone()
	stage.Set(req.Field, req.Value)
	probe.SetStage(req.Stage, stage)

	return &contract.FieldUpdateResult{
		Violation: violation,
		Progress:  engine.OverallProgress(s.registry, &probe),
	}, nil
}
