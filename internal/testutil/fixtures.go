package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/minsukang/stagegate/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithModelName(m string) ProjectOption {
	return func(p *domain.Project) {
		p.ModelName = m
	}
}

func WithCompleted() ProjectOption {
	return func(p *domain.Project) {
		p.Completed = true
	}
}

// WithField sets a stage field value.
func WithField(stage domain.StageName, field, value string) ProjectOption {
	return func(p *domain.Project) {
		s := p.Stage(stage)
		s.Set(field, value)
		p.SetStage(stage, s)
	}
}

// WithExecuted flags a stage date field as executed.
func WithExecuted(stage domain.StageName, field string) ProjectOption {
	return func(p *domain.Project) {
		s := p.Stage(stage)
		s.SetExecuted(field, true)
		p.SetStage(stage, s)
	}
}

// WithDate sets a date value and its execution flag in one go.
func WithDate(stage domain.StageName, field, value string, executed bool) ProjectOption {
	return func(p *domain.Project) {
		s := p.Stage(stage)
		s.Set(field, value)
		s.SetExecuted(field, executed)
		p.SetStage(stage, s)
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
