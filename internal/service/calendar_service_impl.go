package service

import (
	"context"
	"fmt"
	"time"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
	"github.com/minsukang/stagegate/internal/repository"
	"github.com/minsukang/stagegate/internal/schema"
)

type calendarService struct {
	projects repository.ProjectRepo
	registry schema.Registry
}

func NewCalendarService(projects repository.ProjectRepo, registry schema.Registry) CalendarService {
	return &calendarService{projects: projects, registry: registry}
}

func (s *calendarService) Calendar(ctx context.Context, req contract.CalendarRequest) ([]contract.CalendarEntry, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	projects, err := s.projects.List(ctx, req.IncludeCompleted)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	if req.ProjectID != "" {
		projects = filterByID(projects, req.ProjectID)
	}

	events := engine.ExtractEvents(s.registry, projects)
	entries := make([]contract.CalendarEntry, 0, len(events))
	for _, ev := range events {
		d := engine.Classify(ev, now)
		entries = append(entries, contract.CalendarEntry{
			Event:  ev,
			DDay:   d.DDay,
			Bucket: d.Bucket,
		})
	}
	return entries, nil
}

func filterByID(projects []*domain.Project, id string) []*domain.Project {
	var out []*domain.Project
	for _, p := range projects {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return out
}
