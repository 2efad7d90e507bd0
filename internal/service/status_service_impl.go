package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
	"github.com/minsukang/stagegate/internal/repository"
	"github.com/minsukang/stagegate/internal/schema"
)

type statusService struct {
	projects repository.ProjectRepo
	registry schema.Registry
}

func NewStatusService(projects repository.ProjectRepo, registry schema.Registry) StatusService {
	return &statusService{projects: projects, registry: registry}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	projects, err := s.projects.List(ctx, req.IncludeCompleted)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	views := make([]contract.ProjectStatusView, 0, len(projects))
	var scoreSum, overdueTotal, dueToday int
	for _, p := range projects {
		view := contract.ProjectStatusView{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			ModelName:   p.ModelName,
			Completed:   p.Completed,
			Progress:    engine.OverallProgress(s.registry, p),
		}

		for _, ev := range engine.ExtractEvents(s.registry, []*domain.Project{p}) {
			d := engine.Classify(ev, now)
			switch d.Bucket {
			case domain.BucketOverdue:
				view.OverdueCount++
			case domain.BucketToday:
				dueToday++
			}
			if view.NextDeadline == nil && (d.Bucket == domain.BucketToday || d.Bucket == domain.BucketUpcoming) {
				entry := contract.CalendarEntry{Event: ev, DDay: d.DDay, Bucket: d.Bucket}
				view.NextDeadline = &entry
			}
		}

		scoreSum += view.Progress.Overall
		overdueTotal += view.OverdueCount
		views = append(views, view)
	}

	sortStatusViews(views)

	summary := contract.StatusSummary{
		GeneratedAt:   now,
		ProjectCount:  len(views),
		OverdueEvents: overdueTotal,
		DueToday:      dueToday,
	}
	if len(views) > 0 {
		summary.AverageScore = scoreSum / len(views)
	}

	return &contract.StatusResponse{Summary: summary, Projects: views}, nil
}

// sortStatusViews orders rows by urgency: most overdue events first, then
// nearest upcoming deadline, then name.
func sortStatusViews(views []contract.ProjectStatusView) {
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.OverdueCount != b.OverdueCount {
			return a.OverdueCount > b.OverdueCount
		}
		if (a.NextDeadline == nil) != (b.NextDeadline == nil) {
			return a.NextDeadline != nil
		}
		if a.NextDeadline != nil && b.NextDeadline != nil && a.NextDeadline.DDay != b.NextDeadline.DDay {
			return a.NextDeadline.DDay < b.NextDeadline.DDay
		}
		return a.ProjectName < b.ProjectName
	})
}
