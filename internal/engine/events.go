package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/schema"
)

// Event is one date-bearing milestone derived from a project's stage data.
// Events are ephemeral: regenerated on demand from the current project
// collection and never persisted.
type Event struct {
	ID          string
	ProjectID   string
	ProjectName string
	ModelName   string
	Stage       domain.StageName
	Field       string
	Label       string
	Category    domain.EventCategory
	Date        time.Time
	Executed    bool
}

// ExtractEvents scans every stage of every project and emits one event per
// populated date field in the registry's catalog. Blank and unparseable
// dates are skipped. Output is sorted ascending by date; same-day ties
// break by category priority, then project name, then field name, so the
// result is deterministic for identical input.
func ExtractEvents(reg schema.Registry, projects []*domain.Project) []Event {
	var events []Event
	for _, p := range projects {
		if p == nil {
			continue
		}
		for _, stage := range domain.AllStages {
			data := p.Stage(stage)
			for _, f := range reg.DateFields(stage) {
				date, ok := storedDate(data, f.Name)
				if !ok {
					continue
				}
				events = append(events, Event{
					ID:          fmt.Sprintf("%s_%s", p.ID, f.Name),
					ProjectID:   p.ID,
					ProjectName: p.Name,
					ModelName:   p.ModelName,
					Stage:       stage,
					Field:       f.Name,
					Label:       f.Label,
					Category:    f.Category,
					Date:        date,
					Executed:    data.IsExecuted(f.Name),
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		pa, pb := schema.CategoryPriority(a.Category), schema.CategoryPriority(b.Category)
		if pa != pb {
			return pa < pb
		}
		if a.ProjectName != b.ProjectName {
			return a.ProjectName < b.ProjectName
		}
		return a.Field < b.Field
	})
	return events
}
