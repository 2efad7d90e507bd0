// Package contract defines the request and response shapes crossing the
// service boundary: the CLI and exporters consume these, never the engine
// internals directly.
package contract

import (
	"time"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
)

// FieldUpdate is the edit entry point's input: one field of one stage of
// one project gets a new value.
type FieldUpdate struct {
	ProjectID string
	Stage     domain.StageName
	Field     string
	Value     string
}

// FieldUpdateResult reports what an edit produced. Violation is advisory:
// the value is stored regardless and the message surfaces near the field.
// Progress carries the recomputed scores for the whole project.
type FieldUpdateResult struct {
	Violation *engine.Violation
	Progress  engine.Score
}

// CalendarRequest scopes a calendar/deadline view. Now defaults to the
// wall clock; tests pin it.
type CalendarRequest struct {
	Now              *time.Time
	ProjectID        string
	IncludeCompleted bool
}

// CalendarEntry is one classified event, ready for rendering or export.
type CalendarEntry struct {
	Event  engine.Event
	DDay   int
	Bucket domain.DeadlineBucket
}

// StatusRequest scopes the dashboard view.
type StatusRequest struct {
	Now              *time.Time
	IncludeCompleted bool
}

// ProjectStatusView is one dashboard row.
type ProjectStatusView struct {
	ProjectID    string
	ProjectName  string
	ModelName    string
	Completed    bool
	Progress     engine.Score
	NextDeadline *CalendarEntry
	OverdueCount int
}

// StatusSummary aggregates the dashboard.
type StatusSummary struct {
	GeneratedAt   time.Time
	ProjectCount  int
	AverageScore  int
	OverdueEvents int
	DueToday      int
}

// StatusResponse is the full dashboard payload.
type StatusResponse struct {
	Summary  StatusSummary
	Projects []ProjectStatusView
}
