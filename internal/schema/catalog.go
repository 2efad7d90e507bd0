package schema

import "github.com/minsukang/stagegate/internal/domain"

// CategoryPriority returns the tie-break priority for calendar events on
// the same date (lower = more visible). High-visibility milestones such as
// launch and mass production sort before administrative ones.
func CategoryPriority(c domain.EventCategory) int {
	switch c {
	case domain.CategoryLaunch:
		return 0
	case domain.CategoryProduction:
		return 1
	case domain.CategoryQuality:
		return 2
	case domain.CategoryService:
		return 3
	case domain.CategoryAdmin:
		return 4
	}
	return 5
}

// DateFields returns every date-bearing field of a stage, required and
// optional alike. This is the event catalog the extractor walks.
func (r Registry) DateFields(stage domain.StageName) []Field {
	var out []Field
	for _, f := range r.stages[stage] {
		if f.Kind == KindDate {
			out = append(out, f)
		}
	}
	return out
}
