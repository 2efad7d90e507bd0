package engine

import (
	"fmt"
	"time"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/schema"
)

// DateLayout is the ISO date layout used for every stage date field.
const DateLayout = "2006-01-02"

type ViolationCode string

const (
	ViolationRequired     ViolationCode = "required"
	ViolationInvalidDate  ViolationCode = "invalid_date"
	ViolationAfterCeiling ViolationCode = "after_mass_production"
	ViolationBeforePred   ViolationCode = "before_predecessor"
	ViolationAfterSucc    ViolationCode = "after_successor"
)

// Violation is an advisory validation result. Callers may store the
// candidate value regardless and merely surface Message near the field.
type Violation struct {
	Code    ViolationCode
	Field   string
	Against string
	Message string
}

// ValidateDateField checks a candidate value for a date field against the
// project's current snapshot. It returns nil when the value is acceptable.
//
// Rules apply in fixed precedence, first hit wins:
//  1. required field left blank
//  2. value does not parse as a calendar date
//  3. stage2/stage3 dates must not come after stage1's mass production date
//  4. the field's declared predecessor (and any successor naming this field)
//     must keep its stored ordering
//
// Pure and side-effect free; safe to call on every keystroke.
func ValidateDateField(reg schema.Registry, p *domain.Project, stage domain.StageName, field, candidate string) *Violation {
	decl, ok := reg.Lookup(stage, field)
	if !ok || decl.Kind != schema.KindDate {
		return nil
	}

	if candidate == "" {
		if decl.Required {
			return &Violation{
				Code:    ViolationRequired,
				Field:   field,
				Message: fmt.Sprintf("%s is required", decl.Label),
			}
		}
		return nil
	}

	value, err := time.Parse(DateLayout, candidate)
	if err != nil {
		return &Violation{
			Code:    ViolationInvalidDate,
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", decl.Label),
		}
	}

	if v := checkMassProductionCeiling(reg, p, stage, field, value); v != nil {
		return v
	}
	return checkStoredOrdering(reg, p, stage, decl, value)
}

// checkMassProductionCeiling enforces the cross-stage rule: no stage2 or
// stage3 date may land after stage1's mass production date.
func checkMassProductionCeiling(reg schema.Registry, p *domain.Project, stage domain.StageName, field string, value time.Time) *Violation {
	if p == nil || stage == domain.Stage1 {
		return nil
	}
	ceiling, ok := storedDate(p.Stage(domain.Stage1), "massProductionDate")
	if !ok {
		return nil
	}
	if value.After(ceiling) {
		decl, _ := reg.Lookup(stage, field)
		return &Violation{
			Code:    ViolationAfterCeiling,
			Field:   field,
			Against: "massProductionDate",
			Message: fmt.Sprintf("%s must precede the mass production date (%s)", decl.Label, ceiling.Format(DateLayout)),
		}
	}
	return nil
}

// checkStoredOrdering enforces the intra-stage predecessor chain in both
// directions: the candidate must not precede its stored predecessor, and
// must not follow any stored field that declares it as predecessor.
func checkStoredOrdering(reg schema.Registry, p *domain.Project, stage domain.StageName, decl schema.Field, value time.Time) *Violation {
	if p == nil {
		return nil
	}
	data := p.Stage(stage)

	if decl.Predecessor != "" {
		if pred, ok := storedDate(data, decl.Predecessor); ok && value.Before(pred) {
			predDecl, _ := reg.Lookup(stage, decl.Predecessor)
			return &Violation{
				Code:    ViolationBeforePred,
				Field:   decl.Name,
				Against: decl.Predecessor,
				Message: fmt.Sprintf("%s must come after %s (%s)", decl.Label, predDecl.Label, pred.Format(DateLayout)),
			}
		}
	}

	for _, succ := range reg.Fields(stage) {
		if succ.Predecessor != decl.Name {
			continue
		}
		if stored, ok := storedDate(data, succ.Name); ok && value.After(stored) {
			return &Violation{
				Code:    ViolationAfterSucc,
				Field:   decl.Name,
				Against: succ.Name,
				Message: fmt.Sprintf("%s must come before %s (%s)", decl.Label, succ.Label, stored.Format(DateLayout)),
			}
		}
	}
	return nil
}

// storedDate parses a stored date field, treating blanks and malformed
// values as absent.
func storedDate(data domain.Stage, field string) (time.Time, bool) {
	raw := data.Value(field)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
