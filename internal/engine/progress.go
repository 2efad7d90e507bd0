// Package engine is the derivation core: progress scores, temporal ordering
// checks, calendar events, and deadline classification are all pure
// functions of a project snapshot and the field registry. Nothing here
// mutates its inputs, touches clocks, or keeps state between calls.
package engine

import (
	"math"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/schema"
)

// Score is the derived completion percentage set for one project.
// Overall is the rounded arithmetic mean of the three stage scores.
type Score struct {
	Stage1  int
	Stage2  int
	Stage3  int
	Overall int
}

// Stage returns the score for a single stage by name.
func (s Score) Stage(name domain.StageName) int {
	switch name {
	case domain.Stage1:
		return s.Stage1
	case domain.Stage2:
		return s.Stage2
	case domain.Stage3:
		return s.Stage3
	}
	return 0
}

// StageProgress computes the 0-100 completion score for one stage.
//
// Each required date field weighs 1.0: the date value being present earns
// 0.5, and the execution flag being set earns another 0.5. The execution
// half-credit is deliberately not gated on the date being present; a flag
// set while the date is still blank earns its 0.5. Callers depend on this
// exact accounting, so it must not be "fixed" here.
//
// Each required plain field weighs 1.0, earned iff non-blank after
// trimming. Optional fields and notes never contribute either way.
//
// Never fails: unknown stage names and empty stage data score 0.
func StageProgress(reg schema.Registry, p *domain.Project, stage domain.StageName) int {
	if p == nil {
		return 0
	}
	set := reg.RequiredFields(stage)
	data := p.Stage(stage)

	var total, achieved float64
	for _, name := range set.Dates {
		total += 1.0
		if data.Filled(name) {
			achieved += 0.5
		}
		if data.IsExecuted(name) {
			achieved += 0.5
		}
	}
	for _, name := range set.Plain {
		total += 1.0
		if data.Filled(name) {
			achieved += 1.0
		}
	}

	if total == 0 {
		return 0
	}
	return clampPct(achieved / total * 100)
}

// OverallProgress computes the three stage scores and their rounded mean.
func OverallProgress(reg schema.Registry, p *domain.Project) Score {
	s := Score{
		Stage1: StageProgress(reg, p, domain.Stage1),
		Stage2: StageProgress(reg, p, domain.Stage2),
		Stage3: StageProgress(reg, p, domain.Stage3),
	}
	s.Overall = clampPct(float64(s.Stage1+s.Stage2+s.Stage3) / 3)
	return s
}

func clampPct(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
