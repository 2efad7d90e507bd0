package domain

import "time"

// Project is a manufacturing project moving through the three stages.
// The engine treats a Project as an immutable snapshot per invocation;
// all derived values (progress, events, deadlines) are recomputed from it.
type Project struct {
	ID        string
	Name      string
	ModelName string
	Completed bool
	Stage1    Stage
	Stage2    Stage
	Stage3    Stage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stage returns the stage record for the given name. Unknown names return
// a zero Stage, which reads as entirely blank.
func (p *Project) Stage(name StageName) Stage {
	switch name {
	case Stage1:
		return p.Stage1
	case Stage2:
		return p.Stage2
	case Stage3:
		return p.Stage3
	}
	return Stage{}
}

// SetStage replaces the stage record for the given name. Unknown names
// are ignored.
func (p *Project) SetStage(name StageName, s Stage) {
	switch name {
	case Stage1:
		p.Stage1 = s
	case Stage2:
		p.Stage2 = s
	case Stage3:
		p.Stage3 = s
	}
}

// DisplayID returns a short identifier for display, truncating UUIDs
// to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
