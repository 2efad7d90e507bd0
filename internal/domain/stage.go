package domain

import "strings"

// Stage holds the raw field data for one stage of a project. Field values
// (plain text and ISO dates alike) live in Values; execution flags for
// date fields live in Executed. Nil maps read as blank, so a zero Stage
// is a valid, entirely-empty stage.
type Stage struct {
	Values   map[string]string
	Executed map[string]bool
	Notes    string
}

// Value returns the trimmed value of the named field, or "" if unset.
func (s Stage) Value(name string) string {
	return strings.TrimSpace(s.Values[name])
}

// Filled reports whether the named field has a non-blank value.
func (s Stage) Filled(name string) bool {
	return s.Value(name) != ""
}

// IsExecuted reports whether the named date field is flagged as executed.
func (s Stage) IsExecuted(name string) bool {
	return s.Executed[name]
}

// Set stores a field value, allocating the Values map on first use.
func (s *Stage) Set(name, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[name] = value
}

// SetExecuted stores an execution flag, allocating the Executed map on
// first use.
func (s *Stage) SetExecuted(name string, executed bool) {
	if s.Executed == nil {
		s.Executed = make(map[string]bool)
	}
	s.Executed[name] = executed
}

// Clone returns a deep copy of the stage. Callers hand clones to the
// engine when they need to probe a candidate value without touching the
// stored snapshot.
func (s Stage) Clone() Stage {
	out := Stage{Notes: s.Notes}
	if s.Values != nil {
		out.Values = make(map[string]string, len(s.Values))
		for k, v := range s.Values {
			out.Values[k] = v
		}
	}
	if s.Executed != nil {
		out.Executed = make(map[string]bool, len(s.Executed))
		for k, v := range s.Executed {
			out.Executed[k] = v
		}
	}
	return out
}
