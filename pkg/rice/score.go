// Package rice implements the RICE prioritization formula and the MoSCoW
// priority tags used by the feature backlog.
package rice

// Bounds for every RICE input (reach, impact, confidence, effort).
const (
	MinInput = 1
	MaxInput = 10
)

// Priority is a MoSCoW category assigned to a backlog feature.
type Priority string

const (
	PriorityMust   Priority = "must"
	PriorityShould Priority = "should"
	PriorityCould  Priority = "could"
	PriorityWont   Priority = "wont"
)

// DefaultPriority is applied when a draft carries no tag.
const DefaultPriority = PriorityShould

func (p Priority) Valid() bool {
	switch p {
	case PriorityMust, PriorityShould, PriorityCould, PriorityWont:
		return true
	}
	return false
}

// Score computes (reach * impact * confidence) / effort.
// Inputs must already be validated to [MinInput, MaxInput]; effort >= 1
// guarantees the division is defined.
func Score(reach, impact, confidence, effort int) float64 {
	return float64(reach*impact*confidence) / float64(effort)
}

// InRange reports whether a single RICE input is within bounds.
func InRange(v int) bool {
	return v >= MinInput && v <= MaxInput
}
