package schema

// Stage is a position in the fixed five-step pipeline.
type Stage string

// Pipeline stages in execution order. StageComplete is terminal.
const (
	StageRequirements Stage = "requirements"
	StageDesign       Stage = "design"
	StageDevelopment  Stage = "development"
	StageTesting      Stage = "testing"
	StagePresentation Stage = "presentation"
	StageComplete     Stage = "complete"
)

// stageOrder defines the strict total order over stages.
var stageOrder = map[Stage]int{
	StageRequirements: 0,
	StageDesign:       1,
	StageDevelopment:  2,
	StageTesting:      3,
	StagePresentation: 4,
	StageComplete:     5,
}

// Stages returns the non-terminal stages in execution order.
func Stages() []Stage {
	return []Stage{
		StageRequirements,
		StageDesign,
		StageDevelopment,
		StageTesting,
		StagePresentation,
	}
}

// Index returns the stage's position in the total order.
// Unknown stages sort before everything else.
func (s Stage) Index() int {
	if i, ok := stageOrder[s]; ok {
		return i
	}
	return -1
}

// Past reports whether s comes strictly after other in pipeline order.
func (s Stage) Past(other Stage) bool {
	return s.Index() > other.Index()
}

// Next returns the stage that follows s. StageComplete has no successor
// and returns itself.
func (s Stage) Next() Stage {
	switch s {
	case StageRequirements:
		return StageDesign
	case StageDesign:
		return StageDevelopment
	case StageDevelopment:
		return StageTesting
	case StageTesting:
		return StagePresentation
	case StagePresentation:
		return StageComplete
	}
	return StageComplete
}

// Role returns the agent that executes at stage s. The terminal stage
// has no owner and returns ok=false.
func (s Stage) Role() (Role, bool) {
	switch s {
	case StageRequirements:
		return RoleProjectManager, true
	case StageDesign:
		return RoleDesigner, true
	case StageDevelopment:
		return RoleDeveloper, true
	case StageTesting:
		return RoleTester, true
	case StagePresentation:
		return RolePresenter, true
	}
	return "", false
}
