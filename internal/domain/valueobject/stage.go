package valueobject

import "fmt"

// Stage is an immutable value object representing the blood-pressure risk stage
// produced by the classifier. The set is closed: only the four stages below exist.
type Stage struct {
	value string
}

var (
	StageNormal = Stage{value: "NORMAL"}
	StageOne    = Stage{value: "STAGE-1"}
	StageTwo    = Stage{value: "STAGE-2"}
	StageCrisis = Stage{value: "CRISIS"}
)

// Stages returns the closed stage set ordered by classifier class index.
func Stages() []Stage {
	return []Stage{StageNormal, StageOne, StageTwo, StageCrisis}
}

// StageFromClass maps a classifier class index (0-3) to its Stage.
func StageFromClass(class int) (Stage, error) {
	switch class {
	case 0:
		return StageNormal, nil
	case 1:
		return StageOne, nil
	case 2:
		return StageTwo, nil
	case 3:
		return StageCrisis, nil
	default:
		return Stage{}, fmt.Errorf("invalid stage class: %d", class)
	}
}

// Class returns the classifier class index for this stage, or -1 for the zero Stage.
func (s Stage) Class() int {
	switch s.value {
	case "NORMAL":
		return 0
	case "STAGE-1":
		return 1
	case "STAGE-2":
		return 2
	case "CRISIS":
		return 3
	default:
		return -1
	}
}

// String returns the string representation.
func (s Stage) String() string {
	return s.value
}

// IsZero returns true if the Stage has not been set.
func (s Stage) IsZero() bool {
	return s.value == ""
}

// IsCrisis reports whether the stage requires emergency care.
func (s Stage) IsCrisis() bool {
	return s.value == "CRISIS"
}
