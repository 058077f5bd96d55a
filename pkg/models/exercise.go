package models

// Exercise types supported by the catalog
const (
	TypePhysical  = "physical"
	TypeSpeech    = "speech"
	TypeCognitive = "cognitive"
)

// ExerciseRecord represents a single rehabilitation exercise from the catalog.
// Records are immutable once loaded; the session engine only ever holds
// snapshots or ids.
type ExerciseRecord struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Type         string `json:"type" db:"type"`
	Difficulty   string `json:"difficulty" db:"difficulty"`
	Instructions string `json:"instructions" db:"instructions"`
	Repetitions  int    `json:"repetitions" db:"repetitions"`
	Duration     int    `json:"duration" db:"duration"` // seconds, 0 if not applicable
	Rest         int    `json:"rest" db:"rest"`         // rest between repetitions in seconds
	Precautions  string `json:"precautions" db:"precautions"`
}

// NormalizeExerciseType validates an exercise type coming from the voice
// channel, falling back to physical on anything unknown.
func NormalizeExerciseType(exerciseType string) string {
	switch exerciseType {
	case TypePhysical, TypeSpeech, TypeCognitive:
		return exerciseType
	default:
		return TypePhysical
	}
}
