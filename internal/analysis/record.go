// Package analysis is the cycle analytics engine: pure functions that turn a
// snapshot of cycle records into statistics, pattern flags, a phase estimate,
// risk classifications and advisory text.
package analysis

import (
	"errors"
	"fmt"
	"time"
)

// Mood is the self-reported mood attached to a cycle record.
type Mood string

const (
	MoodHappy     Mood = "Happy"
	MoodNeutral   Mood = "Neutral"
	MoodSad       Mood = "Sad"
	MoodIrritable Mood = "Irritable"
	MoodAnxious   Mood = "Anxious"
)

// Moods lists the known moods in display order.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodIrritable, MoodAnxious}

// Energy is the self-reported energy level attached to a cycle record.
type Energy string

const (
	EnergyHigh   Energy = "High"
	EnergyMedium Energy = "Medium"
	EnergyLow    Energy = "Low"
)

// Energies lists the known energy levels in display order.
var Energies = []Energy{EnergyHigh, EnergyMedium, EnergyLow}

// Phase is a named stage of the menstrual cycle.
type Phase string

const (
	PhaseMenstrual  Phase = "Menstrual"
	PhaseFollicular Phase = "Follicular"
	PhaseOvulation  Phase = "Ovulation"
	PhaseLuteal     Phase = "Luteal"
)

// Record is one logged cycle observation. Records are read-only input.
type Record struct {
	Date        time.Time `json:"date"`
	CycleLength int       `json:"cycle_length"`
	Mood        Mood      `json:"mood"`
	Energy      Energy    `json:"energy"`
}

// Minimum record counts for each consumer.
const (
	MinRecordsLightweight = 1
	MinRecordsDetailed    = 3
	MinRecordsPhase       = 1

	// LightweightWindow is how many of the most recent records feed the
	// lightweight average and fatigue alert.
	LightweightWindow = 5
)

// ErrInsufficientData is matched by every InsufficientDataError.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError reports that an operation received fewer records
// than its minimum. Callers are expected to check counts up front and show a
// "need more data" state instead.
type InsufficientDataError struct {
	Operation string
	Need      int
	Got       int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d records, got %d", e.Operation, e.Need, e.Got)
}

// Is makes errors.Is(err, ErrInsufficientData) succeed.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

func requireRecords(op string, need, got int) error {
	if got < need {
		return &InsufficientDataError{Operation: op, Need: need, Got: got}
	}
	return nil
}
