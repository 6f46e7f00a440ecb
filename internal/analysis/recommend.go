package analysis

import (
	"fmt"
	"strings"
)

// Lightweight alert texts.
const (
	AlertLongCycle  = "Irregular cycle detected (>35 days)"
	AlertShortCycle = "Short cycle detected (<21 days)"
	AlertFatigue    = "Persistent fatigue detected"

	// AlertAdvice accompanies a non-empty alert list.
	AlertAdvice = "Consider consulting with a healthcare provider if symptoms persist."
)

// Lightweight alert thresholds.
const (
	LongCycleAbove      = 35.0
	ShortCycleBelow     = 21.0
	FatigueLowEnergyMin = 3
)

// AdvisoryKind identifies which classifier outcome produced an advisory.
type AdvisoryKind string

const (
	AdvisoryIrregular    AdvisoryKind = "irregular_cycles"
	AdvisoryRegular      AdvisoryKind = "regular_cycles"
	AdvisoryLowEnergy    AdvisoryKind = "low_energy_pattern"
	AdvisoryNegativeMood AdvisoryKind = "mood_pattern"
)

// Advisory is one fixed pattern message.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
}

var riskGuidance = map[RiskLevel]string{
	RiskHigh:     "Significant concerns detected in the analysis. This may indicate severe anemia or other health issues. Please consult with a healthcare provider as soon as possible for proper medical evaluation and treatment.",
	RiskModerate: "Possible anemia indicators detected. Consider increasing iron-rich foods in your diet (leafy greens, lean meat, legumes). Stay hydrated and get adequate rest. If symptoms like fatigue persist, consult a healthcare provider.",
	RiskLow:      "Normal appearance detected. Continue regular monitoring of your health.",
}

var recommendations = []string{
	"Continue tracking your cycles to identify long-term patterns",
	"Maintain a balanced diet rich in iron and vitamins",
	"Stay hydrated and get adequate sleep",
	"Manage stress through relaxation techniques",
	"Consult a healthcare provider if you notice concerning changes",
}

// Recommendations returns the general recommendation list shown with a
// detailed analysis.
func Recommendations() []string {
	out := make([]string, len(recommendations))
	copy(out, recommendations)
	return out
}

// ComposeAlerts builds the lightweight alert list. At most one length alert
// fires; the fatigue alert is independent. The result is never nil.
func ComposeAlerts(averageCycleLength float64, lowEnergyCount int) []string {
	alerts := make([]string, 0, 2)

	if averageCycleLength > LongCycleAbove {
		alerts = append(alerts, AlertLongCycle)
	} else if averageCycleLength < ShortCycleBelow {
		alerts = append(alerts, AlertShortCycle)
	}

	if lowEnergyCount >= FatigueLowEnergyMin {
		alerts = append(alerts, AlertFatigue)
	}

	return alerts
}

// ComposeAdvisories turns pattern flags into their fixed messages, in the
// order irregularity, energy, mood. Exactly one of the irregular/regular
// messages is always present.
func ComposeAdvisories(flags PatternFlags) []Advisory {
	advisories := make([]Advisory, 0, 3)

	if flags.IsIrregular {
		advisories = append(advisories, Advisory{
			Kind:  AdvisoryIrregular,
			Title: "Irregular Cycles Detected",
			Message: fmt.Sprintf("Your cycle length varies by %d days. "+
				"This is common but worth discussing with a healthcare provider if persistent.", flags.IrregularityScore),
		})
	} else {
		advisories = append(advisories, Advisory{
			Kind:    AdvisoryRegular,
			Title:   "Regular Cycles",
			Message: "Your cycle length is relatively consistent. This is a good sign of hormonal balance.",
		})
	}

	if flags.LowEnergyPattern {
		advisories = append(advisories, Advisory{
			Kind:    AdvisoryLowEnergy,
			Title:   "Low Energy Pattern",
			Message: "You frequently report low energy. Consider improving sleep, nutrition, and stress management.",
		})
	}

	if flags.NegativeMoodPattern {
		advisories = append(advisories, Advisory{
			Kind:  AdvisoryNegativeMood,
			Title: "Mood Pattern",
			Message: "You often experience mood changes. This can be related to hormonal fluctuations. " +
				"Consider tracking triggers and self-care practices.",
		})
	}

	return advisories
}

// FormatShare renders a "count out of total" pair.
func FormatShare(count, total int) string {
	return fmt.Sprintf("%d out of %d cycles", count, total)
}

// FormatDays renders a day count with one decimal, e.g. "27.7 days".
func FormatDays(days float64) string {
	return fmt.Sprintf("%.1f days", days)
}

// MoodIcon returns the display icon for a mood; unknown moods get the
// neutral face.
func MoodIcon(m Mood) string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodSad:
		return "😢"
	case MoodIrritable:
		return "😠"
	case MoodAnxious:
		return "😰"
	default:
		return "😐"
	}
}

// EnergyTone returns the display color for an energy level; unknown values
// are gray.
func EnergyTone(e Energy) string {
	switch Energy(strings.TrimSpace(string(e))) {
	case EnergyHigh:
		return "green"
	case EnergyMedium:
		return "yellow"
	case EnergyLow:
		return "red"
	default:
		return "gray"
	}
}
