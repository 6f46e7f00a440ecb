package analysis

// RiskLevel is the coarse three-tier classification of a sampled intensity.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Intensity thresholds, evaluated top-down.
const (
	HighRiskBelow     = 50.0
	ModerateRiskBelow = 100.0
)

// RiskAssessment is the classifier output: a level and its guidance text.
type RiskAssessment struct {
	Level    RiskLevel `json:"risk_level"`
	Analysis string    `json:"analysis"`
}

// ClassifyIntensity maps an averaged channel intensity to a risk level.
// Every float64 is accepted; values that compare false against both
// thresholds (including NaN) are Low.
func ClassifyIntensity(intensity float64) RiskAssessment {
	switch {
	case intensity < HighRiskBelow:
		return RiskAssessment{Level: RiskHigh, Analysis: riskGuidance[RiskHigh]}
	case intensity < ModerateRiskBelow:
		return RiskAssessment{Level: RiskModerate, Analysis: riskGuidance[RiskModerate]}
	default:
		return RiskAssessment{Level: RiskLow, Analysis: riskGuidance[RiskLow]}
	}
}
