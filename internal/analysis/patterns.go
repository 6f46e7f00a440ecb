package analysis

// IrregularSpreadThreshold is the largest cycle-length spread still
// considered regular.
const IrregularSpreadThreshold = 7

// PatternFlags are the independent pattern classifications of a record set.
type PatternFlags struct {
	IrregularityScore   int  `json:"irregularity_score"`
	IsIrregular         bool `json:"is_irregular"`
	LowEnergyPattern    bool `json:"low_energy_pattern"`
	NegativeMoodPattern bool `json:"negative_mood_pattern"`
}

// ClassifyPatterns derives the irregularity, low-energy and negative-mood
// flags from a summary. It needs at least MinRecordsDetailed records.
func ClassifyPatterns(s Summary) (PatternFlags, error) {
	if err := requireRecords("classify patterns", MinRecordsDetailed, s.Count); err != nil {
		return PatternFlags{}, err
	}

	half := float64(s.Count) / 2
	score := s.Spread()
	negative := s.Moods.Count(string(MoodSad)) + s.Moods.Count(string(MoodAnxious))

	return PatternFlags{
		IrregularityScore:   score,
		IsIrregular:         score > IrregularSpreadThreshold,
		LowEnergyPattern:    float64(s.Energies.Count(string(EnergyLow))) >= half,
		NegativeMoodPattern: float64(negative) >= half,
	}, nil
}
