package analysis

import (
	"strings"
	"time"
)

// CycleAnalysis is the lightweight view: phase, recent average and alerts.
type CycleAnalysis struct {
	AverageCycleLength  float64  `json:"average_cycle_length"`
	Phase               Phase    `json:"phase"`
	Alerts              []string `json:"alerts"`
	DaysSinceLastRecord int      `json:"days_since_last_record"`
	RecordsConsidered   int      `json:"records_considered"`
	Advice              string   `json:"advice,omitempty"`
}

// DetailedAnalysis is the statistical view over the whole snapshot.
type DetailedAnalysis struct {
	Total              int             `json:"total"`
	AverageCycleLength float64         `json:"average_cycle_length"`
	MinCycleLength     int             `json:"min_cycle_length"`
	MaxCycleLength     int             `json:"max_cycle_length"`
	MostCommonMood     CategoryCount   `json:"most_common_mood"`
	MostCommonEnergy   CategoryCount   `json:"most_common_energy"`
	MoodCounts         []CategoryCount `json:"mood_counts"`
	EnergyCounts       []CategoryCount `json:"energy_counts"`

	PatternFlags

	Advisories      []Advisory `json:"advisories"`
	Recommendations []string   `json:"recommendations"`
}

// Analyze runs the lightweight analysis. The phase comes from the most recent
// record; the average and fatigue count use at most the LightweightWindow
// most recent records. Input order does not matter.
func Analyze(records []Record, now time.Time) (CycleAnalysis, error) {
	if err := requireRecords("lightweight analysis", MinRecordsLightweight, len(records)); err != nil {
		return CycleAnalysis{}, err
	}

	ordered := SortedByDateDesc(records)
	recent := ordered
	if len(recent) > LightweightWindow {
		recent = recent[:LightweightWindow]
	}

	avg, err := MeanCycleLength(recent)
	if err != nil {
		return CycleAnalysis{}, err
	}

	lowEnergy := 0
	for _, r := range recent {
		if strings.EqualFold(string(r.Energy), string(EnergyLow)) {
			lowEnergy++
		}
	}

	// ordered[0] is the first of the latest-dated records in snapshot order,
	// the same record MostRecent would pick.
	days := DaysSince(ordered[0].Date, now)

	result := CycleAnalysis{
		AverageCycleLength:  avg,
		Phase:               EstimatePhase(days),
		Alerts:              ComposeAlerts(avg, lowEnergy),
		DaysSinceLastRecord: days,
		RecordsConsidered:   len(recent),
	}
	if len(result.Alerts) > 0 {
		result.Advice = AlertAdvice
	}
	return result, nil
}

// AnalyzeDetailed runs the detailed statistical analysis over every record
// given. It needs at least MinRecordsDetailed records.
func AnalyzeDetailed(records []Record) (DetailedAnalysis, error) {
	if err := requireRecords("detailed analysis", MinRecordsDetailed, len(records)); err != nil {
		return DetailedAnalysis{}, err
	}

	summary, err := Aggregate(records)
	if err != nil {
		return DetailedAnalysis{}, err
	}

	flags, err := ClassifyPatterns(summary)
	if err != nil {
		return DetailedAnalysis{}, err
	}

	mood, moodCount, _ := summary.Moods.MostCommon()
	energy, energyCount, _ := summary.Energies.MostCommon()

	return DetailedAnalysis{
		Total:              summary.Count,
		AverageCycleLength: summary.Mean,
		MinCycleLength:     summary.Min,
		MaxCycleLength:     summary.Max,
		MostCommonMood:     CategoryCount{Value: mood, Count: moodCount},
		MostCommonEnergy:   CategoryCount{Value: energy, Count: energyCount},
		MoodCounts:         summary.Moods.Entries(),
		EnergyCounts:       summary.Energies.Entries(),
		PatternFlags:       flags,
		Advisories:         ComposeAdvisories(flags),
		Recommendations:    Recommendations(),
	}, nil
}
