package analysis

import (
	"sort"
	"time"
)

const day = 24 * time.Hour

// DaysSince returns the whole days elapsed between last and now, floored.
// A last date in the future yields 0.
func DaysSince(last, now time.Time) int {
	elapsed := now.Sub(last)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / day)
}

// EstimatePhase maps elapsed days since the last record to a cycle phase.
// The breakpoints are inclusive upper bounds: 5, 13 and 16.
func EstimatePhase(daysSinceLastRecord int) Phase {
	switch {
	case daysSinceLastRecord <= 5:
		return PhaseMenstrual
	case daysSinceLastRecord <= 13:
		return PhaseFollicular
	case daysSinceLastRecord <= 16:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// MostRecent returns the record with the latest date. Records sharing the
// latest date resolve to the one that comes first in the snapshot.
func MostRecent(records []Record) (Record, error) {
	if err := requireRecords("most recent record", MinRecordsPhase, len(records)); err != nil {
		return Record{}, err
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}
	return latest, nil
}

// SortedByDateDesc returns a copy of records ordered newest first. The sort
// is stable so equal dates keep snapshot order; the input is not modified.
func SortedByDateDesc(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
