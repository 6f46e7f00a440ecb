package analysis

// Frequency counts categorical values while remembering the order in which
// each key was first seen. MostCommon relies on that order for tie-breaks.
type Frequency struct {
	keys   []string
	counts map[string]int
}

// NewFrequency returns an empty frequency table.
func NewFrequency() *Frequency {
	return &Frequency{counts: make(map[string]int)}
}

// Add counts one occurrence of key.
func (f *Frequency) Add(key string) {
	if _, seen := f.counts[key]; !seen {
		f.keys = append(f.keys, key)
	}
	f.counts[key]++
}

// Count returns the occurrences of key, zero when never seen.
func (f *Frequency) Count(key string) int {
	return f.counts[key]
}

// Keys returns the keys in first-seen order.
func (f *Frequency) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of distinct keys.
func (f *Frequency) Len() int {
	return len(f.keys)
}

// MostCommon returns the key with the highest count. When several keys
// share the maximum the first-seen one wins. ok is false for an empty table.
func (f *Frequency) MostCommon() (key string, count int, ok bool) {
	for _, k := range f.keys {
		if c := f.counts[k]; c > count {
			key, count, ok = k, c, true
		}
	}
	return key, count, ok
}

// Entries returns key/count pairs in first-seen order.
func (f *Frequency) Entries() []CategoryCount {
	out := make([]CategoryCount, 0, len(f.keys))
	for _, k := range f.keys {
		out = append(out, CategoryCount{Value: k, Count: f.counts[k]})
	}
	return out
}

// CategoryCount pairs a categorical value with how often it was observed.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary holds the aggregate statistics of a record set.
type Summary struct {
	Count    int
	Mean     float64
	Min      int
	Max      int
	Moods    *Frequency
	Energies *Frequency
}

// Spread is max - min over cycle lengths.
func (s Summary) Spread() int {
	return s.Max - s.Min
}

// Aggregate computes mean, min, max and mood/energy frequencies over records.
// The mean is not rounded. Unknown mood or energy values are counted like
// any other key.
func Aggregate(records []Record) (Summary, error) {
	if err := requireRecords("aggregate", 1, len(records)); err != nil {
		return Summary{}, err
	}

	s := Summary{
		Count:    len(records),
		Min:      records[0].CycleLength,
		Max:      records[0].CycleLength,
		Moods:    NewFrequency(),
		Energies: NewFrequency(),
	}

	total := 0
	for _, r := range records {
		total += r.CycleLength
		if r.CycleLength < s.Min {
			s.Min = r.CycleLength
		}
		if r.CycleLength > s.Max {
			s.Max = r.CycleLength
		}
		s.Moods.Add(string(r.Mood))
		s.Energies.Add(string(r.Energy))
	}
	s.Mean = float64(total) / float64(len(records))

	return s, nil
}

// MeanCycleLength averages cycle lengths without building frequency tables.
func MeanCycleLength(records []Record) (float64, error) {
	if err := requireRecords("mean cycle length", 1, len(records)); err != nil {
		return 0, err
	}
	total := 0
	for _, r := range records {
		total += r.CycleLength
	}
	return float64(total) / float64(len(records)), nil
}
