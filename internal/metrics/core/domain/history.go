package domain

import "sort"

// MergeHistory adds every point of history into the date map.
func MergeHistory(history []DailyMetric, into map[string]float64) {
	for _, p := range history {
		into[p.Date] += p.Value
	}
}

// SortedHistory turns a date map into a slice ordered by date.
// ISO dates sort correctly as strings.
func SortedHistory(dates map[string]float64) []DailyMetric {
	out := make([]DailyMetric, 0, len(dates))
	for d, v := range dates {
		out = append(out, DailyMetric{Date: d, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Accumulator holds the running cross-account state of one category.
type Accumulator struct {
	Total float64
	Dates map[string]float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{Dates: make(map[string]float64)}
}

// Add folds one account's metric into the accumulator.
func (a *Accumulator) Add(m Metric) {
	a.Total += TotalOf(m)
	MergeHistory(m.History, a.Dates)
}

// Metric assembles the display-ready metric for the category.
func (a *Accumulator) Metric(c Category) AnalyticsMetric {
	return AnalyticsMetric{
		Key:          c.Key,
		Label:        c.Label,
		CurrentValue: a.Total,
		History:      SortedHistory(a.Dates),
	}
}
