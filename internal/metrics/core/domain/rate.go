package domain

// DeriveRate computes the global engagement rate in percent from aggregated
// totals. No exposure yields 0; otherwise the denominator is floored at 1.
func DeriveRate(engagementTotal, exposureTotal float64) float64 {
	if exposureTotal <= 0 {
		return 0
	}
	denom := exposureTotal
	if denom < 1 {
		denom = 1
	}
	return engagementTotal / denom * 100
}

// DeriveRateHistory computes a per-date rate over the union of dates present in
// either map. Dates without exposure yield 0.
func DeriveRateHistory(engagement, exposure map[string]float64) []DailyMetric {
	rates := make(map[string]float64, len(exposure))
	for d := range exposure {
		rates[d] = 0
	}
	for d := range engagement {
		rates[d] = 0
	}
	for d := range rates {
		if exp := exposure[d]; exp > 0 {
			rates[d] = engagement[d] / exp * 100
		}
	}
	return SortedHistory(rates)
}
