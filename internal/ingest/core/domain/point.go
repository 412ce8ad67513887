package domain

import "time"

// MetricPoint is one account-day reading of a native metric.
type MetricPoint struct {
	AccountID string
	MetricKey string
	Day       time.Time // UTC midnight
	Value     float64
}
