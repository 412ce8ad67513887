package domain

// DailyMetric is one day's value of a metric. Date is "YYYY-MM-DD".
type DailyMetric struct {
	Date  string
	Value float64
}

// Metric is a native metric as reported for a single account.
type Metric struct {
	Key          string
	CurrentValue float64
	History      []DailyMetric
}

// AnalyticsMetric is the aggregated, display-ready series of one category
// across all contributing accounts.
type AnalyticsMetric struct {
	Key          string
	Label        string
	CurrentValue float64
	History      []DailyMetric // ascending by date, no duplicates
}

type AccountStatus string

const (
	AccountStatusActive       AccountStatus = "active"
	AccountStatusExpired      AccountStatus = "expired"
	AccountStatusError        AccountStatus = "error"
	AccountStatusDisconnected AccountStatus = "disconnected"
)

type Account struct {
	ID       string
	Name     string
	Platform string
	Status   AccountStatus
}

// Fetchable reports whether metrics should be requested for the account.
// Errored or disconnected channels are left out of the aggregation entirely.
func (a Account) Fetchable() bool {
	return a.Status == AccountStatusActive || a.Status == AccountStatusExpired
}

// Window is the look-back period in days.
type Window int

const (
	Window7  Window = 7
	Window14 Window = 14
	Window30 Window = 30
	Window60 Window = 60
	Window90 Window = 90
)

func (w Window) Valid() bool {
	switch w {
	case Window7, Window14, Window30, Window60, Window90:
		return true
	}
	return false
}
