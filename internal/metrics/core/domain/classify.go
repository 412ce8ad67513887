package domain

type MetricKind int

const (
	// Accumulative metrics are flows over a period (views, engagements).
	Accumulative MetricKind = iota
	// Snapshot metrics are point-in-time state (follower count).
	Snapshot
)

func (k MetricKind) String() string {
	if k == Snapshot {
		return "snapshot"
	}
	return "accumulative"
}

// snapshotKeys is a closed list. New state-like native keys must be added here
// explicitly; anything not listed is summed over time.
var snapshotKeys = map[string]struct{}{
	"followers":   {},
	"subscribers": {},
}

// Classify returns the kind of a native metric key. Unknown keys are accumulative.
func Classify(nativeKey string) MetricKind {
	if _, ok := snapshotKeys[nativeKey]; ok {
		return Snapshot
	}
	return Accumulative
}

// TotalOf returns the window total of a single account's metric.
// Snapshot metrics use the current reading, accumulative ones sum the history.
func TotalOf(m Metric) float64 {
	if Classify(m.Key) == Snapshot {
		return m.CurrentValue
	}
	var sum float64
	for _, p := range m.History {
		sum += p.Value
	}
	return sum
}
