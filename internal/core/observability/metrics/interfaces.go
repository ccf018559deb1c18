package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector hands out named instruments. Asking twice for the same name
// returns the same instrument.
type Collector interface {
	Counter(name string) Counter
	Gauge(name string) Gauge
	Export() ([]Sample, error)
}

// Counter panics when Add is given a negative value.
type Counter interface {
	prometheus.Collector
	Inc()
	Add(float64)
}

type Gauge interface {
	prometheus.Collector
	Set(float64)
	Add(float64)
	Max(float64)
}

// Sample is one exported instrument value.
type Sample struct {
	Name  string
	Kind  string
	Value float64
}
