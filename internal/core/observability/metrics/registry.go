package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	KindCounter = "counter"
	KindGauge   = "gauge"
)

// Registry is a Collector backed by its own prometheus registry, safe for
// concurrent use. Using one name for both a counter and a gauge panics.
type Registry struct {
	mu       sync.Mutex
	reg      *prometheus.Registry
	counters map[string]prometheus.Counter
	gauges   map[string]*gauge
}

func NewRegistry() *Registry {
	return &Registry{
		reg:      prometheus.NewRegistry(),
		counters: make(map[string]prometheus.Counter),
		gauges:   make(map[string]*gauge),
	}
}

// Gatherer exposes the underlying registry, e.g. for an HTTP handler.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Counter(name string) Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counters[name]
	if !ok {
		c = prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: name})
		r.reg.MustRegister(c)
		r.counters[name] = c
	}
	return c
}

func (r *Registry) Gauge(name string) Gauge {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gauges[name]
	if !ok {
		g = &gauge{Gauge: prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: name})}
		r.reg.MustRegister(g.Gauge)
		r.gauges[name] = g
	}
	return g
}

// Export gathers every instrument, sorted by name.
func (r *Registry) Export() ([]Sample, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}
	out := make([]Sample, 0, len(families))
	for _, f := range families {
		for _, m := range f.GetMetric() {
			s := Sample{Name: f.GetName()}
			switch f.GetType() {
			case dto.MetricType_COUNTER:
				s.Kind, s.Value = KindCounter, m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Kind, s.Value = KindGauge, m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, s)
		}
	}
	return out, nil
}

type gauge struct {
	prometheus.Gauge
	mu sync.Mutex
}

// Max raises the gauge to candidate if it is currently lower.
func (g *gauge) Max(candidate float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var m dto.Metric
	if err := g.Write(&m); err != nil || candidate > m.GetGauge().GetValue() {
		g.Set(candidate)
	}
}
