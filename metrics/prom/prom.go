package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/ordmap/ordmap"
)

// Adapter implements ordmap.Metrics and exports Prometheus counters/gauges.
// Note: the map itself is single-threaded, but Prometheus metric types are
// goroutine-safe, so one Adapter may serve several maps.
type Adapter struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	mutates *prometheus.CounterVec
	entries prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Lookups that found the key",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Lookups for absent keys",
			ConstLabels: constLabels,
		}),
		mutates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "mutations_total",
				Help:        "Structural and value mutations by operation",
				ConstLabels: constLabels,
			},
			[]string{"op"},
		),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.mutates, a.entries)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Mutate increments the mutation counter with an operation label.
func (a *Adapter) Mutate(op ordmap.Op) {
	a.mutates.WithLabelValues(opName(op)).Inc()
}

// Size updates the resident-entries gauge.
func (a *Adapter) Size(entries int) {
	a.entries.Set(float64(entries))
}

// opName maps Op to a stable label value.
func opName(op ordmap.Op) string {
	switch op {
	case ordmap.OpInsert:
		return "insert"
	case ordmap.OpUpdate:
		return "update"
	case ordmap.OpDelete:
		return "delete"
	case ordmap.OpMove:
		return "move"
	case ordmap.OpPop:
		return "pop"
	case ordmap.OpClear:
		return "clear"
	default:
		return "other"
	}
}

// Compile-time check: ensure Adapter implements ordmap.Metrics.
var _ ordmap.Metrics = (*Adapter)(nil)
