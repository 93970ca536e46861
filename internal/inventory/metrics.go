package inventory

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments library operations.
type Metrics struct {
	Movements     *prometheus.CounterVec
	Pieces        *prometheus.CounterVec
	Saves         prometheus.Counter
	Deletes       prometheus.Counter
	ImportRows    *prometheus.CounterVec
	AuditFailures prometheus.Counter
	Items         prometheus.Gauge
}

// NewMetrics creates the library metrics and registers them on reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fastenerlib",
			Name:      "stock_movements_total",
			Help:      "Stock movements applied, by direction.",
		}, []string{"direction"}),
		Pieces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fastenerlib",
			Name:      "stock_pieces_total",
			Help:      "Pieces moved, by direction.",
		}, []string{"direction"}),
		Saves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastenerlib",
			Name:      "item_saves_total",
			Help:      "Item saves, including note and photo updates.",
		}),
		Deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastenerlib",
			Name:      "item_deletes_total",
			Help:      "Items deleted.",
		}),
		ImportRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fastenerlib",
			Name:      "import_rows_total",
			Help:      "Imported rows, by outcome.",
		}, []string{"outcome"}),
		AuditFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastenerlib",
			Name:      "audit_append_failures_total",
			Help:      "Audit records that could not be stored.",
		}),
		Items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fastenerlib",
			Name:      "items",
			Help:      "Items currently in the library.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Movements, m.Pieces, m.Saves, m.Deletes, m.ImportRows, m.AuditFailures, m.Items)
	}
	return m
}
