package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of documents_generated_total.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics records document generation counts and render latency.
type Metrics struct {
	generated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics creates the generation metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_generated_total",
				Help: "Total number of PDF documents rendered.",
			},
			[]string{"type", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "document_render_duration_seconds",
				Help:    "Time spent rendering a PDF document.",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"type"},
		),
	}
	for _, c := range []prometheus.Collector{m.generated, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(docType string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.generated.WithLabelValues(docType, outcome).Inc()
	m.duration.WithLabelValues(docType).Observe(elapsed.Seconds())
}
