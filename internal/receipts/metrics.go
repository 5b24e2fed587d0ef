package receipts

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Scored *prometheus.CounterVec
	Points prometheus.Histogram
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Scored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipts_scored_total",
				Help: "Receipts accepted and scored",
			},
			[]string{"outcome"},
		),
		Points: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "receipt_points",
				Help:    "Points awarded per receipt",
				Buckets: []float64{0, 10, 25, 50, 100, 150, 250, 500},
			},
		),
	}

	reg.MustRegister(m.Scored, m.Points)
	return m
}

func (m *Metrics) observe(points int64) {
	if m == nil {
		return
	}
	m.Scored.WithLabelValues("scored").Inc()
	m.Points.Observe(float64(points))
}

func (m *Metrics) rejected() {
	if m == nil {
		return
	}
	m.Scored.WithLabelValues("rejected").Inc()
}
