package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/PkuCuipy/eartist"
)

// Metrics exports the state of a run to Prometheus.
type Metrics struct {
	Generation  prometheus.Gauge
	BestFitness prometheus.Gauge
	MeanFitness prometheus.Gauge
	Shapes      prometheus.Gauge
	Evaluations prometheus.Counter
}

// NewMetrics creates the run metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eartist_generation",
			Help: "Number of completed generations.",
		}),
		BestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eartist_best_fitness",
			Help: "RMS distance of the best genome to the target.",
		}),
		MeanFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eartist_mean_fitness",
			Help: "Mean RMS distance of the population to the target.",
		}),
		Shapes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eartist_shapes",
			Help: "Number of shapes in the best genome.",
		}),
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eartist_evaluations_total",
			Help: "Number of genomes rendered and compared to the target.",
		}),
	}
	for _, c := range []prometheus.Collector{
		m.Generation, m.BestFitness, m.MeanFitness, m.Shapes, m.Evaluations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe updates the metrics after a generation.
func (m *Metrics) Observe(st eartist.Stats) {
	m.Generation.Set(float64(st.Generation))
	m.BestFitness.Set(st.Best)
	m.MeanFitness.Set(st.Mean)
	m.Shapes.Set(float64(st.Shapes))
	m.Evaluations.Add(float64(st.Evaluated))
}
