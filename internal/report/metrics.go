package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Metrics exposes a run summary as Prometheus gauges for the node
// exporter textfile collector.
type Metrics struct {
	reg *prometheus.Registry

	Rows       *prometheus.GaugeVec
	Duplicates *prometheus.GaugeVec
	Outliers   prometheus.Gauge
	Unlocated  prometheus.Gauge
	Dropped    prometheus.Gauge
	Fixes      *prometheus.GaugeVec
	Phase      *prometheus.GaugeVec
	LastRun    prometheus.Gauge
}

// NewMetrics registers the run gauges on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		Rows: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roadfix_rows",
			Help: "Rows read after duplicate removal",
		}, []string{"table"}),
		Duplicates: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roadfix_duplicate_rows_removed",
			Help: "Exact duplicate rows removed",
		}, []string{"table"}),
		Outliers: f.NewGauge(prometheus.GaugeOpts{
			Name: "roadfix_road_outliers",
			Help: "Waypoints snapped to their rolling median",
		}),
		Unlocated: f.NewGauge(prometheus.GaugeOpts{
			Name: "roadfix_road_unlocated_waypoints",
			Help: "Waypoints still without coordinates after cleaning",
		}),
		Dropped: f.NewGauge(prometheus.GaugeOpts{
			Name: "roadfix_bridges_dropped",
			Help: "Bridges on roads missing from the cleaned network",
		}),
		Fixes: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roadfix_bridge_fixes",
			Help: "Repaired bridges by fix method",
		}, []string{"method"}),
		Phase: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roadfix_phase_duration_seconds",
			Help: "Pipeline phase duration",
		}, []string{"phase"}),
		LastRun: f.NewGauge(prometheus.GaugeOpts{
			Name: "roadfix_last_run_timestamp_seconds",
			Help: "Start of the last run",
		}),
	}
}

// Observe sets every gauge from a summary.
func (m *Metrics) Observe(s *Summary) {
	m.Rows.WithLabelValues("roads").Set(float64(s.Roads.Rows))
	m.Duplicates.WithLabelValues("roads").Set(float64(s.Roads.Duplicates))
	m.Outliers.Set(float64(s.Roads.Outliers))
	m.Unlocated.Set(float64(s.Roads.Unlocated))
	m.LastRun.Set(float64(s.StartedAt.Unix()))

	for _, p := range s.Phases {
		m.Phase.WithLabelValues(p.Name).Set(float64(p.DurationMS) / 1000)
	}

	if s.Bridges == nil {
		return
	}
	m.Rows.WithLabelValues("bridges").Set(float64(s.Bridges.Rows))
	m.Duplicates.WithLabelValues("bridges").Set(float64(s.Bridges.Duplicates))
	m.Dropped.Set(float64(s.Bridges.Dropped))
	for _, e := range s.Bridges.Fixes {
		m.Fixes.WithLabelValues(string(e.Method)).Set(float64(e.Count))
	}
}

// WriteTextfile writes the gauges in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return eris.Wrapf(err, "report: write metrics %s", path)
	}
	zap.L().Info("report: metrics written", zap.String("path", path))
	return nil
}
