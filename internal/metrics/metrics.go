package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"lead-sync/internal/domain"
)

// Run collects gauges for one fetch run on a private registry, so the
// textfile only ever holds this run's values.
type Run struct {
	reg *prometheus.Registry

	leads       *prometheus.GaugeVec
	pages       prometheus.Gauge
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

func NewRun() *Run {
	r := &Run{
		reg: prometheus.NewRegistry(),
		leads: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "leadsync_leads",
			Help: "Leads in the last snapshot by kind and status",
		}, []string{"kind", "status"}),
		pages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leadsync_pages_fetched",
			Help: "Pages requested from the upstream table in the last run",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leadsync_run_duration_seconds",
			Help: "Wall time of the last successful run",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leadsync_last_success_timestamp_seconds",
			Help: "Unix time the last successful run finished",
		}),
	}
	r.reg.MustRegister(r.leads, r.pages, r.duration, r.lastSuccess)
	return r
}

func (r *Run) ObservePage() { r.pages.Inc() }

// ObserveLeads sets the per kind/status gauges. Every combination is
// exported so absent series read as 0 rather than disappearing.
func (r *Run) ObserveLeads(leads []domain.Lead) {
	counts := map[[2]string]int{}
	for _, l := range leads {
		counts[[2]string{l.Kind.String(), l.Status.String()}]++
	}
	for _, kind := range []domain.Kind{domain.KindCall, domain.KindForm} {
		for _, st := range domain.Statuses {
			key := [2]string{kind.String(), st.String()}
			r.leads.WithLabelValues(key[0], key[1]).Set(float64(counts[key]))
		}
	}
}

func (r *Run) Finish(took time.Duration, now time.Time) {
	r.duration.Set(took.Seconds())
	r.lastSuccess.Set(float64(now.Unix()))
}

// WriteTextfile writes the node-exporter textfile collector format.
func (r *Run) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("metrics: create dir %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
