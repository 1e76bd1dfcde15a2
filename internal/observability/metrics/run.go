package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

// RunMetrics counts one pipeline run. The process is short-lived, so the
// registry is written to a node_exporter textfile instead of served.
type RunMetrics struct {
	registry *prometheus.Registry
	service  string
	textfile string
	now      func() time.Time

	pagesTotal     *prometheus.CounterVec
	rowsTotal      *prometheus.CounterVec
	records        *prometheus.GaugeVec
	publishTotal   *prometheus.CounterVec
	thumbnailTotal *prometheus.CounterVec
	lastRun        prometheus.Gauge
}

var _ ports.RunObserver = (*RunMetrics)(nil)

func NewRunMetrics(service, textfile string) *RunMetrics {
	registry := prometheus.NewRegistry()

	pagesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "subsidy_digest",
			Subsystem: "fetch",
			Name:      "pages_total",
			Help:      "Upstream pages requested by policy and status.",
		},
		[]string{"service", "policy", "status"},
	)
	rowsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "subsidy_digest",
			Subsystem: "fetch",
			Name:      "rows_total",
			Help:      "Rows returned by the upstream listing.",
		},
		[]string{"service", "policy"},
	)
	records := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "subsidy_digest",
			Subsystem: "run",
			Name:      "records",
			Help:      "Records remaining after each pipeline stage.",
		},
		[]string{"service", "stage"},
	)
	publishTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "subsidy_digest",
			Subsystem: "publish",
			Name:      "total",
			Help:      "Publish attempts by outcome.",
		},
		[]string{"service", "status"},
	)
	thumbnailTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "subsidy_digest",
			Subsystem: "thumbnail",
			Name:      "total",
			Help:      "Thumbnail attempts by outcome.",
		},
		[]string{"service", "produced"},
	)
	lastRun := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "subsidy_digest",
			Subsystem: "run",
			Name:      "last_flush_timestamp_seconds",
			Help:      "Unix time of the last metrics flush.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(pagesTotal, rowsTotal, records, publishTotal, thumbnailTotal, lastRun)

	return &RunMetrics{
		registry:       registry,
		service:        service,
		textfile:       textfile,
		now:            time.Now,
		pagesTotal:     pagesTotal,
		rowsTotal:      rowsTotal,
		records:        records,
		publishTotal:   publishTotal,
		thumbnailTotal: thumbnailTotal,
		lastRun:        lastRun,
	}
}

func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *RunMetrics) ObservePage(policy string, rows int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.pagesTotal.WithLabelValues(m.service, policy, status).Inc()
	m.rowsTotal.WithLabelValues(m.service, policy).Add(float64(rows))
}

func (m *RunMetrics) ObserveRecords(stage string, count int) {
	m.records.WithLabelValues(m.service, stage).Set(float64(count))
}

func (m *RunMetrics) ObservePublish(status domain.PublishStatus) {
	m.publishTotal.WithLabelValues(m.service, string(status)).Inc()
}

func (m *RunMetrics) ObserveThumbnail(produced bool) {
	m.thumbnailTotal.WithLabelValues(m.service, fmt.Sprint(produced)).Inc()
}

func (m *RunMetrics) Flush() error {
	if m.textfile == "" {
		return nil
	}
	m.lastRun.Set(float64(m.now().Unix()))
	if err := prometheus.WriteToTextfile(m.textfile, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
