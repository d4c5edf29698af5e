// Package metrics defines the Prometheus collectors for an analysis session
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for a session.
type Metrics struct {
	AnalysesTotal     *prometheus.CounterVec
	TokensCounted     prometheus.Counter
	StopWordsDropped  prometheus.Counter
	DistinctTokens    prometheus.Gauge
	QueriesTotal      *prometheus.CounterVec
	RendersTotal      *prometheus.CounterVec
	FileFailuresTotal prometheus.Counter

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil reg gets a
// fresh private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordfreq_analyses_total",
				Help: "Total analyze calls by input source (file, input).",
			},
			[]string{"source"},
		),
		TokensCounted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordfreq_tokens_counted_total",
				Help: "Total terms added to the frequency table.",
			},
		),
		StopWordsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordfreq_stopwords_dropped_total",
				Help: "Total stop-words removed before counting.",
			},
		),
		DistinctTokens: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordfreq_distinct_tokens",
				Help: "Number of distinct terms in the frequency table.",
			},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordfreq_top_queries_total",
				Help: "Total top-N queries by status (ok, empty, invalid).",
			},
			[]string{"status"},
		),
		RendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordfreq_renders_total",
				Help: "Total render attempts by kind (chart, cloud) and status.",
			},
			[]string{"kind", "status"},
		),
		FileFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordfreq_file_failures_total",
				Help: "Total files that could not be read.",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.AnalysesTotal,
		m.TokensCounted,
		m.StopWordsDropped,
		m.DistinctTokens,
		m.QueriesTotal,
		m.RendersTotal,
		m.FileFailuresTotal,
	)

	return m
}

// ObserveAnalysis records one analyze call.
func (m *Metrics) ObserveAnalysis(source string, counted, dropped, distinct int) {
	m.AnalysesTotal.WithLabelValues(source).Inc()
	m.TokensCounted.Add(float64(counted))
	m.StopWordsDropped.Add(float64(dropped))
	m.DistinctTokens.Set(float64(distinct))
}

// Handler returns the Prometheus scrape HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
