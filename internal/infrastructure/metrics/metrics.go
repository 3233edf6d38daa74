package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Ingestion outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeShape     = "shape_error"
	OutcomeTransport = "transport_error"
)

// DirectoryMetrics exposes counters/histograms for ingestion and directory queries.
// A nil *DirectoryMetrics is valid and records nothing.
type DirectoryMetrics struct {
	ingestionTotal  *prometheus.CounterVec
	ingestedDoctors prometheus.Gauge
	deriveDuration  prometheus.Histogram
	requestsTotal   *prometheus.CounterVec
}

func NewDirectoryMetrics(reg prometheus.Registerer) *DirectoryMetrics {
	m := &DirectoryMetrics{
		ingestionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctor_directory",
			Name:      "ingestion_total",
			Help:      "Upstream ingestion attempts by outcome",
		}, []string{"outcome"}),
		ingestedDoctors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "doctor_directory",
			Name:      "ingested_doctors",
			Help:      "Number of doctors held by the store",
		}),
		deriveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "doctor_directory",
			Name:      "derive_duration_seconds",
			Help:      "Time spent deriving the filtered view",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctor_directory",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template and status code",
		}, []string{"route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.ingestionTotal, m.ingestedDoctors, m.deriveDuration, m.requestsTotal)
	return m
}

func (m *DirectoryMetrics) ObserveIngestion(outcome string, doctors int) {
	if m == nil {
		return
	}
	m.ingestionTotal.WithLabelValues(outcome).Inc()
	m.ingestedDoctors.Set(float64(doctors))
}

func (m *DirectoryMetrics) ObserveDerive(seconds float64) {
	if m == nil {
		return
	}
	m.deriveDuration.Observe(seconds)
}

func (m *DirectoryMetrics) ObserveRequest(route string, status int) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
