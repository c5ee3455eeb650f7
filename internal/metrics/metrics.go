// Package metrics exposes prometheus instruments for the statement engine.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "backoffice_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	statementGenerateTotal   *prometheus.CounterVec
	statementGenerateLatency *prometheus.HistogramVec
	statementExportTotal     *prometheus.CounterVec
)

// Init registers the statement metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		statementGenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_generate_total",
				Help: "Total statement generations by result",
			},
			[]string{"result"},
		)
		statementGenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_generate_duration_seconds",
				Help:    "Statement generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		statementExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_export_total",
				Help: "Total statement exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			statementGenerateTotal,
			statementGenerateLatency,
			statementExportTotal,
		)
	})
}

func ObserveStatementGenerate(result string, d time.Duration) {
	if statementGenerateTotal == nil {
		return
	}
	statementGenerateTotal.WithLabelValues(result).Inc()
	statementGenerateLatency.WithLabelValues(result).Observe(d.Seconds())
}

func ObserveStatementExport(format, result string) {
	if statementExportTotal == nil {
		return
	}
	statementExportTotal.WithLabelValues(format, result).Inc()
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
