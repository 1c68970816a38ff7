package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query sources, used as the "source" label.
const (
	SourceCLI  = "cli"
	SourceIPC  = "ipc"
	SourceHTTP = "http"
)

// Metrics provides observability for suggestion queries.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Queries       *prometheus.CounterVec
	ParseErrors   *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	Results       prometheus.Histogram
}

// New creates the query metrics and registers them with reg, or with the
// default registry when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wordhint_queries_total",
			Help: "Total number of suggestion queries served",
		}, []string{"source"}),
		ParseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wordhint_parse_errors_total",
			Help: "Total number of rejected feedback lines or rule names",
		}, []string{"source"}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordhint_query_duration_seconds",
			Help:    "Duration of filtering and ranking a query",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		Results: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordhint_query_results",
			Help:    "Number of suggestions returned per query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		}),
	}
}

// ObserveQuery records a served query. Call with time.Now() at the start of
// the query.
func (m *Metrics) ObserveQuery(source string, start time.Time, results int) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(source).Inc()
	m.QueryDuration.Observe(time.Since(start).Seconds())
	m.Results.Observe(float64(results))
}

// IncrementParseErrors records a request rejected for bad input.
func (m *Metrics) IncrementParseErrors(source string) {
	if m == nil {
		return
	}
	m.ParseErrors.WithLabelValues(source).Inc()
}
