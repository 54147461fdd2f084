package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"contract-mapper/internal/diagnostic"
)

// Metrics provides observability for the mapping service.
type Metrics struct {
	// Rules returned by Suggest, cached or fresh
	SuggestionsEmitted prometheus.Counter

	// Suggestion cache lookups by result: "hit", "miss", "error"
	CacheLookups *prometheus.CounterVec

	// Validation findings by code and severity
	Findings *prometheus.CounterVec

	// Review decisions by action
	ReviewDecisions *prometheus.CounterVec

	// Time spent scoring and resolving one contract pair
	ResolveLatency prometheus.Histogram
}

// New registers the service metrics on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		SuggestionsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "contract_mapper_suggestions_emitted_total",
			Help: "Total mapping rules returned by suggest",
		}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contract_mapper_suggestion_cache_lookups_total",
			Help: "Suggestion cache lookups by result",
		}, []string{"result"}),

		Findings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contract_mapper_validation_findings_total",
			Help: "Validation findings by code and severity",
		}, []string{"code", "severity"}),

		ReviewDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contract_mapper_review_decisions_total",
			Help: "Reviewer decisions applied to mapping rules",
		}, []string{"action"}),

		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contract_mapper_resolve_duration_seconds",
			Help:    "Duration of resolving one source and target contract pair",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}),
	}
}

// AddSuggestions records n emitted rules.
func (m *Metrics) AddSuggestions(n int) {
	if m != nil {
		m.SuggestionsEmitted.Add(float64(n))
	}
}

// IncrementCacheLookup records one cache lookup outcome.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

// ObserveReport counts every finding in r, infos included.
func (m *Metrics) ObserveReport(r *diagnostic.Report) {
	if m == nil || r == nil {
		return
	}

	for _, group := range []diagnostic.Findings{r.Errors, r.Warnings, r.Infos} {
		for _, f := range group {
			m.Findings.WithLabelValues(string(f.Code), f.Severity.String()).Inc()
		}
	}
}

// IncrementReviewDecision records a reviewer action.
func (m *Metrics) IncrementReviewDecision(action string) {
	if m != nil {
		m.ReviewDecisions.WithLabelValues(action).Inc()
	}
}

// ObserveResolveLatency records the duration of one resolve.
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}
