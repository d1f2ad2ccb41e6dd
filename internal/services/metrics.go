package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all custom Prometheus metrics for the application
type Metrics struct {
	// Command pipeline metrics
	Commands      *prometheus.CounterVec // outcome: "intent", "fallback"
	FallbackRules *prometheus.CounterVec // rule: "person", "expense", "water", "meal", "journal", "none"

	// Query pipeline metrics
	Queries *prometheus.CounterVec // entity label

	// LLM call metrics
	LLMRequests       *prometheus.CounterVec // outcome: "ok", "error"
	LLMRequestLatency prometheus.Histogram
}

var globalMetrics *Metrics

// InitMetrics initializes the Prometheus metrics
func InitMetrics() *Metrics {
	metrics := &Metrics{
		Commands: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmate_commands_total",
			Help: "Total number of natural-language commands by outcome",
		}, []string{"outcome"}),

		FallbackRules: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmate_fallback_rule_matches_total",
			Help: "Total number of deterministic fallback rule matches by rule",
		}, []string{"rule"}),

		Queries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmate_queries_total",
			Help: "Total number of natural-language queries by target entity",
		}, []string{"entity"}),

		LLMRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmate_llm_requests_total",
			Help: "Total number of language model calls by outcome",
		}, []string{"outcome"}),

		LLMRequestLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripmate_llm_request_duration_seconds",
			Help:    "Language model call latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
	}

	globalMetrics = metrics
	return metrics
}

// GetMetrics returns the global metrics instance (nil until InitMetrics is called)
func GetMetrics() *Metrics {
	return globalMetrics
}
