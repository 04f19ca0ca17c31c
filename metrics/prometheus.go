// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace   = "columnlabeler"
	githubNamespace    = "github"
	directiveNamespace = "directives"
	labelNamespace     = "labels"

	defaultPrometheusTimeoutSeconds = 60
)

type PrometheusProvider struct {
	Registry *prometheus.Registry

	githubRequests    *prometheus.HistogramVec
	githubCacheHits   *prometheus.CounterVec
	githubCacheMisses *prometheus.CounterVec

	directivesDuration prometheus.Histogram
	directiveErrors    *prometheus.CounterVec

	labelMutations      *prometheus.CounterVec
	labelMutationErrors *prometheus.CounterVec
}

func NewPrometheusProvider() *PrometheusProvider {
	provider := &PrometheusProvider{}
	provider.Registry = prometheus.NewRegistry()
	options := prometheus.ProcessCollectorOpts{
		Namespace: metricsNamespace,
	}
	provider.Registry.MustRegister(prometheus.NewProcessCollector(options))
	provider.Registry.MustRegister(prometheus.NewGoCollector())

	provider.githubRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: githubNamespace,
			Name:      "requests",
			Help:      "Duration of the performed github http requests.",
		},
		[]string{"method", "handler", "status_code"},
	)
	provider.Registry.MustRegister(provider.githubRequests)

	provider.githubCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: githubNamespace,
			Name:      "cache_hits",
			Help:      "Number of cache hits for requested method and handler.",
		},
		[]string{"method", "handler"},
	)
	provider.Registry.MustRegister(provider.githubCacheHits)

	provider.githubCacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: githubNamespace,
			Name:      "cache_miss",
			Help:      "Number of cache misses for requested method and handler.",
		},
		[]string{"method", "handler"},
	)
	provider.Registry.MustRegister(provider.githubCacheMisses)

	provider.directivesDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: directiveNamespace,
			Name:      "duration",
			Help:      "Duration of the processed directives.",
		},
	)
	provider.Registry.MustRegister(provider.directivesDuration)

	provider.directiveErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: directiveNamespace,
			Name:      "errors",
			Help:      "Number of skipped directives by failing stage.",
		},
		[]string{"stage"},
	)
	provider.Registry.MustRegister(provider.directiveErrors)

	provider.labelMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: labelNamespace,
			Name:      "mutations",
			Help:      "Number of successful label mutations by action.",
		},
		[]string{"action"},
	)
	provider.Registry.MustRegister(provider.labelMutations)

	provider.labelMutationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: labelNamespace,
			Name:      "errors",
			Help:      "Number of failed label mutations by action.",
		},
		[]string{"action"},
	)
	provider.Registry.MustRegister(provider.labelMutationErrors)

	return provider
}

func (p *PrometheusProvider) ObserveGithubRequestDuration(handler, method, statusCode string, elapsed float64) {
	p.githubRequests.With(
		prometheus.Labels{"method": method, "handler": handler, "status_code": statusCode},
	).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseGithubCacheHits(method, handler string) {
	p.githubCacheHits.WithLabelValues(method, handler).Add(1)
}

func (p *PrometheusProvider) IncreaseGithubCacheMisses(method, handler string) {
	p.githubCacheMisses.WithLabelValues(method, handler).Add(1)
}

func (p *PrometheusProvider) ObserveDirectiveDuration(elapsed float64) {
	p.directivesDuration.Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseDirectiveErrors(stage string) {
	p.directiveErrors.WithLabelValues(stage).Add(1)
}

func (p *PrometheusProvider) IncreaseLabelMutations(action string) {
	p.labelMutations.WithLabelValues(action).Add(1)
}

func (p *PrometheusProvider) IncreaseLabelMutationErrors(action string) {
	p.labelMutationErrors.WithLabelValues(action).Add(1)
}

func (p *PrometheusProvider) Handler() Handler {
	handler := promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{
		Timeout:           time.Duration(defaultPrometheusTimeoutSeconds) * time.Second,
		EnableOpenMetrics: true,
	})
	return Handler{
		Path:        "/metrics",
		Description: "Prometheus Metrics",
		Handler:     handler,
	}
}
