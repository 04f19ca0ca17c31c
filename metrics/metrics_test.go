// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	prometheusModels "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	provider := NewPrometheusProvider()
	server := NewServer("12345", provider.Handler(), false)
	server.Start()
	time.Sleep(time.Second * 1)
	defer server.Stop()

	t.Run("Should store metrics for github requests duration", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		data, err := provider.githubRequests.GetMetricWith(prometheus.Labels{"handler": "handler", "method": "method", "status_code": "200"})
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Histogram).Write(m))
		require.Equal(t, uint64(0), m.Histogram.GetSampleCount())
		provider.ObserveGithubRequestDuration("method", "handler", "200", 1)
		data, err = provider.githubRequests.GetMetricWith(prometheus.Labels{"handler": "handler", "method": "method", "status_code": "200"})
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Histogram).Write(m))
		require.Equal(t, uint64(1), m.Histogram.GetSampleCount())
		require.InDelta(t, 1, m.Histogram.GetSampleSum(), 0.001)
	})

	t.Run("Should store metrics for cache hits and misses", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		provider.IncreaseGithubCacheHits("GET", "/repos/test/projects")
		data, err := provider.githubCacheHits.GetMetricWithLabelValues("GET", "/repos/test/projects")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())

		provider.IncreaseGithubCacheMisses("GET", "/repos/test/projects")
		data, err = provider.githubCacheMisses.GetMetricWithLabelValues("GET", "/repos/test/projects")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())
	})

	t.Run("Should store metrics for directives", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		provider.ObserveDirectiveDuration(2)
		require.NoError(t, provider.directivesDuration.Write(m))
		require.Equal(t, uint64(1), m.Histogram.GetSampleCount())
		require.InDelta(t, 2, m.Histogram.GetSampleSum(), 0.001)

		provider.IncreaseDirectiveErrors(DirectiveStageResolve)
		data, err := provider.directiveErrors.GetMetricWithLabelValues(DirectiveStageResolve)
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())
	})

	t.Run("Should store metrics for label mutations", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		provider.IncreaseLabelMutations("add")
		data, err := provider.labelMutations.GetMetricWithLabelValues("add")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())

		provider.IncreaseLabelMutationErrors("add")
		data, err = provider.labelMutationErrors.GetMetricWithLabelValues("add")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())
	})
}
