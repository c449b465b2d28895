// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recrutas_theme_resolutions_total",
		Help: "Initial theme resolutions by where the preference came from.",
	}, []string{"source"})

	TogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recrutas_theme_toggles_total",
		Help: "Theme toggles by the resulting theme.",
	}, []string{"theme"})

	PreferenceErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recrutas_theme_store_errors_total",
		Help: "Preference store failures that were degraded silently.",
	}, []string{"op"})

	PageRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recrutas_page_renders_total",
		Help: "Landing page renders by theme.",
	}, []string{"theme"})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recrutas_page_render_duration_seconds",
		Help:    "Time from request receipt to rendered landing page.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})
)
