package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes.
const (
	OutcomeNoop      = "noop"
	OutcomeCacheHit  = "cache_hit"
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
)

var (
	// ResolutionsTotal counts template resolutions by terminal outcome.
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitegen_resolutions_total",
		Help: "Template resolutions by outcome",
	}, []string{"outcome"})

	// GenerationFailuresTotal counts failed calls to the generation
	// capabilities by kind ("text" or "image").
	GenerationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitegen_generation_failures_total",
		Help: "Failed generation-capability calls by kind",
	}, []string{"kind"})

	// ImageFallbacksTotal counts image placeholders that degraded to the
	// local placeholder asset.
	ImageFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sitegen_image_fallbacks_total",
		Help: "Image placeholders resolved with the local placeholder asset",
	})
)
