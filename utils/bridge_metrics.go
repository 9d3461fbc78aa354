package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal counts calls to the Mastodon API by outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to the upstream Mastodon API",
		},
		[]string{"outcome"}, // ok, unavailable, unauthorized, not_found
	)

	// ConversionFailuresTotal counts statuses dropped during batch
	// conversion because a required field was missing.
	ConversionFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conversion_failures_total",
			Help: "Total number of statuses that failed memo conversion",
		},
	)
)
