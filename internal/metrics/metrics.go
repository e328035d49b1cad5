// Package metrics holds the Prometheus collectors of the site.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexusai_page_views_total",
		Help: "Rendered pages by route pattern",
	}, []string{"page"})

	// Submissions counts simulated interactions by flow and outcome
	// (submitted, succeeded, failed, invalid, cancelled).
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexusai_submissions_total",
		Help: "Simulated form and chat interactions by flow and outcome",
	}, []string{"flow", "outcome"})

	ChatReplies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexusai_chat_replies_total",
		Help: "Canned assistant replies delivered",
	})

	ActiveSessions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nexusai_active_sessions",
		Help: "Open page sessions by kind",
	}, []string{"kind"})

	ExpiredSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexusai_expired_sessions_total",
		Help: "Page sessions closed by the idle sweeper",
	}, []string{"kind"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexusai_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSweep records the outcome of one sweep over a session collection.
func ObserveSweep(kind string, removed, remaining int) {
	if removed > 0 {
		ExpiredSessions.WithLabelValues(kind).Add(float64(removed))
	}
	ActiveSessions.WithLabelValues(kind).Set(float64(remaining))
}
