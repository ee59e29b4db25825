package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	noticeDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_notice_dispatches_total",
		Help: "Notice email dispatch attempts grouped by outcome.",
	}, []string{"status"})

	subscribeAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_subscribe_attempts_total",
		Help: "Subscriber registrations grouped by source and status.",
	}, []string{"source", "status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncDispatch increments the notice dispatch counter.
func IncDispatch(status string) {
	noticeDispatches.WithLabelValues(status).Inc()
}

// IncSubscribe increments the subscribe counter. Source is "public" or
// "registration"; the registration/error combination is the observable trace
// of a silently dropped implicit subscription.
func IncSubscribe(source, status string) {
	subscribeAttempts.WithLabelValues(source, status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
