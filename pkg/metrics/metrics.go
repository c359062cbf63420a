package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clinicdash", Name: "content_requests_total", Help: "Number of requests issued to the remote content API by operation."},
		[]string{"op"},
	)
	ContentFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clinicdash", Name: "content_failures_total", Help: "Number of failed content API calls by operation and failure kind."},
		[]string{"op", "kind"},
	)
	StoreRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clinicdash", Name: "store_refreshes_total", Help: "Number of doctor store refreshes by outcome."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clinicdash", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clinicdash", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentRequests)
	reg.MustRegister(ContentFailures)
	reg.MustRegister(StoreRefreshes)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
