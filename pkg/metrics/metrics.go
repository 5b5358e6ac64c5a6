package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UsersSynced = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sahyatri", Name: "users_synced_total", Help: "Number of successful user syncs."},
	)
	ComplaintsFiled = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sahyatri", Name: "complaints_filed_total", Help: "Number of complaint submissions by outcome."},
		[]string{"outcome"},
	)
	PointUpserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sahyatri", Name: "point_upserts_total", Help: "Number of live point upserts by kind (updated/appended)."},
		[]string{"kind"},
	)
	MapReplaces = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sahyatri", Name: "map_replaces_total", Help: "Number of wholesale map document replacements."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sahyatri", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sahyatri", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(UsersSynced)
	reg.MustRegister(ComplaintsFiled)
	reg.MustRegister(PointUpserts)
	reg.MustRegister(MapReplaces)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
