package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DraftsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "inkhaven", Name: "drafts_created_total", Help: "Number of drafts created."},
	)
	RevisionsAppended = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "inkhaven", Name: "revisions_appended_total", Help: "Number of revisions appended across all drafts."},
	)
	CommentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "inkhaven", Name: "comments_created_total", Help: "Number of draft comments created."},
	)
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "inkhaven", Name: "events_published_total", Help: "Number of draft events published by kind."},
		[]string{"kind"},
	)
	StreamSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "inkhaven", Name: "stream_subscribers", Help: "Currently connected draft event stream clients."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "inkhaven", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "inkhaven", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DraftsCreated)
	reg.MustRegister(RevisionsAppended)
	reg.MustRegister(CommentsCreated)
	reg.MustRegister(EventsPublished)
	reg.MustRegister(StreamSubscribers)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
