package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the workflow core.
type Metrics struct {
	TransitionsApplied  *prometheus.CounterVec
	TransitionConflicts prometheus.Counter
	NotificationsQueued prometheus.Counter
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
	DispatchTime        prometheus.Histogram
}

// NewMetrics creates new prometheus metrics under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		TransitionsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_applied_total",
			Help:      "The total number of workflow transitions applied",
		}, []string{"entity_type", "transition"}),
		TransitionConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transition_conflicts_total",
			Help:      "The total number of optimistic-concurrency conflicts on transitions",
		}),
		NotificationsQueued: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_queued_total",
			Help:      "The total number of notification queue items enqueued",
		}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "The total number of notifications delivered",
		}, []string{"channel"}),
		NotificationsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "The total number of notification deliveries that failed",
		}, []string{"channel"}),
		DispatchTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "notification_dispatch_time_seconds",
			Help:      "Time taken to dispatch a notification queue item",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
