package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total auth requests per action and outcome",
		},
		[]string{"action", "status"},
	)

	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total orders placed",
		},
	)

	emailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_deliveries_total",
			Help: "Total email delivery attempts per kind and outcome",
		},
		[]string{"kind", "status"},
	)
)

// RecordAuthRequest counts one auth action with its outcome.
func RecordAuthRequest(action string, ok bool) {
	authRequests.WithLabelValues(action, statusLabel(ok)).Inc()
}

// RecordOrderCreated counts one placed order.
func RecordOrderCreated() {
	ordersCreated.Inc()
}

// RecordEmail counts one delivery attempt.
func RecordEmail(kind string, sent bool) {
	emailDeliveries.WithLabelValues(kind, statusLabel(sent)).Inc()
}

func statusLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
