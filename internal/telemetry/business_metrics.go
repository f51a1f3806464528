package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for storefront-level
// observability, separate from the raw HTTP metrics.
type BusinessMetrics struct {
	// Cart activity
	CartItemsAdded  prometheus.Counter
	CartItemsRemove prometheus.Counter
	CartCleared     prometheus.Counter

	// Checkout funnel
	CheckoutAttempts  *prometheus.CounterVec
	OrdersAccepted    prometheus.Counter
	OrderValue        prometheus.Histogram
	OrderItemCount    prometheus.Histogram

	// Admin moderation
	PaymentsApproved prometheus.Counter
	PaymentsRejected prometheus.Counter

	// Backend dependency
	BackendErrors *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers the collectors.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "partyland"
	}
	subsystem := "business"

	return &BusinessMetrics{
		CartItemsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "cart_items_added_total",
			Help: "Line items added to carts",
		}),
		CartItemsRemove: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "cart_items_removed_total",
			Help: "Line items removed from carts",
		}),
		CartCleared: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "carts_cleared_total",
			Help: "Carts emptied, by checkout or by hand",
		}),
		CheckoutAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "checkout_attempts_total",
			Help: "Checkout submissions by result",
		}, []string{"result"}),
		OrdersAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "orders_accepted_total",
			Help: "Orders the shop backend accepted",
		}),
		OrderValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "order_value_uzs",
			Help:    "Accepted order totals in UZS",
			Buckets: []float64{10000, 25000, 50000, 100000, 250000, 500000, 1000000, 2500000},
		}),
		OrderItemCount: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "order_item_count",
			Help:    "Distinct line items per accepted order",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		PaymentsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "payments_approved_total",
			Help: "Payments approved by an admin",
		}),
		PaymentsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "payments_rejected_total",
			Help: "Payments rejected by an admin",
		}),
		BackendErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "backend_errors_total",
			Help: "Shop backend call failures by operation",
		}, []string{"op"}),
	}
}
