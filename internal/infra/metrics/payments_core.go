package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		paymentsTotal,
		paymentsRevenueCents,
		paymentCaptureDuration,
	)
}

var (
	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Payments by status (initiated/succeeded/failed/duplicate).",
		},
		[]string{"status"},
	)

	paymentsRevenueCents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_revenue_cents_total",
			Help: "The total monetary value of successful payments in cents, labeled by currency.",
		},
		[]string{"currency"},
	)

	paymentCaptureDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_capture_duration_seconds",
			Help:    "Duration of the full order capture flow in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"result"},
	)
)

func IncPayment(status string) {
	paymentsTotal.WithLabelValues(norm(status)).Inc()
}

func AddPaymentRevenue(currency string, amountCents int64) {
	paymentsRevenueCents.WithLabelValues(norm(currency)).Add(float64(amountCents))
}

func ObserveCaptureDuration(result string, seconds float64) {
	paymentCaptureDuration.WithLabelValues(norm(result)).Observe(seconds)
}
