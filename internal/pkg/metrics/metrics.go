package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_registered_total",
			Help: "Number of transactions registered with the gateway",
		},
	)

	WebhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhooks_received_total",
			Help: "Number of gateway webhook notifications by outcome",
		},
		[]string{"outcome"},
	)

	FulfillmentsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_fulfillments_total",
			Help: "Number of confirmed payments fulfilled",
		},
	)

	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Number of outbound notification emails by result",
		},
		[]string{"kind", "result"},
	)

	StatusRechecks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_status_rechecks_total",
			Help: "Number of bounded status re-polls after buyer return",
		},
	)
)

func Register() {
	prometheus.MustRegister(
		PaymentsRegistered,
		WebhooksReceived,
		FulfillmentsCompleted,
		EmailsSent,
		StatusRechecks,
	)
}
