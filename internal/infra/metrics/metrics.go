package metrics

import (
	"net/http"
	"time"

	"goalkick/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goalkick"

// Metrics holds every collector the service exports. Collectors are bound to
// their own registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	reservations      *prometheus.CounterVec
	settlements       *prometheus.CounterVec
	redemptions       *prometheus.CounterVec
	txRetries         prometheus.Counter
	notificationsDrop prometheus.Counter
	notificationsSent *prometheus.CounterVec
	verifyDuration    *prometheus.HistogramVec
}

var _ commands.Recorder = (*Metrics)(nil)

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		reservations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_total",
				Help:      "Reservation attempts by result",
			},
			[]string{"result"},
		),
		settlements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "settlements_total",
				Help:      "Settlement attempts by path and outcome",
			},
			[]string{"path", "outcome"},
		),
		redemptions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redemptions_total",
				Help:      "Gate scans by outcome",
			},
			[]string{"outcome"},
		),
		txRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tx_retries_total",
				Help:      "Transactions retried after serialization failure or deadlock",
			},
		),
		notificationsDrop: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_dropped_total",
				Help:      "Notifications dropped because the queue was full",
			},
		),
		notificationsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_delivered_total",
				Help:      "Notification deliveries by sink and status",
			},
			[]string{"sink", "status"},
		),
		verifyDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_verify_duration_seconds",
				Help:      "Duration of payment gateway verification calls",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) Reservation(result string) {
	m.reservations.WithLabelValues(result).Inc()
}

func (m *Metrics) Settlement(path, outcome string) {
	m.settlements.WithLabelValues(path, outcome).Inc()
}

func (m *Metrics) Redemption(outcome string) {
	m.redemptions.WithLabelValues(outcome).Inc()
}

// TxRetry matches the unit of work retry observer signature.
func (m *Metrics) TxRetry(_ int, _ error) {
	m.txRetries.Inc()
}

func (m *Metrics) NotificationDropped() {
	m.notificationsDrop.Inc()
}

func (m *Metrics) NotificationDelivered(sink string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.notificationsSent.WithLabelValues(sink, status).Inc()
}

// VerifyObserved matches the gateway observer signature.
func (m *Metrics) VerifyObserved(d time.Duration, verified bool, err error) {
	result := "verified"
	switch {
	case err != nil:
		result = "error"
	case !verified:
		result = "rejected"
	}
	m.verifyDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
