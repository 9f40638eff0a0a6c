package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel_booking"

// Metrics holds Prometheus collectors for the booking engine.
type Metrics struct {
	// BookingsCreated counts bookings by channel.
	BookingsCreated *prometheus.CounterVec

	// AvailabilityConflicts counts reservations rejected because rooms were taken.
	AvailabilityConflicts prometheus.Counter

	// PaymentsRecorded counts applied payment transactions by type and method.
	PaymentsRecorded *prometheus.CounterVec

	// BookingsCancelled counts cancellations by actor kind.
	BookingsCancelled *prometheus.CounterVec

	// SweeperRuns counts expiry sweeps by outcome.
	SweeperRuns *prometheus.CounterVec

	// SweeperExpired counts bookings released by the sweeper.
	SweeperExpired prometheus.Counter

	// Checkouts counts committed checkouts.
	Checkouts prometheus.Counter

	// NotificationsRelayed counts outbox jobs by delivery status.
	NotificationsRelayed *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Total number of bookings created",
			},
			[]string{"channel"},
		),

		AvailabilityConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_conflicts_total",
				Help:      "Total number of reservations rejected because rooms were no longer available",
			},
		),

		PaymentsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_recorded_total",
				Help:      "Total number of payment transactions applied",
			},
			[]string{"type", "method"},
		),

		BookingsCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_cancelled_total",
				Help:      "Total number of cancelled bookings",
			},
			[]string{"actor"},
		),

		SweeperRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expiry_sweeps_total",
				Help:      "Total number of expiry sweeps",
			},
			[]string{"status"},
		),

		SweeperExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expired_bookings_total",
				Help:      "Total number of unpaid bookings released by the sweeper",
			},
		),

		Checkouts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_total",
				Help:      "Total number of committed checkouts",
			},
		),

		NotificationsRelayed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_relayed_total",
				Help:      "Total number of outbox notifications relayed",
			},
			[]string{"status"},
		),
	}
}

// NewNop returns metrics registered on a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncBookingCreated(channel string) {
	m.BookingsCreated.WithLabelValues(channel).Inc()
}

func (m *Metrics) IncAvailabilityConflict() {
	m.AvailabilityConflicts.Inc()
}

func (m *Metrics) IncPayment(txType, method string) {
	m.PaymentsRecorded.WithLabelValues(txType, method).Inc()
}

func (m *Metrics) IncCancelled(actor string) {
	m.BookingsCancelled.WithLabelValues(actor).Inc()
}

func (m *Metrics) ObserveSweep(expired int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.SweeperRuns.WithLabelValues(status).Inc()
	m.SweeperExpired.Add(float64(expired))
}

func (m *Metrics) IncCheckout() {
	m.Checkouts.Inc()
}

func (m *Metrics) IncRelayed(status string) {
	m.NotificationsRelayed.WithLabelValues(status).Inc()
}
