package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityChecks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "availability_checks_total",
			Help:      "Availability grid queries served.",
		},
	)

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "appointments_created_total",
			Help:      "Appointments committed through the booking flow.",
		},
	)

	adminLogins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "admin_logins_total",
			Help:      "Admin credential checks by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityChecks, appointmentsCreated, adminLogins)
	})
}

func IncAvailabilityCheck() {
	availabilityChecks.Inc()
}

func IncAppointmentCreated() {
	appointmentsCreated.Inc()
}

func IncAdminLogin(result string) {
	adminLogins.WithLabelValues(result).Inc()
}
