package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alicetant",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "alicetant",
			Name:      "bookings_total",
			Help:      "Successfully booked appointments.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "alicetant",
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected by the slot-uniqueness check.",
		},
	)

	cancellations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "alicetant",
			Name:      "cancellations_total",
			Help:      "Cancelled appointments.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookings, bookingConflicts, cancellations)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncBooking()         { bookings.Inc() }
func IncBookingConflict() { bookingConflicts.Inc() }
func IncCancellation()    { cancellations.Inc() }
