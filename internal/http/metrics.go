package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LatencyBuckets covers quick metadata calls up to long audio and image
// generations, 100ms to 300s.
var LatencyBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120, 300}

// Metrics holds the request collectors of one transport.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the request collectors and registers them on reg. When
// another client already registered them on reg, the existing collectors are
// shared.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openai_client_requests_total",
			Help: "Requests sent to the OpenAI API",
		},
		[]string{"method", "status"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "openai_client_request_duration_seconds",
			Help:    "Request duration",
			Buckets: LatencyBuckets,
		},
		[]string{"method"},
	)

	requestsCollector, err := register(reg, requests)
	if err != nil {
		return nil, err
	}

	durationCollector, err := register(reg, duration)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requests: requestsCollector,
		duration: durationCollector,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	already := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &already) {
		existing, ok := already.ExistingCollector.(T)
		if ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("registering metrics: %w", err)
}

// observe records one exchange. status is a class such as "2xx", or "error"
// when no response arrived. A nil receiver records nothing.
func (m *Metrics) observe(method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, status).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
